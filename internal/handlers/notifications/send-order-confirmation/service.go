// internal/handlers/notifications/send-order-confirmation/service.go
package sendorderconfirmation

import (
	"context"
	"database/sql"
	"fmt"
	"html"
	"strings"

	"therapy-paws/internal/common/errors"
	"therapy-paws/internal/common/logger"
	"therapy-paws/internal/common/mail"
	"therapy-paws/internal/models"
)

type Service struct {
	config *Config
	logger logger.Logger
	db     *sql.DB
	mailer mail.Mailer
}

func NewService(config *Config, db *sql.DB, mailer mail.Mailer, log logger.Logger) *Service {
	return &Service{
		config: config,
		logger: log,
		db:     db,
		mailer: mailer,
	}
}

// Execute looks the order up and sends the customer their download links.
// The order must exist; the send itself is reported via the emailSent flag.
func (s *Service) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input.OrderID == "" {
		return nil, errors.NewValidationFailedError("orderId is required")
	}
	if len(input.DownloadURLs) == 0 {
		return nil, errors.NewValidationFailedError("at least one download link is required")
	}

	order, err := s.loadOrder(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	outcome := s.mailer.Send(ctx, mail.Message{
		FromName:  s.config.FromName,
		FromEmail: s.config.FromEmail,
		ToEmail:   order.CustomerEmail,
		Subject:   fmt.Sprintf("Order Confirmation & Download Links - %s", s.config.SiteName),
		HTMLBody:  s.confirmationBody(order, input.DownloadURLs),
		Kind:      "order_confirmation",
	})
	if !outcome.Sent {
		s.logger.Warn("order confirmation email failed", map[string]interface{}{
			"orderId": input.OrderID,
			"error":   outcome.Error,
		})
	} else {
		s.logger.Info("order confirmation email sent", map[string]interface{}{
			"orderId":   input.OrderID,
			"messageId": outcome.MessageID,
		})
	}

	return &Output{Success: true, EmailSent: outcome.Sent}, nil
}

func (s *Service) loadOrder(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	err := s.db.QueryRowContext(ctx,
		`SELECT id, customer_email, product_name, amount, currency FROM orders WHERE id = $1`,
		orderID,
	).Scan(&order.ID, &order.CustomerEmail, &order.ProductName, &order.Amount, &order.Currency)
	if err == sql.ErrNoRows {
		return nil, errors.NewOrderNotFoundError(orderID)
	}
	if err != nil {
		return nil, errors.NewDatabaseQueryFailedError(err)
	}
	return &order, nil
}

func (s *Service) confirmationBody(order *models.Order, links []models.DownloadLink) string {
	var linkItems strings.Builder
	for _, link := range links {
		fmt.Fprintf(&linkItems,
			`<li><a href="%s" style="color: #2754C5; text-decoration: underline;">%s</a></li>`,
			link.URL, html.EscapeString(link.Filename))
	}

	return fmt.Sprintf(`<h2>Thank You for Your Purchase!</h2>
<p>Your order has been confirmed and is ready for download.</p>
<h3>Order Details:</h3>
<ul>
<li><strong>Product:</strong> %s</li>
<li><strong>Amount:</strong> $%.2f %s</li>
<li><strong>Order ID:</strong> %s</li>
</ul>
<h3>Download Your Files:</h3>
<ul>
%s
</ul>
<p><strong>Important:</strong> Your download links will expire in %d days. Please download your files as soon as possible.</p>
<p>If you have any issues with your download or questions about your purchase, please contact us.</p>
<p>Thank you for supporting our therapy dog visits!</p>
<p>Best regards,<br>%s Team</p>`,
		html.EscapeString(order.ProductName),
		float64(order.Amount)/100,
		strings.ToUpper(order.Currency),
		order.ID,
		linkItems.String(),
		s.config.DownloadWindowDays,
		s.config.SiteName,
	)
}
