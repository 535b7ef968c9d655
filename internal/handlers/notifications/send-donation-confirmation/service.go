// internal/handlers/notifications/send-donation-confirmation/service.go
package senddonationconfirmation

import (
	"context"
	"fmt"
	"html"
	"time"

	"therapy-paws/internal/common/errors"
	"therapy-paws/internal/common/logger"
	"therapy-paws/internal/common/mail"
	"therapy-paws/internal/common/validation"
)

type Service struct {
	config *Config
	logger logger.Logger
	mailer mail.Mailer
}

func NewService(config *Config, mailer mail.Mailer, log logger.Logger) *Service {
	return &Service{
		config: config,
		logger: log,
		mailer: mailer,
	}
}

// Execute sends the admin notice and the donor thank-you. Both sends are
// best-effort; the response flags report what actually went out.
func (s *Service) Execute(ctx context.Context, input *Input) (*Output, error) {
	if !validation.ValidateEmail(input.DonorEmail) {
		return nil, errors.NewValidationFailedError("donorEmail is not a valid email address")
	}
	if input.Amount <= 0 {
		return nil, errors.NewValidationFailedError("amount must be a positive number of cents")
	}

	formattedAmount := fmt.Sprintf("%.2f", float64(input.Amount)/100)
	now := time.Now().UTC()

	adminOutcome := s.mailer.Send(ctx, mail.Message{
		FromName:  s.config.NotificationsName,
		FromEmail: s.config.NotificationsEmail,
		ToEmail:   s.config.AdminEmail,
		Subject:   fmt.Sprintf("New Donation Received - $%s", formattedAmount),
		HTMLBody:  s.adminBody(input, formattedAmount, now),
		Kind:      "admin_donation",
	})
	if !adminOutcome.Sent {
		s.logger.Warn("donation admin email failed", map[string]interface{}{
			"error": adminOutcome.Error,
		})
	}

	customerOutcome := s.mailer.Send(ctx, mail.Message{
		FromName:  s.config.HelloName,
		FromEmail: s.config.HelloEmail,
		ToName:    input.DonorName,
		ToEmail:   input.DonorEmail,
		Subject:   fmt.Sprintf("Thank you for your donation - %s", s.config.SiteName),
		HTMLBody:  s.donorBody(input, formattedAmount, now),
		Kind:      "donation_confirmation",
	})
	if !customerOutcome.Sent {
		s.logger.Warn("donation confirmation email failed", map[string]interface{}{
			"donorEmail": input.DonorEmail,
			"error":      customerOutcome.Error,
		})
	}

	return &Output{
		Success:                  true,
		AdminNotificationSent:    adminOutcome.Sent,
		CustomerConfirmationSent: customerOutcome.Sent,
	}, nil
}

func (s *Service) adminBody(input *Input, formattedAmount string, now time.Time) string {
	donorNameRow := ""
	if input.DonorName != "" {
		donorNameRow = fmt.Sprintf("<li><strong>Donor Name:</strong> %s</li>", html.EscapeString(input.DonorName))
	}
	return fmt.Sprintf(`<h2>New Donation Received</h2>
<p>A new donation has been processed:</p>
<h3>Donation Details:</h3>
<ul>
<li><strong>Amount:</strong> $%s</li>
<li><strong>Donor Email:</strong> %s</li>
%s<li><strong>Date:</strong> %s</li>
</ul>
<p>Thank you for the continued support of our mission!</p>`,
		formattedAmount,
		html.EscapeString(input.DonorEmail),
		donorNameRow,
		now.Format("January 2, 2006"),
	)
}

func (s *Service) donorBody(input *Input, formattedAmount string, now time.Time) string {
	greeting := "<p>Dear Supporter,</p>"
	if input.DonorName != "" {
		greeting = fmt.Sprintf("<p>Dear %s,</p>", html.EscapeString(input.DonorName))
	}
	return fmt.Sprintf(`<h2>Thank You for Your Donation!</h2>
%s
<p>Thank you for your generous donation of <strong>$%s</strong> to support our therapy dog visits.</p>
<p>Your contribution will help us:</p>
<ul>
<li>Cover travel costs for therapy visits</li>
<li>Maintain training and certifications</li>
<li>Purchase supplies and equipment needed for visits</li>
<li>Reach more people in need of comfort</li>
</ul>
<p>Because of supporters like you, we can keep bringing joy and comfort to those who need it most.</p>
<p>With heartfelt gratitude,<br>The %s Team</p>
<hr style="margin: 20px 0; border: none; border-top: 1px solid #eee;">
<p style="font-size: 12px; color: #666;">
This donation was processed on %s at %s.<br>
If you have any questions about your donation, please contact us at %s
</p>`,
		greeting,
		formattedAmount,
		s.config.SiteName,
		now.Format("January 2, 2006"),
		now.Format("3:04 PM"),
		s.config.HelloEmail,
	)
}
