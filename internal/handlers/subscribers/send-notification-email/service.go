// internal/handlers/subscribers/send-notification-email/service.go
package sendnotificationemail

import (
	"context"
	"fmt"

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

// Execute renders the fixed template for the requested type and sends it.
// Unlike the rest of the notification surface this send is the operation
// itself, so a delivery failure is a real error.
func (s *Service) Execute(ctx context.Context, input *Input) (*Output, error) {
	if !validation.ValidateEmail(input.Email) {
		return nil, errors.NewValidationFailedError("email is not a valid email address")
	}

	subject, body, err := s.render(input)
	if err != nil {
		return nil, err
	}

	outcome := s.mailer.Send(ctx, mail.Message{
		FromName:  s.config.FromName,
		FromEmail: s.config.FromEmail,
		ToName:    input.Name,
		ToEmail:   input.Email,
		Subject:   subject,
		HTMLBody:  body,
		Kind:      input.Type,
	})
	if !outcome.Sent {
		return nil, errors.NewEmailDeliveryFailedError(input.Type, fmt.Errorf("%s", outcome.Error))
	}

	s.logger.Info("notification email sent", map[string]interface{}{
		"type":      input.Type,
		"messageId": outcome.MessageID,
	})

	return &Output{Success: true, ID: outcome.MessageID}, nil
}

// SendConfirmation sends the newsletter confirmation as a best-effort side
// effect of a subscription. Failures are logged and reported via the return
// value only.
func (s *Service) SendConfirmation(ctx context.Context, email, name string) bool {
	output, err := s.Execute(ctx, &Input{
		Email: email,
		Name:  name,
		Type:  TypeNewsletterConfirmation,
	})
	if err != nil {
		s.logger.Warn("confirmation email failed", map[string]interface{}{
			"error": err.Error(),
		})
		return false
	}
	return output.Success
}

func (s *Service) render(input *Input) (subject, body string, err error) {
	greetingName := ""
	if input.Name != "" {
		greetingName = ", " + input.Name
	}

	switch input.Type {
	case TypeNewsletterConfirmation:
		subject = fmt.Sprintf("Welcome to the %s Newsletter!", s.config.SiteName)
		body = fmt.Sprintf(`<div style="max-width: 600px; margin: 0 auto; font-family: Arial, sans-serif;">
<h1 style="color: #4ade80; text-align: center;">Welcome to %s!</h1>
<p>Thank you for subscribing to our newsletter%s!</p>
<p>You'll now receive updates about:</p>
<ul>
<li>Upcoming therapy dog visits and events</li>
<li>New photos from recent visits</li>
<li>Ways to support our mission</li>
<li>Stories from the schools and homes we visit</li>
</ul>
<p>We're excited to have you along!</p>
<p style="margin-top: 30px;"><strong>%s</strong></p>
</div>`, s.config.SiteName, greetingName, s.config.SiteName)

	case TypeWelcome:
		subject = fmt.Sprintf("Welcome to %s", s.config.SiteName)
		body = fmt.Sprintf(`<div style="max-width: 600px; margin: 0 auto; font-family: Arial, sans-serif;">
<h1 style="color: #4ade80; text-align: center;">Welcome!</h1>
<p>Hello%s,</p>
<p>Welcome to %s. We bring certified therapy dogs to schools, care homes and community events.</p>
<p>Feel free to reach out if you have any questions or would like to book a visit.</p>
<p style="margin-top: 30px;"><strong>%s</strong></p>
</div>`, greetingName, s.config.SiteName, s.config.SiteName)

	default:
		return "", "", errors.NewUnknownEmailTypeError(input.Type)
	}

	return subject, body, nil
}
