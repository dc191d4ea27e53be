package mailer

import (
	"context"
	"errors"

	"builderboard/internal/config"
)

// Message is a single outbound email.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers one message. Delivery confirmation beyond the send call is
// out of scope; callers treat failures as best-effort side effects.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NewSender picks a provider from config. An empty provider yields a
// log-only sender so local setups work without credentials.
func NewSender(cfg config.Config) (Sender, error) {
	switch cfg.EmailProvider {
	case "smtp":
		if cfg.SMTPHost == "" || cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
			return nil, errors.New("incomplete smtp configuration")
		}
		return &SMTPSender{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
		}, nil
	case "sendgrid":
		if cfg.SendGridKey == "" {
			return nil, errors.New("missing sendgrid api key")
		}
		return &SendGridSender{Key: cfg.SendGridKey}, nil
	case "":
		return &LogSender{}, nil
	default:
		return nil, errors.New("unknown email provider: " + cfg.EmailProvider)
	}
}
