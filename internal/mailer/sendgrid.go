package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridSender delivers through the SendGrid v3 API.
type SendGridSender struct {
	Key string
}

func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	from := mail.NewEmail("", envelopeFrom(msg.From))

	m := mail.NewV3Mail()
	m.SetFrom(from)
	m.Subject = msg.Subject

	p := mail.NewPersonalization()
	for _, to := range msg.To {
		p.AddTos(mail.NewEmail("", to))
	}
	m.AddPersonalizations(p)

	if msg.Text != "" {
		m.AddContent(mail.NewContent("text/plain", msg.Text))
	}
	if msg.HTML != "" {
		m.AddContent(mail.NewContent("text/html", msg.HTML))
	}

	client := sendgrid.NewSendClient(s.Key)
	resp, err := client.SendWithContext(ctx, m)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid send failed, status code: %d", resp.StatusCode)
	}
	return nil
}
