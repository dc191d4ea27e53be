package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPSender delivers through a plain SMTP relay with AUTH PLAIN.
type SMTPSender struct {
	Host     string
	Port     string
	Username string
	Password string
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", msg.From)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(msg.To, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)

	// net/smtp has no context support; honor cancellation before dialing.
	if err := ctx.Err(); err != nil {
		return err
	}
	addr := fmt.Sprintf("%s:%s", s.Host, s.Port)
	return smtp.SendMail(addr, auth, envelopeFrom(msg.From), msg.To, []byte(b.String()))
}

// envelopeFrom strips a display name ("Name <a@b.c>" → "a@b.c") for the
// SMTP envelope.
func envelopeFrom(from string) string {
	if i := strings.LastIndex(from, "<"); i >= 0 {
		if j := strings.LastIndex(from, ">"); j > i {
			return from[i+1 : j]
		}
	}
	return from
}
