package mailer

import (
	"context"
	"fmt"
	"html/template"
	"strings"
)

var applicationReceivedTmpl = template.Must(template.New("application-received").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">New Application for {{.JobTitle}}</h2>

  <p>Hello {{.CreatorName}},</p>

  <p>You have received a new application for your project "{{.JobTitle}}".</p>

  <h3 style="color: #333; margin-top: 20px;">Applicant Details:</h3>
  <p><strong>Name:</strong> {{.ApplicantName}}</p>
  <p><strong>Email:</strong> {{.ApplicantEmail}}</p>

  {{if .ProfileLinks}}
  <h3 style="color: #333; margin-top: 20px;">Profile Links:</h3>
  <ul>
    {{range .ProfileLinks}}<li><a href="{{.}}">{{.}}</a></li>{{end}}
  </ul>
  {{end}}

  <h3 style="color: #333; margin-top: 20px;">Application Message:</h3>
  <p>{{.Message}}</p>

  <div style="margin-top: 30px; text-align: center;">
    <a href="{{.AcceptURL}}" style="background-color: #4CAF50; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; margin-right: 10px;">Interested</a>
    <a href="{{.RejectURL}}" style="background-color: #f44336; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">Not Interested</a>
  </div>

  <p style="margin-top: 30px; color: #666; font-size: 12px;">
    This is an automated message. Please do not reply to this email.
  </p>
</div>
`))

var connectionEstablishedTmpl = template.Must(template.New("connection-established").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">Connection Established for {{.JobTitle}}</h2>

  <p>{{.CreatorName}} and {{.ApplicantName}} are now connected on "{{.JobTitle}}".</p>

  <h3 style="color: #333; margin-top: 20px;">Contact Details:</h3>
  <p><strong>{{.CreatorName}}:</strong> {{.CreatorEmail}}</p>
  <p><strong>{{.ApplicantName}}:</strong> {{.ApplicantEmail}}</p>

  <p>Reach out to each other directly to get started.</p>

  <p style="margin-top: 30px; color: #666; font-size: 12px;">
    This is an automated message. Please do not reply to this email.
  </p>
</div>
`))

type ApplicationReceivedData struct {
	JobTitle       string
	CreatorName    string
	ApplicantName  string
	ApplicantEmail string
	Message        string
	ProfileLinks   []string
	AcceptURL      string
	RejectURL      string
}

type ConnectionEstablishedData struct {
	JobTitle       string
	CreatorName    string
	CreatorEmail   string
	ApplicantName  string
	ApplicantEmail string
}

// Notifier renders workflow emails and hands them to a Sender.
type Notifier struct {
	Sender Sender
	From   string
}

func (n *Notifier) SendApplicationReceived(ctx context.Context, creatorEmail string, data ApplicationReceivedData) error {
	var body strings.Builder
	if err := applicationReceivedTmpl.Execute(&body, data); err != nil {
		return err
	}
	return n.Sender.Send(ctx, Message{
		From:    n.From,
		To:      []string{creatorEmail},
		Subject: fmt.Sprintf("New Application for %s", data.JobTitle),
		HTML:    body.String(),
	})
}

// SendConnectionEstablished goes to both parties so each ends up with the
// other's contact email.
func (n *Notifier) SendConnectionEstablished(ctx context.Context, data ConnectionEstablishedData) error {
	var body strings.Builder
	if err := connectionEstablishedTmpl.Execute(&body, data); err != nil {
		return err
	}
	return n.Sender.Send(ctx, Message{
		From:    n.From,
		To:      []string{data.CreatorEmail, data.ApplicantEmail},
		Subject: fmt.Sprintf("Connection Established for %s", data.JobTitle),
		HTML:    body.String(),
	})
}
