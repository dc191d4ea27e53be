package mailer

import (
	"context"
	"strings"
	"testing"
)

type captureSender struct {
	msgs []Message
}

func (s *captureSender) Send(ctx context.Context, msg Message) error {
	s.msgs = append(s.msgs, msg)
	return nil
}

func TestSendApplicationReceived(t *testing.T) {
	capture := &captureSender{}
	n := &Notifier{Sender: capture, From: "BuilderBoard <notifications@builderboard.dev>"}

	err := n.SendApplicationReceived(context.Background(), "owner@x.com", ApplicationReceivedData{
		JobTitle:       "Build a RAG pipeline",
		CreatorName:    "Bea",
		ApplicantName:  "Ada",
		ApplicantEmail: "a@x.com",
		Message:        "I'd love to help build this",
		ProfileLinks:   []string{"https://github.com/ada"},
		AcceptURL:      "https://app.example/applications/42/accept?token=abc",
		RejectURL:      "https://app.example/applications/42/reject?token=def",
	})
	if err != nil {
		t.Fatalf("SendApplicationReceived: %v", err)
	}

	if len(capture.msgs) != 1 {
		t.Fatalf("sent %d messages, want 1", len(capture.msgs))
	}
	msg := capture.msgs[0]
	if len(msg.To) != 1 || msg.To[0] != "owner@x.com" {
		t.Errorf("To = %v, want [owner@x.com]", msg.To)
	}
	if msg.Subject != "New Application for Build a RAG pipeline" {
		t.Errorf("unexpected subject %q", msg.Subject)
	}
	for _, want := range []string{
		"https://app.example/applications/42/accept?token=abc",
		"https://app.example/applications/42/reject?token=def",
		"https://github.com/ada",
		"Ada",
	} {
		if !strings.Contains(msg.HTML, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestSendApplicationReceived_EscapesMessage(t *testing.T) {
	capture := &captureSender{}
	n := &Notifier{Sender: capture, From: "x@y.dev"}

	err := n.SendApplicationReceived(context.Background(), "owner@x.com", ApplicationReceivedData{
		JobTitle:      "Job",
		CreatorName:   "Bea",
		ApplicantName: "Ada",
		Message:       `<script>alert("hi")</script>`,
	})
	if err != nil {
		t.Fatalf("SendApplicationReceived: %v", err)
	}
	if strings.Contains(capture.msgs[0].HTML, "<script>") {
		t.Error("applicant message was not HTML-escaped")
	}
}

func TestSendConnectionEstablished_BothParties(t *testing.T) {
	capture := &captureSender{}
	n := &Notifier{Sender: capture, From: "x@y.dev"}

	err := n.SendConnectionEstablished(context.Background(), ConnectionEstablishedData{
		JobTitle:       "Build a RAG pipeline",
		CreatorName:    "Bea",
		CreatorEmail:   "b@x.com",
		ApplicantName:  "Ada",
		ApplicantEmail: "a@x.com",
	})
	if err != nil {
		t.Fatalf("SendConnectionEstablished: %v", err)
	}

	msg := capture.msgs[0]
	if len(msg.To) != 2 || msg.To[0] != "b@x.com" || msg.To[1] != "a@x.com" {
		t.Errorf("To = %v, want both parties", msg.To)
	}
	// each side must end up with the other's contact email
	for _, want := range []string{"a@x.com", "b@x.com"} {
		if !strings.Contains(msg.HTML, want) {
			t.Errorf("body missing contact %q", want)
		}
	}
}

func TestEnvelopeFrom(t *testing.T) {
	cases := []struct{ in, want string }{
		{"BuilderBoard <notifications@builderboard.dev>", "notifications@builderboard.dev"},
		{"plain@builderboard.dev", "plain@builderboard.dev"},
	}
	for _, c := range cases {
		if got := envelopeFrom(c.in); got != c.want {
			t.Errorf("envelopeFrom(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
