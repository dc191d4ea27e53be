package mailer

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogSender writes the message to the log instead of delivering it. Default
// when no provider is configured.
type LogSender struct{}

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	logrus.WithFields(logrus.Fields{
		"to":      msg.To,
		"subject": msg.Subject,
	}).Info("email suppressed (no provider configured)")
	return nil
}
