package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Webhook posts operational alerts to a Slack incoming webhook. Used for
// notification-send failures only; its own failures are logged and dropped.
type Webhook struct {
	URL    string
	Client *http.Client
}

func NewWebhook(url string) *Webhook {
	return &Webhook{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Notify never returns an error: an alert channel that can fail the caller
// defeats its purpose.
func (w *Webhook) Notify(ctx context.Context, message string, cause error) {
	if w == nil || w.URL == "" {
		return
	}

	text := "🚨 " + message
	if cause != nil {
		text += fmt.Sprintf("\nError: %v", cause)
	}
	payload, _ := json.Marshal(map[string]string{"text": text})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("slack alert request build failed")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.Client.Do(req)
	if err != nil {
		logrus.WithError(err).Error("slack alert send failed")
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		logrus.WithField("status", resp.StatusCode).Error("slack alert rejected")
	}
}
