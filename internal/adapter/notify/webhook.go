// Package notify delivers moderation notifications to a JSON webhook.
package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"

	"github.com/tidwall/sjson"

	"github.com/heartmarshall/rotection-backend/internal/config"
	"github.com/heartmarshall/rotection-backend/internal/domain"
)

// ErrDeliveryFailed is returned when the webhook does not accept a notification.
var ErrDeliveryFailed = errors.New("notify: delivery failed")

// Webhook posts notifications as {"kind","subject","fields"} JSON.
// With no URL configured it only logs them.
type Webhook struct {
	url        string
	httpClient *http.Client
	log        *slog.Logger
}

// NewWebhook creates a Webhook from config.
func NewWebhook(cfg config.NotifyConfig, logger *slog.Logger) *Webhook {
	return &Webhook{
		url:        cfg.WebhookURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "notify_webhook"),
	}
}

// Notify sends n. One attempt, no retry.
func (w *Webhook) Notify(ctx context.Context, n domain.Notification) error {
	if w.url == "" {
		w.log.InfoContext(ctx, "notification", slog.String("kind", n.Kind), slog.String("subject", n.Subject))
		return nil
	}

	body, err := encode(n)
	if err != nil {
		return fmt.Errorf("notify: encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", ErrDeliveryFailed, resp.StatusCode)
	}

	w.log.DebugContext(ctx, "notification delivered", slog.String("kind", n.Kind))
	return nil
}

func encode(n domain.Notification) ([]byte, error) {
	body := []byte(`{"fields":{}}`)

	var err error
	if body, err = sjson.SetBytes(body, "kind", n.Kind); err != nil {
		return nil, err
	}
	if body, err = sjson.SetBytes(body, "subject", n.Subject); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(n.Fields))
	for k := range n.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		// SetBytes treats dots and wildcards in the path as syntax.
		if body, err = sjson.SetBytes(body, "fields."+escapePath(k), n.Fields[k]); err != nil {
			return nil, err
		}
	}
	return body, nil
}

func escapePath(key string) string {
	var b bytes.Buffer
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\', ':':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
