// Package slack sends safety check-ins to Slack via incoming webhooks.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/linnemanlabs/go-core/log"

	"github.com/linnemanlabs/guardian/internal/kiosk"
)

const (
	maxSiteLen  = 150
	httpTimeout = 10 * time.Second
)

// Notifier posts check-ins to a Slack webhook.
type Notifier struct {
	webhookURL string
	client     *http.Client
	logger     log.Logger
}

// New creates a new Slack notifier. If webhookURL is empty, NotifyCheckIn is a no-op.
func New(webhookURL string, logger log.Logger) *Notifier {
	if logger == nil {
		logger = log.Nop()
	}
	return &Notifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: httpTimeout},
		logger:     logger,
	}
}

// NotifyCheckIn posts a check-in to the configured Slack webhook.
// If no webhook URL is configured, it returns nil immediately.
func (n *Notifier) NotifyCheckIn(ctx context.Context, c *kiosk.CheckIn) error {
	if n.webhookURL == "" {
		return nil
	}

	body, err := json.Marshal(buildMessage(c))
	if err != nil {
		return fmt.Errorf("slack: marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("slack: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req) //nolint:gosec // G704: webhookURL is from trusted config, not user input
	if err != nil {
		return fmt.Errorf("slack: post webhook: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("slack: webhook returned %d: %s", resp.StatusCode, string(respBody))
	}

	n.logger.Info(ctx, "check-in posted to slack", "session_id", c.SessionID)
	return nil
}

func buildMessage(c *kiosk.CheckIn) map[string]any {
	return map[string]any{
		"blocks": []map[string]any{
			headerBlock(c),
			fieldsBlock(c),
			contextBlock(c),
		},
	}
}

func headerBlock(c *kiosk.CheckIn) map[string]any {
	return map[string]any{
		"type": "header",
		"text": map[string]any{
			"type": "plain_text",
			"text": fmt.Sprintf("✅ Safety check-in: %s", truncate(siteOrUnknown(c.Site), maxSiteLen)),
		},
	}
}

func fieldsBlock(c *kiosk.CheckIn) map[string]any {
	fields := []map[string]any{
		{
			"type": "mrkdwn",
			"text": fmt.Sprintf("*Site:* %s", truncate(siteOrUnknown(c.Site), maxSiteLen)),
		},
		{
			"type": "mrkdwn",
			"text": fmt.Sprintf("*Session:* %s", c.SessionID),
		},
	}

	return map[string]any{
		"type":   "section",
		"fields": fields,
	}
}

func contextBlock(c *kiosk.CheckIn) map[string]any {
	ts := c.At
	if ts.IsZero() {
		ts = time.Now()
	}

	return map[string]any{
		"type": "context",
		"elements": []map[string]any{
			{
				"type": "mrkdwn",
				"text": fmt.Sprintf("guardian • check-in • %s", ts.UTC().Format("2006-01-02 15:04 UTC")),
			},
		},
	}
}

func siteOrUnknown(site string) string {
	if site == "" {
		return "unknown site"
	}
	return site
}

// truncate caps s at limit bytes, cutting on a rune boundary.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
