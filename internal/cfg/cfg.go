package cfg

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
)

// Config adds server-specific configuration fields to the
// common cfg.Registerable and cfg.Validatable interfaces
type Config struct {
	DrainSeconds          int
	ShutdownBudgetSeconds int
	APIPort               int
	SessionIdleMinutes    int
	Content
}

// Content is the site text and check-in wiring shared by the server and the terminal kiosk.
type Content struct {
	Site              string
	Announcement      string
	CheckInWebhookURL string
}

const defaultAnnouncement = "Tuesday afternoon: visiting eye clinic at the health center"

// RegisterFlags binds Config fields to the given FlagSet with defaults inline
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.DrainSeconds, "drain-seconds", 15, "seconds to wait for in-flight requests to drain before shutdown (1..300)")
	fs.IntVar(&c.ShutdownBudgetSeconds, "shutdown-budget-seconds", 30, "total seconds for component shutdown after drain (1..300)")
	fs.IntVar(&c.APIPort, "http-port", 8080, "API listen TCP port (1..65535)")
	fs.IntVar(&c.SessionIdleMinutes, "session-idle-minutes", 30, "minutes of inactivity before a kiosk session is dropped (1..1440)")
	c.Content.RegisterFlags(fs)
}

// RegisterFlags binds Content fields to the given FlagSet with defaults inline
func (c *Content) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Site, "site", "Changbin", "site name shown on the home screen and in check-ins")
	fs.StringVar(&c.Announcement, "announcement", defaultAnnouncement, "notice shown on the home screen (empty = none)")
	fs.StringVar(&c.CheckInWebhookURL, "checkin-webhook-url", "", "Slack webhook URL for safety check-ins (empty = log only)")
}

// Validate checks all configuration fields for correctness.
// It returns an error if any field is invalid, or nil if all fields are valid.
func (c *Config) Validate() error {
	var errs []error

	// Drain and shutdown budgets
	if c.DrainSeconds <= 0 || c.DrainSeconds > 300 {
		errs = append(errs, fmt.Errorf("invalid DRAIN_SECONDS %d (must be 1..300)", c.DrainSeconds))
	}
	if c.ShutdownBudgetSeconds <= 0 || c.ShutdownBudgetSeconds > 300 {
		errs = append(errs, fmt.Errorf("invalid SHUTDOWN_BUDGET_SECONDS %d (must be 1..300)", c.ShutdownBudgetSeconds))
	}

	// Shutdown budget must be greater than drain time
	if c.ShutdownBudgetSeconds <= c.DrainSeconds {
		errs = append(errs, fmt.Errorf("SHUTDOWN_BUDGET_SECONDS %d must be greater than DRAIN_SECONDS %d", c.ShutdownBudgetSeconds, c.DrainSeconds))
	}

	// API port must be valid TCP port number
	if c.APIPort <= 0 || c.APIPort > 65535 {
		errs = append(errs, fmt.Errorf("invalid HTTP_PORT %d (must be 1..65535)", c.APIPort))
	}

	if c.SessionIdleMinutes <= 0 || c.SessionIdleMinutes > 1440 {
		errs = append(errs, fmt.Errorf("invalid SESSION_IDLE_MINUTES %d (must be 1..1440)", c.SessionIdleMinutes))
	}

	if err := c.Content.Validate(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Validate checks the site text and webhook URL.
func (c *Content) Validate() error {
	var errs []error

	if c.Site == "" {
		errs = append(errs, errors.New("SITE is required"))
	}

	// Webhook is optional but must be an absolute http(s) URL when set
	if c.CheckInWebhookURL != "" {
		u, err := url.Parse(c.CheckInWebhookURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf("invalid CHECKIN_WEBHOOK_URL %q (must be an absolute http(s) URL)", c.CheckInWebhookURL))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
