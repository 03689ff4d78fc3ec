package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the configuration for required fields and valid values.
// Returns an error with a descriptive field path on failure.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Addr == "" {
		errs = append(errs, fmt.Errorf("server.addr is required"))
	}

	if c.Span.Header == "" {
		errs = append(errs, fmt.Errorf("span.header is required"))
	}

	if c.Identity.Subject == "" {
		errs = append(errs, fmt.Errorf("identity.subject is required"))
	}

	// upstream.url must be an absolute URL when set.
	if c.Upstream.URL != "" {
		u, err := url.Parse(c.Upstream.URL)
		if err != nil {
			errs = append(errs, fmt.Errorf("upstream.url: %w", err))
		} else if u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("upstream.url %q must include scheme and host", c.Upstream.URL))
		}
	}

	if c.Upstream.RetryMax < 0 {
		errs = append(errs, fmt.Errorf("upstream.retry_max must be >= 0, got %d", c.Upstream.RetryMax))
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		errs = append(errs, fmt.Errorf("metrics.path must start with \"/\", got %q", c.Metrics.Path))
	}

	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
		// valid
	default:
		errs = append(errs, fmt.Errorf("logging.level must be \"trace\", \"debug\", \"info\", \"warn\", or \"error\", got %q", c.Logging.Level))
	}

	switch c.Logging.Format {
	case "text", "json":
		// valid
	default:
		errs = append(errs, fmt.Errorf("logging.format must be \"text\" or \"json\", got %q", c.Logging.Format))
	}

	return errors.Join(errs...)
}
