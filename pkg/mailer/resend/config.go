package resend

import (
	"errors"
	"net/url"
	"time"

	"github.com/dmitrymomot/orderdesk/pkg/mailer"
)

const defaultTimeout = 10 * time.Second

// Config selects the Resend account and the fallback sender used when an
// order email carries no From header.
type Config struct {
	APIKey      string        `env:"RESEND_API_KEY"`
	SenderEmail string        `env:"RESEND_FROM_EMAIL"`
	SenderName  string        `env:"RESEND_FROM_NAME"`
	Timeout     time.Duration `env:"RESEND_TIMEOUT" envDefault:"10s"`
	// Endpoint overrides the API base URL. Empty means api.resend.com.
	Endpoint string `env:"RESEND_ENDPOINT"`
}

func (c Config) validate() (*url.URL, error) {
	if c.APIKey == "" {
		return nil, errors.Join(mailer.ErrInvalidConfig, errors.New("resend: api key is required"))
	}
	if c.Endpoint == "" {
		return nil, nil
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.Join(mailer.ErrInvalidConfig, errors.New("resend: endpoint must be an absolute url"))
	}
	if u.Path == "" || u.Path[len(u.Path)-1] != '/' {
		u.Path += "/"
	}
	return u, nil
}

func (c Config) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return defaultTimeout
}

func (c Config) from() string {
	return mailer.Recipient(c.SenderName, c.SenderEmail)
}
