package mailer

import "time"

// Driver names accepted by Config.Driver.
const (
	DriverSMTP     = "smtp"
	DriverResend   = "resend"
	DriverPostmark = "postmark"
	DriverMailHog  = "mailhog"
	DriverLog      = "log"
)

// Config holds mailer configuration shared by all providers.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Driver  string        `env:"MAIL_DRIVER" envDefault:"log"`
	Timeout time.Duration `env:"MAIL_TIMEOUT" envDefault:"10s"`
}

// IsCapture reports whether the configured driver forwards messages to a
// capture service instead of delivering them.
func (c Config) IsCapture() bool {
	return c.Driver == DriverMailHog
}
