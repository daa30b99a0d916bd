package smtp

import "time"

// TLS modes accepted by Config.TLSMode.
const (
	TLSModeStartTLS = "starttls"
	TLSModeSSL      = "ssl"
	TLSModeNone     = "none"
)

// Config holds SMTP relay configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Host               string        `env:"SMTP_HOST" envDefault:"localhost"`
	Username           string        `env:"SMTP_USERNAME"`
	Password           string        `env:"SMTP_PASSWORD"`
	TLSMode            string        `env:"SMTP_TLS" envDefault:"starttls"`
	LocalName          string        `env:"SMTP_LOCAL_NAME"`
	Port               int           `env:"SMTP_PORT" envDefault:"25"`
	Timeout            time.Duration `env:"SMTP_TIMEOUT" envDefault:"10s"`
	InsecureSkipVerify bool          `env:"SMTP_INSECURE_SKIP_VERIFY"`
}
