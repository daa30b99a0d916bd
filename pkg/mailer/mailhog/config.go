package mailhog

import "time"

// Config holds capture service configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIURL  string        `env:"MAILHOG_API_URL" envDefault:"http://localhost:8025/api/v2/messages"`
	From    string        `env:"MAILHOG_FROM"`
	Timeout time.Duration `env:"MAILHOG_TIMEOUT" envDefault:"10s"`
}
