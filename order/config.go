package order

// Config holds order endpoint configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Path          string `env:"ORDER_PATH" envDefault:"/mail.php"`
	Recipient     string `env:"ORDER_RECIPIENT" envDefault:"orders@paracay.com"`
	FromName      string `env:"ORDER_FROM_NAME" envDefault:"Paradise Cay Orders"`
	FromAddress   string `env:"ORDER_FROM_ADDRESS" envDefault:"orders@paracay.com"`
	StoreTitle    string `env:"ORDER_STORE_TITLE" envDefault:"Paradise Cay Publications"`
	CaptureStrict bool   `env:"ORDER_CAPTURE_STRICT" envDefault:"false"`
}

// DefaultConfig returns the configuration the env defaults produce.
func DefaultConfig() Config {
	return Config{
		Path:        "/mail.php",
		Recipient:   "orders@paracay.com",
		FromName:    "Paradise Cay Orders",
		FromAddress: "orders@paracay.com",
		StoreTitle:  "Paradise Cay Publications",
	}
}
