package generator

// Config holds the tunables of a Generator
type Config struct {
	// MaxRetries bounds the total number of rejected candidates in a single Generate call.
	// Zero means unlimited
	MaxRetries int64
}

type ConfigOption func(*Config)

func NewDefaultConfig() *Config {
	return &Config{
		MaxRetries: 0,
	}
}

// MaxRetries sets the rejection budget for a single Generate call
func MaxRetries(n int64) ConfigOption {
	return func(c *Config) {
		c.MaxRetries = n
	}
}
