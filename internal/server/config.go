package server

import (
	"time"

	"github.com/assetnote/pwdgen/pkg/entropy"
)

const (
	DefaultListen     = "127.0.0.1:8080"
	DefaultTimeout    = 2 * time.Second
	DefaultMaxLength  = 4096
	DefaultMaxCount   = 100
	DefaultMaxRetries = 1 << 20
)

type Config struct {
	Listen     string        `toml:"listen" json:"listen" mapstructure:"listen"`
	Timeout    time.Duration `toml:"timeout" json:"timeout" mapstructure:"timeout"`
	MaxLength  int           `toml:"max_length" json:"max_length" mapstructure:"max_length"`
	MaxCount   int           `toml:"max_count" json:"max_count" mapstructure:"max_count"`
	MaxRetries int64         `toml:"max_retries" json:"max_retries" mapstructure:"max_retries"`
	Source     string        `toml:"source" json:"source" mapstructure:"source"`
}

type ConfigOption func(*Config)

func NewDefaultConfig() *Config {
	return &Config{
		Listen:     DefaultListen,
		Timeout:    DefaultTimeout,
		MaxLength:  DefaultMaxLength,
		MaxCount:   DefaultMaxCount,
		MaxRetries: DefaultMaxRetries,
		Source:     entropy.NameCrypto,
	}
}

func Listen(addr string) ConfigOption {
	return func(c *Config) {
		c.Listen = addr
	}
}

func Timeout(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.Timeout = d
	}
}

func MaxLength(n int) ConfigOption {
	return func(c *Config) {
		c.MaxLength = n
	}
}

func MaxCount(n int) ConfigOption {
	return func(c *Config) {
		c.MaxCount = n
	}
}

func MaxRetries(n int64) ConfigOption {
	return func(c *Config) {
		c.MaxRetries = n
	}
}

func Source(name string) ConfigOption {
	return func(c *Config) {
		c.Source = name
	}
}
