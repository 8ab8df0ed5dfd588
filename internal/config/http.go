package config

import "time"

type HTTP struct {
	BaseURL   string    `env:"BASE_URL,expand" envDefault:"/"`
	Address   string    `env:"ADDRESS,expand" envDefault:":3002"`
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`
}

type RateLimit struct {
	Enabled      bool          `env:"ENABLED" envDefault:"true"`
	TrustHeaders bool          `env:"TRUST_HEADERS" envDefault:"false"`
	Interval     time.Duration `env:"INTERVAL" envDefault:"100ms"`
	MaxBurst     int           `env:"MAX_BURST" envDefault:"30"`
	CacheSize    int           `env:"CACHE_SIZE" envDefault:"1024"`
	TTL          time.Duration `env:"TTL" envDefault:"10m"`
}
