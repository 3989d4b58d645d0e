package config

type RouterConfig struct {
	AllowedOrigins     string `mapstructure:"allowed_origins"`
	AllowedHeaders     string `mapstructure:"allowed_headers"`
	RateLimitPerMinute int    `mapstructure:"rate_limit_per_minute"`
}
