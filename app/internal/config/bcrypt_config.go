package config

type BcryptConfig struct {
	Cost int `mapstructure:"cost"`
}
