package config

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	ctxutil "backend/insurance-platform/app/pkg/util/context"
)

// bindEnv binds an environment variable with an optional default value
func bindEnv(configKey, envKey string, defaultValue ...interface{}) {
	if len(defaultValue) > 0 {
		viper.SetDefault(configKey, defaultValue[0])
	}
	viper.BindEnv(configKey, envKey)
}

type ApplicationConfig struct {
	ServerConfig     ServerConfig     `mapstructure:"server"`
	DatabaseConfig   DatabaseConfig   `mapstructure:"database"`
	RedisConfig      RedisConfig      `mapstructure:"redis"`
	RouterConfig     RouterConfig     `mapstructure:"router"`
	BcryptConfig     BcryptConfig     `mapstructure:"bcrypt"`
	CloudinaryConfig CloudinaryConfig `mapstructure:"cloudinary"`
}

func ReadApplicationConfig(env ctxutil.AppMode, logger *zap.Logger) (cfg ApplicationConfig, err error) {
	if env == "" {
		env = ctxutil.AppModeLocal
	}
	confFileName := fmt.Sprintf("config-%s", env)

	viper.SetConfigName(confFileName)
	viper.SetConfigType("yaml")

	configPath := "./config"
	if env == ctxutil.AppModeTest {
		configPath = "../../../config"
	}
	viper.AddConfigPath(configPath)
	// For unit tests
	viper.AddConfigPath("../../../../config")

	if err := viper.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("error reading config file: %v", err)
	} else {
		logger.Info(
			"using config",
			zap.String("file", confFileName),
		)
	}
	viper.AutomaticEnv()

	// Server
	bindEnv("server.port", "SERVER_PORT")

	// Database
	bindEnv("database.protocol", "DB_PROTOCOL")
	bindEnv("database.url", "DB_URL")
	bindEnv("database.replica_url", "DB_REPLICA_URL")
	bindEnv("database.name", "DB_NAME")
	bindEnv("database.port", "DB_PORT")
	bindEnv("database.username", "DB_USERNAME")
	bindEnv("database.password", "DB_PASSWORD")
	bindEnv("database.ssl_mode", "SSL_MODE")
	bindEnv("database.max_db_conns", "DB_MAX_DB_CONNS")
	bindEnv("database.max_idle_db_conns", "DB_MAX_IDLE_DB_CONNS")
	bindEnv("database.max_conn_lifetime", "DB_MAX_CONN_LIFETIME")
	bindEnv("database.max_conn_idle_time", "DB_MAX_CONN_IDLE_TIME")

	// Redis
	bindEnv("redis.hosts", "REDIS_HOSTS")
	bindEnv("redis.pool_size", "REDIS_POOL_SIZE")
	bindEnv("redis.min_idle_conns", "REDIS_MIN_IDLE_CONNS")
	bindEnv("redis.max_idle_conns", "REDIS_MAX_IDLE_CONNS")
	bindEnv("redis.write_timeout", "REDIS_WRITE_TIMEOUT")
	bindEnv("redis.read_timeout", "REDIS_READ_TIMEOUT")
	bindEnv("redis.conn_max_lifetime", "REDIS_CONN_MAX_LIFETIME")

	// Router
	bindEnv("router.allowed_origins", "ROUTER_ALLOWED_ORIGINS")
	bindEnv("router.allowed_headers", "ROUTER_ALLOWED_HEADERS")
	bindEnv("router.rate_limit_per_minute", "ROUTER_RATE_LIMIT_PER_MINUTE", 120)

	// Bcrypt
	bindEnv("bcrypt.cost", "BCRYPT_COST")

	// Cloudinary
	bindEnv("cloudinary.cloud_name", "CLOUDINARY_CLOUD_NAME")
	bindEnv("cloudinary.api_key", "CLOUDINARY_API_KEY")
	bindEnv("cloudinary.api_secret", "CLOUDINARY_API_SECRET")
	bindEnv("cloudinary.upload_folder", "CLOUDINARY_UPLOAD_FOLDER", "xtbh-insurance/images")

	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshalling config: %s", err.Error())
	}

	return cfg, err
}
