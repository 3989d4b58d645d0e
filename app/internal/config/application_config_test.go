package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"backend/insurance-platform/app/internal/config"
	ctxutil "backend/insurance-platform/app/pkg/util/context"
)

// The shipped config files must unmarshal into the typed config structs;
// a file that cannot load means the process never starts.
func TestReadApplicationConfig_TestFile(t *testing.T) {
	cfg, err := config.ReadApplicationConfig(ctxutil.AppModeTest, zap.NewNop())

	assert.NoError(t, err)
	assert.Equal(t, 8099, cfg.ServerConfig.Port)

	// Timeout and lifetime settings are plain integer seconds.
	assert.Equal(t, 1800, cfg.DatabaseConfig.MaxConnLifetime)
	assert.Equal(t, 300, cfg.DatabaseConfig.MaxConnIdleTime)
	assert.Equal(t, 3, cfg.RedisConfig.WriteTimeout)
	assert.Equal(t, 3, cfg.RedisConfig.ReadTimeout)
	assert.Equal(t, 1800, cfg.RedisConfig.ConnMaxLifetime)

	assert.Equal(t, "insurance_platform_test", cfg.DatabaseConfig.Name)
	assert.Equal(t, 4, cfg.BcryptConfig.Cost)
	assert.Equal(t, "xtbh-insurance/images", cfg.CloudinaryConfig.UploadFolder)
	assert.Equal(t, 1000, cfg.RouterConfig.RateLimitPerMinute)
}
