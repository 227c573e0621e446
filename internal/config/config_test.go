// AngelaMos | 2026
// config_test.go

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App: AppConfig{Environment: "development"},
		Server: ServerConfig{
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Database: DatabaseConfig{URL: "postgres://localhost/gympulse"},
		Redis:    RedisConfig{URL: "redis://localhost:6379/0"},
		JWT:      JWTConfig{PrivateKeyPath: "keys/private.pem"},
		Capacity: CapacityConfig{MaxMembers: 5000},
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/gympulse_test")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("MAX_MEMBERS", "100")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "gympulse", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres://localhost/gympulse_test", cfg.Database.URL)
	assert.Equal(t, 100, cfg.Capacity.MaxMembers)
	assert.Equal(t, "admin", cfg.Auth.AdminUsername)
	assert.Equal(t, 12*time.Hour, cfg.JWT.AccessTokenExpire)
	assert.Equal(t, 30*time.Second, cfg.Redis.PoolTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Redis.ConnMaxIdleTime)
}

func TestServerAddress(t *testing.T) {
	cfg := ServerConfig{Host: "0.0.0.0", Port: 8080}
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
}

func TestValidate(t *testing.T) {
	require.NoError(t, validate(validConfig()))
}

func TestValidateRequiresDatabaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.Database.URL = ""
	assert.Error(t, validate(cfg))
}

func TestValidateRequiresPositiveCapacity(t *testing.T) {
	cfg := validConfig()
	cfg.Capacity.MaxMembers = 0
	assert.Error(t, validate(cfg))
}

func TestValidateRejectsWildcardOriginWithCredentials(t *testing.T) {
	cfg := validConfig()
	cfg.CORS.AllowCredentials = true
	cfg.CORS.AllowedOrigins = []string{"*"}
	assert.Error(t, validate(cfg))
}

func TestValidateProductionNeedsAdminHash(t *testing.T) {
	cfg := validConfig()
	cfg.App.Environment = "production"
	cfg.Auth.AdminPasswordHash = ""
	assert.Error(t, validate(cfg))

	cfg.Auth.AdminPasswordHash = "$argon2id$..."
	assert.NoError(t, validate(cfg))
}
