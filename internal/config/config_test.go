package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfig_Validate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Env:          "development",
			Port:         "8480",
			JWTSecret:    "secure-secret-at-least-32-chars-long",
			DBPassword:   "secure-password",
			DBSSLMode:    "disable",
			TraceSampler: 1.0,
		}
	}

	t.Run("valid development config", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		c := base()
		c.Port = ""
		assert.Error(t, c.Validate())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		c := base()
		c.JWTSecret = ""
		assert.Error(t, c.Validate())
	})

	t.Run("production rejects default jwt secret", func(t *testing.T) {
		c := base()
		c.Env = "production"
		c.JWTSecret = "your-secret-key-change-in-production"
		assert.Error(t, c.Validate())
	})

	t.Run("production rejects short jwt secret", func(t *testing.T) {
		c := base()
		c.Env = "prod"
		c.JWTSecret = "too-short"
		assert.Error(t, c.Validate())
	})

	t.Run("production rejects default db password", func(t *testing.T) {
		c := base()
		c.Env = "production"
		c.DBPassword = "password"
		assert.Error(t, c.Validate())
	})

	t.Run("sampler ratio out of range", func(t *testing.T) {
		c := base()
		c.TraceSampler = 1.5
		assert.Error(t, c.Validate())
	})
}

func TestLoadConfig_FromFile(t *testing.T) {
	defer viper.Reset()
	defer os.Unsetenv("APP_ENV")

	dir := t.TempDir()
	raw, err := yaml.Marshal(map[string]any{
		"PORT":       "9001",
		"DB_NAME":    "chirp_test",
		"JWT_SECRET": "file-provided-secret-with-enough-length",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), raw, 0o644))

	t.Chdir(dir)
	os.Setenv("APP_ENV", "development")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9001", c.Port)
	assert.Equal(t, "chirp_test", c.DBName)
	assert.Equal(t, "file-provided-secret-with-enough-length", c.JWTSecret)
	// Unset keys fall back to defaults
	assert.Equal(t, "localhost", c.DBHost)
	assert.Equal(t, "development", c.Env)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	defer viper.Reset()
	defer os.Unsetenv("APP_ENV")
	defer os.Unsetenv("PORT")

	t.Chdir(t.TempDir())
	os.Setenv("APP_ENV", "development")
	os.Setenv("PORT", "9999")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9999", c.Port)
}
