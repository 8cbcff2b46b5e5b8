package inits

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("DB_CONN", "host=localhost user=test dbname=test")
	t.Setenv("REDIS_CONN", "redis://localhost:6379/0")
	t.Setenv("SIGNATURE_SECRET_KEY", "test-secret")
}

func TestConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Config()
	require.NoError(t, err)

	assert.False(t, cfg.System.IsProd)
	assert.Equal(t, ":8080", cfg.System.Listen)
	assert.Equal(t, []string{"*"}, cfg.System.CORSOrigins)
	assert.Equal(t, "host=localhost user=test dbname=test", cfg.System.DBConnectionString)
	assert.Equal(t, "redis://localhost:6379/0", cfg.System.RedisConnectionString)
	assert.Equal(t, "test-secret", cfg.Security.SignatureSecretKey)
	assert.NotEmpty(t, cfg.System.UploadDir)
	assert.Empty(t, cfg.WhatsApp.APIURL)
}

func TestConfigOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MODE", "production")
	t.Setenv("LISTEN", ":3000")
	t.Setenv("CORS_ORIGINS", "https://webafan.com, https://www.webafan.com,")
	t.Setenv("UPLOAD_DIR", "/tmp/uploads")
	t.Setenv("WHATSAPP_API_URL", "https://wablas.example.com")
	t.Setenv("WHATSAPP_API_TOKEN", "token")
	t.Setenv("WHATSAPP_SENDER", "628123456789")

	cfg, err := Config()
	require.NoError(t, err)

	assert.True(t, cfg.System.IsProd)
	assert.Equal(t, ":3000", cfg.System.Listen)
	assert.Equal(t, []string{"https://webafan.com", "https://www.webafan.com"}, cfg.System.CORSOrigins)
	assert.Equal(t, "/tmp/uploads", cfg.System.UploadDir)
	assert.Equal(t, "https://wablas.example.com", cfg.WhatsApp.APIURL)
	assert.Equal(t, "token", cfg.WhatsApp.Token)
	assert.Equal(t, "628123456789", cfg.WhatsApp.Sender)
}

func TestConfigMissingRequired(t *testing.T) {
	for _, missing := range []string{"DB_CONN", "REDIS_CONN", "SIGNATURE_SECRET_KEY"} {
		t.Run(missing, func(t *testing.T) {
			setRequiredEnv(t)
			// t.Setenv 登记了恢复逻辑，这里只负责删掉
			require.NoError(t, os.Unsetenv(missing))

			_, err := Config()
			assert.Error(t, err)
		})
	}
}
