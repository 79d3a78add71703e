package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gameforge/internal/config"
	"gameforge/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSecrets(t *testing.T, secrets map[string]string) {
	t.Helper()
	dir := t.TempDir()
	for name, value := range secrets {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(value+"\n"), 0o600))
	}
	old := utils.SecretsDir
	utils.SecretsDir = dir
	t.Cleanup(func() { utils.SecretsDir = old })
}

func TestLoad(t *testing.T) {
	t.Chdir(t.TempDir())
	writeSecrets(t, map[string]string{"db_password": "pg-pass", "jwt_secret": "jwt", "ai_api_key": "sk-test"})
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "games")
	t.Setenv("LOCK_TTL", "30s")
	t.Setenv("AI_TIMEOUT", "20s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://postgres:pg-pass@db:5432/games?sslmode=disable", cfg.GetDSN())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.GetAllowedOrigins())
	assert.Equal(t, 30*time.Second, cfg.LockTTL)
	assert.Equal(t, "sk-test", cfg.AIAPIKey)
	assert.Equal(t, "8080", cfg.Port)
	assert.Greater(t, cfg.LockTTL, cfg.AITimeout)
}

func TestLoad_DefaultLockOutlivesGeneratorTimeout(t *testing.T) {
	t.Chdir(t.TempDir())
	writeSecrets(t, map[string]string{"db_password": "pg-pass", "jwt_secret": "jwt", "ai_api_key": "sk-test"})

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Greater(t, cfg.LockTTL, cfg.AITimeout)
}

func TestLoad_EnvFallbackAndOllamaWithoutKey(t *testing.T) {
	t.Chdir(t.TempDir())
	writeSecrets(t, nil)
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("JWT_SECRET", "jwt")
	t.Setenv("AI_CLIENT_TYPE", "ollama")
	t.Setenv("AI_API_KEY", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.DBPassword)
	assert.Empty(t, cfg.AIAPIKey)
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Chdir(t.TempDir())
	writeSecrets(t, map[string]string{"db_password": "pg-pass"})
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := config.Config{
		LockBackend:        config.LockBackendMemory,
		AIClientType:       "gemini",
		JWTSecret:          "s",
		LockTTL:            time.Minute,
		RateLimitPerMinute: 5,
		MediaRoot:          "/tmp/media",
	}
	require.NoError(t, valid.Validate())

	bad := valid
	bad.LockBackend = "etcd"
	bad.AIClientType = "markov"
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOCK_BACKEND")
	assert.Contains(t, err.Error(), "AI_CLIENT_TYPE")

	short := valid
	short.AITimeout = 2 * time.Minute
	short.LockTTL = 2 * time.Minute
	err = short.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOCK_TTL")
}
