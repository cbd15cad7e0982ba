package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"bearer":    "",
			"bearerUrl": "",
		},
		"auth": map[string]any{
			"tokenTTL": "30m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_BEARER", want: "secretKey.bearer"},
		{envKey: "SECRETKEY_BEARERURL", want: "secretKey.bearerUrl"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTTL"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyAuthDefaults(t *testing.T) {
	auth := ApplyAuthDefaults(nil)

	assert.Equal(t, DefaultTokenTTL, auth.TokenTTL)
	assert.Equal(t, DefaultIssuer, auth.Issuer)
	assert.Equal(t, DefaultPBKDF2Iterations, auth.PBKDF2Iterations)
	assert.Equal(t, DefaultUsernameMinLength, auth.UsernameMinLength)
	assert.Equal(t, DefaultUsernameMaxLength, auth.UsernameMaxLength)
	assert.Equal(t, DefaultPasswordMinLength, auth.PasswordMinLength)

	custom := ApplyAuthDefaults(&AuthConfig{TokenTTL: 5 * time.Minute, Issuer: "lobby", PBKDF2Iterations: 20000})
	assert.Equal(t, 5*time.Minute, custom.TokenTTL)
	assert.Equal(t, "lobby", custom.Issuer)
	assert.Equal(t, 20000, custom.PBKDF2Iterations)

	negative := ApplyAuthDefaults(&AuthConfig{TokenTTL: -time.Hour})
	assert.Equal(t, DefaultTokenTTL, negative.TokenTTL)
}

func TestLoadWithEnv_OverridesYAMLWithEnvironment(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `env:
  serviceName: arena
  log:
    level: info
secretKey:
  bearer: from-yaml
auth:
  tokenTTL: 15m
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yamlBody), 0o600))
	t.Chdir(dir)
	t.Setenv("SECRETKEY_BEARER", "from-env")
	t.Setenv("AUTH_TOKENTTL", "45m")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "arena", cfg.Env.ServiceName)
	assert.Equal(t, "from-env", cfg.SecretKey.Bearer)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 45*time.Minute, cfg.Auth.TokenTTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file missing.yaml not found")
}
