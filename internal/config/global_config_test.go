package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aleister1102/hookcord/internal/common/errorwrapper"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, DefaultWebhookBaseURL, cfg.Webhook.BaseURL)
	assert.False(t, cfg.Webhook.SerializeAllowedMentions)
	assert.Equal(t, DefaultHTTPClientTimeoutSecs, cfg.HTTPClient.TimeoutSecs)
	assert.Zero(t, cfg.HTTPClient.Retry.MaxRetries)
	assert.Equal(t, DefaultLogLevel, cfg.Log.LogLevel)
	assert.Equal(t, DefaultMetricsJobName, cfg.Metrics.JobName)
	assert.NoError(t, ValidateConfig(cfg))
}

func TestLoadGlobalConfig_NoConfigFile(t *testing.T) {
	chdirForTest(t, t.TempDir())
	t.Setenv(ConfigPathEnvVar, "")

	cfg, err := LoadGlobalConfig("", zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, NewDefaultGlobalConfig(), cfg)
}

func TestLoadGlobalConfig_NonExistentFile(t *testing.T) {
	cfg, err := LoadGlobalConfig("/nonexistent/config.json", zerolog.Nop())

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, errorwrapper.ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "config file does not exist")
}

func TestLoadGlobalConfig_JSONFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.json")

	configData := `{
		"webhook": {
			"url": "https://discord.com/api/webhooks/1/abc",
			"username": "json-bot"
		},
		"log": {
			"log_level": "debug"
		},
		"http_client": {
			"timeout_secs": 5
		}
	}`
	require.NoError(t, os.WriteFile(configFile, []byte(configData), 0644))

	cfg, err := LoadGlobalConfig(configFile, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, "https://discord.com/api/webhooks/1/abc", cfg.Webhook.URL)
	assert.Equal(t, "json-bot", cfg.Webhook.Username)
	assert.Equal(t, "debug", cfg.Log.LogLevel)
	assert.Equal(t, 5, cfg.HTTPClient.TimeoutSecs)
	// untouched sections keep their defaults
	assert.Equal(t, DefaultWebhookBaseURL, cfg.Webhook.BaseURL)
	assert.Equal(t, DefaultLogFormat, cfg.Log.LogFormat)
}

func TestLoadGlobalConfig_YAMLFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")

	configData := `
webhook:
  url: https://discord.com/api/webhooks/1/abc
  serialize_allowed_mentions: true
http_client:
  retry:
    max_retries: 2
    retry_status_codes: [429]
log:
  log_format: json
metrics:
  pushgateway_url: http://localhost:9091
`
	require.NoError(t, os.WriteFile(configFile, []byte(configData), 0644))

	cfg, err := LoadGlobalConfig(configFile, zerolog.Nop())

	require.NoError(t, err)
	assert.True(t, cfg.Webhook.SerializeAllowedMentions)
	assert.Equal(t, 2, cfg.HTTPClient.Retry.MaxRetries)
	assert.Equal(t, []int{429}, cfg.HTTPClient.Retry.RetryStatusCodes)
	assert.Equal(t, "json", cfg.Log.LogFormat)
	assert.Equal(t, "http://localhost:9091", cfg.Metrics.PushgatewayURL)
	assert.Equal(t, DefaultMetricsJobName, cfg.Metrics.JobName)
}

func TestLoadGlobalConfig_YMLFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configFile, []byte("webhook:\n  username: yml-bot\n"), 0644))

	cfg, err := LoadGlobalConfig(configFile, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, "yml-bot", cfg.Webhook.Username)
}

func TestLoadGlobalConfig_InvalidJSON(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "invalid.json")
	require.NoError(t, os.WriteFile(configFile, []byte(`{"webhook": {},}`), 0644))

	cfg, err := LoadGlobalConfig(configFile, zerolog.Nop())

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to unmarshal JSON")
}

func TestLoadGlobalConfig_InvalidYAML(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
webhook: test
  invalid_indent: value
`
	require.NoError(t, os.WriteFile(configFile, []byte(invalidYAML), 0644))

	cfg, err := LoadGlobalConfig(configFile, zerolog.Nop())

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to unmarshal YAML")
}

func TestLoadGlobalConfig_EnvOverrides(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("webhook:\n  url: https://discord.com/api/webhooks/1/file\n"), 0644))

	t.Setenv("HOOKCORD_WEBHOOK_URL", "https://discord.com/api/webhooks/2/env")
	t.Setenv("HOOKCORD_LOG_LEVEL", "warn")
	t.Setenv("HOOKCORD_HTTP_MAX_RETRIES", "3")
	t.Setenv("HOOKCORD_WEBHOOK_SERIALIZE_ALLOWED_MENTIONS", "true")

	cfg, err := LoadGlobalConfig(configFile, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, "https://discord.com/api/webhooks/2/env", cfg.Webhook.URL)
	assert.Equal(t, "warn", cfg.Log.LogLevel)
	assert.Equal(t, 3, cfg.HTTPClient.Retry.MaxRetries)
	assert.True(t, cfg.Webhook.SerializeAllowedMentions)
}

func TestLoadGlobalConfig_InvalidEnvOverride(t *testing.T) {
	chdirForTest(t, t.TempDir())
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("HOOKCORD_HTTP_TIMEOUT_SECS", "soon")

	_, err := LoadGlobalConfig("", zerolog.Nop())
	assert.Error(t, err)
}

func TestGetConfigPath(t *testing.T) {
	dir := t.TempDir()
	chdirForTest(t, dir)
	t.Setenv(ConfigPathEnvVar, "")

	assert.Empty(t, GetConfigPath(""))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{}`), 0644))
	assert.Equal(t, filepath.Join(dir, "config.json"), GetConfigPath(""))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(``), 0644))
	assert.Equal(t, filepath.Join(dir, "config.yaml"), GetConfigPath(""))

	envFile := filepath.Join(t.TempDir(), "env.yaml")
	require.NoError(t, os.WriteFile(envFile, []byte(``), 0644))
	t.Setenv(ConfigPathEnvVar, envFile)
	assert.Equal(t, envFile, GetConfigPath(""))

	flagFile := filepath.Join(t.TempDir(), "flag.yaml")
	require.NoError(t, os.WriteFile(flagFile, []byte(``), 0644))
	assert.Equal(t, flagFile, GetConfigPath(flagFile))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GlobalConfig)
		wantErr string
	}{
		{"defaults", func(*GlobalConfig) {}, ""},
		{"bad log level", func(c *GlobalConfig) { c.Log.LogLevel = "verbose" }, "Log.LogLevel"},
		{"bad log format", func(c *GlobalConfig) { c.Log.LogFormat = "xml" }, "Log.LogFormat"},
		{"bad webhook url", func(c *GlobalConfig) { c.Webhook.URL = "not a url" }, "Webhook.URL"},
		{"negative retries", func(c *GlobalConfig) { c.HTTPClient.Retry.MaxRetries = -1 }, "HTTPClient.Retry.MaxRetries"},
		{"non-error retry status", func(c *GlobalConfig) { c.HTTPClient.Retry.RetryStatusCodes = []int{200} }, "RetryStatusCodes"},
		{"push without job", func(c *GlobalConfig) {
			c.Metrics.PushgatewayURL = "http://localhost:9091"
			c.Metrics.JobName = ""
		}, "Metrics.JobName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultGlobalConfig()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, errorwrapper.ErrInvalidConfiguration)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestHTTPClientConfig_ToClientConfig(t *testing.T) {
	cfg := NewDefaultHTTPClientConfig()
	cfg.TimeoutSecs = 7
	cfg.Proxy = "http://proxy:8080"
	cfg.CustomHeaders = map[string]string{"X-Team": "ops"}
	cfg.Retry.MaxRetries = 2
	cfg.Retry.BaseDelayMs = 100

	clientConfig := cfg.ToClientConfig()

	assert.Equal(t, 7*time.Second, clientConfig.Timeout)
	assert.Equal(t, "http://proxy:8080", clientConfig.Proxy)
	assert.Equal(t, "ops", clientConfig.CustomHeaders["X-Team"])
	assert.Equal(t, DefaultHTTPClientUserAgent, clientConfig.UserAgent)
	assert.Equal(t, 2, clientConfig.Retry.MaxRetries)
	assert.Equal(t, 100*time.Millisecond, clientConfig.Retry.BaseDelay)
	assert.Equal(t, []int{429, 502, 503, 504}, clientConfig.Retry.RetryStatusCodes)

	cfg.TimeoutSecs = 0
	assert.Equal(t, 30*time.Second, cfg.ToClientConfig().Timeout)
}

// chdirForTest changes the working directory for the duration of the test
// and restores it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("chdirForTest: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdirForTest: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldDir); err != nil {
			t.Fatalf("chdirForTest: restore: %v", err)
		}
	})
}
