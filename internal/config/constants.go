package config

const (
	// Config discovery
	ConfigPathEnvVar  = "HOOKCORD_CONFIG_PATH"
	MaxConfigFileSize = 10 * 1024 * 1024

	// Webhook Defaults
	DefaultWebhookBaseURL                  = "https://discord.com/api"
	DefaultWebhookSerializeAllowedMentions = false

	// HTTP Client Defaults
	DefaultHTTPClientTimeoutSecs     = 30
	DefaultHTTPClientUserAgent       = "hookcord (https://github.com/aleister1102/hookcord, 1.0)"
	DefaultHTTPClientFollowRedirects = true
	DefaultHTTPClientMaxRedirects    = 5
	DefaultHTTPClientEnableHTTP2     = true

	// Retry Defaults (disabled)
	DefaultRetryMaxRetries   = 0
	DefaultRetryBaseDelayMs  = 500
	DefaultRetryMaxDelaySecs = 10
	DefaultRetryEnableJitter = true

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Metrics Defaults
	DefaultMetricsJobName = "hookcord"
)
