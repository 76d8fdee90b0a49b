package config

import (
	"time"

	"github.com/aleister1102/hookcord/internal/httpclient"
)

// HTTPClientConfig defines configuration for the webhook HTTP client
type HTTPClientConfig struct {
	TimeoutSecs        int               `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty" env:"HOOKCORD_HTTP_TIMEOUT_SECS" validate:"omitempty,min=1,max=600"`
	Proxy              string            `json:"proxy,omitempty" yaml:"proxy,omitempty" env:"HOOKCORD_HTTP_PROXY" validate:"omitempty,url"`
	InsecureSkipVerify bool              `json:"insecure_skip_verify" yaml:"insecure_skip_verify" env:"HOOKCORD_HTTP_INSECURE_SKIP_VERIFY"`
	UserAgent          string            `json:"user_agent,omitempty" yaml:"user_agent,omitempty" env:"HOOKCORD_HTTP_USER_AGENT"`
	FollowRedirects    bool              `json:"follow_redirects" yaml:"follow_redirects"`
	MaxRedirects       int               `json:"max_redirects,omitempty" yaml:"max_redirects,omitempty" validate:"omitempty,min=0,max=20"`
	EnableHTTP2        bool              `json:"enable_http2" yaml:"enable_http2"`
	CustomHeaders      map[string]string `json:"custom_headers,omitempty" yaml:"custom_headers,omitempty"`
	Retry              RetryConfig       `json:"retry,omitempty" yaml:"retry,omitempty"`
}

// RetryConfig defines configuration for HTTP request retries
type RetryConfig struct {
	// Retries after the first attempt; 0 sends exactly one request
	MaxRetries int `json:"max_retries" yaml:"max_retries" env:"HOOKCORD_HTTP_MAX_RETRIES" validate:"min=0,max=10"`
	// Base delay in milliseconds for exponential backoff
	BaseDelayMs int `json:"base_delay_ms,omitempty" yaml:"base_delay_ms,omitempty" validate:"omitempty,min=1,max=60000"`
	// Maximum delay in seconds for exponential backoff
	MaxDelaySecs int `json:"max_delay_secs,omitempty" yaml:"max_delay_secs,omitempty" validate:"omitempty,min=1,max=3600"`
	// Enable jitter to randomize delays slightly
	EnableJitter bool `json:"enable_jitter" yaml:"enable_jitter"`
	// HTTP status codes that should trigger retries (default: 429, 502, 503, 504)
	RetryStatusCodes []int `json:"retry_status_codes,omitempty" yaml:"retry_status_codes,omitempty" validate:"dive,min=400,max=599"`
}

// NewDefaultHTTPClientConfig creates default HTTP client configuration
func NewDefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		TimeoutSecs:     DefaultHTTPClientTimeoutSecs,
		UserAgent:       DefaultHTTPClientUserAgent,
		FollowRedirects: DefaultHTTPClientFollowRedirects,
		MaxRedirects:    DefaultHTTPClientMaxRedirects,
		EnableHTTP2:     DefaultHTTPClientEnableHTTP2,
		Retry:           NewDefaultRetryConfig(),
	}
}

// NewDefaultRetryConfig creates default retry configuration
func NewDefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:       DefaultRetryMaxRetries,
		BaseDelayMs:      DefaultRetryBaseDelayMs,
		MaxDelaySecs:     DefaultRetryMaxDelaySecs,
		EnableJitter:     DefaultRetryEnableJitter,
		RetryStatusCodes: []int{429, 502, 503, 504},
	}
}

// ToClientConfig maps the file configuration onto the HTTP client's own
// configuration, keeping client defaults for anything not configurable here.
func (c HTTPClientConfig) ToClientConfig() httpclient.HTTPClientConfig {
	clientConfig := httpclient.DefaultHTTPClientConfig()
	clientConfig.Timeout = time.Duration(c.TimeoutSecs) * time.Second
	clientConfig.Proxy = c.Proxy
	clientConfig.InsecureSkipVerify = c.InsecureSkipVerify
	if c.UserAgent != "" {
		clientConfig.UserAgent = c.UserAgent
	}
	clientConfig.FollowRedirects = c.FollowRedirects
	clientConfig.MaxRedirects = c.MaxRedirects
	clientConfig.EnableHTTP2 = c.EnableHTTP2
	for key, value := range c.CustomHeaders {
		clientConfig.CustomHeaders[key] = value
	}

	retry := httpclient.DefaultRetryHandlerConfig()
	retry.MaxRetries = c.Retry.MaxRetries
	if c.Retry.BaseDelayMs > 0 {
		retry.BaseDelay = time.Duration(c.Retry.BaseDelayMs) * time.Millisecond
	}
	if c.Retry.MaxDelaySecs > 0 {
		retry.MaxDelay = time.Duration(c.Retry.MaxDelaySecs) * time.Second
	}
	retry.EnableJitter = c.Retry.EnableJitter
	if len(c.Retry.RetryStatusCodes) > 0 {
		retry.RetryStatusCodes = append([]int{}, c.Retry.RetryStatusCodes...)
	}
	clientConfig.Retry = retry

	if clientConfig.Timeout <= 0 {
		clientConfig.Timeout = httpclient.DefaultHTTPClientConfig().Timeout
	}
	return clientConfig
}
