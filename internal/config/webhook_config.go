package config

// WebhookConfig defines the default webhook the CLI talks to
type WebhookConfig struct {
	URL                      string `json:"url,omitempty" yaml:"url,omitempty" env:"HOOKCORD_WEBHOOK_URL" validate:"omitempty,url"`
	BaseURL                  string `json:"base_url,omitempty" yaml:"base_url,omitempty" env:"HOOKCORD_WEBHOOK_BASE_URL" validate:"omitempty,url"`
	Username                 string `json:"username,omitempty" yaml:"username,omitempty" env:"HOOKCORD_WEBHOOK_USERNAME"`
	AvatarURL                string `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty" env:"HOOKCORD_WEBHOOK_AVATAR_URL" validate:"omitempty,url"`
	SerializeAllowedMentions bool   `json:"serialize_allowed_mentions" yaml:"serialize_allowed_mentions" env:"HOOKCORD_WEBHOOK_SERIALIZE_ALLOWED_MENTIONS"`
}

// NewDefaultWebhookConfig creates default webhook configuration
func NewDefaultWebhookConfig() WebhookConfig {
	return WebhookConfig{
		BaseURL:                  DefaultWebhookBaseURL,
		SerializeAllowedMentions: DefaultWebhookSerializeAllowedMentions,
	}
}
