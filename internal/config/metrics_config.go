package config

// MetricsConfig defines where request metrics are pushed. An empty
// PushgatewayURL keeps metrics in-process only.
type MetricsConfig struct {
	PushgatewayURL string `json:"pushgateway_url,omitempty" yaml:"pushgateway_url,omitempty" env:"HOOKCORD_METRICS_PUSHGATEWAY_URL" validate:"omitempty,url"`
	JobName        string `json:"job_name,omitempty" yaml:"job_name,omitempty" env:"HOOKCORD_METRICS_JOB_NAME" validate:"required_with=PushgatewayURL"`
}

// NewDefaultMetricsConfig creates default metrics configuration
func NewDefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		JobName: DefaultMetricsJobName,
	}
}
