package config

import "time"

type InternalConfig struct {
	App       App          `mapstructure:"app"`
	KeepAlive AppKeepAlive `mapstructure:"keep_alive"`
	Cache     AppCache     `mapstructure:"cache"`
	Export    AppExport    `mapstructure:"export"`
}

type App struct {
	Env                       string `mapstructure:"env"`
	Port                      string `mapstructure:"port"`
	Version                   string `mapstructure:"version"`
	Timezone                  string `mapstructure:"timezone"`
	EndpointPrefix            string `mapstructure:"endpoint_prefix"`
	MaxRequests               int    `mapstructure:"max_requests"`
	MaxTimeRequestsPerSeconds int    `mapstructure:"max_time_requests_per_seconds"`
	ShutdownTimeout           int    `mapstructure:"shutdown_timeout"`
	RequestTimeoutInSeconds   int    `mapstructure:"request_timeout_in_seconds"`
}

type AppKeepAlive struct {
	URL              string `mapstructure:"url"`
	CronSpec         string `mapstructure:"cron_spec"`
	TimeoutInSeconds int    `mapstructure:"timeout_in_seconds"`
}

type AppCache struct {
	TTLInSeconds int `mapstructure:"ttl_in_seconds"`
}

type AppExport struct {
	RabbitMQQueue                 string `mapstructure:"rabbitmq_queue"`
	PresignedURLExpiryTimeInHours int    `mapstructure:"presigned_url_expiry_time_in_hours"`
}

func (a App) RequestTimeout() time.Duration {
	return time.Duration(a.RequestTimeoutInSeconds) * time.Second
}

func (c AppCache) TTL() time.Duration {
	return time.Duration(c.TTLInSeconds) * time.Second
}

func (e AppExport) PresignedURLExpiry() time.Duration {
	return time.Duration(e.PresignedURLExpiryTimeInHours) * time.Hour
}
