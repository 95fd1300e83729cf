package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	MongoDB struct {
		URI        string
		DbName     string
		Collection string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
)

// Optional drivers are switched off by leaving their host empty.

func (r Redis) Enabled() bool {
	return r.Host != ""
}

func (r RabbitMQ) Enabled() bool {
	return r.Host != ""
}

func (m Minio) Enabled() bool {
	return m.Host != ""
}
