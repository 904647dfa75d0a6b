package config

type (
	DriverConfig struct {
		PostgresDB PostgresDB
		Redis      Redis
		RabbitMQ   RabbitMQ
		Logger     Logger
	}

	PostgresDB struct {
		Port     string
		Host     string
		DBName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type InternalConfig struct {
	App        App
	RabbitMQ   AppRabbitMQ
	Assessment AppAssessment
}

type App struct {
	Env             string
	Port            string
	Version         string
	Address         string
	Timezone        string
	EndpointPrefix  string
	MaxRequests     int
	ShutdownTimeout int
}

type AppRabbitMQ struct {
	EscalationQueue string
}

type AppAssessment struct {
	// SubmissionLockTTLInSeconds bounds how long a per-user submission lock
	// can outlive a crashed request.
	SubmissionLockTTLInSeconds int
	ResourceCacheTTLInSeconds  int
}
