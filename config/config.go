package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort    string
	MetricsPort    string
	Environment    string
	LogLevel       string
	MongoDBConfig  MongoDBConfig
	KafkaConfig    KafkaConfig
	JWTSecret      string
	TracingConfig  TracingConfig
	MidtransConfig MidtransConfig
	SMTPConfig     SMTPConfig
}

type MongoDBConfig struct {
	URI    string
	DBName string
}

type KafkaConfig struct {
	BrokerAddress string
	BrokerTopic   string
}

type TracingConfig struct {
	CollectorHost string
	ServiceName   string
}

type MidtransConfig struct {
	ServerKey   string
	Environment string
}

type SMTPConfig struct {
	Server   string
	Port     int
	Sender   string
	Password string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: getEnv("SERVICE_PORT", "5000"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
		MongoDBConfig: MongoDBConfig{
			URI:    getEnv("MONGO_URL", "mongodb://localhost:27017"),
			DBName: getEnv("DB_NAME", "bdSeller"),
		},
		JWTSecret: getEnv("JWT_SECRET", os.Getenv("ACCESS_TOKEN_SECRET")),
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   getEnv("BROKER_TOPIC", "bdseller-events"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
			ServiceName:   getEnv("SERVICE_NAME", "bdseller-service"),
		},
		MidtransConfig: MidtransConfig{
			ServerKey:   os.Getenv("MIDTRANS_SERVER_KEY"),
			Environment: getEnv("MIDTRANS_ENVIRONMENT", "sandbox"),
		},
		SMTPConfig: SMTPConfig{
			Server:   os.Getenv("SMTP_SERVER"),
			Sender:   os.Getenv("SMTP_SENDER"),
			Password: os.Getenv("SMTP_PASSWORD"),
		},
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err == nil {
		conf.SMTPConfig.Port = smtpPort
	}

	return &conf
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
