package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Otel     OtelConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	Debug              bool
	LogFilePath        string
	SocketLogFilePath  string
	CorsAllowedOrigins string
	NatsURL            string // empty disables domain event publishing
}

type DatabaseConfig struct {
	Driver     string // "mongo" or "postgres"
	MongoURL   string
	Name       string
	Connection string // postgres DSN
	IsDocker   bool
}

type SessionConfig struct {
	IdMaxAttempts  int
	SendBufferSize int
}

type OtelConfig struct {
	Enabled  bool
	Endpoint string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	cfg := &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "1339"),
			Environment:        getEnv("GO_ENV", "development"),
			Debug:              getEnvAsBool("DEBUG", false),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			SocketLogFilePath:  getEnv("SOCKET_LOG_FILE_PATH", "logs/socket.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			NatsURL:            getEnv("NATS_URL", ""),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "mongo"),
			MongoURL:   getEnv("MONGODB_URL", "mongodb://localhost:27017/"),
			Name:       getEnv("DB_NAME", "socialrobot"),
			Connection: getEnv("DB_CONNECTION_STRING", ""),
			IsDocker:   getEnvAsBool("DOCKER_ENV", false),
		},
		Session: SessionConfig{
			IdMaxAttempts:  getEnvAsInt("ID_MAX_ATTEMPTS", 10),
			SendBufferSize: getEnvAsInt("WS_SEND_BUFFER", 256),
		},
		Otel: OtelConfig{
			Enabled:  getEnvAsBool("OTEL_ENABLED", false),
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}

	// Inside the compose network the database is reachable by service name.
	if cfg.Database.IsDocker {
		cfg.Database.MongoURL = strings.Replace(cfg.Database.MongoURL, "localhost", "mongodb", 1)
	}

	return cfg
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
