package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Users    UsersConfig
	Audit    AuditConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Host string
	Port string
}

// DatabaseConfig is the connection descriptor for the users database.
type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type UsersConfig struct {
	IncludeID bool
}

type AuditConfig struct {
	AMQPURL     string
	Exchange    string
	ServiceName string
	Environment string
}

type LoggerConfig struct {
	Level string
}

// Load reads the configuration from the environment. Unset variables take
// their defaults; values are not validated here, a bad database setting only
// shows up once a connection is attempted.
func Load() *Config {
	// .env is optional; plain environment variables win either way.
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Host: getEnv("HOST", "0.0.0.0"),
			Port: getEnv("PORT", "5000"),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "myapp-db"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("POSTGRES_USER", "myuser"),
			Password:     getEnv("POSTGRES_PASSWORD", "mypassword"),
			DBName:       getEnv("POSTGRES_DB", "mydatabase"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),
		},
		Users: UsersConfig{
			IncludeID: getEnvBool("USERS_INCLUDE_ID", false),
		},
		Audit: AuditConfig{
			AMQPURL:     getEnv("AMQP_URL", ""),
			Exchange:    getEnv("LOGS_EXCHANGE", "logs.events"),
			ServiceName: getEnv("SERVICE_NAME", "users-api"),
			Environment: getEnv("ENVIRONMENT", "local"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

// DSN builds a lib/pq connection URL from the descriptor.
func (c DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   c.Host + ":" + c.Port,
		Path:   "/" + c.DBName,
	}
	q := url.Values{}
	q.Set("sslmode", c.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

func (c ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// String masks the database password.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Addr: %s, DB: %s@%s:%s/%s, IncludeID: %t}",
		c.Server.Addr(), c.Database.User, c.Database.Host, c.Database.Port, c.Database.DBName, c.Users.IncludeID)
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
