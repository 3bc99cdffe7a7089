package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	Port            string
	LogLevel        string
	OperatorWorkers int

	JWTSecret string
	TokenTTL  time.Duration

	AMQPURL      string
	AMQPExchange string

	DefaultCurrency string
}

// ProcessEnvironmentVariables reads the configuration from the environment,
// after loading any .env files given (".env" when none are). Variables
// already set in the environment win over the files.
func ProcessEnvironmentVariables(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		Port:             "9446",
		LogLevel:         "info",
		OperatorWorkers:  4,
		JWTSecret:        "household-local-secret",
		TokenTTL:         24 * time.Hour,
		AMQPExchange:     "household",
		DefaultCurrency:  "IDR",
	}

	setString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	setString(&env.PostgresPort, "POSTGRES_PORT")
	setString(&env.PostgresDB, "POSTGRES_DB")
	setString(&env.PostgresUsername, "POSTGRES_USERNAME")
	setString(&env.PostgresPassword, "POSTGRES_PASSWORD")
	setString(&env.Port, "PORT")
	setString(&env.LogLevel, "LOG_LEVEL")
	setString(&env.JWTSecret, "JWT_SECRET")
	setString(&env.AMQPURL, "AMQP_URL")
	setString(&env.AMQPExchange, "AMQP_EXCHANGE")
	setString(&env.DefaultCurrency, "DEFAULT_CURRENCY")

	if v := os.Getenv("OPERATOR_WORKERS"); len(v) != 0 {
		workers, err := strconv.Atoi(v)
		if err != nil || workers < 1 {
			return nil, fmt.Errorf("OPERATOR_WORKERS must be a positive integer, got %q", v)
		}
		env.OperatorWorkers = workers
	}

	if v := os.Getenv("TOKEN_TTL"); len(v) != 0 {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl <= 0 {
			return nil, fmt.Errorf("TOKEN_TTL must be a positive duration, got %q", v)
		}
		env.TokenTTL = ttl
	}

	if env.DefaultCurrency != "IDR" && env.DefaultCurrency != "USD" {
		return nil, fmt.Errorf("DEFAULT_CURRENCY must be IDR or USD, got %q", env.DefaultCurrency)
	}

	return &env, nil
}

// PostgresURL is the connection string for both the server and the migration script.
func (c *Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     c.PostgresAddress + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func setString(field *string, key string) {
	if v := os.Getenv(key); len(v) != 0 {
		*field = v
	}
}
