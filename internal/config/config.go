package config

import (
	"os"
	"strconv"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	GatewayBaseURL string

	ScanWindowDays  int
	ScanMaxMessages int

	Port     string
	LogLevel string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		GatewayBaseURL:   "http://localhost:8130",
		ScanWindowDays:   90,
		ScanMaxMessages:  1200,
		Port:             "9446",
		LogLevel:         "info",
	}

	overrideString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	overrideString(&env.PostgresPort, "POSTGRES_PORT")
	overrideString(&env.PostgresDB, "POSTGRES_DB")
	overrideString(&env.PostgresUsername, "POSTGRES_USERNAME")
	overrideString(&env.PostgresPassword, "POSTGRES_PASSWORD")
	overrideString(&env.GatewayBaseURL, "SMS_GATEWAY_URL")
	overrideInt(&env.ScanWindowDays, "SCAN_WINDOW_DAYS")
	overrideInt(&env.ScanMaxMessages, "SCAN_MAX_MESSAGES")
	overrideString(&env.Port, "PORT")
	overrideString(&env.LogLevel, "LOG_LEVEL")

	return &env, nil
}

func overrideString(target *string, name string) {
	if value := os.Getenv(name); len(value) != 0 {
		*target = value
	}
}

func overrideInt(target *int, name string) {
	value := os.Getenv(name)
	if len(value) == 0 {
		return
	}
	if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
		*target = parsed
	}
}
