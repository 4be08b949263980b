package config

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	// Optional env var with a default.
	getEnvOr := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return fallback
	}

	requestDelay, err := time.ParseDuration(getEnvOr("RIOT_REQUEST_DELAY", "1200ms"))
	if err != nil {
		log.Fatalf("Error: RIOT_REQUEST_DELAY is not a valid duration: %s", err)
	}

	cfg := Config{
		DBName:        getEnv("DB_NAME"),
		MigrationsDir: "./migrations",
		Port:          getEnv("PORT"),
		Riot: RiotConfig{
			APIKey:         getEnv("RIOT_API_KEY"),
			RoutingRegion:  getEnvOr("RIOT_ROUTING_REGION", "americas"),
			PlatformRegion: getEnvOr("RIOT_PLATFORM_REGION", "na1"),
			RequestDelay:   requestDelay,
		},
		Sheet: SheetConfig{
			CSVURL: getEnv("SHEET_CSV_URL"),
		},
		Turso: TursoConfig{
			PrimaryURL: getEnvOr("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvOr("TURSO_AUTH_TOKEN", ""),
		},
		Slack: SlackConfig{
			Token:     getEnvOr("SLACK_BOT_TOKEN", ""),
			ChannelID: getEnvOr("SLACK_CHANNEL_ID", ""),
		},
	}
	return cfg
}
