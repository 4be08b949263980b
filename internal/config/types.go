package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	Riot          RiotConfig
	Sheet         SheetConfig
	Turso         TursoConfig
	Slack         SlackConfig
}

// RiotConfig carries everything needed to talk to the Riot API.
type RiotConfig struct {
	APIKey         string
	RoutingRegion  string
	PlatformRegion string
	// RequestDelay is the fixed pause between upstream calls to stay under
	// the rate limits of a personal API key.
	RequestDelay time.Duration
}

type SheetConfig struct {
	CSVURL string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

type SlackConfig struct {
	Token     string
	ChannelID string
}
