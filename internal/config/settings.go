package config

import (
	"os"
	"strings"
	"time"

	"fyne.io/fyne/v2"
)

// Environment selects which backend the client talks to
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Settings keys for Fyne preferences
const (
	KeyEnvironment = "api_environment"
	KeyBaseURL     = "api_base_url"
)

// Base URLs per environment
const (
	DevelopmentBaseURL = "http://localhost:3000/api"
	ProductionBaseURL  = "https://api.freshkart.in/api"
)

// EnvBaseURL is the environment variable that overrides the API base URL.
// main loads a local .env file before settings are read, so a developer can
// point the client at an ngrok tunnel without touching preferences.
const EnvBaseURL = "FRESHKART_API_URL"

// RequestTimeout is the fixed timeout applied to every API request.
const RequestTimeout = 10 * time.Second

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetEnvironment returns the configured backend environment
func (s *Settings) GetEnvironment() Environment {
	env := s.app.Preferences().String(KeyEnvironment)
	if env == "" {
		s.SetEnvironment(EnvProduction)
		return EnvProduction
	}
	return Environment(env)
}

// SetEnvironment sets the backend environment
func (s *Settings) SetEnvironment(env Environment) {
	if env != EnvDevelopment && env != EnvProduction {
		env = EnvProduction
	}
	s.app.Preferences().SetString(KeyEnvironment, string(env))
}

// GetBaseURLOverride returns the explicitly configured base URL, if any
func (s *Settings) GetBaseURLOverride() string {
	return s.app.Preferences().String(KeyBaseURL)
}

// SetBaseURLOverride sets an explicit base URL, bypassing the environment
func (s *Settings) SetBaseURLOverride(url string) {
	s.app.Preferences().SetString(KeyBaseURL, strings.TrimRight(url, "/"))
}

// APIBaseURL resolves the backend base URL. Precedence: explicit preference
// override, then the FRESHKART_API_URL environment variable, then the
// built-in URL for the configured environment.
func (s *Settings) APIBaseURL() string {
	if url := s.GetBaseURLOverride(); url != "" {
		return url
	}
	if url := os.Getenv(EnvBaseURL); url != "" {
		return strings.TrimRight(url, "/")
	}
	if s.GetEnvironment() == EnvDevelopment {
		return DevelopmentBaseURL
	}
	return ProductionBaseURL
}

// GetEnvironmentOptions returns the selectable environments
func (s *Settings) GetEnvironmentOptions() []Environment {
	return []Environment{EnvDevelopment, EnvProduction}
}
