package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestEnvironment(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	env := settings.GetEnvironment()
	if env != EnvProduction {
		t.Errorf("Expected default environment %s, got %s", EnvProduction, env)
	}

	// Test setting custom value
	settings.SetEnvironment(EnvDevelopment)
	if settings.GetEnvironment() != EnvDevelopment {
		t.Errorf("Expected environment %s, got %s", EnvDevelopment, settings.GetEnvironment())
	}

	// Unknown values fall back to production
	settings.SetEnvironment("staging")
	if settings.GetEnvironment() != EnvProduction {
		t.Error("Unknown environment should fall back to production")
	}
}

func TestAPIBaseURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Default resolves to the production URL
	if url := settings.APIBaseURL(); url != ProductionBaseURL {
		t.Errorf("Expected base URL %s, got %s", ProductionBaseURL, url)
	}

	// Development environment switches the built-in URL
	settings.SetEnvironment(EnvDevelopment)
	if url := settings.APIBaseURL(); url != DevelopmentBaseURL {
		t.Errorf("Expected base URL %s, got %s", DevelopmentBaseURL, url)
	}

	// Environment variable wins over the built-in URL
	t.Setenv(EnvBaseURL, "https://e4a15351e443.ngrok-free.app/api/")
	if url := settings.APIBaseURL(); url != "https://e4a15351e443.ngrok-free.app/api" {
		t.Errorf("Expected env override without trailing slash, got %s", url)
	}

	// Explicit preference override wins over everything
	settings.SetBaseURLOverride("http://192.168.1.20:3000/api/")
	if url := settings.APIBaseURL(); url != "http://192.168.1.20:3000/api" {
		t.Errorf("Expected preference override without trailing slash, got %s", url)
	}
}
