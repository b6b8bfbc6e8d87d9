package findash

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names recognized by Settings.FromEnv.
const (
	envGeminiAPIKey     = "GEMINI_API_KEY"
	envMarketDataAPIKey = "MARKET_DATA_API_KEY"
	envPlaidClientID    = "PLAID_CLIENT_ID"
	envPlaidSecret      = "PLAID_SECRET"
)

// Settings is the singleton of credential strings the dashboard needs to talk
// to its collaborators. It is process-wide configuration, not a domain
// entity: loaded once per session, updated on save.
type Settings struct {
	GeminiAPIKey     string
	MarketDataAPIKey string
	PlaidClientID    string
	PlaidSecret      string
}

// FromEnv returns a copy of the settings with any value overridden by the
// environment. A .env file in the working directory is honored when present.
func (s Settings) FromEnv() Settings {
	// A missing .env file is the common case, not an error.
	_ = godotenv.Load()

	if v := os.Getenv(envGeminiAPIKey); v != "" {
		s.GeminiAPIKey = v
	}
	if v := os.Getenv(envMarketDataAPIKey); v != "" {
		s.MarketDataAPIKey = v
	}
	if v := os.Getenv(envPlaidClientID); v != "" {
		s.PlaidClientID = v
	}
	if v := os.Getenv(envPlaidSecret); v != "" {
		s.PlaidSecret = v
	}
	return s
}
