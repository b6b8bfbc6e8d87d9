package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/findash/findash"
	"github.com/google/subcommands"
)

// TestMutateKeepsEnvCredentialsOutOfStore guards the settings boundary:
// environment overrides apply at consumption time only, so an unrelated edit
// must never write them into settings.json.
func TestMutateKeepsEnvCredentialsOutOfStore(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-only-key")
	*dataDir = t.TempDir()

	if status := mutate(func(d findash.Dashboard) (findash.Dashboard, error) {
		return d.AddCategory("c1", "Food")
	}); status != subcommands.ExitSuccess {
		t.Fatalf("mutate status = %v", status)
	}

	content, err := os.ReadFile(filepath.Join(*dataDir, "settings.json"))
	if err != nil {
		t.Fatalf("ReadFile error = %v", err)
	}
	if strings.Contains(string(content), "env-only-key") {
		t.Errorf("environment credential persisted to disk: %s", content)
	}

	// the override is still effective for consumers
	_, d, err := loadDashboard()
	if err != nil {
		t.Fatalf("loadDashboard error = %v", err)
	}
	if d.Settings.GeminiAPIKey != "" {
		t.Errorf("stored settings = %+v, want empty", d.Settings)
	}
	if got := d.Settings.FromEnv().GeminiAPIKey; got != "env-only-key" {
		t.Errorf("effective key = %q, want the environment value", got)
	}
}

// TestMutatePersistsExplicitCredentials is the counterpart: credentials set
// through the settings command's edit do land in the store.
func TestMutatePersistsExplicitCredentials(t *testing.T) {
	*dataDir = t.TempDir()

	if status := mutate(func(d findash.Dashboard) (findash.Dashboard, error) {
		d.Settings.GeminiAPIKey = "stored-key"
		return d, nil
	}); status != subcommands.ExitSuccess {
		t.Fatalf("mutate status = %v", status)
	}

	_, d, err := loadDashboard()
	if err != nil {
		t.Fatalf("loadDashboard error = %v", err)
	}
	if d.Settings.GeminiAPIKey != "stored-key" {
		t.Errorf("stored settings = %+v, want the explicit key", d.Settings)
	}
}
