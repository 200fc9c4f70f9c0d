package config

import (
	"testing"

	"github.com/akeren/waitlist-backend/internal/log"
)

func TestNewStoreConfig_ReadsAndSanitizesEnv(t *testing.T) {
	t.Setenv(DatabaseURLKey, `"mongodb://localhost:27017"`)
	t.Setenv(DatabaseNameKey, " waitlist_db ")

	sc := NewStoreConfig()

	if sc.URI != "mongodb://localhost:27017" {
		t.Fatalf("expected sanitized URI, got %q", sc.URI)
	}
	if sc.Database != "waitlist_db" {
		t.Fatalf("expected sanitized database name, got %q", sc.Database)
	}
	if !sc.IsConfigured() {
		t.Fatal("expected store to be configured")
	}
}

func TestStoreConfig_IsConfigured(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		database string
		want     bool
	}{
		{"both set", "mongodb://localhost:27017", "waitlist_db", true},
		{"missing uri", "", "waitlist_db", false},
		{"missing database", "mongodb://localhost:27017", "", false},
		{"both missing", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := &StoreConfig{URI: tt.uri, Database: tt.database}
			if got := sc.IsConfigured(); got != tt.want {
				t.Fatalf("IsConfigured() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMissingStoreEnvVars(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		database string
		want     string
	}{
		{"both missing", "", "", DatabaseURLKey + ", " + DatabaseNameKey},
		{"uri missing", "", "waitlist_db", DatabaseURLKey},
		{"database missing", "mongodb://localhost:27017", "", DatabaseNameKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := &StoreConfig{URI: tt.uri, Database: tt.database}
			if got := missingStoreEnvVars(sc); got != tt.want {
				t.Fatalf("missingStoreEnvVars() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewStoreOrNil_UnconfiguredReturnsNil(t *testing.T) {
	t.Setenv(DatabaseURLKey, "")
	t.Setenv(DatabaseNameKey, "")

	sc := NewStoreConfig()
	logger := log.NewLoggerWithJSONOutput()

	if documentStore := sc.NewStoreOrNil(logger); documentStore != nil {
		t.Fatalf("expected nil store when unconfigured, got %T", documentStore)
	}
}
