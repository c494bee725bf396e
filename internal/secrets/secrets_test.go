package secrets

import (
	"testing"

	"github.com/zalando/go-keyring"

	"github.com/amishk599/jobharvester/internal/config"
)

func TestSetLookupDelete(t *testing.T) {
	keyring.MockInit()

	if err := Set(SerpAPIAPIKey, "serp-secret"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := Lookup(SerpAPIAPIKey); got != "serp-secret" {
		t.Errorf("Lookup = %q, want serp-secret", got)
	}
	if err := Delete(SerpAPIAPIKey); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := Lookup(SerpAPIAPIKey); got != "" {
		t.Errorf("Lookup after delete = %q, want empty", got)
	}
}

func TestSet_Rejects(t *testing.T) {
	keyring.MockInit()

	if err := Set("github_token", "x"); err == nil {
		t.Error("expected error for unknown credential name")
	}
	if err := Set(AdzunaAppID, "  "); err == nil {
		t.Error("expected error for empty value")
	}
}

func TestResolve_KeychainFillsOnlyEmptyValues(t *testing.T) {
	keyring.MockInit()
	if err := Set(AdzunaAppID, "kc-id"); err != nil {
		t.Fatal(err)
	}
	if err := Set(AdzunaAppKey, "kc-key"); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{}
	cfg.Providers.Adzuna.AppKey = "file-key"
	Resolve(cfg)

	if cfg.Providers.Adzuna.AppID != "kc-id" {
		t.Errorf("AppID = %q, want kc-id", cfg.Providers.Adzuna.AppID)
	}
	if cfg.Providers.Adzuna.AppKey != "file-key" {
		t.Errorf("AppKey = %q, want file-key", cfg.Providers.Adzuna.AppKey)
	}
	if cfg.Providers.SerpAPI.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.Providers.SerpAPI.APIKey)
	}
}
