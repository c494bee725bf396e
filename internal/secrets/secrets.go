package secrets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/amishk599/jobharvester/internal/config"
)

// KeyringService groups JobHarvester's credentials in the OS keychain.
const KeyringService = "jobharvester"

// Credential names, used as keychain account names.
const (
	AdzunaAppID   = "adzuna_app_id"
	AdzunaAppKey  = "adzuna_app_key"
	SerpAPIAPIKey = "serpapi_api_key"
)

// Names lists every credential the keychain may hold.
var Names = []string{AdzunaAppID, AdzunaAppKey, SerpAPIAPIKey}

// Lookup returns the stored credential, or "" when the keychain has none or
// is unavailable.
func Lookup(name string) string {
	v, err := keyring.Get(KeyringService, name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(v)
}

// Set stores a credential in the keychain.
func Set(name, value string) error {
	if err := checkName(name); err != nil {
		return err
	}
	if strings.TrimSpace(value) == "" {
		return errors.New("credential value is empty")
	}
	if err := keyring.Set(KeyringService, name, value); err != nil {
		return fmt.Errorf("store %s in keychain: %w", name, err)
	}
	return nil
}

// Delete removes a credential from the keychain.
func Delete(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := keyring.Delete(KeyringService, name); err != nil {
		return fmt.Errorf("delete %s from keychain: %w", name, err)
	}
	return nil
}

// Resolve fills credentials the config left empty from the keychain.
// Values already present (from the file or the environment) win.
func Resolve(cfg *config.Config) {
	fill(&cfg.Providers.Adzuna.AppID, AdzunaAppID)
	fill(&cfg.Providers.Adzuna.AppKey, AdzunaAppKey)
	fill(&cfg.Providers.SerpAPI.APIKey, SerpAPIAPIKey)
}

func fill(dst *string, name string) {
	if *dst != "" {
		return
	}
	*dst = Lookup(name)
}

func checkName(name string) error {
	for _, n := range Names {
		if n == name {
			return nil
		}
	}
	return fmt.Errorf("unknown credential %q (want one of %s)", name, strings.Join(Names, ", "))
}
