package driving

import "github.com/custodia-labs/wordlist/internal/core/domain"

// SettingsService resolves build defaults from configuration.
type SettingsService interface {
	// Get returns built-in defaults overlaid with configured values.
	Get() (*domain.BuildSettings, error)
}
