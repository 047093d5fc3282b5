package services

import (
	"fmt"
	"time"

	"github.com/custodia-labs/wordlist/internal/core/domain"
	"github.com/custodia-labs/wordlist/internal/core/ports/driven"
	"github.com/custodia-labs/wordlist/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keySourceURL        = "source.url"
	keySourceUserAgent  = "source.user_agent"
	keySourceTimeout    = "source.timeout"
	keyOutputPath       = "output.path"
	keyMinLength        = "filter.min_length"
	keyMaxLength        = "filter.max_length"
	keyAllowHyphens     = "filter.allow_hyphens"
	keyAllowApostrophes = "filter.allow_apostrophes"
)

// SettingsService resolves build defaults from the config store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get returns the built-in defaults overlaid with any configured values.
// A configured value of the wrong type is rejected rather than zeroed.
func (s *SettingsService) Get() (*domain.BuildSettings, error) {
	defaults := domain.DefaultBuildSettings()
	settings := &domain.BuildSettings{
		Source: domain.Source{
			URL:       s.getString(keySourceURL, defaults.Source.URL),
			UserAgent: s.getString(keySourceUserAgent, defaults.Source.UserAgent),
		},
		OutputPath: s.getString(keyOutputPath, defaults.OutputPath),
	}

	var err error
	if settings.Source.Timeout, err = s.getDuration(keySourceTimeout, defaults.Source.Timeout); err != nil {
		return nil, s.wrap(err)
	}
	if settings.Filter.MinLength, err = s.getInt(keyMinLength, defaults.Filter.MinLength); err != nil {
		return nil, s.wrap(err)
	}
	if settings.Filter.MaxLength, err = s.getInt(keyMaxLength, defaults.Filter.MaxLength); err != nil {
		return nil, s.wrap(err)
	}
	if settings.Filter.AllowHyphens, err = s.getBool(keyAllowHyphens, defaults.Filter.AllowHyphens); err != nil {
		return nil, s.wrap(err)
	}
	if settings.Filter.AllowApostrophes, err = s.getBool(keyAllowApostrophes, defaults.Filter.AllowApostrophes); err != nil {
		return nil, s.wrap(err)
	}

	if err := settings.Filter.Validate(); err != nil {
		return nil, s.wrap(err)
	}

	return settings, nil
}

func (s *SettingsService) wrap(err error) error {
	return fmt.Errorf("config %s: %w", s.configStore.Path(), err)
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getInt(key string, defaultVal int) (int, error) {
	val, ok := s.configStore.Get(key)
	if !ok {
		return defaultVal, nil
	}

	switch v := val.(type) {
	case int64:
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, fmt.Errorf("%w: %s: expected an integer, got %v", domain.ErrInvalidInput, key, val)
	}
}

func (s *SettingsService) getBool(key string, defaultVal bool) (bool, error) {
	val, ok := s.configStore.Get(key)
	if !ok {
		return defaultVal, nil
	}

	v, isBool := val.(bool)
	if !isBool {
		return false, fmt.Errorf("%w: %s: expected true or false, got %v", domain.ErrInvalidInput, key, val)
	}
	return v, nil
}

// getDuration accepts a Go duration string ("90s") or whole seconds.
func (s *SettingsService) getDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val, ok := s.configStore.Get(key)
	if !ok {
		return defaultVal, nil
	}

	var d time.Duration
	switch v := val.(type) {
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, key, err)
		}
		d = parsed
	case int64:
		d = time.Duration(v) * time.Second
	case int:
		d = time.Duration(v) * time.Second
	default:
		return 0, fmt.Errorf("%w: %s: unsupported value %v", domain.ErrInvalidInput, key, val)
	}

	if d <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive", domain.ErrInvalidInput, key)
	}
	return d, nil
}
