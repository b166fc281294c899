package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/99designs/keyring"
	"github.com/rs/zerolog/log"

	"fastwrite/internal/models"
)

const (
	serviceName = "fastwrite"
	keyPrefix   = "apiKey"
)

var (
	ErrEmptySecret      = errors.New("Please enter a valid API key")
	ErrProviderRequired = errors.New("provider is required")
)

// CredentialStore persists one secret per provider.
type CredentialStore interface {
	Get(provider string) (string, bool, error)
	Set(provider, secret string) error
	Remove(provider string) error
	Has(provider string) bool
}

// KeyringService stores provider secrets in the OS keyring (or the configured fallback
// backend) under keys of the form apiKey:<provider>.
type KeyringService struct {
	ring keyring.Keyring
}

func NewKeyringService(ring keyring.Keyring) *KeyringService {
	return &KeyringService{ring: ring}
}

// KeyringConfig selects the keyring backend.
type KeyringConfig struct {
	Backend      string
	ServiceName  string
	FileDir      string
	FilePassword string
}

// OpenKeyring opens the keyring described by cfg. An empty backend lets the library
// pick the platform default.
func OpenKeyring(cfg KeyringConfig) (keyring.Keyring, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = serviceName
	}
	kc := keyring.Config{
		ServiceName:              name,
		KeychainTrustApplication: true,
		FileDir:                  cfg.FileDir,
		LibSecretCollectionName:  name,
		KWalletAppID:             name,
		KWalletFolder:            name,
		WinCredPrefix:            name,
		PassPrefix:               name,
	}
	if cfg.FilePassword != "" {
		kc.FilePasswordFunc = keyring.FixedStringPrompt(cfg.FilePassword)
	} else {
		kc.FilePasswordFunc = keyring.TerminalPrompt
	}
	if backend := strings.TrimSpace(cfg.Backend); backend != "" {
		kc.AllowedBackends = []keyring.BackendType{keyring.BackendType(backend)}
	}
	ring, err := keyring.Open(kc)
	if err != nil {
		return nil, fmt.Errorf("open keyring: %w", err)
	}
	return ring, nil
}

func credentialKey(provider string) string {
	return keyPrefix + ":" + provider
}

func (s *KeyringService) Set(provider, secret string) error {
	provider = strings.TrimSpace(provider)
	if provider == "" {
		return ErrProviderRequired
	}
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return ErrEmptySecret
	}

	return s.ring.Set(keyring.Item{
		Key:         credentialKey(provider),
		Data:        []byte(secret),
		Label:       provider + " API key",
		Description: "API key for " + provider + " used by FastWrite",
	})
}

// Get reports found=false without an error when no secret is stored.
func (s *KeyringService) Get(provider string) (string, bool, error) {
	provider = strings.TrimSpace(provider)
	if provider == "" {
		return "", false, ErrProviderRequired
	}
	item, err := s.ring.Get(credentialKey(provider))
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if len(item.Data) == 0 {
		return "", false, nil
	}
	return string(item.Data), true, nil
}

func (s *KeyringService) Has(provider string) bool {
	_, found, err := s.Get(provider)
	if err != nil {
		log.Warn().Err(err).Str("provider", provider).Msg("keyring lookup failed")
		return false
	}
	return found
}

// Remove is a no-op when nothing is stored for provider.
func (s *KeyringService) Remove(provider string) error {
	provider = strings.TrimSpace(provider)
	if provider == "" {
		return ErrProviderRequired
	}
	err := s.ring.Remove(credentialKey(provider))
	if err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return err
	}
	return nil
}

// List reports, for each provider, whether a secret is stored. Providers with a
// stored secret that are not in providers are appended in key order.
func (s *KeyringService) List(providers []string) ([]models.ProviderKeyInfo, error) {
	keys, err := s.ring.Keys()
	if err != nil {
		return nil, err
	}
	stored := make(map[string]bool)
	var extra []string
	known := make(map[string]bool, len(providers))
	for _, p := range providers {
		known[p] = true
	}
	for _, k := range keys {
		provider, ok := strings.CutPrefix(k, keyPrefix+":")
		if !ok || provider == "" {
			continue
		}
		stored[provider] = true
		if !known[provider] {
			extra = append(extra, provider)
		}
	}
	sort.Strings(extra)

	var results []models.ProviderKeyInfo
	for _, provider := range append(append([]string(nil), providers...), extra...) {
		results = append(results, models.ProviderKeyInfo{
			ProviderID:  provider,
			Label:       provider + " API key",
			Description: "API key for " + provider + " used by FastWrite",
			Configured:  stored[provider],
		})
	}
	return results, nil
}
