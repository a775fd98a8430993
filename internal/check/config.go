package check

import (
	"fmt"
	"os"
	"time"

	"github.com/quizdeck/quizdeck/internal/exam"
	"github.com/quizdeck/quizdeck/internal/store"
)

// RemoteConfig holds grading API connection settings.
type RemoteConfig struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// Config holds all check service configuration.
type Config struct {
	Remote RemoteConfig
	Retry  RetryConfig
}

// DefaultConfig returns a Config with sensible defaults. No endpoint is
// set, so the default service grades locally against the deck.
func DefaultConfig() Config {
	return Config{
		Remote: RemoteConfig{
			Timeout: 10 * time.Second,
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     5 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if u := os.Getenv("QUIZDECK_CHECK_URL"); u != "" {
		cfg.Remote.Endpoint = u
	}
	if k := os.Getenv("QUIZDECK_CHECK_API_KEY"); k != "" {
		cfg.Remote.APIKey = k
	}
	if t := os.Getenv("QUIZDECK_CHECK_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			cfg.Remote.Timeout = d
		}
	}

	return cfg
}

// New builds the check service for a deck: the remote grader when an
// endpoint is configured, the local answer key otherwise. The service is
// wrapped with retry and, when an event repo is supplied, request logging.
func New(cfg Config, deck *exam.Deck, repo store.EventRepo) (Service, error) {
	var base Service
	if cfg.Remote.Endpoint != "" {
		remote, err := NewRemoteService(cfg.Remote)
		if err != nil {
			return nil, fmt.Errorf("remote grader: %w", err)
		}
		base = remote
	} else {
		base = NewLocalService(deck)
	}

	// caller → retry → logging → base
	if repo != nil {
		base = WithLogging(base, repo)
	}
	return WithRetry(base, cfg.Retry), nil
}
