package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"
	catalogjson "github.com/techstore/techstore-cli/internal/adapters/catalog/json"
	tomlrepo "github.com/techstore/techstore-cli/internal/adapters/repo/toml"
	"github.com/techstore/techstore-cli/internal/ports"
	"github.com/techstore/techstore-cli/internal/render"
)

const (
	catalogPathKey = "catalog.path"
	maxContextsKey = "render.max_contexts"
	debounceMsKey  = "search.debounce_ms"
	shareBaseKey   = "share.base_url"

	defaultShareBase  = "https://techstore.example/products"
	defaultDebounceMs = 300
)

type app struct {
	catalog   ports.Catalog
	cartStore ports.CartStore
	leases    *render.ContextManager
	debounce  time.Duration
	shareBase string
}

// wireApp builds the shared dependency graph. One viper instance backs both
// the cart repository and the remaining settings, so everything resolves
// from the same config file; TECHSTORE_* environment variables override it.
func wireApp() (*app, error) {
	cfg := viper.New()
	cfg.SetDefault(catalogPathKey, "")
	cfg.SetDefault(maxContextsKey, render.DefaultMaxContexts)
	cfg.SetDefault(debounceMsKey, defaultDebounceMs)
	cfg.SetDefault(shareBaseKey, defaultShareBase)

	// NewRepository reads the config file into cfg.
	cartStore, err := tomlrepo.NewRepository(cfg, ports.SystemClock{})
	if err != nil {
		return nil, fmt.Errorf("wire cart repository: %w", err)
	}

	catalog, err := catalogjson.New(envOrDefault("TECHSTORE_CATALOG", cfg.GetString(catalogPathKey)))
	if err != nil {
		return nil, fmt.Errorf("wire catalog: %w", err)
	}

	// The lease manager is process-wide shared state: one instance for the
	// session, handed to every consumer.
	leases := render.NewContextManager(envIntOrDefault("TECHSTORE_MAX_CONTEXTS", cfg.GetInt(maxContextsKey)))

	debounceMs := envIntOrDefault("TECHSTORE_DEBOUNCE_MS", cfg.GetInt(debounceMsKey))

	return &app{
		catalog:   catalog,
		cartStore: cartStore,
		leases:    leases,
		debounce:  time.Duration(debounceMs) * time.Millisecond,
		shareBase: envOrDefault("TECHSTORE_SHARE_BASE", cfg.GetString(shareBaseKey)),
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
