package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores one parsed copy per configuration type.
type configCache struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}

var (
	globalCache = &configCache{values: make(map[reflect.Type]any)}

	envMu     sync.Mutex
	envLoaded bool
)

// LoadEnv loads variables from the given .env files without overriding
// variables already set in the process. With no paths it loads ./.env when
// present. Explicit paths must exist.
//
// Only the first successful call has an effect; Load calls LoadEnv() itself
// when it has not run yet.
func LoadEnv(paths ...string) error {
	envMu.Lock()
	defer envMu.Unlock()

	if envLoaded {
		return nil
	}

	if len(paths) == 0 {
		if _, err := os.Stat(".env"); err == nil {
			if err := godotenv.Load(".env"); err != nil {
				return errors.Join(ErrLoadingEnvFile, err)
			}
		}
		envLoaded = true
		return nil
	}

	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	envLoaded = true
	return nil
}

// MustLoadEnv is LoadEnv that panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// Load parses environment variables into v using `env` and `envDefault`
// struct tags. Nested structs are parsed recursively, so an application can
// compose the configs of several packages into one struct.
//
// Each type is parsed once per process; later calls copy the cached value.
// A failed parse is not cached.
//
// Example:
//
//	type appConfig struct {
//		HTTP    httpserver.Config
//		Mail    email.Config
//		Contact contact.Config
//	}
//
//	var cfg appConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := LoadEnv(); err != nil {
		return err
	}

	key := reflect.TypeFor[T]()

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	if cached, ok := globalCache.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	globalCache.values[key] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reset drops all cached configurations and allows LoadEnv to run again.
func Reset() {
	globalCache.mu.Lock()
	globalCache.values = make(map[reflect.Type]any)
	globalCache.mu.Unlock()

	envMu.Lock()
	envLoaded = false
	envMu.Unlock()
}
