// Package config loads typed configuration from the environment.
//
// It wraps github.com/joho/godotenv, which reads optional .env files, and
// github.com/caarlos0/env/v11, which parses the environment into structs
// annotated with `env` and `envDefault` tags. Each configuration type is
// parsed once and cached for the lifetime of the process.
//
// # Usage
//
//	type appConfig struct {
//		HTTP httpserver.Config
//		Mail email.Config
//	}
//
//	var cfg appConfig
//	config.MustLoad(&cfg)
//
// Use LoadEnv to read specific files before the first Load:
//
//	config.MustLoadEnv(".env.local", ".env")
//
// Reset clears the cache; it exists for tests.
//
// # Errors
//
// Parse failures wrap ErrParsingConfig, unreadable explicit .env files wrap
// ErrLoadingEnvFile and a nil target returns ErrNilPointer.
package config
