// Package config provides a type-safe, generic and cached way to load
// configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment
//     (the default `.env` in the working directory is tried automatically
//     on the first Load).
//   - Load parses the environment into any Go struct using field tags.
//   - Each successfully loaded configuration type is cached and parsed only
//     once for the lifetime of the process.
//   - MustLoad panics on failure for configuration that is
//     required to start.
//
// # Usage
//
//	type CLIConfig struct {
//	    LogLevel  string `env:"ARGSV_LOG_LEVEL" envDefault:"info"`
//	    LogFormat string `env:"ARGSV_LOG_FORMAT" envDefault:"text"`
//	    Pattern   string `env:"ARGSV_PATTERN"`
//	}
//
//	var cfg CLIConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – a `.env` file could not be read.
//   - `ErrConfigNotLoaded` – requested config type has not been loaded yet.
//   - `ErrNilPointer`      – nil pointer passed to `Load`/`MustLoad`.
//
// A failed parse is not cached, so Load can be retried once the environment
// is fixed. Use ResetCache to clear every cached value between tests.
package config
