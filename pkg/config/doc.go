// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more .env files into the process environment.
//   - Load parses the environment into any struct annotated with `env` tags
//     and caches the result per type, so repeated calls are cheap.
//   - MustLoad and MustLoadEnv panic instead of returning an error.
//   - ResetCache and ForceReloadConfig drop or refresh cached values.
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/numkit/pkg/config"
//	    "github.com/dmitrymomot/numkit/pkg/decimal"
//	)
//
//	func main() {
//	    config.MustLoadEnv("./.env.local")
//
//	    var cfg decimal.Config
//	    config.MustLoad(&cfg)
//
//	    q, err := cfg.Div(a, b) // uses DECIMAL_DIVISION_DIGITS
//	}
//
// Any type implementing encoding.TextUnmarshaler can be used as a field,
// which is how decimal.RoundingMode is read from DECIMAL_ROUNDING.
//
// # Error Handling
//
// Sentinel errors usable with errors.Is:
//
//   - ErrParsingConfig  – the environment does not satisfy the struct tags.
//   - ErrLoadingEnvFile – a .env file is missing or malformed.
//   - ErrNilPointer     – a nil pointer was passed to Load.
//
// Failed parses are never cached.
package config
