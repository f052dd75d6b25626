// Package numkit is the index of an exact decimal arithmetic toolkit.
//
// Numbers are kept as base-10 digit strings, so results never pick up binary
// floating point error: 0.1 + 0.2 is exactly 0.3.
//
// # Packages
//
//	github.com/dmitrymomot/numkit/pkg/decimal   - Arbitrary-precision signed decimals with database, JSON, YAML and BSON encodings
//	github.com/dmitrymomot/numkit/pkg/config    - Type-safe environment variable loading with .env support
//	github.com/dmitrymomot/numkit/pkg/logger    - Structured logging built on slog
//	github.com/dmitrymomot/numkit/pkg/validator - Rule-based validation for numeric and decimal input
//	github.com/dmitrymomot/numkit/pkg/sanitizer - Cleaning of human-entered number text and range clamping
//
// # Command
//
//	github.com/dmitrymomot/numkit/cmd/numkit    - Command-line calculator over pkg/decimal
//
// Install it with:
//
//	go install github.com/dmitrymomot/numkit/cmd/numkit@latest
//
// # Getting Documentation
//
//	go doc github.com/dmitrymomot/numkit/pkg/decimal
//	go doc -all github.com/dmitrymomot/numkit/pkg/validator
package numkit
