package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// typeCache stores one parsed copy per configuration type, keyed by the
// type's qualified name.
type typeCache struct {
	mu     sync.RWMutex
	values map[string]any
}

var (
	cache = &typeCache{values: make(map[string]any)}

	// loadMu serializes parsing so the environment is read once per type
	// even when many goroutines race on the first Load.
	loadMu sync.Mutex

	defaultEnvOnce sync.Once
)

// Load fills v from environment variables using `env` struct tags.
//
// The default .env file in the working directory is loaded (if present) the
// first time Load runs. Each configuration type is parsed once; later calls
// copy the cached value into v. A failed parse is not cached, so fixing the
// environment and calling Load again works.
//
// Example:
//
//	var cfg decimal.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	loadDefaultEnv()
	if v == nil {
		return ErrNilPointer
	}

	key := typeKey[T]()
	if cached, ok := cache.get(key); ok {
		*v = cached.(T)
		return nil
	}

	loadMu.Lock()
	defer loadMu.Unlock()

	// another goroutine may have finished parsing while we waited
	if cached, ok := cache.get(key); ok {
		*v = cached.(T)
		return nil
	}
	return parseInto(key, v)
}

// MustLoad works like Load but panics on failure. Use it for configuration the
// program cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReloadConfig re-parses the environment for T, replacing any cached copy.
func ForceReloadConfig[T any](v *T) error {
	loadDefaultEnv()
	if v == nil {
		return ErrNilPointer
	}
	loadMu.Lock()
	defer loadMu.Unlock()
	return parseInto(typeKey[T](), v)
}

// LoadEnv loads variables from the given .env files into the process
// environment. Values from the files override variables already set, and
// later files override earlier ones. With no arguments the default .env file
// in the working directory is loaded.
//
// Call ResetCache or ForceReloadConfig afterwards if a configuration type
// was already loaded.
func LoadEnv(paths ...string) error {
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv is like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// ResetCache drops every cached configuration. Intended for tests.
func ResetCache() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.values = make(map[string]any)
}

func loadDefaultEnv() {
	defaultEnvOnce.Do(func() {
		// a missing .env file is fine
		_ = godotenv.Load()
	})
}

func parseInto[T any](key string, v *T) error {
	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache.set(key, parsed)
	*v = parsed
	return nil
}

func (c *typeCache) get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}

func (c *typeCache) set(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = v
}

func typeKey[T any]() string {
	t := reflect.TypeFor[T]()
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
