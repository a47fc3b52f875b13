package config

import (
	"sync"
	"testing"
)

// SetDefaultEnv replaces the default .env files read by Load for the
// duration of the test.
func SetDefaultEnv(t testing.TB, paths ...string) {
	t.Helper()
	prev := loadDefaultEnv
	loadDefaultEnv = sync.OnceValue(func() error { return LoadEnv(paths...) })
	t.Cleanup(func() { loadDefaultEnv = prev })
}
