package crickboost

import (
	"testing"

	"github.com/crickboost/crickboost/password"
)

// testHasher returns a hasher with costs at the floor so tests stay fast.
func testHasher(t *testing.T) *password.Hasher {
	t.Helper()

	h, err := password.New(password.Params{
		Memory:      8192,
		Time:        1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   16,
	})
	if err != nil {
		t.Fatalf("password.New: %v", err)
	}
	return h
}

func testEngine(t *testing.T) *Engine {
	t.Helper()

	store, err := NewMemoryStore(testHasher(t))
	if err != nil {
		t.Fatalf("NewMemoryStore: %v", err)
	}
	engine, err := New().WithStore(store).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return engine
}
