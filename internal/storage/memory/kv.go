// Package memory provides in-process implementations of the storage interfaces.
package memory

import (
	"context"
	"sync"

	"github.com/dtroode/repairctl/internal/model"
)

var _ model.KVStore = (*KV)(nil)

// KV is a process-scoped key-value tier. Its contents vanish with the process,
// which makes it the natural ephemeral tier for a single CLI invocation.
type KV struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewKV creates an empty KV.
func NewKV() *KV {
	return &KV{values: make(map[string]string)}
}

func (s *KV) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok, nil
}

func (s *KV) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

func (s *KV) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

// Len returns the number of stored keys.
func (s *KV) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.values)
}
