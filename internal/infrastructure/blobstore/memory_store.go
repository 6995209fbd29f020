package blobstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/comexa/stock-control-api/internal/application/ports"
)

// MemoryStore es un BlobStore en memoria. Se usa en tests y con
// STORE_DRIVER=memory (estado efímero, útil para demos).
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore construye un almacén vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: map[string][]byte{}}
}

var _ ports.BlobStore = (*MemoryStore)(nil)

func (s *MemoryStore) Load(_ context.Context, key string, v any) error {
	s.mu.RLock()
	raw, ok := s.blobs[key]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%s: %w", key, ports.ErrBlobNotFound)
	}
	return json.Unmarshal(raw, v)
}

func (s *MemoryStore) Save(_ context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serializar %s: %w", key, err)
	}
	s.mu.Lock()
	s.blobs[key] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.blobs, key)
	s.mu.Unlock()
	return nil
}
