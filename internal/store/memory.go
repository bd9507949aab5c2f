package store

import (
	"context"
	"sync"
)

type memoryBackend struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemory returns a store that lives only as long as the process.
func NewMemory() *KVStore {
	return &KVStore{kv: &memoryBackend{data: map[string]string{}}}
}

func (b *memoryBackend) get(_ context.Context, key string) (string, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.data[key]
	return v, ok, nil
}

func (b *memoryBackend) set(_ context.Context, key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data[key] = value
	return nil
}

func (b *memoryBackend) del(_ context.Context, keys ...string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, k := range keys {
		delete(b.data, k)
	}
	return nil
}

func (b *memoryBackend) close() error {
	return nil
}
