package dao

import (
	"fmt"
	"sync"

	"github.com/asdine/storm/v3"
)

const MemoryPath = ":memory:"

type memoryDb struct {
	mu      sync.RWMutex
	buckets map[string]map[string][]byte
}

// NewMemoryDb returns a Db that keeps everything in process memory. Values
// are lost on exit, like a browser's local storage cleared between sessions.
func NewMemoryDb() Db {
	return &memoryDb{buckets: make(map[string]map[string][]byte)}
}

func (m *memoryDb) GetBytes(bucketName string, key interface{}) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	k, err := keyString(key)
	if err != nil {
		return nil, err
	}

	value, ok := m.buckets[bucketName][k]
	if !ok {
		return nil, storm.ErrNotFound
	}

	return append([]byte(nil), value...), nil
}

func (m *memoryDb) SetBytes(bucketName string, key interface{}, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k, err := keyString(key)
	if err != nil {
		return err
	}

	bucket, ok := m.buckets[bucketName]
	if !ok {
		bucket = make(map[string][]byte)
		m.buckets[bucketName] = bucket
	}
	bucket[k] = append([]byte(nil), value...)

	return nil
}

func (m *memoryDb) Close() error {
	return nil
}

func keyString(key interface{}) (string, error) {
	switch k := key.(type) {
	case string:
		return k, nil
	case []byte:
		return string(k), nil
	}
	return "", fmt.Errorf("unsupported key type %T", key)
}
