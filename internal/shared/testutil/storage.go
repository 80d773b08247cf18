package testutil

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/artfriendly/go-api-server/internal/shared/storage"
)

// MockStorage keeps uploaded objects in memory
type MockStorage struct {
	mu      sync.Mutex
	Objects map[string][]byte
	Deleted []string

	UploadFunc func(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	DeleteFunc func(ctx context.Context, key string) error
}

var _ storage.Storage = (*MockStorage)(nil)

func NewMockStorage() *MockStorage {
	return &MockStorage{Objects: map[string][]byte{}}
}

func (m *MockStorage) GenerateKey(dir, fileExt string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fmt.Sprintf("%s/object-%d%s", dir, len(m.Objects)+len(m.Deleted)+1, fileExt)
}

func (m *MockStorage) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, key, body, contentType)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	m.Objects[key] = data
	m.mu.Unlock()
	return m.URL(key), nil
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Objects, key)
	m.Deleted = append(m.Deleted, key)
	return nil
}

func (m *MockStorage) URL(key string) string {
	return "https://storage.test/" + key
}

// Has reports whether key is currently stored
func (m *MockStorage) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.Objects[key]
	return ok
}
