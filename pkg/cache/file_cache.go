package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileCache stores each key as a JSON file under a base directory.
type FileCache struct {
	basePath string
}

// NewFileCache creates the base directory if missing.
func NewFileCache(basePath string) (*FileCache, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, fmt.Errorf("cache base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &FileCache{basePath: basePath}, nil
}

// Get reads and decodes the value stored under key.
func (c *FileCache) Get(_ context.Context, key string, dest any) (bool, error) {
	data, err := os.ReadFile(c.path(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read cache entry: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		// Unparseable snapshot: drop it and report absent so the
		// caller reseeds.
		_ = os.Remove(c.path(key))
		return false, nil
	}
	return true, nil
}

// Put encodes value and writes it under key, replacing any prior value.
func (c *FileCache) Put(_ context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	if err := os.WriteFile(c.path(key), data, 0o644); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}

// Delete removes the value stored under key, if any.
func (c *FileCache) Delete(_ context.Context, key string) error {
	err := os.Remove(c.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete cache entry: %w", err)
	}
	return nil
}

func (c *FileCache) path(key string) string {
	name := strings.NewReplacer(":", "_", string(os.PathSeparator), "_").Replace(key)
	return filepath.Join(c.basePath, name+".json")
}
