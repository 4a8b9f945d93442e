package vocabulary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores converted cards as one JSON file per source file.
type FileCache struct {
	rootDir string
}

func NewFileCache(cacheDirectory string) *FileCache {
	return &FileCache{
		rootDir: cacheDirectory,
	}
}

func (cache *FileCache) filePath(baseName string) string {
	return filepath.Join(cache.rootDir, baseName+".json")
}

// modTime returns the modification time of the cached entry, or false if it does not exist.
func (cache *FileCache) modTime(baseName string) (time.Time, bool, error) {
	info, err := os.Stat(cache.filePath(baseName))
	if errors.Is(err, fs.ErrNotExist) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("os.Stat > %w", err)
	}
	return info.ModTime(), true, nil
}

// isValid reports whether the cached entry exists and is strictly newer than sourceModTime.
func (cache *FileCache) isValid(baseName string, sourceModTime time.Time) (bool, error) {
	cachedAt, ok, err := cache.modTime(baseName)
	if err != nil || !ok {
		return false, err
	}
	return cachedAt.After(sourceModTime), nil
}

func (cache *FileCache) read(baseName string) ([]Card, error) {
	contents, err := os.ReadFile(cache.filePath(baseName))
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile > %w", err)
	}

	var cards []Card
	if err := json.Unmarshal(contents, &cards); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	if cards == nil {
		return nil, fmt.Errorf("cache entry %s is not a card array", baseName)
	}
	return cards, nil
}

// write replaces the cached entry. The contents are written to a temporary
// file first so that readers never see a partially written entry.
func (cache *FileCache) write(baseName string, cards []Card) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(cards); err != nil {
		return fmt.Errorf("json.Encode > %w", err)
	}

	file, err := os.CreateTemp(cache.rootDir, baseName+".*.tmp")
	if err != nil {
		return fmt.Errorf("os.CreateTemp > %w", err)
	}
	tmpPath := file.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := file.Write(buf.Bytes()); err != nil {
		_ = file.Close()
		return fmt.Errorf("file.Write > %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("file.Close > %w", err)
	}
	if err := os.Rename(tmpPath, cache.filePath(baseName)); err != nil {
		return fmt.Errorf("os.Rename > %w", err)
	}
	return nil
}
