package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// ErrUnknownSetType is returned by operations that require a known set type.
var ErrUnknownSetType = errors.New("unknown vocabulary set")

// Loader reads vocabulary sets from a data directory and keeps their
// converted form in a FileCache.
type Loader struct {
	dataDir string
	cache   *FileCache
	logger  *slog.Logger
}

type LoaderOption func(*Loader)

// WithLogger sets the logger used for cache and parse diagnostics.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a Loader and makes sure the cache directory exists.
func NewLoader(dataDir, cacheDir string, opts ...LoaderOption) (*Loader, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory %s: %w", cacheDir, err)
	}

	loader := &Loader{
		dataDir: dataDir,
		cache:   NewFileCache(cacheDir),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(loader)
	}
	return loader, nil
}

// LoadSet returns the cards of the named set. It returns false when the
// name is not a known set or the set cannot be loaded; the reason is logged.
func (l *Loader) LoadSet(ctx context.Context, name string) ([]Card, bool) {
	setType, ok := ParseSetType(name)
	if !ok {
		l.logger.DebugContext(ctx, "unknown vocabulary set", slog.String("setType", name))
		return nil, false
	}

	cards, err := l.load(ctx, setType)
	if err != nil {
		l.logger.WarnContext(ctx, "failed to load vocabulary set",
			slog.String("setType", string(setType)),
			slog.Any("error", err),
		)
		return nil, false
	}
	if len(cards) == 0 {
		l.logger.WarnContext(ctx, "vocabulary set has no cards", slog.String("setType", string(setType)))
		return nil, false
	}
	return cards, true
}

// LoadAllSets loads every known set in order. Sets that cannot be loaded are omitted.
func (l *Loader) LoadAllSets(ctx context.Context) (map[SetType][]Card, error) {
	sets := make(map[SetType][]Card, len(setTypes))
	for _, setType := range setTypes {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("load all sets: %w", err)
		}
		if cards, ok := l.LoadSet(ctx, string(setType)); ok {
			sets[setType] = cards
		}
	}
	return sets, nil
}

// Metadata describes every loadable set in order.
func (l *Loader) Metadata(ctx context.Context) ([]SetDescriptor, error) {
	descriptors := make([]SetDescriptor, 0, len(setTypes))
	for _, setType := range setTypes {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("load set metadata: %w", err)
		}
		if cards, ok := l.LoadSet(ctx, string(setType)); ok {
			descriptors = append(descriptors, newSetDescriptor(setType, cards))
		}
	}
	return descriptors, nil
}

// Reload converts the source of a set again and overwrites its cache entry,
// ignoring timestamps. The existing entry is kept when the source cannot be parsed.
func (l *Loader) Reload(ctx context.Context, setType SetType) ([]Card, error) {
	if _, ok := ParseSetType(string(setType)); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSetType, setType)
	}
	cards, err := l.parseSource(l.sourcePath(setType))
	if err != nil {
		return nil, err
	}
	if err := l.cache.write(string(setType), cards); err != nil {
		return nil, fmt.Errorf("write cache of %s: %w", setType, err)
	}
	l.logger.InfoContext(ctx, "reloaded vocabulary set",
		slog.String("setType", string(setType)),
		slog.Int("cards", len(cards)),
	)
	return cards, nil
}

// ParseSource parses the source file of a set without touching the cache.
func (l *Loader) ParseSource(setType SetType) ([]Card, error) {
	if _, ok := ParseSetType(string(setType)); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSetType, setType)
	}
	return l.parseSource(l.sourcePath(setType))
}

// CacheState describes the cache entry of a set relative to its source file.
type CacheState struct {
	SetType       SetType
	SourcePath    string
	SourceExists  bool
	SourceModTime time.Time
	CachePath     string
	Cached        bool
	CachedAt      time.Time
	Valid         bool
}

// CacheStatus reports whether the cache entry of a set would be served as is.
func (l *Loader) CacheStatus(setType SetType) (CacheState, error) {
	if _, ok := ParseSetType(string(setType)); !ok {
		return CacheState{}, fmt.Errorf("%w: %s", ErrUnknownSetType, setType)
	}

	state := CacheState{
		SetType:    setType,
		SourcePath: l.sourcePath(setType),
		CachePath:  l.cache.filePath(string(setType)),
	}
	sourceModTime, exists, err := l.sourceModTime(setType)
	if err != nil {
		return CacheState{}, err
	}
	state.SourceExists = exists
	state.SourceModTime = sourceModTime

	cachedAt, cached, err := l.cache.modTime(string(setType))
	if err != nil {
		return CacheState{}, fmt.Errorf("stat cache of %s: %w", setType, err)
	}
	state.Cached = cached
	state.CachedAt = cachedAt
	state.Valid = cached && cachedAt.After(sourceModTime)
	return state, nil
}

func (l *Loader) sourcePath(setType SetType) string {
	return filepath.Join(l.dataDir, setType.SourceFileName())
}

// sourceModTime returns the zero time when the source file does not exist,
// so that an existing cache entry is never considered older than it.
func (l *Loader) sourceModTime(setType SetType) (time.Time, bool, error) {
	info, err := os.Stat(l.sourcePath(setType))
	if errors.Is(err, fs.ErrNotExist) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("stat source of %s: %w", setType, err)
	}
	return info.ModTime(), true, nil
}

func (l *Loader) load(ctx context.Context, setType SetType) ([]Card, error) {
	baseName := string(setType)

	sourceModTime, _, err := l.sourceModTime(setType)
	if err != nil {
		return nil, err
	}

	valid, err := l.cache.isValid(baseName, sourceModTime)
	if err != nil {
		l.logger.WarnContext(ctx, "failed to check vocabulary cache",
			slog.String("setType", baseName),
			slog.Any("error", err),
		)
	}
	if valid {
		cards, err := l.cache.read(baseName)
		if err == nil {
			l.logger.DebugContext(ctx, "loaded vocabulary set from cache",
				slog.String("setType", baseName),
				slog.Int("cards", len(cards)),
			)
			return cards, nil
		}
		l.logger.WarnContext(ctx, "discarding unreadable vocabulary cache",
			slog.String("setType", baseName),
			slog.Any("error", err),
		)
	}

	cards, err := l.parseSource(l.sourcePath(setType))
	if err != nil {
		return nil, err
	}
	if err := l.cache.write(baseName, cards); err != nil {
		return nil, fmt.Errorf("write cache of %s: %w", setType, err)
	}
	l.logger.InfoContext(ctx, "converted vocabulary set",
		slog.String("setType", baseName),
		slog.Int("cards", len(cards)),
	)
	return cards, nil
}

func (l *Loader) parseSource(path string) ([]Card, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	cards, err := ParseCards(file)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cards, nil
}
