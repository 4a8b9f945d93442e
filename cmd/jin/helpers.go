package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/jin/internal/config"
	"github.com/at-ishikawa/jin/internal/vocabulary"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func newLoader(cfg *config.Config) (*vocabulary.Loader, error) {
	loader, err := vocabulary.NewLoader(
		cfg.Vocabulary.DataDirectory,
		cfg.Vocabulary.CacheDirectory,
		vocabulary.WithLogger(slog.Default()),
	)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.NewLoader() > %w", err)
	}
	return loader, nil
}

// parseSetTypes returns every set type when args is empty.
func parseSetTypes(args []string) ([]vocabulary.SetType, error) {
	if len(args) == 0 {
		return vocabulary.SetTypes(), nil
	}

	setTypes := make([]vocabulary.SetType, 0, len(args))
	for _, arg := range args {
		setType, ok := vocabulary.ParseSetType(arg)
		if !ok {
			return nil, fmt.Errorf("%w: %s (expected one of %s)", vocabulary.ErrUnknownSetType, arg, knownSetTypes())
		}
		setTypes = append(setTypes, setType)
	}
	return setTypes, nil
}

func knownSetTypes() string {
	names := make([]string, 0, len(vocabulary.SetTypes()))
	for _, setType := range vocabulary.SetTypes() {
		names = append(names, string(setType))
	}
	return strings.Join(names, ", ")
}
