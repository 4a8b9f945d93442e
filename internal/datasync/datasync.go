// Package datasync provides import orchestration from vocabulary source files into the database.
package datasync

import (
	"context"
	"fmt"
	"io"
	"reflect"

	"github.com/at-ishikawa/jin/internal/vocabulary"
)

// SetSource provides the cards of a vocabulary set.
type SetSource interface {
	LoadSet(ctx context.Context, setType string) ([]vocabulary.Card, bool)
}

// ImportResult tracks counts for each import operation.
type ImportResult struct {
	SetsImported  int
	SetsUnchanged int
	SetsMissing   int
	CardsImported int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool
}

// Importer reads vocabulary sets and writes them to the card repository.
type Importer struct {
	source SetSource
	repo   vocabulary.CardRepository
	writer io.Writer
}

// NewImporter creates a new Importer.
func NewImporter(source SetSource, repo vocabulary.CardRepository, writer io.Writer) *Importer {
	return &Importer{
		source: source,
		repo:   repo,
		writer: writer,
	}
}

// ImportSets replaces the stored cards of every loadable set whose contents changed.
func (imp *Importer) ImportSets(ctx context.Context, opts ImportOptions) (*ImportResult, error) {
	result := &ImportResult{}
	for _, setType := range vocabulary.SetTypes() {
		cards, ok := imp.source.LoadSet(ctx, string(setType))
		if !ok {
			result.SetsMissing++
			imp.printf("  %-10s missing\n", setType)
			continue
		}

		existing, err := imp.repo.FindBySetType(ctx, setType)
		if err != nil {
			return nil, fmt.Errorf("load existing cards: %w", err)
		}
		if sameCards(existing, cards) {
			result.SetsUnchanged++
			imp.printf("  %-10s unchanged (%d cards)\n", setType, len(cards))
			continue
		}

		if !opts.DryRun {
			if err := imp.repo.ReplaceSet(ctx, setType, cards); err != nil {
				return nil, fmt.Errorf("replace set: %w", err)
			}
		}
		result.SetsImported++
		result.CardsImported += len(cards)
		imp.printf("  %-10s %d cards (previously %d)\n", setType, len(cards), len(existing))
	}
	return result, nil
}

func (imp *Importer) printf(format string, args ...any) {
	if imp.writer == nil {
		return
	}
	_, _ = fmt.Fprintf(imp.writer, format, args...)
}

func sameCards(records []vocabulary.CardRecord, cards []vocabulary.Card) bool {
	if len(records) != len(cards) {
		return false
	}
	for i, record := range records {
		if !reflect.DeepEqual(record.Card(), cards[i]) {
			return false
		}
	}
	return true
}
