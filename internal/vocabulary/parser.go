package vocabulary

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	columnCharacter = "Character"
	columnPinyin    = "Pinyin"
	columnEnglish   = "English"
	columnExample   = "Example"
)

// ErrMissingColumn is returned when the header or a row lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

type columnIndexes struct {
	character int
	pinyin    int
	english   int
	// example is -1 when the header has no Example column
	example int
}

// ParseCards reads CSV rows with a header naming Character, Pinyin, English
// and optionally Example. Cards are returned in row order.
func ParseCards(r io.Reader) ([]Card, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	// quotes inside unquoted fields are kept as text, e.g. 他说 "好"
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read header: %w", ErrMissingColumn)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	indexes, err := newColumnIndexes(header)
	if err != nil {
		return nil, err
	}

	cards := make([]Card, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(cards)+1, err)
		}

		card, err := indexes.card(record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(cards)+1, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func newColumnIndexes(header []string) (columnIndexes, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		if _, ok := positions[name]; !ok {
			positions[name] = i
		}
	}

	var missing []string
	lookup := func(name string) int {
		i, ok := positions[name]
		if !ok {
			missing = append(missing, name)
			return -1
		}
		return i
	}
	indexes := columnIndexes{
		character: lookup(columnCharacter),
		pinyin:    lookup(columnPinyin),
		english:   lookup(columnEnglish),
		example:   -1,
	}
	if len(missing) > 0 {
		return columnIndexes{}, fmt.Errorf("header %v: %w: %s", header, ErrMissingColumn, strings.Join(missing, ", "))
	}
	if i, ok := positions[columnExample]; ok {
		indexes.example = i
	}
	return indexes, nil
}

func (c columnIndexes) card(record []string) (Card, error) {
	required := []struct {
		name  string
		index int
	}{
		{columnCharacter, c.character},
		{columnPinyin, c.pinyin},
		{columnEnglish, c.english},
	}
	for _, column := range required {
		if column.index >= len(record) {
			return Card{}, fmt.Errorf("%w: %s", ErrMissingColumn, column.name)
		}
	}

	card := Card{
		Character:     record[c.character],
		Pronunciation: record[c.pinyin],
		Translation:   record[c.english],
	}
	if c.example >= 0 && c.example < len(record) {
		example := record[c.example]
		card.Example = &example
	}
	return card, nil
}
