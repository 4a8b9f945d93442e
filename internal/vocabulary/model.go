// Package vocabulary loads vocabulary sets from CSV source files and caches
// the converted cards as JSON artifacts.
package vocabulary

import (
	"fmt"
	"slices"
)

// SetType identifies one of the fixed vocabulary sets.
type SetType string

const (
	SetTypeHSK1     SetType = "HSK1"
	SetTypeAcademic SetType = "Academic"
	SetTypePress    SetType = "Press"
	SetTypeFiction  SetType = "Fiction"
)

// setTypes is the fixed iteration order used by every aggregate operation.
var setTypes = []SetType{
	SetTypeHSK1,
	SetTypeAcademic,
	SetTypePress,
	SetTypeFiction,
}

// SetTypes returns the known set types in their fixed order.
func SetTypes() []SetType {
	return slices.Clone(setTypes)
}

// ParseSetType returns the SetType named by s, or false if s is not a known set.
func ParseSetType(s string) (SetType, bool) {
	for _, setType := range setTypes {
		if string(setType) == s {
			return setType, true
		}
	}
	return "", false
}

// SourceFileName is the CSV file name holding the set's rows.
func (t SetType) SourceFileName() string {
	return string(t) + ".csv"
}

// DisplayName is the human readable name of the set.
func (t SetType) DisplayName() string {
	return fmt.Sprintf("%s Vocabulary", t)
}

// DifficultyTier is 1 for the beginner set and 2 for all others.
func (t SetType) DifficultyTier() int {
	if t == SetTypeHSK1 {
		return 1
	}
	return 2
}

// Card is one vocabulary entry.
// Example is nil when the source row has no Example column.
type Card struct {
	Character     string  `json:"character"`
	Pronunciation string  `json:"pronunciation"`
	Translation   string  `json:"translation"`
	Example       *string `json:"example"`
}

// SetDescriptor summarizes a loadable set.
type SetDescriptor struct {
	Type           SetType `json:"type" yaml:"type"`
	DisplayName    string  `json:"displayName" yaml:"displayName"`
	CardCount      int     `json:"cardCount" yaml:"cardCount"`
	DifficultyTier int     `json:"difficultyTier" yaml:"difficultyTier"`
}

func newSetDescriptor(setType SetType, cards []Card) SetDescriptor {
	return SetDescriptor{
		Type:           setType,
		DisplayName:    setType.DisplayName(),
		CardCount:      len(cards),
		DifficultyTier: setType.DifficultyTier(),
	}
}
