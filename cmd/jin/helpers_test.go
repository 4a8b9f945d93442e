package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/jin/internal/vocabulary"
)

func TestParseSetTypes(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []vocabulary.SetType
		wantErr bool
	}{
		{
			name: "no arguments selects every set",
			want: []vocabulary.SetType{
				vocabulary.SetTypeHSK1,
				vocabulary.SetTypeAcademic,
				vocabulary.SetTypePress,
				vocabulary.SetTypeFiction,
			},
		},
		{
			name: "keeps the given order",
			args: []string{"Fiction", "HSK1"},
			want: []vocabulary.SetType{vocabulary.SetTypeFiction, vocabulary.SetTypeHSK1},
		},
		{
			name:    "unknown set",
			args:    []string{"HSK1", "hsk1"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSetTypes(tt.args)
			if tt.wantErr {
				assert.ErrorIs(t, err, vocabulary.ErrUnknownSetType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKnownSetTypes(t *testing.T) {
	assert.Equal(t, "HSK1, Academic, Press, Fiction", knownSetTypes())
}
