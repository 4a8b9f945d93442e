package vocabulary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringPtr(s string) *string {
	return &s
}

func TestParseCards(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Card
		wantErr error
	}{
		{
			name:  "rows with example column",
			input: "Character,Pinyin,English,Example\n你,nǐ,you,\n好,hǎo,good,你好\n",
			want: []Card{
				{Character: "你", Pronunciation: "nǐ", Translation: "you", Example: stringPtr("")},
				{Character: "好", Pronunciation: "hǎo", Translation: "good", Example: stringPtr("你好")},
			},
		},
		{
			name:  "header without example column",
			input: "Character,Pinyin,English\n学习,xuéxí,study\n",
			want: []Card{
				{Character: "学习", Pronunciation: "xuéxí", Translation: "study"},
			},
		},
		{
			name:  "columns in a different order with extra columns",
			input: "English,HSK,Pinyin,Character\nstudy,1,xuéxí,学习\n",
			want: []Card{
				{Character: "学习", Pronunciation: "xuéxí", Translation: "study"},
			},
		},
		{
			name:  "row shorter than the example column",
			input: "Character,Pinyin,English,Example\n默认,mòrèn,default\n",
			want: []Card{
				{Character: "默认", Pronunciation: "mòrèn", Translation: "default"},
			},
		},
		{
			name:  "quoted fields with commas and newlines",
			input: "Character,Pinyin,English,Example\n默认,mòrèn,\"default, preset\",\"这是默认设置。\nThis is the default setting.\"\n",
			want: []Card{
				{
					Character:     "默认",
					Pronunciation: "mòrèn",
					Translation:   "default, preset",
					Example:       stringPtr("这是默认设置。\nThis is the default setting."),
				},
			},
		},
		{
			name:  "bare quotes inside unquoted fields",
			input: "Character,Pinyin,English,Example\n说,shuō,\"to say\",他说 \"好\"\n好,hǎo,good (\"fine\"),\n",
			want: []Card{
				{Character: "说", Pronunciation: "shuō", Translation: "to say", Example: stringPtr(`他说 "好"`)},
				{Character: "好", Pronunciation: "hǎo", Translation: `good ("fine")`, Example: stringPtr("")},
			},
		},
		{
			name:  "byte order mark and padded header",
			input: "\ufeffCharacter, Pinyin ,English\n你,nǐ,you\n",
			want: []Card{
				{Character: "你", Pronunciation: "nǐ", Translation: "you"},
			},
		},
		{
			name:  "header only",
			input: "Character,Pinyin,English,Example\n",
			want:  []Card{},
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrMissingColumn,
		},
		{
			name:    "header without required column",
			input:   "Character,English\n你,you\n",
			wantErr: ErrMissingColumn,
		},
		{
			name:    "row without required column fails the whole set",
			input:   "Character,Pinyin,English\n你,nǐ,you\n好,hǎo\n",
			wantErr: ErrMissingColumn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCards_UnterminatedQuoteAtEOF(t *testing.T) {
	// the open quote swallows the rest of the file into one field
	got, err := ParseCards(strings.NewReader("Character,Pinyin,English\n\"你,nǐ,you\n"))
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Nil(t, got)
}
