package feed_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lingofeed/lingofeed/internal/feed"
)

func TestLevel_Valid(t *testing.T) {
	assert.True(t, feed.LevelBeginner.Valid())
	assert.True(t, feed.LevelIntermediate.Valid())
	assert.True(t, feed.LevelAdvanced.Valid())
	assert.False(t, feed.Level("").Valid())
	assert.False(t, feed.Level("Expert").Valid())
	assert.False(t, feed.Level("beginner").Valid())
}

func TestSubjectTranslation_ExtendedText(t *testing.T) {
	translation := feed.SubjectTranslation{
		BeginnerTextExtended:     sql.NullString{String: "Texto simple", Valid: true},
		IntermediateTextExtended: sql.NullString{},
		AdvancedTextExtended:     sql.NullString{String: "Texto avanzado", Valid: true},
	}

	tests := []struct {
		name   string
		level  feed.Level
		want   string
		wantOK bool
	}{
		{
			name:   "beginner column",
			level:  feed.LevelBeginner,
			want:   "Texto simple",
			wantOK: true,
		},
		{
			name:  "NULL column is absent",
			level: feed.LevelIntermediate,
		},
		{
			name:   "advanced column",
			level:  feed.LevelAdvanced,
			want:   "Texto avanzado",
			wantOK: true,
		},
		{
			name:  "unknown level is absent",
			level: feed.Level("Expert"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translation.ExtendedText(tt.level)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslationLanguageCode(t *testing.T) {
	tests := []struct {
		language string
		want     string
		wantOK   bool
	}{
		{language: "English", want: "EN", wantOK: true},
		{language: "Spanish", want: "ES", wantOK: true},
		{language: "French", want: "FR", wantOK: true},
		{language: "German", want: "DE", wantOK: true},
		{language: "Italian", want: "IT", wantOK: true},
		{language: "Finnish"},
		{language: "spanish"},
		{language: ""},
	}

	for _, tt := range tests {
		t.Run(tt.language, func(t *testing.T) {
			got, ok := feed.TranslationLanguageCode(tt.language)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
