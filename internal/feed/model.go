// Package feed provides the subject catalog: the facts users scroll,
// their metadata, and pre-authored extended texts per proficiency level.
package feed

import (
	"database/sql"
	"time"
)

// Subject is a single fact in its original language.
type Subject struct {
	ID          string    `db:"id" yaml:"id"`
	SourceText  string    `db:"source_text" yaml:"source_text"`
	Language    string    `db:"language" yaml:"language"`
	Source      string    `db:"source" yaml:"source"`
	SourceURL   string    `db:"source_url" yaml:"source_url"`
	ImageURL    string    `db:"image_url" yaml:"image_url"`
	Category    string    `db:"category" yaml:"category"`
	Subcategory string    `db:"subcategory" yaml:"subcategory"`
	CreatedAt   time.Time `db:"created_at" yaml:"created_at"`
}

// SubjectTranslation holds the pre-authored extended texts for a subject in
// one language, one column per proficiency level.
type SubjectTranslation struct {
	ID                       int64          `db:"id"`
	SubjectID                string         `db:"subject_id"`
	Language                 string         `db:"language"`
	BeginnerTextExtended     sql.NullString `db:"beginner_text_extended"`
	IntermediateTextExtended sql.NullString `db:"intermediate_text_extended"`
	AdvancedTextExtended     sql.NullString `db:"advanced_text_extended"`
	CreatedAt                time.Time      `db:"created_at"`
}

// Level is a proficiency level for generated and pre-authored content.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// levelAccessors maps each level to the translation column holding its
// extended text. Column selection goes through this table, never through
// string interpolation into a query.
var levelAccessors = map[Level]func(SubjectTranslation) sql.NullString{
	LevelBeginner:     func(t SubjectTranslation) sql.NullString { return t.BeginnerTextExtended },
	LevelIntermediate: func(t SubjectTranslation) sql.NullString { return t.IntermediateTextExtended },
	LevelAdvanced:     func(t SubjectTranslation) sql.NullString { return t.AdvancedTextExtended },
}

// Valid reports whether the level is one of the known levels.
func (l Level) Valid() bool {
	_, ok := levelAccessors[l]
	return ok
}

// ExtendedText returns the extended text for the level, or false when the
// level is unknown or the column is NULL.
func (t SubjectTranslation) ExtendedText(level Level) (string, bool) {
	accessor, ok := levelAccessors[level]
	if !ok {
		return "", false
	}
	value := accessor(t)
	if !value.Valid {
		return "", false
	}
	return value.String, true
}

// translationLanguageCodes maps supported language names to translation
// provider language codes.
var translationLanguageCodes = map[string]string{
	"English": "EN",
	"Spanish": "ES",
	"French":  "FR",
	"German":  "DE",
	"Italian": "IT",
}

// TranslationLanguageCode returns the translation provider code for a
// language name, or false for an unsupported language.
func TranslationLanguageCode(language string) (string, bool) {
	code, ok := translationLanguageCodes[language]
	return code, ok
}
