package resolver

import (
	"fmt"

	"github.com/lingofeed/lingofeed/internal/feed"
)

// Kind identifies which resolution family a cache entry belongs to.
type Kind string

const (
	KindFactContent     Kind = "fact_content"
	KindWordTranslation Kind = "word_translation"
	KindWordAnalysis    Kind = "word_analysis"
)

// ContentKey is the composite identifier for one resolvable unit of
// content. Unused fields stay empty; equality is field-wise. The key is the
// exact-match cache lookup key, so two keys resolve to the same cache row
// only when every field matches.
type ContentKey struct {
	Kind           Kind
	SubjectID      string
	Word           string
	SourceLanguage string
	TargetLanguage string
	Level          feed.Level
}

// Validate checks the required fields for the key's kind. A failure means
// the request never reaches the cache or a provider.
func (key ContentKey) Validate() error {
	switch key.Kind {
	case KindFactContent:
		if key.SubjectID == "" || key.TargetLanguage == "" || key.Level == "" {
			return fmt.Errorf("%w: subjectId, language and level are required", ErrInvalidRequest)
		}
		if !key.Level.Valid() {
			return fmt.Errorf("%w: unknown level %q", ErrInvalidRequest, key.Level)
		}
	case KindWordTranslation:
		if key.Word == "" || key.SourceLanguage == "" || key.TargetLanguage == "" {
			return fmt.Errorf("%w: word, sourceLanguage and targetLanguage are required", ErrInvalidRequest)
		}
		if key.Level != "" && !key.Level.Valid() {
			return fmt.Errorf("%w: unknown level %q", ErrInvalidRequest, key.Level)
		}
	case KindWordAnalysis:
		if key.Word == "" || key.SourceLanguage == "" || key.TargetLanguage == "" {
			return fmt.Errorf("%w: word, sourceLanguage and targetLanguage are required", ErrInvalidRequest)
		}
	default:
		return fmt.Errorf("%w: unknown resolution kind %q", ErrInvalidRequest, key.Kind)
	}
	return nil
}
