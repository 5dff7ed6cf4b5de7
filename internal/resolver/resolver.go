// Package resolver implements the cache-or-generate resolution pipeline:
// check the cache, on miss call a provider, validate the output, persist it
// best-effort, and return it.
package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lingofeed/lingofeed/internal/feed"
	"github.com/lingofeed/lingofeed/internal/provider"
)

//go:generate mockgen -source=resolver.go -destination=../mocks/resolver/mock_source.go -package=mock_resolver

// SubjectSource is the slice of the subject catalog the pipeline reads.
type SubjectSource interface {
	FindByID(ctx context.Context, id string) (*feed.Subject, error)
	FindTranslation(ctx context.Context, subjectID, language string) (*feed.SubjectTranslation, error)
}

// Resolver orchestrates cache lookups and provider calls. Each resolution
// is stateless and independent; concurrent first resolutions of the same
// key may each call the provider once and race to the insert, which the
// store settles by keeping the first row.
type Resolver struct {
	cache      CacheStore
	subjects   SubjectSource
	generator  provider.Generator
	translator provider.Translator
}

// New creates a new Resolver.
func New(cache CacheStore, subjects SubjectSource, generator provider.Generator, translator provider.Translator) *Resolver {
	return &Resolver{
		cache:      cache,
		subjects:   subjects,
		generator:  generator,
		translator: translator,
	}
}

// FactContentRequest identifies a fact rendered at a language and level.
type FactContentRequest struct {
	SubjectID string     `json:"subjectId"`
	Language  string     `json:"language"`
	Level     feed.Level `json:"level"`
}

// ResolveFactContent returns the fact body in the requested language and
// level, served from cache when available.
func (r *Resolver) ResolveFactContent(ctx context.Context, req FactContentRequest) (FactContent, error) {
	key := ContentKey{
		Kind:           KindFactContent,
		SubjectID:      req.SubjectID,
		TargetLanguage: req.Language,
		Level:          req.Level,
	}
	if err := key.Validate(); err != nil {
		return FactContent{}, err
	}

	var cached FactContent
	if r.readCache(ctx, key, &cached) {
		return cached, nil
	}

	subject, err := r.subjects.FindByID(ctx, req.SubjectID)
	if err != nil {
		return FactContent{}, fmt.Errorf("subjects.FindByID > %w", err)
	}
	if subject == nil {
		return FactContent{}, fmt.Errorf("%w: subject %q", ErrNotFound, req.SubjectID)
	}

	raw, err := r.generator.Generate(ctx, factContentInstruction(req.Language, req.Level, subject.SourceText))
	if err != nil {
		return FactContent{}, fmt.Errorf("generator.Generate > %w", err)
	}

	content := strings.TrimSpace(raw)
	if content == "" {
		return FactContent{}, ErrEmptyGeneration
	}

	payload := FactContent{Content: content}
	r.writeCache(ctx, key, payload)
	return payload, nil
}

// ExtendedFactRequest identifies a pre-authored extended fact text.
type ExtendedFactRequest struct {
	SubjectID string     `json:"subjectId"`
	Language  string     `json:"language"`
	Level     feed.Level `json:"level"`
}

// ResolveExtendedFactContent returns pre-authored extended content with
// subject metadata. This operation is lookup-only: nothing is generated and
// nothing is written to the cache.
func (r *Resolver) ResolveExtendedFactContent(ctx context.Context, req ExtendedFactRequest) (ExtendedFactContent, error) {
	key := ContentKey{
		Kind:           KindFactContent,
		SubjectID:      req.SubjectID,
		TargetLanguage: req.Language,
		Level:          req.Level,
	}
	if err := key.Validate(); err != nil {
		return ExtendedFactContent{}, err
	}

	translation, err := r.subjects.FindTranslation(ctx, req.SubjectID, req.Language)
	if err != nil {
		return ExtendedFactContent{}, fmt.Errorf("subjects.FindTranslation > %w", err)
	}
	if translation == nil {
		return ExtendedFactContent{}, fmt.Errorf("%w: extended content for subject %q in %s", ErrNotFound, req.SubjectID, req.Language)
	}

	content, ok := translation.ExtendedText(req.Level)
	if !ok {
		return ExtendedFactContent{}, fmt.Errorf("%w: extended content for subject %q at %s level", ErrNotFound, req.SubjectID, req.Level)
	}

	payload := ExtendedFactContent{Content: content}

	// Metadata is best-effort; the content is still returned without it.
	subject, err := r.subjects.FindByID(ctx, req.SubjectID)
	if err != nil {
		slog.Default().Error("failed to load subject metadata for extended fact",
			"subjectID", req.SubjectID,
			"error", err)
	} else if subject != nil {
		payload.Source = subject.Source
		payload.SourceURL = subject.SourceURL
		payload.ImageURL = subject.ImageURL
		payload.Category = subject.Category
		payload.Subcategory = subject.Subcategory
	}
	return payload, nil
}

// WordTranslationRequest identifies a word translation, optionally scoped
// to the subject whose text the word was selected from.
type WordTranslationRequest struct {
	Word           string     `json:"word"`
	SourceLanguage string     `json:"sourceLanguage"`
	TargetLanguage string     `json:"targetLanguage"`
	SubjectID      string     `json:"subjectId,omitempty"`
	Level          feed.Level `json:"level,omitempty"`
}

// ResolveWordTranslation returns the contextual translation of a word,
// served from cache when available.
func (r *Resolver) ResolveWordTranslation(ctx context.Context, req WordTranslationRequest) (WordTranslation, error) {
	key := ContentKey{
		Kind:           KindWordTranslation,
		SubjectID:      req.SubjectID,
		Word:           req.Word,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
		Level:          req.Level,
	}
	if err := key.Validate(); err != nil {
		return WordTranslation{}, err
	}

	sourceCode, ok := feed.TranslationLanguageCode(req.SourceLanguage)
	if !ok {
		return WordTranslation{}, fmt.Errorf("%w: unsupported source language %q", ErrInvalidRequest, req.SourceLanguage)
	}
	targetCode, ok := feed.TranslationLanguageCode(req.TargetLanguage)
	if !ok {
		return WordTranslation{}, fmt.Errorf("%w: unsupported target language %q", ErrInvalidRequest, req.TargetLanguage)
	}

	var cached WordTranslation
	if r.readCache(ctx, key, &cached) {
		return cached, nil
	}

	// The subject text is optional context for the translation; a missing
	// subject downgrades to a context-free translation.
	translationContext := ""
	if req.SubjectID != "" {
		subject, err := r.subjects.FindByID(ctx, req.SubjectID)
		if err != nil {
			slog.Default().Error("failed to load subject for translation context",
				"subjectID", req.SubjectID,
				"error", err)
		} else if subject != nil {
			translationContext = subject.SourceText
		}
	}

	raw, err := r.translator.Translate(ctx, provider.TranslateRequest{
		Text:           req.Word,
		SourceLangCode: sourceCode,
		TargetLangCode: targetCode,
		Context:        translationContext,
	})
	if err != nil {
		return WordTranslation{}, fmt.Errorf("translator.Translate > %w", err)
	}

	translated := strings.TrimSpace(raw)
	if translated == "" {
		return WordTranslation{}, ErrEmptyGeneration
	}

	payload := WordTranslation{PrimaryTranslation: translated}
	r.writeCache(ctx, key, payload)
	return payload, nil
}

// WordAnalysisRequest identifies an expanded word analysis.
type WordAnalysisRequest struct {
	Word           string `json:"word"`
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
}

// ResolveWordAnalysis returns the expanded analysis of a word, served from
// cache when available.
func (r *Resolver) ResolveWordAnalysis(ctx context.Context, req WordAnalysisRequest) (WordAnalysis, error) {
	key := ContentKey{
		Kind:           KindWordAnalysis,
		Word:           req.Word,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
	}
	if err := key.Validate(); err != nil {
		return WordAnalysis{}, err
	}

	var cached WordAnalysis
	if r.readCache(ctx, key, &cached) {
		return cached, nil
	}

	raw, err := r.generator.GenerateJSON(ctx, wordAnalysisInstruction(req.Word, req.SourceLanguage, req.TargetLanguage))
	if err != nil {
		return WordAnalysis{}, fmt.Errorf("generator.GenerateJSON > %w", err)
	}

	var payload WordAnalysis
	normalized := provider.NormalizeJSON(raw)
	if err := json.Unmarshal([]byte(normalized), &payload); err != nil {
		slog.Default().Error("failed to parse word analysis response",
			"word", req.Word,
			"error", err)
		return WordAnalysis{}, fmt.Errorf("%w: json.Unmarshal > %v", provider.ErrMalformedResponse, err)
	}
	if len(payload.Meanings) == 0 {
		return WordAnalysis{}, fmt.Errorf("%w: analysis has no meanings", provider.ErrMalformedResponse)
	}
	for i, meaning := range payload.Meanings {
		if meaning.Translation == "" {
			return WordAnalysis{}, fmt.Errorf("%w: meaning %d has no translation", provider.ErrMalformedResponse, i)
		}
	}

	r.writeCache(ctx, key, payload)
	return payload, nil
}

// readCache reports whether key was served from cache, unmarshalling into
// out on a hit. Read failures and undecodable rows count as misses.
func (r *Resolver) readCache(ctx context.Context, key ContentKey, out interface{}) bool {
	entry, err := r.cache.Get(ctx, key)
	if err != nil {
		slog.Default().Error("cache read failed, treating as miss",
			"kind", key.Kind,
			"error", err)
		return false
	}
	if entry == nil {
		return false
	}
	if err := json.Unmarshal(entry.Payload, out); err != nil {
		slog.Default().Error("cache entry payload is undecodable, treating as miss",
			"kind", key.Kind,
			"error", err)
		return false
	}
	return true
}

// writeCache persists a freshly computed payload. A write failure is logged
// and swallowed; it never fails the resolution.
func (r *Resolver) writeCache(ctx context.Context, key ContentKey, payload interface{}) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("failed to encode payload for cache",
			"kind", key.Kind,
			"error", err)
		return
	}
	if err := r.cache.Put(ctx, key, encoded); err != nil {
		slog.Default().Error("cache write failed",
			"kind", key.Kind,
			"error", err)
	}
}
