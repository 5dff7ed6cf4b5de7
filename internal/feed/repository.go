package feed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/feed/mock_repository.go -package=mock_feed

// ListParams filters and paginates the subject listing.
type ListParams struct {
	Page       int
	Limit      int
	Categories []string
	Language   string
}

// SubjectRepository defines read and import operations over the subject catalog.
type SubjectRepository interface {
	FindByID(ctx context.Context, id string) (*Subject, error)
	List(ctx context.Context, params ListParams) ([]Subject, error)
	FindTranslation(ctx context.Context, subjectID, language string) (*SubjectTranslation, error)
	Create(ctx context.Context, subject *Subject) error
}

// DBSubjectRepository implements SubjectRepository using MySQL.
type DBSubjectRepository struct {
	db *sqlx.DB
}

// NewDBSubjectRepository creates a new DBSubjectRepository.
func NewDBSubjectRepository(db *sqlx.DB) *DBSubjectRepository {
	return &DBSubjectRepository{db: db}
}

// FindByID returns the subject with the given id, or nil if not found.
func (r *DBSubjectRepository) FindByID(ctx context.Context, id string) (*Subject, error) {
	var subject Subject
	err := r.db.GetContext(ctx, &subject, "SELECT * FROM subjects WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(subject) > %w", err)
	}
	return &subject, nil
}

// List returns a page of subjects, newest first. Ordering is deterministic
// so pagination never repeats or skips rows.
func (r *DBSubjectRepository) List(ctx context.Context, params ListParams) ([]Subject, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 5
	}
	page := params.Page
	if page < 0 {
		page = 0
	}

	query := "SELECT * FROM subjects"
	var conditions []string
	var args []interface{}

	if len(params.Categories) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(params.Categories)), ", ")
		conditions = append(conditions, fmt.Sprintf("category IN (%s)", placeholders))
		for _, category := range params.Categories {
			args = append(args, category)
		}
	}
	if params.Language != "" {
		conditions = append(conditions, "language = ?")
		args = append(args, params.Language)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, id LIMIT ? OFFSET ?"
	args = append(args, limit, page*limit)

	var subjects []Subject
	if err := r.db.SelectContext(ctx, &subjects, query, args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext(subjects) > %w", err)
	}
	return subjects, nil
}

// FindTranslation returns the extended translation row for a subject and
// language, or nil if not found.
func (r *DBSubjectRepository) FindTranslation(ctx context.Context, subjectID, language string) (*SubjectTranslation, error) {
	var translation SubjectTranslation
	err := r.db.GetContext(ctx, &translation,
		"SELECT * FROM subject_translations WHERE subject_id = ? AND language = ?",
		subjectID, language)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(subject_translation) > %w", err)
	}
	return &translation, nil
}

// Create inserts a new subject.
func (r *DBSubjectRepository) Create(ctx context.Context, subject *Subject) error {
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO subjects (id, source_text, language, source, source_url, image_url, category, subcategory)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		subject.ID, subject.SourceText, subject.Language, subject.Source,
		subject.SourceURL, subject.ImageURL, subject.Category, subject.Subcategory); err != nil {
		return fmt.Errorf("db.ExecContext(insert subject) > %w", err)
	}
	return nil
}
