package feed_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingofeed/lingofeed/internal/feed"
)

func newRepository(t *testing.T) (*feed.DBSubjectRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return feed.NewDBSubjectRepository(sqlx.NewDb(db, "mysql")), mock
}

var subjectColumns = []string{
	"id", "source_text", "language", "source", "source_url",
	"image_url", "category", "subcategory", "created_at",
}

func TestDBSubjectRepository_FindByID(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      *feed.Subject
		wantErr   bool
	}{
		{
			name: "returns the subject",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT \* FROM subjects WHERE id = \?`).
					WithArgs("f1").
					WillReturnRows(sqlmock.NewRows(subjectColumns).
						AddRow("f1", "Hello world", "English", "Encyclopedia", "https://example.com/f1",
							"https://example.com/f1.jpg", "science", "physics", createdAt))
			},
			want: &feed.Subject{
				ID:          "f1",
				SourceText:  "Hello world",
				Language:    "English",
				Source:      "Encyclopedia",
				SourceURL:   "https://example.com/f1",
				ImageURL:    "https://example.com/f1.jpg",
				Category:    "science",
				Subcategory: "physics",
				CreatedAt:   createdAt,
			},
		},
		{
			name: "missing subject returns nil without error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT \* FROM subjects WHERE id = \?`).
					WithArgs("f1").
					WillReturnRows(sqlmock.NewRows(subjectColumns))
			},
		},
		{
			name: "query failure is returned",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT \* FROM subjects WHERE id = \?`).
					WithArgs("f1").
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepository(t)
			tt.setupMock(mock)

			got, err := repo.FindByID(context.Background(), "f1")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDBSubjectRepository_List(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		params    feed.ListParams
		setupMock func(mock sqlmock.Sqlmock)
		wantIDs   []string
		wantErr   bool
	}{
		{
			name:   "defaults to the first page of five",
			params: feed.ListParams{},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT \* FROM subjects ORDER BY created_at DESC, id LIMIT \? OFFSET \?`).
					WithArgs(5, 0).
					WillReturnRows(sqlmock.NewRows(subjectColumns).
						AddRow("f2", "Second", "English", "", "", "", "science", "", createdAt).
						AddRow("f1", "First", "English", "", "", "", "science", "", createdAt))
			},
			wantIDs: []string{"f2", "f1"},
		},
		{
			name:   "page offset is page times limit",
			params: feed.ListParams{Page: 2, Limit: 10},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT \* FROM subjects ORDER BY created_at DESC, id LIMIT \? OFFSET \?`).
					WithArgs(10, 20).
					WillReturnRows(sqlmock.NewRows(subjectColumns))
			},
			wantIDs: nil,
		},
		{
			name: "category and language filters",
			params: feed.ListParams{
				Categories: []string{"science", "history"},
				Language:   "English",
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT \* FROM subjects WHERE category IN \(\?, \?\) AND language = \? ORDER BY created_at DESC, id LIMIT \? OFFSET \?`).
					WithArgs("science", "history", "English", 5, 0).
					WillReturnRows(sqlmock.NewRows(subjectColumns).
						AddRow("f1", "First", "English", "", "", "", "science", "", createdAt))
			},
			wantIDs: []string{"f1"},
		},
		{
			name:   "query failure is returned",
			params: feed.ListParams{},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT \* FROM subjects`).
					WithArgs(5, 0).
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepository(t)
			tt.setupMock(mock)

			got, err := repo.List(context.Background(), tt.params)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			ids := make([]string, 0, len(got))
			for _, subject := range got {
				ids = append(ids, subject.ID)
			}
			if tt.wantIDs == nil {
				assert.Empty(t, ids)
				return
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestDBSubjectRepository_FindTranslation(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	columns := []string{
		"id", "subject_id", "language",
		"beginner_text_extended", "intermediate_text_extended", "advanced_text_extended",
		"created_at",
	}

	t.Run("returns the translation row", func(t *testing.T) {
		repo, mock := newRepository(t)
		mock.ExpectQuery(`SELECT \* FROM subject_translations WHERE subject_id = \? AND language = \?`).
			WithArgs("f1", "Spanish").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(1, "f1", "Spanish", "Texto simple", nil, "Texto avanzado", createdAt))

		got, err := repo.FindTranslation(context.Background(), "f1", "Spanish")
		require.NoError(t, err)
		assert.Equal(t, &feed.SubjectTranslation{
			ID:                   1,
			SubjectID:            "f1",
			Language:             "Spanish",
			BeginnerTextExtended: sql.NullString{String: "Texto simple", Valid: true},
			AdvancedTextExtended: sql.NullString{String: "Texto avanzado", Valid: true},
			CreatedAt:            createdAt,
		}, got)
	})

	t.Run("missing row returns nil without error", func(t *testing.T) {
		repo, mock := newRepository(t)
		mock.ExpectQuery(`SELECT \* FROM subject_translations WHERE subject_id = \? AND language = \?`).
			WithArgs("f1", "Spanish").
			WillReturnRows(sqlmock.NewRows(columns))

		got, err := repo.FindTranslation(context.Background(), "f1", "Spanish")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestDBSubjectRepository_Create(t *testing.T) {
	t.Run("inserts the subject", func(t *testing.T) {
		repo, mock := newRepository(t)
		mock.ExpectExec(`INSERT INTO subjects`).
			WithArgs("f1", "Hello world", "English", "Encyclopedia", "https://example.com/f1",
				"https://example.com/f1.jpg", "science", "physics").
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Create(context.Background(), &feed.Subject{
			ID:          "f1",
			SourceText:  "Hello world",
			Language:    "English",
			Source:      "Encyclopedia",
			SourceURL:   "https://example.com/f1",
			ImageURL:    "https://example.com/f1.jpg",
			Category:    "science",
			Subcategory: "physics",
		})
		assert.NoError(t, err)
	})

	t.Run("insert failure is returned", func(t *testing.T) {
		repo, mock := newRepository(t)
		mock.ExpectExec(`INSERT INTO subjects`).
			WillReturnError(errors.New("duplicate entry"))

		err := repo.Create(context.Background(), &feed.Subject{ID: "f1"})
		assert.Error(t, err)
	})
}
