package feed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ImportResult summarizes a seed import run.
type ImportResult struct {
	Created int
	Skipped int
}

// Importer loads subject YAML files into the repository.
type Importer struct {
	repo SubjectRepository
}

// NewImporter creates a new Importer.
func NewImporter(repo SubjectRepository) *Importer {
	return &Importer{repo: repo}
}

// ImportDir reads every YAML file in dir and inserts the subjects it finds.
// Subjects without an id get a generated one. Subjects whose id already
// exists are skipped, not updated.
func (imp *Importer) ImportDir(ctx context.Context, dir string) (ImportResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ImportResult{}, fmt.Errorf("os.ReadDir > %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	var result ImportResult
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yml" && ext != ".yaml" {
			continue
		}

		fileResult, err := imp.importFile(ctx, filepath.Join(dir, entry.Name()))
		if err != nil {
			return result, fmt.Errorf("file %s > %w", entry.Name(), err)
		}
		result.Created += fileResult.Created
		result.Skipped += fileResult.Skipped
	}
	return result, nil
}

func (imp *Importer) importFile(ctx context.Context, path string) (ImportResult, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("os.ReadFile > %w", err)
	}

	var subjects []Subject
	if err := yaml.Unmarshal(contents, &subjects); err != nil {
		return ImportResult{}, fmt.Errorf("yaml.Unmarshal > %w", err)
	}

	var result ImportResult
	for i := range subjects {
		subject := &subjects[i]
		if subject.SourceText == "" {
			return result, fmt.Errorf("subject %d has no source_text", i)
		}
		if subject.Language == "" {
			subject.Language = "English"
		}
		if subject.ID == "" {
			subject.ID = uuid.NewString()
		} else {
			existing, err := imp.repo.FindByID(ctx, subject.ID)
			if err != nil {
				return result, fmt.Errorf("repo.FindByID(%s) > %w", subject.ID, err)
			}
			if existing != nil {
				result.Skipped++
				continue
			}
		}

		if err := imp.repo.Create(ctx, subject); err != nil {
			return result, fmt.Errorf("repo.Create(%s) > %w", subject.ID, err)
		}
		result.Created++
	}
	return result, nil
}
