package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_annotation_store.go -package=mocks novel-annotator/internal/storage AnnotationStore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// AnnotationStore defines the interface for annotation storage operations.
type AnnotationStore interface {
	// ListByNovel returns a novel's annotations ordered by start offset.
	ListByNovel(ctx context.Context, novelID string) ([]AnnotationRecord, error)
	// Get gets an annotation by ID. Returns ErrNotFound if not found.
	Get(ctx context.Context, id string) (*AnnotationRecord, error)
	// Save inserts or updates one annotation. A new UUID is assigned when ID is empty.
	Save(ctx context.Context, annotation *AnnotationRecord) error
	// SaveBatch upserts several annotations in one transaction.
	SaveBatch(ctx context.Context, annotations []AnnotationRecord) error
	// Delete removes an annotation. Deleting a missing annotation is not an error.
	Delete(ctx context.Context, id string) error
}

// AnnotationRepo provides methods for annotation operations.
// It implements the AnnotationStore interface.
type AnnotationRepo struct {
	db *sql.DB
}

// NewAnnotationRepo creates a new AnnotationRepo.
func NewAnnotationRepo(db *sql.DB) *AnnotationRepo {
	return &AnnotationRepo{db: db}
}

const annotationColumns = "id, novel_id, user_id, text, start_index, end_index, tag_ids, is_potentially_misaligned, created_at, updated_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnnotation(row rowScanner) (AnnotationRecord, error) {
	var a AnnotationRecord
	var tagIDs string
	var misaligned sql.NullBool
	err := row.Scan(&a.ID, &a.NovelID, &a.UserID, &a.Text, &a.StartIndex, &a.EndIndex,
		&tagIDs, &misaligned, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return a, err
	}
	if err := json.Unmarshal([]byte(tagIDs), &a.TagIDs); err != nil {
		return a, fmt.Errorf("failed to decode tag_ids: %w", err)
	}
	a.IsPotentiallyMisaligned = misaligned.Valid && misaligned.Bool
	return a, nil
}

// ListByNovel returns a novel's annotations ordered by start offset.
// Returns an empty slice if there are none.
func (r *AnnotationRepo) ListByNovel(ctx context.Context, novelID string) ([]AnnotationRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+annotationColumns+" FROM annotations WHERE novel_id = ? ORDER BY start_index, id",
		novelID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query annotations: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	annotations := []AnnotationRecord{}
	for rows.Next() {
		a, err := scanAnnotation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan annotation: %w", err)
		}
		annotations = append(annotations, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return annotations, nil
}

// Get gets an annotation by ID. Returns ErrNotFound if not found.
func (r *AnnotationRepo) Get(ctx context.Context, id string) (*AnnotationRecord, error) {
	a, err := scanAnnotation(r.db.QueryRowContext(ctx,
		"SELECT "+annotationColumns+" FROM annotations WHERE id = ?",
		id,
	))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query annotation: %w", err)
	}
	return &a, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsertAnnotation(ctx context.Context, db execer, a *AnnotationRecord) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	tagIDs := a.TagIDs
	if tagIDs == nil {
		tagIDs = []string{}
	}
	encoded, err := json.Marshal(tagIDs)
	if err != nil {
		return fmt.Errorf("failed to encode tag_ids: %w", err)
	}
	var misaligned sql.NullBool
	if a.IsPotentiallyMisaligned {
		misaligned = sql.NullBool{Bool: true, Valid: true}
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO annotations (id, novel_id, user_id, text, start_index, end_index, tag_ids, is_potentially_misaligned, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		 ON CONFLICT (id) DO UPDATE SET
		 text = excluded.text, start_index = excluded.start_index, end_index = excluded.end_index,
		 tag_ids = excluded.tag_ids, is_potentially_misaligned = excluded.is_potentially_misaligned,
		 updated_at = CURRENT_TIMESTAMP`,
		a.ID, a.NovelID, a.UserID, a.Text, a.StartIndex, a.EndIndex, string(encoded), misaligned,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert annotation: %w", err)
	}
	return nil
}

// Save inserts or updates one annotation.
func (r *AnnotationRepo) Save(ctx context.Context, a *AnnotationRecord) error {
	return upsertAnnotation(ctx, r.db, a)
}

// SaveBatch upserts several annotations in one transaction.
func (r *AnnotationRepo) SaveBatch(ctx context.Context, annotations []AnnotationRecord) error {
	if len(annotations) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i := range annotations {
		if err := upsertAnnotation(ctx, tx, &annotations[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit annotations: %w", err)
	}
	return nil
}

// Delete removes an annotation by ID.
func (r *AnnotationRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM annotations WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete annotation: %w", err)
	}
	return nil
}
