package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_novel_store.go -package=mocks novel-annotator/internal/storage NovelStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"novel-annotator/internal/novel"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// NovelStore defines the interface for novel storage operations.
type NovelStore interface {
	// Get loads a novel with its chapters. Returns ErrNotFound if not found.
	Get(ctx context.Context, id string) (*NovelRecord, error)
	// List returns summaries of all novels, most recently updated first.
	List(ctx context.Context) ([]NovelSummary, error)
	// Save upserts the novel row and replaces its chapter rows in one transaction.
	// A new UUID is assigned when novel.ID is empty.
	Save(ctx context.Context, novel *NovelRecord) error
	// Delete removes a novel and everything that references it.
	Delete(ctx context.Context, id string) error
}

// NovelRepo provides methods for novel operations.
// It implements the NovelStore interface.
type NovelRepo struct {
	db *sql.DB
}

// NewNovelRepo creates a new NovelRepo.
func NewNovelRepo(db *sql.DB) *NovelRepo {
	return &NovelRepo{db: db}
}

// Get loads a novel with its chapters ordered by position.
func (r *NovelRepo) Get(ctx context.Context, id string) (*NovelRecord, error) {
	var rec NovelRecord
	err := r.db.QueryRowContext(ctx,
		"SELECT id, title, text, created_at, updated_at FROM novels WHERE id = ?",
		id,
	).Scan(&rec.ID, &rec.Title, &rec.Text, &rec.CreatedAt, &rec.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query novel: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, content, html_content, start_index, end_index, level
		 FROM chapters WHERE novel_id = ? ORDER BY position`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query chapters: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	rec.Chapters = []novel.Chapter{}
	for rows.Next() {
		var c novel.Chapter
		var html sql.NullString
		if err := rows.Scan(&c.ID, &c.Title, &c.Content, &html, &c.OriginalStartIndex, &c.OriginalEndIndex, &c.Level); err != nil {
			return nil, fmt.Errorf("failed to scan chapter: %w", err)
		}
		if html.Valid {
			c.HTMLContent = &html.String
		}
		rec.Chapters = append(rec.Chapters, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return &rec, nil
}

// List returns summaries of all novels, most recently updated first.
func (r *NovelRepo) List(ctx context.Context) ([]NovelSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT n.id, n.title, length(n.text),
		 (SELECT COUNT(*) FROM chapters c WHERE c.novel_id = n.id),
		 n.updated_at
		 FROM novels n
		 ORDER BY n.updated_at DESC, n.title`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query novels: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	summaries := []NovelSummary{}
	for rows.Next() {
		var s NovelSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.TextLength, &s.ChapterCount, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan novel: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return summaries, nil
}

// Save upserts the novel and replaces its chapters in one transaction, so a
// stored chapter list always matches the stored text.
func (r *NovelRepo) Save(ctx context.Context, rec *NovelRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO novels (id, title, text, created_at, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		 ON CONFLICT (id) DO UPDATE SET
		 title = excluded.title, text = excluded.text, updated_at = CURRENT_TIMESTAMP`,
		rec.ID, rec.Title, rec.Text,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert novel: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM chapters WHERE novel_id = ?", rec.ID); err != nil {
		return fmt.Errorf("failed to delete chapters: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO chapters (id, novel_id, position, title, content, html_content, start_index, end_index, level)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("failed to prepare chapter insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for i, c := range rec.Chapters {
		var html sql.NullString
		if c.HTMLContent != nil {
			html = sql.NullString{String: *c.HTMLContent, Valid: true}
		}
		_, err := stmt.ExecContext(ctx,
			c.ID, rec.ID, i, c.Title, c.Content, html, c.OriginalStartIndex, c.OriginalEndIndex, c.EffectiveLevel(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert chapter %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit novel: %w", err)
	}
	return nil
}

// Delete removes a novel. Chapters, annotations and plot anchors cascade.
// Returns ErrNotFound if no novel has the given ID.
func (r *NovelRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM novels WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete novel: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
