package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_plot_anchor_store.go -package=mocks novel-annotator/internal/storage PlotAnchorStore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"novel-annotator/internal/novel"
)

// PlotAnchorStore defines the interface for plot anchor storage operations.
type PlotAnchorStore interface {
	// ListByNovel returns a novel's plot anchors ordered by position.
	ListByNovel(ctx context.Context, novelID string) ([]novel.PlotAnchor, error)
	// Save inserts or updates a plot anchor. A new UUID is assigned when ID is empty.
	Save(ctx context.Context, anchor *novel.PlotAnchor) error
	// Delete removes a plot anchor. Deleting a missing anchor is not an error.
	Delete(ctx context.Context, id string) error
}

// PlotAnchorRepo provides methods for plot anchor operations.
// It implements the PlotAnchorStore interface.
type PlotAnchorRepo struct {
	db *sql.DB
}

// NewPlotAnchorRepo creates a new PlotAnchorRepo.
func NewPlotAnchorRepo(db *sql.DB) *PlotAnchorRepo {
	return &PlotAnchorRepo{db: db}
}

// ListByNovel returns a novel's plot anchors ordered by position.
func (r *PlotAnchorRepo) ListByNovel(ctx context.Context, novelID string) ([]novel.PlotAnchor, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, novel_id, storyline_id, title, position FROM plot_anchors WHERE novel_id = ? ORDER BY position, id",
		novelID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query plot anchors: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	anchors := []novel.PlotAnchor{}
	for rows.Next() {
		var a novel.PlotAnchor
		if err := rows.Scan(&a.ID, &a.NovelID, &a.StorylineID, &a.Title, &a.Position); err != nil {
			return nil, fmt.Errorf("failed to scan plot anchor: %w", err)
		}
		anchors = append(anchors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return anchors, nil
}

// Save inserts or updates a plot anchor.
func (r *PlotAnchorRepo) Save(ctx context.Context, a *novel.PlotAnchor) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO plot_anchors (id, novel_id, storyline_id, title, position)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		 storyline_id = excluded.storyline_id, title = excluded.title, position = excluded.position`,
		a.ID, a.NovelID, a.StorylineID, a.Title, a.Position,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert plot anchor: %w", err)
	}
	return nil
}

// Delete removes a plot anchor by ID.
func (r *PlotAnchorRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM plot_anchors WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete plot anchor: %w", err)
	}
	return nil
}
