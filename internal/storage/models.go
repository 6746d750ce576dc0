package storage

import (
	"time"

	"novel-annotator/internal/novel"
)

// NovelRecord is a novel as persisted: the full text and its chapter list.
type NovelRecord struct {
	ID        string
	Title     string
	Text      string
	Chapters  []novel.Chapter // Ordered by position
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NovelSummary is a novel row without its text, for listings.
type NovelSummary struct {
	ID           string
	Title        string
	TextLength   int // In characters
	ChapterCount int
	UpdatedAt    time.Time
}

// AnnotationRecord is a persisted annotation.
type AnnotationRecord struct {
	novel.Annotation
	CreatedAt time.Time
	UpdatedAt time.Time
}
