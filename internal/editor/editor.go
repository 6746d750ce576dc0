// Package editor implements the chapter mutation operations. Every operation
// takes a novel.Snapshot and returns a new, self-consistent one: chapter
// contents equal their text slices, chapters stay ordered and annotations are
// realigned, shifted or flagged. Inputs are never modified.
package editor

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"novel-annotator/internal/novel"
	"novel-annotator/internal/realign"
	"novel-annotator/internal/segmenter"
)

var (
	// ErrChapterNotFound is returned when a chapter ID is not in the snapshot.
	ErrChapterNotFound = errors.New("chapter not found")
	// ErrNotContiguous is returned when a merge selection has gaps.
	ErrNotContiguous = errors.New("selected chapters are not contiguous")
	// ErrNothingToMerge is returned when a merge has fewer than two chapters.
	ErrNothingToMerge = errors.New("nothing to merge")
	// ErrOutOfRange is returned when a count or index is outside its valid range.
	ErrOutOfRange = errors.New("value out of range")
	// ErrInvalidLevel is returned for chapter levels outside 1..5.
	ErrInvalidLevel = errors.New("invalid chapter level")
	// ErrEmptyText is returned when appended text has no content.
	ErrEmptyText = errors.New("text is empty")
)

// OpError describes a rejected operation. Nothing was changed.
type OpError struct {
	Op     string
	Detail string
	Err    error
}

func (e *OpError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Detail, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func opErr(op string, err error, format string, args ...any) error {
	return &OpError{Op: op, Detail: fmt.Sprintf(format, args...), Err: err}
}

// Option configures an Editor.
type Option func(*Editor)

// WithSegmenter sets the segmenter used for full-text edits and appends.
func WithSegmenter(s *segmenter.Segmenter) Option {
	return func(e *Editor) {
		e.segmenter = s
	}
}

// WithRealigner sets the realigner used after text edits.
func WithRealigner(r *realign.Realigner) Option {
	return func(e *Editor) {
		e.realigner = r
	}
}

// WithIDFunc sets the ID generator for chapters created by CreateChapter.
func WithIDFunc(fn func() string) Option {
	return func(e *Editor) {
		e.newID = fn
	}
}

// Editor applies mutation operations to snapshots.
type Editor struct {
	segmenter *segmenter.Segmenter
	realigner *realign.Realigner
	newID     func() string
}

// New creates an Editor with a default segmenter and realigner unless overridden.
func New(opts ...Option) *Editor {
	e := &Editor{newID: uuid.NewString}
	for _, opt := range opts {
		opt(e)
	}
	if e.segmenter == nil {
		e.segmenter = segmenter.New()
	}
	if e.realigner == nil {
		e.realigner = realign.New()
	}
	return e
}

// Segment splits fresh novel text into chapters with the editor's segmenter.
func (e *Editor) Segment(text string) []novel.Chapter {
	return e.segmenter.Segment(text)
}

func findChapter(op string, snap novel.Snapshot, id string) (int, error) {
	i := snap.ChapterIndex(id)
	if i < 0 {
		return -1, opErr(op, ErrChapterNotFound, "chapter %q", id)
	}
	return i, nil
}

// shiftAnchors moves plot anchors for an edit that replaced old [start, end)
// with delta more characters. Anchors inside the edit are clamped to its new end.
func shiftAnchors(anchors []novel.PlotAnchor, start, end, delta int) []novel.PlotAnchor {
	if anchors == nil {
		return nil
	}
	out := make([]novel.PlotAnchor, len(anchors))
	for i, a := range anchors {
		switch {
		case a.Position >= end:
			a.Position += delta
		case a.Position > start:
			a.Position = min(a.Position, end+delta)
			a.Position = max(a.Position, start)
		}
		out[i] = a
	}
	return out
}
