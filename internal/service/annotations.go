package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"novel-annotator/internal/novel"
)

// CreateAnnotationRequest represents a request to annotate a span of text.
type CreateAnnotationRequest struct {
	UserID     string
	StartIndex int
	EndIndex   int
	TagIDs     []string
}

// AddPlotAnchorRequest represents a request to mark a storyline position.
type AddPlotAnchorRequest struct {
	StorylineID string
	Title       string
	Position    int
}

// ListAnnotations returns a novel's annotations.
func (s *novelService) ListAnnotations(ctx context.Context, id string) ([]novel.Annotation, error) {
	unlock := s.lock(id)
	defer unlock()

	entry, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return viewOf(id, entry).Annotations, nil
}

// CreateAnnotation annotates [StartIndex, EndIndex) of the text. The
// annotation's text is taken from the novel.
func (s *novelService) CreateAnnotation(ctx context.Context, id string, req CreateAnnotationRequest) (novel.Annotation, error) {
	var created novel.Annotation
	_, err := s.mutate(ctx, id, "create annotation", func(snap novel.Snapshot) (novel.Snapshot, Report, error) {
		textLen := novel.RuneLen(snap.Text)
		if req.StartIndex < 0 || req.EndIndex > textLen || req.StartIndex >= req.EndIndex {
			return novel.Snapshot{}, Report{}, &ValidationError{
				Field:   "startIndex",
				Message: fmt.Sprintf("range [%d, %d) is not a non-empty span of a %d character text", req.StartIndex, req.EndIndex, textLen),
			}
		}

		userID := strings.TrimSpace(req.UserID)
		if userID == "" {
			userID = s.defaultUserID
		}
		tagIDs := slices.Clone(req.TagIDs)
		if tagIDs == nil {
			tagIDs = []string{}
		}
		created = novel.Annotation{
			ID:         s.newID(),
			NovelID:    id,
			UserID:     userID,
			Text:       novel.Slice(snap.Text, req.StartIndex, req.EndIndex),
			StartIndex: req.StartIndex,
			EndIndex:   req.EndIndex,
			TagIDs:     tagIDs,
		}

		out := snap.Clone()
		out.Annotations = append(out.Annotations, created)
		return out, Report{}, nil
	})
	if err != nil && !errors.Is(err, ErrPersistence) {
		return novel.Annotation{}, err
	}
	return created, err
}

// DeleteAnnotation removes an annotation from a novel.
func (s *novelService) DeleteAnnotation(ctx context.Context, id, annotationID string) error {
	_, err := s.mutate(ctx, id, "delete annotation", func(snap novel.Snapshot) (novel.Snapshot, Report, error) {
		i := slices.IndexFunc(snap.Annotations, func(a novel.Annotation) bool { return a.ID == annotationID })
		if i < 0 {
			return novel.Snapshot{}, Report{}, fmt.Errorf("%w: annotation %s", ErrNotFound, annotationID)
		}
		out := snap.Clone()
		out.Annotations = slices.Delete(out.Annotations, i, i+1)
		return out, Report{}, nil
	})
	return err
}

// AddPlotAnchor marks a position on a storyline.
func (s *novelService) AddPlotAnchor(ctx context.Context, id string, req AddPlotAnchorRequest) (novel.PlotAnchor, error) {
	storyline := strings.TrimSpace(req.StorylineID)
	if storyline == "" {
		return novel.PlotAnchor{}, &ValidationError{Field: "storylineId", Message: "cannot be empty"}
	}

	var created novel.PlotAnchor
	_, err := s.mutate(ctx, id, "add plot anchor", func(snap novel.Snapshot) (novel.Snapshot, Report, error) {
		textLen := novel.RuneLen(snap.Text)
		if req.Position < 0 || req.Position > textLen {
			return novel.Snapshot{}, Report{}, &ValidationError{
				Field:   "position",
				Message: fmt.Sprintf("%d is outside [0, %d]", req.Position, textLen),
			}
		}

		created = novel.PlotAnchor{
			ID:          s.newID(),
			NovelID:     id,
			StorylineID: storyline,
			Title:       strings.TrimSpace(req.Title),
			Position:    req.Position,
		}
		out := snap.Clone()
		out.PlotAnchors = append(out.PlotAnchors, created)
		return out, Report{}, nil
	})
	if err != nil && !errors.Is(err, ErrPersistence) {
		return novel.PlotAnchor{}, err
	}
	return created, err
}
