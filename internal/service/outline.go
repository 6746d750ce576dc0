package service

import (
	"context"
	"fmt"

	"novel-annotator/internal/cache"
	"novel-annotator/internal/contextutil"
	"novel-annotator/internal/outline"
)

// OutlineQuery selects which part of the outline to return.
type OutlineQuery struct {
	// Expanded lists the chapters whose children are shown.
	Expanded  []string
	ExpandAll bool
	Page      int
	Size      int
	// Selected, when set, adds the selected chapter's ancestor path to the result.
	Selected string
}

// OutlineResult is one page of the flattened outline.
type OutlineResult struct {
	Page       outline.Page[outline.FlatChapter] `json:"page"`
	Breadcrumb []outline.FlatChapter             `json:"breadcrumb,omitempty"`
}

// RenderedChapter is a chapter with its HTML.
type RenderedChapter struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Level int    `json:"level"`
	HTML  string `json:"html"`
}

// Outline returns one page of the chapter hierarchy.
func (s *novelService) Outline(ctx context.Context, id string, q OutlineQuery) (OutlineResult, error) {
	unlock := s.lock(id)
	entry, err := s.load(ctx, id)
	unlock()
	if err != nil {
		return OutlineResult{}, err
	}

	tree := outline.BuildTree(entry.Snapshot.Chapters)
	expanded := make(map[string]bool, len(q.Expanded))
	if q.ExpandAll {
		expanded = outline.ExpandAll(tree)
	}
	for _, cid := range q.Expanded {
		expanded[cid] = true
	}

	var res OutlineResult
	if q.Selected != "" {
		if entry.Snapshot.ChapterIndex(q.Selected) < 0 {
			return OutlineResult{}, fmt.Errorf("%w: chapter %s", ErrNotFound, q.Selected)
		}
		res.Breadcrumb = outline.Breadcrumb(tree, q.Selected)
		// The selected chapter stays visible.
		for _, c := range res.Breadcrumb[:len(res.Breadcrumb)-1] {
			expanded[c.ID] = true
		}
	}
	res.Page = outline.Paginate(outline.Flatten(tree, expanded), q.Page, q.Size)
	return res, nil
}

// ChapterHTML returns a chapter's HTML. Chapters without stored HTML are
// rendered and the HTML is saved with the novel.
func (s *novelService) ChapterHTML(ctx context.Context, id, chapterID string) (RenderedChapter, error) {
	logger := contextutil.LoggerFromContext(ctx)
	unlock := s.lock(id)
	defer unlock()

	prev, err := s.load(ctx, id)
	if err != nil {
		return RenderedChapter{}, err
	}
	i := prev.Snapshot.ChapterIndex(chapterID)
	if i < 0 {
		return RenderedChapter{}, fmt.Errorf("%w: chapter %s", ErrNotFound, chapterID)
	}
	ch := prev.Snapshot.Chapters[i]
	rendered := RenderedChapter{ID: ch.ID, Title: ch.Title, Level: ch.EffectiveLevel()}
	if ch.HTMLContent != nil {
		rendered.HTML = *ch.HTMLContent
		return rendered, nil
	}

	if s.renderer == nil {
		return RenderedChapter{}, fmt.Errorf("no chapter renderer configured")
	}
	html, err := s.renderer.Chapter(ch.Content)
	if err != nil {
		logger.ErrorContext(ctx, "failed to render chapter", "novel_id", id, "chapter_id", chapterID, "error", err)
		return RenderedChapter{}, WrapError(err, "failed to render chapter")
	}
	rendered.HTML = html

	snap := prev.Snapshot.Clone()
	snap.Chapters[i].HTMLContent = &html
	next := cache.Entry{Title: prev.Title, Snapshot: snap}
	if _, err := s.commit(ctx, id, "render chapter", prev, next, Report{}); err != nil {
		return rendered, err
	}
	logger.InfoContext(ctx, "chapter rendered", "novel_id", id, "chapter_id", chapterID, "html_length", len(html))
	return rendered, nil
}
