package service

import (
	"context"

	"novel-annotator/internal/editor"
	"novel-annotator/internal/novel"
)

// UpdateText replaces the whole text of a novel.
func (s *novelService) UpdateText(ctx context.Context, id, text string, hint *editor.SelectionHint) (MutationResult, error) {
	return s.mutate(ctx, id, "update text", func(snap novel.Snapshot) (novel.Snapshot, Report, error) {
		res := s.editor.UpdateFullText(snap, text, hint)
		return res.Snapshot, Report{
			Relocated:         res.Relocated,
			Misaligned:        res.Misaligned,
			SelectedChapterID: res.SelectedChapterID,
		}, nil
	})
}

// ChangeChapterContent replaces one chapter's content.
func (s *novelService) ChangeChapterContent(ctx context.Context, id, chapterID, content string) (MutationResult, error) {
	return s.mutate(ctx, id, "change chapter content", func(snap novel.Snapshot) (novel.Snapshot, Report, error) {
		res, err := s.editor.ChangeChapterContent(snap, chapterID, content)
		if err != nil {
			return novel.Snapshot{}, Report{}, editorError(err, "chapterId")
		}
		return res.Snapshot, Report{Relocated: res.Relocated, Misaligned: res.Misaligned}, nil
	})
}

// DeleteChapter removes a chapter and its text.
func (s *novelService) DeleteChapter(ctx context.Context, id, chapterID string) (MutationResult, error) {
	return s.mutate(ctx, id, "delete chapter", func(snap novel.Snapshot) (novel.Snapshot, Report, error) {
		res, err := s.editor.DeleteChapter(snap, chapterID)
		if err != nil {
			return novel.Snapshot{}, Report{}, editorError(err, "chapterId")
		}
		return res.Snapshot, Report{
			RemovedCharacters: res.Removed,
			RemovedChapters:   1,
			Shifted:           res.Shifted,
			Misaligned:        res.Misaligned,
		}, nil
	})
}

// RenameChapter sets a chapter's title.
func (s *novelService) RenameChapter(ctx context.Context, id, chapterID, title string) (MutationResult, error) {
	return s.mutate(ctx, id, "rename chapter", func(snap novel.Snapshot) (novel.Snapshot, Report, error) {
		out, err := s.editor.RenameChapter(snap, chapterID, title)
		return out, Report{}, editorError(err, "title")
	})
}

// SetChapterLevel sets a chapter's heading level.
func (s *novelService) SetChapterLevel(ctx context.Context, id, chapterID string, level int) (MutationResult, error) {
	return s.mutate(ctx, id, "set chapter level", func(snap novel.Snapshot) (novel.Snapshot, Report, error) {
		out, err := s.editor.SetChapterLevel(snap, chapterID, level)
		return out, Report{}, editorError(err, "level")
	})
}

// CreateChapter inserts an empty chapter.
func (s *novelService) CreateChapter(ctx context.Context, id, afterChapterID string) (MutationResult, error) {
	return s.mutate(ctx, id, "create chapter", func(snap novel.Snapshot) (novel.Snapshot, Report, error) {
		out, ch, err := s.editor.CreateChapter(snap, afterChapterID)
		if err != nil {
			return novel.Snapshot{}, Report{}, editorError(err, "afterChapterId")
		}
		return out, Report{CreatedChapterID: ch.ID}, nil
	})
}

// MergeWithPrevious folds a chapter into the one before it.
func (s *novelService) MergeWithPrevious(ctx context.Context, id, chapterID string) (MutationResult, error) {
	return s.mutate(ctx, id, "merge with previous", func(snap novel.Snapshot) (novel.Snapshot, Report, error) {
		out, err := s.editor.MergeWithPrevious(snap, chapterID)
		if err != nil {
			return novel.Snapshot{}, Report{}, editorError(err, "chapterId")
		}
		return out, Report{RemovedChapters: len(snap.Chapters) - len(out.Chapters)}, nil
	})
}

// CanMergeRange reports whether the chapters can be merged.
func (s *novelService) CanMergeRange(ctx context.Context, id string, chapterIDs []string) (bool, error) {
	unlock := s.lock(id)
	defer unlock()

	entry, err := s.load(ctx, id)
	if err != nil {
		return false, err
	}
	return editor.CanMergeRange(entry.Snapshot.Chapters, chapterIDs), nil
}

// MergeRange merges a contiguous run of chapters.
func (s *novelService) MergeRange(ctx context.Context, id string, chapterIDs []string) (MutationResult, error) {
	return s.mutate(ctx, id, "merge range", func(snap novel.Snapshot) (novel.Snapshot, Report, error) {
		out, err := s.editor.MergeRange(snap, chapterIDs)
		if err != nil {
			return novel.Snapshot{}, Report{}, editorError(err, "chapterIds")
		}
		return out, Report{RemovedChapters: len(snap.Chapters) - len(out.Chapters)}, nil
	})
}

// Append adds text after the existing chapters.
func (s *novelService) Append(ctx context.Context, id, text string) (MutationResult, error) {
	return s.mutate(ctx, id, "append", func(snap novel.Snapshot) (novel.Snapshot, Report, error) {
		res, err := s.editor.Append(snap, text)
		if err != nil {
			return novel.Snapshot{}, Report{}, editorError(err, "text")
		}
		return res.Snapshot, Report{AddedChapters: len(res.Added)}, nil
	})
}

// Truncate keeps the first keep chapters.
func (s *novelService) Truncate(ctx context.Context, id string, keep int) (MutationResult, error) {
	return s.mutate(ctx, id, "truncate", func(snap novel.Snapshot) (novel.Snapshot, Report, error) {
		res, err := s.editor.TruncateAfter(snap, keep)
		if err != nil {
			return novel.Snapshot{}, Report{}, editorError(err, "keepChapterCount")
		}
		return res.Snapshot, Report{
			RemovedChapters:      res.RemovedChapters,
			RemovedCharacters:    novel.RuneLen(snap.Text) - novel.RuneLen(res.Snapshot.Text),
			DeletedAnnotations:   res.DeletedAnnotations,
			TruncatedAnnotations: res.TruncatedAnnotations,
			DroppedAnchors:       res.DroppedAnchors,
		}, nil
	})
}
