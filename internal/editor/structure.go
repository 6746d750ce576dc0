package editor

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"novel-annotator/internal/novel"
)

// DeleteResult is the outcome of DeleteChapter.
type DeleteResult struct {
	Snapshot novel.Snapshot
	// Removed is the number of characters cut from the text.
	Removed    int
	Shifted    int
	Misaligned int
}

// DeleteChapter removes a chapter and its content span from the text. Later
// chapters and annotations shift back by the removed length. Annotations that
// lay inside or across the removed span keep their offsets and are flagged.
// Deleting an empty chapter leaves the text and annotations untouched.
func (e *Editor) DeleteChapter(snap novel.Snapshot, chapterID string) (DeleteResult, error) {
	const op = "delete chapter"
	i, err := findChapter(op, snap, chapterID)
	if err != nil {
		return DeleteResult{}, err
	}

	ch := snap.Chapters[i]
	start, end := ch.OriginalStartIndex, ch.OriginalEndIndex
	n := ch.Len()
	res := DeleteResult{Removed: n}

	chapters := make([]novel.Chapter, 0, len(snap.Chapters)-1)
	chapters = append(chapters, novel.CloneChapters(snap.Chapters[:i])...)
	for _, c := range novel.CloneChapters(snap.Chapters[i+1:]) {
		c.OriginalStartIndex -= n
		c.OriginalEndIndex -= n
		chapters = append(chapters, c)
	}

	annotations := novel.CloneAnnotations(snap.Annotations)
	for j := range annotations {
		a := &annotations[j]
		switch {
		case n == 0, a.EndIndex <= start:
		case a.StartIndex >= end:
			a.StartIndex -= n
			a.EndIndex -= n
			res.Shifted++
		default:
			a.IsPotentiallyMisaligned = true
			res.Misaligned++
		}
	}

	res.Snapshot = novel.Snapshot{
		Text:        novel.Splice(snap.Text, start, end, ""),
		Chapters:    chapters,
		Annotations: annotations,
		PlotAnchors: shiftAnchors(snap.PlotAnchors, start, end, -n),
	}
	return res, nil
}

// RenameChapter sets a chapter's title. Text and offsets are unchanged.
func (e *Editor) RenameChapter(snap novel.Snapshot, chapterID, title string) (novel.Snapshot, error) {
	const op = "rename chapter"
	i, err := findChapter(op, snap, chapterID)
	if err != nil {
		return novel.Snapshot{}, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return novel.Snapshot{}, opErr(op, ErrOutOfRange, "empty title")
	}

	out := snap.Clone()
	out.Chapters[i].Title = title
	return out, nil
}

// SetChapterLevel sets a chapter's heading level, 1 (outermost) to 5.
func (e *Editor) SetChapterLevel(snap novel.Snapshot, chapterID string, level int) (novel.Snapshot, error) {
	const op = "set chapter level"
	if level < novel.MinLevel || level > novel.MaxLevel {
		return novel.Snapshot{}, opErr(op, ErrInvalidLevel, "level %d", level)
	}
	i, err := findChapter(op, snap, chapterID)
	if err != nil {
		return novel.Snapshot{}, err
	}

	out := snap.Clone()
	out.Chapters[i].Level = level
	return out, nil
}

// CreateChapter inserts an empty leaf chapter right after the chapter afterID,
// or at the end of the novel when afterID is empty. The text is unchanged.
func (e *Editor) CreateChapter(snap novel.Snapshot, afterID string) (novel.Snapshot, novel.Chapter, error) {
	const op = "create chapter"
	pos := len(snap.Chapters)
	offset := novel.RuneLen(snap.Text)
	if afterID != "" {
		i, err := findChapter(op, snap, afterID)
		if err != nil {
			return novel.Snapshot{}, novel.Chapter{}, err
		}
		pos = i + 1
		offset = snap.Chapters[i].OriginalEndIndex
	}

	ch := novel.Chapter{
		ID:                 e.newID(),
		Title:              fmt.Sprintf("章节 %d", len(snap.Chapters)+1),
		Content:            "",
		OriginalStartIndex: offset,
		OriginalEndIndex:   offset,
		Level:              novel.DefaultLevel,
	}

	out := snap.Clone()
	out.Chapters = slices.Insert(out.Chapters, pos, ch)
	return out, ch, nil
}

// MergeWithPrevious folds a chapter into the one before it. The merged chapter
// keeps the previous chapter's ID, title and level and spans both ranges.
func (e *Editor) MergeWithPrevious(snap novel.Snapshot, chapterID string) (novel.Snapshot, error) {
	const op = "merge with previous"
	i, err := findChapter(op, snap, chapterID)
	if err != nil {
		return novel.Snapshot{}, err
	}
	if i == 0 {
		return novel.Snapshot{}, opErr(op, ErrNothingToMerge, "chapter %q is the first chapter", chapterID)
	}
	return mergeSpan(snap, i-1, i), nil
}

// CanMergeRange reports whether the chapters with the given IDs exist, number
// at least two and sit next to each other in reading order.
func CanMergeRange(chapters []novel.Chapter, ids []string) bool {
	idx, err := indicesOf(chapters, ids)
	if err != nil || len(idx) < 2 {
		return false
	}
	return contiguous(idx)
}

// MergeRange merges a contiguous run of chapters into the first of them.
func (e *Editor) MergeRange(snap novel.Snapshot, ids []string) (novel.Snapshot, error) {
	const op = "merge range"
	idx, err := indicesOf(snap.Chapters, ids)
	if err != nil {
		return novel.Snapshot{}, &OpError{Op: op, Err: err}
	}
	if len(idx) < 2 {
		return novel.Snapshot{}, opErr(op, ErrNothingToMerge, "%d chapter(s) selected", len(idx))
	}
	if !contiguous(idx) {
		return novel.Snapshot{}, opErr(op, ErrNotContiguous, "positions %v", idx)
	}
	return mergeSpan(snap, idx[0], idx[len(idx)-1]), nil
}

// mergeSpan replaces chapters first..last with one chapter. The content is
// re-sliced from the text so any heading lines between the chapters are kept.
func mergeSpan(snap novel.Snapshot, first, last int) novel.Snapshot {
	out := snap.Clone()
	merged := out.Chapters[first]
	merged.OriginalEndIndex = out.Chapters[last].OriginalEndIndex
	merged.Content = novel.Slice(snap.Text, merged.OriginalStartIndex, merged.OriginalEndIndex)
	merged.HTMLContent = nil

	chapters := make([]novel.Chapter, 0, len(out.Chapters)-(last-first))
	chapters = append(chapters, out.Chapters[:first]...)
	chapters = append(chapters, merged)
	chapters = append(chapters, out.Chapters[last+1:]...)
	out.Chapters = chapters
	return out
}

// indicesOf returns the sorted, de-duplicated positions of ids.
func indicesOf(chapters []novel.Chapter, ids []string) ([]int, error) {
	pos := make(map[string]int, len(chapters))
	for i, c := range chapters {
		pos[c.ID] = i
	}
	seen := make(map[int]bool, len(ids))
	idx := make([]int, 0, len(ids))
	for _, id := range ids {
		i, ok := pos[id]
		if !ok {
			return nil, fmt.Errorf("chapter %q: %w", id, ErrChapterNotFound)
		}
		if seen[i] {
			continue
		}
		seen[i] = true
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx, nil
}

func contiguous(idx []int) bool {
	for i := 1; i < len(idx); i++ {
		if idx[i] != idx[i-1]+1 {
			return false
		}
	}
	return true
}
