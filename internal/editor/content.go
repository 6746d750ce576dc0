package editor

import (
	"strings"

	"novel-annotator/internal/novel"
	"novel-annotator/internal/realign"
	"novel-annotator/internal/segmenter"
)

// SelectionHint identifies the chapter that was selected before a full-text edit.
type SelectionHint struct {
	OriginalTitle      string
	OriginalStartIndex int
}

// FullTextResult is the outcome of UpdateFullText.
type FullTextResult struct {
	Snapshot novel.Snapshot
	// SelectedChapterID is the re-selected chapter, or empty when none matched.
	SelectedChapterID string
	Relocated         int
	Misaligned        int
}

// UpdateFullText replaces the whole text, re-segments it and realigns every
// annotation against the old text.
func (e *Editor) UpdateFullText(snap novel.Snapshot, newText string, hint *SelectionHint) FullTextResult {
	text := segmenter.Normalize(newText)
	chapters := e.segmenter.Segment(text)
	if chapters == nil {
		chapters = []novel.Chapter{}
	}

	ra := e.realigner.Realign(snap.Annotations, text, realign.OldText(snap.Text))

	textLen := novel.RuneLen(text)
	var anchors []novel.PlotAnchor
	if snap.PlotAnchors != nil {
		anchors = make([]novel.PlotAnchor, len(snap.PlotAnchors))
		for i, a := range snap.PlotAnchors {
			a.Position = min(max(a.Position, 0), textLen)
			anchors[i] = a
		}
	}

	return FullTextResult{
		Snapshot: novel.Snapshot{
			Text:        text,
			Chapters:    chapters,
			Annotations: ra.Annotations,
			PlotAnchors: anchors,
		},
		SelectedChapterID: reselect(chapters, hint),
		Relocated:         ra.Relocated,
		Misaligned:        ra.Misaligned,
	}
}

// reselect prefers the chapter whose range contains the hinted offset, then a
// chapter with the hinted title.
func reselect(chapters []novel.Chapter, hint *SelectionHint) string {
	if hint == nil {
		return ""
	}
	off := hint.OriginalStartIndex
	for _, c := range chapters {
		if off >= c.OriginalStartIndex && (off < c.OriginalEndIndex || c.Len() == 0 && off == c.OriginalStartIndex) {
			return c.ID
		}
	}
	for _, c := range chapters {
		if c.Title == hint.OriginalTitle {
			return c.ID
		}
	}
	return ""
}

// ChangeResult is the outcome of ChangeChapterContent.
type ChangeResult struct {
	Snapshot novel.Snapshot
	// Delta is the change in the chapter's length.
	Delta      int
	Relocated  int
	Misaligned int
}

// ChangeChapterContent replaces one chapter's content. The chapter's end and
// every later chapter shift by the length difference; annotations are
// realigned with the shift as a hint.
func (e *Editor) ChangeChapterContent(snap novel.Snapshot, chapterID, content string) (ChangeResult, error) {
	const op = "change chapter content"
	i, err := findChapter(op, snap, chapterID)
	if err != nil {
		return ChangeResult{}, err
	}

	content = segmenter.Normalize(content)
	ch := snap.Chapters[i]
	delta := novel.RuneLen(content) - ch.Len()
	text := novel.Splice(snap.Text, ch.OriginalStartIndex, ch.OriginalEndIndex, content)

	chapters := novel.CloneChapters(snap.Chapters)
	chapters[i].Content = content
	chapters[i].HTMLContent = nil
	chapters[i].OriginalEndIndex += delta
	for j := i + 1; j < len(chapters); j++ {
		chapters[j].OriginalStartIndex += delta
		chapters[j].OriginalEndIndex += delta
	}

	ra := e.realigner.Realign(snap.Annotations, text,
		realign.EndAnchoredWindow(),
		realign.Shift(ch.OriginalStartIndex, ch.OriginalEndIndex, delta),
	)

	return ChangeResult{
		Snapshot: novel.Snapshot{
			Text:        text,
			Chapters:    chapters,
			Annotations: ra.Annotations,
			PlotAnchors: shiftAnchors(snap.PlotAnchors, ch.OriginalStartIndex, ch.OriginalEndIndex, delta),
		},
		Delta:      delta,
		Relocated:  ra.Relocated,
		Misaligned: ra.Misaligned,
	}, nil
}

// AppendResult is the outcome of Append.
type AppendResult struct {
	Snapshot novel.Snapshot
	Added    []novel.Chapter
}

// Append segments appendText on its own and adds the resulting chapters after
// the existing ones, offset by the current text length. Existing chapters and
// annotations are untouched.
func (e *Editor) Append(snap novel.Snapshot, appendText string) (AppendResult, error) {
	appendText = segmenter.Normalize(appendText)
	if strings.TrimSpace(appendText) == "" {
		return AppendResult{}, &OpError{Op: "append", Err: ErrEmptyText}
	}

	base := novel.RuneLen(snap.Text)
	added := e.segmenter.Segment(appendText)
	for i := range added {
		added[i].OriginalStartIndex += base
		added[i].OriginalEndIndex += base
	}

	out := snap.Clone()
	out.Text = snap.Text + appendText
	out.Chapters = append(out.Chapters, added...)
	return AppendResult{Snapshot: out, Added: novel.CloneChapters(added)}, nil
}

// TruncateResult is the outcome of TruncateAfter.
type TruncateResult struct {
	Snapshot             novel.Snapshot
	RemovedChapters      int
	DeletedAnnotations   int
	TruncatedAnnotations int
	DroppedAnchors       int
}

// TruncateAfter keeps the first keep chapters and cuts the text at the end of
// the last kept one. Annotations starting at or past the cut are deleted;
// annotations crossing it are clipped and their text re-sliced.
func (e *Editor) TruncateAfter(snap novel.Snapshot, keep int) (TruncateResult, error) {
	const op = "truncate"
	if keep < 1 || keep >= len(snap.Chapters) {
		return TruncateResult{}, opErr(op, ErrOutOfRange, "keep %d of %d chapters", keep, len(snap.Chapters))
	}

	cut := snap.Chapters[keep-1].OriginalEndIndex
	text := novel.NewText(snap.Text)
	res := TruncateResult{RemovedChapters: len(snap.Chapters) - keep}

	annotations := make([]novel.Annotation, 0, len(snap.Annotations))
	for _, a := range novel.CloneAnnotations(snap.Annotations) {
		switch {
		case a.StartIndex >= cut:
			res.DeletedAnnotations++
			continue
		case a.EndIndex > cut:
			a.EndIndex = cut
			a.Text = text.Slice(a.StartIndex, cut)
			res.TruncatedAnnotations++
		}
		annotations = append(annotations, a)
	}

	var anchors []novel.PlotAnchor
	for _, a := range snap.PlotAnchors {
		if a.Position >= cut {
			res.DroppedAnchors++
			continue
		}
		anchors = append(anchors, a)
	}

	res.Snapshot = novel.Snapshot{
		Text:        text.Slice(0, cut),
		Chapters:    novel.CloneChapters(snap.Chapters[:keep]),
		Annotations: annotations,
		PlotAnchors: anchors,
	}
	return res, nil
}
