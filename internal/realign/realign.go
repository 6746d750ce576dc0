package realign

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"

	"novel-annotator/internal/novel"
)

// DefaultWindow is how many characters on each side of an annotation's old
// position are searched before falling back to a whole-text search.
const DefaultWindow = 200

// Option configures a Realigner.
type Option func(*Realigner)

// WithWindow sets the local search radius. Non-positive values keep the default.
func WithWindow(n int) Option {
	return func(r *Realigner) {
		if n > 0 {
			r.window = n
		}
	}
}

// Realigner relocates annotations in changed text by searching for their literal text.
type Realigner struct {
	window int
	dmp    *diffmatchpatch.DiffMatchPatch
}

// New creates a Realigner.
func New(opts ...Option) *Realigner {
	r := &Realigner{
		window: DefaultWindow,
		dmp:    diffmatchpatch.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Window returns the local search radius.
func (r *Realigner) Window() int {
	return r.window
}

// Hint tells the realigner what kind of edit produced the new text.
type Hint func(*plan)

type shift struct {
	editStart, editEnd, delta int
}

type plan struct {
	endAnchored bool
	shift       *shift
	oldText     *string
}

// EndAnchoredWindow bounds the local window by the annotation's end offset
// instead of its start plus text length. Chapter-local edits use it.
func EndAnchoredWindow() Hint {
	return func(p *plan) {
		p.endAnchored = true
	}
}

// Shift declares that text before editStart did not move and text at or after
// editEnd (old offsets) moved by delta. Annotations fully outside the edit are
// probed at their expected position first.
func Shift(editStart, editEnd, delta int) Hint {
	return func(p *plan) {
		p.shift = &shift{editStart: editStart, editEnd: editEnd, delta: delta}
	}
}

// OldText supplies the text the annotations were aligned to. Each annotation's
// old offset is mapped through a character diff; the mapped position is probed
// first and searched around before the global fallback.
func OldText(old string) Hint {
	return func(p *plan) {
		p.oldText = &old
	}
}

// Result is the outcome of a realignment pass.
type Result struct {
	Annotations []novel.Annotation
	// Relocated counts annotations whose offsets changed.
	Relocated int
	// Unchanged counts annotations found at their old offsets.
	Unchanged int
	// Misaligned counts annotations whose text could not be found.
	Misaligned int
}

// Realign recomputes every annotation's offsets against newText. Annotations
// whose text cannot be found keep their old offsets and are flagged as
// potentially misaligned; none are dropped. The input slice is not modified.
func (r *Realigner) Realign(annotations []novel.Annotation, newText string, hints ...Hint) Result {
	var p plan
	for _, h := range hints {
		h(&p)
	}

	text := novel.NewText(newText)
	res := Result{Annotations: novel.CloneAnnotations(annotations)}
	var mapper *offsetMapper
	if p.oldText != nil && len(annotations) > 0 {
		mapper = newOffsetMapper(r.dmp, *p.oldText, newText)
	}

	for i := range res.Annotations {
		a := &res.Annotations[i]
		pos, ok := r.locate(a, text, &p, mapper)
		if !ok {
			a.IsPotentiallyMisaligned = true
			res.Misaligned++
			continue
		}
		if pos == a.StartIndex {
			res.Unchanged++
		} else {
			res.Relocated++
		}
		a.StartIndex = pos
		a.EndIndex = pos + novel.RuneLen(a.Text)
		a.IsPotentiallyMisaligned = false
	}
	return res
}

// locate tries, in order: the exact position predicted by a shift hint or the
// diff, the local window around the old offsets, the window around the
// diff-mapped offset, and finally the whole text.
func (r *Realigner) locate(a *novel.Annotation, text novel.Text, p *plan, mapper *offsetMapper) (int, bool) {
	textLen := novel.RuneLen(a.Text)
	if textLen == 0 {
		return clamp(a.StartIndex, 0, text.Len()), true
	}

	if p.shift != nil {
		if exp, ok := p.shift.expected(a); ok && text.HasAt(a.Text, exp) {
			return exp, true
		}
	}
	mapped := -1
	if mapper != nil {
		mapped = mapper.mapOffset(a.StartIndex)
		if text.HasAt(a.Text, mapped) {
			return mapped, true
		}
	}

	if pos := r.searchWindow(text, a.Text, a.StartIndex, a.EndIndex, textLen, p.endAnchored); pos >= 0 {
		return pos, true
	}
	if mapped >= 0 {
		if pos := r.searchWindow(text, a.Text, mapped, mapped+textLen, textLen, false); pos >= 0 {
			return pos, true
		}
	}

	if pos := text.Find(a.Text, 0, -1); pos >= 0 {
		return pos, true
	}
	return 0, false
}

// searchWindow looks for needle in [start-W, start+len+W], or [start-W, end+W]
// when endAnchored is set.
func (r *Realigner) searchWindow(text novel.Text, needle string, start, end, needleLen int, endAnchored bool) int {
	lo := max(0, start-r.window)
	right := start + needleLen
	if endAnchored {
		right = end
	}
	hi := min(text.Len(), right+r.window)
	if hi <= lo {
		return -1
	}
	return text.Find(needle, lo, hi)
}

func (s *shift) expected(a *novel.Annotation) (int, bool) {
	switch {
	case a.EndIndex <= s.editStart:
		return a.StartIndex, true
	case a.StartIndex >= s.editEnd:
		return a.StartIndex + s.delta, true
	default:
		return 0, false
	}
}

// offsetMapper maps character offsets in an old text to the new text through a diff.
type offsetMapper struct {
	diffs []diffmatchpatch.Diff
}

func newOffsetMapper(dmp *diffmatchpatch.DiffMatchPatch, oldText, newText string) *offsetMapper {
	return &offsetMapper{diffs: dmp.DiffMain(oldText, newText, false)}
}

// mapOffset returns the new-text offset corresponding to loc in the old text.
// A location inside a deletion maps to the start of the deletion.
func (m *offsetMapper) mapOffset(loc int) int {
	oldPos, newPos := 0, 0
	lastOld, lastNew := 0, 0
	for _, d := range m.diffs {
		n := utf8.RuneCountInString(d.Text)
		if d.Type != diffmatchpatch.DiffInsert {
			oldPos += n
		}
		if d.Type != diffmatchpatch.DiffDelete {
			newPos += n
		}
		if oldPos > loc {
			if d.Type == diffmatchpatch.DiffDelete {
				return lastNew
			}
			break
		}
		lastOld, lastNew = oldPos, newPos
	}
	return lastNew + (loc - lastOld)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
