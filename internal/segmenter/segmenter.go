package segmenter

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"novel-annotator/internal/novel"
)

// Fallback titles for chapters that have no heading line of their own.
const (
	TitleWhole    = "内容"
	TitlePreface  = "前言/序"
	TitleTrailing = "后续内容"
)

// headingPatterns are applied in priority order. Each matches a whole heading line.
// The Chinese markers may appear anywhere on the line, so "卷一 第一章 开端" and
// "【第一章】" are headings; English headings must start the line, optionally
// indented with ASCII or ideographic spaces.
var headingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^[^\n]*第[零〇一二三四五六七八九十百千万两0-9０-９]+[章节回卷部][^\n]*`),
	regexp.MustCompile(`(?m)^[^\n]*(?:楔子|序章|序幕|引子|前言|尾声|终章|后记|番外|简介)[^\n]*`),
	regexp.MustCompile(`(?mi)^[ \t\x{3000}]*chapter[ \t]*(?:\d+|[ivxlcdm]+\b)[^\n]*`),
}

// frontMatterTitle matches headings that double-fire with the synthesized preface.
var frontMatterTitle = regexp.MustCompile(`(?i)^(?:简介|序章|楔子|序幕|引子)`)

// Option configures a Segmenter.
type Option func(*Segmenter)

// WithIDFunc sets the generator used for new chapter IDs.
func WithIDFunc(fn func() string) Option {
	return func(s *Segmenter) {
		s.newID = fn
	}
}

// Segmenter splits novel text into chapters using heading heuristics.
type Segmenter struct {
	newID func() string
}

// New creates a Segmenter. Chapter IDs default to random UUIDs.
func New(opts ...Option) *Segmenter {
	s := &Segmenter{newID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Segment splits text with a default Segmenter.
func Segment(text string) []novel.Chapter {
	return New().Segment(text)
}

// Normalize converts CRLF and lone CR line endings to LF.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// heading is a matched heading line, in byte offsets.
type heading struct {
	start, end int
}

// span is a chapter candidate in byte offsets. start/end bound the content.
type span struct {
	title      string
	start, end int
	synthetic  bool
}

// Segment normalizes text and splits it into chapters. Offsets in the result
// are character offsets into Normalize(text). Empty or blank input yields nil.
func (s *Segmenter) Segment(text string) []novel.Chapter {
	text = Normalize(text)
	if strings.TrimSpace(text) == "" {
		return nil
	}

	headings := findHeadings(text)
	if len(headings) == 0 {
		return s.toChapters(text, []span{{title: TitleWhole, start: 0, end: len(text), synthetic: true}})
	}

	var spans []span
	if first := headings[0].start; first > 0 && strings.TrimSpace(text[:first]) != "" {
		spans = append(spans, span{title: TitlePreface, start: 0, end: first, synthetic: true})
	}

	lastEnd := 0
	for i, h := range headings {
		end := len(text)
		if i+1 < len(headings) {
			end = headings[i+1].start
		}
		start := contentStart(text, h.end, end)
		title := strings.TrimSpace(text[h.start:h.end])
		if title != "" || strings.TrimSpace(text[start:end]) != "" || end > start {
			spans = append(spans, span{title: title, start: start, end: end})
		}
		lastEnd = end
	}

	if lastEnd < len(text) && strings.TrimSpace(text[lastEnd:]) != "" {
		spans = append(spans, span{title: TitleTrailing, start: lastEnd, end: len(text), synthetic: true})
	}

	spans = mergeFrontMatter(spans)
	return s.toChapters(text, spans)
}

// findHeadings pools the matches of every pattern, sorted by offset. When
// several patterns hit the same line only the highest-priority match is kept.
func findHeadings(text string) []heading {
	var all []heading
	for _, re := range headingPatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			all = append(all, heading{start: loc[0], end: loc[1]})
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].start < all[j].start
	})

	out := all[:0]
	for _, h := range all {
		if len(out) > 0 && out[len(out)-1].start == h.start {
			continue
		}
		out = append(out, h)
	}
	return out
}

// contentStart skips the newline ending a heading line and any blank lines
// after it, but keeps the indentation of the first content line. The result
// never passes limit.
func contentStart(text string, lineEnd, limit int) int {
	pos := lineEnd
	keep := lineEnd
	for pos < limit {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if !unicode.IsSpace(r) {
			break
		}
		pos += size
		if r == '\n' {
			keep = pos
		}
	}
	if pos >= limit {
		return limit
	}
	return keep
}

// mergeFrontMatter folds a synthesized preface into an immediately following
// front-matter heading such as 楔子 or 简介.
func mergeFrontMatter(spans []span) []span {
	if len(spans) < 2 {
		return spans
	}
	first, second := spans[0], spans[1]
	if !first.synthetic || first.title != TitlePreface || !frontMatterTitle.MatchString(second.title) {
		return spans
	}
	merged := span{title: second.title, start: first.start, end: second.end}
	return append([]span{merged}, spans[2:]...)
}

func (s *Segmenter) toChapters(text string, spans []span) []novel.Chapter {
	rc := runeCounter{s: text}
	chapters := make([]novel.Chapter, 0, len(spans))
	for _, sp := range spans {
		chapters = append(chapters, novel.Chapter{
			ID:                 s.newID(),
			Title:              sp.title,
			Content:            text[sp.start:sp.end],
			OriginalStartIndex: rc.at(sp.start),
			OriginalEndIndex:   rc.at(sp.end),
			Level:              novel.DefaultLevel,
		})
	}
	return chapters
}

// runeCounter converts ascending byte offsets to character offsets incrementally.
type runeCounter struct {
	s    string
	b, r int
}

func (c *runeCounter) at(b int) int {
	if b < c.b {
		c.b, c.r = 0, 0
	}
	c.r += utf8.RuneCountInString(c.s[c.b:b])
	c.b = b
	return c.r
}
