package segmenter

import (
	"fmt"
	"strings"
	"testing"

	"novel-annotator/internal/novel"
)

func sequentialIDs() Option {
	n := 0
	return WithIDFunc(func() string {
		n++
		return fmt.Sprintf("ch-%d", n)
	})
}

func titles(chapters []novel.Chapter) []string {
	out := make([]string, len(chapters))
	for i, c := range chapters {
		out[i] = c.Title
	}
	return out
}

// checkReconstruction verifies that every chapter's content is exactly the slice
// of the normalized text its offsets point at, and that chapters are ordered.
func checkReconstruction(t *testing.T, text string, chapters []novel.Chapter) {
	t.Helper()
	text = Normalize(text)
	prevEnd := 0
	for i, c := range chapters {
		if got := novel.Slice(text, c.OriginalStartIndex, c.OriginalEndIndex); got != c.Content {
			t.Errorf("chapter %d (%q) content = %q, text slice = %q", i, c.Title, c.Content, got)
		}
		if c.OriginalStartIndex > c.OriginalEndIndex {
			t.Errorf("chapter %d has inverted span [%d,%d)", i, c.OriginalStartIndex, c.OriginalEndIndex)
		}
		if c.OriginalStartIndex < prevEnd {
			t.Errorf("chapter %d starts at %d, before previous end %d", i, c.OriginalStartIndex, prevEnd)
		}
		prevEnd = c.OriginalEndIndex
	}
}

func TestSegment(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantTitles []string
		check      func(*testing.T, []novel.Chapter)
	}{
		{
			name:       "two chinese chapters without preface",
			text:       "第一章 开端\n正文一\n第二章 发展\n正文二",
			wantTitles: []string{"第一章 开端", "第二章 发展"},
			check: func(t *testing.T, chapters []novel.Chapter) {
				if chapters[0].Content != "正文一\n" {
					t.Errorf("chapter 1 content = %q, want %q", chapters[0].Content, "正文一\n")
				}
				if chapters[1].Content != "正文二" {
					t.Errorf("chapter 2 content = %q, want %q", chapters[1].Content, "正文二")
				}
				if chapters[0].OriginalStartIndex != 7 || chapters[0].OriginalEndIndex != 11 {
					t.Errorf("chapter 1 span = [%d,%d), want [7,11)", chapters[0].OriginalStartIndex, chapters[0].OriginalEndIndex)
				}
			},
		},
		{
			name:       "no markers yields whole text",
			text:       "只是一段随便的文字。",
			wantTitles: []string{TitleWhole},
			check: func(t *testing.T, chapters []novel.Chapter) {
				c := chapters[0]
				if c.OriginalStartIndex != 0 || c.OriginalEndIndex != 10 {
					t.Errorf("span = [%d,%d), want [0,10)", c.OriginalStartIndex, c.OriginalEndIndex)
				}
			},
		},
		{
			name:       "text before first heading becomes preface",
			text:       "作者的话。\n第一章 启程\n出发了。",
			wantTitles: []string{TitlePreface, "第一章 启程"},
			check: func(t *testing.T, chapters []novel.Chapter) {
				if chapters[0].Content != "作者的话。\n" {
					t.Errorf("preface content = %q", chapters[0].Content)
				}
			},
		},
		{
			name:       "blank text before first heading is not a preface",
			text:       "\n\n  \n第一章 启程\n出发了。",
			wantTitles: []string{"第一章 启程"},
		},
		{
			name:       "preface merges into following front matter heading",
			text:       "某某著\n简介\n这是一个故事。\n第一章 开始\n正文",
			wantTitles: []string{"简介", "第一章 开始"},
			check: func(t *testing.T, chapters []novel.Chapter) {
				c := chapters[0]
				if c.OriginalStartIndex != 0 {
					t.Errorf("merged start = %d, want 0", c.OriginalStartIndex)
				}
				if !strings.HasPrefix(c.Content, "某某著\n简介\n") {
					t.Errorf("merged content = %q, want re-sliced from text start", c.Content)
				}
			},
		},
		{
			name:       "structural markers",
			text:       "楔子\n很久以前。\n第一章 正文\n故事。\n尾声\n结束。\n后记\n感谢。",
			wantTitles: []string{"楔子", "第一章 正文", "尾声", "后记"},
		},
		{
			name:       "english chapters are case-insensitive",
			text:       "CHAPTER 1 Dawn\nIt began.\nchapter 2: Dusk\nIt ended.",
			wantTitles: []string{"CHAPTER 1 Dawn", "chapter 2: Dusk"},
		},
		{
			name:       "volume heading with empty body is kept",
			text:       "第一卷 风起\n第一章 开端\n正文",
			wantTitles: []string{"第一卷 风起", "第一章 开端"},
			check: func(t *testing.T, chapters []novel.Chapter) {
				if chapters[0].Len() != 0 {
					t.Errorf("volume span length = %d, want 0", chapters[0].Len())
				}
			},
		},
		{
			name:       "arabic and full-width digits",
			text:       "第1章 一\n甲\n第２回 二\n乙\n第十二节 三\n丙",
			wantTitles: []string{"第1章 一", "第２回 二", "第十二节 三"},
		},
		{
			name:       "indented heading and paragraph indentation kept",
			text:       "　　第一章 开端\n\n　　正文开始。",
			wantTitles: []string{"第一章 开端"},
			check: func(t *testing.T, chapters []novel.Chapter) {
				if chapters[0].Content != "　　正文开始。" {
					t.Errorf("content = %q, want indentation preserved", chapters[0].Content)
				}
			},
		},
		{
			name:       "crlf is normalized",
			text:       "第一章 开端\r\n正文一\r\n第二章 发展\r\n正文二",
			wantTitles: []string{"第一章 开端", "第二章 发展"},
			check: func(t *testing.T, chapters []novel.Chapter) {
				if strings.Contains(chapters[0].Content, "\r") {
					t.Errorf("content still has CR: %q", chapters[0].Content)
				}
			},
		},
		{
			name:       "markers after leading text on the line",
			text:       "卷一 第一章 开端\n正文一\n卷一 第二章 发展\n正文二",
			wantTitles: []string{"卷一 第一章 开端", "卷一 第二章 发展"},
			check: func(t *testing.T, chapters []novel.Chapter) {
				if chapters[0].Content != "正文一\n" || chapters[0].OriginalStartIndex != 10 {
					t.Errorf("chapter 1 = %q at %d, want %q at 10", chapters[0].Content, chapters[0].OriginalStartIndex, "正文一\n")
				}
			},
		},
		{
			name:       "bracketed heading",
			text:       "【第一章】开端\n甲\n【番外】后日谈\n乙",
			wantTitles: []string{"【第一章】开端", "【番外】后日谈"},
		},
		{
			name:       "line matching two patterns yields one chapter",
			text:       "楔子 第一章 起\n甲",
			wantTitles: []string{"楔子 第一章 起"},
		},
		{
			name:       "english roman numerals",
			text:       "Chapter IV: Storm\nRain.\nchapter xii\nSun.",
			wantTitles: []string{"Chapter IV: Storm", "chapter xii"},
		},
		{
			name:       "english word after chapter is not a heading",
			text:       "Chapter Dawn\nNothing.",
			wantTitles: []string{TitleWhole},
		},
		{
			name:       "duplicate titles are legal",
			text:       "番外\n一\n番外\n二",
			wantTitles: []string{"番外", "番外"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chapters := New(sequentialIDs()).Segment(tt.text)

			got := titles(chapters)
			if strings.Join(got, "|") != strings.Join(tt.wantTitles, "|") {
				t.Fatalf("Segment() titles = %q, want %q", got, tt.wantTitles)
			}
			checkReconstruction(t, tt.text, chapters)
			for _, c := range chapters {
				if c.Level != novel.DefaultLevel {
					t.Errorf("chapter %q level = %d, want %d", c.Title, c.Level, novel.DefaultLevel)
				}
				if c.ID == "" {
					t.Errorf("chapter %q has no ID", c.Title)
				}
			}
			if tt.check != nil {
				tt.check(t, chapters)
			}
		})
	}
}

func TestSegment_Empty(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\r\n\t"} {
		if got := Segment(text); len(got) != 0 {
			t.Errorf("Segment(%q) = %d chapters, want 0", text, len(got))
		}
	}
}

func TestSegment_DefaultIDsAreUnique(t *testing.T) {
	chapters := Segment("第一章 a\nx\n第二章 b\ny\n第三章 c\nz")
	seen := map[string]bool{}
	for _, c := range chapters {
		if seen[c.ID] {
			t.Fatalf("duplicate chapter ID %q", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestSegment_RoundTripIsStable(t *testing.T) {
	texts := []string{
		"第一章 开端\n正文一\n第二章 发展\n正文二",
		"作者的话。\n第一章 启程\n出发了。\n第二章 归来\n回来了。",
		"只是一段随便的文字。",
		"楔子\n很久以前。\n第一卷 风起\n第一章 开端\n正文\n尾声\n结束。",
	}

	for _, text := range texts {
		first := Segment(text)

		var b strings.Builder
		for _, c := range first {
			b.WriteString(c.Title)
			b.WriteString("\n")
			b.WriteString(c.Content)
			if !strings.HasSuffix(c.Content, "\n") {
				b.WriteString("\n")
			}
		}
		second := Segment(b.String())

		if strings.Join(titles(first), "|") != strings.Join(titles(second), "|") {
			t.Errorf("round trip of %q changed titles: %q -> %q", text, titles(first), titles(second))
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("a\r\nb\rc\n"); got != "a\nb\nc\n" {
		t.Errorf("Normalize() = %q", got)
	}
}
