package novel

import (
	"strings"
	"unicode/utf8"
)

// RuneLen returns the length of s in characters.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// Slice returns the characters of s in [start, end). Bounds are clamped to s.
func Slice(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end <= start {
		return ""
	}
	bs := byteOffset(s, start)
	be := bs + byteOffset(s[bs:], end-start)
	return s[bs:be]
}

// Splice replaces the characters of s in [start, end) with repl.
func Splice(s string, start, end int, repl string) string {
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	bs := byteOffset(s, start)
	be := bs + byteOffset(s[bs:], end-start)
	var b strings.Builder
	b.Grow(len(s) - (be - bs) + len(repl))
	b.WriteString(s[:bs])
	b.WriteString(repl)
	b.WriteString(s[be:])
	return b.String()
}

// Find returns the character offset of the first occurrence of sub lying
// entirely within [lo, hi) of s, or -1. A negative hi means end of text.
func Find(s, sub string, lo, hi int) int {
	if lo < 0 {
		lo = 0
	}
	blo := byteOffset(s, lo)
	bhi := len(s)
	if hi >= 0 {
		if hi < lo {
			return -1
		}
		bhi = blo + byteOffset(s[blo:], hi-lo)
	}
	i := strings.Index(s[blo:bhi], sub)
	if i < 0 {
		return -1
	}
	return lo + utf8.RuneCountInString(s[blo:blo+i])
}

// byteOffset returns the byte offset of the n-th character of s, or len(s).
func byteOffset(s string, n int) int {
	if n <= 0 {
		return 0
	}
	i := 0
	for pos := range s {
		if i == n {
			return pos
		}
		i++
	}
	return len(s)
}

// Text is a string with constant-time character addressing. Build one per
// operation when many offsets are resolved against the same text.
type Text struct {
	s string
	r []rune
}

// NewText indexes s by character.
func NewText(s string) Text {
	return Text{s: s, r: []rune(s)}
}

// String returns the underlying string.
func (t Text) String() string {
	return t.s
}

// Len returns the length in characters.
func (t Text) Len() int {
	return len(t.r)
}

// Slice returns the characters in [start, end), clamped to the text.
func (t Text) Slice(start, end int) string {
	start, end = t.clamp(start), t.clamp(end)
	if end <= start {
		return ""
	}
	return string(t.r[start:end])
}

// HasAt reports whether sub occurs exactly at character offset pos.
func (t Text) HasAt(sub string, pos int) bool {
	if pos < 0 {
		return false
	}
	n := RuneLen(sub)
	if pos+n > len(t.r) {
		return false
	}
	return string(t.r[pos:pos+n]) == sub
}

// Find returns the character offset of the first occurrence of sub lying
// entirely within [lo, hi), or -1. A negative hi means end of text.
func (t Text) Find(sub string, lo, hi int) int {
	lo = t.clamp(lo)
	if hi < 0 && lo == 0 {
		i := strings.Index(t.s, sub)
		if i < 0 {
			return -1
		}
		return utf8.RuneCountInString(t.s[:i])
	}
	if hi < 0 {
		hi = len(t.r)
	}
	hi = t.clamp(hi)
	if hi < lo {
		return -1
	}
	window := string(t.r[lo:hi])
	i := strings.Index(window, sub)
	if i < 0 {
		return -1
	}
	return lo + utf8.RuneCountInString(window[:i])
}

func (t Text) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i > len(t.r) {
		return len(t.r)
	}
	return i
}
