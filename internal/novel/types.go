package novel

const (
	// DefaultLevel is the heading level of a chapter that was never given one (a leaf).
	DefaultLevel = 5
	// MinLevel is the outermost heading level (H1).
	MinLevel = 1
	// MaxLevel is the innermost heading level (H5).
	MaxLevel = 5
)

// Chapter is a contiguous span of the novel text with a derived title.
// Offsets are character (rune) offsets into Snapshot.Text and form the half-open
// range [OriginalStartIndex, OriginalEndIndex). The heading line is not part of it.
type Chapter struct {
	ID                 string  `json:"id"`
	Title              string  `json:"title"`
	Content            string  `json:"content"`
	HTMLContent        *string `json:"htmlContent,omitempty"`
	OriginalStartIndex int     `json:"originalStartIndex"`
	OriginalEndIndex   int     `json:"originalEndIndex"`
	Level              int     `json:"level"`
}

// Len returns the number of characters the chapter spans.
func (c Chapter) Len() int {
	return c.OriginalEndIndex - c.OriginalStartIndex
}

// EffectiveLevel returns the chapter level, falling back to DefaultLevel when unset or out of range.
func (c Chapter) EffectiveLevel() int {
	if c.Level < MinLevel || c.Level > MaxLevel {
		return DefaultLevel
	}
	return c.Level
}

// Annotation attaches tags to a literal span of the novel text.
// Text is the re-anchoring key: when aligned, Slice(text, StartIndex, EndIndex) == Text.
type Annotation struct {
	ID                      string   `json:"id"`
	NovelID                 string   `json:"novelId"`
	UserID                  string   `json:"userId"`
	Text                    string   `json:"text"`
	StartIndex              int      `json:"startIndex"`
	EndIndex                int      `json:"endIndex"`
	TagIDs                  []string `json:"tagIds"`
	IsPotentiallyMisaligned bool     `json:"isPotentiallyMisaligned,omitempty"`
}

// PlotAnchor marks a position on a storyline.
type PlotAnchor struct {
	ID          string `json:"id"`
	NovelID     string `json:"novelId"`
	StorylineID string `json:"storylineId"`
	Title       string `json:"title"`
	Position    int    `json:"position"`
}

// Snapshot is the unit of consistency for one novel: the text plus everything
// that indexes into it. Operations return new snapshots and leave their input untouched.
type Snapshot struct {
	Text        string       `json:"text"`
	Chapters    []Chapter    `json:"chapters"`
	Annotations []Annotation `json:"annotations"`
	PlotAnchors []PlotAnchor `json:"plotAnchors,omitempty"`
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Text:        s.Text,
		Chapters:    CloneChapters(s.Chapters),
		Annotations: CloneAnnotations(s.Annotations),
	}
	if s.PlotAnchors != nil {
		out.PlotAnchors = append([]PlotAnchor(nil), s.PlotAnchors...)
	}
	return out
}

// ChapterIndex returns the position of the chapter with the given ID, or -1.
func (s Snapshot) ChapterIndex(id string) int {
	for i := range s.Chapters {
		if s.Chapters[i].ID == id {
			return i
		}
	}
	return -1
}

// CloneChapters copies a chapter slice, including the HTML pointer targets.
func CloneChapters(chapters []Chapter) []Chapter {
	if chapters == nil {
		return nil
	}
	out := make([]Chapter, len(chapters))
	for i, c := range chapters {
		if c.HTMLContent != nil {
			html := *c.HTMLContent
			c.HTMLContent = &html
		}
		out[i] = c
	}
	return out
}

// CloneAnnotations copies an annotation slice, including tag ID slices.
func CloneAnnotations(annotations []Annotation) []Annotation {
	if annotations == nil {
		return nil
	}
	out := make([]Annotation, len(annotations))
	for i, a := range annotations {
		if a.TagIDs != nil {
			a.TagIDs = append([]string(nil), a.TagIDs...)
		}
		out[i] = a
	}
	return out
}
