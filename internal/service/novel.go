package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_novel_service.go -package=mocks novel-annotator/internal/service NovelService
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chapter_renderer.go -package=mocks novel-annotator/internal/service ChapterRenderer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"novel-annotator/internal/cache"
	"novel-annotator/internal/contextutil"
	"novel-annotator/internal/editor"
	"novel-annotator/internal/novel"
	"novel-annotator/internal/storage"
)

// ChapterRenderer turns chapter content into HTML.
// This interface is defined from the service layer's perspective (consumer-first).
type ChapterRenderer interface {
	Chapter(content string) (string, error)
}

// NovelView is a novel as returned to callers.
type NovelView struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Text        string             `json:"text"`
	Chapters    []novel.Chapter    `json:"chapters"`
	Annotations []novel.Annotation `json:"annotations"`
	PlotAnchors []novel.PlotAnchor `json:"plotAnchors"`
}

// Report summarizes what a mutation did to the novel's annotations, chapters
// and anchors. Zero counts are omitted.
type Report struct {
	Relocated            int    `json:"relocated,omitempty"`
	Misaligned           int    `json:"misaligned,omitempty"`
	Shifted              int    `json:"shifted,omitempty"`
	RemovedCharacters    int    `json:"removedCharacters,omitempty"`
	RemovedChapters      int    `json:"removedChapters,omitempty"`
	DeletedAnnotations   int    `json:"deletedAnnotations,omitempty"`
	TruncatedAnnotations int    `json:"truncatedAnnotations,omitempty"`
	DroppedAnchors       int    `json:"droppedAnchors,omitempty"`
	AddedChapters        int    `json:"addedChapters,omitempty"`
	SelectedChapterID    string `json:"selectedChapterId,omitempty"`
	CreatedChapterID     string `json:"createdChapterId,omitempty"`
}

// MutationResult is the novel after a mutation plus the mutation's report.
type MutationResult struct {
	Novel  NovelView `json:"novel"`
	Report Report    `json:"report"`
}

// CreateNovelRequest represents a request to import a novel.
type CreateNovelRequest struct {
	Title string
	Text  string
}

// NovelService manages novels and keeps chapters, annotations and plot
// anchors consistent with the text across edits.
type NovelService interface {
	// CreateNovel segments the text into chapters and stores a new novel.
	CreateNovel(ctx context.Context, req CreateNovelRequest) (MutationResult, error)
	// GetNovel returns a novel with its chapters, annotations and plot anchors.
	GetNovel(ctx context.Context, id string) (NovelView, error)
	// ListNovels returns summaries of all novels.
	ListNovels(ctx context.Context) ([]storage.NovelSummary, error)
	// DeleteNovel removes a novel and everything attached to it.
	DeleteNovel(ctx context.Context, id string) error

	// UpdateText replaces the whole text, re-segments it and realigns annotations.
	UpdateText(ctx context.Context, id, text string, hint *editor.SelectionHint) (MutationResult, error)
	// ChangeChapterContent replaces one chapter's content.
	ChangeChapterContent(ctx context.Context, id, chapterID, content string) (MutationResult, error)
	// DeleteChapter removes a chapter and its text.
	DeleteChapter(ctx context.Context, id, chapterID string) (MutationResult, error)
	// RenameChapter sets a chapter's title.
	RenameChapter(ctx context.Context, id, chapterID, title string) (MutationResult, error)
	// SetChapterLevel sets a chapter's heading level (1..5).
	SetChapterLevel(ctx context.Context, id, chapterID string, level int) (MutationResult, error)
	// CreateChapter inserts an empty chapter after afterChapterID, or at the end when it is empty.
	CreateChapter(ctx context.Context, id, afterChapterID string) (MutationResult, error)
	// MergeWithPrevious folds a chapter into the one before it.
	MergeWithPrevious(ctx context.Context, id, chapterID string) (MutationResult, error)
	// CanMergeRange reports whether the chapters form a contiguous run of two or more.
	CanMergeRange(ctx context.Context, id string, chapterIDs []string) (bool, error)
	// MergeRange merges a contiguous run of chapters into one.
	MergeRange(ctx context.Context, id string, chapterIDs []string) (MutationResult, error)
	// Append adds text, segmented on its own, after the existing chapters.
	Append(ctx context.Context, id, text string) (MutationResult, error)
	// Truncate keeps the first keep chapters and cuts the rest of the text.
	Truncate(ctx context.Context, id string, keep int) (MutationResult, error)

	// Outline returns one page of the flattened chapter hierarchy.
	Outline(ctx context.Context, id string, q OutlineQuery) (OutlineResult, error)
	// ChapterHTML returns a chapter rendered to HTML, rendering and storing it on first use.
	ChapterHTML(ctx context.Context, id, chapterID string) (RenderedChapter, error)

	// ListAnnotations returns a novel's annotations.
	ListAnnotations(ctx context.Context, id string) ([]novel.Annotation, error)
	// CreateAnnotation annotates a span of the text.
	CreateAnnotation(ctx context.Context, id string, req CreateAnnotationRequest) (novel.Annotation, error)
	// DeleteAnnotation removes an annotation.
	DeleteAnnotation(ctx context.Context, id, annotationID string) error
	// AddPlotAnchor marks a position on a storyline.
	AddPlotAnchor(ctx context.Context, id string, req AddPlotAnchorRequest) (novel.PlotAnchor, error)

	// Flush retries saving every novel whose latest state is only in memory.
	Flush(ctx context.Context) error
}

// NovelServiceConfig holds the dependencies of a NovelService.
type NovelServiceConfig struct {
	Novels      storage.NovelStore
	Annotations storage.AnnotationStore
	Anchors     storage.PlotAnchorStore
	Cache       *cache.SnapshotCache
	Editor      *editor.Editor
	Renderer    ChapterRenderer
	// DefaultUserID owns annotations created without a user.
	DefaultUserID string
	// NewID generates novel, annotation and anchor IDs. Defaults to uuid.NewString.
	NewID func() string
}

// novelService implements NovelService.
type novelService struct {
	novels        storage.NovelStore
	annotations   storage.AnnotationStore
	anchors       storage.PlotAnchorStore
	cache         *cache.SnapshotCache
	editor        *editor.Editor
	renderer      ChapterRenderer
	defaultUserID string
	newID         func() string

	locks sync.Map // novel ID -> *sync.Mutex
}

// NewNovelService creates a new NovelService.
func NewNovelService(cfg NovelServiceConfig) NovelService {
	s := &novelService{
		novels:        cfg.Novels,
		annotations:   cfg.Annotations,
		anchors:       cfg.Anchors,
		cache:         cfg.Cache,
		editor:        cfg.Editor,
		renderer:      cfg.Renderer,
		defaultUserID: cfg.DefaultUserID,
		newID:         cfg.NewID,
	}
	if s.editor == nil {
		s.editor = editor.New()
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	if s.defaultUserID == "" {
		s.defaultUserID = "local"
	}
	return s
}

func (s *novelService) lock(id string) func() {
	m, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// CreateNovel imports a novel.
func (s *novelService) CreateNovel(ctx context.Context, req CreateNovelRequest) (MutationResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	title := strings.TrimSpace(req.Title)
	if title == "" {
		logger.WarnContext(ctx, "empty title in create novel request")
		return MutationResult{}, &ValidationError{Field: "title", Message: "cannot be empty"}
	}

	res := s.editor.UpdateFullText(novel.Snapshot{}, req.Text, nil)
	id := s.newID()
	next := cache.Entry{Title: title, Snapshot: res.Snapshot}

	unlock := s.lock(id)
	defer unlock()

	result, err := s.commit(ctx, id, "create novel", cache.Entry{}, next, Report{})
	if err != nil {
		return result, err
	}
	logger.InfoContext(ctx, "novel created", "novel_id", id, "chapters", len(res.Snapshot.Chapters), "text_length", novel.RuneLen(res.Snapshot.Text))
	return result, nil
}

// GetNovel returns a novel.
func (s *novelService) GetNovel(ctx context.Context, id string) (NovelView, error) {
	unlock := s.lock(id)
	defer unlock()

	entry, err := s.load(ctx, id)
	if err != nil {
		return NovelView{}, err
	}
	return viewOf(id, entry), nil
}

// ListNovels returns summaries of all novels. Novels with unsaved changes are
// reported as they are in memory.
func (s *novelService) ListNovels(ctx context.Context) ([]storage.NovelSummary, error) {
	summaries, err := s.novels.List(ctx)
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to list novels", "error", err)
		return nil, WrapError(err, "failed to list novels")
	}
	if s.cache == nil {
		return summaries, nil
	}
	for i, sum := range summaries {
		if e, ok := s.cache.Get(sum.ID); ok && e.Dirty {
			summaries[i].Title = e.Title
			summaries[i].TextLength = novel.RuneLen(e.Snapshot.Text)
			summaries[i].ChapterCount = len(e.Snapshot.Chapters)
		}
	}
	return summaries, nil
}

// DeleteNovel removes a novel.
func (s *novelService) DeleteNovel(ctx context.Context, id string) error {
	logger := contextutil.LoggerFromContext(ctx)
	unlock := s.lock(id)
	defer unlock()

	if err := s.novels.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: novel %s", ErrNotFound, id)
		}
		logger.ErrorContext(ctx, "failed to delete novel", "novel_id", id, "error", err)
		return WrapError(err, "failed to delete novel")
	}
	if s.cache != nil {
		s.cache.Remove(id)
	}
	// The held mutex stays valid for waiters; later callers get a fresh one.
	s.locks.Delete(id)
	logger.InfoContext(ctx, "novel deleted", "novel_id", id)
	return nil
}

// Flush saves every dirty cached novel. Each is re-synced in full against
// storage since earlier partial saves may have failed midway.
func (s *novelService) Flush(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	logger := contextutil.LoggerFromContext(ctx)

	var errs []error
	for _, id := range s.cache.DirtyIDs() {
		if err := s.flushOne(ctx, id); err != nil {
			logger.ErrorContext(ctx, "failed to flush novel", "novel_id", id, "error", err)
			errs = append(errs, fmt.Errorf("novel %s: %w", id, err))
			continue
		}
		logger.InfoContext(ctx, "novel flushed", "novel_id", id)
	}
	return errors.Join(errs...)
}

func (s *novelService) flushOne(ctx context.Context, id string) error {
	unlock := s.lock(id)
	defer unlock()

	entry, ok := s.cache.Get(id)
	if !ok || !entry.Dirty {
		return nil
	}
	if err := s.persist(ctx, id, cache.Entry{Dirty: true}, entry); err != nil {
		return err
	}
	s.cache.MarkClean(id)
	return nil
}

// mutate runs fn against the current snapshot of a novel under its lock and
// commits the result.
func (s *novelService) mutate(ctx context.Context, id, op string, fn func(snap novel.Snapshot) (novel.Snapshot, Report, error)) (MutationResult, error) {
	unlock := s.lock(id)
	defer unlock()

	ctx = contextutil.WithAttrs(ctx, "op", op, "novel_id", id)

	prev, err := s.load(ctx, id)
	if err != nil {
		return MutationResult{}, err
	}

	snap, report, err := fn(prev.Snapshot)
	if err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "novel operation rejected", "error", err)
		return MutationResult{}, err
	}

	next := cache.Entry{Title: prev.Title, Snapshot: snap}
	result, err := s.commit(ctx, id, op, prev, next, report)
	if err != nil {
		return result, err
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "novel updated",
		"chapters", len(snap.Chapters), "relocated", report.Relocated, "misaligned", report.Misaligned)
	return result, nil
}

// commit caches next as dirty and saves it. On a save failure next stays
// cached and the error carries the computed result. Callers hold the lock.
func (s *novelService) commit(ctx context.Context, id, op string, prev, next cache.Entry, report Report) (MutationResult, error) {
	result := MutationResult{Novel: viewOf(id, next), Report: report}

	if s.cache != nil {
		next.Dirty = true
		s.cache.Put(id, next)
	}

	if err := s.persist(ctx, id, prev, next); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to save novel", "op", op, "novel_id", id, "error", err)
		return result, &PersistError{Op: op, Result: result, Err: err}
	}

	if s.cache != nil {
		s.cache.MarkClean(id)
	}
	return result, nil
}

// load returns the current state of a novel from the cache or the stores.
// Callers hold the lock.
func (s *novelService) load(ctx context.Context, id string) (cache.Entry, error) {
	if s.cache != nil {
		if e, ok := s.cache.Get(id); ok {
			return e, nil
		}
	}

	rec, err := s.novels.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return cache.Entry{}, fmt.Errorf("%w: novel %s", ErrNotFound, id)
		}
		return cache.Entry{}, WrapError(err, "failed to load novel")
	}
	stored, err := s.annotations.ListByNovel(ctx, id)
	if err != nil {
		return cache.Entry{}, WrapError(err, "failed to load annotations")
	}
	anchors, err := s.anchors.ListByNovel(ctx, id)
	if err != nil {
		return cache.Entry{}, WrapError(err, "failed to load plot anchors")
	}

	e := cache.Entry{
		Title: rec.Title,
		Snapshot: novel.Snapshot{
			Text:        rec.Text,
			Chapters:    rec.Chapters,
			Annotations: annotationsOf(stored),
			PlotAnchors: anchors,
		},
	}
	if s.cache != nil {
		s.cache.Put(id, e)
	}
	return e, nil
}

// persist writes next to the stores. The novel row and chapters are replaced
// whole; annotations and anchors are diffed against prev. When prev may not
// match storage (it was dirty) the diff is taken against what storage holds.
func (s *novelService) persist(ctx context.Context, id string, prev, next cache.Entry) error {
	rec := &storage.NovelRecord{
		ID:       id,
		Title:    next.Title,
		Text:     next.Snapshot.Text,
		Chapters: next.Snapshot.Chapters,
	}
	if err := s.novels.Save(ctx, rec); err != nil {
		return err
	}

	prevAnnotations, prevAnchors := prev.Snapshot.Annotations, prev.Snapshot.PlotAnchors
	if prev.Dirty {
		stored, err := s.annotations.ListByNovel(ctx, id)
		if err != nil {
			return err
		}
		prevAnnotations = annotationsOf(stored)
		if prevAnchors, err = s.anchors.ListByNovel(ctx, id); err != nil {
			return err
		}
	}

	changed, removed := diffByID(prevAnnotations, next.Snapshot.Annotations,
		func(a novel.Annotation) string { return a.ID }, annotationEqual)
	if len(changed) > 0 {
		records := make([]storage.AnnotationRecord, len(changed))
		for i, a := range changed {
			records[i] = storage.AnnotationRecord{Annotation: a}
		}
		if err := s.annotations.SaveBatch(ctx, records); err != nil {
			return err
		}
	}
	for _, aid := range removed {
		if err := s.annotations.Delete(ctx, aid); err != nil {
			return err
		}
	}

	changedAnchors, removedAnchors := diffByID(prevAnchors, next.Snapshot.PlotAnchors,
		func(a novel.PlotAnchor) string { return a.ID },
		func(a, b novel.PlotAnchor) bool { return a == b })
	for i := range changedAnchors {
		if err := s.anchors.Save(ctx, &changedAnchors[i]); err != nil {
			return err
		}
	}
	for _, aid := range removedAnchors {
		if err := s.anchors.Delete(ctx, aid); err != nil {
			return err
		}
	}
	return nil
}

// diffByID returns the items of next that are new or differ from prev, and
// the IDs in prev that next no longer has.
func diffByID[T any](prev, next []T, id func(T) string, equal func(a, b T) bool) (changed []T, removed []string) {
	old := make(map[string]T, len(prev))
	for _, p := range prev {
		old[id(p)] = p
	}
	for _, n := range next {
		p, ok := old[id(n)]
		if !ok || !equal(p, n) {
			changed = append(changed, n)
		}
		delete(old, id(n))
	}
	for _, p := range prev {
		if _, ok := old[id(p)]; ok {
			removed = append(removed, id(p))
		}
	}
	return changed, removed
}

func annotationEqual(a, b novel.Annotation) bool {
	if a.ID != b.ID || a.NovelID != b.NovelID || a.UserID != b.UserID || a.Text != b.Text ||
		a.StartIndex != b.StartIndex || a.EndIndex != b.EndIndex ||
		a.IsPotentiallyMisaligned != b.IsPotentiallyMisaligned || len(a.TagIDs) != len(b.TagIDs) {
		return false
	}
	for i := range a.TagIDs {
		if a.TagIDs[i] != b.TagIDs[i] {
			return false
		}
	}
	return true
}

func annotationsOf(records []storage.AnnotationRecord) []novel.Annotation {
	out := make([]novel.Annotation, len(records))
	for i, r := range records {
		out[i] = r.Annotation
	}
	return out
}

func viewOf(id string, e cache.Entry) NovelView {
	v := NovelView{
		ID:          id,
		Title:       e.Title,
		Text:        e.Snapshot.Text,
		Chapters:    e.Snapshot.Chapters,
		Annotations: e.Snapshot.Annotations,
		PlotAnchors: e.Snapshot.PlotAnchors,
	}
	if v.Chapters == nil {
		v.Chapters = []novel.Chapter{}
	}
	if v.Annotations == nil {
		v.Annotations = []novel.Annotation{}
	}
	if v.PlotAnchors == nil {
		v.PlotAnchors = []novel.PlotAnchor{}
	}
	return v
}
