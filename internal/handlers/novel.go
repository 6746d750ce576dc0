package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"novel-annotator/internal/contextutil"
	"novel-annotator/internal/editor"
	"novel-annotator/internal/service"
)

// NovelHandler handles HTTP requests for novels and whole-text operations.
type NovelHandler struct {
	novelService service.NovelService
}

// NewNovelHandler creates a new NovelHandler.
func NewNovelHandler(novelService service.NovelService) *NovelHandler {
	return &NovelHandler{
		novelService: novelService,
	}
}

// CreateNovelRequest represents the HTTP request payload for importing a novel.
type CreateNovelRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// NovelSummaryResponse is one novel in a listing.
type NovelSummaryResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	TextLength   int    `json:"textLength"`
	ChapterCount int    `json:"chapterCount"`
	UpdatedAt    string `json:"updatedAt"`
}

// SelectionHintRequest identifies the chapter selected before a full-text edit.
type SelectionHintRequest struct {
	OriginalTitle      string `json:"originalTitle"`
	OriginalStartIndex int    `json:"originalStartIndex"`
}

// UpdateTextRequest represents the HTTP request payload for replacing the text.
type UpdateTextRequest struct {
	Text string                `json:"text"`
	Hint *SelectionHintRequest `json:"hint,omitempty"`
}

// AppendRequest represents the HTTP request payload for appending text.
type AppendRequest struct {
	Text string `json:"text"`
}

// TruncateRequest represents the HTTP request payload for truncating a novel.
type TruncateRequest struct {
	KeepChapterCount int `json:"keepChapterCount"`
}

// MergeRangeRequest represents the HTTP request payload for merging chapters.
type MergeRangeRequest struct {
	ChapterIDs []string `json:"chapterIds"`
}

// CanMergeResponse reports whether a merge selection is valid.
type CanMergeResponse struct {
	CanMerge bool `json:"canMerge"`
}

// List handles GET /api/novels.
func (h *NovelHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summaries, err := h.novelService.ListNovels(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list novels")
		return
	}

	resp := make([]NovelSummaryResponse, len(summaries))
	for i, s := range summaries {
		resp[i] = NovelSummaryResponse{
			ID:           s.ID,
			Title:        s.Title,
			TextLength:   s.TextLength,
			ChapterCount: s.ChapterCount,
			UpdatedAt:    s.UpdatedAt.UTC().Format(time.RFC3339),
		}
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}

// Create handles POST /api/novels.
func (h *NovelHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req CreateNovelRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.novelService.CreateNovel(ctx, service.CreateNovelRequest{Title: req.Title, Text: req.Text})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create novel")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, res)
}

// Get handles GET /api/novels/{id}.
func (h *NovelHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	view, err := h.novelService.GetNovel(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load novel")
		return
	}
	writeJSON(ctx, w, http.StatusOK, view)
}

// Delete handles DELETE /api/novels/{id}.
func (h *NovelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.novelService.DeleteNovel(ctx, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete novel")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateText handles PUT /api/novels/{id}/text.
func (h *NovelHandler) UpdateText(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req UpdateTextRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var hint *editor.SelectionHint
	if req.Hint != nil {
		hint = &editor.SelectionHint{
			OriginalTitle:      req.Hint.OriginalTitle,
			OriginalStartIndex: req.Hint.OriginalStartIndex,
		}
	}

	res, err := h.novelService.UpdateText(ctx, chi.URLParam(r, "id"), req.Text, hint)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to update text")
		return
	}
	writeJSON(ctx, w, http.StatusOK, res)
}

// Append handles POST /api/novels/{id}/append.
func (h *NovelHandler) Append(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req AppendRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.novelService.Append(ctx, chi.URLParam(r, "id"), req.Text)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to append text")
		return
	}
	writeJSON(ctx, w, http.StatusOK, res)
}

// Truncate handles POST /api/novels/{id}/truncate.
func (h *NovelHandler) Truncate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req TruncateRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.novelService.Truncate(ctx, chi.URLParam(r, "id"), req.KeepChapterCount)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to truncate novel")
		return
	}
	writeJSON(ctx, w, http.StatusOK, res)
}

// MergeRange handles POST /api/novels/{id}/merge.
func (h *NovelHandler) MergeRange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req MergeRangeRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.novelService.MergeRange(ctx, chi.URLParam(r, "id"), req.ChapterIDs)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to merge chapters")
		return
	}
	writeJSON(ctx, w, http.StatusOK, res)
}

// CanMerge handles GET /api/novels/{id}/merge?chapterIds=a,b.
func (h *NovelHandler) CanMerge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ok, err := h.novelService.CanMergeRange(ctx, chi.URLParam(r, "id"), splitList(r.URL.Query().Get("chapterIds")))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to check merge")
		return
	}
	writeJSON(ctx, w, http.StatusOK, CanMergeResponse{CanMerge: ok})
}

// Outline handles GET /api/novels/{id}/outline.
//
// Query parameters: expanded (comma-separated chapter IDs, or "all"),
// selected, page and size.
func (h *NovelHandler) Outline(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	q := service.OutlineQuery{Selected: strings.TrimSpace(query.Get("selected"))}
	if expanded := query.Get("expanded"); expanded == "all" {
		q.ExpandAll = true
	} else {
		q.Expanded = splitList(expanded)
	}

	var err error
	if q.Page, err = intParam(query.Get("page")); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid page")
		return
	}
	if q.Size, err = intParam(query.Get("size")); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid size")
		return
	}

	res, err := h.novelService.Outline(ctx, chi.URLParam(r, "id"), q)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to build outline")
		return
	}
	writeJSON(ctx, w, http.StatusOK, res)
}

// intParam parses an optional non-negative integer query value.
func intParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, strconv.ErrSyntax
	}
	return n, nil
}
