package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"novel-annotator/internal/contextutil"
	"novel-annotator/internal/service"
)

// AnnotationHandler handles HTTP requests for annotations and plot anchors.
type AnnotationHandler struct {
	novelService service.NovelService
}

// NewAnnotationHandler creates a new AnnotationHandler.
func NewAnnotationHandler(novelService service.NovelService) *AnnotationHandler {
	return &AnnotationHandler{
		novelService: novelService,
	}
}

// CreateAnnotationRequest represents the HTTP request payload for annotating a span.
type CreateAnnotationRequest struct {
	UserID     string   `json:"userId,omitempty"`
	StartIndex int      `json:"startIndex"`
	EndIndex   int      `json:"endIndex"`
	TagIDs     []string `json:"tagIds"`
}

// AddPlotAnchorRequest represents the HTTP request payload for a plot anchor.
type AddPlotAnchorRequest struct {
	StorylineID string `json:"storylineId"`
	Title       string `json:"title"`
	Position    int    `json:"position"`
}

// List handles GET /api/novels/{id}/annotations.
func (h *AnnotationHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	annotations, err := h.novelService.ListAnnotations(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list annotations")
		return
	}
	writeJSON(ctx, w, http.StatusOK, annotations)
}

// Create handles POST /api/novels/{id}/annotations.
func (h *AnnotationHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req CreateAnnotationRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	a, err := h.novelService.CreateAnnotation(ctx, chi.URLParam(r, "id"), service.CreateAnnotationRequest{
		UserID:     req.UserID,
		StartIndex: req.StartIndex,
		EndIndex:   req.EndIndex,
		TagIDs:     req.TagIDs,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create annotation")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, a)
}

// Delete handles DELETE /api/novels/{id}/annotations/{annotationID}.
func (h *AnnotationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.novelService.DeleteAnnotation(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "annotationID"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to delete annotation")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddAnchor handles POST /api/novels/{id}/anchors.
func (h *AnnotationHandler) AddAnchor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req AddPlotAnchorRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	anchor, err := h.novelService.AddPlotAnchor(ctx, chi.URLParam(r, "id"), service.AddPlotAnchorRequest{
		StorylineID: req.StorylineID,
		Title:       req.Title,
		Position:    req.Position,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to add plot anchor")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, anchor)
}
