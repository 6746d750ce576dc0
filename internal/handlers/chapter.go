package handlers

import (
	"errors"
	"html/template"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"novel-annotator/internal/contextutil"
	"novel-annotator/internal/service"
)

// ChapterHandler handles HTTP requests for single chapters.
type ChapterHandler struct {
	novelService service.NovelService
	template     *template.Template
}

// chapterPageData holds template data for rendered chapter pages.
type chapterPageData struct {
	Title   string
	NovelID string
	Level   int
	Content template.HTML
}

// NewChapterHandler creates a new ChapterHandler.
func NewChapterHandler(novelService service.NovelService) *ChapterHandler {
	tmpl := template.Must(template.New("chapter").Parse(`<!DOCTYPE html>
<html lang="zh">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    :root {
      color-scheme: dark;
    }
    body {
      font-family: 'Noto Serif SC', 'Songti SC', serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 760px;
      line-height: 1.9;
      background: #050b18;
      color: #e4ecff;
    }
    header {
      margin-bottom: 2rem;
      border-bottom: 1px solid rgba(148, 163, 184, 0.2);
      padding-bottom: 1.5rem;
    }
    h1 {
      margin-top: 0;
      color: #fff;
      font-size: 1.8rem;
    }
    article {
      background: rgba(12, 19, 35, 0.85);
      border: 1px solid rgba(99, 102, 241, 0.2);
      border-radius: 16px;
      padding: 2rem;
    }
    article p {
      color: #cbd5f5;
      text-indent: 2em;
      margin: 0 0 0.8rem;
    }
    .meta {
      color: #94a3b8;
      font-size: 0.95rem;
      margin-top: 0.5rem;
    }
    @media (max-width: 640px) {
      body {
        padding: 1rem;
      }
      article {
        padding: 1.25rem;
      }
    }
  </style>
</head>
<body>
  <header>
    <h1>{{.Title}}</h1>
    <p class="meta">Novel: {{.NovelID}} &middot; Level H{{.Level}}</p>
  </header>
  <article>{{.Content}}</article>
</body>
</html>`))

	return &ChapterHandler{
		novelService: novelService,
		template:     tmpl,
	}
}

// CreateChapterRequest represents the HTTP request payload for inserting a chapter.
type CreateChapterRequest struct {
	AfterChapterID string `json:"afterChapterId"`
}

// ChangeContentRequest represents the HTTP request payload for editing a chapter.
type ChangeContentRequest struct {
	Content string `json:"content"`
}

// UpdateChapterRequest represents the HTTP request payload for chapter metadata.
// Absent fields are left unchanged.
type UpdateChapterRequest struct {
	Title *string `json:"title,omitempty"`
	Level *int    `json:"level,omitempty"`
}

// Create handles POST /api/novels/{id}/chapters.
func (h *ChapterHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	// An empty body appends the chapter at the end.
	var req CreateChapterRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.novelService.CreateChapter(ctx, chi.URLParam(r, "id"), strings.TrimSpace(req.AfterChapterID))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create chapter")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, res)
}

// ChangeContent handles PUT /api/novels/{id}/chapters/{chapterID}/content.
func (h *ChapterHandler) ChangeContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req ChangeContentRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.novelService.ChangeChapterContent(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "chapterID"), req.Content)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to change chapter content")
		return
	}
	writeJSON(ctx, w, http.StatusOK, res)
}

// Update handles PATCH /api/novels/{id}/chapters/{chapterID}.
func (h *ChapterHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req UpdateChapterRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == nil && req.Level == nil {
		writeError(w, http.StatusBadRequest, "Nothing to update")
		return
	}

	id, chapterID := chi.URLParam(r, "id"), chi.URLParam(r, "chapterID")
	var res service.MutationResult
	var err error
	if req.Title != nil {
		if res, err = h.novelService.RenameChapter(ctx, id, chapterID, *req.Title); err != nil {
			handleServiceError(w, ctx, err, "Failed to rename chapter")
			return
		}
	}
	if req.Level != nil {
		if res, err = h.novelService.SetChapterLevel(ctx, id, chapterID, *req.Level); err != nil {
			handleServiceError(w, ctx, err, "Failed to set chapter level")
			return
		}
	}
	writeJSON(ctx, w, http.StatusOK, res)
}

// Delete handles DELETE /api/novels/{id}/chapters/{chapterID}.
func (h *ChapterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := h.novelService.DeleteChapter(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "chapterID"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to delete chapter")
		return
	}
	writeJSON(ctx, w, http.StatusOK, res)
}

// MergePrevious handles POST /api/novels/{id}/chapters/{chapterID}/merge-previous.
func (h *ChapterHandler) MergePrevious(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := h.novelService.MergeWithPrevious(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "chapterID"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to merge chapter")
		return
	}
	writeJSON(ctx, w, http.StatusOK, res)
}

// HTML handles GET /api/novels/{id}/chapters/{chapterID}/html.
func (h *ChapterHandler) HTML(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rendered, ok := h.render(w, r)
	if !ok {
		return
	}
	writeJSON(ctx, w, http.StatusOK, rendered)
}

// Page handles GET /novels/{id}/chapters/{chapterID}, serving the chapter as a
// standalone HTML page.
func (h *ChapterHandler) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	rendered, ok := h.render(w, r)
	if !ok {
		return
	}

	pageData := chapterPageData{
		Title:   rendered.Title,
		NovelID: chi.URLParam(r, "id"),
		Level:   rendered.Level,
		Content: template.HTML(rendered.HTML),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.Execute(w, pageData); err != nil {
		logger.ErrorContext(ctx, "failed to execute chapter template", "chapter_id", rendered.ID, "error", err)
		http.Error(w, "failed to render chapter", http.StatusInternalServerError)
		return
	}
}

// render fetches a chapter's HTML. A rendering that could not be saved is
// still served. It reports false after writing an error response.
func (h *ChapterHandler) render(w http.ResponseWriter, r *http.Request) (service.RenderedChapter, bool) {
	ctx := r.Context()

	rendered, err := h.novelService.ChapterHTML(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "chapterID"))
	if err != nil {
		if !errors.Is(err, service.ErrPersistence) {
			handleServiceError(w, ctx, err, "Failed to render chapter")
			return service.RenderedChapter{}, false
		}
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "rendered chapter not saved", "error", err)
	}
	return rendered, true
}
