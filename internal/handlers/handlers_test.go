package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"novel-annotator/internal/editor"
	"novel-annotator/internal/novel"
	"novel-annotator/internal/service"
	"novel-annotator/internal/service/mocks"
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// serve routes one request through a chi router so URL parameters resolve.
func serve(method, pattern, target, body string, h http.HandlerFunc) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, h)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "validation error",
			err:        &service.ValidationError{Field: "title", Message: "cannot be empty"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "wrapped not found",
			err:        service.WrapError(service.ErrNotFound, "load"),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "persistence failure",
			err:        &service.PersistError{Op: "append", Err: errors.New("disk full")},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handleServiceError(w, context.Background(), tt.err, "Failed")

			if w.Code != tt.wantStatus {
				t.Errorf("handleServiceError() status = %v, want %v", w.Code, tt.wantStatus)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("handleServiceError() Content-Type = %v", ct)
			}
		})
	}
}

func TestNovelHandler_Create(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		mockSetup     func(*mocks.MockNovelService)
		wantStatus    int
		checkResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "created",
			body: `{"title":"月下独酌","text":"第一章\n花间一壶酒"}`,
			mockSetup: func(m *mocks.MockNovelService) {
				m.EXPECT().
					CreateNovel(gomock.Any(), service.CreateNovelRequest{Title: "月下独酌", Text: "第一章\n花间一壶酒"}).
					Return(service.MutationResult{Novel: service.NovelView{ID: "n1", Title: "月下独酌"}}, nil)
			},
			wantStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.MutationResult
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if resp.Novel.ID != "n1" {
					t.Errorf("response novel id = %q, want n1", resp.Novel.ID)
				}
			},
		},
		{
			name:       "invalid JSON body",
			body:       "invalid json",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown field",
			body:       `{"title":"t","chapters":[]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "validation error",
			body: `{"title":"","text":"x"}`,
			mockSetup: func(m *mocks.MockNovelService) {
				m.EXPECT().CreateNovel(gomock.Any(), gomock.Any()).
					Return(service.MutationResult{}, &service.ValidationError{Field: "title", Message: "cannot be empty"})
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "persistence failure returns computed novel",
			body: `{"title":"t","text":"x"}`,
			mockSetup: func(m *mocks.MockNovelService) {
				result := service.MutationResult{Novel: service.NovelView{ID: "n1", Text: "x"}}
				m.EXPECT().CreateNovel(gomock.Any(), gomock.Any()).
					Return(result, &service.PersistError{Op: "create novel", Result: result, Err: errors.New("disk full")})
			},
			wantStatus: http.StatusServiceUnavailable,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp PersistErrorResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if resp.Result.Novel.ID != "n1" || resp.Error == "" {
					t.Errorf("response = %+v", resp)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockNovelService(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockService)
			}
			h := NewNovelHandler(mockService)

			w := serve(http.MethodPost, "/api/novels", "/api/novels", tt.body, h.Create)

			if w.Code != tt.wantStatus {
				t.Errorf("Create() status = %v, want %v (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestNovelHandler_UpdateText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockNovelService(ctrl)
	mockService.EXPECT().
		UpdateText(gomock.Any(), "n1", "新文本", &editor.SelectionHint{OriginalTitle: "第二章", OriginalStartIndex: 27}).
		Return(service.MutationResult{Report: service.Report{SelectedChapterID: "c2"}}, nil)

	h := NewNovelHandler(mockService)
	body := `{"text":"新文本","hint":{"originalTitle":"第二章","originalStartIndex":27}}`
	w := serve(http.MethodPut, "/api/novels/{id}/text", "/api/novels/n1/text", body, h.UpdateText)

	if w.Code != http.StatusOK {
		t.Fatalf("UpdateText() status = %v, want %v", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), `"selectedChapterId":"c2"`) {
		t.Errorf("UpdateText() body = %s", w.Body.String())
	}
}

func TestNovelHandler_Outline(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantQuery  *service.OutlineQuery
		wantStatus int
	}{
		{
			name:       "defaults",
			target:     "/api/novels/n1/outline",
			wantQuery:  &service.OutlineQuery{},
			wantStatus: http.StatusOK,
		},
		{
			name:       "expand all with paging",
			target:     "/api/novels/n1/outline?expanded=all&page=2&size=50",
			wantQuery:  &service.OutlineQuery{ExpandAll: true, Page: 2, Size: 50},
			wantStatus: http.StatusOK,
		},
		{
			name:       "expanded list and selection",
			target:     "/api/novels/n1/outline?expanded=c1,,c3&selected=c4",
			wantQuery:  &service.OutlineQuery{Expanded: []string{"c1", "c3"}, Selected: "c4"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "bad page",
			target:     "/api/novels/n1/outline?page=first",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative size",
			target:     "/api/novels/n1/outline?size=-1",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockNovelService(ctrl)
			if tt.wantQuery != nil {
				mockService.EXPECT().Outline(gomock.Any(), "n1", *tt.wantQuery).Return(service.OutlineResult{}, nil)
			}
			h := NewNovelHandler(mockService)

			w := serve(http.MethodGet, "/api/novels/{id}/outline", tt.target, "", h.Outline)

			if w.Code != tt.wantStatus {
				t.Errorf("Outline() status = %v, want %v", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestNovelHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockNovelService(ctrl)
	mockService.EXPECT().DeleteNovel(gomock.Any(), "n1").Return(nil)
	mockService.EXPECT().DeleteNovel(gomock.Any(), "n2").Return(service.ErrNotFound)
	h := NewNovelHandler(mockService)

	if w := serve(http.MethodDelete, "/api/novels/{id}", "/api/novels/n1", "", h.Delete); w.Code != http.StatusNoContent {
		t.Errorf("Delete() status = %v, want %v", w.Code, http.StatusNoContent)
	}
	if w := serve(http.MethodDelete, "/api/novels/{id}", "/api/novels/n2", "", h.Delete); w.Code != http.StatusNotFound {
		t.Errorf("Delete() missing status = %v, want %v", w.Code, http.StatusNotFound)
	}
}

func TestChapterHandler_Update(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(*mocks.MockNovelService)
		wantStatus int
	}{
		{
			name: "title and level",
			body: `{"title":"卷一","level":1}`,
			mockSetup: func(m *mocks.MockNovelService) {
				gomock.InOrder(
					m.EXPECT().RenameChapter(gomock.Any(), "n1", "c1", "卷一").Return(service.MutationResult{}, nil),
					m.EXPECT().SetChapterLevel(gomock.Any(), "n1", "c1", 1).Return(service.MutationResult{}, nil),
				)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "level only",
			body: `{"level":3}`,
			mockSetup: func(m *mocks.MockNovelService) {
				m.EXPECT().SetChapterLevel(gomock.Any(), "n1", "c1", 3).Return(service.MutationResult{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "rename failure skips level",
			body: `{"title":" ","level":2}`,
			mockSetup: func(m *mocks.MockNovelService) {
				m.EXPECT().RenameChapter(gomock.Any(), "n1", "c1", " ").
					Return(service.MutationResult{}, &service.ValidationError{Field: "title", Message: "blank"})
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "nothing to update",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockNovelService(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockService)
			}
			h := NewChapterHandler(mockService)

			w := serve(http.MethodPatch, "/api/novels/{id}/chapters/{chapterID}", "/api/novels/n1/chapters/c1", tt.body, h.Update)

			if w.Code != tt.wantStatus {
				t.Errorf("Update() status = %v, want %v", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestChapterHandler_Create(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantAfter string
	}{
		{name: "empty body appends", body: "", wantAfter: ""},
		{name: "after selected chapter", body: `{"afterChapterId":"c2"}`, wantAfter: "c2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockNovelService(ctrl)
			mockService.EXPECT().CreateChapter(gomock.Any(), "n1", tt.wantAfter).
				Return(service.MutationResult{Report: service.Report{CreatedChapterID: "new1"}}, nil)
			h := NewChapterHandler(mockService)

			w := serve(http.MethodPost, "/api/novels/{id}/chapters", "/api/novels/n1/chapters", tt.body, h.Create)

			if w.Code != http.StatusCreated {
				t.Errorf("Create() status = %v, want %v", w.Code, http.StatusCreated)
			}
		})
	}
}

func TestChapterHandler_Page(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockNovelService(ctrl)
	mockService.EXPECT().ChapterHTML(gomock.Any(), "n1", "c2").
		Return(service.RenderedChapter{ID: "c2", Title: "第二章 举杯", Level: 5, HTML: "<p>邀明月。</p>"}, nil)
	mockService.EXPECT().ChapterHTML(gomock.Any(), "n1", "nope").
		Return(service.RenderedChapter{}, service.ErrNotFound)
	h := NewChapterHandler(mockService)

	w := serve(http.MethodGet, "/novels/{id}/chapters/{chapterID}", "/novels/n1/chapters/c2", "", h.Page)
	if w.Code != http.StatusOK {
		t.Fatalf("Page() status = %v, want %v", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Page() Content-Type = %v", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "<title>第二章 举杯</title>") || !strings.Contains(body, "<article><p>邀明月。</p></article>") {
		t.Errorf("Page() body missing title or content:\n%s", body)
	}

	w = serve(http.MethodGet, "/novels/{id}/chapters/{chapterID}", "/novels/n1/chapters/nope", "", h.Page)
	if w.Code != http.StatusNotFound {
		t.Errorf("Page() unknown chapter status = %v, want %v", w.Code, http.StatusNotFound)
	}
}

func TestChapterHandler_HTML_ServesUnsavedRendering(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockNovelService(ctrl)
	mockService.EXPECT().ChapterHTML(gomock.Any(), "n1", "c1").
		Return(service.RenderedChapter{ID: "c1", HTML: "<p>x</p>"}, &service.PersistError{Op: "render chapter", Err: errors.New("locked")})
	h := NewChapterHandler(mockService)

	w := serve(http.MethodGet, "/api/novels/{id}/chapters/{chapterID}/html", "/api/novels/n1/chapters/c1/html", "", h.HTML)

	if w.Code != http.StatusOK {
		t.Fatalf("HTML() status = %v, want %v", w.Code, http.StatusOK)
	}
	var resp service.RenderedChapter
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil || resp.HTML != "<p>x</p>" {
		t.Errorf("HTML() response = %+v, %v", resp, err)
	}
}

func TestAnnotationHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockNovelService(ctrl)
	mockService.EXPECT().
		CreateAnnotation(gomock.Any(), "n1", service.CreateAnnotationRequest{StartIndex: 10, EndIndex: 14, TagIDs: []string{"t1"}}).
		Return(novel.Annotation{ID: "a1", Text: "月下独酌", StartIndex: 10, EndIndex: 14, TagIDs: []string{"t1"}}, nil)
	h := NewAnnotationHandler(mockService)

	body := `{"startIndex":10,"endIndex":14,"tagIds":["t1"]}`
	w := serve(http.MethodPost, "/api/novels/{id}/annotations", "/api/novels/n1/annotations", body, h.Create)

	if w.Code != http.StatusCreated {
		t.Fatalf("Create() status = %v, want %v", w.Code, http.StatusCreated)
	}
	var got novel.Annotation
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != "a1" || got.Text != "月下独酌" {
		t.Errorf("Create() = %+v", got)
	}
}

func TestAnnotationHandler_AddAnchor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockNovelService(ctrl)
	mockService.EXPECT().
		AddPlotAnchor(gomock.Any(), "n1", service.AddPlotAnchorRequest{StorylineID: "main", Title: "起", Position: 7}).
		Return(novel.PlotAnchor{ID: "p1", StorylineID: "main", Title: "起", Position: 7}, nil)
	h := NewAnnotationHandler(mockService)

	body := `{"storylineId":"main","title":"起","position":7}`
	w := serve(http.MethodPost, "/api/novels/{id}/anchors", "/api/novels/n1/anchors", body, h.AddAnchor)

	if w.Code != http.StatusCreated {
		t.Errorf("AddAnchor() status = %v, want %v", w.Code, http.StatusCreated)
	}
}

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(context.Context) error {
	return p.err
}

type fakeDirty []string

func (d fakeDirty) DirtyIDs() []string {
	return d
}

func TestHealthHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		db         Pinger
		cache      DirtyCounter
		wantStatus int
		wantState  string
	}{
		{
			name:       "healthy",
			method:     http.MethodGet,
			db:         fakePinger{},
			wantStatus: http.StatusOK,
			wantState:  "healthy",
		},
		{
			name:       "unsaved novels degrade",
			method:     http.MethodGet,
			db:         fakePinger{},
			cache:      fakeDirty{"n1"},
			wantStatus: http.StatusOK,
			wantState:  "degraded",
		},
		{
			name:       "database down",
			method:     http.MethodGet,
			db:         fakePinger{err: errors.New("unable to open database file")},
			wantStatus: http.StatusServiceUnavailable,
			wantState:  "unhealthy",
		},
		{
			name:       "method not allowed",
			method:     http.MethodPost,
			db:         fakePinger{},
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(tt.db, tt.cache)

			req := httptest.NewRequest(tt.method, "/api/health", nil)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("ServeHTTP() status = %v, want %v", w.Code, tt.wantStatus)
			}
			if tt.wantState == "" {
				return
			}
			var resp HealthResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Status != tt.wantState {
				t.Errorf("ServeHTTP() status field = %q, want %q", resp.Status, tt.wantState)
			}
		})
	}
}
