package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"novel-annotator/internal/handlers"
	"novel-annotator/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	NovelService service.NovelService
	DB           handlers.Pinger
	// Cache is optional; when set, health checks report unsaved novels.
	Cache handlers.DirtyCounter
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.RequestID)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	// Add CORS middleware
	r.Use(CORS)

	novelHandler := handlers.NewNovelHandler(deps.NovelService)
	chapterHandler := handlers.NewChapterHandler(deps.NovelService)
	annotationHandler := handlers.NewAnnotationHandler(deps.NovelService)

	var healthHandler http.Handler = http.NotFoundHandler()
	if deps.DB != nil {
		healthHandler = handlers.NewHealthHandler(deps.DB, deps.Cache)
	}

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)

		r.Route("/novels", func(r chi.Router) {
			r.Get("/", novelHandler.List)
			r.Post("/", novelHandler.Create)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", novelHandler.Get)
				r.Delete("/", novelHandler.Delete)
				r.Put("/text", novelHandler.UpdateText)
				r.Post("/append", novelHandler.Append)
				r.Post("/truncate", novelHandler.Truncate)
				r.Get("/merge", novelHandler.CanMerge)
				r.Post("/merge", novelHandler.MergeRange)
				r.Get("/outline", novelHandler.Outline)

				r.Post("/chapters", chapterHandler.Create)
				r.Route("/chapters/{chapterID}", func(r chi.Router) {
					r.Patch("/", chapterHandler.Update)
					r.Delete("/", chapterHandler.Delete)
					r.Put("/content", chapterHandler.ChangeContent)
					r.Post("/merge-previous", chapterHandler.MergePrevious)
					r.Get("/html", chapterHandler.HTML)
				})

				r.Get("/annotations", annotationHandler.List)
				r.Post("/annotations", annotationHandler.Create)
				r.Delete("/annotations/{annotationID}", annotationHandler.Delete)
				r.Post("/anchors", annotationHandler.AddAnchor)
			})
		})
	})

	// Reader page for a single chapter
	r.Get("/novels/{id}/chapters/{chapterID}", chapterHandler.Page)

	return r
}
