package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/chlee-dev/gif-catalog/internal/app/handler"
	"github.com/chlee-dev/gif-catalog/internal/app/service"
	"github.com/chlee-dev/gif-catalog/internal/middleware"
)

// Init assembles the router: the query-parameter route family, the
// per-user path family, health and the static asset mount.
func Init(logger *zap.Logger, svc service.GifServiceIface, auth service.TokenParser, gifDir string) *chi.Mux {
	getHandler := handler.NewGet(svc, logger)
	postHandler := handler.NewPost(svc, logger)
	deleteHandler := handler.NewDelete(svc, logger)

	r := chi.NewRouter()
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(middleware.WithGZIPGet)
	r.Use(middleware.WithGZIPPost)

	r.Route("/gifs", func(r chi.Router) {
		r.Use(middleware.WithUser(auth))

		r.Get("/", getHandler.List)
		r.Post("/", postHandler.Create)
		r.Get("/search", getHandler.Search)
		r.Delete("/{gifID}", deleteHandler.Delete)
	})

	r.Route("/users/{userID}/gifs", func(r chi.Router) {
		r.Get("/", getHandler.List)
		r.Post("/", postHandler.Create)
		r.Get("/search", getHandler.Search)
		r.Delete("/{gifID}", deleteHandler.Delete)
	})

	r.Get("/health", getHandler.Health)
	r.Get("/ping", getHandler.Ping)

	fileServer := http.StripPrefix("/static/gifs/", http.FileServer(http.Dir(gifDir)))
	r.Get("/static/gifs/*", fileServer.ServeHTTP)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
