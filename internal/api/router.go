package api

import (
	"business-finder/internal/api/handlers"
	"business-finder/internal/domain"
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(finder handlers.Finder, defaultPolicy domain.ReviewPolicy) http.Handler {
	r := mux.NewRouter()

	searchHandler := &handlers.SearchHandler{
		Finder:        finder,
		DefaultPolicy: defaultPolicy,
	}

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)
	r.HandleFunc("/searches", searchHandler.Search).Methods(http.MethodPost)
	r.HandleFunc("/searches/export", searchHandler.Export).Methods(http.MethodPost)

	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)
	r.NotFoundHandler = http.HandlerFunc(notFound)

	r.Use(requestIDMiddleware, loggingMiddleware)
	return r
}
