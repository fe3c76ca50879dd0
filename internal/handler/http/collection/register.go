package collection

import (
	"log/slog"
	"net/http"
)

// Register registers all collection-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc Service, logger *slog.Logger) {
	mux.Handle("GET /collections", ListHandler{Svc: svc, Logger: logger})
	mux.Handle("GET /collections/", GetHandler{Svc: svc})
}
