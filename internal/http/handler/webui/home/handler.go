package home

import (
	"net/http"

	"github.com/bornholm/checklist/internal/core/service"
)

type Handler struct {
	mux         *http.ServeMux
	listManager *service.ListManager
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(listManager *service.ListManager) *Handler {
	h := &Handler{
		mux:         http.NewServeMux(),
		listManager: listManager,
	}

	h.mux.Handle("GET /{$}", http.HandlerFunc(h.getHomePage))
	h.mux.Handle("POST /{$}", http.HandlerFunc(h.handleListCreate))

	return h
}

var _ http.Handler = &Handler{}
