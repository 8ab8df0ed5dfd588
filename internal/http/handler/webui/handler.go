package webui

import (
	"net/http"
	"strings"

	"github.com/bornholm/checklist/internal/core/service"
	"github.com/bornholm/checklist/internal/http/handler/webui/home"
	"github.com/bornholm/checklist/internal/http/handler/webui/list"
)

type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(listManager *service.ListManager) *Handler {
	h := &Handler{
		mux: http.NewServeMux(),
	}

	mount(h.mux, "/", home.NewHandler(listManager))
	mount(h.mux, "/lists/", list.NewHandler(listManager))

	return h
}

func mount(mux *http.ServeMux, prefix string, handler http.Handler) {
	trimmed := strings.TrimSuffix(prefix, "/")

	if len(trimmed) > 0 {
		mux.Handle(prefix, http.StripPrefix(trimmed, handler))
	} else {
		mux.Handle(prefix, handler)
	}
}

var _ http.Handler = &Handler{}
