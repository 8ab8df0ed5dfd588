package list

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

	h.mux.Handle("GET /{id}", http.HandlerFunc(h.getListPage))
	h.mux.Handle("POST /{id}/delete", http.HandlerFunc(h.handleListDelete))
	h.mux.Handle("POST /{id}/items", http.HandlerFunc(h.handleItemAdd))
	h.mux.Handle("GET /{id}/items/{itemID}/edit", http.HandlerFunc(h.getItemEditForm))
	h.mux.Handle("POST /{id}/items/{itemID}/edit", http.HandlerFunc(h.handleItemEdit))
	h.mux.Handle("POST /{id}/items/{itemID}/delete", http.HandlerFunc(h.handleItemDelete))

	return h
}

var _ http.Handler = &Handler{}
