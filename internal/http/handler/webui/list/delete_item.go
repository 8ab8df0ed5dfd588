package list

import (
	"net/http"

	"github.com/bornholm/checklist/internal/core/model"
	"github.com/pkg/errors"
)

func (h *Handler) handleItemDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	listID := model.ListID(r.PathValue("id"))
	itemID := model.ItemID(r.PathValue("itemID"))

	if err := h.listManager.RemoveItem(ctx, listID, itemID); err != nil {
		h.handleListError(w, r, errors.WithStack(err))
		return
	}

	h.completeListUpdate(w, r, listID)
}
