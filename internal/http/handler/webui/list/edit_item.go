package list

import (
	"net/http"

	"github.com/bornholm/checklist/internal/core/model"
	"github.com/bornholm/checklist/internal/core/service"
	"github.com/bornholm/checklist/internal/http/handler/webui/common"
	"github.com/pkg/errors"
)

func (h *Handler) getItemEditForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	listID := model.ListID(r.PathValue("id"))
	itemID := model.ItemID(r.PathValue("itemID"))

	if _, err := h.listManager.GetItem(ctx, listID, itemID); err != nil {
		h.handleListError(w, r, errors.WithStack(err))
		return
	}

	vmodel, err := h.fillListBodyViewModel(r)
	if err != nil {
		h.handleListError(w, r, errors.WithStack(err))
		return
	}

	vmodel.EditItemID = itemID

	h.renderListBody(w, r, vmodel, 0)
}

func (h *Handler) handleItemEdit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	listID := model.ListID(r.PathValue("id"))
	itemID := model.ItemID(r.PathValue("itemID"))
	text := r.FormValue("text")

	if _, err := h.listManager.EditItem(ctx, listID, itemID, text); err != nil {
		if message, ok := validationMessage(err); ok {
			vmodel, err := h.fillListBodyViewModel(r)
			if err != nil {
				h.handleListError(w, r, errors.WithStack(err))
				return
			}

			vmodel.EditItemID = itemID
			vmodel.EditText = text
			vmodel.EditError = message

			h.renderListBody(w, r, vmodel, http.StatusUnprocessableEntity)
			return
		}

		h.handleListError(w, r, errors.WithStack(err))
		return
	}

	h.completeListUpdate(w, r, listID)
}

func validationMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, service.ErrEmptyText):
		return "Item text cannot be empty.", true
	case errors.Is(err, service.ErrTextTooLong):
		return "Item text is too long.", true
	case errors.Is(err, service.ErrDuplicateItem):
		return "This item is already on the list.", true
	}

	return "", false
}
