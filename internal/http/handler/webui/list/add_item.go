package list

import (
	"net/http"

	"github.com/bornholm/checklist/internal/core/model"
	"github.com/bornholm/checklist/internal/http/handler/webui/common"
	"github.com/bornholm/checklist/internal/http/handler/webui/list/component"
	"github.com/pkg/errors"
)

func (h *Handler) handleItemAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	listID := model.ListID(r.PathValue("id"))
	text := r.FormValue("text")

	if _, err := h.listManager.AddItem(ctx, listID, text); err != nil {
		if message, ok := validationMessage(err); ok {
			vmodel, err := h.fillListBodyViewModel(r)
			if err != nil {
				h.handleListError(w, r, errors.WithStack(err))
				return
			}

			vmodel.FormText = text
			vmodel.FormError = message

			h.renderListBody(w, r, vmodel, http.StatusUnprocessableEntity)
			return
		}

		h.handleListError(w, r, errors.WithStack(err))
		return
	}

	h.completeListUpdate(w, r, listID)
}

// completeListUpdate finishes a successful mutation: fragment requests get
// the refreshed list body, plain form posts get redirected back to the page.
func (h *Handler) completeListUpdate(w http.ResponseWriter, r *http.Request, listID model.ListID) {
	if !common.IsFragmentRequest(r) {
		http.Redirect(w, r, string(component.ListURL(r.Context(), listID)), http.StatusSeeOther)
		return
	}

	vmodel, err := h.fillListBodyViewModel(r)
	if err != nil {
		h.handleListError(w, r, errors.WithStack(err))
		return
	}

	h.renderListBody(w, r, vmodel, 0)
}
