package list

import (
	"net/http"

	"github.com/bornholm/checklist/internal/core/model"
	commonComp "github.com/bornholm/checklist/internal/http/handler/webui/common/component"
	"github.com/pkg/errors"
)

func (h *Handler) handleListDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	listID := model.ListID(r.PathValue("id"))

	if err := h.listManager.DeleteList(ctx, listID); err != nil {
		h.handleListError(w, r, errors.WithStack(err))
		return
	}

	// Deleting navigates away from the list, so no fragment variant here.
	http.Redirect(w, r, string(commonComp.BaseURL(ctx, "/")), http.StatusSeeOther)
}
