package home

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/checklist/internal/core/service"
	"github.com/bornholm/checklist/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/checklist/internal/http/handler/webui/common/component"
	"github.com/bornholm/checklist/internal/http/handler/webui/home/component"
	"github.com/pkg/errors"
)

func (h *Handler) handleListCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	name := r.FormValue("name")

	list, err := h.listManager.CreateList(ctx, name)
	if err != nil {
		if errors.Is(err, service.ErrNameTooLong) {
			vmodel, err := h.fillHomePageViewModel(r)
			if err != nil {
				common.HandleError(w, r, errors.WithStack(err))
				return
			}

			vmodel.FormName = name
			vmodel.FormError = "That list name is too long."

			homePage := component.HomePage(*vmodel)

			templ.Handler(homePage, templ.WithStatus(http.StatusUnprocessableEntity)).ServeHTTP(w, r)
			return
		}

		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	// The redirect target carries the new list id so the visited-lists
	// script can record it on arrival.
	listURL := commonComp.BaseURL(ctx, "/lists/"+string(list.ID()))

	http.Redirect(w, r, string(listURL), http.StatusSeeOther)
}
