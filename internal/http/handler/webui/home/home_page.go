package home

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/checklist/internal/core/port"
	"github.com/bornholm/checklist/internal/http/handler/webui/common"
	"github.com/bornholm/checklist/internal/http/handler/webui/home/component"
	"github.com/pkg/errors"
)

func (h *Handler) getHomePage(w http.ResponseWriter, r *http.Request) {
	vmodel, err := h.fillHomePageViewModel(r)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	homePage := component.HomePage(*vmodel)

	templ.Handler(homePage).ServeHTTP(w, r)
}

func (h *Handler) fillHomePageViewModel(r *http.Request) (*component.HomePageVModel, error) {
	vmodel := &component.HomePageVModel{}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx,
		vmodel, r,
		h.fillHomePageVModelLists,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillHomePageVModelLists(ctx context.Context, vmodel *component.HomePageVModel, r *http.Request) error {
	lists, total, err := h.listManager.QueryLists(ctx, port.QueryListsOptions{})
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Lists = lists
	vmodel.TotalLists = total

	return nil
}
