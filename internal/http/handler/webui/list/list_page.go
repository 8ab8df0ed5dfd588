package list

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/checklist/internal/core/model"
	"github.com/bornholm/checklist/internal/core/port"
	"github.com/bornholm/checklist/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/checklist/internal/http/handler/webui/common/component"
	"github.com/bornholm/checklist/internal/http/handler/webui/list/component"
	"github.com/pkg/errors"
)

func (h *Handler) getListPage(w http.ResponseWriter, r *http.Request) {
	vmodel, err := h.fillListBodyViewModel(r)
	if err != nil {
		h.handleListError(w, r, errors.WithStack(err))
		return
	}

	// A pending inline edit survives full page reloads via the query string.
	vmodel.EditItemID = model.ItemID(r.URL.Query().Get("edit"))

	h.renderListBody(w, r, vmodel, 0)
}

func (h *Handler) fillListBodyViewModel(r *http.Request) (*component.ListBodyVModel, error) {
	vmodel := &component.ListBodyVModel{}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx,
		vmodel, r,
		h.fillListBodyVModelList,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillListBodyVModelList(ctx context.Context, vmodel *component.ListBodyVModel, r *http.Request) error {
	listID := model.ListID(r.PathValue("id"))

	list, err := h.listManager.GetList(ctx, listID)
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.List = list

	return nil
}

// renderListBody answers fragment requests with the swappable list body and
// everything else with the full page wrapping that same body.
func (h *Handler) renderListBody(w http.ResponseWriter, r *http.Request, vmodel *component.ListBodyVModel, status int) {
	var comp templ.Component
	if common.IsFragmentRequest(r) {
		comp = component.ListBody(*vmodel)
	} else {
		comp = component.ListPage(component.ListPageVModel{Body: *vmodel})
	}

	opts := []func(*templ.ComponentHandler){}
	if status != 0 {
		opts = append(opts, templ.WithStatus(status))
	}

	templ.Handler(comp, opts...).ServeHTTP(w, r)
}

func (h *Handler) handleListError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, port.ErrNotFound) {
		err = common.NewError(
			err.Error(),
			"This list does not exist or has been deleted.",
			http.StatusNotFound,
			commonComp.LinkItem{
				Label: "Back to all lists",
				URL:   commonComp.BaseURL(r.Context(), "/"),
			},
		)
	}

	common.HandleError(w, r, err)
}
