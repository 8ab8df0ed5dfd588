package component

import (
	"context"

	"github.com/a-h/templ"
	"github.com/bornholm/checklist/internal/core/model"
	commonComp "github.com/bornholm/checklist/internal/http/handler/webui/common/component"
)

func ListURL(ctx context.Context, id model.ListID) templ.SafeURL {
	return commonComp.BaseURL(ctx, "/lists/"+string(id))
}

func DisplayName(list model.List) string {
	if list.Name() == "" {
		return "Untitled list"
	}

	return list.Name()
}
