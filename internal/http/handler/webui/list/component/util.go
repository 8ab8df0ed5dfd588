package component

import (
	"context"
	"net/url"

	"github.com/a-h/templ"
	"github.com/bornholm/checklist/internal/core/model"
	httpCtx "github.com/bornholm/checklist/internal/http/context"
	commonComp "github.com/bornholm/checklist/internal/http/handler/webui/common/component"
)

func ListURL(ctx context.Context, id model.ListID) templ.SafeURL {
	return commonComp.BaseURL(ctx, "/lists/"+string(id))
}

func ItemsURL(ctx context.Context, listID model.ListID) templ.SafeURL {
	return commonComp.BaseURL(ctx, "/lists/"+string(listID)+"/items")
}

func EditItemURL(ctx context.Context, listID model.ListID, itemID model.ItemID) templ.SafeURL {
	return commonComp.BaseURL(ctx, "/lists/"+string(listID)+"/items/"+string(itemID)+"/edit")
}

func DeleteItemURL(ctx context.Context, listID model.ListID, itemID model.ItemID) templ.SafeURL {
	return commonComp.BaseURL(ctx, "/lists/"+string(listID)+"/items/"+string(itemID)+"/delete")
}

func DeleteListURL(ctx context.Context, listID model.ListID) templ.SafeURL {
	return commonComp.BaseURL(ctx, "/lists/"+string(listID)+"/delete")
}

// EditItemPageURL is the no-script fallback for the inline edit button: the
// full list page with the edit form opened via the query string.
func EditItemPageURL(ctx context.Context, listID model.ListID, itemID model.ItemID) templ.SafeURL {
	pageURL := httpCtx.BaseURL(ctx).JoinPath("/lists/" + string(listID))
	pageURL.RawQuery = url.Values{"edit": []string{string(itemID)}}.Encode()

	return templ.SafeURL(pageURL.String())
}

func DisplayName(list model.List) string {
	if list.Name() == "" {
		return "Untitled list"
	}

	return list.Name()
}

func editValue(text string, item model.Item) string {
	if text != "" {
		return text
	}

	return item.Text()
}
