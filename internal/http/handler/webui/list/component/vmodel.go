package component

import "github.com/bornholm/checklist/internal/core/model"

type ListPageVModel struct {
	Body ListBodyVModel
}

// ListBodyVModel backs the swappable region of the list page. Fragment
// responses render it alone, full pages wrap it in the layout.
type ListBodyVModel struct {
	List model.List

	EditItemID model.ItemID
	EditText   string
	EditError  string

	FormText  string
	FormError string
}
