package component

import "github.com/bornholm/checklist/internal/core/model"

type HomePageVModel struct {
	Lists      []model.List
	TotalLists int64

	FormName  string
	FormError string
}
