package gorm

import (
	"time"

	"github.com/bornholm/checklist/internal/core/model"
)

type List struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Name string

	Items []*Item `gorm:"constraint:OnDelete:CASCADE"`
}

type wrappedList struct {
	l *List
}

// ID implements model.List.
func (w *wrappedList) ID() model.ListID {
	return model.ListID(w.l.ID)
}

// Name implements model.List.
func (w *wrappedList) Name() string {
	return w.l.Name
}

// Items implements model.List.
func (w *wrappedList) Items() []model.Item {
	items := make([]model.Item, 0, len(w.l.Items))
	for _, i := range w.l.Items {
		items = append(items, &wrappedItem{i})
	}
	return items
}

// CreatedAt implements model.List.
func (w *wrappedList) CreatedAt() time.Time {
	return w.l.CreatedAt
}

// UpdatedAt implements model.List.
func (w *wrappedList) UpdatedAt() time.Time {
	return w.l.UpdatedAt
}

var _ model.List = &wrappedList{}
