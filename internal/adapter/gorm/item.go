package gorm

import (
	"time"

	"github.com/bornholm/checklist/internal/core/model"
)

type Item struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	ListID string `gorm:"not null;index"`

	Text     string `gorm:"not null"`
	Position int    `gorm:"not null"`
}

type wrappedItem struct {
	i *Item
}

// ID implements model.Item.
func (w *wrappedItem) ID() model.ItemID {
	return model.ItemID(w.i.ID)
}

// ListID implements model.Item.
func (w *wrappedItem) ListID() model.ListID {
	return model.ListID(w.i.ListID)
}

// Text implements model.Item.
func (w *wrappedItem) Text() string {
	return w.i.Text
}

// Position implements model.Item.
func (w *wrappedItem) Position() int {
	return w.i.Position
}

// CreatedAt implements model.Item.
func (w *wrappedItem) CreatedAt() time.Time {
	return w.i.CreatedAt
}

// UpdatedAt implements model.Item.
func (w *wrappedItem) UpdatedAt() time.Time {
	return w.i.UpdatedAt
}

var _ model.Item = &wrappedItem{}
