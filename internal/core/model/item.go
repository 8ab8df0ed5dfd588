package model

import (
	"time"

	"github.com/rs/xid"
)

type ItemID string

func NewItemID() ItemID {
	return ItemID(xid.New().String())
}

// Item is a single line of text owned by exactly one list for its entire
// lifetime. Position is an insertion-order hint, assigned once at creation
// and never renumbered.
type Item interface {
	WithID[ItemID]
	WithLifecycle

	ListID() ListID
	Text() string
	Position() int
}

type ReadOnlyItem struct {
	id        ItemID
	listID    ListID
	text      string
	position  int
	createdAt time.Time
	updatedAt time.Time
}

// ID implements Item.
func (i *ReadOnlyItem) ID() ItemID {
	return i.id
}

// ListID implements Item.
func (i *ReadOnlyItem) ListID() ListID {
	return i.listID
}

// Text implements Item.
func (i *ReadOnlyItem) Text() string {
	return i.text
}

// Position implements Item.
func (i *ReadOnlyItem) Position() int {
	return i.position
}

// CreatedAt implements Item.
func (i *ReadOnlyItem) CreatedAt() time.Time {
	return i.createdAt
}

// UpdatedAt implements Item.
func (i *ReadOnlyItem) UpdatedAt() time.Time {
	return i.updatedAt
}

func NewReadOnlyItem(id ItemID, listID ListID, text string, position int, createdAt time.Time, updatedAt time.Time) *ReadOnlyItem {
	return &ReadOnlyItem{
		id:        id,
		listID:    listID,
		text:      text,
		position:  position,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

var _ Item = &ReadOnlyItem{}
