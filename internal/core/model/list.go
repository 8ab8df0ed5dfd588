package model

import (
	"time"

	"github.com/rs/xid"
)

type ListID string

func NewListID() ListID {
	return ListID(xid.New().String())
}

// List is a named, uniquely identified collection of items. Its identifier
// is the externally visible reference used in URLs and by the browser-local
// visited-lists record.
type List interface {
	WithID[ListID]
	WithLifecycle

	Name() string
	Items() []Item
}

type ReadOnlyList struct {
	id        ListID
	name      string
	items     []Item
	createdAt time.Time
	updatedAt time.Time
}

// ID implements List.
func (l *ReadOnlyList) ID() ListID {
	return l.id
}

// Name implements List.
func (l *ReadOnlyList) Name() string {
	return l.name
}

// Items implements List.
func (l *ReadOnlyList) Items() []Item {
	return l.items
}

// CreatedAt implements List.
func (l *ReadOnlyList) CreatedAt() time.Time {
	return l.createdAt
}

// UpdatedAt implements List.
func (l *ReadOnlyList) UpdatedAt() time.Time {
	return l.updatedAt
}

func NewReadOnlyList(id ListID, name string, items []Item, createdAt time.Time, updatedAt time.Time) *ReadOnlyList {
	return &ReadOnlyList{
		id:        id,
		name:      name,
		items:     items,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

var _ List = &ReadOnlyList{}
