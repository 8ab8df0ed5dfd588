package port

import (
	"context"
	"errors"

	"github.com/bornholm/checklist/internal/core/model"
)

var (
	ErrNotFound = errors.New("not found")
)

// Store is the durable persistence contract for lists and their items.
// Deleting a list cascades to its items; deleting an absent item or list is
// a safe no-op. Referencing a nonexistent list surfaces ErrNotFound.
type Store interface {
	QueryLists(ctx context.Context, opts QueryListsOptions) ([]model.List, int64, error)
	GetListByID(ctx context.Context, id model.ListID) (model.List, error)
	CreateList(ctx context.Context, name string) (model.List, error)
	DeleteList(ctx context.Context, id model.ListID) error

	CreateItem(ctx context.Context, listID model.ListID, text string) (model.Item, error)
	GetItemByID(ctx context.Context, id model.ItemID) (model.Item, error)
	UpdateItemText(ctx context.Context, id model.ItemID, text string) (model.Item, error)
	DeleteItem(ctx context.Context, id model.ItemID) error

	CountLists(ctx context.Context) (int64, error)
	CountItems(ctx context.Context) (int64, error)
}

type QueryListsOptions struct {
	Page  *int
	Limit *int
}
