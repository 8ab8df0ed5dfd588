package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/bornholm/checklist/internal/core/model"
	"github.com/bornholm/checklist/internal/core/port"
	"github.com/bornholm/checklist/internal/metrics"
	pkgErrors "github.com/pkg/errors"
)

var (
	ErrEmptyText     = errors.New("empty text")
	ErrTextTooLong   = errors.New("text too long")
	ErrNameTooLong   = errors.New("name too long")
	ErrDuplicateItem = errors.New("duplicate item")
)

const (
	MaxNameLength = 200
	MaxTextLength = 500
)

type ListManagerOptions struct {
	Store port.Store
}

type ListManagerOptionFunc func(opts *ListManagerOptions)

func NewListManagerOptions(funcs ...ListManagerOptionFunc) *ListManagerOptions {
	opts := &ListManagerOptions{}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

// ListManager orchestrates list and item operations on top of the store:
// input normalization, validation and usage metrics. It holds no state of
// its own; every operation is an independent request/response cycle.
type ListManager struct {
	store port.Store
}

func (m *ListManager) Store() port.Store {
	return m.store
}

func (m *ListManager) QueryLists(ctx context.Context, opts port.QueryListsOptions) ([]model.List, int64, error) {
	lists, total, err := m.store.QueryLists(ctx, opts)
	if err != nil {
		return nil, 0, pkgErrors.WithStack(err)
	}

	return lists, total, nil
}

func (m *ListManager) GetList(ctx context.Context, id model.ListID) (model.List, error) {
	list, err := m.store.GetListByID(ctx, id)
	if err != nil {
		return nil, pkgErrors.WithStack(err)
	}

	return list, nil
}

// CreateList creates a new list with a generated identifier. An empty name is
// allowed; views render a fallback label for it.
func (m *ListManager) CreateList(ctx context.Context, name string) (model.List, error) {
	name = strings.TrimSpace(name)

	if len([]rune(name)) > MaxNameLength {
		return nil, pkgErrors.WithStack(ErrNameTooLong)
	}

	list, err := m.store.CreateList(ctx, name)
	if err != nil {
		return nil, pkgErrors.WithStack(err)
	}

	metrics.TotalCreatedLists.Inc()

	slog.DebugContext(ctx, "list created", slog.String("list_id", string(list.ID())))

	return list, nil
}

// DeleteList removes a list and, by cascade, all of its items. Deleting an
// absent list is a safe no-op.
func (m *ListManager) DeleteList(ctx context.Context, id model.ListID) error {
	if err := m.store.DeleteList(ctx, id); err != nil {
		return pkgErrors.WithStack(err)
	}

	metrics.TotalDeletedLists.Inc()

	slog.DebugContext(ctx, "list deleted", slog.String("list_id", string(id)))

	return nil
}

// AddItem appends a new item to the list. It fails with port.ErrNotFound when
// the list is absent and with a validation error when the text is empty,
// oversized or already present in the list.
func (m *ListManager) AddItem(ctx context.Context, listID model.ListID, text string) (model.Item, error) {
	text, err := m.validateText(text)
	if err != nil {
		return nil, pkgErrors.WithStack(err)
	}

	if err := m.assertNoDuplicate(ctx, listID, "", text); err != nil {
		return nil, pkgErrors.WithStack(err)
	}

	item, err := m.store.CreateItem(ctx, listID, text)
	if err != nil {
		return nil, pkgErrors.WithStack(err)
	}

	metrics.TotalCreatedItems.Inc()

	return item, nil
}

// EditItem replaces the item's text. Identifier, owning list and position are
// never touched. An item id that does not belong to listID surfaces
// port.ErrNotFound.
func (m *ListManager) EditItem(ctx context.Context, listID model.ListID, itemID model.ItemID, text string) (model.Item, error) {
	text, err := m.validateText(text)
	if err != nil {
		return nil, pkgErrors.WithStack(err)
	}

	if _, err := m.getOwnedItem(ctx, listID, itemID); err != nil {
		return nil, pkgErrors.WithStack(err)
	}

	if err := m.assertNoDuplicate(ctx, listID, itemID, text); err != nil {
		return nil, pkgErrors.WithStack(err)
	}

	item, err := m.store.UpdateItemText(ctx, itemID, text)
	if err != nil {
		return nil, pkgErrors.WithStack(err)
	}

	metrics.TotalEditedItems.Inc()

	return item, nil
}

// RemoveItem deletes the item. Removing an already absent item is a safe
// no-op so a stale delete button never errors.
func (m *ListManager) RemoveItem(ctx context.Context, listID model.ListID, itemID model.ItemID) error {
	if _, err := m.getOwnedItem(ctx, listID, itemID); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil
		}

		return pkgErrors.WithStack(err)
	}

	if err := m.store.DeleteItem(ctx, itemID); err != nil {
		return pkgErrors.WithStack(err)
	}

	metrics.TotalDeletedItems.Inc()

	return nil
}

func (m *ListManager) GetItem(ctx context.Context, listID model.ListID, itemID model.ItemID) (model.Item, error) {
	item, err := m.getOwnedItem(ctx, listID, itemID)
	if err != nil {
		return nil, pkgErrors.WithStack(err)
	}

	return item, nil
}

func (m *ListManager) getOwnedItem(ctx context.Context, listID model.ListID, itemID model.ItemID) (model.Item, error) {
	item, err := m.store.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, pkgErrors.WithStack(err)
	}

	if item.ListID() != listID {
		return nil, pkgErrors.WithStack(port.ErrNotFound)
	}

	return item, nil
}

func (m *ListManager) validateText(text string) (string, error) {
	text = strings.TrimSpace(text)

	if text == "" {
		return "", pkgErrors.WithStack(ErrEmptyText)
	}

	if len([]rune(text)) > MaxTextLength {
		return "", pkgErrors.WithStack(ErrTextTooLong)
	}

	return text, nil
}

func (m *ListManager) assertNoDuplicate(ctx context.Context, listID model.ListID, self model.ItemID, text string) error {
	list, err := m.store.GetListByID(ctx, listID)
	if err != nil {
		return pkgErrors.WithStack(err)
	}

	for _, item := range list.Items() {
		if item.ID() == self {
			continue
		}

		if strings.EqualFold(item.Text(), text) {
			return pkgErrors.WithStack(ErrDuplicateItem)
		}
	}

	return nil
}

func NewListManager(funcs ...ListManagerOptionFunc) *ListManager {
	opts := NewListManagerOptions(funcs...)

	return &ListManager{
		store: opts.Store,
	}
}

func WithListManagerStore(store port.Store) ListManagerOptionFunc {
	return func(opts *ListManagerOptions) {
		opts.Store = store
	}
}
