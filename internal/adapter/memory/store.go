package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/bornholm/checklist/internal/core/model"
	"github.com/bornholm/checklist/internal/core/port"
	"github.com/pkg/errors"
)

type storedList struct {
	id        model.ListID
	name      string
	createdAt time.Time
	updatedAt time.Time
}

type storedItem struct {
	id        model.ItemID
	listID    model.ListID
	text      string
	position  int
	createdAt time.Time
	updatedAt time.Time
}

// Store is an in-memory port.Store with the same visible semantics as the
// persistent one: insertion-ordered items, cascade on list deletion,
// idempotent deletes. Used by tests and throwaway environments.
type Store struct {
	mutex sync.RWMutex
	lists map[model.ListID]*storedList
	items map[model.ItemID]*storedItem
}

// QueryLists implements port.Store.
func (s *Store) QueryLists(ctx context.Context, opts port.QueryListsOptions) ([]model.List, int64, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	lists := make([]*storedList, 0, len(s.lists))
	for _, l := range s.lists {
		lists = append(lists, l)
	}

	slices.SortFunc(lists, func(a, b *storedList) int {
		if c := b.createdAt.Compare(a.createdAt); c != 0 {
			return c
		}
		if a.id > b.id {
			return -1
		}
		if a.id < b.id {
			return 1
		}
		return 0
	})

	total := int64(len(lists))

	if opts.Page != nil && opts.Limit != nil {
		offset := *opts.Page * *opts.Limit
		if offset > len(lists) {
			offset = len(lists)
		}
		lists = lists[offset:]
	}

	if opts.Limit != nil && len(lists) > *opts.Limit {
		lists = lists[:*opts.Limit]
	}

	wrapped := make([]model.List, 0, len(lists))
	for _, l := range lists {
		wrapped = append(wrapped, s.toModelList(l))
	}

	return wrapped, total, nil
}

// GetListByID implements port.Store.
func (s *Store) GetListByID(ctx context.Context, id model.ListID) (model.List, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	list, exists := s.lists[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return s.toModelList(list), nil
}

// CreateList implements port.Store.
func (s *Store) CreateList(ctx context.Context, name string) (model.List, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := time.Now().UTC()

	list := &storedList{
		id:        model.NewListID(),
		name:      name,
		createdAt: now,
		updatedAt: now,
	}

	s.lists[list.id] = list

	return s.toModelList(list), nil
}

// DeleteList implements port.Store.
func (s *Store) DeleteList(ctx context.Context, id model.ListID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.lists, id)

	for itemID, item := range s.items {
		if item.listID == id {
			delete(s.items, itemID)
		}
	}

	return nil
}

// CreateItem implements port.Store.
func (s *Store) CreateItem(ctx context.Context, listID model.ListID, text string) (model.Item, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	list, exists := s.lists[listID]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	maxPosition := 0
	for _, item := range s.items {
		if item.listID == listID && item.position > maxPosition {
			maxPosition = item.position
		}
	}

	now := time.Now().UTC()

	item := &storedItem{
		id:        model.NewItemID(),
		listID:    listID,
		text:      text,
		position:  maxPosition + 1,
		createdAt: now,
		updatedAt: now,
	}

	s.items[item.id] = item
	list.updatedAt = now

	return s.toModelItem(item), nil
}

// GetItemByID implements port.Store.
func (s *Store) GetItemByID(ctx context.Context, id model.ItemID) (model.Item, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	item, exists := s.items[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return s.toModelItem(item), nil
}

// UpdateItemText implements port.Store.
func (s *Store) UpdateItemText(ctx context.Context, id model.ItemID, text string) (model.Item, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	item, exists := s.items[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	now := time.Now().UTC()

	item.text = text
	item.updatedAt = now

	if list, exists := s.lists[item.listID]; exists {
		list.updatedAt = now
	}

	return s.toModelItem(item), nil
}

// DeleteItem implements port.Store.
func (s *Store) DeleteItem(ctx context.Context, id model.ItemID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	item, exists := s.items[id]
	if !exists {
		return nil
	}

	delete(s.items, id)

	if list, exists := s.lists[item.listID]; exists {
		list.updatedAt = time.Now().UTC()
	}

	return nil
}

// CountLists implements port.Store.
func (s *Store) CountLists(ctx context.Context) (int64, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return int64(len(s.lists)), nil
}

// CountItems implements port.Store.
func (s *Store) CountItems(ctx context.Context) (int64, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return int64(len(s.items)), nil
}

func (s *Store) toModelList(list *storedList) model.List {
	items := make([]*storedItem, 0)
	for _, item := range s.items {
		if item.listID == list.id {
			items = append(items, item)
		}
	}

	slices.SortFunc(items, func(a, b *storedItem) int {
		if a.position != b.position {
			return a.position - b.position
		}
		if a.id < b.id {
			return -1
		}
		if a.id > b.id {
			return 1
		}
		return 0
	})

	wrapped := make([]model.Item, 0, len(items))
	for _, item := range items {
		wrapped = append(wrapped, s.toModelItem(item))
	}

	return model.NewReadOnlyList(list.id, list.name, wrapped, list.createdAt, list.updatedAt)
}

func (s *Store) toModelItem(item *storedItem) model.Item {
	return model.NewReadOnlyItem(item.id, item.listID, item.text, item.position, item.createdAt, item.updatedAt)
}

func NewStore() *Store {
	return &Store{
		lists: make(map[model.ListID]*storedList),
		items: make(map[model.ItemID]*storedItem),
	}
}

var _ port.Store = &Store{}
