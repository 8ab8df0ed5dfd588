package gorm

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/bornholm/checklist/internal/core/model"
	"github.com/bornholm/checklist/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Store struct {
	getDatabase func(ctx context.Context) (*gorm.DB, error)
}

// QueryLists implements port.Store.
func (s *Store) QueryLists(ctx context.Context, opts port.QueryListsOptions) ([]model.List, int64, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	var total int64

	if err := db.Model(&List{}).Count(&total).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	query := db.Preload("Items", withItemOrder).Order("created_at desc, id desc")

	if opts.Limit != nil {
		query = query.Limit(*opts.Limit)
	}

	if opts.Page != nil && opts.Limit != nil {
		query = query.Offset(*opts.Page * *opts.Limit)
	}

	var lists []*List

	if err := query.Find(&lists).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	wrapped := make([]model.List, 0, len(lists))
	for _, l := range lists {
		wrapped = append(wrapped, &wrappedList{l})
	}

	return wrapped, total, nil
}

// GetListByID implements port.Store.
func (s *Store) GetListByID(ctx context.Context, id model.ListID) (model.List, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var list List

	if err := db.Preload("Items", withItemOrder).First(&list, "id = ?", string(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(port.ErrNotFound)
		}

		return nil, errors.WithStack(err)
	}

	return &wrappedList{&list}, nil
}

// CreateList implements port.Store.
func (s *Store) CreateList(ctx context.Context, name string) (model.List, error) {
	list := &List{
		ID:   string(model.NewListID()),
		Name: name,
	}

	err := s.withRetry(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if res := tx.Create(list); res.Error != nil {
			return errors.WithStack(res.Error)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedList{list}, nil
}

// DeleteList implements port.Store.
func (s *Store) DeleteList(ctx context.Context, id model.ListID) error {
	err := s.withRetry(ctx, func(ctx context.Context, tx *gorm.DB) error {
		var list List
		if err := tx.First(&list, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}

			return errors.WithStack(err)
		}

		if err := tx.Select(clause.Associations).Delete(&list).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// CreateItem implements port.Store.
func (s *Store) CreateItem(ctx context.Context, listID model.ListID, text string) (model.Item, error) {
	item := &Item{
		ID:     string(model.NewItemID()),
		ListID: string(listID),
		Text:   text,
	}

	err := s.withRetry(ctx, func(ctx context.Context, tx *gorm.DB) error {
		var list List
		if err := tx.First(&list, "id = ?", string(listID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		var maxPosition int
		err := tx.Model(&Item{}).
			Where("list_id = ?", string(listID)).
			Select("coalesce(max(position), 0)").
			Scan(&maxPosition).Error
		if err != nil {
			return errors.WithStack(err)
		}

		item.Position = maxPosition + 1

		if res := tx.Create(item); res.Error != nil {
			return errors.WithStack(res.Error)
		}

		return s.touchList(tx, listID)
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedItem{item}, nil
}

// GetItemByID implements port.Store.
func (s *Store) GetItemByID(ctx context.Context, id model.ItemID) (model.Item, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var item Item

	if err := db.First(&item, "id = ?", string(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(port.ErrNotFound)
		}

		return nil, errors.WithStack(err)
	}

	return &wrappedItem{&item}, nil
}

// UpdateItemText implements port.Store.
func (s *Store) UpdateItemText(ctx context.Context, id model.ItemID, text string) (model.Item, error) {
	var item Item

	err := s.withRetry(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := tx.First(&item, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		item.Text = text

		if err := tx.Model(&item).Update("text", text).Error; err != nil {
			return errors.WithStack(err)
		}

		return s.touchList(tx, model.ListID(item.ListID))
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedItem{&item}, nil
}

// DeleteItem implements port.Store.
func (s *Store) DeleteItem(ctx context.Context, id model.ItemID) error {
	err := s.withRetry(ctx, func(ctx context.Context, tx *gorm.DB) error {
		var item Item
		if err := tx.First(&item, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}

			return errors.WithStack(err)
		}

		if err := tx.Delete(&item).Error; err != nil {
			return errors.WithStack(err)
		}

		return s.touchList(tx, model.ListID(item.ListID))
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// CountLists implements port.Store.
func (s *Store) CountLists(ctx context.Context) (int64, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	var total int64

	if err := db.Model(&List{}).Count(&total).Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return total, nil
}

// CountItems implements port.Store.
func (s *Store) CountItems(ctx context.Context) (int64, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	var total int64

	if err := db.Model(&Item{}).Count(&total).Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return total, nil
}

// touchList marks the owning list as recently modified so "updated" labels
// follow item mutations.
func (s *Store) touchList(tx *gorm.DB, id model.ListID) error {
	err := tx.Model(&List{}).
		Where("id = ?", string(id)).
		Update("updated_at", time.Now().UTC()).Error
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (s *Store) withRetry(ctx context.Context, fn func(ctx context.Context, tx *gorm.DB) error, codes ...sqlite3.ErrorCode) error {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	backoff := 500 * time.Millisecond
	maxRetries := 10
	retries := 0

	for {
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := fn(ctx, tx); err != nil {
				return errors.WithStack(err)
			}

			return nil
		})
		if err != nil {
			if retries >= maxRetries {
				return errors.WithStack(err)
			}

			var sqliteErr *sqlite3.Error
			if errors.As(err, &sqliteErr) {
				if !slices.Contains(codes, sqliteErr.Code()) {
					return errors.WithStack(err)
				}

				slog.DebugContext(ctx, "transaction failed, will retry", slog.Int("retries", retries), slog.Duration("backoff", backoff), slog.Any("error", errors.WithStack(err)))

				retries++
				time.Sleep(backoff)
				backoff *= 2
				continue
			}

			return errors.WithStack(err)
		}

		return nil
	}
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		getDatabase: createGetDatabase(db),
	}
}

var _ port.Store = &Store{}

func withItemOrder(db *gorm.DB) *gorm.DB {
	return db.Order("position asc, id asc")
}

func createGetDatabase(db *gorm.DB) func(ctx context.Context) (*gorm.DB, error) {
	var (
		migrateOnce sync.Once
		migrateErr  error
	)

	return func(ctx context.Context) (*gorm.DB, error) {
		migrateOnce.Do(func() {
			models := []any{
				&List{},
				&Item{},
			}

			if err := db.AutoMigrate(models...); err != nil {
				migrateErr = errors.WithStack(err)
				return
			}
		})
		if migrateErr != nil {
			return nil, errors.WithStack(migrateErr)
		}

		return db.WithContext(ctx), nil
	}
}
