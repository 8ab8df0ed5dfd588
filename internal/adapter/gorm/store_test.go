package gorm

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bornholm/checklist/internal/core/model"
	"github.com/bornholm/checklist/internal/core/port"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	_ "github.com/ncruces/go-sqlite3/embed"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "checklist.sqlite")

	db, err := gorm.Open(gormlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	internalDB, err := db.DB()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	internalDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA journal_mode=wal; PRAGMA foreign_keys=on; PRAGMA busy_timeout=5000").Error; err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return NewStore(db)
}

func TestStoreListLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	list, err := store.CreateList(ctx, "Groceries")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if list.ID() == "" {
		t.Error("list.ID() should not be empty")
	}

	if e, g := "Groceries", list.Name(); e != g {
		t.Errorf("list.Name(): expected '%s', got '%s'", e, g)
	}

	fetched, err := store.GetListByID(ctx, list.ID())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 0, len(fetched.Items()); e != g {
		t.Errorf("len(fetched.Items()): expected '%d', got '%d'", e, g)
	}

	texts := []string{"Milk", "Eggs", "Bread"}
	items := make([]model.Item, 0, len(texts))

	for _, text := range texts {
		item, err := store.CreateItem(ctx, list.ID(), text)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		items = append(items, item)
	}

	for idx, item := range items {
		if e, g := idx+1, item.Position(); e != g {
			t.Errorf("items[%d].Position(): expected '%d', got '%d'", idx, e, g)
		}
	}

	fetched, err = store.GetListByID(ctx, list.ID())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := len(texts), len(fetched.Items()); e != g {
		t.Fatalf("len(fetched.Items()): expected '%d', got '%d'", e, g)
	}

	for idx, item := range fetched.Items() {
		if e, g := texts[idx], item.Text(); e != g {
			t.Errorf("fetched.Items()[%d].Text(): expected '%s', got '%s'", idx, e, g)
		}
	}

	// Editing text must not move the item.
	updated, err := store.UpdateItemText(ctx, items[1].ID(), "Organic Eggs")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Organic Eggs", updated.Text(); e != g {
		t.Errorf("updated.Text(): expected '%s', got '%s'", e, g)
	}

	if e, g := 2, updated.Position(); e != g {
		t.Errorf("updated.Position(): expected '%d', got '%d'", e, g)
	}

	if err := store.DeleteItem(ctx, items[0].ID()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	fetched, err = store.GetListByID(ctx, list.ID())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	remaining := fetched.Items()

	if e, g := 2, len(remaining); e != g {
		t.Fatalf("len(remaining): expected '%d', got '%d'", e, g)
	}

	if e, g := "Organic Eggs", remaining[0].Text(); e != g {
		t.Errorf("remaining[0].Text(): expected '%s', got '%s'", e, g)
	}

	if e, g := "Bread", remaining[1].Text(); e != g {
		t.Errorf("remaining[1].Text(): expected '%s', got '%s'", e, g)
	}

	// Surviving items keep their positions.
	if e, g := 2, remaining[0].Position(); e != g {
		t.Errorf("remaining[0].Position(): expected '%d', got '%d'", e, g)
	}

	if e, g := 3, remaining[1].Position(); e != g {
		t.Errorf("remaining[1].Position(): expected '%d', got '%d'", e, g)
	}

	lists, total, err := store.QueryLists(ctx, port.QueryListsOptions{})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(1), total; e != g {
		t.Errorf("total: expected '%d', got '%d'", e, g)
	}

	if e, g := 1, len(lists); e != g {
		t.Errorf("len(lists): expected '%d', got '%d'", e, g)
	}
}

func TestStoreDeleteListCascade(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	list, err := store.CreateList(ctx, "Trip")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	var firstItem model.Item

	for _, text := range []string{"Passport", "Tickets", "Charger"} {
		item, err := store.CreateItem(ctx, list.ID(), text)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if firstItem == nil {
			firstItem = item
		}
	}

	totalItems, err := store.CountItems(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(3), totalItems; e != g {
		t.Errorf("totalItems: expected '%d', got '%d'", e, g)
	}

	if err := store.DeleteList(ctx, list.ID()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := store.GetListByID(ctx, list.ID()); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("expected port.ErrNotFound, got '%v'", err)
	}

	if _, err := store.GetItemByID(ctx, firstItem.ID()); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("expected port.ErrNotFound, got '%v'", err)
	}

	totalItems, err = store.CountItems(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(0), totalItems; e != g {
		t.Errorf("totalItems: expected '%d', got '%d'", e, g)
	}

	totalLists, err := store.CountLists(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(0), totalLists; e != g {
		t.Errorf("totalLists: expected '%d', got '%d'", e, g)
	}
}

func TestStoreNotFound(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if _, err := store.GetListByID(ctx, model.ListID("missing")); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("GetListByID: expected port.ErrNotFound, got '%v'", err)
	}

	if _, err := store.CreateItem(ctx, model.ListID("missing"), "Milk"); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("CreateItem: expected port.ErrNotFound, got '%v'", err)
	}

	if _, err := store.UpdateItemText(ctx, model.ItemID("missing"), "Milk"); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("UpdateItemText: expected port.ErrNotFound, got '%v'", err)
	}

	// Deletes are idempotent.
	if err := store.DeleteItem(ctx, model.ItemID("missing")); err != nil {
		t.Errorf("DeleteItem: expected nil, got '%v'", err)
	}

	if err := store.DeleteList(ctx, model.ListID("missing")); err != nil {
		t.Errorf("DeleteList: expected nil, got '%v'", err)
	}
}

func TestStorePositionsRestartPerList(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	first, err := store.CreateList(ctx, "First")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	second, err := store.CreateList(ctx, "Second")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	for i := 0; i < 3; i++ {
		if _, err := store.CreateItem(ctx, first.ID(), string(model.NewItemID())); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	item, err := store.CreateItem(ctx, second.ID(), "Solo")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, item.Position(); e != g {
		t.Errorf("item.Position(): expected '%d', got '%d'", e, g)
	}
}
