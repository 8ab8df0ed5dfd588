package memory

import (
	"context"
	"testing"

	"github.com/bornholm/checklist/internal/core/model"
	"github.com/bornholm/checklist/internal/core/port"
	"github.com/pkg/errors"
)

func TestStoreItemOrdering(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	list, err := store.CreateList(ctx, "Groceries")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	texts := []string{"Milk", "Eggs", "Bread"}
	for _, text := range texts {
		if _, err := store.CreateItem(ctx, list.ID(), text); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	fetched, err := store.GetListByID(ctx, list.ID())
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

		if e, g := idx+1, item.Position(); e != g {
			t.Errorf("fetched.Items()[%d].Position(): expected '%d', got '%d'", idx, e, g)
		}
	}
}

func TestStoreDeleteListCascade(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	list, err := store.CreateList(ctx, "Trip")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	item, err := store.CreateItem(ctx, list.ID(), "Passport")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if err := store.DeleteList(ctx, list.ID()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := store.GetListByID(ctx, list.ID()); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("expected port.ErrNotFound, got '%v'", err)
	}

	if _, err := store.GetItemByID(ctx, item.ID()); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("expected port.ErrNotFound, got '%v'", err)
	}

	totalItems, err := store.CountItems(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(0), totalItems; e != g {
		t.Errorf("totalItems: expected '%d', got '%d'", e, g)
	}
}

func TestStoreNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	if _, err := store.GetListByID(ctx, model.ListID("missing")); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("GetListByID: expected port.ErrNotFound, got '%v'", err)
	}

	if _, err := store.CreateItem(ctx, model.ListID("missing"), "Milk"); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("CreateItem: expected port.ErrNotFound, got '%v'", err)
	}

	if err := store.DeleteItem(ctx, model.ItemID("missing")); err != nil {
		t.Errorf("DeleteItem: expected nil, got '%v'", err)
	}

	if err := store.DeleteList(ctx, model.ListID("missing")); err != nil {
		t.Errorf("DeleteList: expected nil, got '%v'", err)
	}
}
