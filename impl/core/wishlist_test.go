package core

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"saleportal/entity"
	"saleportal/internal/erp"
)

func TestDedupe(t *testing.T) {
	tests := []struct {
		name string
		ids  []int64
		want []int64
	}{
		{"nil input", nil, nil},
		{"already unique", []int64{1, 2, 3}, []int64{1, 2, 3}},
		{"duplicates keep first occurrence", []int64{3, 1, 3, 2, 1}, []int64{3, 1, 2}},
		{"zero and negative dropped", []int64{0, -1, 2}, []int64{2}},
		{"all invalid", []int64{0, 0, -5}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dedupe(tt.ids)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("dedupe(%v) = %v, want %v", tt.ids, got, tt.want)
			}
		})
	}
}

// wishlistGateway serves a product catalog and a set of existing wishlist
// entries keyed by product id.
func wishlistGateway(catalog map[int64]entity.Product, existing map[int64]int64) *fakeGateway {
	return &fakeGateway{
		searchFn: func(model string, filter erp.Filter, offset, limit int) ([]int64, error) {
			switch model {
			case modelProduct:
				var found []int64
				for id := range catalog {
					found = append(found, id)
				}
				return found, nil
			case modelWishlist:
				var found []int64
				for _, entryID := range existing {
					found = append(found, entryID)
				}
				return found, nil
			}
			return nil, nil
		},
		readFn: func(model string, ids []int64, fields []string, out any) error {
			switch model {
			case modelProduct:
				products := out.(*[]entity.Product)
				for _, id := range ids {
					if p, ok := catalog[id]; ok {
						*products = append(*products, p)
					}
				}
			case modelWishlist:
				entries := out.(*[]entity.WishlistEntry)
				for productID, entryID := range existing {
					*entries = append(*entries, entity.WishlistEntry{
						ID: entryID, PartyID: 5, ProductID: productID,
					})
				}
			}
			return nil
		},
	}
}

func TestWishlistAdd_RequiresLogin(t *testing.T) {
	gw := &fakeGateway{}
	c := newTestCore(gw)

	for _, scope := range []entity.Scope{
		{},
		{Authenticated: true}, // no customer attached
	} {
		out := c.WishlistAdd(context.Background(), scope, []int64{1})
		if out.Result || len(out.Messages.Warning) != 1 {
			t.Errorf("WishlistAdd(%+v) outcome = %+v, want login warning", scope, out)
		}
	}
	if len(gw.calls) != 0 {
		t.Errorf("gateway was called %v, want no calls", gw.calls)
	}
}

func TestWishlistAdd_EmptyInput(t *testing.T) {
	c := newTestCore(&fakeGateway{})

	out := c.WishlistAdd(context.Background(), customerScope, []int64{0, -2})
	if out.Result || len(out.Messages.Success) != 0 || len(out.Messages.Warning) != 0 {
		t.Errorf("outcome = %+v, want empty no-op outcome", out)
	}
}

func TestWishlistAdd_SkipsExisting(t *testing.T) {
	catalog := map[int64]entity.Product{
		1: {ID: 1, Name: "Drill"},
		2: {ID: 2, Name: "Hammer"},
	}
	gw := wishlistGateway(catalog, map[int64]int64{2: 77})

	var created []entity.WishlistEntry
	gw.createFn = func(model string, records any) ([]int64, error) {
		created = records.([]entity.WishlistEntry)
		return []int64{101}, nil
	}
	c := newTestCore(gw)

	out := c.WishlistAdd(context.Background(), customerScope, []int64{1, 2, 1})
	if !out.Result {
		t.Fatalf("Result = false, warnings %v", out.Messages.Warning)
	}
	if len(created) != 1 || created[0].ProductID != 1 || created[0].PartyID != 5 {
		t.Errorf("created = %+v, want one entry for product 1 party 5", created)
	}
	if len(out.Messages.Warning) != 1 || !strings.Contains(out.Messages.Warning[0], "Hammer") {
		t.Errorf("warnings = %v, want Hammer duplicate warning", out.Messages.Warning)
	}
	if len(out.Messages.Success) != 1 || !strings.Contains(out.Messages.Success[0], "1 product was") {
		t.Errorf("success messages = %v, want singular count", out.Messages.Success)
	}
}

func TestWishlistAdd_NothingSellable(t *testing.T) {
	gw := wishlistGateway(map[int64]entity.Product{}, nil)
	c := newTestCore(gw)

	out := c.WishlistAdd(context.Background(), customerScope, []int64{9})
	if out.Result {
		t.Error("Result = true, want false")
	}
	if len(out.Messages.Warning) != 1 {
		t.Errorf("warnings = %v, want one availability warning", out.Messages.Warning)
	}
	for _, call := range gw.calls {
		if strings.HasPrefix(call, "create") {
			t.Errorf("create attempted with nothing sellable: %v", gw.calls)
		}
	}
}

func TestWishlistAdd_AllAlreadyPresent(t *testing.T) {
	catalog := map[int64]entity.Product{1: {ID: 1, Name: "Drill"}}
	gw := wishlistGateway(catalog, map[int64]int64{1: 77})
	c := newTestCore(gw)

	out := c.WishlistAdd(context.Background(), customerScope, []int64{1})
	if out.Result {
		t.Error("Result = true, want false when every product is a duplicate")
	}
	if len(out.Messages.Warning) != 1 {
		t.Errorf("warnings = %v, want one duplicate warning", out.Messages.Warning)
	}
}

func TestWishlistRemove_OnlyOwnEntries(t *testing.T) {
	var deleted []int64
	gw := &fakeGateway{
		// Entry 30 belongs to someone else; the ownership search drops it.
		searchFn: func(model string, filter erp.Filter, offset, limit int) ([]int64, error) {
			return []int64{10, 20}, nil
		},
		deleteFn: func(model string, ids []int64) error {
			deleted = ids
			return nil
		},
	}
	c := newTestCore(gw)

	out := c.WishlistRemove(context.Background(), customerScope, []int64{10, 20, 30})
	if !out.Result {
		t.Fatalf("Result = false, warnings %v", out.Messages.Warning)
	}
	if !reflect.DeepEqual(deleted, []int64{10, 20}) {
		t.Errorf("deleted = %v, want [10 20]", deleted)
	}
	if len(out.Messages.Success) != 1 || !strings.Contains(out.Messages.Success[0], "2 entries were") {
		t.Errorf("success messages = %v, want plural count", out.Messages.Success)
	}
}

func TestWishlistRemove_NothingOwned(t *testing.T) {
	gw := &fakeGateway{
		searchFn: func(model string, filter erp.Filter, offset, limit int) ([]int64, error) {
			return nil, nil
		},
	}
	c := newTestCore(gw)

	out := c.WishlistRemove(context.Background(), customerScope, []int64{30})
	if out.Result {
		t.Error("Result = true, want false")
	}
	if len(out.Messages.Warning) != 1 {
		t.Errorf("warnings = %v, want one", out.Messages.Warning)
	}
	for _, call := range gw.calls {
		if strings.HasPrefix(call, "delete") {
			t.Errorf("delete attempted with nothing owned: %v", gw.calls)
		}
	}
}
