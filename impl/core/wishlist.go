package core

import (
	"context"
	"log/slog"

	"saleportal/entity"
	"saleportal/internal/erp"
	"saleportal/internal/lib/sl"
)

// WishlistAdd saves products to the caller's wishlist. Input references
// are de-duplicated, restricted to products currently sellable in the
// configured shops, and checked against existing entries so a (party,
// product) pair never appears twice. Skips are reported individually.
func (c *Core) WishlistAdd(ctx context.Context, scope entity.Scope, productIDs []int64) *entity.Outcome {
	out := &entity.Outcome{}

	if !scope.Authenticated || scope.PartyID == 0 {
		out.Warnf("Please log in to use your wishlist.")
		return out
	}

	ids := dedupe(productIDs)
	if len(ids) == 0 {
		return out
	}

	sellable, err := c.sellableProducts(ctx, ids)
	if err != nil {
		c.log.With(sl.Err(err)).Error("failed to load products for wishlist")
		out.Warnf("Products could not be loaded. Please try again.")
		return out
	}
	if len(sellable) == 0 {
		out.Warnf("None of the selected products are available.")
		return out
	}

	existing, err := c.wishlistProducts(ctx, scope.PartyID, ids)
	if err != nil {
		c.log.With(sl.Err(err)).Error("failed to load wishlist entries")
		out.Warnf("Your wishlist could not be loaded. Please try again.")
		return out
	}

	var records []entity.WishlistEntry
	for _, product := range sellable {
		if existing[product.ID] {
			out.Warnf("%s is already in your wishlist.", product.Name)
			continue
		}
		records = append(records, entity.WishlistEntry{
			PartyID:   scope.PartyID,
			ProductID: product.ID,
			Quantity:  1,
		})
	}
	if len(records) == 0 {
		return out
	}

	if _, err := c.gateway.Create(ctx, modelWishlist, records); err != nil {
		c.log.With(sl.Err(err)).Error("failed to create wishlist entries")
		out.Warnf("Your wishlist could not be updated. Please try again.")
		return out
	}

	n := len(records)
	c.log.Debug("wishlist entries created",
		slog.Int64("party", scope.PartyID), slog.Int("count", n))

	out.Result = true
	out.Successf("%d %s added to your wishlist.", n, pluralize(n, "product was", "products were"))
	return out
}

// WishlistRemove deletes the caller's wishlist entries. Entry ids that do
// not belong to the caller are silently dropped from the request.
func (c *Core) WishlistRemove(ctx context.Context, scope entity.Scope, entryIDs []int64) *entity.Outcome {
	out := &entity.Outcome{}

	if !scope.Authenticated || scope.PartyID == 0 {
		out.Warnf("Please log in to use your wishlist.")
		return out
	}

	ids := dedupe(entryIDs)
	if len(ids) == 0 {
		return out
	}

	owned, err := c.gateway.Search(ctx, modelWishlist, erp.Filter{
		erp.Clause{Field: "id", Op: erp.OpIn, Value: ids},
		erp.Clause{Field: "party", Op: erp.OpEq, Value: scope.PartyID},
	}, 0, len(ids), nil)
	if err != nil {
		c.log.With(sl.Err(err)).Error("failed to load wishlist entries")
		out.Warnf("Your wishlist could not be loaded. Please try again.")
		return out
	}
	if len(owned) == 0 {
		out.Warnf("No matching wishlist entries found.")
		return out
	}

	if err := c.gateway.Delete(ctx, modelWishlist, owned); err != nil {
		c.log.With(sl.Err(err)).Error("failed to delete wishlist entries")
		out.Warnf("Your wishlist could not be updated. Please try again.")
		return out
	}

	n := len(owned)
	out.Result = true
	out.Successf("%d %s removed from your wishlist.", n, pluralize(n, "entry was", "entries were"))
	return out
}

// sellableProducts filters the requested ids to products that can still
// be sold in the configured shops.
func (c *Core) sellableProducts(ctx context.Context, ids []int64) ([]entity.Product, error) {
	found, err := c.gateway.Search(ctx, modelProduct, erp.Filter{
		erp.Clause{Field: "id", Op: erp.OpIn, Value: ids},
		erp.Clause{Field: "active", Op: erp.OpEq, Value: true},
		erp.Clause{Field: "salable", Op: erp.OpEq, Value: true},
		erp.Clause{Field: "shops", Op: erp.OpIn, Value: c.shops},
	}, 0, len(ids), nil)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}

	var products []entity.Product
	if err := c.gateway.Read(ctx, modelProduct, found, []string{"name", "code"}, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// wishlistProducts returns the product ids among ids that the party has
// already wishlisted.
func (c *Core) wishlistProducts(ctx context.Context, partyID int64, ids []int64) (map[int64]bool, error) {
	found, err := c.gateway.Search(ctx, modelWishlist, erp.Filter{
		erp.Clause{Field: "party", Op: erp.OpEq, Value: partyID},
		erp.Clause{Field: "product", Op: erp.OpIn, Value: ids},
	}, 0, len(ids), nil)
	if err != nil {
		return nil, err
	}

	existing := make(map[int64]bool)
	if len(found) == 0 {
		return existing, nil
	}

	var entries []entity.WishlistEntry
	if err := c.gateway.Read(ctx, modelWishlist, found, []string{"party", "product"}, &entries); err != nil {
		return nil, err
	}
	for _, entry := range entries {
		existing[entry.ProductID] = true
	}
	return existing, nil
}

// dedupe keeps the first occurrence of each positive id, preserving order.
func dedupe(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	var result []int64
	for _, id := range ids {
		if id <= 0 || seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}
