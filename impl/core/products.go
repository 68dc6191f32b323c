package core

import (
	"context"

	"saleportal/entity"
	"saleportal/internal/erp"
	apierrors "saleportal/internal/lib/errors"
	"saleportal/internal/lib/pagination"
)

// lineBatch is the window size used while walking the caller's order
// lines for distinct products.
const lineBatch = 100

// LastViewedProducts derives a recency-ordered product list from the
// caller's historical order lines, optionally narrowed to one delivery
// address. Products are de-duplicated by most recent line, the distinct
// set is capped before pagination, and the page is cut from that set.
func (c *Core) LastViewedProducts(ctx context.Context, scope entity.Scope, rawPage string, addressID int64) ([]entity.Product, pagination.Page, error) {
	if !scope.Authenticated || scope.PartyID == 0 {
		return nil, pagination.Page{}, apierrors.NewNotFoundError("products")
	}

	filter := erp.Filter{
		erp.Clause{Field: "sale.party", Op: erp.OpEq, Value: scope.PartyID},
		erp.Clause{Field: "sale.shop", Op: erp.OpIn, Value: c.shops},
	}
	if addressID > 0 {
		filter = append(filter, erp.Clause{
			Field: "sale.shipment_address", Op: erp.OpEq, Value: addressID,
		})
	}

	distinct, err := c.recentDistinctProducts(ctx, filter, c.lastViewedCap)
	if err != nil {
		return nil, pagination.Page{}, err
	}

	page := pagination.New(rawPage, c.lastViewedLimit, len(distinct))
	window := pagination.Window(distinct, page)
	if len(window) == 0 {
		return []entity.Product{}, page, nil
	}

	var products []entity.Product
	if err := c.gateway.Read(ctx, modelProduct, window, []string{"name", "code"}, &products); err != nil {
		return nil, pagination.Page{}, err
	}

	// Reads come back in store order; restore recency order.
	byID := make(map[int64]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	ordered := make([]entity.Product, 0, len(window))
	for _, id := range window {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}

	return ordered, page, nil
}

// recentDistinctProducts walks order lines newest first and collects up
// to maxDistinct product ids.
func (c *Core) recentDistinctProducts(ctx context.Context, filter erp.Filter, maxDistinct int) ([]int64, error) {
	if maxDistinct <= 0 {
		maxDistinct = pagination.DefaultLimit
	}

	lineOrder := []erp.OrderBy{
		erp.Desc("create_date"),
		erp.Desc("id"),
	}

	seen := make(map[int64]bool)
	var distinct []int64

	for offset := 0; len(distinct) < maxDistinct; offset += lineBatch {
		ids, err := c.gateway.Search(ctx, modelSaleLine, filter, offset, lineBatch, lineOrder)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			break
		}

		var lines []entity.OrderLine
		if err := c.gateway.Read(ctx, modelSaleLine, ids, []string{"product", "create_date"}, &lines); err != nil {
			return nil, err
		}

		// Reads come back in store order; walk the batch in the recency
		// order the search returned.
		byID := make(map[int64]entity.OrderLine, len(lines))
		for _, line := range lines {
			byID[line.ID] = line
		}

		for _, id := range ids {
			line, ok := byID[id]
			if !ok {
				continue
			}
			if line.ProductID == 0 || seen[line.ProductID] {
				continue
			}
			seen[line.ProductID] = true
			distinct = append(distinct, line.ProductID)
			if len(distinct) >= maxDistinct {
				break
			}
		}

		if len(ids) < lineBatch {
			break
		}
	}

	return distinct, nil
}
