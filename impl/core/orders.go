package core

import (
	"context"
	"log/slog"

	"saleportal/entity"
	"saleportal/internal/erp"
	apierrors "saleportal/internal/lib/errors"
	"saleportal/internal/lib/pagination"
	"saleportal/internal/lib/sl"
)

var saleListFields = []string{
	"reference", "state", "shop", "party", "shipment_party",
	"create_date", "sale_date",
	"untaxed_amount", "tax_amount", "total_amount",
}

var saleDetailFields = append(saleListFields,
	"payment_type", "shipment_address",
)

// saleOrder keeps same-day entries deterministic: newest sale date first,
// highest id first within a day.
var saleOrder = []erp.OrderBy{
	erp.Desc("sale_date"),
	erp.Desc("id"),
}

// ListOrders returns one page of the orders visible to scope, newest
// first. A scope that matches nothing yields an empty page, not an error.
func (c *Core) ListOrders(ctx context.Context, scope entity.Scope, rawPage string, search entity.SaleSearch) ([]entity.Order, pagination.Page, error) {
	filter, err := c.orderFilter(scope, false)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	if scope.Manager && !search.Empty() {
		filter = searchFilter(filter, search)
	}

	total, err := c.gateway.SearchCount(ctx, modelSale, filter)
	if err != nil {
		return nil, pagination.Page{}, err
	}

	page := pagination.New(rawPage, c.pageLimit, total)

	ids, err := c.gateway.Search(ctx, modelSale, filter, page.Offset(), page.Limit, saleOrder)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	if len(ids) == 0 {
		return []entity.Order{}, page, nil
	}

	var orders []entity.Order
	if err := c.gateway.Read(ctx, modelSale, ids, saleListFields, &orders); err != nil {
		return nil, pagination.Page{}, err
	}

	return orders, page, nil
}

// GetOrder returns one order visible to scope, or NOT_FOUND when the id is
// absent, outside the scope, or in an excluded state.
func (c *Core) GetOrder(ctx context.Context, scope entity.Scope, id int64) (*entity.Order, error) {
	order, err := c.findOrder(ctx, scope, id, true)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apierrors.NewNotFoundError("sale")
	}
	return order, nil
}

// findOrder runs the scoped single-order lookup. It returns (nil, nil)
// when the order exists but is not visible, so mutation callers can
// report "not permitted" instead of a terminal 404.
func (c *Core) findOrder(ctx context.Context, scope entity.Scope, id int64, detail bool) (*entity.Order, error) {
	filter, err := c.orderFilter(scope, detail)
	if err != nil {
		return nil, err
	}
	filter = append(filter, erp.Clause{Field: "id", Op: erp.OpEq, Value: id})

	ids, err := c.gateway.Search(ctx, modelSale, filter, 0, 1, nil)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	var orders []entity.Order
	if err := c.gateway.Read(ctx, modelSale, ids, saleDetailFields, &orders); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		c.log.Warn("order id found but read returned nothing", slog.Int64("order_id", id))
		return nil, nil
	}

	return &orders[0], nil
}

// logGatewayFailure keeps the warn-and-continue policy of the mutation
// operations in one place.
func (c *Core) logGatewayFailure(op string, id int64, err error) {
	c.log.With(
		slog.String("op", op),
		slog.Int64("order_id", id),
		sl.Err(err),
	).Error("record store call failed")
}
