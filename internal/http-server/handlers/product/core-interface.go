package product

import (
	"context"

	"saleportal/entity"
	"saleportal/internal/lib/pagination"
)

type Core interface {
	LastViewedProducts(ctx context.Context, scope entity.Scope, page string, addressID int64) ([]entity.Product, pagination.Page, error)
}
