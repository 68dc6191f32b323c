package sale

import (
	"context"

	"saleportal/entity"
	"saleportal/internal/lib/pagination"
)

type Core interface {
	ListOrders(ctx context.Context, scope entity.Scope, page string, search entity.SaleSearch) ([]entity.Order, pagination.Page, error)
	GetOrder(ctx context.Context, scope entity.Scope, id int64) (*entity.Order, error)
	CancelOrder(ctx context.Context, scope entity.Scope, id int64) *entity.Outcome
	ChangePayment(ctx context.Context, scope entity.Scope, id, paymentType int64) *entity.Outcome
	PrintOrder(ctx context.Context, scope entity.Scope, id int64) (*entity.Report, error)
}
