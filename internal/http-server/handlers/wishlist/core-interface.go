package wishlist

import (
	"context"

	"saleportal/entity"
)

type Core interface {
	WishlistAdd(ctx context.Context, scope entity.Scope, productIDs []int64) *entity.Outcome
	WishlistRemove(ctx context.Context, scope entity.Scope, entryIDs []int64) *entity.Outcome
}
