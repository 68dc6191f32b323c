package entity

import (
	"net/http"
	"saleportal/internal/lib/validate"
)

// PaymentChangeForm is the body of a change-payment request.
type PaymentChangeForm struct {
	PaymentType int64 `json:"payment_type" validate:"required,gt=0"`
}

func (f *PaymentChangeForm) Bind(_ *http.Request) error {
	return validate.Struct(f)
}

// WishlistAddForm carries the product references to save. An empty list is
// legal at this level; the workflow reports it as a no-op.
type WishlistAddForm struct {
	Products []int64 `json:"products" validate:"omitempty,dive,gt=0"`
}

func (f *WishlistAddForm) Bind(_ *http.Request) error {
	return validate.Struct(f)
}

// WishlistRemoveForm carries the wishlist entry ids to delete.
type WishlistRemoveForm struct {
	Entries []int64 `json:"entries" validate:"omitempty,dive,gt=0"`
}

func (f *WishlistRemoveForm) Bind(_ *http.Request) error {
	return validate.Struct(f)
}
