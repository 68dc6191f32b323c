package entity

import "fmt"

// Sale order lifecycle states as reported by the ERP. The ERP owns the
// lifecycle; these constants only drive the advisory guards on this side.
const (
	StateDraft      = "draft"
	StateQuotation  = "quotation"
	StateConfirmed  = "confirmed"
	StateProcessing = "processing"
	StateDone       = "done"
	StateCancelled  = "cancelled"
)

type Order struct {
	ID              int64    `json:"id"`
	Reference       string   `json:"reference"`
	State           string   `json:"state"`
	ShopID          int64    `json:"shop"`
	PartyID         int64    `json:"party"`
	ShipmentPartyID int64    `json:"shipment_party,omitempty"`
	PaymentTypeID   int64    `json:"payment_type,omitempty"`
	CreateDate      string   `json:"create_date"`
	SaleDate        string   `json:"sale_date"`
	UntaxedAmount   float64  `json:"untaxed_amount"`
	TaxAmount       float64  `json:"tax_amount"`
	TotalAmount     float64  `json:"total_amount"`
	ShipmentAddress *Address `json:"shipment_address,omitempty"`
}

// Mutable reports whether the order still accepts cancellation or a
// payment change. Final say stays with the ERP.
func (o *Order) Mutable() bool {
	return o.State == StateDraft || o.State == StateQuotation
}

// Name returns the order reference for user-facing messages, falling back
// to the numeric id for orders the ERP has not numbered yet.
func (o *Order) Name() string {
	if o.Reference != "" {
		return o.Reference
	}
	return fmt.Sprintf("#%d", o.ID)
}
