package entity

type Shop struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	PaymentTypeIDs []int64 `json:"payment_types"`
}

// AllowsPayment reports whether the payment type is enabled on the shop.
func (s *Shop) AllowsPayment(paymentType int64) bool {
	for _, id := range s.PaymentTypeIDs {
		if id == paymentType {
			return true
		}
	}
	return false
}
