package entity

// WishlistEntry is a saved product interest tied to a party. The store does
// not enforce uniqueness per (party, product); the workflow layer checks
// for an existing entry before creating one.
type WishlistEntry struct {
	ID        int64   `json:"id"`
	PartyID   int64   `json:"party"`
	ProductID int64   `json:"product"`
	Quantity  float64 `json:"quantity"`
}
