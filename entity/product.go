package entity

type Product struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Code    string  `json:"code,omitempty"`
	Active  bool    `json:"active"`
	Salable bool    `json:"salable"`
	ShopIDs []int64 `json:"shops,omitempty"`
}

type OrderLine struct {
	ID                int64  `json:"id"`
	SaleID            int64  `json:"sale"`
	ProductID         int64  `json:"product"`
	CreateDate        string `json:"create_date"`
	ShipmentAddressID int64  `json:"shipment_address,omitempty"`
}
