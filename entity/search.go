package entity

// SaleSearch carries the optional substring filters of a manager-scoped
// admin search. Non-managers never get these applied.
type SaleSearch struct {
	Query   string
	Party   string
	Address string
}

func (s SaleSearch) Empty() bool {
	return s.Query == "" && s.Party == "" && s.Address == ""
}
