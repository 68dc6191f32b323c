package entity

// Breadcrumb is one step of the navigation trail handed to the
// presentation layer. Data only, no behavior.
type Breadcrumb struct {
	Link  string `json:"link"`
	Label string `json:"label"`
}
