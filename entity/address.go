package entity

import "github.com/biter777/countries"

type Address struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Street  string `json:"street"`
	Zip     string `json:"zip"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// CountryCode normalizes the address country to an ISO alpha-2 code.
// The ERP stores either a full country name or an alpha-2 code depending
// on how the address was captured.
func (a *Address) CountryCode() string {
	if a.Country == "" {
		return ""
	}
	if len(a.Country) == 2 {
		return a.Country
	}
	country := countries.ByName(a.Country)
	code := country.Alpha2()
	if len(code) == 2 {
		return code
	}
	return ""
}
