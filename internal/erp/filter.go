package erp

import "encoding/json"

// Predicate operators understood by the record store.
const (
	OpEq    = "="
	OpIn    = "in"
	OpNotIn = "not in"
	OpILike = "ilike" // case-insensitive substring, % wildcards
)

// Condition is one element of a filter: either a Clause or an Or group.
type Condition interface {
	condition()
}

// Filter is an ordered predicate list combined with implicit AND.
// It marshals to the nested-array domain syntax the store expects.
type Filter []Condition

// Clause is a single (field, operator, value) predicate. A nil Value with
// OpEq matches records where the field is unset.
type Clause struct {
	Field string
	Op    string
	Value any
}

func (Clause) condition() {}

func (c Clause) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]any{c.Field, c.Op, c.Value})
}

// Or combines sub-filters disjunctively: ["OR", [...], [...]].
type Or []Filter

func (Or) condition() {}

func (o Or) MarshalJSON() ([]byte, error) {
	parts := make([]any, 0, len(o)+1)
	parts = append(parts, "OR")
	for _, f := range o {
		parts = append(parts, f)
	}
	return json.Marshal(parts)
}

// OrderBy is one sort key, marshaled as ["field", "ASC"|"DESC"].
type OrderBy struct {
	Field     string
	Direction string
}

func (o OrderBy) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{o.Field, o.Direction})
}

func Asc(field string) OrderBy  { return OrderBy{Field: field, Direction: "ASC"} }
func Desc(field string) OrderBy { return OrderBy{Field: field, Direction: "DESC"} }
