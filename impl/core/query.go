package core

import (
	"saleportal/entity"
	"saleportal/internal/erp"
	apierrors "saleportal/internal/lib/errors"
)

// orderFilter builds the predicate set an order lookup must satisfy for
// the caller's visibility scope. detail marks the anonymous-detail case,
// the only filtered lookup an unauthenticated caller may run: a fresh
// anonymous sale carries no party, so the filter pins party to unset.
func (c *Core) orderFilter(scope entity.Scope, detail bool) (erp.Filter, error) {
	filter := erp.Filter{
		erp.Clause{Field: "shop", Op: erp.OpIn, Value: c.shops},
		erp.Clause{Field: "state", Op: erp.OpNotIn, Value: c.stateExclude},
	}

	switch {
	case scope.Manager:
		// Managers see every order in the configured shops.
	case scope.B2B && scope.PartyID != 0:
		filter = append(filter, erp.Or{
			erp.Filter{erp.Clause{Field: "party", Op: erp.OpEq, Value: scope.PartyID}},
			erp.Filter{erp.Clause{Field: "shipment_party", Op: erp.OpEq, Value: scope.PartyID}},
		})
	case scope.PartyID != 0:
		filter = append(filter, erp.Clause{Field: "party", Op: erp.OpEq, Value: scope.PartyID})
	case detail && !scope.Authenticated:
		filter = append(filter, erp.Clause{Field: "party", Op: erp.OpEq, Value: nil})
	default:
		// Logged in but no customer attached to the session.
		return nil, apierrors.NewNotFoundError("sale")
	}

	return filter, nil
}

// searchFilter appends the admin substring filters. Only manager scopes
// ever reach this; the handlers drop the parameters for everyone else.
func searchFilter(filter erp.Filter, search entity.SaleSearch) erp.Filter {
	if search.Query != "" {
		filter = append(filter, erp.Clause{
			Field: "reference", Op: erp.OpILike, Value: "%" + search.Query + "%",
		})
	}
	if search.Party != "" {
		filter = append(filter, erp.Clause{
			Field: "party.name", Op: erp.OpILike, Value: "%" + search.Party + "%",
		})
	}
	if search.Address != "" {
		filter = append(filter, erp.Clause{
			Field: "shipment_address.name", Op: erp.OpILike, Value: "%" + search.Address + "%",
		})
	}
	return filter
}
