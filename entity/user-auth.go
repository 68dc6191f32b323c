package entity

// UserAuth is the storefront session record resolved from a bearer token.
type UserAuth struct {
	Token   string `json:"token" bson:"token" validate:"required,min=1"`
	Name    string `json:"name" bson:"name" validate:"omitempty"`
	PartyID int64  `json:"party" bson:"party"`
	Manager bool   `json:"manager" bson:"manager"`
	B2B     bool   `json:"b2b" bson:"b2b"`
}

// Scope is the per-request visibility scope derived from the session.
// The zero value is the anonymous scope.
type Scope struct {
	Authenticated bool
	PartyID       int64
	Manager       bool
	B2B           bool
}

func (u *UserAuth) Scope() Scope {
	if u == nil {
		return Scope{}
	}
	return Scope{
		Authenticated: true,
		PartyID:       u.PartyID,
		Manager:       u.Manager,
		B2B:           u.B2B,
	}
}
