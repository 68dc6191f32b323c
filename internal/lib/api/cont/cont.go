package cont

import (
	"context"
	"saleportal/entity"
)

type ctxKey string

const sessionKey ctxKey = "session"

// PutSession attaches the resolved storefront session to the context.
func PutSession(c context.Context, user *entity.UserAuth) context.Context {
	return context.WithValue(c, sessionKey, *user)
}

// GetSession returns the session or nil for anonymous requests.
func GetSession(c context.Context) *entity.UserAuth {
	user, ok := c.Value(sessionKey).(entity.UserAuth)
	if !ok {
		return nil
	}
	return &user
}

// GetScope derives the visibility scope for the request. Requests without
// a session get the anonymous scope.
func GetScope(c context.Context) entity.Scope {
	return GetSession(c).Scope()
}
