package core

import (
	"fmt"
	"saleportal/entity"
)

// AuthenticateByToken resolves a storefront session token. Sessions are
// cached per token for the lifetime of the process; the session store
// invalidates tokens by deleting the row, so a hit here is authoritative
// only until the next restart.
func (c *Core) AuthenticateByToken(token string) (*entity.UserAuth, error) {
	if token == "" {
		return nil, fmt.Errorf("token not provided")
	}

	c.keysMu.RLock()
	user, ok := c.keys[token]
	c.keysMu.RUnlock()
	if ok {
		return user, nil
	}

	if c.repo == nil {
		return nil, fmt.Errorf("session store not configured")
	}

	user, err := c.repo.SessionByToken(token)
	if err != nil {
		return nil, err
	}

	c.keysMu.Lock()
	c.keys[token] = user
	c.keysMu.Unlock()

	return user, nil
}
