package request

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// Common errors
var (
	ErrEmptyBody = errors.New("request body is empty")
)

// Binder is implemented by request bodies that validate themselves.
type Binder interface {
	Bind(*http.Request) error
}

// Decode decodes a JSON request body into target and, when the target
// implements Binder, validates it.
// Usage: var form entity.PaymentChangeForm; err := request.Decode(r, &form)
func Decode[T any](r *http.Request, target *T) error {
	err := json.NewDecoder(r.Body).Decode(target)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}

	if binder, ok := any(target).(Binder); ok {
		if err := binder.Bind(r); err != nil {
			return err
		}
	}
	return nil
}
