package request

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

type plainBody struct {
	Name string `json:"name"`
}

type boundBody struct {
	Amount int64 `json:"amount"`
}

var errBadAmount = errors.New("amount must be positive")

func (b *boundBody) Bind(_ *http.Request) error {
	if b.Amount <= 0 {
		return errBadAmount
	}
	return nil
}

func newRequest(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
}

func TestDecode_PlainBody(t *testing.T) {
	var target plainBody
	if err := Decode(newRequest(`{"name":"drill"}`), &target); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if target.Name != "drill" {
		t.Errorf("Name = %q, want drill", target.Name)
	}
}

func TestDecode_EmptyBody(t *testing.T) {
	var target plainBody
	err := Decode(newRequest(""), &target)
	if !errors.Is(err, ErrEmptyBody) {
		t.Errorf("Decode() error = %v, want ErrEmptyBody", err)
	}
}

func TestDecode_MalformedJSON(t *testing.T) {
	var target plainBody
	err := Decode(newRequest(`{"name":`), &target)
	if err == nil || errors.Is(err, ErrEmptyBody) {
		t.Errorf("Decode() error = %v, want a decode error", err)
	}
}

func TestDecode_BinderCalled(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"valid body passes bind", `{"amount":3}`, nil},
		{"bind rejection propagates", `{"amount":0}`, errBadAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var target boundBody
			err := Decode(newRequest(tt.body), &target)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecode_UnknownFieldsIgnored(t *testing.T) {
	var target plainBody
	if err := Decode(newRequest(`{"name":"drill","extra":1}`), &target); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if target.Name != "drill" {
		t.Errorf("Name = %q, want drill", target.Name)
	}
}

func ExampleDecode() {
	var target plainBody
	_ = Decode(newRequest(`{"name":"saw"}`), &target)
	fmt.Println(target.Name)
	// Output: saw
}
