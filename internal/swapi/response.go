package swapi

import (
	"context"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/ib-77/tryfetch/internal/apierr"
	"github.com/ib-77/tryfetch/pkg/rop/future"
)

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports whether the status is in the 2xx range.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// CheckStatus classifies an unsuccessful response as a transport failure.
func CheckStatus(r *Response) error {
	if r.OK() {
		return nil
	}
	return apierr.Status(r.StatusCode)
}

// Decode parses the body into a Person.
func (r *Response) Decode() (*Person, error) {
	var p Person
	if err := json.Unmarshal(r.Body, &p); err != nil {
		return nil, apierr.JSON(err)
	}
	p.raw = r.Body
	return &p, nil
}

// DecodeAsync starts Decode and returns the in-flight decoding.
func (r *Response) DecodeAsync(ctx context.Context) *future.Future[*Person] {
	return future.Go(ctx, func(context.Context) (*Person, error) {
		return r.Decode()
	})
}
