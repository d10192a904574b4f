package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultHTTPTimeout = 10 * time.Second
	requestIDHeader    = "X-Request-ID"
)

// ErrStatus wraps non-2xx responses from the contact endpoint.
var ErrStatus = errors.New("contact endpoint rejected submission")

// HTTP posts submissions as JSON to Endpoint.
type HTTP struct {
	Endpoint string
	client   *resty.Client
}

// NewHTTP builds an HTTP submitter. A non-positive timeout uses DefaultHTTPTimeout.
func NewHTTP(endpoint string, timeout time.Duration) *HTTP {
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &HTTP{Endpoint: endpoint, client: client}
}

func (h *HTTP) Submit(ctx context.Context, sub Submission) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, sub.ID).
		SetBody(sub).
		Post(h.Endpoint)
	if err != nil {
		return fmt.Errorf("post contact submission: %w", err)
	}
	if resp.IsError() || resp.StatusCode() >= 300 {
		return fmt.Errorf("%w: %s", ErrStatus, resp.Status())
	}
	return nil
}
