package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"github.com/i474232898/city-explorer/internal/explorer"
)

var (
	errRateLimited   = errors.New("rate limited")
	errServerError   = errors.New("server error")
	errUnexpected    = errors.New("unexpected status code")
	errCircuitOpen   = errors.New("circuit breaker open")
	errNoHTTPClient  = errors.New("http client not configured")
	errMissingAPIKey = errors.New("api key is not configured")
	errMalformedBody = errors.New("malformed response body")
)

// NewHTTPClient returns the resty client shared by all providers.
// A zero timeout means outbound calls have no deadline of their own.
func NewHTTPClient(timeout time.Duration) *resty.Client {
	return resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
}

func newCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
}

// getJSON issues a single GET through the circuit breaker and decodes the
// body into out. Failed calls are never retried.
func getJSON(ctx context.Context, cb *gobreaker.CircuitBreaker, req *resty.Request, url string, out any) error {
	if req == nil {
		return errNoHTTPClient
	}

	result, err := cb.Execute(func() (interface{}, error) {
		resp, execErr := req.SetContext(ctx).Get(url)
		if execErr != nil {
			return nil, execErr
		}

		if resp.StatusCode() == http.StatusTooManyRequests {
			return nil, errRateLimited
		}
		if resp.StatusCode() >= 500 {
			return nil, fmt.Errorf("%w: %d", errServerError, resp.StatusCode())
		}
		if !resp.IsSuccess() {
			return nil, fmt.Errorf("%w: %d", errUnexpected, resp.StatusCode())
		}

		return resp.Body(), nil
	})
	if err != nil {
		// If circuit is open, propagate immediately.
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("%w: %v", errCircuitOpen, err)
		}
		return err
	}

	body, ok := result.([]byte)
	if !ok {
		return fmt.Errorf("unexpected result type from circuit breaker")
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", errMalformedBody, err)
	}
	return nil
}

func wrap(provider string, err error) error {
	return &explorer.ProviderError{Provider: provider, Err: err}
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
