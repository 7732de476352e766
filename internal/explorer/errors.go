package explorer

import (
	"errors"
	"fmt"
)

// ErrNoData is returned (wrapped in a ProviderError) when a geocoding provider
// answers with an empty result list.
var ErrNoData = errors.New("No Data")

// ProviderError reports a failed call to an external provider: transport
// failure, non-2xx status, malformed body or an empty result.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// StoreError reports a failed query or insert against the location store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
