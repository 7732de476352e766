package providers

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"github.com/i474232898/city-explorer/internal/explorer"
)

// GoogleGeocoder implements the explorer.Geocoder interface for the Google Maps geocoding API.
type GoogleGeocoder struct {
	name    string
	apiKey  string
	baseURL string
	client  *resty.Client
	circuit *gobreaker.CircuitBreaker
}

func NewGoogleGeocoder(client *resty.Client, apiKey string) *GoogleGeocoder {
	return &GoogleGeocoder{
		name:    "google",
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com/maps/api/geocode/json",
		client:  client,
		circuit: newCircuitBreaker("google"),
	}
}

func (p *GoogleGeocoder) Name() string {
	return p.name
}

func (p *GoogleGeocoder) Geocode(ctx context.Context, query string) ([]explorer.GeocodeResult, error) {
	if p.apiKey == "" {
		return nil, wrap(p.name, errMissingAPIKey)
	}
	if p.client == nil {
		return nil, wrap(p.name, errNoHTTPClient)
	}

	req := p.client.R().SetQueryParams(map[string]string{
		"key":     p.apiKey,
		"address": query,
	})

	var payload struct {
		Status       string                   `json:"status"`
		ErrorMessage string                   `json:"error_message"`
		Results      []explorer.GeocodeResult `json:"results"`
	}
	if err := getJSON(ctx, p.circuit, req, p.baseURL, &payload); err != nil {
		return nil, wrap(p.name, err)
	}

	// ZERO_RESULTS comes back with an empty list; the resolver decides what that means.
	switch payload.Status {
	case "", "OK", "ZERO_RESULTS":
	default:
		return nil, wrap(p.name, fmt.Errorf("status %s: %s", payload.Status, payload.ErrorMessage))
	}

	return payload.Results, nil
}
