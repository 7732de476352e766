package providers

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"github.com/i474232898/city-explorer/internal/explorer"
)

// DarkSkyProvider implements the explorer.ForecastProvider interface for Dark Sky.
type DarkSkyProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *resty.Client
	circuit *gobreaker.CircuitBreaker
}

func NewDarkSkyProvider(client *resty.Client, apiKey string) *DarkSkyProvider {
	return &DarkSkyProvider{
		name:    "darksky",
		apiKey:  apiKey,
		baseURL: "https://api.darksky.net/forecast",
		client:  client,
		circuit: newCircuitBreaker("darksky"),
	}
}

func (p *DarkSkyProvider) Name() string {
	return p.name
}

func (p *DarkSkyProvider) DailyForecast(ctx context.Context, lat, lng float64) ([]explorer.DailyForecast, error) {
	if p.apiKey == "" {
		return nil, wrap(p.name, errMissingAPIKey)
	}
	if p.client == nil {
		return nil, wrap(p.name, errNoHTTPClient)
	}

	// The key and the coordinate pair are path segments: /forecast/{key}/{lat},{lng}
	u := fmt.Sprintf("%s/%s/%s,%s", p.baseURL, url.PathEscape(p.apiKey), formatCoordinate(lat), formatCoordinate(lng))

	var payload struct {
		Daily *struct {
			Data *[]explorer.DailyForecast `json:"data"`
		} `json:"daily"`
	}
	if err := getJSON(ctx, p.circuit, p.client.R(), u, &payload); err != nil {
		return nil, wrap(p.name, err)
	}
	if payload.Daily == nil || payload.Daily.Data == nil {
		return nil, wrap(p.name, fmt.Errorf("%w: no daily.data list", errMalformedBody))
	}

	return *payload.Daily.Data, nil
}
