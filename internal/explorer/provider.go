package explorer

//go:generate mockgen -source=provider.go -destination=../mocks/explorer/mock_provider.go -package=mock_explorer

import "context"

// EventsPageSize is the fixed number of events requested from the events provider.
const EventsPageSize = 20

// Geocoder resolves free-form search text into candidate locations.
type Geocoder interface {
	Name() string
	Geocode(ctx context.Context, query string) ([]GeocodeResult, error)
}

// ForecastProvider returns the daily forecast for a coordinate pair,
// in the order the provider returns it.
type ForecastProvider interface {
	Name() string
	DailyForecast(ctx context.Context, lat, lng float64) ([]DailyForecast, error)
}

// EventsProvider returns upcoming events near a coordinate pair.
type EventsProvider interface {
	Name() string
	UpcomingEvents(ctx context.Context, lat, lng float64, pageSize int) ([]Event, error)
}

// LocationStore is the contract the location cache (Postgres or in-memory) must satisfy.
// FindBySearchQuery returns nil and no error when nothing is stored for the query.
type LocationStore interface {
	FindBySearchQuery(ctx context.Context, query string) (*LocationRecord, error)
	Insert(ctx context.Context, rec LocationRecord) (int64, error)
	Ping(ctx context.Context) error
}
