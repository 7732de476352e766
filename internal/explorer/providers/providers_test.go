package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/city-explorer/internal/explorer"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestGoogleGeocoder_Geocode(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "123 Main St, New York", r.URL.Query().Get("address"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [
				{"formatted_address": "123 Main St", "geometry": {"location": {"lat": 40.7, "lng": -74.0}}},
				{"formatted_address": "123 Main Street", "geometry": {"location": {"lat": 41.0, "lng": -73.0}}}
			]
		}`))
	})

	p := NewGoogleGeocoder(NewHTTPClient(0), "test-key")
	p.baseURL = srv.URL

	results, err := p.Geocode(context.Background(), "123 Main St, New York")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "123 Main St", results[0].FormattedAddress)
	assert.Equal(t, 40.7, results[0].Geometry.Location.Lat)
	assert.Equal(t, -74.0, results[0].Geometry.Location.Lng)
}

func TestGoogleGeocoder_ZeroResults(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	p := NewGoogleGeocoder(NewHTTPClient(0), "test-key")
	p.baseURL = srv.URL

	results, err := p.Geocode(context.Background(), "zzzz")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestGoogleGeocoder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		handler http.HandlerFunc
		wantIs  error
	}{
		{
			name:   "missing api key",
			apiKey: "",
			handler: func(w http.ResponseWriter, r *http.Request) {
				t.Error("no request expected without an api key")
			},
			wantIs: errMissingAPIKey,
		},
		{
			name:   "request denied",
			apiKey: "bad-key",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"status": "REQUEST_DENIED", "error_message": "The provided API key is invalid.", "results": []}`))
			},
		},
		{
			name:   "server error",
			apiKey: "test-key",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantIs: errServerError,
		},
		{
			name:   "rate limited",
			apiKey: "test-key",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			wantIs: errRateLimited,
		},
		{
			name:   "not found",
			apiKey: "test-key",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantIs: errUnexpected,
		},
		{
			name:   "malformed body",
			apiKey: "test-key",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("invalid json {"))
			},
			wantIs: errMalformedBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.handler)
			p := NewGoogleGeocoder(NewHTTPClient(0), tt.apiKey)
			p.baseURL = srv.URL

			_, err := p.Geocode(context.Background(), "nyc")
			require.Error(t, err)

			var pe *explorer.ProviderError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, "google", pe.Provider)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
		})
	}
}

func TestGoogleGeocoder_CircuitOpensAfterFailures(t *testing.T) {
	var calls atomic.Int32
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	p := NewGoogleGeocoder(NewHTTPClient(0), "test-key")
	p.baseURL = srv.URL

	for i := 0; i < 6; i++ {
		_, err := p.Geocode(context.Background(), "nyc")
		require.Error(t, err)
	}

	// gobreaker's default policy trips after more than 5 consecutive failures.
	_, err := p.Geocode(context.Background(), "nyc")
	assert.ErrorIs(t, err, errCircuitOpen)
	assert.Equal(t, int32(6), calls.Load())
}

func TestDarkSkyProvider_DailyForecast(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/test-key/47.6062,-122.3321", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"latitude": 47.6062,
			"daily": {
				"summary": "Rain throughout the week.",
				"data": [
					{"time": 1609459200, "summary": "Clear"},
					{"time": 1609545600, "summary": "Rain"}
				]
			}
		}`))
	})

	p := NewDarkSkyProvider(NewHTTPClient(0), "test-key")
	p.baseURL = srv.URL

	days, err := p.DailyForecast(context.Background(), 47.6062, -122.3321)
	require.NoError(t, err)
	assert.Equal(t, []explorer.DailyForecast{
		{Summary: "Clear", Time: 1609459200},
		{Summary: "Rain", Time: 1609545600},
	}, days)
}

func TestDarkSkyProvider_Errors(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	p := NewDarkSkyProvider(NewHTTPClient(0), "test-key")
	p.baseURL = srv.URL

	_, err := p.DailyForecast(context.Background(), 1, 2)
	var pe *explorer.ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "darksky", pe.Provider)
	assert.ErrorIs(t, err, errUnexpected)

	p = NewDarkSkyProvider(NewHTTPClient(0), "")
	_, err = p.DailyForecast(context.Background(), 1, 2)
	assert.ErrorIs(t, err, errMissingAPIKey)
}

func TestMeetupProvider_UpcomingEvents(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "47.6", q.Get("lat"))
		assert.Equal(t, "-122.3", q.Get("lon"))
		assert.Equal(t, "true", q.Get("sign"))
		assert.Equal(t, "test-key", q.Get("key"))
		assert.Equal(t, "20", q.Get("page"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"events": [
				{"link": "https://www.meetup.com/a/events/1/", "name": "First", "time": 1609459200000, "group": {"name": "A"}},
				{"link": "https://www.meetup.com/b/events/2/", "name": "Second", "time": 1609545600000, "group": {"name": "B"}}
			]
		}`))
	})

	p := NewMeetupProvider(NewHTTPClient(0), "test-key")
	p.baseURL = srv.URL

	events, err := p.UpcomingEvents(context.Background(), 47.6, -122.3, explorer.EventsPageSize)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "First", events[0].Name)
	assert.Equal(t, "A", events[0].Group.Name)
	assert.Equal(t, int64(1609545600000), events[1].Time)
}

func TestMeetupProvider_MissingAPIKey(t *testing.T) {
	p := NewMeetupProvider(NewHTTPClient(0), "")
	_, err := p.UpcomingEvents(context.Background(), 1, 2, explorer.EventsPageSize)

	var pe *explorer.ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "meetup", pe.Provider)
	assert.ErrorIs(t, err, errMissingAPIKey)
}

func TestDarkSkyProvider_MissingDailyData(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unexpected shape", body: `{"error": "unexpected shape"}`},
		{name: "daily without data", body: `{"daily": {"summary": "Rain throughout the week."}}`},
		{name: "null data", body: `{"daily": {"data": null}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})
			p := NewDarkSkyProvider(NewHTTPClient(0), "test-key")
			p.baseURL = srv.URL

			days, err := p.DailyForecast(context.Background(), 1, 2)
			assert.Nil(t, days)

			var pe *explorer.ProviderError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, "darksky", pe.Provider)
			assert.ErrorIs(t, err, errMalformedBody)
		})
	}
}

func TestDarkSkyProvider_EmptyDailyData(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"daily": {"data": []}}`))
	})
	p := NewDarkSkyProvider(NewHTTPClient(0), "test-key")
	p.baseURL = srv.URL

	days, err := p.DailyForecast(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.NotNil(t, days)
	assert.Empty(t, days)
}

func TestMeetupProvider_MalformedEvents(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unexpected shape", body: `{"error": "unexpected shape"}`},
		{name: "null events", body: `{"events": null}`},
		{name: "event without group", body: `{"events": [{"link": "https://www.meetup.com/a/events/1/", "name": "First", "time": 1609459200000}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})
			p := NewMeetupProvider(NewHTTPClient(0), "test-key")
			p.baseURL = srv.URL

			events, err := p.UpcomingEvents(context.Background(), 1, 2, explorer.EventsPageSize)
			assert.Nil(t, events)

			var pe *explorer.ProviderError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, "meetup", pe.Provider)
			assert.ErrorIs(t, err, errMalformedBody)
		})
	}
}

func TestMeetupProvider_EmptyEvents(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"events": []}`))
	})
	p := NewMeetupProvider(NewHTTPClient(0), "test-key")
	p.baseURL = srv.URL

	events, err := p.UpcomingEvents(context.Background(), 1, 2, explorer.EventsPageSize)
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}
