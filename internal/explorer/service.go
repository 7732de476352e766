package explorer

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Service exposes the three lookups served over HTTP and the CLI.
type Service struct {
	resolver  *Resolver
	forecasts ForecastProvider
	events    EventsProvider
	logger    *zap.Logger
}

// NewService creates a new Service.
func NewService(resolver *Resolver, forecasts ForecastProvider, events EventsProvider, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		resolver:  resolver,
		forecasts: forecasts,
		events:    events,
		logger:    logger,
	}
}

// ResolveLocation delegates to the resolver.
func (s *Service) ResolveLocation(ctx context.Context, searchQuery string) (LocationRecord, error) {
	return s.resolver.Resolve(ctx, searchQuery)
}

// GetForecast fetches and normalizes the daily forecast. Nothing is cached.
func (s *Service) GetForecast(ctx context.Context, lat, lng float64) ([]ForecastDay, error) {
	days, err := s.forecasts.DailyForecast(ctx, lat, lng)
	if err != nil {
		return nil, providerError(s.forecasts.Name(), err)
	}

	out := make([]ForecastDay, 0, len(days))
	for _, d := range days {
		out = append(out, NewForecastDay(d))
	}
	s.logger.Debug("forecast fetched", zap.Int("days", len(out)))
	return out, nil
}

// GetEvents fetches and normalizes one fixed-size page of upcoming events.
func (s *Service) GetEvents(ctx context.Context, lat, lng float64) ([]MeetupEvent, error) {
	events, err := s.events.UpcomingEvents(ctx, lat, lng, EventsPageSize)
	if err != nil {
		return nil, providerError(s.events.Name(), err)
	}

	out := make([]MeetupEvent, 0, len(events))
	for _, e := range events {
		out = append(out, NewMeetupEvent(e))
	}
	s.logger.Debug("events fetched", zap.Int("events", len(out)))
	return out, nil
}

// Ping reports whether the location store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.resolver.store.Ping(ctx)
}

func providerError(name string, err error) error {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return err
	}
	return &ProviderError{Provider: name, Err: err}
}
