package explorer

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Resolver looks locations up in the store first and falls back to the
// geocoder, persisting whatever the geocoder returns.
//
// Two concurrent misses for the same query both reach the geocoder and both
// insert; nothing deduplicates them.
type Resolver struct {
	store    LocationStore
	geocoder Geocoder
	logger   *zap.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(store LocationStore, geocoder Geocoder, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		store:    store,
		geocoder: geocoder,
		logger:   logger,
	}
}

// Resolve returns the location for searchQuery. Stored records are trusted forever.
func (r *Resolver) Resolve(ctx context.Context, searchQuery string) (LocationRecord, error) {
	cached, err := r.store.FindBySearchQuery(ctx, searchQuery)
	if err != nil {
		return LocationRecord{}, asStoreError("find", err)
	}
	if cached != nil {
		r.logger.Debug("location resolved",
			zap.String("search_query", searchQuery),
			zap.String("source", "store"),
			zap.Int64("id", cached.ID))
		return *cached, nil
	}

	results, err := r.geocoder.Geocode(ctx, searchQuery)
	if err != nil {
		return LocationRecord{}, providerError(r.geocoder.Name(), err)
	}
	if len(results) == 0 {
		return LocationRecord{}, &ProviderError{Provider: r.geocoder.Name(), Err: ErrNoData}
	}

	loc := NewLocation(searchQuery, results[0])
	id, err := r.store.Insert(ctx, loc)
	if err != nil {
		return LocationRecord{}, asStoreError("insert", err)
	}
	loc.ID = id

	r.logger.Debug("location resolved",
		zap.String("search_query", searchQuery),
		zap.String("source", "provider"),
		zap.Int64("id", id))
	return loc, nil
}

func asStoreError(op string, err error) error {
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}
