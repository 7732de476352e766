package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/i474232898/city-explorer/internal/explorer"
)

// Open opens the Postgres handle shared by the whole process.
// maxOpenConns caps the pool; 1 keeps a single long-lived connection.
// The connection itself is established lazily; use Ping to verify it.
func Open(databaseURL string, maxOpenConns int) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database connection: %w", err)
	}

	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
		db.SetMaxIdleConns(maxOpenConns)
	}

	return db, nil
}

// PostgresStore implements explorer.LocationStore on the locations table.
// The schema is expected to exist.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore creates a new PostgresStore.
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// FindBySearchQuery returns the first stored row for query, or nil.
func (s *PostgresStore) FindBySearchQuery(ctx context.Context, query string) (*explorer.LocationRecord, error) {
	var rows []explorer.LocationRecord
	err := s.db.SelectContext(ctx, &rows,
		"SELECT id, search_query, formatted_query, latitude, longitude FROM locations WHERE search_query = $1 ORDER BY id LIMIT 1",
		query)
	if err != nil {
		return nil, &explorer.StoreError{Op: "find", Err: err}
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// Insert stores rec and returns the id generated by the database.
func (s *PostgresStore) Insert(ctx context.Context, rec explorer.LocationRecord) (int64, error) {
	var id int64
	err := s.db.QueryRowxContext(ctx,
		"INSERT INTO locations (search_query, formatted_query, latitude, longitude) VALUES ($1, $2, $3, $4) RETURNING id",
		rec.SearchQuery, rec.FormattedQuery, rec.Latitude, rec.Longitude,
	).Scan(&id)
	if err != nil {
		return 0, &explorer.StoreError{Op: "insert", Err: err}
	}
	return id, nil
}

// Ping checks the connection.
func (s *PostgresStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return &explorer.StoreError{Op: "ping", Err: err}
	}
	return nil
}

// Close releases the underlying handle.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
