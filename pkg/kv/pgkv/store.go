package pgkv

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/sessionkv/pkg/kv"
)

// Store implements kv.Store on top of PostgreSQL. Entries live in a single
// table keyed by the flat key encoding; prefix scans stream ordered rows, so
// listing is lazy and lexicographic.
type Store struct {
	pool  *pgxpool.Pool
	table string
}

var _ kv.Store = (*Store)(nil)

// Open connects to PostgreSQL using cfg, retrying with linear backoff, and
// creates the entries table if it does not exist yet.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	if !validTableName(cfg.Table) {
		return nil, ErrInvalidTableName
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseConfig, err)
	}
	poolConfig.MaxConns = cfg.MaxOpenConns
	poolConfig.MinConns = cfg.MaxIdleConns

	var pool *pgxpool.Pool
	for i := 0; i < cfg.RetryAttempts; i++ {
		pool, err = pgxpool.NewWithConfig(ctx, poolConfig)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				break
			}
			pool.Close()
			pool = nil
		}
		time.Sleep(time.Duration(i+1) * cfg.RetryInterval)
	}
	if pool == nil {
		return nil, errors.Join(ErrNotReady, err)
	}

	store := &Store{pool: pool, table: cfg.Table}
	if err := store.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return store, nil
}

// New wraps an existing pool without creating the schema. The table must
// already exist.
func New(pool *pgxpool.Pool, table string) (*Store, error) {
	if !validTableName(table) {
		return nil, ErrInvalidTableName
	}
	return &Store{pool: pool, table: table}, nil
}

func (s *Store) ensureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			k   TEXT PRIMARY KEY,
			v   BYTEA NOT NULL,
			ver TEXT NOT NULL
		)
	`, s.table)

	_, err := s.pool.Exec(ctx, query)
	return err
}

// Get returns the entry stored under key.
func (s *Store) Get(ctx context.Context, key kv.Key) (kv.Entry, bool, error) {
	if len(key) == 0 {
		return kv.Entry{}, false, kv.ErrEmptyKey
	}

	query := fmt.Sprintf(`SELECT v, ver FROM %s WHERE k = $1`, s.table)

	var entry kv.Entry
	err := s.pool.QueryRow(ctx, query, key.Encode()).Scan(&entry.Value, &entry.Version)
	if errors.Is(err, pgx.ErrNoRows) {
		return kv.Entry{}, false, nil
	}
	if err != nil {
		return kv.Entry{}, false, err
	}

	entry.Key = key
	return entry, true, nil
}

// Set upserts value under key with a fresh version token.
func (s *Store) Set(ctx context.Context, key kv.Key, value []byte) error {
	if len(key) == 0 {
		return kv.ErrEmptyKey
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (k, v, ver)
		VALUES ($1, $2, $3)
		ON CONFLICT (k) DO UPDATE SET
			v   = EXCLUDED.v,
			ver = EXCLUDED.ver
	`, s.table)

	_, err := s.pool.Exec(ctx, query, key.Encode(), value, uuid.NewString())
	return err
}

// Delete removes key. Absent keys are ignored.
func (s *Store) Delete(ctx context.Context, key kv.Key) error {
	if len(key) == 0 {
		return kv.ErrEmptyKey
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE k = $1`, s.table)

	_, err := s.pool.Exec(ctx, query, key.Encode())
	return err
}

// List streams all entries under prefix ordered by encoded key. Rows are
// fetched lazily from the server; the cursor is created per call.
func (s *Store) List(ctx context.Context, prefix kv.Key) kv.Iterator {
	query := fmt.Sprintf(`
		SELECT k, v, ver FROM %s
		WHERE k LIKE $1 ESCAPE '\'
		ORDER BY k
	`, s.table)

	rows, err := s.pool.Query(ctx, query, likePattern(prefix))
	if err != nil {
		return &rowIterator{err: err}
	}

	return &rowIterator{rows: rows}
}

// Close releases the connection pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

type rowIterator struct {
	rows    pgx.Rows
	current kv.Entry
	err     error
	done    bool
}

func (it *rowIterator) Next(ctx context.Context) bool {
	if it.err != nil || it.done {
		return false
	}
	if err := ctx.Err(); err != nil {
		it.err = err
		it.rows.Close()
		return false
	}

	if !it.rows.Next() {
		it.done = true
		it.err = it.rows.Err()
		it.rows.Close()
		return false
	}

	var encoded string
	var entry kv.Entry
	if err := it.rows.Scan(&encoded, &entry.Value, &entry.Version); err != nil {
		it.err = err
		it.rows.Close()
		return false
	}

	key, err := kv.DecodeKey(encoded)
	if err != nil {
		it.err = err
		it.rows.Close()
		return false
	}

	entry.Key = key
	it.current = entry
	return true
}

func (it *rowIterator) Entry() kv.Entry { return it.current }

func (it *rowIterator) Err() error { return it.err }

// likePattern builds the LIKE pattern matching every key under prefix. The
// encoded prefix may contain '%' from query escaping, so LIKE specials are
// escaped before the wildcard is appended.
func likePattern(prefix kv.Key) string {
	return escapeLike(prefix.EncodePrefix()) + "%"
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func validTableName(name string) bool {
	if name == "" {
		return false
	}
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}
