package rediskv

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/sessionkv/pkg/kv"
)

// Hash fields holding the entry payload and its per-write version token.
const (
	fieldValue   = "val"
	fieldVersion = "ver"
)

// Store implements kv.Store on top of Redis. Each entry is a hash with value
// and version fields keyed by the flat-encoded key, so a single HSET keeps
// value and version consistent.
type Store struct {
	client redis.UniversalClient
}

var _ kv.Store = (*Store)(nil)

// New wraps an existing Redis client. The caller keeps ownership of the
// client unless Close is used.
func New(client redis.UniversalClient) *Store {
	return &Store{client: client}
}

// Open connects to Redis using cfg, retrying pings until the server answers
// or the retry budget is exhausted.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseConnString, err)
	}

	for i := 0; i < cfg.RetryAttempts; i++ {
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err == nil {
			return New(client), nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrNotReady
}

// Get returns the entry stored under key.
func (s *Store) Get(ctx context.Context, key kv.Key) (kv.Entry, bool, error) {
	if len(key) == 0 {
		return kv.Entry{}, false, kv.ErrEmptyKey
	}

	fields, err := s.client.HGetAll(ctx, key.Encode()).Result()
	if err != nil {
		return kv.Entry{}, false, err
	}
	if len(fields) == 0 {
		return kv.Entry{}, false, nil
	}

	return kv.Entry{
		Key:     key,
		Value:   []byte(fields[fieldValue]),
		Version: fields[fieldVersion],
	}, true, nil
}

// Set stores value under key with a fresh version token.
func (s *Store) Set(ctx context.Context, key kv.Key, value []byte) error {
	if len(key) == 0 {
		return kv.ErrEmptyKey
	}

	return s.client.HSet(ctx, key.Encode(),
		fieldValue, value,
		fieldVersion, uuid.NewString(),
	).Err()
}

// Delete removes key. Absent keys are ignored.
func (s *Store) Delete(ctx context.Context, key kv.Key) error {
	if len(key) == 0 {
		return kv.ErrEmptyKey
	}

	return s.client.Del(ctx, key.Encode()).Err()
}

// List scans all entries under prefix lazily via SCAN. Iteration order is
// whatever the server yields; SCAN may report a key more than once, so the
// iterator deduplicates. The cursor is created per call, never reused.
func (s *Store) List(ctx context.Context, prefix kv.Key) kv.Iterator {
	match := prefix.EncodePrefix() + "*"

	return &scanIterator{
		store: s,
		scan:  s.client.Scan(ctx, 0, match, 0).Iterator(),
		seen:  make(map[string]struct{}),
	}
}

// Close closes the underlying Redis client.
func (s *Store) Close() error {
	return s.client.Close()
}

type scanIterator struct {
	store   *Store
	scan    *redis.ScanIterator
	seen    map[string]struct{}
	current kv.Entry
	err     error
}

func (it *scanIterator) Next(ctx context.Context) bool {
	if it.err != nil {
		return false
	}

	for it.scan.Next(ctx) {
		encoded := it.scan.Val()
		if _, dup := it.seen[encoded]; dup {
			continue
		}
		it.seen[encoded] = struct{}{}

		key, err := kv.DecodeKey(encoded)
		if err != nil {
			it.err = err
			return false
		}

		entry, ok, err := it.store.Get(ctx, key)
		if err != nil {
			it.err = err
			return false
		}
		if !ok {
			// Deleted between SCAN and fetch.
			continue
		}

		it.current = entry
		return true
	}

	it.err = it.scan.Err()
	return false
}

func (it *scanIterator) Entry() kv.Entry { return it.current }

func (it *scanIterator) Err() error { return it.err }
