package rediskv

import "errors"

var (
	// ErrFailedToParseConnString indicates the Redis connection URL is invalid.
	ErrFailedToParseConnString = errors.New("rediskv.failed_to_parse_connection_string")

	// ErrNotReady indicates the Redis server did not answer pings within the
	// configured retry budget.
	ErrNotReady = errors.New("rediskv.not_ready")
)
