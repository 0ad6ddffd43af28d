package pgkv

import "errors"

var (
	// ErrFailedToParseConfig indicates the connection string is invalid.
	ErrFailedToParseConfig = errors.New("pgkv.failed_to_parse_config")

	// ErrNotReady indicates the database did not answer pings within the
	// configured retry budget.
	ErrNotReady = errors.New("pgkv.not_ready")

	// ErrInvalidTableName indicates the configured table name contains
	// characters outside [a-zA-Z0-9_].
	ErrInvalidTableName = errors.New("pgkv.invalid_table_name")
)
