package pgkv

import "time"

// Config holds PostgreSQL connection settings for Open.
type Config struct {
	ConnectionString string        `env:"PG_CONN_URL,required"`                  // Standard postgres:// connection string
	Table            string        `env:"PG_KV_TABLE" envDefault:"kv_entries"`  // Table holding the entries; created on Open if missing
	MaxOpenConns     int32         `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`    // Maximum number of open connections in the pool
	MaxIdleConns     int32         `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`     // Minimum number of idle connections kept in the pool
	RetryAttempts    int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`     // Number of connection attempts before giving up
	RetryInterval    time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"5s"`    // Base delay between connection attempts, grows linearly
}

// DefaultConfig returns pool defaults suitable for local development.
// ConnectionString must still be provided.
func DefaultConfig() Config {
	return Config{
		Table:         "kv_entries",
		MaxOpenConns:  10,
		MaxIdleConns:  5,
		RetryAttempts: 3,
		RetryInterval: 5 * time.Second,
	}
}
