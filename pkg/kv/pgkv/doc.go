// Package pgkv provides a PostgreSQL-backed implementation of kv.Store.
//
// Entries live in a single table keyed by the flat key encoding. Prefix
// listing streams ordered rows straight from the server, so it is both lazy
// and lexicographic. The table is created automatically by Open; use New to
// wrap an existing pool with an existing table.
//
// Behavioral coverage against a live database is left to integration
// environments; the unit tests in this package cover the SQL-side helpers.
package pgkv
