// Package config loads configuration structs from environment variables,
// with optional .env file support for local development.
//
// Field mapping uses `env` struct tags as understood by caarlos0/env:
//
//	type ServerConfig struct {
//		Addr string `env:"SERVER_ADDR" envDefault:":8080"`
//	}
//
// The .env file, when present, is loaded into the process environment the
// first time Load is called; real environment variables always win over
// .env entries.
package config
