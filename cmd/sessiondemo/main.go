// Command sessiondemo runs a small HTTP server demonstrating cookie-backed
// sessions over a key-value store. It uses Redis when REDIS_URL is set and
// falls back to the in-memory store otherwise.
//
// Required environment: SESSION_SIGNING_KEYS (comma-separated, newest first).
package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/sessionkv/pkg/config"
	"github.com/dmitrymomot/sessionkv/pkg/kv"
	"github.com/dmitrymomot/sessionkv/pkg/kv/rediskv"
	"github.com/dmitrymomot/sessionkv/pkg/session"
)

type serverConfig struct {
	Addr     string `env:"SERVER_ADDR" envDefault:":8080"`
	RedisURL string `env:"REDIS_URL" envDefault:""`
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	var srvCfg serverConfig
	if err := config.Load(&srvCfg); err != nil {
		return err
	}

	var sessCfg session.Config
	if err := config.Load(&sessCfg); err != nil {
		return err
	}

	store, err := openStore(context.Background(), srvCfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	manager, err := session.NewFromConfig(sessCfg, store, session.WithLogger(logger))
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(manager.Middleware)

	r.Get("/session", showSession)
	r.Get("/session/{key}", getValue)
	r.Put("/session/{key}", setValue)
	r.Delete("/session/{key}", deleteValue)
	r.Post("/session/refresh", refreshSession)
	r.Post("/session/destroy", destroySession)

	logger.Info("listening", slog.String("addr", srvCfg.Addr))
	return http.ListenAndServe(srvCfg.Addr, r)
}

func openStore(ctx context.Context, cfg serverConfig, logger *slog.Logger) (kv.Store, error) {
	if cfg.RedisURL == "" {
		logger.Info("using in-memory store")
		return kv.NewMemoryStore(), nil
	}

	redisCfg := rediskv.DefaultConfig()
	redisCfg.ConnectionURL = cfg.RedisURL

	logger.Info("connecting to redis")
	return rediskv.Open(ctx, redisCfg)
}

func showSession(w http.ResponseWriter, r *http.Request) {
	sess := session.MustFromContext(r.Context())

	entries := map[string]string{}
	it := sess.List(r.Context())
	for it.Next(r.Context()) {
		entry := it.Entry()
		entries[entry.Key.String()] = string(entry.Value)
	}
	if err := it.Err(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{
		"id":      sess.ID(),
		"entries": entries,
	})
}

func getValue(w http.ResponseWriter, r *http.Request) {
	sess := session.MustFromContext(r.Context())

	entry, ok, err := sess.Get(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}

	_, _ = w.Write(entry.Value)
}

func setValue(w http.ResponseWriter, r *http.Request) {
	sess := session.MustFromContext(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := sess.Set(r.Context(), chi.URLParam(r, "key"), body); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, session.ErrInvalidKeyPart) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func deleteValue(w http.ResponseWriter, r *http.Request) {
	sess := session.MustFromContext(r.Context())

	if err := sess.Delete(r.Context(), chi.URLParam(r, "key")); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func refreshSession(w http.ResponseWriter, r *http.Request) {
	sess := session.MustFromContext(r.Context())

	id, err := sess.Refresh(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{"id": id})
}

func destroySession(w http.ResponseWriter, r *http.Request) {
	sess := session.MustFromContext(r.Context())

	if err := sess.Destroy(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{"id": sess.ID()})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
