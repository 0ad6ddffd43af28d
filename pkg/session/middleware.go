package session

import (
	"log/slog"
	"net/http"
)

// Middleware resolves a session for every request, injects it into the
// request context and flushes the session's cookie headers right before the
// response headers are written. Handlers retrieve the session with
// FromContext and may call Destroy or Refresh at any point before writing
// the body.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.Session(r)
		if err != nil {
			m.logger.ErrorContext(r.Context(), "failed to create session",
				slog.Any("error", err),
			)
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}

		ctx := WithSession(r.Context(), sess)
		fw := &flushWriter{ResponseWriter: w, session: sess}

		next.ServeHTTP(fw, r.WithContext(ctx))

		// Handler produced no output; attach cookies before the implicit 200.
		fw.flush()
	})
}

// flushWriter applies the session's pending cookie headers exactly once,
// before the first byte of the response.
type flushWriter struct {
	http.ResponseWriter
	session *Session
	flushed bool
}

func (w *flushWriter) WriteHeader(code int) {
	w.flush()
	w.ResponseWriter.WriteHeader(code)
}

func (w *flushWriter) Write(b []byte) (int, error) {
	w.flush()
	return w.ResponseWriter.Write(b)
}

func (w *flushWriter) flush() {
	if w.flushed {
		return
	}
	w.flushed = true
	w.session.Apply(w.ResponseWriter)
}

// Unwrap exposes the wrapped writer so http.ResponseController can reach
// optional capabilities (Flush, Hijack, deadlines) of the original.
func (w *flushWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// Flush forwards to the underlying writer for streaming handlers that
// type-assert http.Flusher directly. Cookie headers are attached first,
// since flushing commits the response headers.
func (w *flushWriter) Flush() {
	w.flush()
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
