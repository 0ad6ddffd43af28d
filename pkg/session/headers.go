package session

import (
	"net/http"
	"slices"
)

// HeaderSource is anything that can contribute headers to a response. The
// cookie jar satisfies it, as can framework response builders.
type HeaderSource interface {
	Headers() http.Header
}

// Persist merges the given header sources with the session's pending cookie
// headers into a single header set. Supported sources are http.Header,
// map[string]string, map[string][]string and HeaderSource; nil and
// unsupported sources are skipped. For ordinary keys the last source wins;
// Set-Cookie is multi-valued and always appended, and the session's own
// Set-Cookie entries are applied last.
func (s *Session) Persist(sources ...any) http.Header {
	merged := http.Header{}

	for _, src := range sources {
		switch h := src.(type) {
		case http.Header:
			mergeHeader(merged, h)
		case map[string][]string:
			mergeHeader(merged, h)
		case map[string]string:
			for k, v := range h {
				if http.CanonicalHeaderKey(k) == "Set-Cookie" {
					addSetCookie(merged, v)
				} else {
					merged.Set(k, v)
				}
			}
		case HeaderSource:
			if h != nil {
				mergeHeader(merged, h.Headers())
			}
		}
	}

	mergeHeader(merged, s.jar.Headers())
	return merged
}

// Send returns a shallow copy of resp with its headers replaced by the merge
// of the original headers and the session's cookie headers. Body, status and
// trailers are untouched.
func (s *Session) Send(resp *http.Response) *http.Response {
	out := *resp
	out.Header = s.Persist(resp.Header)
	return &out
}

// Apply rewrites w's headers in place to the merge of the current headers
// and the session's cookie headers. Must be called before the first byte of
// the body is written.
func (s *Session) Apply(w http.ResponseWriter) {
	merged := s.Persist(w.Header())

	h := w.Header()
	clear(h)
	for k, vs := range merged {
		h[k] = vs
	}
}

func mergeHeader(dst http.Header, src map[string][]string) {
	for k, vs := range src {
		canonical := http.CanonicalHeaderKey(k)
		if canonical == "Set-Cookie" {
			for _, v := range vs {
				addSetCookie(dst, v)
			}
			continue
		}

		dst[canonical] = append([]string(nil), vs...)
	}
}

// addSetCookie appends a Set-Cookie line unless the identical line is
// already present, which keeps repeated merges from stacking duplicates.
func addSetCookie(dst http.Header, value string) {
	if slices.Contains(dst.Values("Set-Cookie"), value) {
		return
	}
	dst.Add("Set-Cookie", value)
}
