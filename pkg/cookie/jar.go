package cookie

import (
	"net/http"
	"time"
)

// Jar accumulates outbound cookies for a single response. Nothing is written
// to the network until the jar's headers are merged into a response; setting
// the same cookie name twice keeps only the latest state.
type Jar struct {
	signer  *Signer
	pending []*http.Cookie
}

// Get reads the named cookie from the request and verifies its signature
// against the signer's rotating secrets.
func (j *Jar) Get(r *http.Request, name string) (string, error) {
	return j.signer.GetSigned(r, name)
}

// Set queues a signed cookie for the response, replacing any queued cookie
// of the same name.
func (j *Jar) Set(name, value string, opts ...Option) {
	options := applyOptions(j.signer.defaults, opts)

	j.put(&http.Cookie{
		Name:     name,
		Value:    j.signer.sign(value),
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
}

// Delete queues an expired cookie so the client drops the named cookie.
func (j *Jar) Delete(name string, opts ...Option) {
	options := applyOptions(j.signer.defaults, opts)

	j.put(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
}

// Headers renders the queued cookies as Set-Cookie header lines.
func (j *Jar) Headers() http.Header {
	h := http.Header{}
	for _, c := range j.pending {
		if v := c.String(); v != "" {
			h.Add("Set-Cookie", v)
		}
	}
	return h
}

// put replaces a queued cookie with the same name or appends a new one.
func (j *Jar) put(c *http.Cookie) {
	for i, existing := range j.pending {
		if existing.Name == c.Name {
			j.pending[i] = c
			return
		}
	}
	j.pending = append(j.pending, c)
}
