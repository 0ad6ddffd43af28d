// Package session provides cookie-identified sessions backed by an ordered
// key-value store. A session is a namespaced view over the shared store: all
// of its data lives under the key prefix [keySpace, id], the id travels in
// an HMAC-signed cookie, and namespacing guarantees one session can never
// read or write another session's entries.
//
// # Architecture
//
// A Manager is built once per process around a shared kv.Store and the
// rotating cookie signing keys. Per request, Manager.Session resolves the
// identity, either by verifying the signed cookie or by minting a fresh
// 128-bit random id, and returns a Session whose Get/Set/Delete/List
// operations are
// transparently namespaced. The resolved id is always queued as a signed
// cookie, so even a brand-new anonymous session is assigned durably on its
// first response.
//
//	Request ──► Manager.Session ──► Session{store, id, jar}
//	                                   │ Get/Set/Delete/List   (namespaced)
//	                                   │ Destroy/Refresh       (id rotation)
//	                                   ▼
//	                              Persist/Apply ──► response headers
//
// # Identity rotation
//
// Destroy deletes every entry under the current id and swaps in a fresh
// anonymous identity. Refresh migrates every entry to a new id, writing each
// value under the new key before deleting the old one, so an interrupted
// migration duplicates entries instead of losing them. Neither operation is
// transactional across keys; writers racing a Refresh against the same
// session may see entries migrated, duplicated or skipped.
//
// # Usage
//
//	store := kv.NewMemoryStore()
//	manager, err := session.New(store, []string{signingKey})
//	if err != nil {
//	    ...
//	}
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    sess, _ := manager.Session(r)
//	    _ = sess.SetJSON(r.Context(), "profile", profile)
//
//	    // After login, rotate the id and keep the data:
//	    _, _ = sess.Refresh(r.Context())
//
//	    sess.Apply(w) // flush cookie headers before the body
//	}
//
// The Middleware does the per-request wiring automatically: it stores the
// session in the request context and flushes cookie headers before the first
// body byte.
//
// # Error Handling
//
// Missing or tampered session cookies are never errors; resolution falls
// back to a fresh anonymous id. Store failures propagate unmodified. The
// package adds no retries.
package session
