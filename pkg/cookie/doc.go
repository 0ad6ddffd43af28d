// Package cookie provides HMAC-signed cookies with key rotation, built
// around an outbound jar instead of direct ResponseWriter writes.
//
// A Signer holds the rotating secret list: the newest secret signs every new
// cookie, and all secrets are tried during verification, so cookies issued
// before a rotation keep validating. Per request, Signer.Jar() yields a Jar
// that accumulates pending Set-Cookie state; Jar.Headers() renders it as
// header lines ready to merge into any response.
//
//	signer, err := cookie.NewSigner([]string{newSecret, oldSecret})
//	if err != nil {
//	    ...
//	}
//
//	jar := signer.Jar()
//	jar.Set("sid", sessionID, cookie.WithPath("/"))
//
//	for _, line := range jar.Headers().Values("Set-Cookie") {
//	    w.Header().Add("Set-Cookie", line)
//	}
//
// Reading verifies the signature transparently:
//
//	id, err := jar.Get(r, "sid")
//	switch {
//	case errors.Is(err, cookie.ErrCookieNotFound):
//	    // no cookie sent
//	case errors.Is(err, cookie.ErrInvalidSignature):
//	    // tampered or signed with an unknown key
//	}
package cookie
