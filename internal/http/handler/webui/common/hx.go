package common

import "net/http"

// IsFragmentRequest reports whether the client asked for an in-place HTML
// fragment swap rather than a full page. htmx declares this with the
// HX-Request header on every request it issues.
func IsFragmentRequest(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
