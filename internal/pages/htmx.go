package pages

import (
	"net/http"

	"github.com/angelofallars/htmx-go"
)

// partialName returns the fragment to render for an HTMX request: the
// Hx-Target element id, or "" when the full document should be served.
func partialName(r *http.Request) string {
	if !htmx.IsHTMX(r) {
		return ""
	}
	return r.Header.Get("Hx-Target")
}
