package pages

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router is the registration surface Mount needs. Both http.ServeMux and chi
// satisfy it through the adapters below.
type Router interface {
	HandleMethod(method, pattern string, handler http.Handler)
}

type stdRouter struct {
	mux *http.ServeMux
}

// NewRouter wraps an http.ServeMux as a Router. A nil mux uses
// http.DefaultServeMux.
func NewRouter(mux *http.ServeMux) *stdRouter {
	if mux == nil {
		mux = http.DefaultServeMux
	}
	return &stdRouter{mux: mux}
}

func (r *stdRouter) HandleMethod(method, pattern string, handler http.Handler) {
	if method != "" {
		pattern = method + " " + pattern
	}
	r.mux.Handle(pattern, handler)
}

func (r *stdRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

type chiRouter struct {
	router chi.Router
}

// NewChiRouter wraps a chi.Router as a Router.
func NewChiRouter(router chi.Router) *chiRouter {
	return &chiRouter{router: router}
}

func (r *chiRouter) HandleMethod(method, pattern string, handler http.Handler) {
	// chi has no {$} terminator; the root page registers as a plain "/".
	if pattern == "/{$}" {
		pattern = "/"
	}
	if method == "" {
		r.router.Handle(pattern, handler)
		return
	}
	r.router.Method(method, pattern, handler)
}

func (r *chiRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
