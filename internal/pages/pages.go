// Package pages implements the site's static page registry. Every page is
// declared before the server starts: a path, its head metadata and a component
// that renders the body. After Mount the table is read-only; resolving a
// request is a plain table hit with no fallible work.
package pages

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"

	"github.com/borrowww/web/internal/seo"
)

// Page is a declared site page: immutable metadata plus a component producing
// the full document for a request.
type Page interface {
	Meta() seo.Meta
	Page(r *http.Request) templ.Component
}

// PartialProvider is implemented by pages that can render named fragments for
// HTMX requests. Keys match the Hx-Target element id.
type PartialProvider interface {
	Partials() map[string]func(r *http.Request) templ.Component
}

// Entry pairs one route with one page. Entries are created via Add and never
// mutated afterwards.
type Entry struct {
	Method string
	Path   string
	Meta   seo.Meta

	page   Page
	action func(r *http.Request) templ.Component
}

// MiddlewareFunc wraps a page handler; the entry is available for logging or
// metric labels.
type MiddlewareFunc = func(next http.Handler, e *Entry) http.Handler

// Registry is the static route table.
type Registry struct {
	onError     func(http.ResponseWriter, *http.Request, error)
	middlewares []MiddlewareFunc
	entries     []*Entry
	byPath      map[string]*Entry
}

// Option configures a Registry.
type Option func(*Registry)

// WithErrorHandler overrides the render-failure handler. The default writes a
// plain 500.
func WithErrorHandler(onError func(http.ResponseWriter, *http.Request, error)) Option {
	return func(reg *Registry) {
		reg.onError = onError
	}
}

// WithMiddlewares appends registry-wide middleware applied to every entry.
func WithMiddlewares(middlewares ...MiddlewareFunc) Option {
	return func(reg *Registry) {
		reg.middlewares = append(reg.middlewares, middlewares...)
	}
}

func New(options ...Option) *Registry {
	reg := &Registry{
		onError: func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		},
		byPath: make(map[string]*Entry),
	}
	for _, opt := range options {
		opt(reg)
	}
	return reg
}

// Add declares a document page served with GET. It panics on a duplicate path
// or incomplete metadata: the table is assembled at startup and a bad entry is
// a programmer error, not a runtime condition.
func (reg *Registry) Add(path string, page Page) *Entry {
	meta := page.Meta()
	if !meta.Valid() {
		panic(fmt.Sprintf("pages: %q declares empty title or description", path))
	}
	return reg.add(&Entry{Method: http.MethodGet, Path: path, Meta: meta, page: page})
}

// Action declares a non-document endpoint (typically an HTMX POST target)
// rendered through the same buffered pipeline. Actions carry no metadata and
// are excluded from the sitemap.
func (reg *Registry) Action(method, path string, fn func(r *http.Request) templ.Component) *Entry {
	return reg.add(&Entry{Method: method, Path: path, action: fn})
}

func (reg *Registry) add(e *Entry) *Entry {
	if e.Path == "" {
		panic("pages: empty route path")
	}
	key := e.Method + " " + e.Path
	if _, exists := reg.byPath[key]; exists {
		panic(fmt.Sprintf("pages: duplicate route %s", key))
	}
	reg.byPath[key] = e
	reg.entries = append(reg.entries, e)
	return e
}

// Mount registers every declared entry on the router.
func (reg *Registry) Mount(router Router) {
	for _, e := range reg.entries {
		handler := reg.buildHandler(e)
		for _, mw := range reg.middlewares {
			handler = mw(handler, e)
		}
		router.HandleMethod(e.Method, routePattern(e.Path), handler)
	}
}

// Entries returns the declared entries in registration order.
func (reg *Registry) Entries() []*Entry {
	out := make([]*Entry, len(reg.entries))
	copy(out, reg.entries)
	return out
}

// Lookup returns the entry for a GET document path.
func (reg *Registry) Lookup(path string) (*Entry, bool) {
	e, ok := reg.byPath[http.MethodGet+" "+path]
	return e, ok
}

// DocumentPaths returns the GET page paths for sitemap generation, with
// parameterised routes excluded and the rest in registration order.
func (reg *Registry) DocumentPaths() []string {
	var paths []string
	for _, e := range reg.entries {
		if e.Method != http.MethodGet || e.page == nil {
			continue
		}
		if segs, err := parseSegments(e.Path); err == nil && hasParams(segs) {
			continue
		}
		paths = append(paths, e.Path)
	}
	return paths
}

func (reg *Registry) buildHandler(e *Entry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		comp := reg.resolveComponent(e, r)
		buf := newBuffered(w)
		if err := comp.Render(r.Context(), buf); err != nil {
			buf.discard()
			reg.onError(w, r, fmt.Errorf("rendering %s %s: %w", e.Method, e.Path, err))
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := buf.close(); err != nil {
			// Response is already partially written; nothing sane to emit.
			return
		}
	})
}

// resolveComponent picks the named partial for HTMX requests when the page
// provides one, otherwise the full document (or the action's fragment).
func (reg *Registry) resolveComponent(e *Entry, r *http.Request) templ.Component {
	if e.action != nil {
		return e.action(r)
	}
	if name := partialName(r); name != "" {
		if pp, ok := e.page.(PartialProvider); ok {
			if fn, ok := pp.Partials()[name]; ok {
				return fn(r)
			}
		}
	}
	return e.page.Page(r)
}

// routePattern appends {$} to the root path so the ServeMux adapter does not
// treat "/" as a catch-all. chi ignores the marker via its adapter.
func routePattern(path string) string {
	if path == "/" {
		return "/{$}"
	}
	return path
}

func hasParams(segs []segment) bool {
	for _, s := range segs {
		if s.param {
			return true
		}
	}
	return false
}
