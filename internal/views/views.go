// Package views renders the site's HTML. Components are hand-built
// templ.Component values: each one writes markup through a small error-
// tracking writer, with every dynamic value escaped.
package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/borrowww/web/internal/seo"
)

// NavLink is one entry in the site navigation.
type NavLink struct {
	Href  string
	Label string
}

// DefaultNav is the primary navigation, shared by every page.
var DefaultNav = []NavLink{
	{Href: "/", Label: "Home"},
	{Href: "/compare-loans", Label: "Compare Loans"},
	{Href: "/balance-transfer", Label: "Balance Transfer"},
	{Href: "/loan-against-property", Label: "Loan Against Property"},
	{Href: "/credit-check", Label: "Credit Check"},
	{Href: "/guides", Label: "Guides"},
	{Href: "/about", Label: "About Us"},
}

// htmlWriter accumulates the first write error so component bodies stay
// readable.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) rawf(format string, args ...any) {
	if h.err != nil {
		return
	}
	_, h.err = fmt.Fprintf(h.w, format, args...)
}

// text writes escaped text content.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes a key="value" attribute with the value escaped.
func (h *htmlWriter) attr(name, value string) {
	h.rawf(` %s="%s"`, name, templ.EscapeString(value))
}

func component(fn func(ctx context.Context, h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		fn(ctx, h)
		return h.err
	})
}

// Document wraps a body component in the full HTML shell, emitting the page's
// head metadata exactly as declared.
func Document(meta seo.Meta, currentPath string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
		h.raw("<meta charset=\"utf-8\">\n")
		h.raw("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
		h.raw("<title>")
		h.text(meta.Title)
		h.raw("</title>\n")
		h.raw("<meta name=\"description\"")
		h.attr("content", meta.Description)
		h.raw(">\n")
		if meta.Canonical != "" {
			h.raw("<link rel=\"canonical\"")
			h.attr("href", meta.Canonical)
			h.raw(">\n")
		}
		writeOpenGraph(h, meta)
		h.raw("<link rel=\"stylesheet\" href=\"/static/site.css\">\n")
		h.raw("<script src=\"https://unpkg.com/htmx.org@1.9.12\" defer></script>\n")
		h.raw("</head>\n<body>\n")
		writeNav(h, currentPath)
		h.raw("<main>\n")
		if h.err != nil {
			return h.err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		h.raw("\n</main>\n")
		writeFooter(h)
		h.raw("</body>\n</html>\n")
		return h.err
	})
}

func writeOpenGraph(h *htmlWriter, meta seo.Meta) {
	og := meta.OG
	if og.Title == "" {
		og.Title = meta.Title
	}
	if og.Description == "" {
		og.Description = meta.Description
	}
	if og.Type == "" {
		og.Type = "website"
	}
	ogProp := func(property, content string) {
		if content == "" {
			return
		}
		h.raw("<meta")
		h.attr("property", property)
		h.attr("content", content)
		h.raw(">\n")
	}
	ogProp("og:title", og.Title)
	ogProp("og:description", og.Description)
	ogProp("og:type", og.Type)
	ogProp("og:image", og.Image)
	if meta.Twitter.Card != "" {
		h.raw("<meta name=\"twitter:card\"")
		h.attr("content", meta.Twitter.Card)
		h.raw(">\n")
	}
}

func writeNav(h *htmlWriter, currentPath string) {
	h.raw("<header class=\"site-header\">\n")
	h.raw("<a class=\"brand\" href=\"/\">Borrowww</a>\n<nav>\n")
	for _, link := range DefaultNav {
		h.raw("<a")
		h.attr("href", link.Href)
		if link.Href == currentPath {
			h.attr("class", "active")
		}
		h.raw(">")
		h.text(link.Label)
		h.raw("</a>\n")
	}
	h.raw("</nav>\n</header>\n")
}

func writeFooter(h *htmlWriter) {
	h.raw("<footer class=\"site-footer\">\n")
	h.raw("<p>Borrowww is Premier Penny's digital lending platform. Loan offers are indicative and subject to lender approval.</p>\n")
	h.raw("<p><a href=\"/about\">About</a> · <a href=\"/guides\">Guides</a></p>\n")
	h.raw("</footer>\n")
}
