package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Hero is the lead banner used by most pages.
func Hero(title, subtitle string) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw("<section class=\"hero\">\n<h1>")
		h.text(title)
		h.raw("</h1>\n<p>")
		h.text(subtitle)
		h.raw("</p>\n</section>\n")
	})
}

// CTA renders a call-to-action link styled as a button.
func CTA(href, label string) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw("<a class=\"cta\"")
		h.attr("href", href)
		h.raw(">")
		h.text(label)
		h.raw("</a>\n")
	})
}

// Section wraps children in a titled content section.
func Section(title string, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<section class=\"content\">\n<h2>")
		h.text(title)
		h.raw("</h2>\n")
		if h.err != nil {
			return h.err
		}
		for _, child := range children {
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		h.raw("</section>\n")
		return h.err
	})
}

// Paragraphs renders plain text paragraphs.
func Paragraphs(texts ...string) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		for _, t := range texts {
			h.raw("<p>")
			h.text(t)
			h.raw("</p>\n")
		}
	})
}
