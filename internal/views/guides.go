package views

import (
	"context"

	"github.com/a-h/templ"
)

// GuideSummary is one entry on the guide index.
type GuideSummary struct {
	Slug    string
	Title   string
	Excerpt string
}

// GuideIndexPage lists the published guides.
func GuideIndexPage(guides []GuideSummary) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		hero := Hero("Borrowing guides", "Plain-language explainers written by our lending team.")
		if h.err == nil {
			h.err = hero.Render(ctx, h.w)
		}
		h.raw("<section class=\"cards\">\n")
		for _, g := range guides {
			h.raw("<article class=\"card\">\n<h2><a")
			h.attr("href", "/guides/"+g.Slug)
			h.raw(">")
			h.text(g.Title)
			h.raw("</a></h2>\n<p>")
			h.text(g.Excerpt)
			h.raw("</p>\n</article>\n")
		}
		h.raw("</section>\n")
	})
}

// GuidePage renders a single guide. body is trusted HTML produced by the
// markdown pipeline at startup.
func GuidePage(title string, body string) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw("<article class=\"guide\">\n<h1>")
		h.text(title)
		h.raw("</h1>\n")
		h.raw(body)
		h.raw("</article>\n")
	})
}
