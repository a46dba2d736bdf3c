package views

import (
	"context"

	"github.com/a-h/templ"
)

// AboutPage is the about-us body.
func AboutPage() templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		hero := Hero(
			"About Borrowww",
			"Premier Penny's digital lending partner.",
		)
		if h.err == nil {
			h.err = hero.Render(ctx, h.w)
		}
		body := Section("Who we are",
			Paragraphs(
				"Borrowww is the digital lending arm of Premier Penny, built to take the paperwork and guesswork out of borrowing.",
				"We work with a panel of banks and NBFCs to surface real, comparable offers for home loans, balance transfers and loans against property.",
				"Our comparison engine is free to use and lender-agnostic: we show the same numbers the lender will.",
			),
		)
		if h.err == nil {
			h.err = body.Render(ctx, h.w)
		}
		values := Section("How we earn",
			Paragraphs(
				"Borrowww is paid a referral fee by lenders when a loan completes. The fee never changes the rate you are offered, and we disclose it on every offer card.",
			),
		)
		if h.err == nil {
			h.err = values.Render(ctx, h.w)
		}
	})
}
