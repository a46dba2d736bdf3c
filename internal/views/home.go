package views

import (
	"context"

	"github.com/a-h/templ"
)

type productCard struct {
	href  string
	title string
	blurb string
}

var homeCards = []productCard{
	{"/compare-loans", "Compare Home Loans", "Side-by-side rates, fees and eligibility from 15+ partner lenders."},
	{"/balance-transfer", "Balance Transfer", "Move your existing home loan to a lower rate and see the savings up front."},
	{"/loan-against-property", "Loan Against Property", "Unlock the value of residential or commercial property you already own."},
	{"/credit-check", "Free Credit Check", "A soft check that never affects your score."},
}

// HomePage is the landing page body.
func HomePage() templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		hero := Hero(
			"Borrow smarter with Borrowww",
			"Compare loans, transfer balances and check your credit health in one place.",
		)
		if h.err == nil {
			h.err = hero.Render(ctx, h.w)
		}
		h.raw("<section class=\"cards\">\n")
		for _, card := range homeCards {
			h.raw("<article class=\"card\">\n<h2><a")
			h.attr("href", card.href)
			h.raw(">")
			h.text(card.title)
			h.raw("</a></h2>\n<p>")
			h.text(card.blurb)
			h.raw("</p>\n</article>\n")
		}
		h.raw("</section>\n")
	})
}
