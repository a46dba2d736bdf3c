package views

import (
	"context"

	"github.com/a-h/templ"
)

// LoanAgainstPropertyPage is the LAP product body.
func LoanAgainstPropertyPage() templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		hero := Hero(
			"Loan against property",
			"Borrow up to 70% of your property's value at rates well below personal loans.",
		)
		if h.err == nil {
			h.err = hero.Render(ctx, h.w)
		}
		features := Section("Why a LAP through Borrowww",
			Paragraphs(
				"Residential, commercial and industrial property accepted, with tenures up to 15 years.",
				"One application reaches every partner lender that accepts your property type, so you compare final sanctioned terms rather than advertised ones.",
				"Doorstep document pickup and a single point of contact until disbursal.",
			),
			CTA("/compare-loans", "See indicative LAP rates"),
		)
		if h.err == nil {
			h.err = features.Render(ctx, h.w)
		}
		eligibility := Section("Basic eligibility",
			Paragraphs(
				"Clear and marketable title in the applicant's name.",
				"Demonstrable repayment capacity from salary, business income or rentals.",
				"Property located in a municipality we currently serve.",
			),
		)
		if h.err == nil {
			h.err = eligibility.Render(ctx, h.w)
		}
	})
}
