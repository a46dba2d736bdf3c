package views

import (
	"context"

	"github.com/a-h/templ"
)

// ScoreBand is the outcome of a soft credit check.
type ScoreBand struct {
	Band    string // "Excellent", "Good", "Fair", "Building"
	Advice  string
	MinRate float64 // best indicative rate for the band
}

// CreditCheckPage is the credit-check body. The form posts to the score
// action and swaps the band into #score-result.
func CreditCheckPage() templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		hero := Hero(
			"Check your credit health",
			"A soft enquiry that never shows up on your bureau report.",
		)
		if h.err == nil {
			h.err = hero.Render(ctx, h.w)
		}
		h.raw("<section class=\"content\">\n<h2>Estimate your band</h2>\n")
		h.raw("<form class=\"calculator\" hx-post=\"/credit-check/score\" hx-target=\"#score-result\">\n")
		writeNumberField(h, "monthly_income", "Monthly income (₹)", "85000")
		writeNumberField(h, "monthly_emi", "Existing monthly EMIs (₹)", "12000")
		writeNumberField(h, "missed_payments", "Missed payments in the last 2 years", "0")
		h.raw("<button type=\"submit\">Check my band</button>\n</form>\n")
		h.raw("<div id=\"score-result\"></div>\n</section>\n")
	})
}

// ScoreResult is the fragment swapped into the credit-check result slot.
func ScoreResult(s ScoreBand) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw("<div class=\"score\">\n<p>Your indicative band: <strong>")
		h.text(s.Band)
		h.raw("</strong></p>\n<p>")
		h.text(s.Advice)
		h.raw("</p>\n")
		if s.MinRate > 0 {
			h.rawf("<p>Best indicative rate for your band: <strong>%.2f%% p.a.</strong></p>\n", s.MinRate)
		}
		h.raw("</div>\n")
	})
}
