package views

import (
	"context"
	"fmt"

	"github.com/a-h/templ"
)

// Savings is the computed outcome of a balance-transfer comparison.
type Savings struct {
	CurrentEMI  float64
	NewEMI      float64
	MonthlySave float64
	TotalSave   float64
	TenureYears int
}

// BalanceTransferPage is the balance-transfer body, including the savings
// calculator. The form posts to the savings action and swaps the result into
// #savings-result.
func BalanceTransferPage() templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		hero := Hero(
			"Transfer your home loan and save",
			"Most borrowers who moved through Borrowww cut their rate by over one percent.",
		)
		if h.err == nil {
			h.err = hero.Render(ctx, h.w)
		}
		h.raw("<section class=\"content\">\n<h2>Estimate your savings</h2>\n")
		h.raw("<form class=\"calculator\" hx-post=\"/balance-transfer/savings\" hx-target=\"#savings-result\">\n")
		writeNumberField(h, "outstanding", "Outstanding principal (₹)", "3500000")
		writeNumberField(h, "current_rate", "Current interest rate (% p.a.)", "9.5")
		writeNumberField(h, "new_rate", "New interest rate (% p.a.)", "8.35")
		writeNumberField(h, "tenure_years", "Remaining tenure (years)", "15")
		h.raw("<button type=\"submit\">Calculate savings</button>\n</form>\n")
		h.raw("<div id=\"savings-result\"></div>\n</section>\n")
	})
}

// SavingsResult is the fragment swapped into the calculator's result slot.
func SavingsResult(s Savings) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw("<div class=\"savings\">\n")
		h.rawf("<p>Current EMI: <strong>₹%.0f</strong> · New EMI: <strong>₹%.0f</strong></p>\n", s.CurrentEMI, s.NewEMI)
		h.rawf("<p>You save <strong>₹%.0f every month</strong>", s.MonthlySave)
		h.rawf(" and about <strong>₹%.0f over %d years</strong>.</p>\n", s.TotalSave, s.TenureYears)
		h.raw("</div>\n")
	})
}

// CalculatorError is the fragment shown when the submitted numbers do not
// form a valid comparison.
func CalculatorError(msg string) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw("<p class=\"form-error\">")
		h.text(msg)
		h.raw("</p>\n")
	})
}

func writeNumberField(h *htmlWriter, name, label, placeholder string) {
	h.raw("<label>")
	h.text(label)
	h.raw("<input type=\"number\" step=\"any\"")
	h.attr("name", name)
	h.attr("placeholder", placeholder)
	h.raw(" required></label>\n")
}

func formatRate(from, to float64) string {
	if from == to {
		return fmt.Sprintf("%.2f%%", from)
	}
	return fmt.Sprintf("%.2f%% – %.2f%%", from, to)
}
