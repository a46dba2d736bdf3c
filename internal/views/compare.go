package views

import (
	"context"

	"github.com/a-h/templ"
)

// Offer is one lender's indicative loan offer.
type Offer struct {
	Lender     string
	Product    string
	RateFrom   float64
	RateTo     float64
	MaxLTV     int // percent of property value
	Processing string
}

// ComparePage is the loan-comparison body. The product filter issues an HTMX
// GET back to the same path and swaps #offer-table.
func ComparePage(products []string, offers []Offer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		hero := Hero(
			"Compare loan offers",
			"Live indicative rates from our partner lenders. No sign-up needed.",
		)
		if h.err == nil {
			h.err = hero.Render(ctx, h.w)
		}
		h.raw("<section class=\"content\">\n")
		h.raw("<form hx-get=\"/compare-loans\" hx-target=\"#offer-table\">\n<label>Product\n")
		h.raw("<select name=\"product\" hx-trigger=\"change\" hx-get=\"/compare-loans\" hx-target=\"#offer-table\">\n")
		h.raw("<option value=\"\">All products</option>\n")
		for _, p := range products {
			h.raw("<option")
			h.attr("value", p)
			h.raw(">")
			h.text(p)
			h.raw("</option>\n")
		}
		h.raw("</select>\n</label>\n</form>\n")
		if h.err == nil {
			h.err = OfferTable(offers).Render(ctx, h.w)
		}
		h.raw("</section>\n")
	})
}

// OfferTable is the sortable offer listing, also served as the filter
// fragment.
func OfferTable(offers []Offer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw("<div id=\"offer-table\">\n")
		if len(offers) == 0 {
			h.raw("<p>No offers match that filter.</p>\n</div>\n")
			return
		}
		h.raw("<table>\n<thead><tr><th>Lender</th><th>Product</th><th>Rate (p.a.)</th><th>Max LTV</th><th>Processing fee</th></tr></thead>\n<tbody>\n")
		for _, o := range offers {
			h.raw("<tr><td>")
			h.text(o.Lender)
			h.raw("</td><td>")
			h.text(o.Product)
			h.raw("</td><td>")
			h.text(formatRate(o.RateFrom, o.RateTo))
			h.rawf("</td><td>%d%%</td><td>", o.MaxLTV)
			h.text(o.Processing)
			h.raw("</td></tr>\n")
		}
		h.raw("</tbody>\n</table>\n</div>\n")
	})
}
