package site

import "github.com/borrowww/web/internal/views"

// The partner-lender offer table. Indicative figures maintained by the
// lending team; updated at deploy time like every other page input.
var offers = []views.Offer{
	{Lender: "HDFC Bank", Product: "Home Loan", RateFrom: 8.35, RateTo: 9.15, MaxLTV: 80, Processing: "0.50% (max ₹12,500)"},
	{Lender: "SBI", Product: "Home Loan", RateFrom: 8.50, RateTo: 9.45, MaxLTV: 80, Processing: "₹10,000 flat"},
	{Lender: "ICICI Bank", Product: "Home Loan", RateFrom: 8.40, RateTo: 9.25, MaxLTV: 75, Processing: "0.50%"},
	{Lender: "Kotak Mahindra", Product: "Balance Transfer", RateFrom: 8.30, RateTo: 8.90, MaxLTV: 80, Processing: "Waived"},
	{Lender: "HDFC Bank", Product: "Balance Transfer", RateFrom: 8.35, RateTo: 8.95, MaxLTV: 80, Processing: "₹3,000 flat"},
	{Lender: "Bajaj Finserv", Product: "Loan Against Property", RateFrom: 9.25, RateTo: 11.50, MaxLTV: 70, Processing: "1.00%"},
	{Lender: "Tata Capital", Product: "Loan Against Property", RateFrom: 9.40, RateTo: 11.75, MaxLTV: 65, Processing: "0.75%"},
	{Lender: "LIC Housing", Product: "Loan Against Property", RateFrom: 9.50, RateTo: 11.25, MaxLTV: 70, Processing: "0.50%"},
}

// ProductNames returns the distinct product names in offer order.
func ProductNames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, o := range offers {
		if !seen[o.Product] {
			seen[o.Product] = true
			names = append(names, o.Product)
		}
	}
	return names
}

// FilterOffers returns the offers for one product, or all offers when product
// is empty or unknown filters simply match nothing.
func FilterOffers(product string) []views.Offer {
	if product == "" {
		out := make([]views.Offer, len(offers))
		copy(out, offers)
		return out
	}
	var out []views.Offer
	for _, o := range offers {
		if o.Product == product {
			out = append(out, o)
		}
	}
	return out
}
