// Package site declares the borrowww.com page set: every route, its head
// metadata and the component that renders it. The whole table is assembled
// before the server starts serving and never changes afterwards.
package site

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/borrowww/web/internal/content"
	"github.com/borrowww/web/internal/pages"
	"github.com/borrowww/web/internal/seo"
	"github.com/borrowww/web/internal/views"
)

// BuildRegistry assembles the full page table. baseURL is the canonical site
// origin used for canonical links; guides become one static entry each.
func BuildRegistry(baseURL string, guides []content.Guide, options ...pages.Option) *pages.Registry {
	base := strings.TrimRight(baseURL, "/")
	reg := pages.New(options...)

	reg.Add("/", homePage{base: base})
	reg.Add("/about", aboutPage{base: base})
	reg.Add("/balance-transfer", balanceTransferPage{base: base})
	reg.Add("/compare-loans", comparePage{base: base})
	reg.Add("/loan-against-property", lapPage{base: base})
	reg.Add("/credit-check", creditCheckPage{base: base})

	reg.Add("/guides", guideIndexPage{base: base, guides: guides})
	for _, g := range guides {
		reg.Add("/guides/"+g.Slug, guidePage{base: base, guide: g})
	}

	reg.Action(http.MethodPost, "/balance-transfer/savings", savingsAction)
	reg.Action(http.MethodPost, "/credit-check/score", scoreAction)

	return reg
}

type homePage struct{ base string }

func (p homePage) Meta() seo.Meta {
	return seo.Meta{
		Title:       "Borrowww - Compare Home Loans, Balance Transfers & More",
		Description: "Borrowww is Premier Penny's digital lending platform. Compare home loans, transfer your balance and check your credit health for free.",
		Canonical:   p.base + "/",
		Twitter:     seo.Twitter{Card: "summary_large_image"},
	}
}

func (p homePage) Page(r *http.Request) templ.Component {
	return views.Document(p.Meta(), "/", views.HomePage())
}

type aboutPage struct{ base string }

func (p aboutPage) Meta() seo.Meta {
	return seo.Meta{
		Title:       "About Us | Borrowww - Premier Penny's Digital Lending Partner",
		Description: "Learn how Borrowww works with partner banks and NBFCs to bring transparent, comparable loan offers to every borrower.",
		Canonical:   p.base + "/about",
	}
}

func (p aboutPage) Page(r *http.Request) templ.Component {
	return views.Document(p.Meta(), "/about", views.AboutPage())
}

type balanceTransferPage struct{ base string }

func (p balanceTransferPage) Meta() seo.Meta {
	return seo.Meta{
		Title:       "Balance Transfer - Transfer Your Home Loan & Save | Borrowww",
		Description: "Move your existing home loan to a lower rate through Borrowww. Calculate your monthly and lifetime savings before you apply.",
		Canonical:   p.base + "/balance-transfer",
	}
}

func (p balanceTransferPage) Page(r *http.Request) templ.Component {
	return views.Document(p.Meta(), "/balance-transfer", views.BalanceTransferPage())
}

type comparePage struct{ base string }

func (p comparePage) Meta() seo.Meta {
	return seo.Meta{
		Title:       "Compare Home Loan & LAP Offers From 15+ Lenders | Borrowww",
		Description: "Side-by-side interest rates, fees and loan-to-value limits from Borrowww's partner lenders, updated for every product.",
		Canonical:   p.base + "/compare-loans",
	}
}

func (p comparePage) Page(r *http.Request) templ.Component {
	product := r.URL.Query().Get("product")
	body := views.ComparePage(ProductNames(), FilterOffers(product))
	return views.Document(p.Meta(), "/compare-loans", body)
}

// Partials serves the offer table alone when the product filter fires an
// HTMX request.
func (p comparePage) Partials() map[string]func(r *http.Request) templ.Component {
	return map[string]func(r *http.Request) templ.Component{
		"offer-table": func(r *http.Request) templ.Component {
			return views.OfferTable(FilterOffers(r.URL.Query().Get("product")))
		},
	}
}

type lapPage struct{ base string }

func (p lapPage) Meta() seo.Meta {
	return seo.Meta{
		Title:       "Loan Against Property - Rates From 9.25% | Borrowww",
		Description: "Unlock up to 70% of your property's value with a loan against property arranged through Borrowww's partner lenders.",
		Canonical:   p.base + "/loan-against-property",
	}
}

func (p lapPage) Page(r *http.Request) templ.Component {
	return views.Document(p.Meta(), "/loan-against-property", views.LoanAgainstPropertyPage())
}

type creditCheckPage struct{ base string }

func (p creditCheckPage) Meta() seo.Meta {
	return seo.Meta{
		Title:       "Free Credit Check - Soft Enquiry, No Score Impact | Borrowww",
		Description: "Estimate your credit band in under a minute with Borrowww's free soft check. No bureau enquiry, no effect on your score.",
		Canonical:   p.base + "/credit-check",
	}
}

func (p creditCheckPage) Page(r *http.Request) templ.Component {
	return views.Document(p.Meta(), "/credit-check", views.CreditCheckPage())
}

type guideIndexPage struct {
	base   string
	guides []content.Guide
}

func (p guideIndexPage) Meta() seo.Meta {
	return seo.Meta{
		Title:       "Borrowing Guides - Loans Explained in Plain Language | Borrowww",
		Description: "Checklists and explainers from the Borrowww lending team covering balance transfers, credit scores and property-backed loans.",
		Canonical:   p.base + "/guides",
	}
}

func (p guideIndexPage) Page(r *http.Request) templ.Component {
	summaries := make([]views.GuideSummary, 0, len(p.guides))
	for _, g := range p.guides {
		summaries = append(summaries, views.GuideSummary{Slug: g.Slug, Title: g.Title, Excerpt: g.Excerpt})
	}
	return views.Document(p.Meta(), "/guides", views.GuideIndexPage(summaries))
}

type guidePage struct {
	base  string
	guide content.Guide
}

func (p guidePage) Meta() seo.Meta {
	return seo.Meta{
		Title:       p.guide.Title,
		Description: p.guide.Description,
		Canonical:   p.base + "/guides/" + p.guide.Slug,
		OG:          seo.OpenGraph{Type: "article"},
	}
}

func (p guidePage) Page(r *http.Request) templ.Component {
	heading := guideHeading(p.guide.Title)
	return views.Document(p.Meta(), "/guides", views.GuidePage(heading, p.guide.HTML))
}

// guideHeading strips the SEO suffix from a guide title for the on-page h1.
func guideHeading(title string) string {
	if i := strings.Index(title, " | "); i > 0 {
		return title[:i]
	}
	return title
}
