package site

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borrowww/web/internal/content"
	"github.com/borrowww/web/internal/pages"
)

const testBase = "https://www.borrowww.com"

func testRegistry(t *testing.T) *pages.Registry {
	t.Helper()
	guides, err := content.Guides()
	require.NoError(t, err)
	return BuildRegistry(testBase, guides)
}

func serve(t *testing.T, reg *pages.Registry, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	router := pages.NewRouter(http.NewServeMux())
	reg.Mount(router)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestDeclaredPathsArePairwiseDistinct(t *testing.T) {
	reg := testRegistry(t)
	seen := make(map[string]bool)
	for _, e := range reg.Entries() {
		key := e.Method + " " + e.Path
		assert.False(t, seen[key], "duplicate route %s", key)
		seen[key] = true
	}
}

func TestEveryPageDeclaresMetadata(t *testing.T) {
	reg := testRegistry(t)
	for _, e := range reg.Entries() {
		if e.Method != http.MethodGet {
			continue
		}
		assert.True(t, e.Meta.Valid(), "page %s has incomplete metadata", e.Path)
		assert.NotContains(t, e.Meta.Title, "<", "title for %s must be plain text", e.Path)
		assert.NotContains(t, e.Meta.Description, "<", "description for %s must be plain text", e.Path)
	}
}

func TestAboutPageHead(t *testing.T) {
	reg := testRegistry(t)
	rec := serve(t, reg, httptest.NewRequest(http.MethodGet, "/about", http.NoBody))

	require.Equal(t, http.StatusOK, rec.Code)
	// html.EscapeString renders the apostrophe as &#39;
	assert.Contains(t, rec.Body.String(),
		"<title>About Us | Borrowww - Premier Penny&#39;s Digital Lending Partner</title>")
}

func TestBalanceTransferPageHead(t *testing.T) {
	reg := testRegistry(t)
	rec := serve(t, reg, httptest.NewRequest(http.MethodGet, "/balance-transfer", http.NoBody))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(),
		"<title>Balance Transfer - Transfer Your Home Loan &amp; Save | Borrowww</title>")
}

func TestEveryDocumentServesItsDeclaredHead(t *testing.T) {
	reg := testRegistry(t)
	router := pages.NewRouter(http.NewServeMux())
	reg.Mount(router)

	for _, e := range reg.Entries() {
		if e.Method != http.MethodGet {
			continue
		}
		req := httptest.NewRequest(http.MethodGet, e.Path, http.NoBody)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, "path %s", e.Path)
		body := rec.Body.String()
		assert.Contains(t, body, "<title>"+htmlEscape(e.Meta.Title)+"</title>", "path %s", e.Path)
		assert.Contains(t, body, `content="`+htmlEscape(e.Meta.Description)+`"`, "path %s", e.Path)
	}
}

// htmlEscape mirrors the escaping the document layout applies to head values.
func htmlEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&#34;", "'", "&#39;")
	return r.Replace(s)
}

func TestGuidePagesRegistered(t *testing.T) {
	reg := testRegistry(t)

	e, ok := reg.Lookup("/guides/balance-transfer-checklist")
	require.True(t, ok)
	assert.Contains(t, e.Meta.Title, "Balance Transfer Checklist")

	rec := serve(t, reg, httptest.NewRequest(http.MethodGet, "/guides/balance-transfer-checklist", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Foreclosure charges")
}

func TestCompareOfferTablePartial(t *testing.T) {
	reg := testRegistry(t)
	router := pages.NewRouter(http.NewServeMux())
	reg.Mount(router)

	req := httptest.NewRequest(http.MethodGet, "/compare-loans?product=Balance+Transfer", http.NoBody)
	req.Header.Set("Hx-Request", "true")
	req.Header.Set("Hx-Target", "offer-table")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	body := rec.Body.String()
	assert.NotContains(t, body, "<!DOCTYPE html>", "partial must not include the document shell")
	assert.Contains(t, body, "Kotak Mahindra")
	assert.NotContains(t, body, "Bajaj Finserv", "other products filtered out")
}

func TestSavingsAction(t *testing.T) {
	reg := testRegistry(t)
	router := pages.NewRouter(http.NewServeMux())
	reg.Mount(router)

	form := strings.NewReader("outstanding=3500000&current_rate=9.5&new_rate=8.35&tenure_years=15")
	req := httptest.NewRequest(http.MethodPost, "/balance-transfer/savings", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "You save")
	assert.NotContains(t, rec.Body.String(), "<!DOCTYPE html>")
}

func TestSavingsActionRejectsBadInput(t *testing.T) {
	reg := testRegistry(t)
	router := pages.NewRouter(http.NewServeMux())
	reg.Mount(router)

	cases := []string{
		"outstanding=abc&current_rate=9.5&new_rate=8.35&tenure_years=15",
		"outstanding=3500000&current_rate=8.0&new_rate=9.0&tenure_years=15",
		"outstanding=-1&current_rate=9.5&new_rate=8.35&tenure_years=15",
	}
	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/balance-transfer/savings", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Contains(t, rec.Body.String(), "form-error", "input %q should produce an error fragment", body)
	}
}

func TestScoreAction(t *testing.T) {
	reg := testRegistry(t)
	router := pages.NewRouter(http.NewServeMux())
	reg.Mount(router)

	form := strings.NewReader("monthly_income=85000&monthly_emi=12000&missed_payments=0")
	req := httptest.NewRequest(http.MethodPost, "/credit-check/score", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Excellent")
}

func TestEMI(t *testing.T) {
	// 35 lakh at 9.5% over 15 years: a well-known reference value.
	emi := EMI(3_500_000, 9.5, 180)
	assert.InDelta(t, 36548, emi, 1.0)

	// zero rate degrades to straight division
	assert.InDelta(t, 1000, EMI(12000, 0, 12), 0.001)

	assert.Zero(t, EMI(1000, 10, 0))
}

func TestComputeSavings(t *testing.T) {
	s, err := ComputeSavings(3_500_000, 9.5, 8.35, 15)
	require.NoError(t, err)
	assert.Greater(t, s.MonthlySave, 2000.0)
	assert.InDelta(t, s.MonthlySave*180, s.TotalSave, 0.01)
	assert.Equal(t, 15, s.TenureYears)

	_, err = ComputeSavings(3_500_000, 8.0, 9.0, 15)
	assert.Error(t, err, "new rate above current rate")
	_, err = ComputeSavings(0, 9.5, 8.35, 15)
	assert.Error(t, err)
	_, err = ComputeSavings(3_500_000, 9.5, 8.35, 45)
	assert.Error(t, err)
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		name   string
		income float64
		emi    float64
		missed int
		want   string
	}{
		{"low obligations clean history", 85000, 12000, 0, "Excellent"},
		{"moderate obligations", 85000, 32000, 0, "Good"},
		{"one slip", 85000, 12000, 1, "Good"},
		{"stretched", 85000, 45000, 2, "Fair"},
		{"overextended", 85000, 60000, 5, "Building"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			band, err := BandFor(tt.income, tt.emi, tt.missed)
			require.NoError(t, err)
			assert.Equal(t, tt.want, band.Band)
		})
	}

	_, err := BandFor(0, 100, 0)
	assert.Error(t, err)
	_, err = BandFor(50000, -1, 0)
	assert.Error(t, err)
}

func TestFilterOffers(t *testing.T) {
	all := FilterOffers("")
	assert.Len(t, all, len(offers))

	bt := FilterOffers("Balance Transfer")
	require.NotEmpty(t, bt)
	for _, o := range bt {
		assert.Equal(t, "Balance Transfer", o.Product)
	}

	assert.Empty(t, FilterOffers("Payday Loan"))
}

func TestProductNames(t *testing.T) {
	names := ProductNames()
	assert.Equal(t, []string{"Home Loan", "Balance Transfer", "Loan Against Property"}, names)
}

func TestGuideHeadingStripsSuffix(t *testing.T) {
	assert.Equal(t, "Balance Transfer Checklist - 7 Things to Verify First",
		guideHeading("Balance Transfer Checklist - 7 Things to Verify First | Borrowww"))
	assert.Equal(t, "Plain Title", guideHeading("Plain Title"))
}

func TestDocumentPathsIncludeGuides(t *testing.T) {
	reg := testRegistry(t)
	paths := reg.DocumentPaths()
	assert.Contains(t, paths, "/")
	assert.Contains(t, paths, "/about")
	assert.Contains(t, paths, "/guides/understanding-credit-scores")
	assert.NotContains(t, paths, "/balance-transfer/savings")
}
