package seo

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetaValid(t *testing.T) {
	assert.True(t, Meta{Title: "t", Description: "d"}.Valid())
	assert.False(t, Meta{Title: "t"}.Valid())
	assert.False(t, Meta{Description: "d"}.Valid())
	assert.False(t, Meta{}.Valid())
}

func TestDefaultRobotsEncoding(t *testing.T) {
	policy := DefaultRobots("https://www.borrowww.com")
	got := string(policy.Encode())

	want := "User-agent: *\n" +
		"Allow: /\n" +
		"Disallow: /private/\n" +
		"\nSitemap: https://www.borrowww.com/sitemap.xml\n"
	assert.Equal(t, want, got)
}

func TestDefaultRobotsTrailingSlashBase(t *testing.T) {
	policy := DefaultRobots("https://www.borrowww.com/")
	assert.Equal(t, "https://www.borrowww.com/sitemap.xml", policy.Sitemap)
}

func TestRobotsHandlerIdenticalAcrossRequests(t *testing.T) {
	handler := DefaultRobots("https://www.borrowww.com").Handler()

	var first string
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/robots.txt", http.NoBody)
		req.Header.Set("User-Agent", []string{"Googlebot", "curl/8.0", ""}[i])
		rec := httptest.NewRecorder()
		handler(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
		if i == 0 {
			first = rec.Body.String()
			continue
		}
		assert.Equal(t, first, rec.Body.String(), "robots.txt must not vary with request context")
	}
}

func TestSitemap(t *testing.T) {
	body, err := Sitemap("https://www.borrowww.com", []string{"/", "/about", "/balance-transfer"})
	require.NoError(t, err)

	s := string(body)
	assert.Contains(t, s, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, s, "<loc>https://www.borrowww.com/</loc>")
	assert.Contains(t, s, "<loc>https://www.borrowww.com/about</loc>")
	assert.Contains(t, s, "<loc>https://www.borrowww.com/balance-transfer</loc>")
	assert.Contains(t, s, "<priority>1.0</priority>")
	assert.Contains(t, s, `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)
}

func TestSitemapHandler(t *testing.T) {
	handler, err := SitemapHandler("https://www.borrowww.com", []string{"/about"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", http.NoBody)
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "/about")
}
