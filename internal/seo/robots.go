package seo

import (
	"net/http"
	"strings"
)

// RobotsPolicy is the crawler-access descriptor served at /robots.txt.
// It is assembled once and never changes for the life of the process.
type RobotsPolicy struct {
	UserAgent string
	Allow     []string
	Disallow  []string
	Sitemap   string
}

// DefaultRobots is the production policy for www.borrowww.com.
func DefaultRobots(baseURL string) RobotsPolicy {
	return RobotsPolicy{
		UserAgent: "*",
		Allow:     []string{"/"},
		Disallow:  []string{"/private/"},
		Sitemap:   strings.TrimRight(baseURL, "/") + "/sitemap.xml",
	}
}

// Encode renders the policy in robots exclusion format.
func (p RobotsPolicy) Encode() []byte {
	var b strings.Builder
	b.WriteString("User-agent: " + p.UserAgent + "\n")
	for _, path := range p.Allow {
		b.WriteString("Allow: " + path + "\n")
	}
	for _, path := range p.Disallow {
		b.WriteString("Disallow: " + path + "\n")
	}
	if p.Sitemap != "" {
		b.WriteString("\nSitemap: " + p.Sitemap + "\n")
	}
	return []byte(b.String())
}

// Handler serves the encoded policy. The body is computed once; every request
// gets the identical bytes.
func (p RobotsPolicy) Handler() http.HandlerFunc {
	body := p.Encode()
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		_, _ = w.Write(body)
	}
}
