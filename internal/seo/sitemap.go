package seo

import (
	"encoding/xml"
	"net/http"
	"strings"
)

// urlset is the sitemaps.org document. encoding/xml covers it; the corpus has
// no dedicated sitemap dependency and the schema is a handful of struct tags.
type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Sitemap builds the sitemap.xml body for the given page paths, resolved
// against the site's canonical base URL. Paths are listed in the order given;
// the root path gets top priority.
func Sitemap(baseURL string, paths []string) ([]byte, error) {
	base := strings.TrimRight(baseURL, "/")
	set := urlset{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range paths {
		u := sitemapURL{Loc: base + p, ChangeFreq: "weekly", Priority: "0.8"}
		if p == "/" {
			u.Loc = base + "/"
			u.Priority = "1.0"
		}
		set.URLs = append(set.URLs, u)
	}
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}

// SitemapHandler serves a sitemap built once at mount time.
func SitemapHandler(baseURL string, paths []string) (http.HandlerFunc, error) {
	body, err := Sitemap(baseURL, paths)
	if err != nil {
		return nil, err
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		_, _ = w.Write(body)
	}, nil
}
