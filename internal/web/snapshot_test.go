package web

import (
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// Snapshots pin the crawler-facing documents: any diff here is an SEO change
// that should be deliberate.

func TestRobotsSnapshot(t *testing.T) {
	srv := testServer(t)
	rec := get(t, srv, "/robots.txt")
	snaps.MatchSnapshot(t, rec.Body.String())
}

func TestSitemapSnapshot(t *testing.T) {
	srv := testServer(t)
	rec := get(t, srv, "/sitemap.xml")
	snaps.WithConfig(snaps.Ext(".xml")).MatchSnapshot(t, rec.Body.String())
}

func TestHomePageSnapshot(t *testing.T) {
	srv := testServer(t)
	rec := get(t, srv, "/")
	snaps.WithConfig(snaps.Ext(".html")).MatchSnapshot(t, rec.Body.String())
}

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}
