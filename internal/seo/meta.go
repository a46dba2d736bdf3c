// Package seo holds the static metadata emitted into page heads and the
// crawler-facing documents (robots.txt, sitemap.xml).
package seo

// OpenGraph carries the og:* properties for link previews.
type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
}

// Twitter carries the twitter:* card properties.
type Twitter struct {
	Card  string
	Site  string
	Image string
}

// Meta is the per-page head metadata. Title and Description are required for
// every page; the rest is optional.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	OG          OpenGraph
	Twitter     Twitter
}

// Valid reports whether the record satisfies the registry invariants:
// a non-empty title and description.
func (m Meta) Valid() bool {
	return m.Title != "" && m.Description != ""
}
