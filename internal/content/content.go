// Package content turns embedded markdown guides into immutable page data.
// Guides are parsed once at startup; the running server only ever reads the
// result.
package content

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

//go:embed guides/*.md
var guidesFS embed.FS

// Guide is one rendered markdown guide. All fields are fixed after Load.
type Guide struct {
	Slug        string
	Title       string
	Description string
	Excerpt     string
	HTML        string
}

var markdown = goldmark.New(
	goldmark.WithExtensions(meta.Meta, extension.GFM),
)

// Guides loads the embedded guide set.
func Guides() ([]Guide, error) {
	return Load(guidesFS, "guides")
}

// Load parses every *.md file under dir in fsys. A guide missing a title or
// description in its frontmatter is a build error: guide metadata feeds the
// page registry, which requires both.
func Load(fsys fs.FS, dir string) ([]Guide, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("content: reading %s: %w", dir, err)
	}

	var guides []Guide
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		name := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("content: reading %s: %w", name, err)
		}
		guide, err := parse(strings.TrimSuffix(entry.Name(), ".md"), data)
		if err != nil {
			return nil, fmt.Errorf("content: %s: %w", name, err)
		}
		guides = append(guides, guide)
	}

	sort.Slice(guides, func(i, j int) bool { return guides[i].Slug < guides[j].Slug })
	return guides, nil
}

func parse(slug string, data []byte) (Guide, error) {
	var buf bytes.Buffer
	pctx := parser.NewContext()
	if err := markdown.Convert(data, &buf, parser.WithContext(pctx)); err != nil {
		return Guide{}, fmt.Errorf("rendering markdown: %w", err)
	}

	fm := meta.Get(pctx)
	title, _ := fm["title"].(string)
	description, _ := fm["description"].(string)
	excerpt, _ := fm["excerpt"].(string)
	if title == "" || description == "" {
		return Guide{}, fmt.Errorf("frontmatter must declare title and description")
	}
	if excerpt == "" {
		excerpt = description
	}

	return Guide{
		Slug:        slug,
		Title:       title,
		Description: description,
		Excerpt:     excerpt,
		HTML:        buf.String(),
	}, nil
}
