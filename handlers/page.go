package handlers

import (
	"bytes"
	"os"

	"github.com/adrg/frontmatter"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"
	"github.com/pkg/errors"
)

// Page is a rendered markdown document.
type Page struct {
	Title       string
	Description string
	HTML        string
}

type pageMeta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// renderMarkdownFile renders a markdown file with optional YAML frontmatter
// at the very top.
func renderMarkdownFile(source string) (*Page, error) {
	content, err := os.ReadFile(source)
	if err != nil {
		return nil, err
	}

	var meta pageMeta
	body, err := frontmatter.Parse(bytes.NewReader(content), &meta)
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing frontmatter of %s", source)
	}

	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	html := markdown.ToHTML(body, p, nil)

	return &Page{
		Title:       meta.Title,
		Description: meta.Description,
		HTML:        string(html),
	}, nil
}
