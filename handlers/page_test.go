package handlers

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdownFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		title   string
		html    string
	}{
		{"no frontmatter", "# Plain\n", "", `<h1 id="plain">Plain</h1>`},
		{"with frontmatter", "---\ntitle: Hello\ndescription: d\n---\n# Body\n", "Hello", `<h1 id="body">Body</h1>`},
		{"empty frontmatter", "---\n---\n# hi\n", "", `<h1 id="hi">hi</h1>`},
		{"closing fence at end of file", "---\ntitle: x\n---", "x", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			source := filepath.Join(t.TempDir(), "page.md")
			writeFile(t, source, test.content)

			page, err := renderMarkdownFile(source)
			require.NoError(t, err)
			assert.Equal(t, test.title, page.Title)
			assert.Contains(t, page.HTML, test.html)
		})
	}
}

func TestRenderMarkdownFile_InvalidYAML(t *testing.T) {
	source := filepath.Join(t.TempDir(), "page.md")
	writeFile(t, source, "---\ntitle: [unclosed\n---\n# Body\n")

	_, err := renderMarkdownFile(source)
	assert.Error(t, err)
}
