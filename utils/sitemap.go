package utils

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ZacxDev/blogsite/config"
	"github.com/pkg/errors"
)

type Sitemap struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	Urls    []Url    `xml:"url"`
}

type Url struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// now is swapped in tests.
var now = time.Now

// CollectLinks walks the nav tree depth-first and returns every root-relative
// link once, in display order. External links are skipped.
func CollectLinks(nav []config.NavItem) []string {
	seen := make(map[string]bool)
	var links []string

	var walk func(items []config.NavItem)
	walk = func(items []config.NavItem) {
		for _, item := range items {
			if strings.HasPrefix(item.Link, "/") && !seen[item.Link] {
				seen[item.Link] = true
				links = append(links, item.Link)
			}
			walk(item.Items)
		}
	}
	walk(nav)

	return links
}

func GenerateSitemaps(cfg config.SiteConfig, outDir string) error {
	xmlOutput, err := GenerateSitemapContent(cfg)
	if err != nil {
		return err
	}

	err = os.MkdirAll(outDir, os.ModePerm)
	if err != nil {
		return errors.WithStack(err)
	}

	err = os.WriteFile(filepath.Join(outDir, "sitemap.xml"), []byte(xml.Header+xmlOutput), 0644)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func GenerateSitemapContent(cfg config.SiteConfig) (string, error) {
	hostname := strings.TrimSuffix(cfg.Sitemap.Hostname, "/")
	if hostname == "" {
		return "", errors.New("sitemap.hostname is not set")
	}
	base := strings.TrimSuffix(cfg.Base, "/")

	sitemap := Sitemap{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}

	lastMod := now().Format("2006-01-02")
	for _, link := range CollectLinks(cfg.ThemeConfig.Nav) {
		sitemap.Urls = append(sitemap.Urls, Url{
			Loc:     hostname + base + link,
			LastMod: lastMod,
		})
	}

	xmlOutput, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return "", errors.WithStack(err)
	}

	return string(xmlOutput), nil
}
