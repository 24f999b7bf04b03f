package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the fields the framework cannot do without. Icons and link
// reachability are not checked here.
func Validate(c SiteConfig) error {
	if c.Title == "" {
		return newConfigError("title", "is required")
	}
	if c.Base == "" {
		return newConfigError("base", "is required")
	}
	return validateNav("themeConfig.nav", c.ThemeConfig.Nav)
}

func validateNav(path string, items []NavItem) error {
	for i, item := range items {
		field := fmt.Sprintf("%s[%d]", path, i)
		if item.Text == "" {
			return newConfigError(field+".text", "is required")
		}
		if item.Link == "" && len(item.Items) == 0 {
			return newConfigError(field, fmt.Sprintf("%q needs a link or a non-empty items list", item.Text))
		}
		if item.Link != "" && !isValidLink(item.Link) {
			return newConfigError(field+".link", fmt.Sprintf("%q is neither an absolute URL nor a root-relative path", item.Link))
		}
		if err := validateNav(field+".items", item.Items); err != nil {
			return err
		}
	}
	return nil
}

func isValidLink(link string) bool {
	if strings.HasPrefix(link, "/") {
		return !strings.HasPrefix(link, "//")
	}
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
