// Package site holds the blog's own configuration declaration.
package site

import (
	_ "embed"

	"github.com/ZacxDev/blogsite/config"
	"github.com/pkg/errors"
)

//go:embed site.yaml
var declaration []byte

// Declaration returns the decoded, unvalidated declaration.
func Declaration() (config.SiteConfig, error) {
	decl, err := config.Decode(declaration)
	if err != nil {
		return config.SiteConfig{}, errors.Wrap(err, "embedded site.yaml")
	}
	return decl, nil
}

// Load returns the blog's validated configuration with overrides applied.
func Load(overrides ...config.Override) (config.SiteConfig, error) {
	decl, err := Declaration()
	if err != nil {
		return config.SiteConfig{}, err
	}
	return config.Load(decl, overrides...)
}
