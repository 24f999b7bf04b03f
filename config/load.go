package config

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Load produces the validated configuration from a static declaration.
// Overrides are applied in order with Merge, so the last one wins. The
// returned value shares no slices with decl or the overrides.
func Load(decl SiteConfig, overrides ...Override) (SiteConfig, error) {
	cfg := clone(decl)
	for _, o := range overrides {
		cfg = Merge(cfg, o)
	}

	if cfg.ThemeConfig.Nav == nil {
		cfg.ThemeConfig.Nav = []NavItem{}
	}
	if cfg.ThemeConfig.SocialLinks == nil {
		cfg.ThemeConfig.SocialLinks = []SocialLink{}
	}

	if err := Validate(cfg); err != nil {
		return SiteConfig{}, err
	}
	return cfg, nil
}

// Define returns cfg unchanged. It exists so declarations written in Go read
// the same way as the framework's own config files.
func Define(cfg SiteConfig) SiteConfig {
	return cfg
}

// Decode parses a YAML declaration. Unknown keys are rejected.
func Decode(data []byte) (SiteConfig, error) {
	var cfg SiteConfig
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return SiteConfig{}, errors.Wrap(err, "error parsing site declaration")
	}
	return cfg, nil
}

// DecodeOverride parses a partial YAML declaration.
func DecodeOverride(data []byte) (Override, error) {
	var o Override
	if err := yaml.UnmarshalStrict(data, &o); err != nil {
		return Override{}, errors.Wrap(err, "error parsing override")
	}
	return o, nil
}

// LoadFile reads a YAML declaration from disk and loads it.
func LoadFile(path string, overrides ...Override) (SiteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SiteConfig{}, errors.Wrapf(err, "error reading %s", path)
	}

	decl, err := Decode(data)
	if err != nil {
		return SiteConfig{}, errors.Wrap(err, path)
	}

	return Load(decl, overrides...)
}

// JSON encodes the configuration in the shape the framework consumes.
func (c SiteConfig) JSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return nil, errors.WithStack(err)
	}
	return buf.Bytes(), nil
}
