package config

// config/yaml.go

// The declaration keys mirror the shape the site framework expects, so the
// same struct decodes the YAML declaration and encodes the JSON handed over.

type SiteConfig struct {
	Base            string        `yaml:"base" json:"base"`
	Title           string        `yaml:"title" json:"title"`
	Description     string        `yaml:"description" json:"description,omitempty"`
	Lang            string        `yaml:"lang" json:"lang,omitempty"`
	CleanUrls       bool          `yaml:"cleanUrls" json:"cleanUrls,omitempty"`
	LastUpdated     bool          `yaml:"lastUpdated" json:"lastUpdated,omitempty"`
	IgnoreDeadLinks bool          `yaml:"ignoreDeadLinks" json:"ignoreDeadLinks,omitempty"`
	Sitemap         SitemapConfig `yaml:"sitemap" json:"sitemap"`
	ThemeConfig     ThemeConfig   `yaml:"themeConfig" json:"themeConfig"`
	Vite            BuildOptions  `yaml:"vite" json:"vite"`
}

type SitemapConfig struct {
	Hostname string `yaml:"hostname" json:"hostname,omitempty"`
}

type ThemeConfig struct {
	Logo        string       `yaml:"logo" json:"logo,omitempty"`
	Nav         []NavItem    `yaml:"nav" json:"nav"`
	SocialLinks []SocialLink `yaml:"socialLinks" json:"socialLinks"`
	FriendLinks []FriendLink `yaml:"friendLinks" json:"friendLinks,omitempty"`
	Search      SearchConfig `yaml:"search" json:"search"`
	Transition  bool         `yaml:"transition" json:"transition"`
	Footer      FooterConfig `yaml:"footer" json:"footer"`
}

// NavItem is one navigation-bar entry. Items turns it into a dropdown.
type NavItem struct {
	Text        string    `yaml:"text" json:"text"`
	Link        string    `yaml:"link" json:"link,omitempty"`
	ActiveMatch string    `yaml:"activeMatch" json:"activeMatch,omitempty"`
	Items       []NavItem `yaml:"items" json:"items,omitempty"`
}

type SocialLink struct {
	Icon string `yaml:"icon" json:"icon"`
	Link string `yaml:"link" json:"link"`
}

type FriendLink struct {
	Name   string `yaml:"name" json:"name"`
	Link   string `yaml:"link" json:"link"`
	Avatar string `yaml:"avatar" json:"avatar,omitempty"`
	Desc   string `yaml:"desc" json:"desc,omitempty"`
}

type SearchConfig struct {
	Provider string `yaml:"provider" json:"provider,omitempty"`
}

type FooterConfig struct {
	Message   string `yaml:"message" json:"message,omitempty"`
	Copyright string `yaml:"copyright" json:"copyright,omitempty"`
}

// BuildOptions are passed through to the framework's build tool untouched.
type BuildOptions struct {
	Server        DevServer      `yaml:"server" json:"server"`
	AssetsInclude []string       `yaml:"assetsInclude" json:"assetsInclude,omitempty"`
	Scripts       []ScriptTarget `yaml:"scripts" json:"-"`
}

type DevServer struct {
	Port int `yaml:"port" json:"port,omitempty"`
}

type ScriptTarget struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	OutDir string `yaml:"out_dir"`
}

// Override is a partial SiteConfig. Nil fields leave the base untouched.
type Override struct {
	Base            *string        `yaml:"base"`
	Title           *string        `yaml:"title"`
	Description     *string        `yaml:"description"`
	Lang            *string        `yaml:"lang"`
	CleanUrls       *bool          `yaml:"cleanUrls"`
	LastUpdated     *bool          `yaml:"lastUpdated"`
	IgnoreDeadLinks *bool          `yaml:"ignoreDeadLinks"`
	Sitemap         *SitemapConfig `yaml:"sitemap"`
	ThemeConfig     *ThemeOverride `yaml:"themeConfig"`
	Vite            *BuildOverride `yaml:"vite"`
}

type ThemeOverride struct {
	Logo        *string       `yaml:"logo"`
	Nav         *[]NavItem    `yaml:"nav"`
	SocialLinks *[]SocialLink `yaml:"socialLinks"`
	FriendLinks *[]FriendLink `yaml:"friendLinks"`
	Search      *SearchConfig `yaml:"search"`
	Transition  *bool         `yaml:"transition"`
	Footer      *FooterConfig `yaml:"footer"`
}

type BuildOverride struct {
	Server        *DevServer      `yaml:"server"`
	AssetsInclude *[]string       `yaml:"assetsInclude"`
	Scripts       *[]ScriptTarget `yaml:"scripts"`
}
