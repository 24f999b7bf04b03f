package config

// Merge applies override on top of base and returns the result. base is not
// modified.
//
// Precedence is override wins. Top-level keys are replaced wholesale;
// themeConfig and vite are merged one level deep, so an override carrying
// themeConfig.nav replaces the whole nav sequence while leaving socialLinks
// alone. Sequences are never merged element by element.
func Merge(base SiteConfig, override Override) SiteConfig {
	out := clone(base)

	setString(&out.Base, override.Base)
	setString(&out.Title, override.Title)
	setString(&out.Description, override.Description)
	setString(&out.Lang, override.Lang)
	setBool(&out.CleanUrls, override.CleanUrls)
	setBool(&out.LastUpdated, override.LastUpdated)
	setBool(&out.IgnoreDeadLinks, override.IgnoreDeadLinks)
	if override.Sitemap != nil {
		out.Sitemap = *override.Sitemap
	}

	if t := override.ThemeConfig; t != nil {
		setString(&out.ThemeConfig.Logo, t.Logo)
		if t.Nav != nil {
			out.ThemeConfig.Nav = cloneNav(*t.Nav)
		}
		if t.SocialLinks != nil {
			out.ThemeConfig.SocialLinks = append([]SocialLink{}, (*t.SocialLinks)...)
		}
		if t.FriendLinks != nil {
			out.ThemeConfig.FriendLinks = append([]FriendLink{}, (*t.FriendLinks)...)
		}
		if t.Search != nil {
			out.ThemeConfig.Search = *t.Search
		}
		setBool(&out.ThemeConfig.Transition, t.Transition)
		if t.Footer != nil {
			out.ThemeConfig.Footer = *t.Footer
		}
	}

	if v := override.Vite; v != nil {
		if v.Server != nil {
			out.Vite.Server = *v.Server
		}
		if v.AssetsInclude != nil {
			out.Vite.AssetsInclude = append([]string{}, (*v.AssetsInclude)...)
		}
		if v.Scripts != nil {
			out.Vite.Scripts = append([]ScriptTarget{}, (*v.Scripts)...)
		}
	}

	return out
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func clone(c SiteConfig) SiteConfig {
	out := c
	out.ThemeConfig.Nav = cloneNav(c.ThemeConfig.Nav)
	if c.ThemeConfig.SocialLinks != nil {
		out.ThemeConfig.SocialLinks = append([]SocialLink{}, c.ThemeConfig.SocialLinks...)
	}
	if c.ThemeConfig.FriendLinks != nil {
		out.ThemeConfig.FriendLinks = append([]FriendLink{}, c.ThemeConfig.FriendLinks...)
	}
	if c.Vite.AssetsInclude != nil {
		out.Vite.AssetsInclude = append([]string{}, c.Vite.AssetsInclude...)
	}
	if c.Vite.Scripts != nil {
		out.Vite.Scripts = append([]ScriptTarget{}, c.Vite.Scripts...)
	}
	return out
}

func cloneNav(items []NavItem) []NavItem {
	if items == nil {
		return nil
	}
	out := make([]NavItem, len(items))
	for i, item := range items {
		out[i] = item
		out[i].Items = cloneNav(item.Items)
	}
	return out
}
