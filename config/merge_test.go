package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_NavReplacedWholesale(t *testing.T) {
	base := minimal()
	base.ThemeConfig.Nav = []NavItem{
		{Text: "Home", Link: "/"},
		{Text: "Notes", Items: []NavItem{{Text: "JS", Link: "/js/"}, {Text: "CSS", Link: "/css/"}}},
	}
	base.ThemeConfig.SocialLinks = []SocialLink{{Icon: "github", Link: "https://github.com/example"}}

	nav := []NavItem{{Text: "Notes", Items: []NavItem{{Text: "Go", Link: "/go/"}}}}
	merged := Merge(base, Override{ThemeConfig: &ThemeOverride{Nav: &nav}})

	assert.Equal(t, nav, merged.ThemeConfig.Nav)
	assert.Equal(t, base.ThemeConfig.SocialLinks, merged.ThemeConfig.SocialLinks)
}

func TestMerge_EmptyOverrideSequenceClears(t *testing.T) {
	base := minimal()
	base.ThemeConfig.FriendLinks = []FriendLink{{Name: "a", Link: "https://a.example"}}

	empty := []FriendLink{}
	merged := Merge(base, Override{ThemeConfig: &ThemeOverride{FriendLinks: &empty}})
	assert.Empty(t, merged.ThemeConfig.FriendLinks)
}

func TestMerge_NilFieldsKeepBase(t *testing.T) {
	base := minimal()
	base.Description = "desc"
	base.ThemeConfig.Transition = true

	assert.Equal(t, base, Merge(base, Override{}))
	assert.Equal(t, base, Merge(base, Override{ThemeConfig: &ThemeOverride{}, Vite: &BuildOverride{}}))
}

func TestMerge_OverrideWins(t *testing.T) {
	base := minimal()
	base.ThemeConfig.Transition = true
	base.ThemeConfig.Search = SearchConfig{Provider: "local"}
	base.Vite.Server.Port = 5173

	title, off := "New", false
	merged := Merge(base, Override{
		Title:       &title,
		ThemeConfig: &ThemeOverride{Transition: &off, Search: &SearchConfig{}},
		Vite:        &BuildOverride{Server: &DevServer{Port: 9010}},
	})

	assert.Equal(t, "New", merged.Title)
	assert.Equal(t, "/", merged.Base)
	assert.False(t, merged.ThemeConfig.Transition)
	assert.Empty(t, merged.ThemeConfig.Search.Provider)
	assert.Equal(t, 9010, merged.Vite.Server.Port)
	assert.Equal(t, 5173, base.Vite.Server.Port)
}

func TestMerge_DoesNotAliasOverride(t *testing.T) {
	nav := []NavItem{{Text: "Notes", Items: []NavItem{{Text: "JS", Link: "/js/"}}}}
	merged := Merge(minimal(), Override{ThemeConfig: &ThemeOverride{Nav: &nav}})

	merged.ThemeConfig.Nav[0].Items[0].Link = "/changed/"
	assert.Equal(t, "/js/", nav[0].Items[0].Link)
}

func TestDecodeOverride(t *testing.T) {
	o, err := DecodeOverride([]byte(`
title: Preview
themeConfig:
  nav:
    - text: Drafts
      link: /drafts/
`))
	require.NoError(t, err)
	require.NotNil(t, o.Title)
	require.NotNil(t, o.ThemeConfig)
	assert.Nil(t, o.ThemeConfig.SocialLinks)

	merged := Merge(minimal(), o)
	assert.Equal(t, "Preview", merged.Title)
	assert.Equal(t, []NavItem{{Text: "Drafts", Link: "/drafts/"}}, merged.ThemeConfig.Nav)
}
