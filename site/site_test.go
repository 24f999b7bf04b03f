package site

import (
	"testing"

	"github.com/ZacxDev/blogsite/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/", cfg.Base)
	assert.Equal(t, "Ink & Notes", cfg.Title)
	require.NotEmpty(t, cfg.ThemeConfig.Nav)
	assert.Equal(t, "Home", cfg.ThemeConfig.Nav[0].Text)
	assert.Equal(t, 5173, cfg.Vite.Server.Port)
	assert.True(t, cfg.ThemeConfig.Transition)
}

func TestLoad_Idempotent(t *testing.T) {
	first, err := Load()
	require.NoError(t, err)
	second, err := Load()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoad_WithOverride(t *testing.T) {
	nav := []config.NavItem{{Text: "Drafts", Link: "/drafts/"}}

	cfg, err := Load(config.Override{ThemeConfig: &config.ThemeOverride{Nav: &nav}})
	require.NoError(t, err)
	assert.Equal(t, nav, cfg.ThemeConfig.Nav)
	assert.NotEmpty(t, cfg.ThemeConfig.SocialLinks)
}
