package handlers

import (
	"html/template"
	"strings"

	"github.com/ZacxDev/blogsite/config"
	"github.com/gobuffalo/plush"
	"github.com/pkg/errors"
)

const baseLayout = `<!DOCTYPE html>
<html lang="<%= site.Lang %>">
<head>
  <meta charset="utf-8">
  <title><%= pageTitle %></title>
  <meta name="description" content="<%= description %>">
  <%= if (site.ThemeConfig.Transition) { %><meta name="view-transition" content="same-origin"><% } %>
</head>
<body>
<header>
  <nav class="navbar">
    <a class="brand" href="<%= href("/") %>"><%= site.Title %></a>
    <ul>
    <%= for (item) in site.ThemeConfig.Nav { %>
      <%= if (hasItems(item)) { %>
      <li class="dropdown"><span><%= item.Text %></span>
        <ul>
        <%= for (child) in item.Items { %>
          <li><a href="<%= href(child.Link) %>"<%= if (isActive(child.Link)) { %> class="active"<% } %>><%= child.Text %></a></li>
        <% } %>
        </ul>
      </li>
      <% } else { %>
      <li><a href="<%= href(item.Link) %>"<%= if (isActive(item.Link)) { %> class="active"<% } %>><%= item.Text %></a></li>
      <% } %>
    <% } %>
    </ul>
    <ul class="social">
    <%= for (s) in site.ThemeConfig.SocialLinks { %>
      <li><a href="<%= s.Link %>" aria-label="<%= s.Icon %>"><%= s.Icon %></a></li>
    <% } %>
    </ul>
  </nav>
</header>
<main>
<%= yield %>
</main>
<footer>
  <ul class="friends">
  <%= for (f) in site.ThemeConfig.FriendLinks { %>
    <li><a href="<%= f.Link %>" title="<%= f.Desc %>"><%= f.Name %></a></li>
  <% } %>
  </ul>
  <p><%= site.ThemeConfig.Footer.Message %></p>
  <p><%= site.ThemeConfig.Footer.Copyright %></p>
</footer>
</body>
</html>
`

const notFoundTemplate = `<article class="not-found">
  <h1>404</h1>
  <p>There is nothing at <code><%= currentPath %></code>.</p>
  <a href="<%= href("/") %>">Take me home</a>
</article>
`

// newContext builds the plush context shared by every page rendered for cfg.
func newContext(cfg config.SiteConfig, currentPath string) *plush.Context {
	ctx := plush.NewContext()
	ctx.Set("site", cfg)
	ctx.Set("currentPath", currentPath)
	ctx.Set("pageTitle", cfg.Title)
	ctx.Set("description", cfg.Description)

	ctx.Set("hasItems", func(item config.NavItem) bool {
		return len(item.Items) > 0
	})

	ctx.Set("href", func(link string) string {
		return withBase(cfg.Base, link)
	})

	ctx.Set("isActive", func(link string) bool {
		return strings.HasPrefix(link, "/") && withBase(cfg.Base, link) == currentPath
	})

	return ctx
}

// withBase prefixes root-relative links with the site base. Absolute URLs
// pass through.
func withBase(base, link string) string {
	if !strings.HasPrefix(link, "/") {
		return link
	}
	return strings.TrimSuffix(base, "/") + link
}

func renderPlush(source string, ctx *plush.Context) (string, error) {
	tmpl, err := plush.Parse(source)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return tmpl.Exec(ctx)
}

// renderLayout renders content inside the base layout.
func renderLayout(ctx *plush.Context, content string) (string, error) {
	ctx.Set("yield", template.HTML(content))
	html, err := renderPlush(baseLayout, ctx)
	if err != nil {
		return "", errors.Wrap(err, "error executing base layout")
	}
	return html, nil
}
