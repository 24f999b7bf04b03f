package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ZacxDev/blogsite/config"
	"github.com/ZacxDev/blogsite/utils"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// ConfigSource returns the configuration a request should be served with.
// The preview server reads it per request so a reloaded declaration shows
// up without restarting.
type ConfigSource func() config.SiteConfig

// SetupRouter builds the preview router. Pages are markdown files under
// pagesDir and static assets live under staticDir. Everything is mounted
// under the base in effect when the router is built.
func SetupRouter(current ConfigSource, pagesDir, staticDir string) (*mux.Router, error) {
	router := mux.NewRouter()
	router.NotFoundHandler = Custom404Handler(current)

	base := strings.TrimSuffix(current().Base, "/")
	routes := router
	if base != "" {
		routes = router.PathPrefix(base).Subrouter()
		routes.NotFoundHandler = router.NotFoundHandler
	}

	routes.PathPrefix("/static/").Handler(AssetHandler(current, base+"/static/", staticDir)).Methods("GET", "HEAD")

	routes.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		sitemap, err := utils.GenerateSitemapContent(current())
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(sitemap))
	}).Methods("GET")

	routes.PathPrefix("/").Handler(DynamicHandler(current, base, pagesDir)).Methods("GET")

	return router, nil
}

// DynamicHandler renders the markdown page matching the request path.
func DynamicHandler(current ConfigSource, base, pagesDir string) http.HandlerFunc {
	notFound := Custom404Handler(current)

	return func(w http.ResponseWriter, r *http.Request) {
		source, ok := resolvePage(pagesDir, strings.TrimPrefix(r.URL.Path, base))
		if !ok {
			notFound.ServeHTTP(w, r)
			return
		}

		cfg := current()
		page, err := renderMarkdownFile(source)
		if err != nil {
			log.WithFields(log.Fields{"source": source, "err": err}).Error("Error rendering page")
			http.Error(w, "Error rendering page", http.StatusInternalServerError)
			return
		}

		ctx := newContext(cfg, r.URL.Path)
		if page.Title != "" {
			ctx.Set("pageTitle", page.Title+" | "+cfg.Title)
		}
		if page.Description != "" {
			ctx.Set("description", page.Description)
		}

		html, err := renderLayout(ctx, `<article class="doc">`+page.HTML+`</article>`)
		if err != nil {
			log.WithFields(log.Fields{"source": source, "err": err}).Error("Error rendering layout")
			http.Error(w, "Error rendering layout", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, err = w.Write([]byte(html))
		if err != nil {
			log.WithFields(log.Fields{"path": r.URL.Path, "err": err}).Warn("Error writing response")
		}
	}
}

// resolvePage maps a site path to a markdown file the way the framework
// does: "/" and "/notes/" map to index.md, "/about" and "/about.html" to
// about.md.
func resolvePage(pagesDir, urlPath string) (string, bool) {
	clean := path.Clean("/" + urlPath)

	var rel string
	switch {
	case strings.HasSuffix(urlPath, "/") || clean == "/":
		rel = path.Join(clean, "index.md")
	default:
		rel = strings.TrimSuffix(clean, ".html") + ".md"
	}

	source := filepath.Join(pagesDir, filepath.FromSlash(rel))
	info, err := os.Stat(source)
	if err != nil || info.IsDir() {
		return "", false
	}
	return source, true
}
