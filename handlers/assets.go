package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Extensions every static directory may serve. vite.assetsInclude extends
// this list.
var defaultAssetExtensions = []string{
	".css", ".js", ".map", ".json", ".txt", ".xml", ".ico",
	".svg", ".png", ".jpg", ".jpeg", ".gif", ".webp", ".avif",
	".woff", ".woff2", ".ttf", ".otf",
}

// AssetHandler serves files from staticDir whose extension is allow-listed.
// Everything else, directories included, is a 404.
func AssetHandler(current ConfigSource, prefix, staticDir string) http.Handler {
	notFound := Custom404Handler(current)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rel := path.Clean("/" + strings.TrimPrefix(r.URL.Path, prefix))

		if !isAllowedAsset(rel, current().Vite.AssetsInclude) {
			log.WithFields(log.Fields{"path": r.URL.Path}).Debug("Asset extension not allowed")
			notFound.ServeHTTP(w, r)
			return
		}

		name := filepath.Join(staticDir, filepath.FromSlash(rel))
		info, err := os.Stat(name)
		if err != nil || info.IsDir() {
			notFound.ServeHTTP(w, r)
			return
		}

		http.ServeFile(w, r, name)
	})
}

// isAllowedAsset checks the file's extension against the defaults and the
// configured allowlist. Allowlist entries may be written as "mp4", ".mp4"
// or a glob such as "**/*.mp4".
func isAllowedAsset(name string, include []string) bool {
	ext := strings.ToLower(path.Ext(name))
	if ext == "" {
		return false
	}

	for _, allowed := range defaultAssetExtensions {
		if ext == allowed {
			return true
		}
	}

	for _, entry := range include {
		if ext == normalizeExtension(entry) {
			return true
		}
	}

	return false
}

func normalizeExtension(entry string) string {
	entry = strings.ToLower(strings.TrimSpace(entry))
	if i := strings.LastIndex(entry, "."); i >= 0 {
		entry = entry[i+1:]
	}
	if entry == "" {
		return ""
	}
	return "." + entry
}
