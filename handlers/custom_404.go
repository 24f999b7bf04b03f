package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"
)

func Custom404Handler(current ConfigSource) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := newContext(current(), r.URL.Path)

		notFoundContent, err := renderPlush(notFoundTemplate, ctx)
		if err != nil {
			log.WithFields(log.Fields{"err": err}).Error("Error executing 404 template")
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}

		html, err := renderLayout(ctx, notFoundContent)
		if err != nil {
			log.WithFields(log.Fields{"err": err}).Error("Error executing base layout")
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(html))
	})
}
