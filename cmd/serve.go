package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ZacxDev/blogsite/config"
	"github.com/ZacxDev/blogsite/handlers"
	"github.com/ZacxDev/blogsite/watch"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultDevPort = 5173

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Preview the markdown pages with the site navigation",
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetInt("port")
		pagesDir, _ := cmd.Flags().GetString("pages")
		staticDir, _ := cmd.Flags().GetString("static")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		source, cleanup, err := configSource(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		if port == 0 {
			port = devPort(source())
		}

		router, err := handlers.SetupRouter(source, pagesDir, staticDir)
		if err != nil {
			return errors.Wrap(err, "error setting up router")
		}

		server := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
		}()

		log.WithFields(log.Fields{"port": port, "base": source().Base}).Info("Starting preview server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.WithStack(err)
		}
		return nil
	},
}

// configSource returns a fixed value for the embedded declaration and a
// hot-reloading one when --config points at a file.
func configSource(ctx context.Context) (handlers.ConfigSource, func(), error) {
	if current.Config == "" {
		cfg, err := loadSite("")
		if err != nil {
			return nil, nil, err
		}
		return func() config.SiteConfig { return cfg }, func() {}, nil
	}

	w, err := watch.New(current.Config, loadSite)
	if err != nil {
		return nil, nil, err
	}
	if err := w.Start(ctx); err != nil {
		_ = w.Stop()
		return nil, nil, err
	}
	return w.Current, func() { _ = w.Stop() }, nil
}

func devPort(cfg config.SiteConfig) int {
	if cfg.Vite.Server.Port > 0 {
		return cfg.Vite.Server.Port
	}
	return defaultDevPort
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 0, "port to serve on (default vite.server.port, then 5173)")
	serveCmd.Flags().String("pages", "docs", "directory holding the markdown pages")
	serveCmd.Flags().String("static", "public", "directory holding static assets")
}
