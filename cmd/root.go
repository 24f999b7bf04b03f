package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZacxDev/blogsite/config"
	"github.com/ZacxDev/blogsite/site"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// settings are the CLI-level options, read from flags or BLOG_* variables.
type settings struct {
	Config    string
	Overrides []string
	LogLevel  string
}

var current settings

var rootCmd = &cobra.Command{
	Use:   "blogsite",
	Short: "Ink & Notes - site configuration for the blog",
	Long: `blogsite loads and validates the blog's site declaration, hands it to the
site framework as JSON and runs a local preview of the markdown pages.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

// Execute runs the CLI. Invalid site declarations exit with status 2.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if config.IsConfigError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "site declaration file (default is the embedded declaration)")
	rootCmd.PersistentFlags().StringSlice("override", nil, "partial declaration merged on top, may be repeated")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
}

func initializeConfig(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix("BLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return errors.WithStack(err)
	}

	current = settings{
		Config:    v.GetString("config"),
		Overrides: splitList(v.GetStringSlice("override")),
		LogLevel:  v.GetString("log-level"),
	}

	level, err := log.ParseLevel(current.LogLevel)
	if err != nil {
		return errors.Wrap(err, "invalid --log-level")
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	return nil
}

// splitList splits comma-separated entries so BLOG_OVERRIDE=a.yaml,b.yaml
// behaves like --override a.yaml,b.yaml.
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// loadOverrides decodes every --override file in order.
func loadOverrides(paths []string) ([]config.Override, error) {
	overrides := make([]config.Override, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, errors.Wrapf(err, "error reading override %s", p)
		}
		o, err := config.DecodeOverride(data)
		if err != nil {
			return nil, errors.Wrap(err, p)
		}
		overrides = append(overrides, o)
	}
	return overrides, nil
}

// loadSite loads the declaration selected by the current settings.
func loadSite(declPath string) (config.SiteConfig, error) {
	overrides, err := loadOverrides(current.Overrides)
	if err != nil {
		return config.SiteConfig{}, err
	}

	if declPath == "" {
		return site.Load(overrides...)
	}
	return config.LoadFile(declPath, overrides...)
}
