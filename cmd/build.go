package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZacxDev/blogsite/javascript"
	"github.com/ZacxDev/blogsite/utils"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write the framework config, sitemap and theme scripts",
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir, _ := cmd.Flags().GetString("out")
		publicDir, _ := cmd.Flags().GetString("public")
		skipScripts, _ := cmd.Flags().GetBool("skip-scripts")

		cfg, err := loadSite(current.Config)
		if err != nil {
			return err
		}

		data, err := cfg.JSON()
		if err != nil {
			return err
		}

		err = os.MkdirAll(outDir, os.ModePerm)
		if err != nil {
			return errors.WithStack(err)
		}

		configPath := filepath.Join(outDir, "config.json")
		err = os.WriteFile(configPath, data, 0644)
		if err != nil {
			return errors.Wrapf(err, "error writing %s", configPath)
		}
		log.WithFields(log.Fields{"file": configPath}).Info("Wrote site config")

		if cfg.Sitemap.Hostname != "" {
			if err := utils.GenerateSitemaps(cfg, publicDir); err != nil {
				return errors.Wrap(err, "error generating sitemap")
			}
			log.WithFields(log.Fields{"dir": publicDir}).Info("Wrote sitemap")
		}

		if !skipScripts && len(cfg.Vite.Scripts) > 0 {
			emitted, err := javascript.CompileScripts(cfg.Vite.Scripts)
			if err != nil {
				return err
			}
			for name, publicPath := range emitted {
				fmt.Fprintf(cmd.OutOrStdout(), "script %s -> %s\n", name, publicPath)
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Site config written to %s\n", configPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringP("out", "o", ".vitepress", "directory receiving config.json")
	buildCmd.Flags().String("public", "public", "directory receiving sitemap.xml")
	buildCmd.Flags().Bool("skip-scripts", false, "do not bundle theme scripts")
}
