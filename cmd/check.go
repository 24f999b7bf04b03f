package cmd

import (
	"fmt"

	"github.com/ZacxDev/blogsite/config"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the site declaration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSite(current.Config)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "title:        %s\n", cfg.Title)
		fmt.Fprintf(out, "base:         %s\n", cfg.Base)
		fmt.Fprintf(out, "nav entries:  %d (%d links)\n", len(cfg.ThemeConfig.Nav), countLinks(cfg.ThemeConfig.Nav))
		fmt.Fprintf(out, "social links: %d\n", len(cfg.ThemeConfig.SocialLinks))
		fmt.Fprintln(out, "site declaration is valid")
		return nil
	},
}

func countLinks(items []config.NavItem) int {
	n := 0
	for _, item := range items {
		if item.Link != "" {
			n++
		}
		n += countLinks(item.Items)
	}
	return n
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
