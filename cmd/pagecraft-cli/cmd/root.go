package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lumenlearn/pagecraft/internal/builder"
	"github.com/lumenlearn/pagecraft/internal/i18n"
	"github.com/lumenlearn/pagecraft/internal/landing"
	"github.com/lumenlearn/pagecraft/internal/profile"
)

var pageFlag string

var rootCmd = &cobra.Command{
	Use:   "pagecraft-cli",
	Short: "PageCraft CLI tool",
	Long: `PageCraft CLI works with envelope documents offline.

Available commands:
  validate    Check an envelope file against the schema and vocabulary
  inspect     Print the sections of an envelope file
  migrate     Stamp schema versions and renumber preview orders

Use "pagecraft-cli [command] --help" for more information about a specific command.`,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&pageFlag, "page", "landing", "page vocabulary to use (landing or profile)")
}

// pageRegistry resolves the section registry for the --page flag.
func pageRegistry() *builder.Registry {
	tr := i18n.ForLocale("en")
	if pageFlag == "profile" {
		return profile.NewRegistry(tr)
	}
	return landing.NewRegistry(tr)
}
