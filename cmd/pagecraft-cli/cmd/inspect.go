package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lumenlearn/pagecraft/internal/builder"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <envelope.json>",
	Short: "Print the sections of an envelope file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		reg := pageRegistry()
		env, err := reg.DecodeEnvelope(data)
		if err != nil {
			return fmt.Errorf("envelope does not decode: %w", err)
		}

		fmt.Printf("enabled: %t  schemaVersion: %d  navbar: %t\n\n", env.Enabled, env.SchemaVersion, env.Navbar != nil)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "#\tTYPE\tID\tSTATUS")
		for i, s := range env.Sections {
			status := "known"
			if _, ok := s.(builder.UnknownSection); ok {
				status = "unknown (preserved)"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, s.Kind(), s.SectionID(), status)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
