package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lumenlearn/pagecraft/internal/builder"
	"github.com/lumenlearn/pagecraft/internal/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate <envelope.json>",
	Short: "Check an envelope file against the schema and vocabulary",
	Long: `Validate runs two checks over an envelope document: the JSON Schema
(structure, enums, required fields) and the section vocabulary (which
tags the selected page type recognizes). Unknown tags are reported but
are not an error; the builder preserves them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		issues, err := schema.Validate(data)
		if err != nil {
			return err
		}
		for _, issue := range issues {
			fmt.Printf("schema: %s\n", issue)
		}

		reg := pageRegistry()
		env, err := reg.DecodeEnvelope(data)
		if err != nil {
			return fmt.Errorf("envelope does not decode: %w", err)
		}

		unknown := 0
		for i, s := range env.Sections {
			if _, ok := s.(builder.UnknownSection); ok {
				unknown++
				fmt.Printf("vocabulary: section %d has unknown type %q (preserved)\n", i, s.Kind())
			}
		}

		if len(issues) > 0 {
			return fmt.Errorf("%d schema issue(s)", len(issues))
		}
		fmt.Printf("OK: %d section(s), %d unknown\n", len(env.Sections), unknown)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
