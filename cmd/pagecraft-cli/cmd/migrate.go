package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lumenlearn/pagecraft/internal/landing"
	"github.com/lumenlearn/pagecraft/internal/previews"
)

var (
	migrateOut      string
	migratePreviews bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate <document.json>",
	Short: "Stamp schema versions and renumber preview orders",
	Long: `Migrate brings older documents up to the current conventions. For an
envelope it stamps a missing schemaVersion by inspecting the section
tags. With --previews the input is treated as a preview media config and
its order fields are renumbered to be contiguous and zero-based.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		var out []byte
		if migratePreviews {
			out, err = migratePreviewConfig(data)
		} else {
			out, err = migrateEnvelope(data)
		}
		if err != nil {
			return err
		}

		if migrateOut == "" || migrateOut == "-" {
			fmt.Println(string(out))
			return nil
		}
		return os.WriteFile(migrateOut, out, 0o644)
	},
}

func migrateEnvelope(data []byte) ([]byte, error) {
	reg := pageRegistry()
	env, err := reg.DecodeEnvelope(data)
	if err != nil {
		return nil, fmt.Errorf("envelope does not decode: %w", err)
	}
	if env.SchemaVersion == 0 {
		env.SchemaVersion = landing.DetectSchemaVersion(env.Sections)
		fmt.Fprintf(os.Stderr, "stamped schemaVersion %d\n", env.SchemaVersion)
	}
	return json.MarshalIndent(env, "", "  ")
}

func migratePreviewConfig(data []byte) ([]byte, error) {
	// Loading renumbers; URLs are irrelevant for migration so the
	// resolver is the identity.
	list, err := previews.Load(data, func(filename string) string { return filename })
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(list.Stored(), "", "  ")
}

func init() {
	migrateCmd.Flags().StringVarP(&migrateOut, "out", "o", "", "output file (default stdout)")
	migrateCmd.Flags().BoolVar(&migratePreviews, "previews", false, "treat input as a preview media config")
	rootCmd.AddCommand(migrateCmd)
}
