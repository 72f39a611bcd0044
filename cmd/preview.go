package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conneroisu/webref/internal/catalog"
	"github.com/conneroisu/webref/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:     "preview <property> [css]",
	Aliases: []string{"p"},
	Short:   "Classify a CSS property and print its preview scene",
	Long: `Print the preview scene chosen for a CSS property and the markup it
renders. The property does not need to be in the catalog.

When no CSS is given, the catalog example for the property is used if there
is one.

Examples:
  webref preview justify-content
  webref preview grid-column "x { grid-column: 1 / 3; }"
  webref preview my-prop --scene-only`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runPreview,
}

var (
	previewSceneOnly bool
	previewOutput    string
)

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().BoolVar(&previewSceneOnly, "scene-only", false, "Print only the scene name")
	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "text", "Output format (text|json)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	property := strings.TrimSpace(args[0])
	if property == "" {
		return fmt.Errorf("property name must not be empty")
	}

	var css string
	if len(args) == 2 {
		css = args[1]
	} else {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cat, err := loadCatalog(cmd.Context(), cfg, newLogger(cfg, cmd.ErrOrStderr()))
		if err != nil {
			return err
		}
		if e, ok := cat.Get(catalog.KindProperty, property); ok {
			css = e.Example
		}
	}

	p := preview.New().Preview(property, css)
	out := cmd.OutOrStdout()

	if previewSceneOnly {
		_, err := fmt.Fprintln(out, p.SceneName)
		return err
	}

	switch strings.ToLower(previewOutput) {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(p)
	case "text":
		fmt.Fprintf(out, "Property:     %s\n", p.Property)
		fmt.Fprintf(out, "Scene:        %s\n", p.SceneName)
		fmt.Fprintf(out, "Declarations: %s\n\n", p.Declarations)
		_, err := fmt.Fprintln(out, p.Markup)
		return err
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", previewOutput)
	}
}
