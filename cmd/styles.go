package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/webref/internal/highlight"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the available highlight styles",
	Long: `List the chroma styles accepted by preview.highlight_style. The default
style is marked with an asterisk.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, name := range highlight.Styles() {
			marker := " "
			if name == highlight.DefaultStyle {
				marker = "*"
			}
			if _, err := fmt.Fprintf(out, "%s %s\n", marker, name); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stylesCmd)
}
