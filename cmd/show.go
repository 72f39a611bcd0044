package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conneroisu/webref/internal/catalog"
	"github.com/conneroisu/webref/internal/errors"
	"github.com/conneroisu/webref/internal/highlight"
	"github.com/conneroisu/webref/internal/preview"
)

var showCmd = &cobra.Command{
	Use:   "show <html|css> <name>",
	Short: "Show one reference entry",
	Long: `Show the detail view of one entry: its description, explanation and
example. For CSS properties the preview scene and extracted declarations are
shown too.

Examples:
  webref show html div
  webref show css grid-template-columns
  webref show css color --no-color
  webref show css display -o json`,
	Args: cobra.ExactArgs(2),
	RunE: runShow,
}

var (
	showNoColor bool
	showOutput  string
)

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&showNoColor, "no-color", false, "Print the example without syntax highlighting")
	showCmd.Flags().StringVarP(&showOutput, "output", "o", "text", "Output format (text|json)")
}

// showResult is the JSON form of show.
type showResult struct {
	*catalog.Entry
	Title        string `json:"title"`
	Explanation  string `json:"explanation_text"`
	Scene        string `json:"scene,omitempty"`
	Declarations string `json:"declarations,omitempty"`
}

func runShow(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg, cmd.ErrOrStderr())
	cat, err := loadCatalog(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	name := args[1]
	entry, ok := cat.Get(kind, name)
	if !ok {
		suggestions := errors.EntryNotFoundError(string(kind), name, &errors.SuggestionContext{
			Names:      cat.Names(kind),
			ConfigPath: cfg.Catalog.File,
		})
		return errors.NewEnhancedError(
			fmt.Sprintf("No %s entry named %q", kind, name),
			errors.ErrEntryNotFound(string(kind), name),
			suggestions,
		)
	}

	result := showResult{Entry: entry, Title: entry.Title(), Explanation: catalog.Explain(entry)}
	if kind == catalog.KindProperty {
		p := preview.New().Preview(entry.Name, entry.Example)
		result.Scene = p.SceneName
		result.Declarations = p.Declarations
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(showOutput) {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case "text":
		return printEntry(out, result, cfg.Preview.HighlightStyle)
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", showOutput)
	}
}

func printEntry(out io.Writer, r showResult, style string) error {
	fmt.Fprintln(out, r.Title)
	fmt.Fprintln(out, strings.Repeat("=", len(r.Title)))
	if r.Group != "" {
		fmt.Fprintf(out, "Group:    %s\n", r.Group)
	}
	fmt.Fprintf(out, "Standard: %s\n\n", r.Standard())
	fmt.Fprintf(out, "%s\n\n", r.Description)
	fmt.Fprintf(out, "%s\n\n", r.Explanation)

	fmt.Fprintln(out, "Example:")
	if err := printExample(out, r.Kind, r.Example, style); err != nil {
		return err
	}

	if r.Scene != "" {
		fmt.Fprintf(out, "\nPreview scene: %s\n", r.Scene)
		fmt.Fprintf(out, "Declarations:  %s\n", r.Declarations)
	}
	return nil
}

func printExample(out io.Writer, kind catalog.Kind, code, style string) error {
	if !showNoColor {
		h, err := highlight.New(style)
		if err != nil {
			return err
		}
		if err := h.Terminal(out, kind, code); err == nil {
			_, err = fmt.Fprintln(out)
			return err
		}
	}
	_, err := fmt.Fprintln(out, code)
	return err
}
