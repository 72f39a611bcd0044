package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/webref/internal/catalog"
)

var listCmd = &cobra.Command{
	Use:     "list [html|css]",
	Aliases: []string{"l", "ls"},
	Short:   "List reference entries",
	Long: `List the entries of one or both tables.

Without --search the table is printed group by group, as in the browser. With
--search, group headers are dropped and only matching rows are shown. A row
matches when its name, description or standard contains the term, ignoring
case.

Examples:
  webref list                     # Both tables, grouped
  webref list css --search grid   # CSS rows mentioning grid
  webref list html -o json        # HTML table as JSON
  webref list css --sort name     # CSS rows in natural name order`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

var (
	listOutput string
	listSearch string
	listSort   string
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listOutput, "output", "o", "table", "Output format (table|json|yaml)")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Only show rows containing this text")
	listCmd.Flags().StringVar(&listSort, "sort", "catalog", "Row order (catalog|name)")
}

// listRow is one entry in list output.
type listRow struct {
	Kind        catalog.Kind `json:"kind" yaml:"kind"`
	Name        string       `json:"name" yaml:"name"`
	Group       string       `json:"group,omitempty" yaml:"group,omitempty"`
	Description string       `json:"description" yaml:"description"`
	Standard    string       `json:"standard" yaml:"standard"`
}

func runList(cmd *cobra.Command, args []string) error {
	kinds := catalog.Kinds()
	if len(args) == 1 {
		kind, err := parseKind(args[0])
		if err != nil {
			return err
		}
		kinds = []catalog.Kind{kind}
	}

	switch listSort {
	case "catalog", "name":
	default:
		return fmt.Errorf("unsupported sort order: %s (supported: catalog, name)", listSort)
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

	var rows []listRow
	for _, kind := range kinds {
		result := cat.Search(kind, listSearch)
		var entries []*catalog.Entry
		if result.Grouped {
			for _, g := range result.Groups {
				entries = append(entries, g.Entries...)
			}
		} else {
			entries = result.Rows
		}
		if listSort == "name" {
			catalog.SortEntries(entries)
		}
		for _, e := range entries {
			rows = append(rows, listRow{
				Kind:        e.Kind,
				Name:        e.Name,
				Group:       e.Group,
				Description: e.Description,
				Standard:    e.Standard(),
			})
		}
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(listOutput) {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(rows)
	case "yaml":
		encoder := yaml.NewEncoder(out)
		defer encoder.Close()
		return encoder.Encode(rows)
	case "table":
		return outputListTable(out, rows, listSearch == "" && listSort == "catalog")
	default:
		return fmt.Errorf("unsupported format: %s (supported: table, json, yaml)", listOutput)
	}
}

// outputListTable prints rows with tabwriter. When grouped, a header line is
// printed whenever the group changes.
func outputListTable(out io.Writer, rows []listRow, grouped bool) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(out, "No matching entries.")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION\tSTANDARD")
	fmt.Fprintln(w, "----\t-----------\t--------")

	var group string
	for _, r := range rows {
		if grouped && r.Group != group {
			group = r.Group
			fmt.Fprintf(w, "[%s] %s\t\t\n", r.Kind, group)
		}
		name := r.Name
		if r.Kind == catalog.KindTag {
			name = "<" + name + ">"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, r.Description, r.Standard)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, "\n%d entries\n", len(rows))
	return err
}
