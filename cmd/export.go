package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/conneroisu/webref/internal/errors"
	"github.com/conneroisu/webref/internal/export"
	"github.com/conneroisu/webref/internal/highlight"
)

var exportCmd = &cobra.Command{
	Use:     "export [dir]",
	Aliases: []string{"build"},
	Short:   "Write the reference as a static site",
	Long: `Write the reference as static HTML that works from the file system or
any static host. Search and tab switching run in the browser; detail pages
are separate files under entry/.

Examples:
  webref export                                   # Into ./dist
  webref export public --base-url /docs/ref/      # Links rooted at /docs/ref/
  webref export out --base-url https://ref.example.com   # Also writes sitemap.xml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("base-url", "", "Prefix for links (relative links when empty)")
	exportCmd.Flags().Int("workers", 8, "Pages written concurrently")

	bindFlag("export.base_url", exportCmd.Flags().Lookup("base-url"))
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Export.OutputDir = args[0]
	}
	logger := newLogger(cfg, cmd.ErrOrStderr())
	ctx := cmd.Context()

	cat, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		return err
	}

	h, err := highlight.New(cfg.Preview.HighlightStyle)
	if err != nil {
		return errors.NewConfigError(errors.ErrCodeConfigInvalid, err.Error()).
			WithContext("style", cfg.Preview.HighlightStyle)
	}

	workers, _ := cmd.Flags().GetInt("workers")
	gen := export.New(cat, h, logger, export.Options{
		OutputDir: cfg.Export.OutputDir,
		BaseURL:   cfg.Export.BaseURL,
		Title:     cfg.Preview.Title,
		Workers:   workers,
	})

	result, err := gen.Generate(ctx)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d files (%d entry pages) to %s in %s\n",
		len(result.Files), result.Pages, result.OutputDir, result.Duration.Round(time.Millisecond))
	return nil
}
