/*
Copyright © 2025 pupdb authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"

	"github.com/privacyui/pupdb/internal/iodb"
	"github.com/privacyui/pupdb/internal/ioimport"
	"github.com/privacyui/pupdb/pkg/config"
)

// getImportCmd returns the import command.
func getImportCmd() *cobra.Command {
	var dataFile string

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import scraped patterns and examples",
		Long: `Import reads the scraper's parsed_data.json and inserts
patterns and examples into the catalog.

This command:
  1. Loads the parsed data file
  2. Maps each scraped pattern to a curated category
  3. Inserts new patterns with curated descriptions
  4. Inserts the pattern's examples with screenshot URLs

Patterns without a category mapping, and patterns that already
exist, are skipped. The import can be re-run safely.

By default the data file is <scraper_dir>/parsed_data.json; use
--data-file to import from another location.

Examples:
  pupdb import
  pupdb import --data-file /tmp/parsed_data.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args, dataFile)
		},
	}

	importCmd.Flags().StringVarP(&dataFile, "data-file", "d",
		"", "path to parsed_data.json")

	return importCmd
}

func runImport(
	_ *cobra.Command,
	_ []string,
	dataFile string,
) error {
	ctx := context.Background()

	if dataFile != "" {
		cfg.Update([]config.Option{
			config.OptImportDataFile(dataFile),
		})
	}

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	imp := ioimport.NewImporter(cfg, op)
	res, err := imp.Import(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Created <em>%d</em> patterns with <em>%d</em> examples, "+
		"skipped <em>%d</em> patterns",
		res.PatternsCreated, res.ExamplesCreated, res.PatternsSkipped)
	if len(res.Errors) > 0 {
		gn.Warn("Encountered %d errors:", len(res.Errors))
		for _, msg := range res.Errors {
			gn.Warn("  %s", msg)
		}
	}

	return nil
}
