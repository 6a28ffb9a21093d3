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
	"github.com/privacyui/pupdb/internal/ioscreens"
)

// getFixCmd returns the fix command.
func getFixCmd() *cobra.Command {
	fixCmd := &cobra.Command{
		Use:   "fix",
		Short: "Repair stale screenshot URLs",
		Long: `Fix checks every example's screenshot URL against the public
screenshot tree and repairs URLs whose file is missing.

This command:
  1. Scans the public tree and indexes files by normalized name
  2. Checks each example's stored URL against the filesystem
  3. Fuzzy-matches broken URLs against the index
  4. Updates matched rows; unmatched ones are reported

Run 'pupdb copy' first so the public tree is up to date.

Examples:
  pupdb fix`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFix(cmd, args)
		},
	}

	return fixCmd
}

func runFix(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	gn.Info("Checking screenshot URLs against <em>%s</em>...",
		cfg.Screenshots.PublicDir)

	fixer := ioscreens.NewFixer(cfg, op)
	res, err := fixer.FixURLs(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Checked <em>%d</em> examples: "+
		"<em>%d</em> fixed, <em>%d</em> without a match",
		res.Checked, res.Fixed, res.NotFound)
	if len(res.Errors) > 0 {
		gn.Warn("Encountered %d errors:", len(res.Errors))
		for _, msg := range res.Errors {
			gn.Warn("  %s", msg)
		}
	}

	return nil
}
