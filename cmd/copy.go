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

	"github.com/privacyui/pupdb/internal/ioscreens"
)

// getCopyCmd returns the copy command.
func getCopyCmd() *cobra.Command {
	copyCmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy scraped screenshots into the public tree",
		Long: `Copy stages screenshot files from the scraper output tree
into the public static-asset tree the API serves them from.

This command:
  1. Recursively copies image files (png, jpg, jpeg, gif, webp)
  2. Skips files that already exist at the destination
  3. Writes a .gitignore so screenshots stay out of version control

Existing files are never overwritten, so the command is safe to
run repeatedly as the scraper produces new screenshots.

Examples:
  pupdb copy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(cmd, args)
		},
	}

	return copyCmd
}

func runCopy(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	gn.Info("Copying screenshots from <em>%s</em> to <em>%s</em>...",
		cfg.Screenshots.ScraperDir, cfg.Screenshots.PublicDir)

	copier := ioscreens.NewCopier(cfg)
	res, err := copier.Copy(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Copied <em>%d</em> files, skipped <em>%d</em> existing files",
		res.Copied, res.Skipped)
	if len(res.Errors) > 0 {
		gn.Warn("Encountered %d errors:", len(res.Errors))
		for _, msg := range res.Errors {
			gn.Warn("  %s", msg)
		}
	}

	return nil
}
