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
	"github.com/privacyui/pupdb/internal/ioseed"
)

// getSeedCmd returns the seed command.
func getSeedCmd() *cobra.Command {
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed test data for local development",
		Long: `Seed fills an empty catalog with synthetic content: one test
pattern with three examples for each of the first three categories.

Requires the schema and categories to exist; run 'pupdb create'
or 'pupdb migrate' first.

Examples:
  pupdb seed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, args)
		},
	}

	return seedCmd
}

func runSeed(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	seeder := ioseed.NewSeeder(op)
	if err := seeder.Seed(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Test data seeding complete.")

	return nil
}
