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
	"os/signal"
	"syscall"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"

	"github.com/privacyui/pupdb/internal/iodb"
	"github.com/privacyui/pupdb/internal/iohttp"
	"github.com/privacyui/pupdb/pkg/config"
)

// getServeCmd returns the serve command.
func getServeCmd() *cobra.Command {
	var port int

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the read-only catalog JSON API",
		Long: `Serve starts the HTTP server with the read-only catalog API.

Endpoints:
  GET /api/categories
  GET /api/categories/:slug/main-pattern
  GET /api/patterns
  GET /api/patterns/:id
  GET /api/patterns/category/:slug
  GET /api/search

The server runs until interrupted (SIGINT/SIGTERM) and finishes
in-flight requests before exiting.

Examples:
  pupdb serve
  pupdb serve --port 3001`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, args, port)
		},
	}

	serveCmd.Flags().IntVarP(&port, "port", "p",
		0, "port to listen on (overrides config)")

	return serveCmd
}

func runServe(cmd *cobra.Command, _ []string, port int) error {
	ctx, stop := signal.NotifyContext(
		cmd.Context(), syscall.SIGINT, syscall.SIGTERM,
	)
	defer stop()

	if port != 0 {
		cfg.Update([]config.Option{config.OptServerPort(port)})
	}

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	gn.Info("Serving catalog API on <em>%s:%d</em>",
		cfg.Server.Host, cfg.Server.Port)

	srv := iohttp.New(cfg, op)
	if err := srv.Run(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Server stopped.")

	return nil
}
