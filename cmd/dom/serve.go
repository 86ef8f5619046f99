package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/doeixd/dom/internal/config"
	"github.com/doeixd/dom/pkg/live"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo pages live",
		Long: `Start a live server for the built-in demo pages.

Each page is rendered server-side and kept in sync over a WebSocket:
browser events run Go handlers, and the resulting tree mutations are
streamed back as patches.

Examples:
  dom serve
  dom serve --addr=:8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from dom.json)")

	return cmd
}

func runServe(addr string) error {
	cfg, err := config.Load(config.FileName)
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Serve.Address
	}

	srv := live.NewServer(&live.Config{Address: addr})
	srv.Page("counter", counterPage)
	srv.Page("todos", todosPage)

	printBanner()
	info("Serving on http://localhost%s", addr)
	info("Pages: /counter /todos")
	fmt.Println()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.ListenAndServe(ctx)
}
