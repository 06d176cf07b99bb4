package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/soochol/awsblogs/internal/api"
	"github.com/soochol/awsblogs/internal/config"
	"github.com/soochol/awsblogs/internal/mcpserver"
)

func newServeCmd(configPath *string) *cobra.Command {
	var transport, addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the blog tools over MCP stdio or HTTP",
		Long: `Serve the blog tools.

With --transport stdio (the default) the process speaks MCP on stdin/stdout and
logs to stderr. With --transport http it serves the REST API, /metrics and the
MCP streamable HTTP endpoint at /mcp.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if err := applyServeFlags(cfg, transport, addr); err != nil {
				return err
			}

			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.close()

			mcpSrv, err := mcpserver.New(a.registry, version, a.log)
			if err != nil {
				return err
			}

			if cfg.Transport == config.TransportStdio {
				return mcpSrv.ServeStdio()
			}

			ctx, stop := signal.NotifyContext(background(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := api.NewServer(a.registry, a.log)
			srv.SetMCPHandler(mcpSrv.HTTPHandler())
			if err := srv.Run(ctx, cfg.Server.Addr()); err != nil {
				a.log.Error("server error", zap.Error(err))
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&transport, "transport", "", "transport to serve: stdio or http (overrides config)")
	cmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address host:port (overrides config)")
	return cmd
}

// applyServeFlags applies command-line overrides on top of file and
// environment configuration.
func applyServeFlags(cfg *config.Config, transport, addr string) error {
	if transport != "" {
		cfg.Transport = transport
	}
	if addr != "" {
		host, portStr, err := net.SplitHostPort(addr)
		if err != nil {
			return fmt.Errorf("invalid --addr %q: %w", addr, err)
		}
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("invalid --addr port %q: %w", portStr, err)
		}
		cfg.Server.Host = host
		cfg.Server.Port = port
	}
	return cfg.Validate()
}

// background is used when a command runs without a parent context.
func background(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
