package cli

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Fuabioo/notesmcp/internal/core"
	"github.com/Fuabioo/notesmcp/internal/mcp"
	"github.com/spf13/cobra"
)

var (
	mcpFlagTransport string
	mcpFlagHost      string
	mcpFlagPort      int
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Starts the Model Context Protocol (MCP) server.

The transport is taken from MCP_TRANSPORT ("http" or stdio, the default),
with HOST and PORT configuring the HTTP bind address. Flags override the
environment. In stdio mode this command is used by MCP clients
(Claude Desktop, etc.) and should not be run directly by users.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpFlagTransport, "transport", "", `Transport: "stdio" or "http" (overrides MCP_TRANSPORT)`)
	mcpCmd.Flags().StringVar(&mcpFlagHost, "host", "", "HTTP bind host (overrides HOST)")
	mcpCmd.Flags().IntVar(&mcpFlagPort, "port", 0, "HTTP bind port (overrides PORT)")
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if mcpFlagTransport != "" {
		if strings.EqualFold(mcpFlagTransport, string(core.TransportHTTP)) {
			cfg.Transport = core.TransportHTTP
		} else {
			cfg.Transport = core.TransportStdio
		}
	}
	if mcpFlagHost != "" {
		cfg.Host = mcpFlagHost
	}
	if mcpFlagPort != 0 {
		cfg.Port = mcpFlagPort
	}

	srv, err := mcp.NewServerWithConfig(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Serve(ctx)
}
