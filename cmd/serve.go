package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/circuitstrategies/circuitbot/internal/chat"
	mcpserver "github.com/circuitstrategies/circuitbot/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the assistant's answers and service descriptions to AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		d, err := newDispatcher(cfg)
		if err != nil {
			return err
		}

		reg, err := loadServices(cfg)
		if err != nil {
			return err
		}

		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "circuitbot MCP server started on stdio (topics=%d, services=%d)\n",
			d.Catalog().Len(), reg.Len())

		// Agents get answers immediately; the typing delay is a widget concern.
		srv := mcpserver.NewServer(chat.NewGateway(d, nil, 0), reg)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
