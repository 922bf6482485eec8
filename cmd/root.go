package cmd

import (
	"github.com/spf13/cobra"

	"github.com/circuitstrategies/circuitbot/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "circuitbot",
	Short: "Rule-based chat assistant for the Circuit Strategies website",
	Long: `circuitbot answers visitor questions on the Circuit Strategies website.
Each message is matched against an ordered catalog of topics by keyword,
with small-talk fallbacks and a default answer. It serves the chat widget
over HTTP and WebSocket, the service detail modals, and exposes the same
answers to AI agents via MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
