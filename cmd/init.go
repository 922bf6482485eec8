package cmd

import (
	"github.com/spf13/cobra"

	"github.com/circuitstrategies/circuitbot/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize circuitbot configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure circuitbot and writes the config file (default .circuitbot.yml).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
