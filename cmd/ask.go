package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [message]",
	Short: "Print the assistant's answer to a single message",
	Long:  `Resolves one message against the catalog and prints the reply, without the widget's typing delay.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	askCmd.Flags().Bool("json", false, "output the resolution as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	d, err := newDispatcher(cfg)
	if err != nil {
		return err
	}

	res := d.Match(strings.Join(args, " "))

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if res.CategoryID != "" {
		logVerbose("Matched %s (%s)\n", res.CategoryID, res.Kind)
	} else {
		logVerbose("Matched %s\n", res.Kind)
	}
	fmt.Println(res.Response)
	return nil
}
