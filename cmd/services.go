package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var servicesCmd = &cobra.Command{
	Use:   "services [id]",
	Short: "List services or print one service's modal content",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runServices,
}

func init() {
	servicesCmd.Flags().Bool("html", false, "print rendered HTML instead of markdown")
	rootCmd.AddCommand(servicesCmd)
}

func runServices(cmd *cobra.Command, args []string) error {
	htmlOutput, _ := cmd.Flags().GetBool("html")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	reg, err := loadServices(cfg)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		table := newTable("ID", "Title", "Sections")
		for _, s := range reg.List() {
			page, err := reg.Page(s.ID)
			if err != nil {
				return err
			}
			table.Append([]string{s.ID, s.Title, strconv.Itoa(len(page.Sections))})
		}
		table.Render()
		return nil
	}

	id := args[0]
	svc, ok := reg.Lookup(id)
	if !ok {
		return fmt.Errorf("unknown service %q; run `circuitbot services` to list them", id)
	}

	if htmlOutput {
		html, err := reg.Render(id)
		if err != nil {
			return err
		}
		fmt.Print(html)
		return nil
	}

	fmt.Printf("# %s\n\n%s", svc.Title, svc.Markdown)
	return nil
}
