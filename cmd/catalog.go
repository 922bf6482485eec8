package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/circuitstrategies/circuitbot/internal/catalog"
	"github.com/circuitstrategies/circuitbot/internal/chat"
	"github.com/circuitstrategies/circuitbot/internal/dispatcher"
	"github.com/circuitstrategies/circuitbot/internal/progress"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and check the response catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog categories in matching order",
	Long:  `Prints every category with its keywords in the order they are matched. With --output, writes the catalog as YAML suitable for catalog_file.`,
	RunE:  runCatalogList,
}

var catalogLintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Report keywords that can never match",
	Long: `Checks the catalog for keywords shadowed by an earlier category (any
message containing them is always claimed by the earlier one) and verifies
that every quick-reply suggestion resolves to a topic.`,
	RunE: runCatalogLint,
}

func init() {
	catalogListCmd.Flags().StringP("output", "o", "", "write the catalog as YAML to this file")
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogLintCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := loadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	if output != "" {
		data, err := c.Marshal()
		if err != nil {
			return err
		}
		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", output, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %d categories to %s\n", c.Len(), output)
		return nil
	}

	table := newTable("#", "ID", "Keywords")
	for i, cat := range c.CategoriesInOrder() {
		table.Append([]string{strconv.Itoa(i + 1), cat.ID, strings.Join(cat.Keywords, ", ")})
	}
	table.Render()
	return nil
}

func runCatalogLint(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := loadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	shadows := catalog.Shadowed(c)
	byCategory := make(map[string][]catalog.Shadow)
	for _, s := range shadows {
		byCategory[s.CategoryID] = append(byCategory[s.CategoryID], s)
	}

	var problems []string

	reporter := progress.NewReporter("Linting catalog")
	reporter.Start(c.Len())
	for i, cat := range c.CategoriesInOrder() {
		reporter.Update(i+1, cat.ID)
		for _, s := range byCategory[cat.ID] {
			problems = append(problems, fmt.Sprintf(
				"%s: keyword %q is shadowed by %q in %s", s.CategoryID, s.Keyword, s.ByKeyword, s.ShadowedBy))
		}
	}
	reporter.Finish()

	suggestions := cfg.Suggestions
	if len(suggestions) == 0 {
		suggestions = chat.DefaultSuggestions
	}
	d := dispatcher.New(c)
	for _, s := range suggestions {
		if res := d.Match(s); res.Kind != dispatcher.KindCategory {
			problems = append(problems, fmt.Sprintf("suggestion %q does not resolve to a topic (%s)", s, res.Kind))
		}
	}

	if len(problems) == 0 {
		color.Green.Printf("Catalog OK: %d categories, %d suggestions\n", c.Len(), len(suggestions))
		return nil
	}

	for _, p := range problems {
		color.Yellow.Println(p)
	}
	return fmt.Errorf("catalog lint found %d problem(s)", len(problems))
}
