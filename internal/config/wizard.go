package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and saves the result
// to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to circuitbot! Let's configure the chat assistant.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(strings.TrimSpace(portStr))

	// 2. CORS.
	corsPrompt := promptui.Select{
		Label: "Which origins may call the chat API?",
		Items: []string{
			"localhost only",
			"any origin (public website)",
		},
	}
	corsIdx, _, err := corsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("cors selection: %w", err)
	}
	cfg.AllowAllOrigins = corsIdx == 1

	// 3. Reply delay.
	delayPrompt := promptui.Prompt{
		Label:    "Reply delay in milliseconds",
		Default:  strconv.Itoa(cfg.ReplyDelayMS),
		Validate: validateNonNegative,
	}
	delayStr, err := delayPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("reply delay: %w", err)
	}
	cfg.ReplyDelayMS, _ = strconv.Atoi(strings.TrimSpace(delayStr))

	// 4. Catalog override.
	catalogPrompt := promptui.Prompt{
		Label:   "Catalog YAML file (leave blank for the built-in catalog)",
		Default: "",
	}
	cfg.CatalogFile, err = catalogPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("catalog file: %w", err)
	}

	// 5. Service content overlay.
	contentPrompt := promptui.Prompt{
		Label:   "Service content directory (leave blank for built-in content)",
		Default: "",
	}
	cfg.ContentDir, err = contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}

	// 6. Stats.
	statsPrompt := promptui.Select{
		Label: "Record resolution stats to SQLite?",
		Items: []string{"no", "yes"},
	}
	statsIdx, _, err := statsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("stats selection: %w", err)
	}
	cfg.StatsEnabled = statsIdx == 1

	if cfg.CatalogFile != "" {
		if _, err := os.Stat(cfg.CatalogFile); err != nil {
			fmt.Printf("\nNote: %s does not exist yet. Run circuitbot catalog list -o %s to start from the built-in table.\n",
				cfg.CatalogFile, cfg.CatalogFile)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 || n > 65535 {
		return fmt.Errorf("enter a port between 1 and 65535")
	}
	return nil
}

func validateNonNegative(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

// SplitAndTrim splits a comma-separated string and trims whitespace.
func SplitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
