package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/circuitstrategies/circuitbot/internal/chat"
)

var chatNoDelay bool

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the assistant in the terminal",
	Long:  `Starts an interactive session that behaves like the website chat widget. Press Ctrl+C or Ctrl+D to quit.`,
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().BoolVar(&chatNoDelay, "no-delay", false, "reply immediately instead of after the configured delay")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	d, err := newDispatcher(cfg)
	if err != nil {
		return err
	}

	delay := cfg.ReplyDelay()
	if chatNoDelay {
		delay = 0
	}
	gateway := chat.NewGateway(d, nil, delay)

	suggestions := cfg.Suggestions
	if len(suggestions) == 0 {
		suggestions = chat.DefaultSuggestions
	}

	botLabel := color.New(color.FgCyan, color.OpBold).Render("Bot:")

	fmt.Println("Hi! I'm the Circuit Strategies assistant. Try asking:")
	for _, s := range suggestions {
		fmt.Printf("  - %s\n", s)
	}
	fmt.Println()

	ctx := cmd.Context()

	for {
		prompt := promptui.Prompt{Label: "You"}
		text, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				fmt.Println("Goodbye!")
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		out, err := gateway.Reply(ctx, chat.IncomingMessage{Channel: chat.ChannelCLI, Text: text})
		if err != nil {
			return err
		}
		if out.Topic != "" {
			logVerbose("[%s]\n", out.Topic)
		}
		fmt.Printf("%s %s\n\n", botLabel, out.Text)
	}
}
