package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/circuitstrategies/circuitbot/internal/chat"
	"github.com/circuitstrategies/circuitbot/internal/config"
	"github.com/circuitstrategies/circuitbot/internal/db"
	"github.com/circuitstrategies/circuitbot/internal/server"
	"github.com/circuitstrategies/circuitbot/internal/services"
	"github.com/circuitstrategies/circuitbot/internal/stats"
)

var (
	serverPort        int
	serverSuggestions string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the chat widget HTTP server",
	Long:  `Starts the circuitbot HTTP server with the chat API, WebSocket chat, service content endpoints and optional resolution stats.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = serverPort
		}
		if serverSuggestions != "" {
			cfg.Suggestions = config.SplitAndTrim(serverSuggestions)
		}

		d, err := newDispatcher(cfg)
		if err != nil {
			return err
		}

		reg, err := loadServices(cfg)
		if err != nil {
			return err
		}

		// Open the stats database only when enabled.
		var database *db.DB
		if cfg.StatsEnabled {
			database, err = db.Open(cfg.StatsPath())
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer database.Close()
		}

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.AllowAllOrigins,
		}, database)

		var recorder chat.Recorder
		if database != nil {
			store := stats.NewStore(database)
			stats.RegisterRoutes(srv.Router(), store)
			recorder = store
		}

		gateway := chat.NewGateway(d, recorder, cfg.ReplyDelay())
		chat.NewHandler(gateway, cfg.Suggestions).RegisterRoutes(srv.Router())
		services.RegisterRoutes(srv.Router(), reg)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		fmt.Fprintf(os.Stderr, "circuitbot server %s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Topics: %d\n", d.Catalog().Len())
		fmt.Fprintf(os.Stderr, "  Services: %d\n", reg.Len())
		fmt.Fprintf(os.Stderr, "  Reply delay: %v\n", gateway.Delay())
		if database != nil {
			fmt.Fprintf(os.Stderr, "  Stats: %s\n", database.Path())
		}

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 8080, "Port to listen on (overrides config)")
	serverCmd.Flags().StringVar(&serverSuggestions, "suggestions", "", "comma-separated quick-reply suggestions (overrides config)")
	rootCmd.AddCommand(serverCmd)
}
