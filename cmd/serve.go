package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/marcus/retro/internal/api"
	"github.com/marcus/retro/internal/db"
	"github.com/marcus/retro/internal/output"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "Serve the waitlist HTTP API",
	Long:    `Start the HTTP server that accepts waitlist signups from the landing page. Configure via RETRO_LISTEN_ADDR, RETRO_WAITLIST_PROMO, and RETRO_WAITLIST_SOURCE (or a .env file).`,
	GroupID: "system",
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir := getBaseDir()

		database, err := db.Open(baseDir)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer database.Close()

		cfg, err := api.LoadConfig()
		if err != nil {
			output.Error("%v", err)
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.ListenAddr = addr
		}

		server := api.NewServer(cfg, database)
		if err := server.Start(); err != nil {
			output.Error("%v", err)
			return err
		}
		output.Info("listening on %s (ctrl+c to stop)", cfg.ListenAddr)

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			output.Error("shutdown: %v", err)
			return err
		}
		output.Info("stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides RETRO_LISTEN_ADDR)")
	rootCmd.AddCommand(serveCmd)
}
