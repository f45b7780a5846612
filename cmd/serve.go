package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"os-simulator/api"
)

var port int

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the simulator http api",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("port") {
			cfg.Port = port
		}
		app := api.NewApp(api.NewSchedulerHandlerImpl(cfg))
		addr := fmt.Sprintf(":%d", cfg.Port)
		slog.Info("listening", "addr", addr, "quantum", cfg.RoundRobinTimeQuantum)
		return app.Listen(addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on (overrides config)")
}
