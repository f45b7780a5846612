package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"os-simulator/config"
	"os-simulator/internal/logger"
)

var (
	configPath  string
	cfg         *config.SimulatorConfig
	closeLogger = func() error { return nil }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "ossim",
	Short:         "operating system resource management simulator",
	Long:          `Simulates cpu scheduling (FIFO, SJF, Round-Robin), paged memory and a flat file store.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.LoadSimulatorConfig(configPath); err != nil {
			return err
		}
		closeLogger, err = logger.InitLogger(cfg.LogFile, cfg.LogLevel)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLogger()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path of the yaml config file (default ./config.yaml)")
}
