package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"os-simulator/internal/loader"
	"os-simulator/internal/report"
	"os-simulator/internal/schedulers"
)

var ErrInvalidArgs = errors.New("invalid args")

var (
	processFile string
	algorithm   string
	quantum     int
	plain       bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "schedule the processes of a CSV file",
	Long: `Reads "id,burst[,priority]" rows and prints the execution trace and
statistics of the chosen algorithm: fifo, sjf, rr or all.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if processFile == "" {
			return fmt.Errorf("%w: must give a scheduling file to process", ErrInvalidArgs)
		}
		timeQuantum := cfg.RoundRobinTimeQuantum
		if cmd.Flags().Changed("quantum") {
			timeQuantum = quantum
		}

		f, err := os.Open(processFile)
		if err != nil {
			return fmt.Errorf("opening scheduling file: %w", err)
		}
		defer f.Close()

		return runSchedule(cmd.OutOrStdout(), f, algorithm, timeQuantum, plain)
	},
}

func runSchedule(w io.Writer, r io.Reader, algorithm string, timeQuantum int, plain bool) error {
	registry, err := loader.LoadProcesses(r)
	if err != nil {
		return err
	}

	var reports []schedulers.Report
	if strings.EqualFold(strings.TrimSpace(algorithm), "all") {
		reports, err = schedulers.ScheduleAll(registry, timeQuantum)
	} else {
		var single schedulers.Report
		single, err = schedulers.Schedule(registry, algorithm, timeQuantum)
		reports = []schedulers.Report{single}
	}
	if err != nil {
		return err
	}

	for _, rep := range reports {
		if plain {
			_, _ = fmt.Fprintln(w, report.FormatLog(rep))
			continue
		}
		report.Render(w, rep)
		_, _ = fmt.Fprintln(w)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&processFile, "file", "f", "", "CSV file of processes")
	runCmd.Flags().StringVarP(&algorithm, "algorithm", "a", "all", "fifo, sjf, rr or all")
	runCmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "round robin quantum (overrides config)")
	runCmd.Flags().BoolVar(&plain, "plain", false, "print the plain text log instead of tables")
}
