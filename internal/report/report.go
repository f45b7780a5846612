package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"os-simulator/internal/schedulers"
)

// FormatLog renders a run as the plain text log shown to the user.
func FormatLog(r schedulers.Report) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "%s execution:\n", r.Name())
	for _, step := range r.Steps() {
		_, _ = fmt.Fprintln(&b, step)
	}
	statistics := r.Stats()
	_, _ = fmt.Fprintf(&b, "\nStatistics:\n")
	_, _ = fmt.Fprintf(&b, "Average waiting time: %.2f\n", statistics.AverageWaitingTime)
	_, _ = fmt.Fprintf(&b, "Average turnaround time: %.2f\n", statistics.AverageTurnAroundTime)
	return b.String()
}

// Render writes a title banner, the execution trace and a schedule table.
func Render(w io.Writer, r schedulers.Report) {
	response := r.Response()
	title := r.Name()
	if response.Quantum > 0 {
		title = fmt.Sprintf("%s (quantum %d)", title, response.Quantum)
	}

	outputTitle(w, title)
	outputTrace(w, r.Steps())

	rows := make([][]string, 0, len(response.Details))
	for _, d := range response.Details {
		rows = append(rows, []string{
			d.ProcessId,
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.CompletionTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
		})
	}
	outputSchedule(w, response.Order, rows, response.AverageWaitingTime, response.AverageTurnAroundTime, response.CpuThroughput)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputTrace(w io.Writer, trace schedulers.Trace) {
	_, _ = fmt.Fprintln(w, "Execution trace")
	for i, step := range trace {
		_, _ = fmt.Fprintf(w, "%3d. %s\n", i+1, step)
	}
	_, _ = fmt.Fprintln(w)
}

func outputSchedule(w io.Writer, order string, rows [][]string, wait, turnaround, throughput float64) {
	_, _ = fmt.Fprintf(w, "Schedule table (%s order)\n", order)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Completion", "Wait", "Turnaround"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "",
		fmt.Sprintf("Throughput\n%.2f/t", throughput),
		fmt.Sprintf("Average\n%.2f", wait),
		fmt.Sprintf("Average\n%.2f", turnaround)})
	table.Render()
}
