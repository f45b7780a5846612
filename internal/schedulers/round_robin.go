package schedulers

import (
	"fmt"
	"log/slog"

	"os-simulator/internal/core"
	"os-simulator/internal/util"
)

// ScheduleRoundRobin gives every process at most timeQuantum units per turn,
// requeueing it at the tail until its burst is consumed.
func ScheduleRoundRobin(registry *core.Registry, timeQuantum int) (OriginalOrderReport, error) {
	return roundRobin(registry.Snapshot(), timeQuantum)
}

func roundRobin(processes []core.Process, timeQuantum int) (OriginalOrderReport, error) {
	if timeQuantum <= 0 {
		return OriginalOrderReport{}, fmt.Errorf("%w: quantum must be positive, got %d", core.ErrInvalidQuantum, timeQuantum)
	}
	if len(processes) == 0 {
		return OriginalOrderReport{}, fmt.Errorf("%w: nothing to schedule with %s", core.ErrEmptyRegistry, AlgorithmRoundRobin)
	}

	cpu := core.NewCpu()
	queue := core.NewProcessQueue(processes)
	trace := make(Trace, 0, len(processes))

	// keyed by Seq; a completion of 0 means still running
	remainingTimes := make(map[int]int, len(processes))
	completions := make(map[int]int, len(processes))
	for _, proccess := range processes {
		remainingTimes[proccess.Seq] = proccess.BurstTime
		completions[proccess.Seq] = 0
	}

	for queue.Len() > 0 {
		proccess, _ := queue.RemoveFromTop()
		remaining := remainingTimes[proccess.Seq]
		trace = append(trace, fmt.Sprintf("Executing process %s (remaining: %d)", proccess.ProcessId, remaining))

		if remaining > timeQuantum {
			cpu.Execute(timeQuantum)
			remainingTimes[proccess.Seq] = remaining - timeQuantum
			slog.Debug("context switch", "pid", proccess.ProcessId, "remaining", remaining-timeQuantum, "clock", cpu.Clock())
			queue.AddToEnd(proccess)
			continue
		}

		completions[proccess.Seq] = cpu.Execute(remaining)
		remainingTimes[proccess.Seq] = 0
		slog.Debug("process completed", "algorithm", AlgorithmRoundRobin, "pid", proccess.ProcessId, "clock", cpu.Clock())
	}

	completionTimes := make([]int, len(processes))
	for i, proccess := range processes {
		completionTimes[i] = completions[proccess.Seq]
	}

	statistics, err := util.CalculateStatistics(processes, completionTimes)
	if err != nil {
		return OriginalOrderReport{}, err
	}

	slog.Info("schedule finished", "algorithm", AlgorithmRoundRobin, "quantum", timeQuantum,
		"processes", len(processes), "total_time", cpu.Clock())
	return OriginalOrderReport{
		Algorithm:       AlgorithmRoundRobin,
		Quantum:         timeQuantum,
		Trace:           trace,
		Processes:       processes,
		CompletionTimes: completionTimes,
		Statistics:      statistics,
		Metric:          cpu.Metric(),
	}, nil
}
