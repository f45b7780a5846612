package schedulers

import (
	"fmt"
	"log/slog"

	"os-simulator/internal/core"
	"os-simulator/internal/util"
)

// ScheduleFirstComeFirstServe runs every process to completion in arrival order.
func ScheduleFirstComeFirstServe(registry *core.Registry) (ExecutionOrderReport, error) {
	return runToCompletion(AlgorithmFirstComeFirstServe, registry.Snapshot())
}

// runToCompletion executes processes back to back in the given order on a
// fresh virtual cpu.
func runToCompletion(algorithm string, processes []core.Process) (ExecutionOrderReport, error) {
	if len(processes) == 0 {
		return ExecutionOrderReport{}, fmt.Errorf("%w: nothing to schedule with %s", core.ErrEmptyRegistry, algorithm)
	}

	cpu := core.NewCpu()
	trace := make(Trace, 0, len(processes))
	completionTimes := make([]int, 0, len(processes))

	for _, proccess := range processes {
		trace = append(trace, fmt.Sprintf("Executing process %s (burst: %d)", proccess.ProcessId, proccess.BurstTime))
		completionTime := cpu.Execute(proccess.BurstTime)
		completionTimes = append(completionTimes, completionTime)
		slog.Debug("process completed", "algorithm", algorithm, "pid", proccess.ProcessId, "clock", completionTime)
	}

	statistics, err := util.CalculateStatistics(processes, completionTimes)
	if err != nil {
		return ExecutionOrderReport{}, err
	}

	slog.Info("schedule finished", "algorithm", algorithm, "processes", len(processes), "total_time", cpu.Clock())
	return ExecutionOrderReport{
		Algorithm:       algorithm,
		Trace:           trace,
		Executed:        processes,
		CompletionTimes: completionTimes,
		Statistics:      statistics,
		Metric:          cpu.Metric(),
	}, nil
}
