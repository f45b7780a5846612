package schedulers

import (
	"sort"

	"os-simulator/internal/core"
)

// ScheduleShortestJobFirst runs processes non-preemptively, shortest burst
// first. Statistics are reported over the sorted execution order.
// TODO: expose a per-process view keyed by registry order next to the sorted one.
func ScheduleShortestJobFirst(registry *core.Registry) (ExecutionOrderReport, error) {
	return runToCompletion(AlgorithmShortestJobFirst, sortShortestJob(registry.Snapshot()))
}

// sortShortestJob orders processes by burst time in place. Equal bursts keep
// their arrival order.
func sortShortestJob(processes []core.Process) []core.Process {
	sort.SliceStable(processes, func(i, j int) bool {
		return processes[i].BurstTime < processes[j].BurstTime
	})
	return processes
}
