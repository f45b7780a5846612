package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-simulator/internal/core"
)

func newRegistry(t *testing.T, bursts map[string]int, order ...string) *core.Registry {
	t.Helper()
	registry := core.NewRegistry()
	for _, id := range order {
		require.NoError(t, registry.Register(id, bursts[id], 1))
	}
	return registry
}

func sampleRegistry(t *testing.T) *core.Registry {
	return newRegistry(t, map[string]int{"A": 5, "B": 3, "C": 8}, "A", "B", "C")
}

func ids(processes []core.Process) []string {
	out := make([]string, 0, len(processes))
	for _, p := range processes {
		out = append(out, p.ProcessId)
	}
	return out
}

func TestFirstComeFirstServe(t *testing.T) {
	report, err := ScheduleFirstComeFirstServe(sampleRegistry(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, ids(report.Executed))
	assert.Equal(t, []int{5, 8, 16}, report.CompletionTimes)
	assert.InDelta(t, 13.0/3, report.Statistics.AverageWaitingTime, 1e-9)
	assert.InDelta(t, 29.0/3, report.Statistics.AverageTurnAroundTime, 1e-9)
	assert.Equal(t, Trace{
		"Executing process A (burst: 5)",
		"Executing process B (burst: 3)",
		"Executing process C (burst: 8)",
	}, report.Trace)
	assert.Equal(t, 16, report.Metric.TotalTime)
	assert.Equal(t, 0, report.Metric.IdleTime)
}

func TestFirstComeFirstServe_SingleProcessNeverWaits(t *testing.T) {
	report, err := ScheduleFirstComeFirstServe(newRegistry(t, map[string]int{"X": 7}, "X"))
	require.NoError(t, err)

	assert.Equal(t, []int{7}, report.CompletionTimes)
	assert.Zero(t, report.Statistics.AverageWaitingTime)
	assert.Equal(t, 7.0, report.Statistics.AverageTurnAroundTime)
}

func TestFirstComeFirstServe_CompletionTimesIncrease(t *testing.T) {
	bursts := map[string]int{"p1": 4, "p2": 1, "p3": 9, "p4": 2, "p5": 6}
	order := []string{"p1", "p2", "p3", "p4", "p5"}
	report, err := ScheduleFirstComeFirstServe(newRegistry(t, bursts, order...))
	require.NoError(t, err)

	for i := 1; i < len(report.CompletionTimes); i++ {
		assert.Greater(t, report.CompletionTimes[i], report.CompletionTimes[i-1])
	}
	assert.Equal(t, 22, report.CompletionTimes[len(report.CompletionTimes)-1])
	for i, p := range report.Executed {
		assert.GreaterOrEqual(t, report.CompletionTimes[i], p.BurstTime)
	}
}

func TestRunToCompletion_ZeroBurstCompletesInstantly(t *testing.T) {
	processes := []core.Process{
		{ProcessId: "A", BurstTime: 3, Seq: 0},
		{ProcessId: "Z", BurstTime: 0, Seq: 1},
	}
	report, err := runToCompletion(AlgorithmFirstComeFirstServe, processes)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3}, report.CompletionTimes)
}

func TestShortestJobFirst(t *testing.T) {
	registry := sampleRegistry(t)
	report, err := ScheduleShortestJobFirst(registry)
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "A", "C"}, ids(report.Executed))
	assert.Equal(t, []int{3, 8, 16}, report.CompletionTimes)
	assert.InDelta(t, 11.0/3, report.Statistics.AverageWaitingTime, 1e-9)
	assert.InDelta(t, 9.0, report.Statistics.AverageTurnAroundTime, 1e-9)

	// the registry keeps its arrival order
	assert.Equal(t, []string{"A", "B", "C"}, ids(registry.Snapshot()))
}

func TestShortestJobFirst_StableOnTies(t *testing.T) {
	bursts := map[string]int{"a": 4, "b": 2, "c": 4, "d": 2, "e": 1}
	report, err := ScheduleShortestJobFirst(newRegistry(t, bursts, "a", "b", "c", "d", "e"))
	require.NoError(t, err)

	assert.Equal(t, []string{"e", "b", "d", "a", "c"}, ids(report.Executed))

	fifo, err := ScheduleFirstComeFirstServe(newRegistry(t, bursts, "a", "b", "c", "d", "e"))
	require.NoError(t, err)
	assert.Equal(t, fifo.CompletionTimes[4], report.CompletionTimes[4])
}

func TestRoundRobin(t *testing.T) {
	report, err := ScheduleRoundRobin(sampleRegistry(t), 4)
	require.NoError(t, err)

	assert.Equal(t, Trace{
		"Executing process A (remaining: 5)",
		"Executing process B (remaining: 3)",
		"Executing process C (remaining: 8)",
		"Executing process A (remaining: 1)",
		"Executing process C (remaining: 4)",
	}, report.Trace)
	assert.Equal(t, []string{"A", "B", "C"}, ids(report.Processes))
	assert.Equal(t, []int{12, 7, 16}, report.CompletionTimes)
	assert.Equal(t, 16, report.Metric.TotalTime)
	assert.Equal(t, 4, report.Quantum)
	assert.InDelta(t, 19.0/3, report.Statistics.AverageWaitingTime, 1e-9)
}

func TestRoundRobin_LargeQuantumMatchesFirstComeFirstServe(t *testing.T) {
	registry := sampleRegistry(t)
	fifo, err := ScheduleFirstComeFirstServe(registry)
	require.NoError(t, err)

	for _, quantum := range []int{8, 9, 100} {
		rr, err := ScheduleRoundRobin(registry, quantum)
		require.NoError(t, err)
		assert.Equal(t, fifo.CompletionTimes, rr.CompletionTimes)
		assert.Equal(t, fifo.Statistics, rr.Statistics)
	}
}

func TestRoundRobin_TotalTimeIndependentOfQuantum(t *testing.T) {
	bursts := map[string]int{"p1": 10, "p2": 1, "p3": 7, "p4": 3}
	registry := newRegistry(t, bursts, "p1", "p2", "p3", "p4")

	for quantum := 1; quantum <= 11; quantum++ {
		report, err := ScheduleRoundRobin(registry, quantum)
		require.NoError(t, err)
		assert.Equal(t, 21, report.Metric.TotalTime, "quantum %d", quantum)
		assert.GreaterOrEqual(t, report.Statistics.AverageWaitingTime, 0.0)
		for i, p := range report.Processes {
			assert.GreaterOrEqual(t, report.CompletionTimes[i], p.BurstTime)
		}
	}
}

func TestRoundRobin_DuplicateIdsAreDistinctProcesses(t *testing.T) {
	registry := core.NewRegistry()
	require.NoError(t, registry.Register("dup", 3, 0))
	require.NoError(t, registry.Register("dup", 2, 0))

	report, err := ScheduleRoundRobin(registry, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 4}, report.CompletionTimes)
}

func TestRoundRobin_ZeroBurstFinishesOnFirstDequeue(t *testing.T) {
	processes := []core.Process{
		{ProcessId: "A", BurstTime: 3, Seq: 0},
		{ProcessId: "Z", BurstTime: 0, Seq: 1},
	}
	report, err := roundRobin(processes, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, report.CompletionTimes)
}

func TestRoundRobin_InvalidQuantum(t *testing.T) {
	for _, quantum := range []int{0, -1} {
		_, err := ScheduleRoundRobin(sampleRegistry(t), quantum)
		assert.ErrorIs(t, err, core.ErrInvalidQuantum)
	}
}

func TestEmptyRegistry(t *testing.T) {
	registry := core.NewRegistry()

	_, err := ScheduleFirstComeFirstServe(registry)
	assert.ErrorIs(t, err, core.ErrEmptyRegistry)
	_, err = ScheduleShortestJobFirst(registry)
	assert.ErrorIs(t, err, core.ErrEmptyRegistry)
	_, err = ScheduleRoundRobin(registry, 2)
	assert.ErrorIs(t, err, core.ErrEmptyRegistry)
}

func TestScheduleAll(t *testing.T) {
	reports, err := ScheduleAll(sampleRegistry(t), 4)
	require.NoError(t, err)
	require.Len(t, reports, 3)

	assert.Equal(t, AlgorithmFirstComeFirstServe, reports[0].Name())
	assert.Equal(t, AlgorithmShortestJobFirst, reports[1].Name())
	assert.Equal(t, AlgorithmRoundRobin, reports[2].Name())

	_, completions := reports[2].Entries()
	assert.Equal(t, []int{12, 7, 16}, completions)
}

func TestScheduleAll_PropagatesErrors(t *testing.T) {
	_, err := ScheduleAll(sampleRegistry(t), 0)
	assert.ErrorIs(t, err, core.ErrInvalidQuantum)
}

func TestSchedule(t *testing.T) {
	report, err := Schedule(sampleRegistry(t), "sjf", 0)
	require.NoError(t, err)
	assert.Equal(t, AlgorithmShortestJobFirst, report.Name())

	_, err = Schedule(sampleRegistry(t), "lottery", 2)
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestSchedule_NamesAreCaseInsensitive(t *testing.T) {
	for name, expected := range map[string]string{
		"FIFO": AlgorithmFirstComeFirstServe,
		"Fcfs": AlgorithmFirstComeFirstServe,
		"SJF":  AlgorithmShortestJobFirst,
		" Rr ": AlgorithmRoundRobin,
	} {
		report, err := Schedule(sampleRegistry(t), name, 4)
		require.NoError(t, err, name)
		assert.Equal(t, expected, report.Name())
	}
}

func TestResponse(t *testing.T) {
	report, err := ScheduleRoundRobin(sampleRegistry(t), 4)
	require.NoError(t, err)

	response := report.Response()
	assert.Equal(t, OrderOriginal, response.Order)
	assert.Equal(t, 4, response.Quantum)
	assert.Equal(t, 16, response.TotalTime)
	assert.InDelta(t, 3.0/16, response.CpuThroughput, 1e-9)
	assert.Equal(t, 1.0, response.CpuUtilization)
	require.Len(t, response.Details, 3)
	assert.Equal(t, "B", response.Details[1].ProcessId)
	assert.Equal(t, 7, response.Details[1].CompletionTime)
	assert.Equal(t, 4, response.Details[1].WaitingTime)
}
