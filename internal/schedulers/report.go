package schedulers

import (
	"os-simulator/internal/core"
	"os-simulator/internal/responses"
)

const (
	AlgorithmFirstComeFirstServe = "FIFO"
	AlgorithmShortestJobFirst    = "SJF"
	AlgorithmRoundRobin          = "Round Robin"
)

const (
	OrderExecution = "execution"
	OrderOriginal  = "original"
)

// Trace is the ordered list of human readable execution steps of a run.
type Trace []string

// Report is the common view over the result of a scheduling run.
type Report interface {
	Name() string
	Steps() Trace
	// Entries returns the processes and their completion times, index aligned,
	// in the order the statistics were computed over.
	Entries() ([]core.Process, []int)
	Stats() responses.RunStatistics
	Response() responses.ScheduleResponse
}

// ExecutionOrderReport is produced by the non-preemptive schedulers. Entries
// follow the order the processes ran in, so for SJF the averages are per
// sorted position rather than per registry position.
type ExecutionOrderReport struct {
	Algorithm       string
	Trace           Trace
	Executed        []core.Process
	CompletionTimes []int
	Statistics      responses.RunStatistics
	Metric          core.CpuMetric
}

func (r ExecutionOrderReport) Name() string                   { return r.Algorithm }
func (r ExecutionOrderReport) Steps() Trace                   { return r.Trace }
func (r ExecutionOrderReport) Stats() responses.RunStatistics { return r.Statistics }

func (r ExecutionOrderReport) Entries() ([]core.Process, []int) {
	return r.Executed, r.CompletionTimes
}

func (r ExecutionOrderReport) Response() responses.ScheduleResponse {
	return generateResponse(r, OrderExecution, 0, r.Metric)
}

// OriginalOrderReport is produced by Round-Robin. Completion times are read
// back in registry order, whatever order the processes finished in.
type OriginalOrderReport struct {
	Algorithm       string
	Quantum         int
	Trace           Trace
	Processes       []core.Process
	CompletionTimes []int
	Statistics      responses.RunStatistics
	Metric          core.CpuMetric
}

func (r OriginalOrderReport) Name() string                   { return r.Algorithm }
func (r OriginalOrderReport) Steps() Trace                   { return r.Trace }
func (r OriginalOrderReport) Stats() responses.RunStatistics { return r.Statistics }

func (r OriginalOrderReport) Entries() ([]core.Process, []int) {
	return r.Processes, r.CompletionTimes
}

func (r OriginalOrderReport) Response() responses.ScheduleResponse {
	return generateResponse(r, OrderOriginal, r.Quantum, r.Metric)
}
