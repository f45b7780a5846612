package schedulers

import (
	"os-simulator/internal/core"
	"os-simulator/internal/responses"
)

func generateResponse(report Report, order string, quantum int, cpuMetric core.CpuMetric) responses.ScheduleResponse {
	processes, completionTimes := report.Entries()
	statistics := report.Stats()

	proccessDetails := make([]responses.ProcessResponse, 0, len(processes))
	for i, process := range processes {
		proccessDetails = append(proccessDetails, generateProcessDetails(process, completionTimes[i]))
	}

	var utilization, throughput float64
	if cpuMetric.TotalTime > 0 {
		utilization = float64(cpuMetric.UtilizationTime) / float64(cpuMetric.TotalTime)
		throughput = float64(len(processes)) / float64(cpuMetric.TotalTime)
	}

	trace := make([]string, len(report.Steps()))
	copy(trace, report.Steps())

	return responses.ScheduleResponse{
		Algorithm:             report.Name(),
		Quantum:               quantum,
		Order:                 order,
		Trace:                 trace,
		TotalTime:             cpuMetric.TotalTime,
		IdleTime:              cpuMetric.IdleTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		AverageWaitingTime:    statistics.AverageWaitingTime,
		AverageTurnAroundTime: statistics.AverageTurnAroundTime,
		Details:               proccessDetails,
	}
}

func generateProcessDetails(process core.Process, completionTime int) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      process.ProcessId,
		Priority:       process.Priority,
		BurstTime:      process.BurstTime,
		CompletionTime: completionTime,
		WaitingTime:    completionTime - process.BurstTime,
		TurnAroundTime: completionTime,
	}
}
