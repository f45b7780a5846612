package util

import (
	"fmt"

	"os-simulator/internal/core"
	"os-simulator/internal/responses"
)

// CalculateStatistics averages waiting and turnaround time over processes.
// completionTimes[i] belongs to processes[i]. Turnaround equals completion
// time because every process is available at time 0.
func CalculateStatistics(processes []core.Process, completionTimes []int) (responses.RunStatistics, error) {
	if len(processes) == 0 {
		return responses.RunStatistics{}, fmt.Errorf("%w: no processes to average", core.ErrEmptyRegistry)
	}
	if len(processes) != len(completionTimes) {
		return responses.RunStatistics{}, fmt.Errorf("%w: %d processes, %d completion times",
			core.ErrLengthMismatch, len(processes), len(completionTimes))
	}

	var waitingTimeSum float64
	var turnAroundTimeSum float64

	for i, proccess := range processes {
		waitingTimeSum += float64(completionTimes[i] - proccess.BurstTime)
		turnAroundTimeSum += float64(completionTimes[i])
	}

	proccessCount := float64(len(processes))

	return responses.RunStatistics{
		AverageWaitingTime:    waitingTimeSum / proccessCount,
		AverageTurnAroundTime: turnAroundTimeSum / proccessCount,
	}, nil
}
