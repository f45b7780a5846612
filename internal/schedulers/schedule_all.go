package schedulers

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"os-simulator/internal/core"
)

var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// ScheduleAll runs FIFO, SJF and Round-Robin side by side over the same
// registry. Reports come back in that order.
func ScheduleAll(registry *core.Registry, timeQuantum int) ([]Report, error) {
	reports := make([]Report, 3)
	errs := make([]error, 3)

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		reports[0], errs[0] = ScheduleFirstComeFirstServe(registry)
	}()
	go func() {
		defer wg.Done()
		reports[1], errs[1] = ScheduleShortestJobFirst(registry)
	}()
	go func() {
		defer wg.Done()
		reports[2], errs[2] = ScheduleRoundRobin(registry, timeQuantum)
	}()

	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return reports, nil
}

// Schedule runs a single algorithm by name: "fifo" (or "fcfs"), "sjf" or "rr".
// Names are case insensitive.
func Schedule(registry *core.Registry, algorithm string, timeQuantum int) (Report, error) {
	var (
		report Report
		err    error
	)
	switch strings.ToLower(strings.TrimSpace(algorithm)) {
	case "fifo", "fcfs":
		report, err = ScheduleFirstComeFirstServe(registry)
	case "sjf":
		report, err = ScheduleShortestJobFirst(registry)
	case "rr":
		report, err = ScheduleRoundRobin(registry, timeQuantum)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}
