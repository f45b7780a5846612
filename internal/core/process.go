package core

import (
	"fmt"
	"sync"
)

// Process is a schedulable unit. It is never modified after registration.
//
// Priority is accepted and reported but no scheduling discipline reads it.
type Process struct {
	ProcessId string `json:"process_id"`
	BurstTime int    `json:"burst_time"`
	Priority  int    `json:"priority"`
	// Seq is the arrival index inside the owning registry. Ids are not
	// required to be unique, so schedulers key their bookkeeping on Seq.
	Seq int `json:"seq"`
}

// Registry holds processes in arrival order. It only grows.
type Registry struct {
	mu        sync.RWMutex
	processes []Process
}

func NewRegistry() *Registry {
	return &Registry{processes: make([]Process, 0)}
}

// Register appends a process at the tail of the arrival order.
func (r *Registry) Register(processId string, burstTime int, priority int) error {
	if burstTime <= 0 {
		return fmt.Errorf("%w: process %q has burst time %d", ErrInvalidBurstTime, processId, burstTime)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.processes = append(r.processes, Process{
		ProcessId: processId,
		BurstTime: burstTime,
		Priority:  priority,
		Seq:       len(r.processes),
	})
	return nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.processes)
}

// Snapshot returns a private copy of the processes in arrival order.
// Callers may reorder the copy freely.
func (r *Registry) Snapshot() []Process {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snapshot := make([]Process, len(r.processes))
	copy(snapshot, r.processes)
	return snapshot
}
