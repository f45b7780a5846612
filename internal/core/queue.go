package core

// ProcessQueue is the ready queue used by preemptive schedulers.
// It is owned by a single run and is not safe for concurrent use.
type ProcessQueue struct {
	queue []Process
}

func NewProcessQueue(processes []Process) *ProcessQueue {
	queue := make([]Process, len(processes))
	copy(queue, processes)
	return &ProcessQueue{queue: queue}
}

func (p *ProcessQueue) AddToEnd(proccess Process) {
	p.queue = append(p.queue, proccess)
}

func (p *ProcessQueue) RemoveFromTop() (Process, bool) {
	if len(p.queue) > 0 {
		item := p.queue[0]
		p.queue = p.queue[1:]
		return item, true
	}
	return Process{}, false
}

func (p *ProcessQueue) Len() int {
	return len(p.queue)
}
