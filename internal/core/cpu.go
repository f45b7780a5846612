package core

// CpuMetric summarises how a run used the virtual cpu. All values are in
// virtual clock units.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Cpu owns the virtual clock of a single scheduling run.
type Cpu struct {
	clock  int
	metric CpuMetric
}

func NewCpu() *Cpu {
	return &Cpu{}
}

// Execute runs the cpu for the given units of work and returns the clock
// value once they are done. Negative work is treated as zero.
func (c *Cpu) Execute(units int) int {
	if units > 0 {
		c.clock += units
		c.metric.UtilizationTime += units
	}
	c.metric.TotalTime = c.clock
	// every process is available at time 0, the cpu never idles
	c.metric.IdleTime = c.metric.TotalTime - c.metric.UtilizationTime
	return c.clock
}

func (c *Cpu) Clock() int {
	return c.clock
}

func (c *Cpu) Metric() CpuMetric {
	return c.metric
}
