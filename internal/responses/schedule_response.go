package responses

import "os-simulator/internal/core"

type RunStatistics struct {
	AverageWaitingTime    float64 `json:"average_waiting_time"`
	AverageTurnAroundTime float64 `json:"average_turn_around_time"`
}

type ProcessResponse struct {
	ProcessId      string `json:"process_id"`
	Priority       int    `json:"priority"`
	BurstTime      int    `json:"burst_time"`
	CompletionTime int    `json:"completion_time"`
	WaitingTime    int    `json:"waiting_time"`
	TurnAroundTime int    `json:"turn_around_time"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	Quantum               int               `json:"quantum,omitempty"`
	Order                 string            `json:"order"`
	Trace                 []string          `json:"trace"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	Details               []ProcessResponse `json:"details"`
}

type ProcessesResponse struct {
	Processes []core.Process `json:"processes"`
}

type MemoryResponse struct {
	Frames     []string         `json:"frames"`
	PageTables map[string][]int `json:"page_tables"`
	Evicted    []string         `json:"evicted,omitempty"`
	Pages      []int            `json:"pages,omitempty"`
}

type DirectoryResponse struct {
	Directory string   `json:"directory"`
	Entries   []string `json:"entries"`
}

type FileResponse struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}
