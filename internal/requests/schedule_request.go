package requests

type Job struct {
	ProcessId string `json:"process_id"`
	BurstTime int    `json:"burst_time"`
	Priority  int    `json:"priority"`
}

type ScheduleRequests struct {
	Jobs    []Job `json:"jobs"`
	Quantum *int  `json:"quantum,omitempty"`
}

type MemoryRequest struct {
	ProcessId string `json:"process_id"`
	Size      int    `json:"size"`
}

type FileRequest struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}
