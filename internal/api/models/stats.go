package models

import "time"

// HostMemory is a snapshot of host memory usage.
type HostMemory struct {
	TotalMB     float64 `json:"total_mb"`
	UsedMB      float64 `json:"used_mb"`
	UsedPercent float64 `json:"used_percent"`
}

// ServerStatsResponse contains runtime statistics.
type ServerStatsResponse struct {
	Uptime        string      `json:"uptime"`
	UptimeSeconds int64       `json:"uptime_seconds"`
	StartTime     time.Time   `json:"start_time"`
	GoRoutines    int         `json:"goroutines"`
	MemoryAllocMB float64     `json:"memory_alloc_mb"`
	NumCPU        int         `json:"num_cpu"`
	HostMemory    *HostMemory `json:"host_memory,omitempty"`
}

// AuditEntryResponse is one operation log entry.
type AuditEntryResponse struct {
	ID        int64  `json:"id"`
	Op        string `json:"op"`
	Kind      string `json:"kind"`
	Key       string `json:"key"`
	Outcome   string `json:"outcome"`
	Detail    string `json:"detail,omitempty"`
	CreatedAt string `json:"created_at"`
}

// AuditListResponse contains recent operation log entries.
type AuditListResponse struct {
	Entries []AuditEntryResponse `json:"entries"`
	Count   int                  `json:"count"`
}
