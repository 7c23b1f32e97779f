package system_healthcheck

type HealthcheckResponseDTO struct {
	Status     string                     `json:"status"` // "ok" or "degraded"
	Components map[string]ComponentStatus `json:"components"`
	System     SystemStatsDTO             `json:"system"`
}

type ComponentStatus struct {
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

type SystemStatsDTO struct {
	MemoryUsedPercent float64 `json:"memoryUsedPercent"`
	MemoryTotalMB     uint64  `json:"memoryTotalMb"`
	CPUCount          int     `json:"cpuCount"`
	HostUptimeSeconds uint64  `json:"hostUptimeSeconds"`
}
