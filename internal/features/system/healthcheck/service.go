package system_healthcheck

import (
	"fmt"
	"runtime"

	logs_core "mhlogs/internal/features/logs/core"
	cache_utils "mhlogs/internal/util/cache"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

type HealthcheckService struct {
	logWriter *logs_core.LogWriter
}

func (s *HealthcheckService) CheckHealth() *HealthcheckResponseDTO {
	components := map[string]ComponentStatus{
		"opensearch": componentStatusFromError(s.logWriter.TestConnection()),
		"valkey":     componentStatusFromError(s.testCacheConnection()),
	}

	status := "ok"
	for _, component := range components {
		if !component.Healthy {
			status = "degraded"
			break
		}
	}

	return &HealthcheckResponseDTO{
		Status:     status,
		Components: components,
		System:     s.collectSystemStats(),
	}
}

func (s *HealthcheckService) collectSystemStats() SystemStatsDTO {
	stats := SystemStatsDTO{
		CPUCount: runtime.NumCPU(),
	}

	if virtualMemory, err := mem.VirtualMemory(); err == nil {
		stats.MemoryUsedPercent = virtualMemory.UsedPercent
		stats.MemoryTotalMB = virtualMemory.Total / (1024 * 1024)
	}

	if uptime, err := host.Uptime(); err == nil {
		stats.HostUptimeSeconds = uptime
	}

	return stats
}

// GetCache panics when Valkey is unreachable, so the probe recovers
func (s *HealthcheckService) testCacheConnection() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cache connection test panicked: %v", r)
		}
	}()

	cache_utils.TestCacheConnection()
	return nil
}

func componentStatusFromError(err error) ComponentStatus {
	if err != nil {
		return ComponentStatus{Healthy: false, Error: err.Error()}
	}

	return ComponentStatus{Healthy: true}
}
