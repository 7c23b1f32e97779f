package system_healthcheck

import (
	"sync"

	logs_core "mhlogs/internal/features/logs/core"
)

var (
	once                  sync.Once
	healthcheckController *HealthcheckController
)

func GetHealthcheckController() *HealthcheckController {
	once.Do(func() {
		healthcheckController = &HealthcheckController{
			&HealthcheckService{logs_core.GetLogWriter()},
		}
	})

	return healthcheckController
}
