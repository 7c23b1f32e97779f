package logs_receiving

import (
	"sync"

	"mhlogs/internal/config"
	api_keys "mhlogs/internal/features/api_keys"
	logs_core "mhlogs/internal/features/logs/core"
	"mhlogs/internal/util/logger"
	rate_limit "mhlogs/internal/util/rate_limit"
)

var (
	once                 sync.Once
	logSubmissionService *LogSubmissionService
	submissionController *SubmissionController
)

func setUpDependencies() {
	once.Do(func() {
		env := config.GetEnv()

		var apiKeyValidator ApiKeyValidator
		if env.IsAPIKeyRequired {
			apiKeyValidator = api_keys.GetApiKeyService()
		}

		var rateLimiter *rate_limit.RateLimiter
		if env.LogsPerSecondLimit > 0 {
			rateLimiter = rate_limit.NewRateLimiter()
		}

		logSubmissionService = NewLogSubmissionService(
			logs_core.GetLogWriter(),
			apiKeyValidator,
			rateLimiter,
			logger.GetLogger(),
			env.IsAPIKeyRequired,
			env.LogsPerSecondLimit,
		)

		submissionController = &SubmissionController{logSubmissionService}
	})
}

func GetLogSubmissionService() *LogSubmissionService {
	setUpDependencies()
	return logSubmissionService
}

func GetSubmissionController() *SubmissionController {
	setUpDependencies()
	return submissionController
}
