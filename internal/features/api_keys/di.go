package api_keys

import (
	"sync"

	"mhlogs/internal/cache"
	cache_utils "mhlogs/internal/util/cache"
)

var (
	once             sync.Once
	apiKeyService    *ApiKeyService
	apiKeyController *ApiKeyController
)

func setUpDependencies() {
	once.Do(func() {
		client := cache.GetCache()

		apiKeyService = NewApiKeyService(
			NewApiKeyRepository(client),
			cache_utils.NewCacheUtil[CachedApiKey](client, "api_keys:"),
		)

		apiKeyController = &ApiKeyController{apiKeyService}
	})
}

func GetApiKeyService() *ApiKeyService {
	setUpDependencies()
	return apiKeyService
}

func GetApiKeyController() *ApiKeyController {
	setUpDependencies()
	return apiKeyController
}
