package api_keys

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	cache_utils "mhlogs/internal/util/cache"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const (
	TokenPrefix = "mh_"
	TokenLength = 32
)

type ApiKeyService struct {
	apiKeyRepository *ApiKeyRepository

	apiKeyCacheUtil *cache_utils.CacheUtil[CachedApiKey]
	singleflight    singleflight.Group // Prevents thundering herd on repository scans
}

func NewApiKeyService(
	apiKeyRepository *ApiKeyRepository,
	apiKeyCacheUtil *cache_utils.CacheUtil[CachedApiKey],
) *ApiKeyService {
	return &ApiKeyService{
		apiKeyRepository: apiKeyRepository,
		apiKeyCacheUtil:  apiKeyCacheUtil,
	}
}

func (s *ApiKeyService) CreateApiKey(request *CreateApiKeyRequestDTO) (*ApiKey, error) {
	fullToken, tokenPrefix, tokenHash, err := s.generateSecureToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	apiKey := &ApiKey{
		ID:          uuid.New(),
		Name:        request.Name,
		TokenPrefix: tokenPrefix,
		TokenHash:   tokenHash,
		Status:      ApiKeyStatusActive,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.apiKeyRepository.SaveApiKey(apiKey); err != nil {
		return nil, fmt.Errorf("failed to create API key: %w", err)
	}

	// Pre-warm cache with new API key for immediate availability
	cachedKey := &CachedApiKey{
		ID:     apiKey.ID,
		Status: apiKey.Status,
	}
	s.apiKeyCacheUtil.Set(tokenHash, cachedKey)

	// The full token is only returned once
	apiKey.Token = fullToken

	return apiKey, nil
}

func (s *ApiKeyService) GetApiKeys() (*GetApiKeysResponseDTO, error) {
	apiKeys, err := s.apiKeyRepository.GetAllApiKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to get API keys: %w", err)
	}

	return &GetApiKeysResponseDTO{ApiKeys: apiKeys}, nil
}

func (s *ApiKeyService) RevokeApiKey(keyID uuid.UUID) error {
	apiKeys, err := s.apiKeyRepository.GetAllApiKeys()
	if err != nil {
		return fmt.Errorf("failed to load API keys: %w", err)
	}

	for _, apiKey := range apiKeys {
		if apiKey.ID == keyID {
			if err := s.apiKeyRepository.DeleteApiKey(keyID); err != nil {
				return err
			}

			s.apiKeyCacheUtil.Invalidate(apiKey.TokenHash)
			return nil
		}
	}

	return fmt.Errorf("API key not found: %s", keyID)
}

func (s *ApiKeyService) ValidateApiKey(token string) (*ApiKeyValidationResult, error) {
	tokenHash := HashToken(token)

	if cached := s.apiKeyCacheUtil.Get(tokenHash); cached != nil {
		return &ApiKeyValidationResult{
			IsValid: cached.Status == ApiKeyStatusActive,
			KeyID:   cached.ID,
		}, nil
	}

	resolved, err, _ := s.singleflight.Do(tokenHash, func() (any, error) {
		apiKey, err := s.apiKeyRepository.GetApiKeyByTokenHash(tokenHash)
		if err != nil {
			return nil, err
		}

		cached := &CachedApiKey{Status: ApiKeyStatusNotFound}
		if apiKey != nil {
			cached.ID = apiKey.ID
			cached.Status = apiKey.Status
		}

		s.apiKeyCacheUtil.Set(tokenHash, cached)
		return cached, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to validate API key: %w", err)
	}

	cached := resolved.(*CachedApiKey)
	return &ApiKeyValidationResult{
		IsValid: cached.Status == ApiKeyStatusActive,
		KeyID:   cached.ID,
	}, nil
}

func (s *ApiKeyService) generateSecureToken() (fullToken, tokenPrefix, tokenHash string, err error) {
	randomBytes := make([]byte, TokenLength)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", "", "", err
	}

	fullToken = TokenPrefix + hex.EncodeToString(randomBytes)
	tokenPrefix = fullToken[:len(TokenPrefix)+8]
	tokenHash = HashToken(fullToken)

	return fullToken, tokenPrefix, tokenHash, nil
}

func HashToken(token string) string {
	digest := sha256.Sum256([]byte(token))
	return hex.EncodeToString(digest[:])
}
