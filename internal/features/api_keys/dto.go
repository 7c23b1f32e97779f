package api_keys

import "github.com/google/uuid"

type CreateApiKeyRequestDTO struct {
	Name string `json:"name" binding:"required,max=100"`
}

type GetApiKeysResponseDTO struct {
	ApiKeys []*ApiKey `json:"apiKeys"`
}

type ApiKeyValidationResult struct {
	IsValid bool      `json:"isValid"`
	KeyID   uuid.UUID `json:"keyId,omitempty"`
}

// CachedApiKey is the subset of ApiKey kept in the validation cache.
type CachedApiKey struct {
	ID     uuid.UUID    `json:"id"`
	Status ApiKeyStatus `json:"status"`
}
