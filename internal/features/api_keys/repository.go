package api_keys

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/valkey-io/valkey-go"
)

const (
	apiKeysHashKey    = "mhlogs:api_keys"
	repositoryTimeout = 5 * time.Second
)

// ApiKeyRepository stores API keys in a single Valkey hash keyed by key ID.
// The key population is small (operator-managed), so lookups by token hash
// scan the hash; the service layer caches validation results on top.
type ApiKeyRepository struct {
	client valkey.Client
}

func NewApiKeyRepository(client valkey.Client) *ApiKeyRepository {
	return &ApiKeyRepository{client: client}
}

func (r *ApiKeyRepository) SaveApiKey(apiKey *ApiKey) error {
	ctx, cancel := context.WithTimeout(context.Background(), repositoryTimeout)
	defer cancel()

	data, err := json.Marshal(apiKey)
	if err != nil {
		return fmt.Errorf("failed to marshal API key: %w", err)
	}

	result := r.client.Do(ctx, r.client.B().Hset().
		Key(apiKeysHashKey).
		FieldValue().
		FieldValue(apiKey.ID.String(), string(data)).
		Build())
	if result.Error() != nil {
		return fmt.Errorf("failed to save API key: %w", result.Error())
	}

	return nil
}

func (r *ApiKeyRepository) GetAllApiKeys() ([]*ApiKey, error) {
	ctx, cancel := context.WithTimeout(context.Background(), repositoryTimeout)
	defer cancel()

	result := r.client.Do(ctx, r.client.B().Hgetall().Key(apiKeysHashKey).Build())
	if result.Error() != nil {
		return nil, fmt.Errorf("failed to load API keys: %w", result.Error())
	}

	entries, err := result.AsStrMap()
	if err != nil {
		return nil, fmt.Errorf("failed to parse API keys: %w", err)
	}

	apiKeys := make([]*ApiKey, 0, len(entries))
	for _, entry := range entries {
		var apiKey ApiKey
		if err := json.Unmarshal([]byte(entry), &apiKey); err != nil {
			return nil, fmt.Errorf("failed to unmarshal API key: %w", err)
		}

		apiKeys = append(apiKeys, &apiKey)
	}

	return apiKeys, nil
}

func (r *ApiKeyRepository) GetApiKeyByTokenHash(tokenHash string) (*ApiKey, error) {
	apiKeys, err := r.GetAllApiKeys()
	if err != nil {
		return nil, err
	}

	for _, apiKey := range apiKeys {
		if apiKey.TokenHash == tokenHash {
			return apiKey, nil
		}
	}

	return nil, nil
}

func (r *ApiKeyRepository) DeleteApiKey(keyID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(context.Background(), repositoryTimeout)
	defer cancel()

	result := r.client.Do(ctx, r.client.B().Hdel().
		Key(apiKeysHashKey).
		Field(keyID.String()).
		Build())
	if result.Error() != nil {
		return fmt.Errorf("failed to delete API key: %w", result.Error())
	}

	return nil
}
