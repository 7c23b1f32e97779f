package api_keys

import (
	"time"

	"github.com/google/uuid"
)

type ApiKey struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	TokenPrefix string       `json:"tokenPrefix"`
	TokenHash   string       `json:"-"` // Never expose in JSON
	Status      ApiKeyStatus `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`

	Token string `json:"token,omitempty"` // Temporary field only populated during creation
}
