package api_keys

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiKeyController struct {
	apiKeyService *ApiKeyService
}

func (c *ApiKeyController) RegisterRoutes(router gin.IRouter) {
	apiKeyRoutes := router.Group("/api-keys")

	apiKeyRoutes.POST("", c.CreateApiKey)
	apiKeyRoutes.GET("", c.GetApiKeys)
	apiKeyRoutes.DELETE("/:keyId", c.RevokeApiKey)
}

// CreateApiKey
// @Summary Create API key
// @Description Create a new submission API key. The full token is returned only once.
// @Tags api-keys
// @Accept json
// @Produce json
// @Param X-Admin-Key header string true "Admin key"
// @Param request body CreateApiKeyRequestDTO true "API key name"
// @Success 201 {object} ApiKey
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Invalid admin key"
// @Router /api-keys [post]
func (c *ApiKeyController) CreateApiKey(ctx *gin.Context) {
	var request CreateApiKeyRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	apiKey, err := c.apiKeyService.CreateApiKey(&request)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create API key"})
		return
	}

	ctx.JSON(http.StatusCreated, apiKey)
}

// GetApiKeys
// @Summary List API keys
// @Description List all submission API keys. Token hashes are never returned.
// @Tags api-keys
// @Produce json
// @Param X-Admin-Key header string true "Admin key"
// @Success 200 {object} GetApiKeysResponseDTO
// @Failure 401 {object} map[string]string "Invalid admin key"
// @Router /api-keys [get]
func (c *ApiKeyController) GetApiKeys(ctx *gin.Context) {
	response, err := c.apiKeyService.GetApiKeys()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get API keys"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// RevokeApiKey
// @Summary Revoke API key
// @Description Delete an API key and invalidate its cached validation state.
// @Tags api-keys
// @Produce json
// @Param X-Admin-Key header string true "Admin key"
// @Param keyId path string true "API key ID (UUID format)"
// @Success 204 "API key revoked"
// @Failure 400 {object} map[string]string "Invalid key ID"
// @Failure 401 {object} map[string]string "Invalid admin key"
// @Router /api-keys/{keyId} [delete]
func (c *ApiKeyController) RevokeApiKey(ctx *gin.Context) {
	keyID, err := uuid.Parse(ctx.Param("keyId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid key ID"})
		return
	}

	if err := c.apiKeyService.RevokeApiKey(keyID); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "API key not found"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
