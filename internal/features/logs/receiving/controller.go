package logs_receiving

import (
	"errors"
	"net/http"
	"strings"

	logs_core "mhlogs/internal/features/logs/core"

	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	logSubmissionService *LogSubmissionService
}

func NewSubmissionController(logSubmissionService *LogSubmissionService) *SubmissionController {
	return &SubmissionController{logSubmissionService}
}

func (c *SubmissionController) RegisterRoutes(router gin.IRouter) {
	// Submission endpoints - no authentication middleware required
	// Authentication is handled via API keys at the service level
	logRoutes := router.Group("/logs")

	logRoutes.POST("/submit", c.SubmitLog)
	logRoutes.POST("/submit/async", c.SubmitLogAsync)
}

// SubmitLog
// @Summary Submit a log entry (blocking)
// @Description Build a normalized log document from the request and write it into OpenSearch, waiting for the acknowledgement.
// @Description Category selects which optional field group is attached: "common" (logger, environment) or "process" (model, method, action, expectedValue, actualValue, result).
// @Description For process entries without an explicit result, the result is derived by comparing expectedValue and actualValue.
// @Tags logs
// @Accept json
// @Produce json
// @Param X-API-Key header string false "API Key (required if MHLOGS_API_KEY_REQUIRED=true)"
// @Param request body SubmitLogRequestDTO true "Log entry to submit"
// @Success 201 {object} SubmitLogResponseDTO "Document indexed"
// @Failure 400 {object} map[string]string "Invalid request format or category"
// @Failure 401 {object} map[string]string "API key required or invalid"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 502 {object} map[string]string "Datastore write failed"
// @Router /logs/submit [post]
func (c *SubmissionController) SubmitLog(ctx *gin.Context) {
	var request SubmitLogRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	apiKey := ctx.GetHeader("X-API-Key")
	clientIP := c.extractClientIP(ctx)

	response, err := c.logSubmissionService.SubmitLog(&request, apiKey, clientIP)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

// SubmitLogAsync
// @Summary Submit a log entry (non-blocking)
// @Description Same contract as the blocking endpoint, but the write is dispatched through the non-blocking datastore handle and the request returns before the acknowledgement arrives.
// @Tags logs
// @Accept json
// @Produce json
// @Param X-API-Key header string false "API Key (required if MHLOGS_API_KEY_REQUIRED=true)"
// @Param request body SubmitLogRequestDTO true "Log entry to submit"
// @Success 202 {object} SubmitLogAsyncResponseDTO "Write dispatched"
// @Failure 400 {object} map[string]string "Invalid request format or category"
// @Failure 401 {object} map[string]string "API key required or invalid"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Router /logs/submit/async [post]
func (c *SubmissionController) SubmitLogAsync(ctx *gin.Context) {
	var request SubmitLogRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	apiKey := ctx.GetHeader("X-API-Key")
	clientIP := c.extractClientIP(ctx)

	response, err := c.logSubmissionService.SubmitLogAsync(&request, apiKey, clientIP)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, response)
}

func (c *SubmissionController) extractClientIP(ctx *gin.Context) string {
	// Check X-Forwarded-For header first (for proxied requests)
	forwarded := ctx.GetHeader("X-Forwarded-For")
	if forwarded != "" {
		// Take the first IP if multiple are present
		if idx := strings.Index(forwarded, ","); idx != -1 {
			return strings.TrimSpace(forwarded[:idx])
		}
		return strings.TrimSpace(forwarded)
	}

	realIP := ctx.GetHeader("X-Real-IP")
	if realIP != "" {
		return strings.TrimSpace(realIP)
	}

	return ctx.ClientIP()
}

func (c *SubmissionController) handleError(ctx *gin.Context, err error) {
	if validationErr, ok := err.(*logs_core.ValidationError); ok {
		statusCode := c.getStatusCodeForValidationError(validationErr.Code)

		if validationErr.Code == logs_core.ErrorRateLimitExceeded {
			ctx.Header("Retry-After", "60")
		}

		ctx.JSON(statusCode, gin.H{
			"error": validationErr.Message,
			"code":  validationErr.Code,
		})
		return
	}

	var configurationErr *logs_core.ConfigurationError
	if errors.As(err, &configurationErr) {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": configurationErr.Message})
		return
	}

	// Anything else is a datastore transport failure
	ctx.JSON(http.StatusBadGateway, gin.H{"error": "Failed to write log entry"})
}

func (c *SubmissionController) getStatusCodeForValidationError(errorCode string) int {
	switch errorCode {
	case logs_core.ErrorAPIKeyRequired, logs_core.ErrorAPIKeyInvalid:
		return http.StatusUnauthorized
	case logs_core.ErrorRateLimitExceeded:
		return http.StatusTooManyRequests
	case logs_core.ErrorInvalidCategory, logs_core.ErrorMessageEmpty:
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}
