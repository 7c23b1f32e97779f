package logs_receiving

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	api_keys "mhlogs/internal/features/api_keys"
	logs_core "mhlogs/internal/features/logs/core"
	rate_limit "mhlogs/internal/util/rate_limit"
)

const (
	LogsBurstMultiplier = 5 // 5x base limit for burst handling

	asyncCompletionTimeout = 2 * time.Minute
)

// ApiKeyValidator is what the submission service needs from the api_keys
// feature; nil is allowed when API key auth is disabled.
type ApiKeyValidator interface {
	ValidateApiKey(token string) (*api_keys.ApiKeyValidationResult, error)
}

type LogSubmissionService struct {
	logWriter       *logs_core.LogWriter
	apiKeyValidator ApiKeyValidator
	rateLimiter     *rate_limit.RateLimiter
	logger          *slog.Logger

	isAPIKeyRequired   bool
	logsPerSecondLimit int
}

func NewLogSubmissionService(
	logWriter *logs_core.LogWriter,
	apiKeyValidator ApiKeyValidator,
	rateLimiter *rate_limit.RateLimiter,
	logger *slog.Logger,
	isAPIKeyRequired bool,
	logsPerSecondLimit int,
) *LogSubmissionService {
	return &LogSubmissionService{
		logWriter:          logWriter,
		apiKeyValidator:    apiKeyValidator,
		rateLimiter:        rateLimiter,
		logger:             logger,
		isAPIKeyRequired:   isAPIKeyRequired,
		logsPerSecondLimit: logsPerSecondLimit,
	}
}

// SubmitLog validates the request and writes the entry through the
// blocking path, returning the datastore acknowledgement.
func (s *LogSubmissionService) SubmitLog(
	request *SubmitLogRequestDTO,
	apiKey, clientIP string,
) (*SubmitLogResponseDTO, error) {
	if err := s.validateRequest(request); err != nil {
		return nil, err
	}

	if err := s.authorize(apiKey); err != nil {
		return nil, err
	}

	if err := s.checkRateLimit(apiKey, clientIP); err != nil {
		return nil, err
	}

	ack, err := s.logWriter.Submit(request.toParams(), request.Index)
	if err != nil {
		return nil, err
	}

	return &SubmitLogResponseDTO{
		Index:      ack.Index,
		DocumentID: ack.DocumentID,
		Result:     ack.Result,
	}, nil
}

// SubmitLogAsync dispatches the entry through the non-blocking path and
// returns before the datastore acknowledges. A failed async write is
// logged here; the submitter has already been answered.
func (s *LogSubmissionService) SubmitLogAsync(
	request *SubmitLogRequestDTO,
	apiKey, clientIP string,
) (*SubmitLogAsyncResponseDTO, error) {
	if err := s.validateRequest(request); err != nil {
		return nil, err
	}

	if err := s.authorize(apiKey); err != nil {
		return nil, err
	}

	if err := s.checkRateLimit(apiKey, clientIP); err != nil {
		return nil, err
	}

	category := logs_core.LogCategory(request.Category)
	if category == "" {
		category = logs_core.DefaultCategory
	}

	targetIndex, err := s.logWriter.ResolveTargetIndex(category, request.Index)
	if err != nil {
		return nil, err
	}

	future, err := s.logWriter.SubmitAsync(request.toParams(), request.Index)
	if err != nil {
		return nil, err
	}

	go s.reportAsyncOutcome(future, targetIndex)

	return &SubmitLogAsyncResponseDTO{
		Index:      targetIndex,
		Dispatched: true,
	}, nil
}

func (s *LogSubmissionService) reportAsyncOutcome(future *logs_core.IndexFuture, targetIndex string) {
	ctx, cancel := context.WithTimeout(context.Background(), asyncCompletionTimeout)
	defer cancel()

	ack, err := future.Wait(ctx)
	if err != nil {
		s.logger.Error("async log write failed",
			slog.String("index", targetIndex),
			slog.String("error", err.Error()))
		return
	}

	s.logger.Debug("async log write acknowledged",
		slog.String("index", ack.Index),
		slog.String("documentId", ack.DocumentID))
}

func (s *LogSubmissionService) validateRequest(request *SubmitLogRequestDTO) error {
	if strings.TrimSpace(request.Message) == "" {
		return &logs_core.ValidationError{
			Code:    logs_core.ErrorMessageEmpty,
			Message: "message cannot be empty",
			Field:   "message",
		}
	}

	if request.Category != "" && !logs_core.LogCategory(request.Category).IsValid() {
		return &logs_core.ValidationError{
			Code:    logs_core.ErrorInvalidCategory,
			Message: fmt.Sprintf("unknown log category: %s", request.Category),
			Field:   "category",
		}
	}

	return nil
}

func (s *LogSubmissionService) authorize(apiKey string) error {
	if !s.isAPIKeyRequired {
		return nil
	}

	if apiKey == "" {
		return &logs_core.ValidationError{
			Code:    logs_core.ErrorAPIKeyRequired,
			Message: "API key required",
		}
	}

	result, err := s.apiKeyValidator.ValidateApiKey(apiKey)
	if err != nil {
		return fmt.Errorf("failed to validate API key: %w", err)
	}

	if !result.IsValid {
		return &logs_core.ValidationError{
			Code:    logs_core.ErrorAPIKeyInvalid,
			Message: "invalid API key",
		}
	}

	return nil
}

func (s *LogSubmissionService) checkRateLimit(apiKey, clientIP string) error {
	// A limit of 0 means unlimited
	if s.logsPerSecondLimit == 0 || s.rateLimiter == nil {
		return nil
	}

	submitterKey := clientIP
	if apiKey != "" {
		submitterKey = api_keys.HashToken(apiKey)
	}

	burstLimit := s.logsPerSecondLimit * LogsBurstMultiplier

	result, err := s.rateLimiter.CheckRateLimit(submitterKey, s.logsPerSecondLimit, burstLimit)
	if err != nil {
		return fmt.Errorf("rate limit check failed: %w", err)
	}

	if !result.Allowed {
		return &logs_core.ValidationError{
			Code:    logs_core.ErrorRateLimitExceeded,
			Message: fmt.Sprintf("logs per second limit exceeded, retry after %d seconds", result.RetryAfterSec),
		}
	}

	return nil
}
