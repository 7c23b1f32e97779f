package logs_receiving

import (
	logs_core "mhlogs/internal/features/logs/core"
)

// SubmitLogRequestDTO mirrors the builder parameters as one flat payload.
// Category decides which optional field group is read; fields belonging to
// the other group are ignored.
type SubmitLogRequestDTO struct {
	Message  string `json:"message"            binding:"required,max=10000"`
	Level    string `json:"level,omitempty"`
	Service  string `json:"service,omitempty"`
	Category string `json:"category,omitempty"`

	// Overrides the default "{prefix}-{category}" target index
	Index string `json:"index,omitempty"`

	// Common fields
	Logger      *string `json:"logger,omitempty"`
	Environment *string `json:"environment,omitempty"`

	// Process fields
	Model         *string `json:"model,omitempty"`
	Method        *string `json:"method,omitempty"`
	Action        *string `json:"action,omitempty"`
	ExpectedValue *string `json:"expectedValue,omitempty"`
	ActualValue   *string `json:"actualValue,omitempty"`
	Result        *string `json:"result,omitempty"`

	Extra map[string]any `json:"extra,omitempty"`
}

type SubmitLogResponseDTO struct {
	Index      string `json:"index"`
	DocumentID string `json:"documentId"`
	Result     string `json:"result"`
}

type SubmitLogAsyncResponseDTO struct {
	Index      string `json:"index"`
	Dispatched bool   `json:"dispatched"`
}

func (r *SubmitLogRequestDTO) toParams() *logs_core.LogEntryParams {
	return &logs_core.LogEntryParams{
		Message:  r.Message,
		Level:    r.Level,
		Service:  r.Service,
		Category: logs_core.LogCategory(r.Category),
		Common: &logs_core.CommonFields{
			Logger:      r.Logger,
			Environment: r.Environment,
		},
		Process: &logs_core.ProcessFields{
			Model:         r.Model,
			Method:        r.Method,
			Action:        r.Action,
			ExpectedValue: r.ExpectedValue,
			ActualValue:   r.ActualValue,
			Result:        r.Result,
		},
		Extra: r.Extra,
	}
}
