package logs_core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(value string) *string {
	return &value
}

func Test_BuildLogEntry_WithOnlyMessage_ContainsMandatoryFields(t *testing.T) {
	document := BuildLogEntry(&LogEntryParams{Message: "application started"})

	assert.Equal(t, "application started", document["message"])
	assert.Equal(t, "INFO", document["level"])
	assert.Equal(t, DefaultService, document["service"])

	timestamp, ok := document["@timestamp"].(string)
	assert.True(t, ok)
	assert.NotEmpty(t, timestamp)

	parsed, err := time.Parse(time.RFC3339Nano, timestamp)
	assert.NoError(t, err)
	assert.Equal(t, time.UTC, parsed.Location())
}

func Test_BuildLogEntry_WithSuppliedLevelAndService_KeepsThemVerbatim(t *testing.T) {
	document := BuildLogEntry(&LogEntryParams{
		Message: "deploy finished",
		Level:   "ERROR",
		Service: "deploy-bot",
	})

	assert.Equal(t, "ERROR", document["level"])
	assert.Equal(t, "deploy-bot", document["service"])
}

func Test_BuildLogEntry_WithCommonCategory_AttachesCommonFields(t *testing.T) {
	document := BuildLogEntry(&LogEntryParams{
		Message:  "startup complete",
		Category: LogCategoryCommon,
		Common: &CommonFields{
			Logger:      strPtr("main"),
			Environment: strPtr("production"),
		},
	})

	assert.Equal(t, "main", document["logger"])
	assert.Equal(t, "production", document["environment"])
}

func Test_BuildLogEntry_WithCommonCategory_DropsProcessFields(t *testing.T) {
	document := BuildLogEntry(&LogEntryParams{
		Message:  "category isolation",
		Category: LogCategoryCommon,
		Process: &ProcessFields{
			Model: strPtr("nlp-model-v1"),
		},
	})

	assert.NotContains(t, document, "model")
	assert.NotContains(t, document, "result")
}

func Test_BuildLogEntry_WithProcessCategory_DropsCommonFields(t *testing.T) {
	document := BuildLogEntry(&LogEntryParams{
		Message:  "category isolation",
		Category: LogCategoryProcess,
		Common: &CommonFields{
			Logger: strPtr("main"),
		},
		Process: &ProcessFields{
			Model: strPtr("nlp-model-v1"),
		},
	})

	assert.NotContains(t, document, "logger")
	assert.NotContains(t, document, "environment")
	assert.Equal(t, "nlp-model-v1", document["model"])
}

func Test_BuildLogEntry_WithMismatchedValues_DerivesFailureResult(t *testing.T) {
	document := BuildLogEntry(&LogEntryParams{
		Message:  "model validation",
		Category: LogCategoryProcess,
		Process: &ProcessFields{
			ExpectedValue: strPtr("0.95"),
			ActualValue:   strPtr("0.96"),
		},
	})

	assert.Equal(t, "failure", document["result"])
}

func Test_BuildLogEntry_WithEqualValues_DerivesSuccessResult(t *testing.T) {
	document := BuildLogEntry(&LogEntryParams{
		Message:  "model validation",
		Category: LogCategoryProcess,
		Process: &ProcessFields{
			ExpectedValue: strPtr("0.95"),
			ActualValue:   strPtr("0.95"),
		},
	})

	assert.Equal(t, "success", document["result"])
}

func Test_BuildLogEntry_WithExplicitResult_OverridesDerivation(t *testing.T) {
	document := BuildLogEntry(&LogEntryParams{
		Message:  "model validation",
		Category: LogCategoryProcess,
		Process: &ProcessFields{
			ExpectedValue: strPtr("0.95"),
			ActualValue:   strPtr("0.95"),
			Result:        strPtr("pending"),
		},
	})

	assert.Equal(t, "pending", document["result"])
}

func Test_BuildLogEntry_WithPartialProcessFields_OmitsAbsentKeys(t *testing.T) {
	document := BuildLogEntry(&LogEntryParams{
		Message:  "partial fields",
		Category: LogCategoryProcess,
		Process: &ProcessFields{
			Model:       strPtr("nlp-model-v1"),
			ActualValue: strPtr("0.96"),
		},
	})

	assert.Equal(t, "nlp-model-v1", document["model"])
	assert.Equal(t, "0.96", document["actual_value"])
	assert.NotContains(t, document, "method")
	assert.NotContains(t, document, "action")
	assert.NotContains(t, document, "expected_value")
	assert.NotContains(t, document, "result")
}

func Test_BuildLogEntry_WithExtraFields_MergesThemIntoDocument(t *testing.T) {
	document := BuildLogEntry(&LogEntryParams{
		Message: "custom fields",
		Extra: map[string]any{
			"user_id":     123,
			"duration_ms": 245,
		},
	})

	assert.Equal(t, 123, document["user_id"])
	assert.Equal(t, 245, document["duration_ms"])
}

func Test_BuildLogEntry_WithExtraFields_LastWriteWinsOverReservedKeys(t *testing.T) {
	document := BuildLogEntry(&LogEntryParams{
		Message: "original",
		Extra: map[string]any{
			"message": "overridden",
		},
	})

	assert.Equal(t, "overridden", document["message"])
}

func Test_BuildLogEntry_WithUnknownCategory_AttachesNoOptionalGroup(t *testing.T) {
	document := BuildLogEntry(&LogEntryParams{
		Message:  "unknown category",
		Category: LogCategory("audit"),
		Common: &CommonFields{
			Logger: strPtr("main"),
		},
		Process: &ProcessFields{
			Model: strPtr("nlp-model-v1"),
		},
	})

	assert.NotContains(t, document, "logger")
	assert.NotContains(t, document, "model")
	assert.Equal(t, "unknown category", document["message"])
}
