package logs_receiving_tests

import (
	"net/http"
	"testing"

	logs_receiving "mhlogs/internal/features/logs/receiving"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SubmitLog_WithValidEntry_ReturnsAcknowledgement(t *testing.T) {
	router, double := CreateSubmissionTestRouter(t, "mh-logs", false, nil)

	request := &logs_receiving.SubmitLogRequestDTO{
		Message:  "application started",
		Level:    "INFO",
		Service:  "checkout",
		Category: "common",
	}

	var response logs_receiving.SubmitLogResponseDTO
	MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/logs/submit",
		"",
		request,
		http.StatusCreated,
		&response,
	)

	assert.Equal(t, "mh-logs-common", response.Index)
	assert.Equal(t, "created", response.Result)
	assert.NotEmpty(t, response.DocumentID)

	requests := double.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, "application started", requests[0].Document["message"])
	assert.Equal(t, "checkout", requests[0].Document["service"])
}

func Test_SubmitLog_WithProcessFields_WritesDerivedResult(t *testing.T) {
	router, double := CreateSubmissionTestRouter(t, "mh-logs", false, nil)

	expected := "0.95"
	actual := "0.96"
	request := &logs_receiving.SubmitLogRequestDTO{
		Message:       "model validation complete",
		Category:      "process",
		Model:         strPtr("nlp-model-v1"),
		Method:        strPtr("validate"),
		ExpectedValue: &expected,
		ActualValue:   &actual,
	}

	var response logs_receiving.SubmitLogResponseDTO
	MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/logs/submit",
		"",
		request,
		http.StatusCreated,
		&response,
	)

	assert.Equal(t, "mh-logs-process", response.Index)

	requests := double.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, "failure", requests[0].Document["result"])
	assert.Equal(t, "nlp-model-v1", requests[0].Document["model"])
}

func Test_SubmitLog_WithIndexOverride_WritesToOverrideIndex(t *testing.T) {
	router, double := CreateSubmissionTestRouter(t, "mh-logs", false, nil)

	request := &logs_receiving.SubmitLogRequestDTO{
		Message: "custom destination",
		Index:   "custom-idx",
	}

	var response logs_receiving.SubmitLogResponseDTO
	MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/logs/submit",
		"",
		request,
		http.StatusCreated,
		&response,
	)

	assert.Equal(t, "custom-idx", response.Index)

	requests := double.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, "custom-idx", requests[0].Index)
}

func Test_SubmitLog_WithoutMessage_ReturnsBadRequest(t *testing.T) {
	router, double := CreateSubmissionTestRouter(t, "mh-logs", false, nil)

	resp := MakePostRequest(
		t,
		router,
		"/api/v1/logs/submit",
		"",
		map[string]any{"level": "INFO"},
		http.StatusBadRequest,
	)

	assert.Contains(t, resp.Body.String(), "Invalid request format")
	assert.Empty(t, double.recorded())
}

func Test_SubmitLog_WithUnknownCategory_ReturnsBadRequest(t *testing.T) {
	router, double := CreateSubmissionTestRouter(t, "mh-logs", false, nil)

	request := &logs_receiving.SubmitLogRequestDTO{
		Message:  "bad category",
		Category: "audit",
	}

	resp := MakePostRequest(
		t,
		router,
		"/api/v1/logs/submit",
		"",
		request,
		http.StatusBadRequest,
	)

	assert.Contains(t, resp.Body.String(), "INVALID_CATEGORY")
	assert.Empty(t, double.recorded())
}

func Test_SubmitLog_WithApiKeyRequiredAndNoKey_ReturnsUnauthorized(t *testing.T) {
	validator := &stubApiKeyValidator{validKeys: map[string]bool{"mh_valid": true}}
	router, double := CreateSubmissionTestRouter(t, "mh-logs", true, validator)

	request := &logs_receiving.SubmitLogRequestDTO{Message: "needs a key"}

	resp := MakePostRequest(
		t,
		router,
		"/api/v1/logs/submit",
		"",
		request,
		http.StatusUnauthorized,
	)

	assert.Contains(t, resp.Body.String(), "API_KEY_REQUIRED")
	assert.Empty(t, double.recorded())
}

func Test_SubmitLog_WithInvalidApiKey_ReturnsUnauthorized(t *testing.T) {
	validator := &stubApiKeyValidator{validKeys: map[string]bool{"mh_valid": true}}
	router, double := CreateSubmissionTestRouter(t, "mh-logs", true, validator)

	request := &logs_receiving.SubmitLogRequestDTO{Message: "wrong key"}

	resp := MakePostRequest(
		t,
		router,
		"/api/v1/logs/submit",
		"mh_invalid",
		request,
		http.StatusUnauthorized,
	)

	assert.Contains(t, resp.Body.String(), "API_KEY_INVALID")
	assert.Empty(t, double.recorded())
}

func Test_SubmitLog_WithValidApiKey_Accepted(t *testing.T) {
	validator := &stubApiKeyValidator{validKeys: map[string]bool{"mh_valid": true}}
	router, double := CreateSubmissionTestRouter(t, "mh-logs", true, validator)

	request := &logs_receiving.SubmitLogRequestDTO{Message: "authorized"}

	var response logs_receiving.SubmitLogResponseDTO
	MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/logs/submit",
		"mh_valid",
		request,
		http.StatusCreated,
		&response,
	)

	require.Len(t, double.recorded(), 1)
}

func Test_SubmitLogAsync_WithValidEntry_ReturnsAcceptedBeforeWrite(t *testing.T) {
	router, double := CreateSubmissionTestRouter(t, "mh-logs", false, nil)

	request := &logs_receiving.SubmitLogRequestDTO{
		Message:  "async entry",
		Category: "process",
	}

	var response logs_receiving.SubmitLogAsyncResponseDTO
	MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/logs/submit/async",
		"",
		request,
		http.StatusAccepted,
		&response,
	)

	assert.True(t, response.Dispatched)
	assert.Equal(t, "mh-logs-process", response.Index)

	requests := double.waitForRequests(t, 1)
	assert.Equal(t, "async entry", requests[0].Document["message"])
}

func Test_SubmitLogAsync_WithEmptyPrefixAndNoOverride_ReturnsServerError(t *testing.T) {
	router, double := CreateSubmissionTestRouter(t, "", false, nil)

	request := &logs_receiving.SubmitLogRequestDTO{Message: "nowhere to go"}

	MakePostRequest(
		t,
		router,
		"/api/v1/logs/submit/async",
		"",
		request,
		http.StatusInternalServerError,
	)

	assert.Empty(t, double.recorded())
}

func Test_SubmitLog_WithExtraFieldOverride_LastWriteWins(t *testing.T) {
	router, double := CreateSubmissionTestRouter(t, "mh-logs", false, nil)

	request := &logs_receiving.SubmitLogRequestDTO{
		Message: "original",
		Extra:   map[string]any{"message": "overridden"},
	}

	var response logs_receiving.SubmitLogResponseDTO
	MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/logs/submit",
		"",
		request,
		http.StatusCreated,
		&response,
	)

	requests := double.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, "overridden", requests[0].Document["message"])
}

func strPtr(value string) *string {
	return &value
}
