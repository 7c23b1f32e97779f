package logs_receiving_tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	api_keys "mhlogs/internal/features/api_keys"
	logs_core "mhlogs/internal/features/logs/core"
	logs_receiving "mhlogs/internal/features/logs/receiving"
	"mhlogs/internal/util/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// openSearchDouble is a recording stand-in for the OpenSearch cluster.
type openSearchDouble struct {
	mu       sync.Mutex
	requests []recordedIndexRequest
}

type recordedIndexRequest struct {
	Index    string
	Document map[string]any
}

func (d *openSearchDouble) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/"), "/")
		if len(parts) != 3 || parts[1] != "_doc" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var document map[string]any
		if err := json.NewDecoder(r.Body).Decode(&document); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		d.mu.Lock()
		d.requests = append(d.requests, recordedIndexRequest{Index: parts[0], Document: document})
		d.mu.Unlock()

		w.WriteHeader(http.StatusCreated)
		response := map[string]any{"_index": parts[0], "_id": parts[2], "result": "created"}
		_ = json.NewEncoder(w).Encode(response)
	}
}

func (d *openSearchDouble) recorded() []recordedIndexRequest {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]recordedIndexRequest{}, d.requests...)
}

// waitForRequests polls until the double has received count writes. Needed
// for the async path, which acknowledges before the write lands.
func (d *openSearchDouble) waitForRequests(t *testing.T, count int) []recordedIndexRequest {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		requests := d.recorded()
		if len(requests) >= count {
			return requests
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Fatalf("expected %d datastore writes, got %d", count, len(d.recorded()))
	return nil
}

type stubApiKeyValidator struct {
	validKeys map[string]bool
}

func (v *stubApiKeyValidator) ValidateApiKey(token string) (*api_keys.ApiKeyValidationResult, error) {
	return &api_keys.ApiKeyValidationResult{IsValid: v.validKeys[token]}, nil
}

func CreateSubmissionTestRouter(
	t *testing.T,
	indexPrefix string,
	apiKeyRequired bool,
	validator logs_receiving.ApiKeyValidator,
) (*gin.Engine, *openSearchDouble) {
	t.Helper()

	double := &openSearchDouble{}
	server := httptest.NewServer(double.handler())
	t.Cleanup(server.Close)

	writer := logs_core.NewLogWriter(logs_core.Config{
		Hosts:       []string{server.URL},
		IndexPrefix: indexPrefix,
		Timeout:     5 * time.Second,
	}, logger.GetLogger())
	t.Cleanup(func() { _ = writer.Close() })

	service := logs_receiving.NewLogSubmissionService(
		writer,
		validator,
		nil, // rate limiting disabled in tests
		logger.GetLogger(),
		apiKeyRequired,
		0,
	)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	logs_receiving.NewSubmissionController(service).RegisterRoutes(v1)

	return router, double
}

func MakePostRequest(
	t *testing.T,
	router *gin.Engine,
	path string,
	apiKey string,
	body any,
	expectedStatus int,
) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	request.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		request.Header.Set("X-API-Key", apiKey)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, expectedStatus, recorder.Code, "unexpected status: %s", recorder.Body.String())

	return recorder
}

func MakePostRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	path string,
	apiKey string,
	body any,
	expectedStatus int,
	response any,
) {
	t.Helper()

	recorder := MakePostRequest(t, router, path, apiKey, body, expectedStatus)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), response))
}
