package logs_core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// OpenSearchRepository is the blocking datastore handle. It owns its own
// HTTP client; a writer holds one of these next to an async counterpart
// and never shares clients between them.
type OpenSearchRepository struct {
	client *http.Client
	hosts  []string
	next   atomic.Uint32
	logger *slog.Logger
}

func NewOpenSearchRepository(hosts []string, timeout time.Duration, logger *slog.Logger) *OpenSearchRepository {
	return &OpenSearchRepository{
		client: newOpenSearchHTTPClient(timeout),
		hosts:  hosts,
		logger: logger,
	}
}

// IndexDocument writes a single document into the named index and returns
// the acknowledgement as-is. No retry, no backoff: a failed write is the
// caller's to deal with.
func (repository *OpenSearchRepository) IndexDocument(
	indexName string,
	document map[string]any,
) (*IndexAck, error) {
	return indexDocument(repository.client, repository.nextHost(), indexName, document, repository.logger)
}

func (repository *OpenSearchRepository) TestConnection() error {
	return testOpenSearchConnection(repository.client, repository.nextHost(), repository.logger)
}

func (repository *OpenSearchRepository) Close() error {
	repository.client.CloseIdleConnections()
	return nil
}

func (repository *OpenSearchRepository) nextHost() string {
	position := repository.next.Add(1) - 1
	return repository.hosts[int(position)%len(repository.hosts)]
}

func newOpenSearchHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,              // Total idle connections across all hosts
			MaxIdleConnsPerHost: 10,               // Idle connections per host
			MaxConnsPerHost:     50,               // Max connections per host
			IdleConnTimeout:     90 * time.Second, // How long idle connections stay open
			DisableKeepAlives:   false,            // Enable connection reuse
			ForceAttemptHTTP2:   false,            // Stick to HTTP/1.1 for OpenSearch
		},
	}
}

func indexDocument(
	client *http.Client,
	baseURL string,
	indexName string,
	document map[string]any,
	logger *slog.Logger,
) (*IndexAck, error) {
	documentBytes, err := json.Marshal(document)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	documentID := uuid.New().String()
	indexEndpoint := baseURL + "/" + indexName + "/_doc/" + documentID

	indexRequest, err := http.NewRequest("PUT", indexEndpoint, bytes.NewReader(documentBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create index request: %w", err)
	}
	indexRequest.Header.Set("Content-Type", "application/json")

	indexResponse, err := client.Do(indexRequest)
	if err != nil {
		return nil, fmt.Errorf("failed to send document to OpenSearch: %w", err)
	}

	defer func() {
		if closeErr := indexResponse.Body.Close(); closeErr != nil {
			logger.Error("failed to close index response body", "error", closeErr)
		}
	}()

	responseBody, err := io.ReadAll(indexResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read index response body: %w", err)
	}

	if indexResponse.StatusCode < 200 || indexResponse.StatusCode >= 300 {
		return nil, fmt.Errorf(
			"OpenSearch index returned status %d: %s",
			indexResponse.StatusCode,
			string(responseBody),
		)
	}

	var indexResponseData openSearchIndexResponse
	if err := json.Unmarshal(responseBody, &indexResponseData); err != nil {
		return nil, fmt.Errorf("failed to unmarshal index response: %w", err)
	}

	return &IndexAck{
		Index:      indexResponseData.Index,
		DocumentID: indexResponseData.ID,
		Result:     indexResponseData.Result,
		StatusCode: indexResponse.StatusCode,
		Raw:        json.RawMessage(responseBody),
	}, nil
}

func testOpenSearchConnection(client *http.Client, baseURL string, logger *slog.Logger) error {
	healthEndpoint := baseURL + "/_cluster/health"
	healthRequest, err := http.NewRequest("GET", healthEndpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create health check request: %w", err)
	}

	healthResponse, err := client.Do(healthRequest)
	if err != nil {
		return fmt.Errorf("failed to connect to OpenSearch: %w", err)
	}
	defer func() {
		if closeErr := healthResponse.Body.Close(); closeErr != nil {
			logger.Error("failed to close health check response body", "error", closeErr)
		}
	}()

	if healthResponse.StatusCode < 200 || healthResponse.StatusCode >= 300 {
		responseBody, err := io.ReadAll(healthResponse.Body)
		if err != nil {
			return fmt.Errorf(
				"OpenSearch health check returned status %d and failed to read response body: %w",
				healthResponse.StatusCode,
				err,
			)
		}
		return fmt.Errorf(
			"OpenSearch health check returned status %d: %s",
			healthResponse.StatusCode,
			string(responseBody),
		)
	}

	return nil
}
