package logs_core

import (
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
)

// AsyncOpenSearchRepository is the non-blocking datastore handle. Writes
// return immediately with a future; failures travel through the future,
// never through a side channel.
type AsyncOpenSearchRepository struct {
	client *http.Client
	hosts  []string
	next   atomic.Uint32
	logger *slog.Logger
}

func NewAsyncOpenSearchRepository(
	hosts []string,
	timeout time.Duration,
	logger *slog.Logger,
) *AsyncOpenSearchRepository {
	return &AsyncOpenSearchRepository{
		client: newOpenSearchHTTPClient(timeout),
		hosts:  hosts,
		logger: logger,
	}
}

func (repository *AsyncOpenSearchRepository) IndexDocument(
	indexName string,
	document map[string]any,
) *IndexFuture {
	future := newIndexFuture()
	baseURL := repository.nextHost()

	go func() {
		ack, err := indexDocument(repository.client, baseURL, indexName, document, repository.logger)
		future.complete(ack, err)
	}()

	return future
}

func (repository *AsyncOpenSearchRepository) TestConnection() error {
	return testOpenSearchConnection(repository.client, repository.nextHost(), repository.logger)
}

func (repository *AsyncOpenSearchRepository) Close() error {
	repository.client.CloseIdleConnections()
	return nil
}

func (repository *AsyncOpenSearchRepository) nextHost() string {
	position := repository.next.Add(1) - 1
	return repository.hosts[int(position)%len(repository.hosts)]
}
