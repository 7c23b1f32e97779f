package logs_core

import (
	"errors"
	"log/slog"
	"time"
)

const (
	DefaultHost        = "http://localhost:9200"
	DefaultIndexPrefix = "mh-logs"
	DefaultTimeout     = 30 * time.Second
)

// Config describes a writer's connection to OpenSearch.
// Zero values fall back to the package defaults.
type Config struct {
	Hosts       []string
	IndexPrefix string
	Timeout     time.Duration
}

// LogWriter owns two handles to the same OpenSearch cluster: a blocking
// one for Submit and a non-blocking one for SubmitAsync. Both paths build
// the document the same way and share nothing mutable beyond this struct's
// read-only configuration.
type LogWriter struct {
	defaultIndexPrefix string
	repository         *OpenSearchRepository
	asyncRepository    *AsyncOpenSearchRepository
}

func NewLogWriter(config Config, logger *slog.Logger) *LogWriter {
	hosts := config.Hosts
	if len(hosts) == 0 {
		hosts = []string{DefaultHost}
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &LogWriter{
		defaultIndexPrefix: config.IndexPrefix,
		repository:         NewOpenSearchRepository(hosts, timeout, logger),
		asyncRepository:    NewAsyncOpenSearchRepository(hosts, timeout, logger),
	}
}

// Submit builds the document and writes it through the blocking handle.
// The acknowledgement is returned verbatim.
func (w *LogWriter) Submit(params *LogEntryParams, indexOverride string) (*IndexAck, error) {
	targetIndex, err := w.ResolveTargetIndex(params.category(), indexOverride)
	if err != nil {
		return nil, err
	}

	return w.repository.IndexDocument(targetIndex, BuildLogEntry(params))
}

// SubmitAsync builds the document and dispatches it through the
// non-blocking handle. Configuration problems are reported synchronously,
// before anything is dispatched; transport failures arrive via the future.
func (w *LogWriter) SubmitAsync(params *LogEntryParams, indexOverride string) (*IndexFuture, error) {
	targetIndex, err := w.ResolveTargetIndex(params.category(), indexOverride)
	if err != nil {
		return nil, err
	}

	return w.asyncRepository.IndexDocument(targetIndex, BuildLogEntry(params)), nil
}

func (w *LogWriter) TestConnection() error {
	return w.repository.TestConnection()
}

// Close releases both handles: the blocking one first, then the
// non-blocking one. Both are attempted even if the first fails.
func (w *LogWriter) Close() error {
	return errors.Join(
		w.repository.Close(),
		w.asyncRepository.Close(),
	)
}

// ResolveTargetIndex applies the destination naming policy: the override
// when given, otherwise "{prefix}-{category}".
func (w *LogWriter) ResolveTargetIndex(category LogCategory, indexOverride string) (string, error) {
	if indexOverride != "" {
		return indexOverride, nil
	}

	if w.defaultIndexPrefix == "" {
		return "", &ConfigurationError{
			Message: "no index override given and no default index prefix configured",
		}
	}

	return w.defaultIndexPrefix + "-" + category.Tag(), nil
}
