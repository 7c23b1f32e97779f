package logs_core

import (
	"mhlogs/internal/config"
	"mhlogs/internal/util/logger"
)

var env = config.GetEnv()

var logWriter = NewLogWriter(Config{
	Hosts:       env.OpenSearchHostList(),
	IndexPrefix: env.IndexPrefix,
	Timeout:     env.Timeout(),
}, logger.GetLogger())

func GetLogWriter() *LogWriter {
	return logWriter
}
