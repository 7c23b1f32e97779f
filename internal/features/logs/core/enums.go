package logs_core

type LogCategory string

const (
	LogCategoryCommon  LogCategory = "common"
	LogCategoryProcess LogCategory = "process"
)

func (c LogCategory) IsValid() bool {
	switch c {
	case LogCategoryCommon, LogCategoryProcess:
		return true
	default:
		return false
	}
}

// Tag is the lowercase form used as the index name suffix.
func (c LogCategory) Tag() string {
	return string(c)
}

// Defaults match the documents already stored in the mh-logs-* indices,
// including the service label of the system previously writing them.
const (
	DefaultLevel    = "INFO"
	DefaultService  = "python-app"
	DefaultCategory = LogCategoryCommon
)
