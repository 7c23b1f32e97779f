package logs_core

import (
	"maps"
	"time"
)

// BuildLogEntry turns call parameters into the normalized document shape.
// It cannot fail: absent optional fields are omitted rather than written
// as nulls, and unknown categories attach no optional group at all.
func BuildLogEntry(params *LogEntryParams) map[string]any {
	document := map[string]any{
		"@timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		"message":    params.Message,
		"level":      params.level(),
		"service":    params.service(),
	}

	switch params.category() {
	case LogCategoryCommon:
		appendCommonFields(document, params.Common)
	case LogCategoryProcess:
		appendProcessFields(document, params.Process)
	}

	maps.Copy(document, params.Extra)

	return document
}

func appendCommonFields(document map[string]any, fields *CommonFields) {
	if fields == nil {
		return
	}

	putIfPresent(document, "logger", fields.Logger)
	putIfPresent(document, "environment", fields.Environment)
}

func appendProcessFields(document map[string]any, fields *ProcessFields) {
	if fields == nil {
		return
	}

	putIfPresent(document, "model", fields.Model)
	putIfPresent(document, "method", fields.Method)
	putIfPresent(document, "action", fields.Action)
	putIfPresent(document, "expected_value", fields.ExpectedValue)
	putIfPresent(document, "actual_value", fields.ActualValue)

	// An explicit result always wins over the derived one
	if fields.Result != nil {
		document["result"] = *fields.Result
		return
	}

	if fields.ExpectedValue != nil && fields.ActualValue != nil {
		if *fields.ExpectedValue == *fields.ActualValue {
			document["result"] = "success"
		} else {
			document["result"] = "failure"
		}
	}
}

func putIfPresent(document map[string]any, key string, value *string) {
	if value != nil {
		document[key] = *value
	}
}
