package logs_core

// LogEntryParams describes one log entry before it becomes a document.
// Exactly one of the optional field groups is read, selected by Category;
// the other group is ignored even when populated.
type LogEntryParams struct {
	Message  string
	Level    string
	Service  string
	Category LogCategory

	Common  *CommonFields
	Process *ProcessFields

	// Extra is merged into the document last, key by key. It can overwrite
	// any prior field, including @timestamp and message.
	Extra map[string]any
}

// CommonFields are attached for LogCategoryCommon entries.
// Nil pointers mean the field is omitted from the document.
type CommonFields struct {
	Logger      *string
	Environment *string
}

// ProcessFields are attached for LogCategoryProcess entries.
// When Result is nil and both ExpectedValue and ActualValue are set,
// the result is derived from their comparison.
type ProcessFields struct {
	Model         *string
	Method        *string
	Action        *string
	ExpectedValue *string
	ActualValue   *string
	Result        *string
}

func (p *LogEntryParams) category() LogCategory {
	if p.Category == "" {
		return DefaultCategory
	}
	return p.Category
}

func (p *LogEntryParams) level() string {
	if p.Level == "" {
		return DefaultLevel
	}
	return p.Level
}

func (p *LogEntryParams) service() string {
	if p.Service == "" {
		return DefaultService
	}
	return p.Service
}
