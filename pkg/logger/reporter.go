package logger

type ReportKind string

const (
	ReportError   ReportKind = "ERROR"
	ReportWarning ReportKind = "WARNING"
)

// Reporter is the sink for failed or anomalous transaction records.
// The context string identifies the transaction type and the raw record.
type Reporter interface {
	Report(kind ReportKind, context string, message string)
}

type logReporter struct {
	logger Logger
}

func NewReporter(logger Logger) Reporter {
	return &logReporter{logger: logger}
}

func (r *logReporter) Report(kind ReportKind, context string, message string) {
	fields := map[string]interface{}{"context": context}

	switch kind {
	case ReportWarning:
		r.logger.Warn(message, fields)
	default:
		r.logger.Error(message, fields)
	}
}
