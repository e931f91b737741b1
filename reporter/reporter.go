// Package reporter lets an external tool be told about responses the client could not make sense of.
package reporter

//go:generate mockgen -destination mock_reporter/reporter.go . Reporter

type Context = map[string]any

// Reporter represents an external reporting tool that receives unexpected server behaviour.
type Reporter interface {
	ReportMessageWithContext(string, Context) error
	ReportExceptionWithContext(any, Context) error
}
