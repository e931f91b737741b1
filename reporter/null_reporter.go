package reporter

type NullReporter struct{}

func (*NullReporter) ReportMessageWithContext(string, Context) error {
	return nil
}

func (*NullReporter) ReportExceptionWithContext(any, Context) error {
	return nil
}
