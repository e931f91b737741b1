package extract

import (
	"github.com/sirupsen/logrus"
)

// Option represents a type that can be used to configure an extractor.
type Option interface {
	config(*config)
}

type config struct {
	log                logrus.FieldLogger
	ignoreStrayFetches bool
}

func newConfig(opts []Option) *config {
	cfg := &config{
		log: logrus.WithField("pkg", "extract"),
	}

	for _, opt := range opts {
		opt.config(cfg)
	}

	return cfg
}

// WithLogger sets the logger extractors report rerouted and unexpected records to.
func WithLogger(log logrus.FieldLogger) Option {
	return &withLogger{log: log}
}

type withLogger struct {
	log logrus.FieldLogger
}

func (opt withLogger) config(cfg *config) {
	cfg.log = opt.log
}

// WithStrayFetchesIgnored makes the listing and expunge extractors skip FETCH responses
// they do not expect instead of reporting them as unexpected.
// Older servers push flag changes this way while a LIST is in progress.
// It has no effect on Fetches, which always takes FETCH responses as its items.
func WithStrayFetchesIgnored() Option {
	return &withStrayFetchesIgnored{}
}

type withStrayFetchesIgnored struct{}

func (withStrayFetchesIgnored) config(cfg *config) {
	cfg.ignoreStrayFetches = true
}
