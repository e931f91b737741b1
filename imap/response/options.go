package response

import (
	"github.com/ProtonMail/imapclient/limits"
	"github.com/sirupsen/logrus"
)

// Option represents a type that can be used to configure the record reader and parser.
type Option interface {
	config(*config)
}

type config struct {
	limits limits.Response
	log    logrus.FieldLogger
}

func newConfig(opts []Option) *config {
	cfg := &config{
		limits: limits.DefaultResponseLimits(),
		log:    logrus.WithField("pkg", "imap/response"),
	}

	for _, opt := range opts {
		opt.config(cfg)
	}

	return cfg
}

// WithLimits sets the limits applied while framing and decoding responses.
func WithLimits(limits limits.Response) Option {
	return &withLimits{limits: limits}
}

type withLimits struct {
	limits limits.Response
}

func (opt withLimits) config(cfg *config) {
	cfg.limits = opt.limits
}

// WithLogger sets the logger used by the record reader.
func WithLogger(log logrus.FieldLogger) Option {
	return &withLogger{log: log}
}

type withLogger struct {
	log logrus.FieldLogger
}

func (opt withLogger) config(cfg *config) {
	cfg.log = opt.log
}
