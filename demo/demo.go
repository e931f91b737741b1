// Command demo reads a server response transcript on stdin and prints what one extractor makes of it.
//
//	demo -extract mailbox -mailbox INBOX -tag A142 < select.txt
//
// The log level is read from IMAPCLIENT_LOG_LEVEL, which may be set in a .env file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"

	"github.com/ProtonMail/imapclient/extract"
	"github.com/ProtonMail/imapclient/imap"
	"github.com/ProtonMail/imapclient/imap/response"
	"github.com/ProtonMail/imapclient/logging"
	"github.com/ProtonMail/imapclient/observability"
	"github.com/ProtonMail/imapclient/observability/metrics"
	"github.com/ProtonMail/imapclient/session"
	"github.com/ProtonMail/imapclient/unsolicited"
	"github.com/bradenaw/juniper/stream"
	"github.com/joho/godotenv"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.WithError(err).Warn("Failed to load .env file")
	}

	if level, err := logrus.ParseLevel(os.Getenv("IMAPCLIENT_LOG_LEVEL")); err == nil {
		logrus.SetLevel(level)
	}

	var (
		configPath = flag.String("config", "", "path to a TOML config file")
		extractor  = flag.String("extract", "noop", "capabilities, names, fetches, expunges, ids, mailbox or noop")
		mailbox    = flag.String("mailbox", "INBOX", "name of the mailbox selected by a mailbox transcript")
		tag        = flag.String("tag", "", "if set, the tag the completion must carry")
	)

	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load config")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if cfg.Metrics.Listen != "" {
		m, err := serveMetrics(ctx, cfg.Metrics.Listen)
		if err != nil {
			logrus.WithError(err).Fatal("Failed to serve metrics")
		}

		ctx = observability.NewContextWithMetrics(ctx, m)
	}

	reader := response.NewReader(os.Stdin, response.WithLimits(cfg.responseLimits()))
	defer reader.Close()

	records := &completionTap{Stream: reader}

	sink := unsolicited.NewSink(cfg.Sink.Capacity)

	view := session.NewView(logPanicHandler{})
	view.Watch(ctx, sink)

	if err := run(ctx, *extractor, *mailbox, records, sink, view); err != nil {
		logrus.WithError(err).Error("Failed to extract response")
	}

	if *tag != "" {
		checkCompletion(*tag, records.last)
	}

	// Whatever follows a selected mailbox's response is treated as pushes to it.
	if *extractor == "mailbox" {
		for !records.ended && ctx.Err() == nil {
			if err := extract.Noop(ctx, records, sink); err != nil {
				logrus.WithError(err).Warn("Skipping response")
			}
		}
	}

	sink.Close()
	view.Wait()

	if name, state, ok := view.Snapshot(); ok {
		logrus.WithField("mailbox", name).Info(state)
	}
}

func run(
	ctx context.Context,
	extractor, mailbox string,
	records stream.Stream[*response.Record],
	sink *unsolicited.Sink,
	view *session.View,
) error {
	switch extractor {
	case "capabilities":
		caps, err := extract.Capabilities(ctx, records, sink)
		if err != nil {
			return err
		}

		logrus.WithField("auth", caps.AuthMechanisms()).Info(caps.ToSlice())

	case "ids":
		ids, err := extract.IDs(ctx, records, sink)
		if err != nil {
			return err
		}

		logrus.Info(ids.ToSlice())

	case "mailbox":
		state, err := extract.Mailbox(ctx, records, sink)
		if err != nil {
			return err
		}

		view.Replace(mailbox, state)

	case "noop":
		return extract.Noop(ctx, records, sink)

	case "names":
		each(ctx, extract.Names(records, sink, extract.WithStrayFetchesIgnored()), func(name imap.Name) {
			logrus.Info(name)
		})

	case "fetches":
		each(ctx, extract.Fetches(records, sink), func(fetch *extract.FetchRecord) {
			logrus.Info(fetch)
		})

	case "expunges":
		each(ctx, extract.Expunges(records, sink), func(seq imap.SeqID) {
			logrus.WithField("seq", seq).Info("Expunged")
		})

	default:
		return fmt.Errorf("unknown extractor %q", extractor)
	}

	return nil
}

// each calls fn for every item of s. Items that fail are logged and skipped.
func each[T any](ctx context.Context, s stream.Stream[T], fn func(T)) {
	defer s.Close()

	for {
		item, err := s.Next(ctx)
		if errors.Is(err, stream.End) || ctx.Err() != nil {
			return
		} else if err != nil {
			logrus.WithError(err).Warn("Skipping response")
			continue
		}

		fn(item)
	}
}

func checkCompletion(tag string, rec *response.Record) {
	if rec == nil {
		logrus.Warn("Transcript ended without a completion")
		return
	}

	if err := session.CheckCompletion(tag, rec); err != nil {
		logrus.WithError(err).Error("Command did not complete")
	} else {
		logrus.WithField("tag", tag).Info("Command completed")
	}
}

func serveMetrics(ctx context.Context, addr string) (*metrics.Metrics, error) {
	reg := prom.NewRegistry()

	m, err := metrics.NewPrometheus(reg)
	if err != nil {
		return nil, err
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	server := &http.Server{Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{})}

	logging.GoAnnotate(ctx, func(ctx context.Context) {
		logrus.WithField("addr", listener.Addr()).Info("Serving metrics")

		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Warn("Failed to serve metrics")
		}
	}, logging.Labels{
		"Action": "Serving metrics",
	})

	logging.GoAnnotate(ctx, func(ctx context.Context) {
		<-ctx.Done()

		if err := server.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close metrics server")
		}
	}, logging.Labels{
		"Action": "Closing metrics server",
	})

	return m, nil
}

// completionTap remembers the last completion read through it and whether the stream ended.
type completionTap struct {
	stream.Stream[*response.Record]

	last  *response.Record
	ended bool
}

func (t *completionTap) Next(ctx context.Context) (*response.Record, error) {
	rec, err := t.Stream.Next(ctx)
	if errors.Is(err, stream.End) {
		t.ended = true
	} else if err == nil && rec.IsCompletion() {
		t.last = rec
	}

	return rec, err
}

type logPanicHandler struct{}

func (logPanicHandler) HandlePanic(r any) {
	logrus.WithField("panic", r).Error("Recovered from panic")
}
