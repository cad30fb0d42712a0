package bibgo

import (
	"log/slog"

	"golang.org/x/text/language"

	"github.com/hupe1980/bibgo/facet"
)

type options struct {
	locale           language.Tag
	pageSize         int
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures Library constructor behavior.
type Option func(*options)

// WithLocale sets the locale used for title/author collation in the sort
// stage. Default is language.Und (root collation rules).
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		o.locale = tag
	}
}

// WithPageSize sets the page size used by Library.Page. Values below 1 are
// ignored. Default is facet.DefaultPageSize.
func WithPageSize(size int) Option {
	return func(o *options) {
		if size >= 1 {
			o.pageSize = size
		}
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		locale:           language.Und,
		pageSize:         facet.DefaultPageSize,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
