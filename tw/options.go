package tw

import "log/slog"

// DefaultCacheSize bounds the resolution and CSS caches of a Resolver.
const DefaultCacheSize = 4096

// Option configures MergeTheme, NewResolver and NewModel. Each consumer reads
// the fields it understands and ignores the rest.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	version     Version
	diagnostics func(Diagnostic)
	cacheSize   int
	ledger      *Ledger
	vocabulary  *Vocabulary
}

func newOptions(opts []Option) options {
	o := options{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = discardLogger
	}
	return o
}

var discardLogger = slog.New(slog.DiscardHandler)

// WithLogger sets the structured logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithVersion pins the Tailwind major version instead of reading it from the
// theme or falling back to DefaultVersion.
func WithVersion(v Version) Option {
	return func(o *options) {
		o.version = v
	}
}

// WithDiagnostics registers a callback for recoverable merge problems.
func WithDiagnostics(fn func(Diagnostic)) Option {
	return func(o *options) {
		o.diagnostics = fn
	}
}

// WithCacheSize bounds each resolver cache. Non-positive sizes use DefaultCacheSize.
func WithCacheSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.cacheSize = n
		}
	}
}

// WithLedger shares a usage ledger between models or resolvers.
func WithLedger(l *Ledger) Option {
	return func(o *options) {
		o.ledger = l
	}
}

// WithVocabulary lets a Resolver score membership without owning generation.
func WithVocabulary(v *Vocabulary) Option {
	return func(o *options) {
		o.vocabulary = v
	}
}

func (o options) report(d Diagnostic) {
	o.logger.Warn("theme merge", "source", d.Source, "message", d.Message, "err", d.Err)
	if o.diagnostics != nil {
		o.diagnostics(d)
	}
}
