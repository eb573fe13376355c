package tw

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"sync/atomic"
	"time"
)

// ErrSuperseded is reported by RebuildAsync when a newer rebuild was
// published before this one finished. The older result is discarded.
var ErrSuperseded = errors.New("tw: rebuild superseded")

// Model is the long-lived class model of one project: the current theme
// snapshot with its vocabulary and resolver, plus a usage ledger that
// survives rebuilds. Readers always see a complete snapshot; rebuilds swap
// it atomically. A Model is safe for concurrent use.
type Model struct {
	logger    *slog.Logger
	ledger    *Ledger
	cacheSize int
	version   Version

	state atomic.Pointer[modelState]
	gen   atomic.Uint64
}

type modelState struct {
	theme    *Theme
	version  Version
	vocab    *Vocabulary
	resolver *Resolver
	gen      uint64
}

// NewModel builds the first snapshot synchronously. WithVersion pins the
// version across rebuilds; otherwise each theme's own version is used.
func NewModel(theme *Theme, opts ...Option) *Model {
	o := newOptions(opts)
	m := &Model{
		logger:    o.logger,
		ledger:    o.ledger,
		cacheSize: o.cacheSize,
		version:   o.version,
	}
	if m.ledger == nil {
		m.ledger = NewLedger()
	}
	m.Rebuild(theme)
	return m
}

func (m *Model) build(theme *Theme, gen uint64) *modelState {
	start := time.Now()
	v := m.version
	if v == VersionUnknown && theme != nil {
		v = theme.Version
	}
	v = v.orDefault()
	if theme == nil {
		theme = DefaultTheme(v)
	}
	vocab := GenerateVocabulary(theme, v)
	st := &modelState{
		theme:   theme,
		version: v,
		vocab:   vocab,
		resolver: NewResolver(theme,
			WithVersion(v),
			WithLogger(m.logger),
			WithLedger(m.ledger),
			WithVocabulary(vocab),
			WithCacheSize(m.cacheSize),
		),
		gen: gen,
	}
	m.logger.Info("vocabulary built",
		"version", v.String(),
		"classes", vocab.Len(),
		"generation", gen,
		"elapsed", time.Since(start),
	)
	return st
}

// publish installs st unless a newer generation is already visible.
func (m *Model) publish(st *modelState) bool {
	for {
		cur := m.state.Load()
		if cur != nil && cur.gen > st.gen {
			return false
		}
		if m.state.CompareAndSwap(cur, st) {
			return true
		}
	}
}

// Rebuild regenerates the vocabulary and resolver for theme and publishes
// them before returning.
func (m *Model) Rebuild(theme *Theme) {
	gen := m.gen.Add(1)
	if !m.publish(m.build(theme, gen)) {
		m.logger.Debug("rebuild discarded", "generation", gen)
	}
}

// RebuildAsync regenerates in the background while readers keep using the
// current snapshot. The returned channel yields one value and is closed:
// nil once the new snapshot is published, ctx.Err() if ctx was cancelled
// first, or ErrSuperseded if a later rebuild was published meanwhile. A
// later rebuild that is cancelled or still running does not stop this one
// from publishing.
func (m *Model) RebuildAsync(ctx context.Context, theme *Theme) <-chan error {
	gen := m.gen.Add(1)
	done := make(chan error, 1)
	go func() {
		defer close(done)
		if err := ctx.Err(); err != nil {
			done <- err
			return
		}
		st := m.build(theme, gen)
		if err := ctx.Err(); err != nil {
			m.logger.Debug("rebuild cancelled", "generation", gen)
			done <- err
			return
		}
		if !m.publish(st) {
			m.logger.Debug("rebuild superseded", "generation", gen)
			done <- ErrSuperseded
			return
		}
		done <- nil
	}()
	return done
}

func (m *Model) current() *modelState {
	return m.state.Load()
}

// Resolve interprets raw against the current snapshot, with relevance
// scored from the usage ledger.
func (m *Model) Resolve(raw string) ParsedClass {
	return m.current().resolver.Resolve(raw)
}

// CSS renders the rule raw generates under the current snapshot.
func (m *Model) CSS(raw string) string {
	return m.current().resolver.CSS(raw)
}

// Complete returns up to limit resolved classes completing input, best
// first. Leading variants in input ("md:hover:bg-") are kept and the last
// segment is completed against the vocabulary.
func (m *Model) Complete(input string, limit int) []ParsedClass {
	st := m.current()
	variants, partial := splitLast(input)
	candidates := st.vocab.Complete(partial, 0)
	out := make([]ParsedClass, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, st.resolver.Resolve(variants+c))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Relevance != out[j].Relevance {
			return out[i].Relevance > out[j].Relevance
		}
		return out[i].Raw < out[j].Raw
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// splitLast cuts input after its last top-level colon.
func splitLast(input string) (variants, partial string) {
	parts := splitTopLevel(input)
	if len(parts) == 1 {
		return "", input
	}
	last := parts[len(parts)-1]
	return strings.Join(parts[:len(parts)-1], ":") + ":", last
}

// Suggest proposes vocabulary classes close to a mistyped class. Variants
// are kept in front of each suggestion.
func (m *Model) Suggest(raw string, limit int) []Suggestion {
	st := m.current()
	variants, base := st.resolver.eng.variants.splitVariants(raw)
	prefix := ""
	for _, v := range variants {
		prefix += v.Name + ":"
	}
	out := st.vocab.Suggest(base, limit)
	for i := range out {
		out[i].Class = prefix + out[i].Class
	}
	return out
}

// RecordUsage counts one use of raw's base token and returns its new count.
func (m *Model) RecordUsage(raw string) int {
	_, base := m.current().resolver.eng.variants.splitVariants(raw)
	return m.ledger.Record(base)
}

// MostUsed returns up to limit base tokens, most used first.
func (m *Model) MostUsed(limit int) []string {
	return m.ledger.MostUsed(limit)
}

// ResetUsage clears the usage ledger.
func (m *Model) ResetUsage() {
	m.ledger.Reset()
}

func (m *Model) Theme() *Theme { return m.current().theme }
func (m *Model) Version() Version { return m.current().version }
func (m *Model) Vocabulary() *Vocabulary { return m.current().vocab }
func (m *Model) Ledger() *Ledger { return m.ledger }
func (m *Model) Stats() CacheStats { return m.current().resolver.Stats() }
func (m *Model) Generation() uint64 { return m.current().gen }
func (m *Model) Templates() []ArbitraryTemplate { return m.current().vocab.Templates() }
