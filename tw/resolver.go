package tw

import (
	"log/slog"
	"math"
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// Resolver turns raw class tokens into ParsedClass values for one theme and
// version. Base-token resolutions and CSS bodies are memoized in bounded LRU
// caches; concurrent misses on the same base token share one computation.
// A Resolver is safe for concurrent use.
type Resolver struct {
	eng    *engine
	logger *slog.Logger
	ledger *Ledger
	vocab  *Vocabulary

	parsed *lru.Cache[string, ParsedClass]
	css    *lru.Cache[string, string]
	group  singleflight.Group

	hits   atomic.Uint64
	misses atomic.Uint64
}

// CacheStats is a point-in-time view of a Resolver's caches.
type CacheStats struct {
	Hits       uint64
	Misses     uint64
	Entries    int
	CSSEntries int
}

// HitRate is Hits over all lookups, or 0 before the first lookup.
func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// NewResolver builds a resolver for theme. The version comes from
// WithVersion, else from the theme. Without WithVocabulary the vocabulary is
// generated here; without WithLedger usage counts start empty.
func NewResolver(theme *Theme, opts ...Option) *Resolver {
	o := newOptions(opts)
	v := o.version
	if v == VersionUnknown && theme != nil {
		v = theme.Version
	}
	v = v.orDefault()
	if theme == nil {
		theme = DefaultTheme(v)
	}

	r := &Resolver{
		eng:    newEngine(theme, v),
		logger: o.logger,
		ledger: o.ledger,
		vocab:  o.vocabulary,
	}
	if r.ledger == nil {
		r.ledger = NewLedger()
	}
	if r.vocab == nil {
		r.vocab = GenerateVocabulary(theme, v)
	}
	// lru.New only fails for non-positive sizes, which newOptions rules out.
	r.parsed, _ = lru.New[string, ParsedClass](o.cacheSize)
	r.css, _ = lru.New[string, string](o.cacheSize)
	r.logger.Debug("resolver built", "version", v.String(), "cache_size", o.cacheSize, "vocabulary", r.vocab.Len())
	return r
}

// Version is the Tailwind version the resolver interprets classes for.
func (r *Resolver) Version() Version {
	return r.eng.version
}

// Theme returns the theme the resolver was built from.
func (r *Resolver) Theme() *Theme {
	return r.eng.theme
}

// Vocabulary returns the vocabulary used for relevance scoring.
func (r *Resolver) Vocabulary() *Vocabulary {
	return r.vocab
}

// Resolve interprets raw. It never fails: malformed input yields an
// unresolved ParsedClass with a description of the problem.
func (r *Resolver) Resolve(raw string) ParsedClass {
	variants, base := r.eng.variants.splitVariants(raw)
	pc := r.base(base)

	// The cached value is shared; hand out private slices.
	pc.Properties = append([]string(nil), pc.Properties...)
	pc.Declarations = append([]Declaration(nil), pc.Declarations...)

	pc.Raw = raw
	if len(variants) > 0 {
		pc.Variants = make([]string, len(variants))
		for i, v := range variants {
			pc.Variants[i] = v.Name
		}
		pc.Description += variantClause(variants)
	}
	pc.Relevance = Score(pc, r.vocab.Contains(raw), r.ledger.Count(base))
	return pc
}

func (r *Resolver) base(base string) ParsedClass {
	if pc, ok := r.parsed.Get(base); ok {
		r.hits.Add(1)
		return pc
	}
	v, _, _ := r.group.Do(base, func() (any, error) {
		// A flight that finished between the Get above and Do may have
		// filled the cache already.
		if pc, ok := r.parsed.Get(base); ok {
			r.hits.Add(1)
			return pc, nil
		}
		r.misses.Add(1)
		pc := r.eng.resolveBase(base)
		if !pc.Resolved() {
			r.logger.Debug("class unresolved", "base", base, "prefix", pc.Prefix)
		}
		r.parsed.Add(base, pc)
		return pc, nil
	})
	return v.(ParsedClass)
}

// CSS renders the rule raw generates, or "" when it generates none. The
// declaration block is memoized per base token.
func (r *Resolver) CSS(raw string) string {
	variants, base := r.eng.variants.splitVariants(raw)
	body, ok := r.css.Get(base)
	if !ok {
		body = cssBody(r.base(base))
		r.css.Add(base, body)
	}
	if body == "" {
		return ""
	}
	return renderRule(raw, variants, body)
}

// Stats snapshots the cache counters.
func (r *Resolver) Stats() CacheStats {
	return CacheStats{
		Hits:       r.hits.Load(),
		Misses:     r.misses.Load(),
		Entries:    r.parsed.Len(),
		CSSEntries: r.css.Len(),
	}
}

// Purge empties both caches. Counters are kept.
func (r *Resolver) Purge() {
	r.parsed.Purge()
	r.css.Purge()
}

// Score computes the relevance of a resolved class:
//
//	1000·[in vocabulary] + min(100, 10·log2(usage+1)) + 10·len(variants) + 5·[arbitrary]
func Score(pc ParsedClass, inVocab bool, usage int) float64 {
	var s float64
	if inVocab {
		s += 1000
	}
	if usage > 0 {
		s += math.Min(100, 10*math.Log2(float64(usage)+1))
	}
	s += 10 * float64(len(pc.Variants))
	if pc.Arbitrary {
		s += 5
	}
	return s
}

var defaultTheme = sync.OnceValue(func() *Theme {
	return DefaultTheme(DefaultVersion)
})

// Resolve interprets raw against theme without a Model. The resolver and
// its caches belong to the theme, so repeated calls with the same *Theme
// share a cache that goes away with the theme. A nil theme means the
// default theme of DefaultVersion. Usage counts are not consulted; a
// session that records usage or rebuilds its theme should use a Model.
func Resolve(raw string, theme *Theme) ParsedClass {
	if theme == nil {
		theme = defaultTheme()
	}
	return theme.resolver().Resolve(raw)
}
