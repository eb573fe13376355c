package tw

import (
	"sort"
	"strings"
)

// EntrySource says which part of the generator emitted a class.
type EntrySource string

const (
	SourceCore      EntrySource = "core"
	SourcePlugin    EntrySource = "plugin"
	SourceScreen    EntrySource = "screen"
	SourceContainer EntrySource = "container"
)

// VocabularyEntry describes one generated class.
type VocabularyEntry struct {
	Class    string
	Prefix   string
	Value    string
	Category Category
	Negative bool
	Source   EntrySource
	// Plugin names the contributing plugin for SourcePlugin entries.
	Plugin string
}

// ArbitraryTemplate documents a prefix that accepts "prefix-[value]".
type ArbitraryTemplate struct {
	Prefix   string
	Template string
	Example  string
	Category Category
}

// Vocabulary is the deduplicated set of classes a theme makes available.
// It is immutable; the zero value and nil are empty vocabularies.
type Vocabulary struct {
	version   Version
	entries   map[string]VocabularyEntry
	classes   []string
	templates []ArbitraryTemplate
}

// responsiveSamples are the utilities emitted behind every screen and
// container variant; enumerating every utility per screen would multiply the
// vocabulary without helping completion.
var responsiveSamples = []string{"block", "hidden", "flex", "grid", "container", "w-full", "text-center", "p-4"}

// arbitraryExamples is the sample value shown per arbitrary value kind.
var arbitraryExamples = map[valueKind]string{
	kindColor:  "#1da1f2",
	kindImage:  "url(/img/hero.png)",
	kindNumber: "3",
	kindOther:  "37px",
}

// GenerateVocabulary enumerates every class the theme makes available for
// v. VersionUnknown means the theme's own version. Generation is
// deterministic: the same theme and version always yield the same set.
func GenerateVocabulary(theme *Theme, v Version) *Vocabulary {
	if v == VersionUnknown && theme != nil {
		v = theme.Version
	}
	v = v.orDefault()
	if theme == nil {
		theme = DefaultTheme(v)
	}
	g := &generator{
		prefix: theme.Prefix,
		scales: buildScales(theme, v),
		voc:    &Vocabulary{version: v, entries: make(map[string]VocabularyEntry)},
	}
	seenTemplate := make(map[string]bool)
	for _, b := range bindingsFor(v).all {
		g.binding(b)
		if b.acceptsArbitrary() && !seenTemplate[b.Prefix] {
			seenTemplate[b.Prefix] = true
			g.voc.templates = append(g.voc.templates, ArbitraryTemplate{
				Prefix:   b.Prefix,
				Template: g.prefix + b.Prefix + "-[…]",
				Example:  g.prefix + b.Prefix + "-[" + arbitraryExamples[b.arbitraryKind()] + "]",
				Category: b.Category,
			})
		}
	}
	g.voc.templates = append(g.voc.templates, ArbitraryTemplate{
		Template: "[…:…]",
		Example:  "[mask-type:luminance]",
		Category: CategoryUtility,
	})

	plugins, order := pluginClasses(theme.Plugins, v)
	for _, stem := range order {
		pc := plugins[stem]
		g.add(VocabularyEntry{
			Class:    g.prefix + stem,
			Prefix:   stem,
			Category: pc.def.category,
			Source:   SourcePlugin,
			Plugin:   pc.plugin,
		})
	}

	for _, s := range g.scales.screens {
		g.samples(s.Name+":", SourceScreen)
	}
	if newVariantRegistry(theme, v, g.scales.screens).containers {
		for _, size := range containerSizes {
			g.samples("@"+size+":", SourceContainer)
		}
	}

	g.voc.classes = make([]string, 0, len(g.voc.entries))
	for c := range g.voc.entries {
		g.voc.classes = append(g.voc.classes, c)
	}
	sort.Strings(g.voc.classes)
	return g.voc
}

type generator struct {
	prefix string
	scales *scaleSet
	voc    *Vocabulary
}

// add keeps the first entry emitted for a class.
func (g *generator) add(e VocabularyEntry) {
	if _, dup := g.voc.entries[e.Class]; dup {
		return
	}
	g.voc.entries[e.Class] = e
}

func (g *generator) class(prefix, value string) string {
	if value == "" || value == "DEFAULT" {
		return g.prefix + prefix
	}
	return g.prefix + prefix + "-" + value
}

func (g *generator) binding(b PropertyBinding) {
	for _, kw := range b.Keywords {
		g.add(VocabularyEntry{
			Class:    g.class(b.Prefix, kw.Name),
			Prefix:   b.Prefix,
			Value:    kw.Name,
			Category: b.Category,
			Source:   SourceCore,
		})
	}
	for _, k := range b.Scales {
		for _, key := range g.tokens(k) {
			class := g.class(b.Prefix, key)
			g.add(VocabularyEntry{Class: class, Prefix: b.Prefix, Value: key, Category: b.Category, Source: SourceCore})
			if b.Negatable && k != ScaleColor && negatable(key) {
				g.add(VocabularyEntry{
					Class:    "-" + class,
					Prefix:   b.Prefix,
					Value:    key,
					Category: b.Category,
					Negative: true,
					Source:   SourceCore,
				})
			}
		}
	}
}

// tokens lists the value tokens of a scale in table order. Colours are
// flattened to family-shade tokens.
func (g *generator) tokens(k ScaleKind) []string {
	if k == ScaleColor {
		var out []string
		for _, f := range g.scales.colors.families {
			for _, s := range f.shades {
				out = append(out, colorToken(f.name, s.key))
			}
		}
		return out
	}
	if t := g.scales.table(k); t != nil {
		return t.keys
	}
	return nil
}

func (g *generator) samples(variant string, src EntrySource) {
	for _, s := range responsiveSamples {
		g.add(VocabularyEntry{
			Class:    variant + g.prefix + s,
			Prefix:   strings.TrimSuffix(variant, ":"),
			Value:    s,
			Category: CategoryLayout,
			Source:   src,
		})
	}
}

// Version is the Tailwind version the vocabulary was generated for.
func (v *Vocabulary) Version() Version {
	if v == nil {
		return VersionUnknown
	}
	return v.version
}

// Contains reports whether class is in the vocabulary.
func (v *Vocabulary) Contains(class string) bool {
	if v == nil {
		return false
	}
	_, ok := v.entries[class]
	return ok
}

// Entry returns the generator's record for class.
func (v *Vocabulary) Entry(class string) (VocabularyEntry, bool) {
	if v == nil {
		return VocabularyEntry{}, false
	}
	e, ok := v.entries[class]
	return e, ok
}

func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}
	return len(v.classes)
}

// Classes returns every class in sorted order. The slice is a copy.
func (v *Vocabulary) Classes() []string {
	if v == nil {
		return nil
	}
	return append([]string(nil), v.classes...)
}

// Complete returns up to limit classes starting with prefix, in sorted
// order. A non-positive limit returns every match.
func (v *Vocabulary) Complete(prefix string, limit int) []string {
	if v == nil {
		return nil
	}
	i := sort.SearchStrings(v.classes, prefix)
	var out []string
	for ; i < len(v.classes) && strings.HasPrefix(v.classes[i], prefix); i++ {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, v.classes[i])
	}
	return out
}

// Templates lists the arbitrary-value forms, one per prefix.
func (v *Vocabulary) Templates() []ArbitraryTemplate {
	if v == nil {
		return nil
	}
	return append([]ArbitraryTemplate(nil), v.templates...)
}
