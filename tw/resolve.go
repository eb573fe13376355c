package tw

import (
	"strconv"
	"strings"
)

// engine is the immutable per-theme state resolution needs. It does no
// caching; Resolver layers the caches on top.
type engine struct {
	theme    *Theme
	version  Version
	scales   *scaleSet
	bindings *bindingTable
	variants *variantRegistry
	plugins  map[string]pluginClass
}

func newEngine(theme *Theme, v Version) *engine {
	if theme == nil {
		theme = DefaultTheme(v)
	}
	scales := buildScales(theme, v)
	plugins, _ := pluginClasses(theme.Plugins, v)
	return &engine{
		theme:    theme,
		version:  v,
		scales:   scales,
		bindings: bindingsFor(v),
		variants: newVariantRegistry(theme, v, scales.screens),
		plugins:  plugins,
	}
}

// resolveBase interprets a base token (variants already removed). The
// result has no Raw, Variants or Relevance; those depend on the full class.
func (e *engine) resolveBase(base string) ParsedClass {
	pc := ParsedClass{Base: base, Category: CategoryUtility}
	if strings.TrimSpace(base) == "" {
		pc.Description = "Empty class."
		return pc
	}
	tok := lexBase(base, e.theme.Prefix)
	pc.Important, pc.Negative = tok.important, tok.negative

	known := true
	switch {
	case tok.arbitrary:
		e.resolveArbitrary(&pc, tok)
		pc.Description = describe(pc, true)
	case e.plugins[tok.body].plugin != "":
		pcl := e.plugins[tok.body]
		pc.Prefix = tok.body
		pc.Properties = append([]string(nil), pcl.def.properties...)
		pc.Category = pcl.def.category
		pc.Description = tok.body + " utility from the " + pcl.plugin + " plugin."
	default:
		known = e.resolveScale(&pc, tok.body)
		pc.Description = describe(pc, known)
	}
	if tok.unprefixed && known {
		e.withoutPrefix(&pc, tok)
	}
	return pc
}

// withoutPrefix marks a class that names a utility but lacks the theme
// prefix. Tailwind generates nothing for it.
func (e *engine) withoutPrefix(pc *ParsedClass, tok token) {
	want := e.theme.Prefix + tok.body
	if tok.negative {
		want = "-" + want
	}
	pc.ResolvedValue = nil
	pc.Declarations = nil
	pc.Description = "Missing the " + strconv.Quote(e.theme.Prefix) + " prefix; this theme generates " + strconv.Quote(want) + "."
}

type cut struct {
	prefix, value string
}

// cuts lists the prefix/value splits of body, longest prefix first: the
// whole token as a bare class, then every dash from the right.
func cuts(body string) []cut {
	out := []cut{{prefix: body}}
	for i := len(body) - 2; i > 0; i-- {
		if body[i] == '-' {
			out = append(out, cut{prefix: body[:i], value: body[i+1:]})
		}
	}
	return out
}

// resolveScale finds the longest binding prefix whose value resolves. When
// none resolves, the longest matching prefix still classifies the class and
// the value stays nil. Without any matching prefix the token splits on its
// first dash and is reported as an unknown utility.
func (e *engine) resolveScale(pc *ParsedClass, body string) bool {
	var fallback *cut
	var fallbackBinding PropertyBinding
	for _, c := range cuts(body) {
		list := e.bindings.lookup(c.prefix)
		if len(list) == 0 {
			continue
		}
		if fallback == nil {
			fallback, fallbackBinding = &c, list[0]
		}
		for _, b := range list {
			m, ok := e.value(b, c.value, pc.Negative)
			if !ok {
				continue
			}
			pc.Prefix, pc.Value, pc.Modifier = c.prefix, c.value, m.modifier
			pc.Properties = declaredProperties(b, m.decls)
			pc.Category = b.Category
			pc.ResolvedValue = strPtr(m.value)
			pc.Declarations = m.decls
			return true
		}
	}
	if fallback != nil {
		pc.Prefix, pc.Value = fallback.prefix, fallback.value
		pc.Properties = append([]string(nil), fallbackBinding.Properties...)
		pc.Category = fallbackBinding.Category
		return true
	}
	prefix, value, _ := strings.Cut(body, "-")
	pc.Prefix, pc.Value = prefix, value
	pc.Properties = []string{prefix}
	pc.Category = categoryForPrefix(prefix)
	return false
}

// declaredProperties prefers the binding's own property list; keyword
// declarations that target other properties (break-words) replace it.
func declaredProperties(b PropertyBinding, decls []Declaration) []string {
	props := append([]string(nil), b.Properties...)
	for _, d := range decls {
		found := false
		for _, p := range props {
			if p == d.Property {
				found = true
				break
			}
		}
		if !found {
			out := make([]string, 0, len(decls))
			for _, other := range decls {
				out = append(out, other.Property)
			}
			return out
		}
	}
	return props
}

type valueMatch struct {
	value    string
	modifier string
	decls    []Declaration
}

// value resolves one value token against a binding: keywords first, then
// each scale in order, then "/modifier" forms (colour alpha, font-size
// line height).
func (e *engine) value(b PropertyBinding, tok string, negative bool) (valueMatch, bool) {
	if tok == "DEFAULT" || (negative && !b.Negatable) {
		return valueMatch{}, false
	}
	if kw, ok := b.keyword(tok); ok {
		if negative {
			return valueMatch{}, false
		}
		m := valueMatch{value: kw.Value}
		if kw.Decls != nil {
			m.decls = append([]Declaration(nil), kw.Decls...)
		} else {
			m.decls = declare(b, kw.Value)
		}
		return m, true
	}
	key := tok
	if key == "" {
		key = "DEFAULT"
	}
	for _, k := range b.Scales {
		v, ok := e.scales.lookup(k, key)
		if !ok {
			continue
		}
		if negative {
			if !negatable(tok) {
				return valueMatch{}, false
			}
			v = negate(v)
		}
		m := valueMatch{value: v, decls: declare(b, v)}
		if k == ScaleFontSize {
			if lh := e.scales.lineHeights[key]; lh != "" {
				m.decls = append(m.decls, Declaration{Property: "line-height", Value: lh})
			}
		}
		return m, true
	}
	if negative {
		return valueMatch{}, false
	}
	i := strings.LastIndexByte(tok, '/')
	if i <= 0 || i == len(tok)-1 {
		return valueMatch{}, false
	}
	base, mod := tok[:i], tok[i+1:]
	if b.hasScale(ScaleColor) {
		if c, ok := e.scales.colors.get(base); ok {
			if a, ok := parseAlpha(mod); ok {
				v := withAlpha(c, a)
				return valueMatch{value: v, modifier: mod, decls: declare(b, v)}, true
			}
		}
	}
	if b.hasScale(ScaleFontSize) {
		if size, ok := e.scales.lookup(ScaleFontSize, base); ok {
			lh, ok := e.scales.lookup(ScaleLineHeight, mod)
			if !ok && isBracketed(mod) {
				lh, ok = unbracket(mod), true
			}
			if ok {
				decls := append(declare(b, size), Declaration{Property: "line-height", Value: lh})
				return valueMatch{value: size, modifier: mod, decls: decls}, true
			}
		}
	}
	return valueMatch{}, false
}

func declare(b PropertyBinding, v string) []Declaration {
	if b.Format != "" {
		v = strings.Replace(b.Format, "%s", v, 1)
	}
	decls := make([]Declaration, 0, len(b.Properties))
	for _, p := range b.Properties {
		decls = append(decls, Declaration{Property: p, Value: v})
	}
	return decls
}

// negate flips the sign of a CSS value; non-numeric values go through calc.
func negate(v string) string {
	if v == "" {
		return v
	}
	if v[0] == '-' {
		return v[1:]
	}
	if c := v[0]; c >= '0' && c <= '9' || c == '.' {
		return "-" + v
	}
	return "calc(" + v + " * -1)"
}

func (e *engine) resolveArbitrary(pc *ParsedClass, tok token) {
	pc.Arbitrary = true
	pc.Prefix, pc.Value, pc.Modifier = tok.prefix, tok.value, tok.modifier

	// [property:value]
	if tok.prefix == "" {
		prop, val, ok := strings.Cut(tok.value, ":")
		if !ok || prop == "" || val == "" {
			return
		}
		pc.Properties = []string{prop}
		pc.Category = categoryForProperty(prop)
		pc.ResolvedValue = strPtr(val)
		pc.Declarations = []Declaration{{Property: prop, Value: underscoresToSpaces(val)}}
		return
	}

	value, kind := classifyArbitrary(tok.value)
	pc.ResolvedValue = strPtr(value)
	css := underscoresToSpaces(value)
	if pc.Negative {
		css = "calc(" + css + " * -1)"
	}
	b, ok := e.pickArbitrary(tok.prefix, kind)
	if !ok {
		pc.Properties = []string{tok.prefix}
		pc.Category = categoryForPrefix(tok.prefix)
		pc.Declarations = []Declaration{{Property: tok.prefix, Value: css}}
		return
	}
	if kind == kindColor && tok.modifier != "" {
		if a, ok := parseAlpha(tok.modifier); ok {
			css = withAlpha(css, a)
		}
	}
	pc.Properties = append([]string(nil), b.Properties...)
	pc.Category = b.Category
	pc.Declarations = declare(b, css)
}

// pickArbitrary chooses among a prefix's bindings by value kind: an exact
// kind match first, then any non-colour binding for lengths and numbers,
// then the first binding that takes arbitrary values at all.
func (e *engine) pickArbitrary(prefix string, kind valueKind) (PropertyBinding, bool) {
	list := e.bindings.lookup(prefix)
	for _, b := range list {
		if b.acceptsArbitrary() && b.arbitraryKind() == kind {
			return b, true
		}
	}
	if kind == kindOther || kind == kindNumber {
		for _, b := range list {
			if k := b.arbitraryKind(); b.acceptsArbitrary() && k != kindColor && k != kindImage {
				return b, true
			}
		}
	}
	for _, b := range list {
		if b.acceptsArbitrary() {
			return b, true
		}
	}
	if len(list) > 0 {
		return list[0], true
	}
	return PropertyBinding{}, false
}

// categoryHeuristics classify arbitrary CSS properties by their leading
// word; the first match wins.
var categoryHeuristics = []struct {
	prefix string
	cat    Category
}{
	{"background", CategoryBackground},
	{"border", CategoryBorder},
	{"outline", CategoryBorder},
	{"padding", CategorySpacing},
	{"margin", CategorySpacing},
	{"gap", CategoryGrid},
	{"grid", CategoryGrid},
	{"flex", CategoryFlexbox},
	{"justify", CategoryFlexbox},
	{"align", CategoryFlexbox},
	{"place", CategoryFlexbox},
	{"width", CategorySizing},
	{"height", CategorySizing},
	{"min-", CategorySizing},
	{"max-", CategorySizing},
	{"font", CategoryTypography},
	{"text", CategoryTypography},
	{"line-height", CategoryTypography},
	{"letter-spacing", CategoryTypography},
	{"color", CategoryColor},
	{"transform", CategoryTransform},
	{"rotate", CategoryTransform},
	{"scale", CategoryTransform},
	{"translate", CategoryTransform},
	{"transition", CategoryTransition},
	{"animation", CategoryTransition},
	{"filter", CategoryFilter},
	{"backdrop", CategoryFilter},
	{"box-shadow", CategoryEffect},
	{"opacity", CategoryEffect},
	{"mix-blend", CategoryEffect},
	{"display", CategoryLayout},
	{"position", CategoryLayout},
	{"inset", CategoryLayout},
	{"top", CategoryLayout},
	{"right", CategoryLayout},
	{"bottom", CategoryLayout},
	{"left", CategoryLayout},
	{"z-index", CategoryLayout},
	{"overflow", CategoryLayout},
	{"cursor", CategoryInteractivity},
	{"pointer-events", CategoryInteractivity},
	{"user-select", CategoryInteractivity},
	{"scroll", CategoryInteractivity},
	{"fill", CategorySVG},
	{"stroke", CategorySVG},
	{"table", CategoryTable},
}

func categoryForProperty(prop string) Category {
	for _, h := range categoryHeuristics {
		if strings.HasPrefix(prop, h.prefix) {
			return h.cat
		}
	}
	return CategoryUtility
}

// prefixHeuristics classify class prefixes that have no binding.
var prefixHeuristics = []struct {
	prefix string
	cat    Category
}{
	{"shadow", CategoryEffect},
	{"rotate", CategoryTransform},
	{"scale", CategoryTransform},
	{"translate", CategoryTransform},
	{"skew", CategoryTransform},
	{"blur", CategoryFilter},
	{"backdrop", CategoryFilter},
	{"sr", CategoryAccessibility},
	{"forced", CategoryAccessibility},
}

func categoryForPrefix(prefix string) Category {
	for _, h := range prefixHeuristics {
		if strings.HasPrefix(prefix, h.prefix) {
			return h.cat
		}
	}
	return CategoryUtility
}
