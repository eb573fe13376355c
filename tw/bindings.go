package tw

import (
	"sort"
	"strings"
	"sync"
)

// Keyword is a named value of a binding. An empty Name is the bare class
// ("block", "border"). Decls, when set, replaces the declarations the
// binding's properties would produce.
type Keyword struct {
	Name  string
	Value string
	Decls []Declaration
}

// PropertyBinding maps a class prefix to CSS properties and the value
// tables its suffix is looked up in. Several bindings may share a prefix;
// they are tried in declaration order.
type PropertyBinding struct {
	Prefix     string
	Properties []string
	Axis       Axis
	Category   Category
	Scales     []ScaleKind
	Keywords   []Keyword
	// Format wraps the resolved value in declarations, e.g. "blur(%s)".
	Format    string
	Negatable bool
	// Open bindings accept arbitrary values even without a scale.
	Open  bool
	Since Version
	Until Version
}

func bind(prefix string, cat Category, props ...string) PropertyBinding {
	return PropertyBinding{Prefix: prefix, Category: cat, Properties: props}
}

func (b PropertyBinding) scales(k ...ScaleKind) PropertyBinding {
	b.Scales = append(append([]ScaleKind(nil), b.Scales...), k...)
	return b
}

// keywords takes name/value pairs.
func (b PropertyBinding) keywords(pairs ...string) PropertyBinding {
	kw := append([]Keyword(nil), b.Keywords...)
	for i := 0; i+1 < len(pairs); i += 2 {
		kw = append(kw, Keyword{Name: pairs[i], Value: pairs[i+1]})
	}
	b.Keywords = kw
	return b
}

// same adds keywords whose value equals their name.
func (b PropertyBinding) same(names ...string) PropertyBinding {
	for _, n := range names {
		b = b.keywords(n, n)
	}
	return b
}

func (b PropertyBinding) negative() PropertyBinding { b.Negatable = true; return b }
func (b PropertyBinding) open() PropertyBinding     { b.Open = true; return b }
func (b PropertyBinding) axis(a Axis) PropertyBinding {
	b.Axis = a
	return b
}
func (b PropertyBinding) format(f string) PropertyBinding {
	b.Format = f
	return b
}
func (b PropertyBinding) since(v Version) PropertyBinding { b.Since = v; return b }
func (b PropertyBinding) until(v Version) PropertyBinding { b.Until = v; return b }

// static declares a standalone class such as "hidden" or "truncate".
// decls are property/value pairs.
func static(class string, cat Category, decls ...string) PropertyBinding {
	b := PropertyBinding{Prefix: class, Category: cat}
	kw := Keyword{}
	for i := 0; i+1 < len(decls); i += 2 {
		b.Properties = append(b.Properties, decls[i])
		kw.Decls = append(kw.Decls, Declaration{Property: decls[i], Value: decls[i+1]})
	}
	if len(kw.Decls) > 0 {
		kw.Value = kw.Decls[0].Value
	}
	if len(kw.Decls) == 1 {
		kw.Decls = nil
	}
	b.Keywords = []Keyword{kw}
	return b
}

// statics declares one standalone class per class/value pair, all setting
// the same property.
func statics(cat Category, property string, pairs ...string) []PropertyBinding {
	out := make([]PropertyBinding, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, static(pairs[i], cat, property, pairs[i+1]))
	}
	return out
}

func (b PropertyBinding) active(v Version) bool {
	if b.Since != VersionUnknown && v < b.Since {
		return false
	}
	if b.Until != VersionUnknown && v > b.Until {
		return false
	}
	return true
}

func (b PropertyBinding) hasScale(k ScaleKind) bool {
	for _, s := range b.Scales {
		if s == k {
			return true
		}
	}
	return false
}

func (b PropertyBinding) keyword(name string) (Keyword, bool) {
	for _, k := range b.Keywords {
		if k.Name == name {
			return k, true
		}
	}
	return Keyword{}, false
}

// acceptsArbitrary reports whether prefix-[value] can land on this binding.
func (b PropertyBinding) acceptsArbitrary() bool {
	return b.Open || len(b.Scales) > 0
}

// arbitraryKind is the kind of arbitrary value the binding primarily takes.
func (b PropertyBinding) arbitraryKind() valueKind {
	switch {
	case b.hasScale(ScaleColor):
		return kindColor
	case len(b.Properties) > 0 && b.Properties[0] == "background-image":
		return kindImage
	}
	for _, s := range b.Scales {
		switch s {
		case ScaleFontWeight, ScaleOpacity, ScaleZIndex, ScaleOrder, ScaleFlexGrow, ScaleLineClamp, ScaleStrokeWidth:
			return kindNumber
		}
	}
	return kindOther
}

func side(prefix string, cat Category, props ...string) PropertyBinding {
	b := bind(prefix, cat, props...)
	if len(props) == 2 {
		if strings.Contains(props[0], "left") {
			b.Axis = AxisX
		} else {
			b.Axis = AxisY
		}
	}
	return b
}

var sizeKeywords = []string{"auto", "auto", "min", "min-content", "max", "max-content", "fit", "fit-content"}

var blendModes = []string{"normal", "multiply", "screen", "overlay", "darken", "lighten", "color-dodge",
	"color-burn", "hard-light", "soft-light", "difference", "exclusion", "hue", "saturation", "color", "luminosity"}

var gradientSides = []string{
	"t", "to top", "tr", "to top right", "r", "to right", "br", "to bottom right",
	"b", "to bottom", "bl", "to bottom left", "l", "to left", "tl", "to top left",
}

func gradient(prefix string) PropertyBinding {
	b := bind(prefix, CategoryBackground, "background-image")
	for i := 0; i+1 < len(gradientSides); i += 2 {
		b = b.keywords(gradientSides[i], "linear-gradient("+gradientSides[i+1]+", var(--tw-gradient-stops))")
	}
	return b
}

func spacingGroup(base string, cat Category, property string, negatable bool, kws ...string) []PropertyBinding {
	type part struct {
		suffix string
		props  []string
		since  Version
	}
	parts := []part{
		{"", []string{property}, 0},
		{"x", []string{property + "-left", property + "-right"}, 0},
		{"y", []string{property + "-top", property + "-bottom"}, 0},
		{"t", []string{property + "-top"}, 0},
		{"r", []string{property + "-right"}, 0},
		{"b", []string{property + "-bottom"}, 0},
		{"l", []string{property + "-left"}, 0},
		{"s", []string{property + "-inline-start"}, V3},
		{"e", []string{property + "-inline-end"}, V3},
	}
	out := make([]PropertyBinding, 0, len(parts))
	for _, p := range parts {
		b := side(base+p.suffix, cat, p.props...).scales(ScaleSpacing).keywords(kws...).since(p.since)
		if negatable {
			b = b.negative()
		}
		out = append(out, b)
	}
	return out
}

func insetGroup() []PropertyBinding {
	groups := []struct {
		prefix string
		props  []string
		since  Version
	}{
		{"inset", []string{"inset"}, 0},
		{"inset-x", []string{"left", "right"}, 0},
		{"inset-y", []string{"top", "bottom"}, 0},
		{"top", []string{"top"}, 0},
		{"right", []string{"right"}, 0},
		{"bottom", []string{"bottom"}, 0},
		{"left", []string{"left"}, 0},
		{"start", []string{"inset-inline-start"}, V3},
		{"end", []string{"inset-inline-end"}, V3},
	}
	out := make([]PropertyBinding, 0, len(groups))
	for _, g := range groups {
		b := side(g.prefix, CategoryLayout, g.props...).scales(ScaleSpacing, ScaleFraction).
			keywords("auto", "auto").negative().since(g.since)
		out = append(out, b)
	}
	return out
}

func radiusGroup() []PropertyBinding {
	corners := []struct {
		suffix string
		props  []string
		since  Version
	}{
		{"", []string{"border-radius"}, 0},
		{"-t", []string{"border-top-left-radius", "border-top-right-radius"}, 0},
		{"-r", []string{"border-top-right-radius", "border-bottom-right-radius"}, 0},
		{"-b", []string{"border-bottom-right-radius", "border-bottom-left-radius"}, 0},
		{"-l", []string{"border-top-left-radius", "border-bottom-left-radius"}, 0},
		{"-tl", []string{"border-top-left-radius"}, 0},
		{"-tr", []string{"border-top-right-radius"}, 0},
		{"-br", []string{"border-bottom-right-radius"}, 0},
		{"-bl", []string{"border-bottom-left-radius"}, 0},
		{"-s", []string{"border-start-start-radius", "border-end-start-radius"}, V3},
		{"-e", []string{"border-start-end-radius", "border-end-end-radius"}, V3},
	}
	out := make([]PropertyBinding, 0, len(corners))
	for _, c := range corners {
		out = append(out, bind("rounded"+c.suffix, CategoryBorder, c.props...).scales(ScaleRadius).since(c.since))
	}
	return out
}

func borderGroup() []PropertyBinding {
	sides := []struct {
		suffix string
		width  []string
		color  []string
		since  Version
	}{
		{"", []string{"border-width"}, []string{"border-color"}, 0},
		{"-x", []string{"border-left-width", "border-right-width"}, []string{"border-left-color", "border-right-color"}, 0},
		{"-y", []string{"border-top-width", "border-bottom-width"}, []string{"border-top-color", "border-bottom-color"}, 0},
		{"-t", []string{"border-top-width"}, []string{"border-top-color"}, 0},
		{"-r", []string{"border-right-width"}, []string{"border-right-color"}, 0},
		{"-b", []string{"border-bottom-width"}, []string{"border-bottom-color"}, 0},
		{"-l", []string{"border-left-width"}, []string{"border-left-color"}, 0},
		{"-s", []string{"border-inline-start-width"}, []string{"border-inline-start-color"}, V3},
		{"-e", []string{"border-inline-end-width"}, []string{"border-inline-end-color"}, V3},
	}
	var out []PropertyBinding
	for _, s := range sides {
		out = append(out,
			side("border"+s.suffix, CategoryBorder, s.width...).scales(ScaleBorderWidth).since(s.since),
			side("border"+s.suffix, CategoryBorder, s.color...).scales(ScaleColor).since(s.since),
		)
	}
	return out
}

func filterGroup(prefix, property string) []PropertyBinding {
	fn := func(name string) string { return name + "(%s)" }
	return []PropertyBinding{
		bind(prefix+"blur", CategoryFilter, property).scales(ScaleBlur).format(fn("blur")),
		bind(prefix+"brightness", CategoryFilter, property).scales(ScaleFilterPercent).format(fn("brightness")),
		bind(prefix+"contrast", CategoryFilter, property).scales(ScaleFilterPercent).format(fn("contrast")),
		bind(prefix+"saturate", CategoryFilter, property).scales(ScaleFilterPercent).format(fn("saturate")),
		bind(prefix+"grayscale", CategoryFilter, property).keywords("", "100%", "0", "0").format(fn("grayscale")).open(),
		bind(prefix+"invert", CategoryFilter, property).keywords("", "100%", "0", "0").format(fn("invert")).open(),
		bind(prefix+"sepia", CategoryFilter, property).keywords("", "100%", "0", "0").format(fn("sepia")).open(),
		bind(prefix+"hue-rotate", CategoryFilter, property).scales(ScaleRotate).format(fn("hue-rotate")).negative(),
	}
}

// coreBindings is the full utility table across versions. Order matters
// where prefixes repeat: the first binding that resolves a value wins, and
// the first binding of a prefix describes unresolved values.
var coreBindings = func() []PropertyBinding {
	var b []PropertyBinding
	add := func(items ...PropertyBinding) { b = append(b, items...) }

	// Layout
	add(static("container", CategoryLayout, "width", "100%"))
	add(statics(CategoryLayout, "display",
		"block", "block", "inline-block", "inline-block", "inline", "inline", "flex", "flex",
		"inline-flex", "inline-flex", "table", "table", "inline-table", "inline-table",
		"table-caption", "table-caption", "table-cell", "table-cell", "table-column", "table-column",
		"table-column-group", "table-column-group", "table-footer-group", "table-footer-group",
		"table-header-group", "table-header-group", "table-row-group", "table-row-group",
		"table-row", "table-row", "flow-root", "flow-root", "grid", "grid", "inline-grid", "inline-grid",
		"contents", "contents", "list-item", "list-item", "hidden", "none")...)
	add(statics(CategoryLayout, "box-sizing", "box-border", "border-box", "box-content", "content-box")...)
	add(bind("float", CategoryLayout, "float").same("left", "right", "none"))
	add(bind("float", CategoryLayout, "float").keywords("start", "inline-start", "end", "inline-end").since(V3))
	add(bind("clear", CategoryLayout, "clear").same("left", "right", "both", "none"))
	add(static("isolate", CategoryLayout, "isolation", "isolate"), static("isolation-auto", CategoryLayout, "isolation", "auto"))
	add(bind("object", CategoryLayout, "object-fit").same("contain", "cover", "fill", "none", "scale-down"))
	add(bind("object", CategoryLayout, "object-position").keywords("bottom", "bottom", "center", "center",
		"left", "left", "left-bottom", "left bottom", "left-top", "left top", "right", "right",
		"right-bottom", "right bottom", "right-top", "right top", "top", "top").open())
	for _, o := range []struct{ prefix, prop string }{{"overflow", "overflow"}, {"overflow-x", "overflow-x"}, {"overflow-y", "overflow-y"}} {
		add(bind(o.prefix, CategoryLayout, o.prop).same("auto", "hidden", "visible", "scroll"))
		add(bind(o.prefix, CategoryLayout, o.prop).same("clip").since(V3))
	}
	add(static("overflow-ellipsis", CategoryTypography, "text-overflow", "ellipsis").until(V2))
	for _, o := range []string{"overscroll", "overscroll-x", "overscroll-y"} {
		add(bind(o, CategoryLayout, strings.Replace(o, "overscroll", "overscroll-behavior", 1)).same("auto", "contain", "none"))
	}
	add(statics(CategoryLayout, "position", "static", "static", "fixed", "fixed", "absolute", "absolute",
		"relative", "relative", "sticky", "sticky")...)
	add(insetGroup()...)
	add(static("visible", CategoryLayout, "visibility", "visible"), static("invisible", CategoryLayout, "visibility", "hidden"))
	add(static("collapse", CategoryLayout, "visibility", "collapse").since(V3))
	add(bind("z", CategoryLayout, "z-index").scales(ScaleZIndex).negative())
	add(bind("aspect", CategoryLayout, "aspect-ratio").keywords("auto", "auto", "square", "1 / 1", "video", "16 / 9").open().since(V3))
	add(bind("columns", CategoryLayout, "columns").scales(ScaleColumns).keywords("auto", "auto").since(V3))
	for _, p := range []string{"break-after", "break-before"} {
		add(bind(p, CategoryLayout, p).same("auto", "avoid", "all", "avoid-page", "page", "left", "right", "column").since(V3))
	}
	add(bind("break-inside", CategoryLayout, "break-inside").same("auto", "avoid", "avoid-page", "avoid-column").since(V3))
	add(statics(CategoryLayout, "box-decoration-break", "box-decoration-clone", "clone", "box-decoration-slice", "slice")...)
	add(static("@container", CategoryLayout, "container-type", "inline-size").since(V4))

	// Flexbox & grid
	add(bind("basis", CategoryFlexbox, "flex-basis").scales(ScaleSpacing, ScaleFraction).keywords("auto", "auto").since(V3))
	add(statics(CategoryFlexbox, "flex-direction", "flex-row", "row", "flex-row-reverse", "row-reverse",
		"flex-col", "column", "flex-col-reverse", "column-reverse")...)
	add(statics(CategoryFlexbox, "flex-wrap", "flex-wrap", "wrap", "flex-wrap-reverse", "wrap-reverse", "flex-nowrap", "nowrap")...)
	add(bind("flex", CategoryFlexbox, "flex").keywords("1", "1 1 0%", "auto", "1 1 auto", "initial", "0 1 auto", "none", "none").open())
	add(bind("flex-grow", CategoryFlexbox, "flex-grow").scales(ScaleFlexGrow).until(V3))
	add(bind("flex-shrink", CategoryFlexbox, "flex-shrink").scales(ScaleFlexGrow).until(V3))
	add(bind("grow", CategoryFlexbox, "flex-grow").scales(ScaleFlexGrow).since(V3))
	add(bind("shrink", CategoryFlexbox, "flex-shrink").scales(ScaleFlexGrow).since(V3))
	add(bind("order", CategoryFlexbox, "order").scales(ScaleOrder).keywords("first", "-9999", "last", "9999", "none", "0").negative())
	add(bind("grid-cols", CategoryGrid, "grid-template-columns").scales(ScaleGridTemplate).keywords("none", "none"))
	add(bind("grid-rows", CategoryGrid, "grid-template-rows").scales(ScaleGridTemplate).keywords("none", "none"))
	add(bind("grid-cols", CategoryGrid, "grid-template-columns").same("subgrid").since(V4))
	add(bind("grid-rows", CategoryGrid, "grid-template-rows").same("subgrid").since(V4))
	add(bind("col", CategoryGrid, "grid-column").keywords("auto", "auto").open())
	add(bind("col-span", CategoryGrid, "grid-column").scales(ScaleGridSpan).keywords("full", "1 / -1"))
	add(bind("col-start", CategoryGrid, "grid-column-start").scales(ScaleGridLine).keywords("auto", "auto"))
	add(bind("col-end", CategoryGrid, "grid-column-end").scales(ScaleGridLine).keywords("auto", "auto"))
	add(bind("row", CategoryGrid, "grid-row").keywords("auto", "auto").open())
	add(bind("row-span", CategoryGrid, "grid-row").scales(ScaleGridSpan).keywords("full", "1 / -1"))
	add(bind("row-start", CategoryGrid, "grid-row-start").scales(ScaleGridLine).keywords("auto", "auto"))
	add(bind("row-end", CategoryGrid, "grid-row-end").scales(ScaleGridLine).keywords("auto", "auto"))
	add(bind("grid-flow", CategoryGrid, "grid-auto-flow").keywords("row", "row", "col", "column", "dense", "dense",
		"row-dense", "row dense", "col-dense", "column dense"))
	for _, p := range []struct{ prefix, prop string }{{"auto-cols", "grid-auto-columns"}, {"auto-rows", "grid-auto-rows"}} {
		add(bind(p.prefix, CategoryGrid, p.prop).keywords("auto", "auto", "min", "min-content", "max", "max-content", "fr", "minmax(0, 1fr)").open())
	}
	add(bind("gap", CategoryGrid, "gap").scales(ScaleSpacing))
	add(side("gap-x", CategoryGrid, "column-gap").scales(ScaleSpacing).axis(AxisX))
	add(side("gap-y", CategoryGrid, "row-gap").scales(ScaleSpacing).axis(AxisY))
	add(bind("justify", CategoryFlexbox, "justify-content").keywords("start", "flex-start", "end", "flex-end",
		"center", "center", "between", "space-between", "around", "space-around", "evenly", "space-evenly"))
	add(bind("justify", CategoryFlexbox, "justify-content").same("normal", "stretch").since(V3))
	add(bind("justify-items", CategoryFlexbox, "justify-items").same("start", "end", "center", "stretch"))
	add(bind("justify-self", CategoryFlexbox, "justify-self").same("auto", "start", "end", "center", "stretch"))
	add(bind("content", CategoryFlexbox, "align-content").keywords("center", "center", "start", "flex-start",
		"end", "flex-end", "between", "space-between", "around", "space-around", "evenly", "space-evenly"))
	add(bind("content", CategoryTypography, "content").same("none").open().since(V3))
	add(bind("items", CategoryFlexbox, "align-items").keywords("start", "flex-start", "end", "flex-end",
		"center", "center", "baseline", "baseline", "stretch", "stretch"))
	add(bind("self", CategoryFlexbox, "align-self").keywords("auto", "auto", "start", "flex-start", "end", "flex-end",
		"center", "center", "stretch", "stretch", "baseline", "baseline"))
	add(bind("place-content", CategoryFlexbox, "place-content").keywords("center", "center", "start", "start",
		"end", "end", "between", "space-between", "around", "space-around", "evenly", "space-evenly", "stretch", "stretch"))
	add(bind("place-items", CategoryFlexbox, "place-items").same("start", "end", "center", "stretch"))
	add(bind("place-self", CategoryFlexbox, "place-self").same("auto", "start", "end", "center", "stretch"))

	// Spacing
	add(spacingGroup("p", CategorySpacing, "padding", false)...)
	add(spacingGroup("m", CategorySpacing, "margin", true, "auto", "auto")...)
	add(side("space-x", CategorySpacing, "margin-left").scales(ScaleSpacing).axis(AxisX).negative())
	add(side("space-y", CategorySpacing, "margin-top").scales(ScaleSpacing).axis(AxisY).negative())
	add(static("space-x-reverse", CategorySpacing, "--tw-space-x-reverse", "1"))
	add(static("space-y-reverse", CategorySpacing, "--tw-space-y-reverse", "1"))

	// Sizing
	add(bind("w", CategorySizing, "width").scales(ScaleSpacing, ScaleFraction).keywords(sizeKeywords...).keywords("screen", "100vw"))
	add(bind("w", CategorySizing, "width").keywords("svw", "100svw", "lvw", "100lvw", "dvw", "100dvw").since(V3))
	add(bind("min-w", CategorySizing, "min-width").scales(ScaleSpacing, ScaleFraction).keywords(sizeKeywords[2:]...))
	add(bind("max-w", CategorySizing, "max-width").scales(ScaleMaxWidth, ScaleSpacing))
	add(bind("h", CategorySizing, "height").scales(ScaleSpacing, ScaleFraction).keywords(sizeKeywords...).keywords("screen", "100vh"))
	add(bind("h", CategorySizing, "height").keywords("svh", "100svh", "lvh", "100lvh", "dvh", "100dvh").since(V3))
	add(bind("min-h", CategorySizing, "min-height").scales(ScaleSpacing, ScaleFraction).keywords(sizeKeywords[2:]...).keywords("screen", "100vh"))
	add(bind("max-h", CategorySizing, "max-height").scales(ScaleSpacing, ScaleFraction).keywords(sizeKeywords[2:]...).keywords("none", "none", "screen", "100vh"))
	add(bind("size", CategorySizing, "width", "height").scales(ScaleSpacing, ScaleFraction).keywords(sizeKeywords...).axis(AxisXY).since(V3))

	// Typography
	add(bind("font", CategoryTypography, "font-family").scales(ScaleFontFamily))
	add(bind("font", CategoryTypography, "font-weight").scales(ScaleFontWeight))
	add(bind("text", CategoryColor, "color").scales(ScaleColor))
	add(bind("text", CategoryTypography, "font-size").scales(ScaleFontSize))
	add(bind("text", CategoryTypography, "text-align").same("left", "center", "right", "justify"))
	add(bind("text", CategoryTypography, "text-align").same("start", "end").since(V3))
	add(bind("text", CategoryTypography, "text-overflow").same("ellipsis", "clip").since(V3))
	add(bind("text", CategoryTypography, "text-wrap").same("wrap", "nowrap", "balance", "pretty").since(V3))
	add(bind("text-opacity", CategoryColor, "--tw-text-opacity").scales(ScaleOpacity).until(V3))
	add(static("antialiased", CategoryTypography, "-webkit-font-smoothing", "antialiased", "-moz-osx-font-smoothing", "grayscale"))
	add(static("subpixel-antialiased", CategoryTypography, "-webkit-font-smoothing", "auto", "-moz-osx-font-smoothing", "auto"))
	add(statics(CategoryTypography, "font-style", "italic", "italic", "not-italic", "normal")...)
	add(bind("tracking", CategoryTypography, "letter-spacing").scales(ScaleTracking).negative())
	add(bind("leading", CategoryTypography, "line-height").scales(ScaleLineHeight))
	add(bind("list", CategoryTypography, "list-style-type").same("none", "disc", "decimal"))
	add(bind("list", CategoryTypography, "list-style-position").same("inside", "outside"))
	add(bind("placeholder", CategoryColor, "color").scales(ScaleColor).until(V2))
	add(bind("placeholder-opacity", CategoryColor, "--tw-placeholder-opacity").scales(ScaleOpacity).until(V2))
	add(statics(CategoryTypography, "text-decoration-line", "underline", "underline", "overline", "overline",
		"line-through", "line-through", "no-underline", "none")...)
	add(bind("decoration", CategoryTypography, "text-decoration-color").scales(ScaleColor).since(V3))
	add(bind("decoration", CategoryTypography, "text-decoration-style").same("solid", "double", "dotted", "dashed", "wavy").since(V3))
	add(bind("decoration", CategoryTypography, "text-decoration-thickness").scales(ScaleOffsetWidth).same("auto", "from-font").since(V3))
	add(bind("underline-offset", CategoryTypography, "text-underline-offset").scales(ScaleOffsetWidth).same("auto").since(V3))
	add(statics(CategoryTypography, "text-transform", "uppercase", "uppercase", "lowercase", "lowercase",
		"capitalize", "capitalize", "normal-case", "none")...)
	add(static("truncate", CategoryTypography, "overflow", "hidden", "text-overflow", "ellipsis", "white-space", "nowrap"))
	add(bind("indent", CategoryTypography, "text-indent").scales(ScaleSpacing).negative().since(V3))
	add(bind("align", CategoryTypography, "vertical-align").keywords("baseline", "baseline", "top", "top", "middle", "middle",
		"bottom", "bottom", "text-top", "text-top", "text-bottom", "text-bottom", "sub", "sub", "super", "super").open())
	add(bind("whitespace", CategoryTypography, "white-space").same("normal", "nowrap", "pre", "pre-line", "pre-wrap"))
	add(bind("whitespace", CategoryTypography, "white-space").same("break-spaces").since(V3))
	add(PropertyBinding{Prefix: "break", Category: CategoryTypography, Properties: []string{"overflow-wrap", "word-break"},
		Keywords: []Keyword{
			{Name: "normal", Value: "normal", Decls: []Declaration{{"overflow-wrap", "normal"}, {"word-break", "normal"}}},
			{Name: "words", Value: "break-word", Decls: []Declaration{{"overflow-wrap", "break-word"}}},
			{Name: "all", Value: "break-all", Decls: []Declaration{{"word-break", "break-all"}}},
		}})
	add(bind("break", CategoryTypography, "word-break").keywords("keep", "keep-all").since(V3))
	add(bind("line-clamp", CategoryTypography, "-webkit-line-clamp").scales(ScaleLineClamp).keywords("none", "none").since(V3))
	add(bind("hyphens", CategoryTypography, "hyphens").same("none", "manual", "auto").since(V3))
	add(bind("text-shadow", CategoryTypography, "text-shadow").keywords("2xs", "0px 1px 0px rgb(0 0 0 / 0.15)",
		"xs", "0px 1px 1px rgb(0 0 0 / 0.2)", "sm", "0px 1px 0px rgb(0 0 0 / 0.075), 0px 1px 1px rgb(0 0 0 / 0.075), 0px 2px 2px rgb(0 0 0 / 0.075)",
		"md", "0px 1px 1px rgb(0 0 0 / 0.1), 0px 1px 2px rgb(0 0 0 / 0.1), 0px 2px 4px rgb(0 0 0 / 0.1)",
		"lg", "0px 1px 2px rgb(0 0 0 / 0.1), 0px 3px 2px rgb(0 0 0 / 0.1), 0px 4px 8px rgb(0 0 0 / 0.1)",
		"none", "none").open().since(V4))

	// Backgrounds
	add(bind("bg", CategoryBackground, "background-color").scales(ScaleColor))
	add(bind("bg", CategoryBackground, "background-attachment").same("fixed", "local", "scroll"))
	add(bind("bg", CategoryBackground, "background-position").keywords("bottom", "bottom", "center", "center",
		"left", "left", "left-bottom", "left bottom", "left-top", "left top", "right", "right",
		"right-bottom", "right bottom", "right-top", "right top", "top", "top"))
	add(bind("bg", CategoryBackground, "background-repeat").same("repeat", "no-repeat", "repeat-x", "repeat-y", "repeat-round", "repeat-space"))
	add(bind("bg", CategoryBackground, "background-size").same("auto", "cover", "contain").open())
	add(bind("bg", CategoryBackground, "background-image").same("none").open())
	add(gradient("bg-gradient-to").until(V3))
	add(gradient("bg-linear-to").since(V4))
	add(bind("bg-clip", CategoryBackground, "background-clip").keywords("border", "border-box", "padding", "padding-box",
		"content", "content-box", "text", "text"))
	add(bind("bg-origin", CategoryBackground, "background-origin").keywords("border", "border-box", "padding", "padding-box",
		"content", "content-box"))
	add(bind("bg-blend", CategoryEffect, "background-blend-mode").same(blendModes...))
	add(bind("bg-opacity", CategoryBackground, "--tw-bg-opacity").scales(ScaleOpacity).until(V3))
	add(bind("from", CategoryBackground, "--tw-gradient-from").scales(ScaleColor))
	add(bind("via", CategoryBackground, "--tw-gradient-via").scales(ScaleColor))
	add(bind("to", CategoryBackground, "--tw-gradient-to").scales(ScaleColor))

	// Borders
	add(radiusGroup()...)
	add(borderGroup()...)
	add(bind("border", CategoryBorder, "border-style").same("solid", "dashed", "dotted", "double", "hidden", "none"))
	add(statics(CategoryTable, "border-collapse", "border-collapse", "collapse", "border-separate", "separate")...)
	add(bind("border-spacing", CategoryTable, "border-spacing").scales(ScaleSpacing).since(V3))
	add(bind("border-opacity", CategoryBorder, "--tw-border-opacity").scales(ScaleOpacity).until(V3))
	add(side("divide-x", CategoryBorder, "border-left-width").scales(ScaleBorderWidth).axis(AxisX))
	add(side("divide-y", CategoryBorder, "border-top-width").scales(ScaleBorderWidth).axis(AxisY))
	add(static("divide-x-reverse", CategoryBorder, "--tw-divide-x-reverse", "1"))
	add(static("divide-y-reverse", CategoryBorder, "--tw-divide-y-reverse", "1"))
	add(bind("divide", CategoryBorder, "border-color").scales(ScaleColor))
	add(bind("divide", CategoryBorder, "border-style").same("solid", "dashed", "dotted", "double", "none"))
	add(bind("outline", CategoryBorder, "outline").keywords("none", "2px solid transparent").until(V2))
	add(bind("outline", CategoryBorder, "outline-style").keywords("", "solid", "none", "none").same("dashed", "dotted", "double").since(V3))
	add(bind("outline", CategoryBorder, "outline-width").scales(ScaleOffsetWidth).since(V3))
	add(bind("outline", CategoryBorder, "outline-color").scales(ScaleColor).since(V3))
	add(bind("outline-offset", CategoryBorder, "outline-offset").scales(ScaleOffsetWidth).negative().since(V3))
	add(bind("ring", CategoryBorder, "box-shadow").scales(ScaleRingWidth).format("0 0 0 %s var(--tw-ring-color)"))
	add(bind("ring", CategoryBorder, "--tw-ring-color").scales(ScaleColor))
	add(static("ring-inset", CategoryBorder, "--tw-ring-inset", "inset"))
	add(bind("ring-offset", CategoryBorder, "--tw-ring-offset-width").scales(ScaleOffsetWidth))
	add(bind("ring-offset", CategoryBorder, "--tw-ring-offset-color").scales(ScaleColor))
	add(bind("ring-opacity", CategoryBorder, "--tw-ring-opacity").scales(ScaleOpacity).until(V3))

	// Effects
	add(bind("shadow", CategoryEffect, "box-shadow").scales(ScaleShadow))
	add(bind("shadow", CategoryEffect, "--tw-shadow-color").scales(ScaleColor).since(V3))
	add(bind("opacity", CategoryEffect, "opacity").scales(ScaleOpacity))
	add(bind("mix-blend", CategoryEffect, "mix-blend-mode").same(blendModes...).same("plus-lighter"))

	// Filters
	add(static("filter", CategoryFilter, "filter", "var(--tw-filter)").until(V2))
	add(static("filter-none", CategoryFilter, "filter", "none"))
	add(static("backdrop-filter", CategoryFilter, "backdrop-filter", "var(--tw-backdrop-filter)").until(V2))
	add(filterGroup("", "filter")...)
	add(bind("drop-shadow", CategoryFilter, "filter").scales(ScaleDropShadow).format("drop-shadow(%s)"))
	add(filterGroup("backdrop-", "backdrop-filter")...)
	add(bind("backdrop-opacity", CategoryFilter, "backdrop-filter").scales(ScaleOpacity).format("opacity(%s)"))

	// Tables
	add(statics(CategoryTable, "table-layout", "table-auto", "auto", "table-fixed", "fixed")...)
	add(bind("caption", CategoryTable, "caption-side").same("top", "bottom").since(V3))

	// Transitions & animation
	add(bind("transition", CategoryTransition, "transition-property").keywords(
		"", "color, background-color, border-color, text-decoration-color, fill, stroke, opacity, box-shadow, transform, filter, backdrop-filter",
		"none", "none", "all", "all",
		"colors", "color, background-color, border-color, text-decoration-color, fill, stroke",
		"opacity", "opacity", "shadow", "box-shadow", "transform", "transform").open())
	add(bind("duration", CategoryTransition, "transition-duration").scales(ScaleDuration))
	add(bind("delay", CategoryTransition, "transition-delay").scales(ScaleDuration))
	add(bind("ease", CategoryTransition, "transition-timing-function").keywords("linear", "linear",
		"in", "cubic-bezier(0.4, 0, 1, 1)", "out", "cubic-bezier(0, 0, 0.2, 1)", "in-out", "cubic-bezier(0.4, 0, 0.2, 1)").open())
	add(bind("animate", CategoryTransition, "animation").scales(ScaleAnimation))

	// Transforms
	add(bind("scale", CategoryTransform, "transform").scales(ScaleTransformScale).format("scale(%s)").negative())
	add(side("scale-x", CategoryTransform, "transform").scales(ScaleTransformScale).format("scaleX(%s)").axis(AxisX).negative())
	add(side("scale-y", CategoryTransform, "transform").scales(ScaleTransformScale).format("scaleY(%s)").axis(AxisY).negative())
	add(bind("rotate", CategoryTransform, "transform").scales(ScaleRotate).format("rotate(%s)").negative())
	add(side("translate-x", CategoryTransform, "transform").scales(ScaleSpacing, ScaleFraction).format("translateX(%s)").axis(AxisX).negative())
	add(side("translate-y", CategoryTransform, "transform").scales(ScaleSpacing, ScaleFraction).format("translateY(%s)").axis(AxisY).negative())
	add(side("skew-x", CategoryTransform, "transform").scales(ScaleSkew).format("skewX(%s)").axis(AxisX).negative())
	add(side("skew-y", CategoryTransform, "transform").scales(ScaleSkew).format("skewY(%s)").axis(AxisY).negative())
	add(bind("origin", CategoryTransform, "transform-origin").keywords("center", "center", "top", "top",
		"top-right", "top right", "right", "right", "bottom-right", "bottom right", "bottom", "bottom",
		"bottom-left", "bottom left", "left", "left", "top-left", "top left").open())
	add(static("transform", CategoryTransform, "transform", "var(--tw-transform)").until(V2))
	add(static("transform-gpu", CategoryTransform, "transform", "translate3d(var(--tw-translate-x), var(--tw-translate-y), 0)"))
	add(static("transform-none", CategoryTransform, "transform", "none"))
	add(bind("perspective", CategoryTransform, "perspective").keywords("dramatic", "100px", "near", "300px",
		"normal", "500px", "midrange", "800px", "distant", "1200px", "none", "none").open().since(V4))
	add(static("transform-3d", CategoryTransform, "transform-style", "preserve-3d").since(V4))

	// Interactivity
	add(bind("cursor", CategoryInteractivity, "cursor").same("auto", "default", "pointer", "wait", "text", "move",
		"help", "not-allowed", "none", "context-menu", "progress", "cell", "crosshair", "vertical-text", "alias",
		"copy", "no-drop", "grab", "grabbing", "all-scroll", "col-resize", "row-resize", "zoom-in", "zoom-out").open())
	add(bind("pointer-events", CategoryInteractivity, "pointer-events").same("none", "auto"))
	add(bind("resize", CategoryInteractivity, "resize").keywords("", "both", "none", "none", "x", "horizontal", "y", "vertical"))
	add(bind("select", CategoryInteractivity, "user-select").same("none", "text", "all", "auto"))
	add(bind("scroll", CategoryInteractivity, "scroll-behavior").same("auto", "smooth"))
	add(bind("scroll-m", CategoryInteractivity, "scroll-margin").scales(ScaleSpacing).negative().since(V3))
	add(bind("scroll-p", CategoryInteractivity, "scroll-padding").scales(ScaleSpacing).since(V3))
	add(bind("snap", CategoryInteractivity, "scroll-snap-align").keywords("start", "start", "end", "end", "center", "center", "align-none", "none").since(V3))
	add(bind("snap", CategoryInteractivity, "scroll-snap-type").keywords("none", "none", "x", "x var(--tw-scroll-snap-strictness)",
		"y", "y var(--tw-scroll-snap-strictness)", "both", "both var(--tw-scroll-snap-strictness)").since(V3))
	add(bind("snap", CategoryInteractivity, "--tw-scroll-snap-strictness").same("mandatory", "proximity").since(V3))
	add(bind("appearance", CategoryInteractivity, "appearance").same("none"))
	add(bind("appearance", CategoryInteractivity, "appearance").same("auto").since(V3))
	add(bind("accent", CategoryInteractivity, "accent-color").scales(ScaleColor).same("auto").since(V3))
	add(bind("caret", CategoryInteractivity, "caret-color").scales(ScaleColor).since(V3))
	add(bind("will-change", CategoryInteractivity, "will-change").keywords("auto", "auto", "scroll", "scroll-position",
		"contents", "contents", "transform", "transform").open())
	add(bind("touch", CategoryInteractivity, "touch-action").same("auto", "none", "pan-x", "pan-y", "manipulation").since(V3))

	// SVG
	add(bind("fill", CategorySVG, "fill").scales(ScaleColor).same("none"))
	add(bind("stroke", CategorySVG, "stroke").scales(ScaleColor).same("none"))
	add(bind("stroke", CategorySVG, "stroke-width").scales(ScaleStrokeWidth))

	// Accessibility
	add(static("sr-only", CategoryAccessibility, "position", "absolute", "width", "1px", "height", "1px",
		"padding", "0", "margin", "-1px", "overflow", "hidden", "clip", "rect(0, 0, 0, 0)",
		"white-space", "nowrap", "border-width", "0"))
	add(static("not-sr-only", CategoryAccessibility, "position", "static", "width", "auto", "height", "auto",
		"padding", "0", "margin", "0", "overflow", "visible", "clip", "auto", "white-space", "normal"))
	add(bind("forced-color-adjust", CategoryAccessibility, "forced-color-adjust").same("auto", "none").since(V3))
	return b
}()

// bindingTable indexes the bindings active for one version.
type bindingTable struct {
	all      []PropertyBinding
	byPrefix map[string][]PropertyBinding
	prefixes []string // longest first
}

func newBindingTable(v Version) *bindingTable {
	t := &bindingTable{byPrefix: make(map[string][]PropertyBinding)}
	for _, b := range coreBindings {
		if !b.active(v) {
			continue
		}
		t.all = append(t.all, b)
		if _, ok := t.byPrefix[b.Prefix]; !ok {
			t.prefixes = append(t.prefixes, b.Prefix)
		}
		t.byPrefix[b.Prefix] = append(t.byPrefix[b.Prefix], b)
	}
	sort.SliceStable(t.prefixes, func(i, j int) bool {
		return len(t.prefixes[i]) > len(t.prefixes[j])
	})
	return t
}

var bindingTables = map[Version]func() *bindingTable{
	V2: sync.OnceValue(func() *bindingTable { return newBindingTable(V2) }),
	V3: sync.OnceValue(func() *bindingTable { return newBindingTable(V3) }),
	V4: sync.OnceValue(func() *bindingTable { return newBindingTable(V4) }),
}

// bindingsFor returns the shared, read-only table for a version.
func bindingsFor(v Version) *bindingTable {
	return bindingTables[v.orDefault()]()
}

// Bindings lists the bindings active for a version in table order.
func Bindings(v Version) []PropertyBinding {
	return append([]PropertyBinding(nil), bindingsFor(v).all...)
}

func (t *bindingTable) lookup(prefix string) []PropertyBinding {
	return t.byPrefix[prefix]
}
