package tw

import (
	"fmt"
	"strconv"
	"strings"
)

// ScaleKind names the value table a binding resolves its tokens against.
type ScaleKind int

const (
	ScaleNone ScaleKind = iota
	ScaleSpacing
	ScaleFraction
	ScaleColor
	ScaleFontSize
	ScaleFontWeight
	ScaleFontFamily
	ScaleLineHeight
	ScaleTracking
	ScaleRadius
	ScaleBorderWidth
	ScaleRingWidth
	ScaleOffsetWidth
	ScaleOpacity
	ScaleShadow
	ScaleDropShadow
	ScaleZIndex
	ScaleRotate
	ScaleTransformScale
	ScaleSkew
	ScaleDuration
	ScaleAnimation
	ScaleBlur
	ScaleFilterPercent
	ScaleGridTemplate
	ScaleGridSpan
	ScaleGridLine
	ScaleOrder
	ScaleMaxWidth
	ScaleColumns
	ScaleLineClamp
	ScaleStrokeWidth
	ScaleFlexGrow
)

var scaleNames = map[ScaleKind]string{
	ScaleSpacing:        "spacing",
	ScaleFraction:       "fraction",
	ScaleColor:          "color",
	ScaleFontSize:       "fontSize",
	ScaleFontWeight:     "fontWeight",
	ScaleFontFamily:     "fontFamily",
	ScaleLineHeight:     "lineHeight",
	ScaleTracking:       "letterSpacing",
	ScaleRadius:         "borderRadius",
	ScaleBorderWidth:    "borderWidth",
	ScaleRingWidth:      "ringWidth",
	ScaleOffsetWidth:    "offsetWidth",
	ScaleOpacity:        "opacity",
	ScaleShadow:         "boxShadow",
	ScaleDropShadow:     "dropShadow",
	ScaleZIndex:         "zIndex",
	ScaleRotate:         "rotate",
	ScaleTransformScale: "scale",
	ScaleSkew:           "skew",
	ScaleDuration:       "duration",
	ScaleAnimation:      "animation",
	ScaleBlur:           "blur",
	ScaleFilterPercent:  "filterPercent",
	ScaleGridTemplate:   "gridTemplate",
	ScaleGridSpan:       "gridSpan",
	ScaleGridLine:       "gridLine",
	ScaleOrder:          "order",
	ScaleMaxWidth:       "maxWidth",
	ScaleColumns:        "columns",
	ScaleLineClamp:      "lineClamp",
	ScaleStrokeWidth:    "strokeWidth",
	ScaleFlexGrow:       "flexGrow",
}

func (k ScaleKind) String() string {
	if n, ok := scaleNames[k]; ok {
		return n
	}
	return "none"
}

// scale is an ordered token -> CSS value table.
type scale struct {
	keys   []string
	values map[string]string
}

func newScale(pairs ...string) *scale {
	s := &scale{values: make(map[string]string, len(pairs)/2)}
	for i := 0; i+1 < len(pairs); i += 2 {
		s.set(pairs[i], pairs[i+1])
	}
	return s
}

func (s *scale) set(key, value string) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

func (s *scale) get(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s.values[key]
	return v, ok
}

func (s *scale) clone() *scale {
	out := &scale{keys: append([]string(nil), s.keys...), values: make(map[string]string, len(s.values))}
	for k, v := range s.values {
		out.values[k] = v
	}
	return out
}

// with returns a copy where overlay entries replace or extend the table.
// New keys are appended in name order.
func (s *scale) with(overlay map[string]string) *scale {
	if len(overlay) == 0 {
		return s
	}
	out := s.clone()
	for _, k := range sortedKeys(overlay) {
		out.set(k, overlay[k])
	}
	return out
}

func (s *scale) len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// rem renders n quarter-rem steps: 4 -> "1rem", 0.5 -> "0.125rem".
func rem(steps float64) string {
	return strconv.FormatFloat(steps*0.25, 'f', -1, 64) + "rem"
}

func spacingScale(v Version) *scale {
	s := newScale("0", "0px", "px", "1px")
	steps := []float64{0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4, 5, 6, 7, 8, 9, 10, 11, 12, 14, 16, 20, 24, 28, 32, 36, 40, 44, 48, 52, 56, 60, 64, 72, 80, 96}
	for _, n := range steps {
		if v == V2 && n > 64 {
			continue
		}
		s.set(strconv.FormatFloat(n, 'f', -1, 64), rem(n))
	}
	return s
}

func fractionScale() *scale {
	s := newScale()
	for _, d := range []int{2, 3, 4, 5, 6, 12} {
		for n := 1; n < d; n++ {
			pct := strconv.FormatFloat(float64(n)*100/float64(d), 'f', 6, 64)
			pct = strings.TrimRight(strings.TrimRight(pct, "0"), ".")
			s.set(fmt.Sprintf("%d/%d", n, d), pct+"%")
		}
	}
	s.set("full", "100%")
	return s
}

var fontSizeSteps = []struct{ key, size, lineHeight string }{
	{"xs", "0.75rem", "1rem"},
	{"sm", "0.875rem", "1.25rem"},
	{"base", "1rem", "1.5rem"},
	{"lg", "1.125rem", "1.75rem"},
	{"xl", "1.25rem", "1.75rem"},
	{"2xl", "1.5rem", "2rem"},
	{"3xl", "1.875rem", "2.25rem"},
	{"4xl", "2.25rem", "2.5rem"},
	{"5xl", "3rem", "1"},
	{"6xl", "3.75rem", "1"},
	{"7xl", "4.5rem", "1"},
	{"8xl", "6rem", "1"},
	{"9xl", "8rem", "1"},
}

func fontSizeScale(v Version) (*scale, map[string]string) {
	s := newScale()
	lh := make(map[string]string, len(fontSizeSteps))
	for _, f := range fontSizeSteps {
		if v == V2 && (f.key == "8xl" || f.key == "9xl") {
			continue
		}
		s.set(f.key, f.size)
		lh[f.key] = f.lineHeight
	}
	return s, lh
}

func borderWidthScale(def string) *scale {
	return newScale("DEFAULT", def, "0", "0px", "2", "2px", "4", "4px", "8", "8px")
}

func opacityScale(v Version) *scale {
	steps := []int{0, 5, 10, 20, 25, 30, 40, 50, 60, 70, 75, 80, 90, 95, 100}
	switch v {
	case V3:
		steps = []int{0, 5, 10, 15, 20, 25, 30, 35, 40, 45, 50, 55, 60, 65, 70, 75, 80, 85, 90, 95, 100}
	case V4:
		steps = steps[:0]
		for n := 0; n <= 100; n += 5 {
			steps = append(steps, n)
		}
	}
	s := newScale()
	for _, n := range steps {
		s.set(strconv.Itoa(n), strconv.FormatFloat(float64(n)/100, 'f', -1, 64))
	}
	return s
}

func radiusScale(v Version) *scale {
	if v == V4 {
		return newScale("none", "0", "xs", "0.125rem", "sm", "0.25rem", "DEFAULT", "0.25rem", "md", "0.375rem",
			"lg", "0.5rem", "xl", "0.75rem", "2xl", "1rem", "3xl", "1.5rem", "4xl", "2rem", "full", "9999px")
	}
	return newScale("none", "0px", "sm", "0.125rem", "DEFAULT", "0.25rem", "md", "0.375rem",
		"lg", "0.5rem", "xl", "0.75rem", "2xl", "1rem", "3xl", "1.5rem", "full", "9999px")
}

func shadowScale(v Version) *scale {
	if v == V4 {
		return newScale(
			"2xs", "0 1px rgb(0 0 0 / 0.05)",
			"xs", "0 1px 2px 0 rgb(0 0 0 / 0.05)",
			"sm", "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)",
			"DEFAULT", "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)",
			"md", "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)",
			"lg", "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)",
			"xl", "0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)",
			"2xl", "0 25px 50px -12px rgb(0 0 0 / 0.25)",
			"inner", "inset 0 2px 4px 0 rgb(0 0 0 / 0.05)",
			"none", "0 0 #0000",
		)
	}
	return newScale(
		"sm", "0 1px 2px 0 rgb(0 0 0 / 0.05)",
		"DEFAULT", "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)",
		"md", "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)",
		"lg", "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)",
		"xl", "0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)",
		"2xl", "0 25px 50px -12px rgb(0 0 0 / 0.25)",
		"inner", "inset 0 2px 4px 0 rgb(0 0 0 / 0.05)",
		"none", "0 0 #0000",
	)
}

func blurScale(v Version) *scale {
	if v == V4 {
		return newScale("none", "0", "xs", "4px", "sm", "8px", "DEFAULT", "8px", "md", "12px",
			"lg", "16px", "xl", "24px", "2xl", "40px", "3xl", "64px")
	}
	return newScale("none", "0", "sm", "4px", "DEFAULT", "8px", "md", "12px", "lg", "16px",
		"xl", "24px", "2xl", "40px", "3xl", "64px")
}

func maxWidthScale(v Version, screens []Screen) *scale {
	s := newScale("none", "none", "0", "0rem", "xs", "20rem", "sm", "24rem", "md", "28rem", "lg", "32rem",
		"xl", "36rem", "2xl", "42rem", "3xl", "48rem", "4xl", "56rem", "5xl", "64rem", "6xl", "72rem",
		"7xl", "80rem", "full", "100%", "min", "min-content", "max", "max-content", "prose", "65ch")
	if v >= V3 {
		s.set("fit", "fit-content")
	}
	if v < V4 {
		for _, sc := range screens {
			if sc.Min != "" {
				s.set("screen-"+sc.Name, sc.Min)
			}
		}
	}
	return s
}

func numberedScale(from, to int, format func(n int) string) *scale {
	s := newScale()
	for n := from; n <= to; n++ {
		s.set(strconv.Itoa(n), format(n))
	}
	return s
}

func listScale(format string, keys ...int) *scale {
	s := newScale()
	for _, n := range keys {
		s.set(strconv.Itoa(n), fmt.Sprintf(format, n))
	}
	return s
}

func scaleTransform(keys ...int) *scale {
	s := newScale()
	for _, n := range keys {
		s.set(strconv.Itoa(n), strconv.FormatFloat(float64(n)/100, 'f', -1, 64))
	}
	return s
}

// defaultTables builds every built-in table for a version. Screens feed the
// max-w-screen-* entries.
func defaultTables(v Version, screens []Screen) map[ScaleKind]*scale {
	fontSizes, _ := fontSizeScale(v)
	durations := []int{75, 100, 150, 200, 300, 500, 700, 1000}
	if v >= V3 {
		durations = append([]int{0}, durations...)
	}
	ring := "3px"
	if v == V4 {
		ring = "1px"
	}
	t := map[ScaleKind]*scale{
		ScaleSpacing:  spacingScale(v),
		ScaleFraction: fractionScale(),
		ScaleFontSize: fontSizes,
		ScaleFontWeight: newScale("thin", "100", "extralight", "200", "light", "300", "normal", "400",
			"medium", "500", "semibold", "600", "bold", "700", "extrabold", "800", "black", "900"),
		ScaleFontFamily: newScale(
			"sans", `ui-sans-serif, system-ui, sans-serif, "Apple Color Emoji", "Segoe UI Emoji", "Segoe UI Symbol", "Noto Color Emoji"`,
			"serif", `ui-serif, Georgia, Cambria, "Times New Roman", Times, serif`,
			"mono", `ui-monospace, SFMono-Regular, Menlo, Monaco, Consolas, "Liberation Mono", "Courier New", monospace`,
		),
		ScaleLineHeight: newScale("none", "1", "tight", "1.25", "snug", "1.375", "normal", "1.5",
			"relaxed", "1.625", "loose", "2", "3", ".75rem", "4", "1rem", "5", "1.25rem", "6", "1.5rem",
			"7", "1.75rem", "8", "2rem", "9", "2.25rem", "10", "2.5rem"),
		ScaleTracking: newScale("tighter", "-0.05em", "tight", "-0.025em", "normal", "0em",
			"wide", "0.025em", "wider", "0.05em", "widest", "0.1em"),
		ScaleRadius:         radiusScale(v),
		ScaleBorderWidth:    borderWidthScale("1px"),
		ScaleRingWidth:      borderWidthScale(ring).with(map[string]string{"1": "1px"}),
		ScaleOffsetWidth:    newScale("0", "0px", "1", "1px", "2", "2px", "4", "4px", "8", "8px"),
		ScaleOpacity:        opacityScale(v),
		ScaleShadow:         shadowScale(v),
		ScaleDropShadow:     newScale("sm", "0 1px 1px rgb(0 0 0 / 0.05)", "DEFAULT", "0 1px 2px rgb(0 0 0 / 0.1)", "md", "0 4px 3px rgb(0 0 0 / 0.07)", "lg", "0 10px 8px rgb(0 0 0 / 0.04)", "xl", "0 20px 13px rgb(0 0 0 / 0.03)", "2xl", "0 25px 25px rgb(0 0 0 / 0.15)", "none", "0 0 #0000"),
		ScaleZIndex:         listScale("%d", 0, 10, 20, 30, 40, 50).with(map[string]string{"auto": "auto"}),
		ScaleRotate:         listScale("%ddeg", 0, 1, 2, 3, 6, 12, 45, 90, 180),
		ScaleTransformScale: scaleTransform(0, 50, 75, 90, 95, 100, 105, 110, 125, 150),
		ScaleSkew:           listScale("%ddeg", 0, 1, 2, 3, 6, 12),
		ScaleDuration:       listScale("%dms", durations...),
		ScaleAnimation: newScale("none", "none", "spin", "spin 1s linear infinite",
			"ping", "ping 1s cubic-bezier(0, 0, 0.2, 1) infinite",
			"pulse", "pulse 2s cubic-bezier(0.4, 0, 0.6, 1) infinite",
			"bounce", "bounce 1s infinite"),
		ScaleBlur:          blurScale(v),
		ScaleFilterPercent: scaleTransform(0, 50, 75, 90, 95, 100, 105, 110, 125, 150, 200),
		ScaleGridTemplate: numberedScale(1, 12, func(n int) string {
			return fmt.Sprintf("repeat(%d, minmax(0, 1fr))", n)
		}),
		ScaleGridSpan: numberedScale(1, 12, func(n int) string {
			return fmt.Sprintf("span %d / span %d", n, n)
		}),
		ScaleGridLine: numberedScale(1, 13, strconv.Itoa),
		ScaleOrder:    numberedScale(1, 12, strconv.Itoa),
		ScaleMaxWidth: maxWidthScale(v, screens),
		ScaleColumns:  numberedScale(1, 12, strconv.Itoa),
		ScaleLineClamp:   numberedScale(1, 6, strconv.Itoa),
		ScaleStrokeWidth: numberedScale(0, 2, strconv.Itoa),
		ScaleFlexGrow:    newScale("DEFAULT", "1", "0", "0"),
	}
	for _, k := range []string{"3xs", "2xs", "xs", "sm", "md", "lg", "xl", "2xl", "3xl", "4xl", "5xl", "6xl", "7xl"} {
		if w, ok := columnWidths[k]; ok {
			t[ScaleColumns].set(k, w)
		}
	}
	return t
}

var columnWidths = map[string]string{
	"3xs": "16rem", "2xs": "18rem", "xs": "20rem", "sm": "24rem", "md": "28rem", "lg": "32rem",
	"xl": "36rem", "2xl": "42rem", "3xl": "48rem", "4xl": "56rem", "5xl": "64rem", "6xl": "72rem", "7xl": "80rem",
}

// scaleSet is the active set of tables for one theme and version: built-in
// defaults overlaid by the theme's categories, theme entries winning. A
// category the theme replaces starts from an empty table.
type scaleSet struct {
	version     Version
	tables      map[ScaleKind]*scale
	colors      *palette
	lineHeights map[string]string // font-size token -> paired line height
	screens     []Screen
}

func buildScales(theme *Theme, v Version) *scaleSet {
	if theme == nil {
		theme = DefaultTheme(v)
	}
	screens := theme.ActiveScreens(v)
	tables := defaultTables(v, screens)
	_, lineHeights := fontSizeScale(v)

	overlay := func(k ScaleKind, m map[string]string) {
		if theme.Replaces(k.String()) {
			tables[k] = newScale().with(m)
			return
		}
		tables[k] = tables[k].with(m)
	}
	overlay(ScaleSpacing, theme.Spacing)
	overlay(ScaleFontFamily, theme.FontFamily)
	overlay(ScaleFontWeight, theme.FontWeight)
	overlay(ScaleRadius, theme.BorderRadius)
	overlay(ScaleBorderWidth, theme.BorderWidth)
	overlay(ScaleOpacity, theme.Opacity)
	overlay(ScaleShadow, theme.BoxShadow)
	overlay(ScaleAnimation, theme.Animation)
	overlay(ScaleZIndex, theme.ZIndex)
	if theme.Replaces(ScaleFontSize.String()) {
		lineHeights = make(map[string]string, len(theme.FontSize))
	}
	if len(theme.FontSize) > 0 || theme.Replaces(ScaleFontSize.String()) {
		sizes := make(map[string]string, len(theme.FontSize))
		for k, fs := range theme.FontSize {
			sizes[k] = fs.Size
			if fs.LineHeight != "" {
				lineHeights[k] = fs.LineHeight
			} else {
				delete(lineHeights, k)
			}
		}
		overlay(ScaleFontSize, sizes)
	}
	return &scaleSet{
		version:     v,
		tables:      tables,
		colors:      defaultPalette(v).overlay(theme.Colors, theme.ReplacesColor),
		lineHeights: lineHeights,
		screens:     screens,
	}
}

func (s *scaleSet) table(k ScaleKind) *scale {
	return s.tables[k]
}

// lookup resolves a token against one scale kind, including the dynamic
// numeric values v4 accepts without a table entry.
func (s *scaleSet) lookup(k ScaleKind, token string) (string, bool) {
	if k == ScaleColor {
		return s.colors.get(token)
	}
	if v, ok := s.tables[k].get(token); ok {
		return v, true
	}
	if s.version == V4 {
		return dynamicValue(k, token)
	}
	return "", false
}

func dynamicValue(k ScaleKind, token string) (string, bool) {
	switch k {
	case ScaleSpacing:
		f, err := strconv.ParseFloat(token, 64)
		if err != nil || f < 0 || f*4 != float64(int(f*4)) {
			return "", false
		}
		return rem(f), true
	case ScaleOpacity:
		n, err := strconv.Atoi(token)
		if err != nil || n < 0 || n > 100 {
			return "", false
		}
		return strconv.FormatFloat(float64(n)/100, 'f', -1, 64), true
	case ScaleGridTemplate:
		n, err := strconv.Atoi(token)
		if err != nil || n < 1 {
			return "", false
		}
		return fmt.Sprintf("repeat(%d, minmax(0, 1fr))", n), true
	case ScaleGridSpan:
		n, err := strconv.Atoi(token)
		if err != nil || n < 1 {
			return "", false
		}
		return fmt.Sprintf("span %d / span %d", n, n), true
	case ScaleZIndex, ScaleOrder, ScaleGridLine, ScaleLineClamp, ScaleColumns:
		n, err := strconv.Atoi(token)
		if err != nil || n < 0 {
			return "", false
		}
		return strconv.Itoa(n), true
	}
	return "", false
}

// keywordValues never get negative variants, whatever scale they sit in.
var keywordValues = map[string]bool{
	"auto": true, "full": true, "px": true, "screen": true, "min": true, "max": true,
	"fit": true, "svh": true, "lvh": true, "dvh": true,
}

// negatable reports whether a scale token may take a leading "-".
func negatable(token string) bool {
	return !keywordValues[token] && token != "DEFAULT"
}
