package tw

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var shadeKeys = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

// Hex values per family, ordered by shadeKeys.
var paletteHex = []struct {
	name string
	hex  []string
}{
	{"slate", []string{"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a", "#020617"}},
	{"gray", []string{"#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af", "#6b7280", "#4b5563", "#374151", "#1f2937", "#111827", "#030712"}},
	{"zinc", []string{"#fafafa", "#f4f4f5", "#e4e4e7", "#d4d4d8", "#a1a1aa", "#71717a", "#52525b", "#3f3f46", "#27272a", "#18181b", "#09090b"}},
	{"neutral", []string{"#fafafa", "#f5f5f5", "#e5e5e5", "#d4d4d4", "#a3a3a3", "#737373", "#525252", "#404040", "#262626", "#171717", "#0a0a0a"}},
	{"stone", []string{"#fafaf9", "#f5f5f4", "#e7e5e4", "#d6d3d1", "#a8a29e", "#78716c", "#57534e", "#44403c", "#292524", "#1c1917", "#0c0a09"}},
	{"red", []string{"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d", "#450a0a"}},
	{"orange", []string{"#fff7ed", "#ffedd5", "#fed7aa", "#fdba74", "#fb923c", "#f97316", "#ea580c", "#c2410c", "#9a3412", "#7c2d12", "#431407"}},
	{"amber", []string{"#fffbeb", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24", "#f59e0b", "#d97706", "#b45309", "#92400e", "#78350f", "#451a03"}},
	{"yellow", []string{"#fefce8", "#fef9c3", "#fef08a", "#fde047", "#facc15", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12", "#422006"}},
	{"lime", []string{"#f7fee7", "#ecfccb", "#d9f99d", "#bef264", "#a3e635", "#84cc16", "#65a30d", "#4d7c0f", "#3f6212", "#365314", "#1a2e05"}},
	{"green", []string{"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d", "#052e16"}},
	{"emerald", []string{"#ecfdf5", "#d1fae5", "#a7f3d0", "#6ee7b7", "#34d399", "#10b981", "#059669", "#047857", "#065f46", "#064e3b", "#022c22"}},
	{"teal", []string{"#f0fdfa", "#ccfbf1", "#99f6e4", "#5eead4", "#2dd4bf", "#14b8a6", "#0d9488", "#0f766e", "#115e59", "#134e4a", "#042f2e"}},
	{"cyan", []string{"#ecfeff", "#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee", "#06b6d4", "#0891b2", "#0e7490", "#155e75", "#164e63", "#083344"}},
	{"sky", []string{"#f0f9ff", "#e0f2fe", "#bae6fd", "#7dd3fc", "#38bdf8", "#0ea5e9", "#0284c7", "#0369a1", "#075985", "#0c4a6e", "#082f49"}},
	{"blue", []string{"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a", "#172554"}},
	{"indigo", []string{"#eef2ff", "#e0e7ff", "#c7d2fe", "#a5b4fc", "#818cf8", "#6366f1", "#4f46e5", "#4338ca", "#3730a3", "#312e81", "#1e1b4b"}},
	{"violet", []string{"#f5f3ff", "#ede9fe", "#ddd6fe", "#c4b5fd", "#a78bfa", "#8b5cf6", "#7c3aed", "#6d28d9", "#5b21b6", "#4c1d95", "#2e1065"}},
	{"purple", []string{"#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc", "#a855f7", "#9333ea", "#7e22ce", "#6b21a8", "#581c87", "#3b0764"}},
	{"fuchsia", []string{"#fdf4ff", "#fae8ff", "#f5d0fe", "#f0abfc", "#e879f9", "#d946ef", "#c026d3", "#a21caf", "#86198f", "#701a75", "#4a044e"}},
	{"pink", []string{"#fdf2f8", "#fce7f3", "#fbcfe8", "#f9a8d4", "#f472b6", "#ec4899", "#db2777", "#be185d", "#9d174d", "#831843", "#500724"}},
	{"rose", []string{"#fff1f2", "#ffe4e6", "#fecdd3", "#fda4af", "#fb7185", "#f43f5e", "#e11d48", "#be123c", "#9f1239", "#881337", "#4c0519"}},
}

// v2 shipped eight families under its own names; each maps onto the hex
// ramp of the modern family it was later renamed to.
var v2Families = []struct{ name, source string }{
	{"gray", "gray"},
	{"red", "red"},
	{"yellow", "amber"},
	{"green", "emerald"},
	{"blue", "blue"},
	{"indigo", "indigo"},
	{"purple", "violet"},
	{"pink", "pink"},
}

type colorShade struct {
	key   string // "500", or "DEFAULT" for single-value colours
	value string
}

type colorFamily struct {
	name   string
	shades []colorShade
}

// special reports whether the family is a shadeless keyword colour.
func (f colorFamily) special() bool {
	return len(f.shades) == 1 && f.shades[0].key == "DEFAULT"
}

// palette is an ordered set of colour families with a flat token lookup
// ("red-500", "white", "brand" for DEFAULT shades).
type palette struct {
	families []colorFamily
	lookup   map[string]string
}

func newPalette(families []colorFamily) *palette {
	p := &palette{families: families, lookup: make(map[string]string)}
	for _, f := range families {
		for _, s := range f.shades {
			p.lookup[colorToken(f.name, s.key)] = s.value
		}
	}
	return p
}

func colorToken(family, shade string) string {
	if shade == "" || shade == "DEFAULT" {
		return family
	}
	return family + "-" + shade
}

func specialColors(v Version) []colorFamily {
	specials := []colorFamily{
		{name: "transparent", shades: []colorShade{{"DEFAULT", "transparent"}}},
		{name: "current", shades: []colorShade{{"DEFAULT", "currentColor"}}},
		{name: "black", shades: []colorShade{{"DEFAULT", "#000000"}}},
		{name: "white", shades: []colorShade{{"DEFAULT", "#ffffff"}}},
	}
	if v >= V3 {
		specials = append([]colorFamily{{name: "inherit", shades: []colorShade{{"DEFAULT", "inherit"}}}}, specials...)
	}
	return specials
}

// defaultPalette returns the built-in palette for a version.
func defaultPalette(v Version) *palette {
	families := specialColors(v)
	if v == V2 {
		for _, m := range v2Families {
			for _, src := range paletteHex {
				if src.name != m.source {
					continue
				}
				// v2 has no 950 step.
				families = append(families, rampFamily(m.name, src.hex[:len(src.hex)-1]))
			}
		}
		return newPalette(families)
	}
	for _, src := range paletteHex {
		families = append(families, rampFamily(src.name, src.hex))
	}
	return newPalette(families)
}

func rampFamily(name string, hex []string) colorFamily {
	f := colorFamily{name: name, shades: make([]colorShade, 0, len(hex))}
	for i, h := range hex {
		f.shades = append(f.shades, colorShade{key: shadeKeys[i], value: h})
	}
	return f
}

// overlay applies the theme colours to the built-in families. A family
// the theme replaces takes the place of the built-in one whole; an
// extended family keeps the built-in shades it does not override. Families
// the palette does not have are appended in name order.
func (p *palette) overlay(colors map[string]ColorValue, replaces func(family string) bool) *palette {
	if len(colors) == 0 {
		return p
	}
	families := make([]colorFamily, 0, len(p.families)+len(colors))
	seen := make(map[string]bool, len(colors))
	for _, f := range p.families {
		cv, ok := colors[f.name]
		switch {
		case !ok:
			families = append(families, f)
			continue
		case replaces(f.name):
			families = append(families, themeFamily(f.name, cv))
		default:
			families = append(families, extendFamily(f, cv))
		}
		seen[f.name] = true
	}
	for _, name := range sortedKeys(colors) {
		if !seen[name] {
			families = append(families, themeFamily(name, colors[name]))
		}
	}
	return newPalette(families)
}

// extendFamily merges theme shades over a built-in family.
func extendFamily(f colorFamily, cv ColorValue) colorFamily {
	shades := make(map[string]string, len(f.shades)+len(cv.Shades)+1)
	for _, s := range f.shades {
		shades[s.key] = s.value
	}
	if len(cv.Shades) == 0 {
		shades["DEFAULT"] = cv.Value
	}
	for k, v := range cv.Shades {
		shades[k] = v
	}
	out := colorFamily{name: f.name}
	for _, key := range sortShadeKeys(shades) {
		out.shades = append(out.shades, colorShade{key: key, value: shades[key]})
	}
	return out
}

func themeFamily(name string, cv ColorValue) colorFamily {
	f := colorFamily{name: name}
	if len(cv.Shades) == 0 {
		f.shades = []colorShade{{"DEFAULT", cv.Value}}
		return f
	}
	for _, key := range sortShadeKeys(cv.Shades) {
		f.shades = append(f.shades, colorShade{key: key, value: cv.Shades[key]})
	}
	return f
}

// sortShadeKeys orders numeric shades numerically, DEFAULT first, and any
// named shades after the numbers.
func sortShadeKeys(shades map[string]string) []string {
	keys := sortedKeys(shades)
	num := func(s string) (int, bool) {
		n, err := strconv.Atoi(s)
		return n, err == nil
	}
	rank := func(s string) int {
		if s == "DEFAULT" {
			return 0
		}
		if _, ok := num(s); ok {
			return 1
		}
		return 2
	}
	sort.SliceStable(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		ra, rb := rank(a), rank(b)
		if ra != rb {
			return ra < rb
		}
		if ra == 1 {
			na, _ := num(a)
			nb, _ := num(b)
			return na < nb
		}
		return a < b
	})
	return keys
}

func (p *palette) get(token string) (string, bool) {
	v, ok := p.lookup[token]
	return v, ok
}

// PaletteColor returns the built-in colour for a family and shade, e.g.
// PaletteColor(V3, "slate", "500") == "#64748b".
func PaletteColor(v Version, family, shade string) (string, bool) {
	return defaultPalette(v.orDefault()).get(colorToken(family, shade))
}

// withAlpha applies an opacity modifier to a colour value. Hex colours are
// expanded to rgb() with an alpha channel; other values are wrapped in
// color-mix so keywords like currentColor still work.
func withAlpha(value string, alpha float64) string {
	if alpha >= 1 {
		return value
	}
	if value == "transparent" {
		return value
	}
	a := strconv.FormatFloat(alpha, 'f', -1, 64)
	if c, err := colorful.Hex(value); err == nil {
		r, g, b := c.RGB255()
		return fmt.Sprintf("rgb(%d %d %d / %s)", r, g, b, a)
	}
	return fmt.Sprintf("color-mix(in srgb, %s %s%%, transparent)", value, strconv.FormatFloat(alpha*100, 'f', -1, 64))
}

// parseAlpha reads an opacity modifier: "50" means 0.5, "[0.35]" is taken
// literally. Only integers 0-100 are accepted unbracketed.
func parseAlpha(mod string) (float64, bool) {
	if strings.HasPrefix(mod, "[") && strings.HasSuffix(mod, "]") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(mod[1:len(mod)-1], "%"), 64)
		if err != nil || f < 0 {
			return 0, false
		}
		if strings.HasSuffix(mod, "%]") || f > 1 {
			f /= 100
		}
		return f, f <= 1
	}
	n, err := strconv.Atoi(mod)
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return float64(n) / 100, true
}

var namedCSSColors = map[string]bool{
	"transparent": true, "currentcolor": true, "black": true, "white": true, "red": true,
	"green": true, "blue": true, "yellow": true, "orange": true, "purple": true, "pink": true,
	"gray": true, "grey": true, "silver": true, "maroon": true, "navy": true, "teal": true,
	"olive": true, "lime": true, "aqua": true, "fuchsia": true, "cyan": true, "magenta": true,
	"rebeccapurple": true, "tomato": true, "coral": true, "gold": true, "indigo": true,
}

var colorFunctions = []string{"rgb(", "rgba(", "hsl(", "hsla(", "hwb(", "lab(", "lch(", "oklab(", "oklch(", "color(", "color-mix("}

// isColorValue reports whether an arbitrary value reads as a colour.
func isColorValue(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	if strings.HasPrefix(v, "#") {
		// colorful only understands #rgb and #rrggbb; #rgba/#rrggbbaa are
		// still colours.
		if _, err := colorful.Hex(v); err == nil {
			return true
		}
		return (len(v) == 5 || len(v) == 9) && isHexDigits(v[1:])
	}
	for _, fn := range colorFunctions {
		if strings.HasPrefix(v, fn) {
			return true
		}
	}
	return namedCSSColors[v]
}

func isHexDigits(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return s != ""
}
