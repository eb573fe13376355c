package tw

import (
	"strings"
	"sync"
)

// ColorValue is a theme colour: either a single Value or a shade ramp.
// A "DEFAULT" shade is reachable under the bare family name.
type ColorValue struct {
	Value  string
	Shades map[string]string
}

// FontSize pairs a size with its optional default line height.
type FontSize struct {
	Size       string
	LineHeight string
}

// Theme is the effective theme produced by MergeTheme. It is immutable
// once built; every category map holds only the theme's own entries, the
// built-in defaults are overlaid when scales are built.
type Theme struct {
	Colors       map[string]ColorValue
	Spacing      map[string]string
	FontSize     map[string]FontSize
	FontFamily   map[string]string
	FontWeight   map[string]string
	BorderRadius map[string]string
	BorderWidth  map[string]string
	Opacity      map[string]string
	BoxShadow    map[string]string
	Animation    map[string]string
	ZIndex       map[string]string
	Screens      map[string]Screen

	Prefix   string
	DarkMode string
	Plugins  []Plugin
	Version  Version

	// Tree is the merged configuration tree the theme was read from.
	Tree Tree

	replaced       map[string]bool
	replacedColors map[string]bool
	resolver       func() *Resolver
}

// Replaces reports whether the configuration set category outside
// theme.extend, so that its entries take the place of the built-in table.
// Colours are tracked per family by ReplacesColor.
func (t *Theme) Replaces(category string) bool {
	return t != nil && t.replaced[category]
}

// ReplacesColor reports whether the colour family was set outside
// theme.extend. Such a family replaces the built-in family of the same
// name; an extended family adds to or overrides its shades.
func (t *Theme) ReplacesColor(family string) bool {
	return t != nil && t.replacedColors[family]
}

// DefaultTheme is the theme of an empty configuration.
func DefaultTheme(v Version) *Theme {
	return NewTheme(Tree{}, v)
}

// NewTheme reads the typed theme out of a single configuration tree,
// folding its theme.extend section in. Category values of the wrong shape
// are dropped. A "version" key in the tree is used when v is
// VersionUnknown.
func NewTheme(tree Tree, v Version) *Theme {
	acc := Tree{}
	marks := newThemeMarks()
	if tree != nil {
		mergeTree(acc, tree, newOptions(nil), marks)
	}
	return buildTheme(acc, v, marks)
}

func buildTheme(tree Tree, v Version, marks themeMarks) *Theme {
	if v == VersionUnknown {
		if s, ok := asString(tree["version"]); ok {
			v, _ = ParseVersion(s)
		}
	}
	t := &Theme{
		Version:        v.orDefault(),
		Tree:           tree,
		replaced:       marks.categories,
		replacedColors: marks.colors,
	}
	t.resolver = sync.OnceValue(func() *Resolver { return NewResolver(t) })
	if s, ok := asString(tree["prefix"]); ok {
		t.Prefix = s
	}
	t.DarkMode = darkMode(tree["darkMode"])

	th, _ := asMap(tree["theme"])
	t.Colors = readColors(th["colors"])
	t.Spacing = readStrings(th["spacing"])
	t.FontSize = readFontSizes(th["fontSize"])
	t.FontFamily = readFontFamilies(th["fontFamily"])
	t.FontWeight = readStrings(th["fontWeight"])
	t.BorderRadius = readStrings(th["borderRadius"])
	t.BorderWidth = readStrings(th["borderWidth"])
	t.Opacity = readStrings(th["opacity"])
	t.BoxShadow = readStrings(th["boxShadow"])
	t.Animation = readStrings(th["animation"])
	t.ZIndex = readStrings(th["zIndex"])
	t.Screens = readScreens(th["screens"])

	if list, ok := tree["plugins"].([]any); ok {
		for _, item := range list {
			if p, ok := pluginFromTree(item); ok {
				t.Plugins = append(t.Plugins, p)
			}
		}
	}
	return t
}

// darkMode accepts "media", "class", "selector" or the ["class", ".dark"] form.
func darkMode(v any) string {
	if s, ok := asString(v); ok && s != "" {
		return s
	}
	if l, ok := v.([]any); ok && len(l) > 0 {
		if s, ok := asString(l[0]); ok {
			return s
		}
	}
	return "media"
}

func readStrings(v any) map[string]string {
	m, ok := asMap(v)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, val := range m {
		if s, ok := asString(val); ok {
			out[k] = s
		}
	}
	return out
}

// readColors flattens nested colour objects: {brand: {light: {100: x}}}
// becomes the family "brand-light" with shade 100.
func readColors(v any) map[string]ColorValue {
	m, ok := asMap(v)
	if !ok {
		return nil
	}
	out := make(map[string]ColorValue, len(m))
	var walk func(prefix string, m Tree)
	walk = func(prefix string, m Tree) {
		for name, val := range m {
			full := name
			if prefix != "" {
				full = prefix + "-" + name
			}
			if s, ok := asString(val); ok {
				if prefix == "" {
					out[full] = ColorValue{Value: s}
				}
				continue
			}
			sub, ok := asMap(val)
			if !ok {
				continue
			}
			cv := ColorValue{Shades: make(map[string]string)}
			for shade, sv := range sub {
				if s, ok := asString(sv); ok {
					cv.Shades[shade] = s
				}
			}
			if len(cv.Shades) > 0 {
				out[full] = cv
			}
			walk(full, sub)
		}
	}
	walk("", m)
	return out
}

func readFontSizes(v any) map[string]FontSize {
	m, ok := asMap(v)
	if !ok {
		return nil
	}
	out := make(map[string]FontSize, len(m))
	for k, val := range m {
		if s, ok := asString(val); ok {
			out[k] = FontSize{Size: s}
			continue
		}
		l, ok := val.([]any)
		if !ok || len(l) == 0 {
			continue
		}
		size, ok := asString(l[0])
		if !ok {
			continue
		}
		fs := FontSize{Size: size}
		if len(l) > 1 {
			if lh, ok := asString(l[1]); ok {
				fs.LineHeight = lh
			} else if opts, ok := asMap(l[1]); ok {
				fs.LineHeight, _ = asString(opts["lineHeight"])
			}
		}
		out[k] = fs
	}
	return out
}

func readFontFamilies(v any) map[string]string {
	m, ok := asMap(v)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, val := range m {
		if l, ok := asStringList(val); ok && len(l) > 0 {
			out[k] = strings.Join(l, ", ")
		}
	}
	return out
}

func readScreens(v any) map[string]Screen {
	m, ok := asMap(v)
	if !ok {
		return nil
	}
	out := make(map[string]Screen, len(m))
	for name, val := range m {
		if s, ok := asString(val); ok {
			out[name] = Screen{Name: name, Min: s}
			continue
		}
		sm, ok := asMap(val)
		if !ok {
			continue
		}
		sc := Screen{Name: name}
		sc.Min, _ = asString(sm["min"])
		sc.Max, _ = asString(sm["max"])
		sc.Raw, _ = asString(sm["raw"])
		if sc.Min != "" || sc.Max != "" || sc.Raw != "" {
			out[name] = sc
		}
	}
	return out
}
