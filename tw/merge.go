package tw

import "fmt"

// MergeTheme folds a configuration and its ancestors into one effective
// theme. Presets are applied first in list order, then extends in list
// order, then the project tree itself, so later trees win on conflicts.
//
// Within each tree every theme.<category> merges key by key into what has
// been accumulated so far (nested maps merge recursively), and then
// theme.extend.<category> merges on top the same way. Extension therefore
// never drops an entry another tree contributed. Other top-level keys
// (prefix, darkMode, plugins, ...) are taken from the last tree that sets
// them.
//
// A category set outside extend in any tree replaces the built-in table of
// that category; colours are replaced per family. Categories only ever
// extended are added to the built-in tables.
//
// A nil ancestor stands for one that could not be located or parsed. It is
// skipped and reported through WithDiagnostics; merging never fails.
func MergeTheme(base Tree, extends, presets []Tree, opts ...Option) *Theme {
	o := newOptions(opts)
	acc := Tree{}
	marks := newThemeMarks()

	apply := func(kind string, trees []Tree) {
		for i, t := range trees {
			if t == nil {
				o.report(Diagnostic{
					Source:  fmt.Sprintf("%s[%d]", kind, i),
					Message: "ancestor could not be loaded, skipping",
				})
				continue
			}
			mergeTree(acc, t, o, marks)
		}
	}
	apply("presets", presets)
	apply("extends", extends)
	if base != nil {
		mergeTree(acc, base, o, marks)
	}

	// Ancestor chains are resolved before merging; the keys would only
	// mislead consumers reading Theme.Tree.
	delete(acc, "presets")
	delete(acc, "extends")

	theme := buildTheme(acc, o.version, marks)
	o.logger.Debug("theme merged",
		"presets", len(presets),
		"extends", len(extends),
		"version", theme.Version.String(),
		"colors", len(theme.Colors),
		"plugins", len(theme.Plugins),
	)
	return theme
}

// themeMarks records what the merged trees set outside theme.extend.
type themeMarks struct {
	categories map[string]bool
	colors     map[string]bool // top-level colour keys
}

func newThemeMarks() themeMarks {
	return themeMarks{categories: make(map[string]bool), colors: make(map[string]bool)}
}

func (m themeMarks) mark(cat string, v any) {
	sub, ok := asMap(v)
	if !ok {
		return
	}
	if cat != "colors" {
		m.categories[cat] = true
		return
	}
	for name := range sub {
		m.colors[name] = true
	}
}

func mergeTree(acc, src Tree, o options, marks themeMarks) {
	for key, val := range src {
		if key != "theme" {
			acc[key] = cloneValue(val)
			continue
		}
		th, ok := asMap(val)
		if !ok {
			o.logger.Debug("ignoring non-object theme", "type", fmt.Sprintf("%T", val))
			continue
		}
		accTheme, _ := asMap(acc["theme"])
		if accTheme == nil {
			accTheme = Tree{}
		}
		for cat, cv := range th {
			if cat == "extend" {
				continue
			}
			marks.mark(cat, cv)
			mergeCategory(accTheme, cat, cv)
		}
		if ext, ok := asMap(th["extend"]); ok {
			for cat, cv := range ext {
				mergeCategory(accTheme, cat, cv)
			}
		}
		acc["theme"] = accTheme
	}
}

func mergeCategory(theme Tree, cat string, v any) {
	src, ok := asMap(v)
	if !ok {
		theme[cat] = cloneValue(v)
		return
	}
	dst, ok := asMap(theme[cat])
	if !ok {
		theme[cat] = cloneTree(src)
		return
	}
	merged := cloneTree(dst)
	deepMerge(merged, src)
	theme[cat] = merged
}
