package tw

import (
	"strconv"
	"strings"
)

// Plugin is a plugin referenced by the configuration. Known plugins
// contribute class stems to the vocabulary; unknown ones are kept as a tag.
type Plugin struct {
	// ID is the identifier as written, e.g. "@tailwindcss/typography".
	ID string
	// Name is the base name with scope and path stripped.
	Name  string
	Known bool
}

type pluginDef struct {
	match      string
	category   Category
	properties []string
	stems      func(v Version) []string
}

// knownPlugins is matched by substring against the plugin identifier, in order.
var knownPlugins = []pluginDef{
	{
		match:      "typography",
		category:   CategoryTypography,
		properties: []string{"color", "max-width"},
		stems: func(Version) []string {
			out := []string{"prose", "not-prose", "prose-invert"}
			for _, s := range []string{"sm", "base", "lg", "xl", "2xl", "gray", "slate", "zinc", "neutral", "stone"} {
				out = append(out, "prose-"+s)
			}
			return out
		},
	},
	{
		match:      "forms",
		category:   CategoryInteractivity,
		properties: []string{"appearance"},
		stems: func(Version) []string {
			return []string{"form-input", "form-textarea", "form-select", "form-multiselect", "form-checkbox", "form-radio"}
		},
	},
	{
		match:      "aspect-ratio",
		category:   CategoryLayout,
		properties: []string{"padding-bottom", "position"},
		stems: func(Version) []string {
			out := []string{"aspect-none"}
			for n := 1; n <= 16; n++ {
				out = append(out, "aspect-w-"+strconv.Itoa(n), "aspect-h-"+strconv.Itoa(n))
			}
			return out
		},
	},
	{
		match:      "line-clamp",
		category:   CategoryTypography,
		properties: []string{"-webkit-line-clamp"},
		stems: func(Version) []string {
			out := []string{"line-clamp-none"}
			for n := 1; n <= 6; n++ {
				out = append(out, "line-clamp-"+strconv.Itoa(n))
			}
			return out
		},
	},
	{
		match:      "container-queries",
		category:   CategoryLayout,
		properties: []string{"container-type"},
		stems: func(Version) []string {
			return []string{"@container", "@container-normal"}
		},
	},
	{
		match:      "animate",
		category:   CategoryEffect,
		properties: []string{"animation"},
		stems: func(Version) []string {
			out := []string{"animate-in", "animate-out", "fade-in", "fade-out", "zoom-in", "zoom-out", "spin-in", "spin-out"}
			for _, side := range []string{"top", "bottom", "left", "right"} {
				out = append(out, "slide-in-from-"+side, "slide-out-to-"+side)
			}
			return out
		},
	},
}

func lookupPlugin(name string) (pluginDef, bool) {
	n := strings.ToLower(name)
	for _, def := range knownPlugins {
		if strings.Contains(n, def.match) {
			return def, true
		}
	}
	return pluginDef{}, false
}

// ResolvePlugin normalises a plugin identifier such as
// "require('@tailwindcss/forms')" or "./plugins/brand.js".
func ResolvePlugin(id string) Plugin {
	id = strings.TrimSpace(id)
	name := id
	if strings.HasPrefix(name, "require(") {
		name = strings.TrimSuffix(strings.TrimPrefix(name, "require("), ")")
	}
	name = strings.Trim(name, `"'`+"`")
	if i := strings.LastIndexByte(name, '/'); i >= 0 && i < len(name)-1 {
		name = name[i+1:]
	}
	for _, ext := range []string{".js", ".cjs", ".mjs", ".ts"} {
		name = strings.TrimSuffix(name, ext)
	}
	_, known := lookupPlugin(id)
	return Plugin{ID: id, Name: name, Known: known}
}

// pluginFromTree accepts a plugin entry as a string or as {name: "..."}.
func pluginFromTree(v any) (Plugin, bool) {
	if s, ok := asString(v); ok && s != "" {
		return ResolvePlugin(s), true
	}
	if m, ok := asMap(v); ok {
		for _, key := range []string{"name", "id", "package"} {
			if s, ok := asString(m[key]); ok && s != "" {
				return ResolvePlugin(s), true
			}
		}
	}
	return Plugin{}, false
}

// pluginClass is one class a known plugin contributes.
type pluginClass struct {
	plugin string
	def    pluginDef
}

// pluginClasses maps every stem of the theme's known plugins to its plugin.
// The first plugin to claim a stem keeps it.
func pluginClasses(plugins []Plugin, v Version) (map[string]pluginClass, []string) {
	classes := make(map[string]pluginClass)
	var order []string
	for _, p := range plugins {
		def, ok := lookupPlugin(p.ID)
		if !ok {
			continue
		}
		for _, stem := range def.stems(v) {
			if _, dup := classes[stem]; dup {
				continue
			}
			classes[stem] = pluginClass{plugin: p.Name, def: def}
			order = append(order, stem)
		}
	}
	return classes, order
}
