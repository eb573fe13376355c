package tw

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVocabularyDeterministic(t *testing.T) {
	theme := MergeTheme(Tree{
		"theme": Tree{
			"colors": Tree{"brand": Tree{"100": "#eef", "500": "#33f"}},
			"extend": Tree{"spacing": Tree{"128": "32rem"}},
		},
		"plugins": []any{"@tailwindcss/typography"},
	}, nil, nil)

	for _, v := range []Version{V2, V3, V4} {
		t.Run(v.String(), func(t *testing.T) {
			a := GenerateVocabulary(theme, v)
			b := GenerateVocabulary(theme, v)
			assert.Equal(t, a.Classes(), b.Classes())
			assert.Equal(t, a.Templates(), b.Templates())
			assert.True(t, sort.StringsAreSorted(a.Classes()))
			assert.Equal(t, v, a.Version())
		})
	}
}

func TestGenerateVocabularyNegativeMargins(t *testing.T) {
	keywords := map[string]bool{"auto": true, "full": true, "px": true, "screen": true, "min": true,
		"max": true, "fit": true, "svh": true, "lvh": true, "dvh": true}

	for _, v := range []Version{V2, V3, V4} {
		t.Run(v.String(), func(t *testing.T) {
			voc := GenerateVocabulary(DefaultTheme(v), v)
			prefixes := []string{"m", "mx", "my", "mt", "mr", "mb", "ml"}
			if v >= V3 {
				prefixes = append(prefixes, "ms", "me")
			}
			spacing := buildScales(DefaultTheme(v), v).table(ScaleSpacing)
			for _, p := range prefixes {
				for _, key := range spacing.keys {
					class := "-" + p + "-" + key
					if keywords[key] {
						assert.False(t, voc.Contains(class), class)
						continue
					}
					assert.True(t, voc.Contains(class), class)
				}
				assert.True(t, voc.Contains(p+"-auto"))
				assert.False(t, voc.Contains("-"+p+"-auto"))
			}
		})
	}
}

func TestGenerateVocabularyScenario(t *testing.T) {
	theme := MergeTheme(Tree{"theme": Tree{"colors": Tree{"slate": Tree{"500": "#64748b"}}}}, nil, nil)
	voc := GenerateVocabulary(theme, V3)

	for _, class := range []string{"bg-slate-500", "text-slate-500", "border-slate-500"} {
		assert.True(t, voc.Contains(class), class)
	}
	e, ok := voc.Entry("bg-slate-500")
	require.True(t, ok)
	assert.Equal(t, "bg", e.Prefix)
	assert.Equal(t, "slate-500", e.Value)
	assert.Equal(t, CategoryBackground, e.Category)
	assert.Equal(t, SourceCore, e.Source)
}

func TestGenerateVocabularyVersions(t *testing.T) {
	tests := []struct {
		class string
		v2    bool
		v3    bool
		v4    bool
	}{
		{class: "bg-opacity-50", v2: true, v3: true, v4: false},
		{class: "transform", v2: true, v3: false, v4: false},
		{class: "aspect-video", v2: false, v3: true, v4: true},
		{class: "columns-3", v2: false, v3: true, v4: true},
		{class: "bg-slate-950", v2: false, v3: true, v4: true},
		{class: "bg-gray-900", v2: true, v3: true, v4: true},
		{class: "bg-inherit", v2: false, v3: true, v4: true},
		{class: "rounded-xs", v2: false, v3: false, v4: true},
		{class: "grid-cols-subgrid", v2: false, v3: false, v4: true},
		{class: "@md:flex", v2: false, v3: false, v4: true},
		{class: "p-4", v2: true, v3: true, v4: true},
		{class: "md:flex", v2: true, v3: true, v4: true},
		{class: "text-9xl", v2: false, v3: true, v4: true},
	}

	vocabs := map[Version]*Vocabulary{
		V2: GenerateVocabulary(DefaultTheme(V2), V2),
		V3: GenerateVocabulary(DefaultTheme(V3), V3),
		V4: GenerateVocabulary(DefaultTheme(V4), V4),
	}
	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			assert.Equal(t, tt.v2, vocabs[V2].Contains(tt.class), "v2")
			assert.Equal(t, tt.v3, vocabs[V3].Contains(tt.class), "v3")
			assert.Equal(t, tt.v4, vocabs[V4].Contains(tt.class), "v4")
		})
	}
}

func TestGenerateVocabularyThemeOverlay(t *testing.T) {
	theme := MergeTheme(Tree{
		"prefix": "tw-",
		"theme": Tree{
			"screens": Tree{"tablet": "900px"},
			"extend": Tree{
				"colors":  Tree{"brand": "#123456"},
				"spacing": Tree{"13": "3.25rem"},
			},
		},
	}, nil, nil)
	voc := GenerateVocabulary(theme, VersionUnknown)

	tests := map[string]bool{
		"tw-bg-brand":     true,
		"tw-p-13":         true,
		"-tw-m-13":        true,
		"-tw-m-auto":      false,
		"tablet:tw-flex":  true,
		"md:tw-w-full":    false,
		"bg-brand":        false,
		"tw-bg-brand-500": false,
		"tw-text-red-500": true,
	}
	for class, want := range tests {
		assert.Equal(t, want, voc.Contains(class), class)
	}
	assert.Equal(t, V3, voc.Version())
}

func TestGenerateVocabularyExtendAndReplace(t *testing.T) {
	tests := []struct {
		name     string
		base     Tree
		presets  []Tree
		resolved map[string]string
		missing  []string
	}{
		{
			name: "extended colour keeps the built-in shades",
			base: Tree{"theme": Tree{"extend": Tree{"colors": Tree{"red": Tree{"500": "#ff0000"}}}}},
			resolved: map[string]string{
				"bg-red-500": "#ff0000",
				"bg-red-100": "#fee2e2",
				"bg-red-950": "#450a0a",
			},
		},
		{
			name: "extended colour value adds the bare name",
			base: Tree{"theme": Tree{"extend": Tree{"colors": Tree{"red": "#f00"}}}},
			resolved: map[string]string{
				"bg-red":     "#f00",
				"bg-red-500": "#ef4444",
			},
		},
		{
			name:     "replaced colour family drops its other shades",
			base:     Tree{"theme": Tree{"colors": Tree{"red": Tree{"500": "#ff0000"}}}},
			resolved: map[string]string{"bg-red-500": "#ff0000", "bg-blue-500": "#3b82f6"},
			missing:  []string{"bg-red-100"},
		},
		{
			name:     "replaced spacing drops the built-in steps",
			base:     Tree{"theme": Tree{"spacing": Tree{"128": "32rem"}}},
			resolved: map[string]string{"p-128": "32rem", "w-1/2": "50%"},
			missing:  []string{"p-4", "m-px"},
		},
		{
			name:     "extended spacing keeps the built-in steps",
			base:     Tree{"theme": Tree{"extend": Tree{"spacing": Tree{"128": "32rem"}}}},
			resolved: map[string]string{"p-128": "32rem", "p-4": "1rem"},
		},
		{
			name:     "project extend adds to a preset replacement",
			base:     Tree{"theme": Tree{"extend": Tree{"spacing": Tree{"128": "32rem"}}}},
			presets:  []Tree{{"theme": Tree{"spacing": Tree{"13": "3.25rem"}}}},
			resolved: map[string]string{"p-13": "3.25rem", "p-128": "32rem"},
			missing:  []string{"p-4"},
		},
		{
			name:     "replaced font sizes drop the built-in sizes",
			base:     Tree{"theme": Tree{"fontSize": Tree{"tiny": "0.625rem"}}},
			resolved: map[string]string{"text-tiny": "0.625rem"},
			missing:  []string{"text-lg"},
		},
		{
			name:     "extended screens keep the built-in screens",
			base:     Tree{"theme": Tree{"extend": Tree{"screens": Tree{"tablet": "900px"}}}},
			resolved: map[string]string{"tablet:flex": "flex", "md:flex": "flex"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme := MergeTheme(tt.base, nil, tt.presets)
			voc := GenerateVocabulary(theme, V3)
			r := NewResolver(theme, WithVersion(V3))
			for class, want := range tt.resolved {
				assert.True(t, voc.Contains(class), class)
				assert.Equal(t, want, r.Resolve(class).Val(), class)
			}
			for _, class := range tt.missing {
				assert.False(t, voc.Contains(class), class)
				assert.False(t, r.Resolve(class).Resolved(), class)
			}
		})
	}
}

func TestThemeReplaces(t *testing.T) {
	theme := MergeTheme(Tree{"theme": Tree{
		"spacing": Tree{"128": "32rem"},
		"colors":  Tree{"brand": "#123456", "red": Tree{"500": "#f00"}},
		"extend":  Tree{"colors": Tree{"blue": Tree{"500": "#00f"}}, "opacity": Tree{"15": "0.15"}},
	}}, nil, nil)

	assert.True(t, theme.Replaces("spacing"))
	assert.False(t, theme.Replaces("opacity"))
	assert.False(t, theme.Replaces("colors"))
	assert.True(t, theme.ReplacesColor("red"))
	assert.True(t, theme.ReplacesColor("brand"))
	assert.False(t, theme.ReplacesColor("blue"))

	var nilTheme *Theme
	assert.False(t, nilTheme.Replaces("spacing"))
}

func TestGenerateVocabularyPlugins(t *testing.T) {
	theme := MergeTheme(Tree{"plugins": []any{
		"require('@tailwindcss/typography')",
		"./plugins/unknown.js",
	}}, nil, nil)
	voc := GenerateVocabulary(theme, V3)

	e, ok := voc.Entry("prose-lg")
	require.True(t, ok)
	assert.Equal(t, SourcePlugin, e.Source)
	assert.Equal(t, "typography", e.Plugin)
	assert.Equal(t, CategoryTypography, e.Category)
	assert.False(t, voc.Contains("unknown"))
}

func TestGenerateVocabularyContainerQueryPlugin(t *testing.T) {
	plain := GenerateVocabulary(DefaultTheme(V3), V3)
	assert.False(t, plain.Contains("@lg:flex"))

	theme := MergeTheme(Tree{"plugins": []any{"@tailwindcss/container-queries"}}, nil, nil)
	voc := GenerateVocabulary(theme, V3)
	assert.True(t, voc.Contains("@lg:flex"))
	assert.True(t, voc.Contains("@container"))
}

func TestVocabularyComplete(t *testing.T) {
	voc := GenerateVocabulary(DefaultTheme(V3), V3)

	got := voc.Complete("bg-slate-", 3)
	require.Len(t, got, 3)
	for _, c := range got {
		assert.True(t, strings.HasPrefix(c, "bg-slate-"))
	}
	assert.True(t, sort.StringsAreSorted(got))

	all := voc.Complete("bg-slate-", 0)
	assert.Len(t, all, 11)
	assert.Empty(t, voc.Complete("zzz-", 10))
}

func TestVocabularyTemplates(t *testing.T) {
	voc := GenerateVocabulary(DefaultTheme(V3), V3)

	byPrefix := make(map[string]ArbitraryTemplate)
	for _, tmpl := range voc.Templates() {
		_, dup := byPrefix[tmpl.Prefix]
		require.False(t, dup, "duplicate template for %q", tmpl.Prefix)
		byPrefix[tmpl.Prefix] = tmpl
	}
	assert.Equal(t, "w-[…]", byPrefix["w"].Template)
	assert.Equal(t, "w-[37px]", byPrefix["w"].Example)
	assert.Equal(t, "bg-[#1da1f2]", byPrefix["bg"].Example)
	assert.Contains(t, byPrefix, "")
}

func TestNilVocabulary(t *testing.T) {
	var voc *Vocabulary
	assert.False(t, voc.Contains("p-4"))
	assert.Zero(t, voc.Len())
	assert.Nil(t, voc.Complete("p", 10))
	assert.Nil(t, voc.Suggest("p-44", 3))
}

func TestVocabularySuggest(t *testing.T) {
	voc := GenerateVocabulary(DefaultTheme(V3), V3)

	got := voc.Suggest("bg-slat-500", 3)
	require.NotEmpty(t, got)
	assert.Equal(t, Suggestion{Class: "bg-slate-500", Distance: 1}, got[0])

	assert.Nil(t, voc.Suggest("bg-slate-500", 3), "known classes need no suggestion")
	assert.Empty(t, voc.Suggest("qqqqqqqqqqqqqqqqqqqq", 3))
}

func BenchmarkGenerateVocabulary(b *testing.B) {
	theme := DefaultTheme(V3)
	for i := 0; i < b.N; i++ {
		GenerateVocabulary(theme, V3)
	}
}
