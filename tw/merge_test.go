package tw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeTheme(t *testing.T) {
	tests := []struct {
		name     string
		base     Tree
		extends  []Tree
		presets  []Tree
		validate func(*testing.T, *Theme)
	}{
		{
			name: "extend adds to the category",
			base: Tree{"theme": Tree{
				"colors": Tree{"red": "#f00"},
				"extend": Tree{"colors": Tree{"blue": "#00f"}},
			}},
			validate: func(t *testing.T, th *Theme) {
				assert.Equal(t, ColorValue{Value: "#f00"}, th.Colors["red"])
				assert.Equal(t, ColorValue{Value: "#00f"}, th.Colors["blue"])
			},
		},
		{
			name:    "project extend keeps preset entries",
			base:    Tree{"theme": Tree{"extend": Tree{"spacing": Tree{"128": "32rem"}}}},
			presets: []Tree{{"theme": Tree{"spacing": Tree{"13": "3.25rem"}}}},
			validate: func(t *testing.T, th *Theme) {
				assert.Equal(t, map[string]string{"13": "3.25rem", "128": "32rem"}, th.Spacing)
			},
		},
		{
			name:    "later trees win on conflicts",
			base:    Tree{"theme": Tree{"colors": Tree{"brand": "#333"}}},
			extends: []Tree{{"theme": Tree{"colors": Tree{"brand": "#222"}}}},
			presets: []Tree{{"theme": Tree{"colors": Tree{"brand": "#111"}}}},
			validate: func(t *testing.T, th *Theme) {
				assert.Equal(t, "#333", th.Colors["brand"].Value)
			},
		},
		{
			name:    "extends apply after presets",
			extends: []Tree{{"prefix": "ext-"}},
			presets: []Tree{{"prefix": "pre-"}},
			validate: func(t *testing.T, th *Theme) {
				assert.Equal(t, "ext-", th.Prefix)
			},
		},
		{
			name:    "nested colour shades deep-merge",
			base:    Tree{"theme": Tree{"extend": Tree{"colors": Tree{"brand": Tree{"700": "#070"}}}}},
			presets: []Tree{{"theme": Tree{"colors": Tree{"brand": Tree{"100": "#010"}}}}},
			validate: func(t *testing.T, th *Theme) {
				assert.Equal(t, map[string]string{"100": "#010", "700": "#070"}, th.Colors["brand"].Shades)
			},
		},
		{
			name: "top-level keys are last-write-wins",
			base: Tree{"darkMode": "class", "plugins": []any{"@tailwindcss/forms"}},
			presets: []Tree{{
				"darkMode": "media",
				"plugins":  []any{"@tailwindcss/typography"},
			}},
			validate: func(t *testing.T, th *Theme) {
				assert.Equal(t, "class", th.DarkMode)
				require.Len(t, th.Plugins, 1)
				assert.Equal(t, "forms", th.Plugins[0].Name)
			},
		},
		{
			name: "malformed categories are dropped",
			base: Tree{"theme": Tree{"colors": "not-a-map", "spacing": []any{1, 2}}},
			validate: func(t *testing.T, th *Theme) {
				assert.Empty(t, th.Colors)
				assert.Empty(t, th.Spacing)
			},
		},
		{
			name: "chain keys are removed from the merged tree",
			base: Tree{"presets": []any{"./preset.json"}, "extends": "./base.json"},
			validate: func(t *testing.T, th *Theme) {
				assert.NotContains(t, th.Tree, "presets")
				assert.NotContains(t, th.Tree, "extends")
			},
		},
		{
			name: "version key selects the version",
			base: Tree{"version": "4.0.1"},
			validate: func(t *testing.T, th *Theme) {
				assert.Equal(t, V4, th.Version)
			},
		},
		{
			name: "nil base yields the default theme",
			validate: func(t *testing.T, th *Theme) {
				assert.Equal(t, DefaultVersion, th.Version)
				assert.Equal(t, "media", th.DarkMode)
				assert.Empty(t, th.Colors)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := MergeTheme(tt.base, tt.extends, tt.presets)
			require.NotNil(t, th)
			tt.validate(t, th)
		})
	}
}

func TestMergeThemeReportsMissingAncestors(t *testing.T) {
	var got []Diagnostic
	th := MergeTheme(
		Tree{"theme": Tree{"colors": Tree{"brand": "#123456"}}},
		[]Tree{nil, {"prefix": "tw-"}},
		[]Tree{nil},
		WithDiagnostics(func(d Diagnostic) { got = append(got, d) }),
	)

	require.Len(t, got, 2)
	assert.Equal(t, "presets[0]", got[0].Source)
	assert.Equal(t, "extends[0]", got[1].Source)
	assert.Equal(t, "tw-", th.Prefix)
	assert.Equal(t, "#123456", th.Colors["brand"].Value)
}

func TestMergeThemeDoesNotMutateInputs(t *testing.T) {
	preset := Tree{"theme": Tree{"colors": Tree{"brand": Tree{"100": "#010"}}}}
	base := Tree{"theme": Tree{"extend": Tree{"colors": Tree{"brand": Tree{"700": "#070"}}}}}

	MergeTheme(base, nil, []Tree{preset})

	brand := preset["theme"].(Tree)["colors"].(Tree)["brand"].(Tree)
	assert.Equal(t, Tree{"100": "#010"}, brand)
	assert.NotContains(t, base["theme"].(Tree), "colors")
}

func TestMergeThemeWithVersion(t *testing.T) {
	th := MergeTheme(Tree{"version": "2"}, nil, nil, WithVersion(V4))
	assert.Equal(t, V4, th.Version)
}

func TestNewThemeReaders(t *testing.T) {
	th := NewTheme(Tree{
		"darkMode": []any{"class", ".dark"},
		"theme": Tree{
			"fontSize": Tree{
				"tiny": "0.625rem",
				"huge": []any{"5rem", Tree{"lineHeight": "1.1"}},
				"big":  []any{"3rem", "1"},
			},
			"fontFamily": Tree{"display": []any{"Inter", "sans-serif"}},
			"screens": Tree{
				"tablet": "900px",
				"tall":   Tree{"raw": "(min-height: 800px)"},
			},
			"colors": Tree{"brand": Tree{"light": Tree{"100": "#eef"}, "DEFAULT": "#00f"}},
		},
	}, V3)

	assert.Equal(t, "class", th.DarkMode)
	assert.Equal(t, FontSize{Size: "0.625rem"}, th.FontSize["tiny"])
	assert.Equal(t, FontSize{Size: "5rem", LineHeight: "1.1"}, th.FontSize["huge"])
	assert.Equal(t, FontSize{Size: "3rem", LineHeight: "1"}, th.FontSize["big"])
	assert.Equal(t, "Inter, sans-serif", th.FontFamily["display"])
	assert.Equal(t, Screen{Name: "tablet", Min: "900px"}, th.Screens["tablet"])
	assert.Equal(t, "(min-height: 800px)", th.Screens["tall"].MediaQuery())
	assert.Equal(t, map[string]string{"DEFAULT": "#00f"}, th.Colors["brand"].Shades)
	assert.Equal(t, map[string]string{"100": "#eef"}, th.Colors["brand-light"].Shades)
}
