package twconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/twclass/tw"
)

const stylesheet = `@import "tailwindcss" prefix(tw);
@plugin "@tailwindcss/typography";
@config "./tailwind.config.json";
@custom-variant dark (&:where(.dark, .dark *));

/* @theme { --color-ignored: red; } */
@theme inline {
  --color-*: initial;
  --color-mint-500: oklch(0.72 0.11 178);
  --color-mint-100: #e0fff4;
  --color-brand: #123456;
  --font-display: "Satoshi", sans-serif;
  --font-weight-chunky: 850;
  --text-tiny: 0.625rem;
  --text-tiny--line-height: 1.1;
  --breakpoint-3xl: 120rem;
  --radius-pill: 999px;

  @keyframes wiggle {
    0%, 100% { transform: rotate(-3deg); }
    50% { transform: rotate(3deg); }
  }
}

.btn {
  @apply p-4 bg-brand;
}
`

func TestParseCSS(t *testing.T) {
	tree := parseCSS([]byte(stylesheet))

	assert.Equal(t, "4", tree["version"])
	assert.Equal(t, "selector", tree["darkMode"])
	assert.Equal(t, []any{"@tailwindcss/typography"}, tree["plugins"])
	assert.Equal(t, []any{"./tailwind.config.json"}, tree["extends"])

	ext := tree["theme"].(tw.Tree)["extend"].(tw.Tree)
	assert.Equal(t, tw.Tree{
		"mint":  tw.Tree{"500": "oklch(0.72 0.11 178)", "100": "#e0fff4"},
		"brand": "#123456",
	}, ext["colors"])
	assert.Equal(t, tw.Tree{"display": `"Satoshi", sans-serif`}, ext["fontFamily"])
	assert.Equal(t, tw.Tree{"chunky": "850"}, ext["fontWeight"])
	assert.Equal(t, tw.Tree{"tiny": []any{"0.625rem", tw.Tree{"lineHeight": "1.1"}}}, ext["fontSize"])
	assert.Equal(t, tw.Tree{"3xl": "120rem"}, ext["screens"])
	assert.Equal(t, tw.Tree{"pill": "999px"}, ext["borderRadius"])
	assert.NotContains(t, ext["colors"], "ignored")
}

func TestParseCSSTheme(t *testing.T) {
	tree := parseCSS([]byte(stylesheet))
	delete(tree, "extends")

	th := tw.MergeTheme(tree, nil, nil)
	require.Equal(t, tw.V4, th.Version)
	assert.Equal(t, "selector", th.DarkMode)
	assert.Equal(t, "#e0fff4", th.Colors["mint"].Shades["100"])
	assert.Equal(t, tw.FontSize{Size: "0.625rem", LineHeight: "1.1"}, th.FontSize["tiny"])
	assert.Equal(t, "120rem", th.Screens["3xl"].Min)
	require.Len(t, th.Plugins, 1)
	assert.Equal(t, "typography", th.Plugins[0].Name)

	voc := tw.GenerateVocabulary(th, tw.VersionUnknown)
	assert.True(t, voc.Contains("bg-mint-500"))
	assert.True(t, voc.Contains("text-brand"))
	assert.True(t, voc.Contains("3xl:flex"))
}

func TestParseCSSColors(t *testing.T) {
	tests := map[string]tw.Tree{
		"--color-brand: #111; --color-brand-500: #222;": {"brand": tw.Tree{"DEFAULT": "#111", "500": "#222"}},
		"--color-brand-500: #222; --color-brand: #111;": {"brand": tw.Tree{"DEFAULT": "#111", "500": "#222"}},
		"--color-light-blue-50: #eff;":                  {"light-blue": tw.Tree{"50": "#eff"}},
		"--color-sky-blue: #0bf;":                       {"sky-blue": "#0bf"},
	}
	for decls, want := range tests {
		t.Run(decls, func(t *testing.T) {
			tree := parseCSS([]byte("@theme {" + decls + "}"))
			assert.Equal(t, want, tree["theme"].(tw.Tree)["extend"].(tw.Tree)["colors"])
		})
	}
}

func TestParseCSSWithoutTailwind(t *testing.T) {
	tree := parseCSS([]byte(".btn { color: red; } @media (min-width: 10px) { .a { b: c } }"))
	assert.Equal(t, tw.Tree{}, tree)
}

func TestParseCSSUnterminated(t *testing.T) {
	tree := parseCSS([]byte("@theme { --color-brand: #123456"))
	assert.Equal(t, "#123456", tree["theme"].(tw.Tree)["extend"].(tw.Tree)["colors"].(tw.Tree)["brand"])

	assert.NotPanics(t, func() { parseCSS([]byte("@theme")) })
	assert.NotPanics(t, func() { parseCSS([]byte("@")) })
	assert.NotPanics(t, func() { parseCSS([]byte("/* unterminated")) })
}
