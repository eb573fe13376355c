package tw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolverCSS(t *testing.T) {
	tests := map[string]string{
		"p-4":             ".p-4 {\n  padding: 1rem;\n}\n",
		"hover:p-4":       ".hover\\:p-4:hover {\n  padding: 1rem;\n}\n",
		"md:hover:p-4":    "@media (min-width: 768px) {\n  .md\\:hover\\:p-4:hover {\n    padding: 1rem;\n  }\n}\n",
		"before:p-4":      ".before\\:p-4::before {\n  padding: 1rem;\n}\n",
		"group-hover:p-4": ".group:hover .group-hover\\:p-4 {\n  padding: 1rem;\n}\n",
		"w-1/2":           ".w-1\\/2 {\n  width: 50%;\n}\n",
		"!p-4":            ".\\!p-4 {\n  padding: 1rem !important;\n}\n",
		"px-2":            ".px-2 {\n  padding-left: 0.5rem;\n  padding-right: 0.5rem;\n}\n",
		"foo-bar":         "",
		"p-13":            "",
	}

	r := NewResolver(DefaultTheme(V3))
	for raw, want := range tests {
		t.Run(raw, func(t *testing.T) {
			assert.Equal(t, want, r.CSS(raw))
		})
	}
	assert.Positive(t, r.Stats().CSSEntries)
}

func TestResolverCSSPseudoElementLast(t *testing.T) {
	r := NewResolver(DefaultTheme(V3))
	assert.Equal(t, ".before\\:hover\\:p-4:hover::before {\n  padding: 1rem;\n}\n", r.CSS("before:hover:p-4"))
}

func TestEscapeClass(t *testing.T) {
	tests := map[string]string{
		"p-4":                 "p-4",
		"md:w-1/2":            `md\:w-1\/2`,
		"bg-[#112233]":        `bg-\[\#112233\]`,
		"2xl:p-4":             `\32 xl\:p-4`,
		"w-0.5":               `w-0\.5`,
		"[&>*]:underline":     `\[\&\>\*\]\:underline`,
		"text-[length:1rem]!": `text-\[length\:1rem\]\!`,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, EscapeClass(in))
		})
	}
}
