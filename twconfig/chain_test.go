package twconfig

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/twclass/tw"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestLoadChain(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"tailwind.config.json": `{
			"presets": ["./presets/brand.yaml", "@acme/tailwind-preset", "./missing.json"],
			"extends": "./base",
			"theme": {"extend": {"colors": {"brand": "#333333"}}}
		}`,
		"presets/brand.yaml": "presets: [./inner.json]\ntheme:\n  spacing:\n    13: 3.25rem\n",
		"presets/inner.json": `{"prefix": "in-", "darkMode": "class"}`,
		"base.toml":          "prefix = \"base-\"\n",
	})

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	chain, err := LoadDir(context.Background(), dir, WithLogger(logger))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "tailwind.config.json"), chain.Path)
	require.Len(t, chain.Presets, 2)
	assert.Equal(t, "in-", chain.Presets[0]["prefix"])
	assert.Contains(t, chain.Presets[1], "theme")
	require.Len(t, chain.Extends, 1)
	assert.Equal(t, "base-", chain.Extends[0]["prefix"])

	require.Len(t, chain.Diagnostics, 2)
	assert.Equal(t, "@acme/tailwind-preset", chain.Diagnostics[0].Source)
	assert.Equal(t, "./missing.json", chain.Diagnostics[1].Source)
	assert.ErrorIs(t, chain.Diagnostics[1].Err, os.ErrNotExist)
	assert.Contains(t, buf.String(), "configuration ancestor skipped")

	th := chain.Theme()
	assert.Equal(t, "base-", th.Prefix)
	assert.Equal(t, "class", th.DarkMode)
	assert.Equal(t, "3.25rem", th.Spacing["13"])
	assert.Equal(t, "#333333", th.Colors["brand"].Value)
	assert.NotContains(t, th.Tree, "presets")
}

func TestLoadChainCycle(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.json": `{"presets": ["./b.json"], "prefix": "a-"}`,
		"b.json": `{"presets": ["./a.json"], "prefix": "b-"}`,
	})

	chain, err := Load(context.Background(), filepath.Join(dir, "a.json"))
	require.NoError(t, err)
	require.Len(t, chain.Presets, 1)
	assert.Equal(t, "b-", chain.Presets[0]["prefix"])
	require.Len(t, chain.Diagnostics, 1)
	assert.Equal(t, "reference cycle", chain.Diagnostics[0].Message)
	assert.Equal(t, "a-", chain.Theme().Prefix)
}

func TestLoadChainScriptAncestor(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"tailwind.config.yaml": "presets:\n  - ./preset.js\n",
		"preset.js":            "module.exports = {}",
	})

	chain, err := LoadDir(context.Background(), dir)
	require.NoError(t, err)
	assert.Empty(t, chain.Presets)
	require.Len(t, chain.Diagnostics, 1)
	assert.ErrorIs(t, chain.Diagnostics[0].Err, ErrScriptConfig)
}

func TestLoadErrors(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"tailwind.config.js": "module.exports = {}",
		"broken.json":        "{",
		"ok.json":            `{"presets": ["./ok2.json"]}`,
		"ok2.json":           `{}`,
	})

	_, err := Load(context.Background(), filepath.Join(dir, "tailwind.config.js"))
	assert.ErrorIs(t, err, ErrScriptConfig)

	_, err = Load(context.Background(), filepath.Join(dir, "broken.json"))
	assert.Error(t, err)

	_, err = Load(context.Background(), filepath.Join(dir, "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Load(ctx, filepath.Join(dir, "ok.json"))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = LoadDir(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  string
	}{
		{
			name:  "data config before script",
			files: map[string]string{"tailwind.config.js": "", "tailwind.config.toml": ""},
			want:  "tailwind.config.toml",
		},
		{
			name:  "script only",
			files: map[string]string{"tailwind.config.ts": ""},
			want:  "tailwind.config.ts",
		},
		{
			name:  "v4 stylesheet",
			files: map[string]string{"src/app.css": "@import \"tailwindcss\";\n"},
			want:  "src/app.css",
		},
		{
			name:  "stylesheet with theme only",
			files: map[string]string{"app/globals.css": "@theme { --color-x: red; }"},
			want:  "app/globals.css",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeFiles(t, tt.files)
			got, err := Locate(dir)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, filepath.FromSlash(tt.want)), got)
		})
	}

	t.Run("plain stylesheet is not a config", func(t *testing.T) {
		dir := writeFiles(t, map[string]string{"src/index.css": "body { margin: 0 }"})
		_, err := Locate(dir)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestReferences(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{"nil", nil, nil},
		{"string", "./a.json", []string{"./a.json"}},
		{"list", []any{"./a.json", "", 3, "./b.json"}, []string{"./a.json", "./b.json"}},
		{"objects", []any{tw.Tree{"path": "./a.json"}, tw.Tree{"name": "pkg"}}, []string{"./a.json", "pkg"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, references(tt.in))
		})
	}
}
