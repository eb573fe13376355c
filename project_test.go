package twclass

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/twclass/tw"
	"github.com/agiangrant/twclass/twconfig"
)

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]string
		opts     []Option
		validate func(*testing.T, *Project)
	}{
		{
			name: "json config",
			files: map[string]string{
				"tailwind.config.json": `{"theme": {"colors": {"slate": {"500": "#64748b"}}}}`,
			},
			validate: func(t *testing.T, p *Project) {
				pc := p.Model().Resolve("bg-slate-500")
				assert.Equal(t, []string{"background-color"}, pc.Properties)
				assert.Equal(t, "#64748b", pc.Val())
				assert.Equal(t, tw.CategoryBackground, pc.Category)
				assert.Equal(t, filepath.Join(p.Dir(), "tailwind.config.json"), p.ConfigPath())
				assert.Empty(t, p.Diagnostics())
			},
		},
		{
			name: "version from package.json",
			files: map[string]string{
				"tailwind.config.yaml": "prefix: tw-\n",
				"package.json":         `{"devDependencies": {"tailwindcss": "^2.2.19"}}`,
			},
			validate: func(t *testing.T, p *Project) {
				assert.Equal(t, tw.V2, p.Model().Version())
				assert.Equal(t, "tw-", p.Model().Theme().Prefix)
			},
		},
		{
			name:  "pinned version",
			files: map[string]string{"package.json": `{"devDependencies": {"tailwindcss": "^2.2.19"}}`},
			opts:  []Option{WithVersion(tw.V4)},
			validate: func(t *testing.T, p *Project) {
				assert.Equal(t, tw.V4, p.Model().Version())
			},
		},
		{
			name:  "css config",
			files: map[string]string{"src/app.css": "@import \"tailwindcss\";\n@theme { --color-mint-500: #3eb489; }\n"},
			validate: func(t *testing.T, p *Project) {
				assert.Equal(t, tw.V4, p.Model().Version())
				assert.Equal(t, "#3eb489", p.Model().Resolve("text-mint-500").Val())
			},
		},
		{
			name: "no config",
			validate: func(t *testing.T, p *Project) {
				assert.Empty(t, p.ConfigPath())
				assert.Equal(t, tw.DefaultVersion, p.Model().Version())
				assert.Equal(t, "1rem", p.Model().Resolve("p-4").Val())
			},
		},
		{
			name:  "script config falls back to defaults",
			files: map[string]string{"tailwind.config.js": "module.exports = {}"},
			validate: func(t *testing.T, p *Project) {
				diags := p.Diagnostics()
				require.Len(t, diags, 1)
				assert.ErrorIs(t, diags[0].Err, twconfig.ErrScriptConfig)
				assert.Equal(t, filepath.Join(p.Dir(), "tailwind.config.js"), p.ConfigPath())
				assert.True(t, p.Model().Resolve("flex").Resolved())
			},
		},
		{
			name: "missing ancestor is a diagnostic",
			files: map[string]string{
				"tailwind.config.json": `{"presets": ["./gone.json"]}`,
			},
			validate: func(t *testing.T, p *Project) {
				diags := p.Diagnostics()
				require.Len(t, diags, 1)
				assert.Equal(t, "./gone.json", diags[0].Source)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeProject(t, tt.files)
			p, err := Open(context.Background(), dir, tt.opts...)
			require.NoError(t, err)
			tt.validate(t, p)
		})
	}
}

func TestOpenBrokenConfig(t *testing.T) {
	dir := writeProject(t, map[string]string{"tailwind.config.json": "{"})
	_, err := Open(context.Background(), dir)
	assert.Error(t, err)
}

func TestReload(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"tailwind.config.json": `{"theme": {"extend": {"colors": {"brand": "#111111"}}}}`,
	})
	p, err := Open(context.Background(), dir)
	require.NoError(t, err)
	p.Model().RecordUsage("bg-brand")
	require.Equal(t, "#111111", p.Model().Resolve("bg-brand").Val())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "tailwind.config.json"),
		[]byte(`{"theme": {"extend": {"colors": {"brand": "#222222"}}}}`), 0o644))
	require.NoError(t, p.Reload(context.Background()))

	assert.Equal(t, "#222222", p.Model().Resolve("bg-brand").Val())
	assert.Equal(t, uint64(2), p.Model().Generation())
	assert.Equal(t, []string{"bg-brand"}, p.Model().MostUsed(1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Reload(ctx), context.Canceled)
	assert.Equal(t, uint64(2), p.Model().Generation())
}

func TestResolveClasses(t *testing.T) {
	p, err := Open(context.Background(), t.TempDir())
	require.NoError(t, err)

	list := p.ResolveClasses("flex  md:hover:bg-red-500 p-4 flex wobble-3", true)
	require.Len(t, list.Classes, 4)
	assert.Equal(t, "md:hover:bg-red-500", list.Classes[1].Raw)
	assert.Equal(t, []string{"wobble-3"}, list.Unknown)
	assert.Equal(t, 1, p.Model().Ledger().Count("flex"))
	assert.Equal(t, 1, p.Model().Ledger().Count("bg-red-500"))

	assert.Empty(t, p.ResolveClasses("   ", false).Classes)
}

func TestProjectCSS(t *testing.T) {
	p, err := Open(context.Background(), t.TempDir())
	require.NoError(t, err)

	got := p.CSS("p-4 wobble p-4 hover:flex")
	assert.Equal(t, ".p-4 {\n  padding: 1rem;\n}\n.hover\\:flex:hover {\n  display: flex;\n}\n", got)
}
