package twconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agiangrant/twclass/tw"
)

func TestDetectVersion(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		version tw.Version
		source  VersionSource
	}{
		{
			name: "installed package wins",
			files: map[string]string{
				"node_modules/tailwindcss/package.json": `{"name": "tailwindcss", "version": "4.1.3"}`,
				"package.json":                          `{"devDependencies": {"tailwindcss": "^3.4.1"}}`,
			},
			version: tw.V4,
			source:  SourceInstalled,
		},
		{
			name:    "manifest range",
			files:   map[string]string{"package.json": `{"devDependencies": {"tailwindcss": "^3.4.1"}}`},
			version: tw.V3,
			source:  SourceManifest,
		},
		{
			name:    "v4 integration package",
			files:   map[string]string{"package.json": `{"dependencies": {"@tailwindcss/vite": "~4.0.0"}}`},
			version: tw.V4,
			source:  SourceManifest,
		},
		{
			name:    "unparseable range",
			files:   map[string]string{"package.json": `{"dependencies": {"tailwindcss": "latest"}}`},
			version: tw.DefaultVersion,
			source:  SourceDefault,
		},
		{
			name:    "broken manifest",
			files:   map[string]string{"package.json": `{`},
			version: tw.DefaultVersion,
			source:  SourceDefault,
		},
		{
			name:    "nothing",
			version: tw.DefaultVersion,
			source:  SourceDefault,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeFiles(t, tt.files)
			v, src := DetectVersion(dir)
			assert.Equal(t, tt.version, v)
			assert.Equal(t, tt.source, src)
		})
	}
}

func TestMajorOf(t *testing.T) {
	tests := map[string]tw.Version{
		"3.4.1":          tw.V3,
		"^4.0.0-beta.3":  tw.V4,
		"~3.3":           tw.V3,
		">=2.2.0 <3":     tw.V2,
		"v3.0.0":         tw.V3,
		"3.x":            tw.V3,
		"4.*":            tw.V4,
		"^2 || ^3":       tw.V2,
		"1.9.6":          tw.VersionUnknown,
		"latest":         tw.VersionUnknown,
		"":               tw.VersionUnknown,
		"workspace:*":    tw.VersionUnknown,
		"5.0.0":          tw.VersionUnknown,
		"github:foo/bar": tw.VersionUnknown,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			got, _ := majorOf(in)
			assert.Equal(t, want, got)
		})
	}
}
