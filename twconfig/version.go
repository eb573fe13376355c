package twconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/agiangrant/twclass/tw"
)

// VersionSource says where DetectVersion found the version.
type VersionSource string

const (
	SourceInstalled VersionSource = "node_modules"
	SourceManifest  VersionSource = "package.json"
	SourceDefault   VersionSource = "default"
)

// DetectVersion reports the Tailwind major version of the project at dir:
// the installed package's version when present, otherwise the tailwindcss
// range declared in package.json, otherwise tw.DefaultVersion.
func DetectVersion(dir string) (tw.Version, VersionSource) {
	var installed struct {
		Version string `json:"version"`
	}
	if readJSON(filepath.Join(dir, "node_modules", "tailwindcss", "package.json"), &installed) {
		if v, ok := majorOf(installed.Version); ok {
			return v, SourceInstalled
		}
	}

	var manifest struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
		PeerDeps        map[string]string `json:"peerDependencies"`
	}
	if readJSON(filepath.Join(dir, "package.json"), &manifest) {
		for _, deps := range []map[string]string{manifest.Dependencies, manifest.DevDependencies, manifest.PeerDeps} {
			for _, name := range []string{"tailwindcss", "@tailwindcss/postcss", "@tailwindcss/vite", "@tailwindcss/cli"} {
				if v, ok := majorOf(deps[name]); ok {
					return v, SourceManifest
				}
			}
		}
	}
	return tw.DefaultVersion, SourceDefault
}

// majorOf extracts the major version of an npm version or range such as
// "3.4.1", "^4.0.0-beta.3", "~3.3" or ">=3.0.0 <4".
func majorOf(r string) (tw.Version, bool) {
	r = strings.TrimSpace(r)
	if i := strings.IndexAny(r, " |"); i >= 0 {
		r = r[:i]
	}
	r = strings.TrimLeft(r, "^~>=<v")
	if r == "" {
		return tw.VersionUnknown, false
	}
	// npm allows "3.x"; semver does not.
	r = strings.NewReplacer(".x", "", ".*", "").Replace(r)
	sv := "v" + r
	if !semver.IsValid(sv) {
		return tw.VersionUnknown, false
	}
	return tw.ParseVersion(semver.Major(sv))
}

func readJSON(path string, v any) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}
