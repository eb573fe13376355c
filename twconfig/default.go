package twconfig

import (
	_ "embed"
	"strconv"

	"github.com/agiangrant/twclass/tw"
)

// DefaultConfig is the starter configuration in TOML form.
//
//go:embed default.toml
var DefaultConfig []byte

// Default returns the starter configuration as a tree pinned to v.
func Default(v tw.Version) tw.Tree {
	tree, err := Parse("default.toml", DefaultConfig)
	if err != nil {
		// The embedded file is parsed by the tests; failing here means a
		// broken build.
		panic("twconfig: embedded default.toml: " + err.Error())
	}
	if v != tw.VersionUnknown {
		tree["version"] = strconv.Itoa(int(v))
	}
	return tree
}
