// Package twconfig locates and reads Tailwind configuration files into the
// trees package tw merges. JavaScript configs are recognised but never
// evaluated; data formats (JSON, YAML, TOML) and v4 CSS-first configs are
// parsed directly.
package twconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/agiangrant/twclass/tw"
)

var (
	// ErrScriptConfig is returned for tailwind.config.{js,cjs,mjs,ts}.
	// Those need a JavaScript runtime to evaluate.
	ErrScriptConfig = errors.New("twconfig: script configuration cannot be evaluated")
	// ErrUnsupportedFormat is returned for extensions Parse does not know.
	ErrUnsupportedFormat = errors.New("twconfig: unsupported configuration format")
)

// Format is the syntax of a configuration file, derived from its extension.
type Format string

const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatTOML   Format = "toml"
	FormatCSS    Format = "css"
	FormatScript Format = "script"
)

// FormatOf maps a file name to its Format.
func FormatOf(name string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".toml":
		return FormatTOML, true
	case ".css":
		return FormatCSS, true
	case ".js", ".cjs", ".mjs", ".ts", ".cts", ".mts":
		return FormatScript, true
	}
	return "", false
}

// Parse decodes data according to name's extension. The result only holds
// string-keyed maps, so YAML keys such as `500:` come back as "500".
func Parse(name string, data []byte) (tw.Tree, error) {
	format, ok := FormatOf(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(name))
	}

	var raw map[string]any
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", filepath.Base(name), err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", filepath.Base(name), err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", filepath.Base(name), err)
		}
	case FormatCSS:
		return parseCSS(data), nil
	case FormatScript:
		return nil, fmt.Errorf("%w: %s", ErrScriptConfig, filepath.Base(name))
	}

	if raw == nil {
		return tw.Tree{}, nil
	}
	return normalise(raw).(tw.Tree), nil
}

// normalise rewrites decoder output into plain tree values: map[any]any
// becomes a string-keyed map and json.Number becomes int64 or float64.
func normalise(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(tw.Tree, len(t))
		for k, val := range t {
			out[k] = normalise(val)
		}
		return out
	case map[any]any:
		out := make(tw.Tree, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalise(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalise(val)
		}
		return out
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case int:
		return int64(t)
	}
	return v
}
