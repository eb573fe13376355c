package twconfig

import (
	"strings"

	"github.com/agiangrant/twclass/tw"
)

// themeNamespaces maps v4 theme variable namespaces to the v3 theme keys
// package tw reads. Longer prefixes come first.
var themeNamespaces = []struct {
	prefix string
	key    string
}{
	{"--font-weight-", "fontWeight"},
	{"--breakpoint-", "screens"},
	{"--container-", "containers"},
	{"--animate-", "animation"},
	{"--spacing-", "spacing"},
	{"--radius-", "borderRadius"},
	{"--shadow-", "boxShadow"},
	{"--color-", "colors"},
	{"--text-", "fontSize"},
	{"--font-", "fontFamily"},
}

// parseCSS reads a v4 CSS-first configuration. Only the at-rules that
// shape the class vocabulary are interpreted: @import "tailwindcss",
// @theme blocks, @plugin, @config and @custom-variant dark. Everything
// else is skipped.
func parseCSS(data []byte) tw.Tree {
	src := stripComments(string(data))
	tree := tw.Tree{}
	theme := tw.Tree{}
	c := cssThemeCollector{theme: theme}
	var plugins, extends []any

	for i := 0; i < len(src); {
		at := strings.IndexByte(src[i:], '@')
		if at < 0 {
			break
		}
		i += at + 1
		name := atRuleName(src[i:])
		i += len(name)
		rest := src[i:]

		switch name {
		case "theme":
			open := strings.IndexByte(rest, '{')
			if open < 0 {
				i = len(src)
				continue
			}
			body, n := block(rest[open:])
			c.read(body)
			tree["version"] = "4"
			i += open + n
		case "import", "plugin", "config":
			end := strings.IndexByte(rest, ';')
			if end < 0 {
				end = len(rest)
			}
			arg := quoted(rest[:end])
			switch {
			case name == "import" && (arg == "tailwindcss" || strings.HasPrefix(arg, "tailwindcss/")):
				tree["version"] = "4"
			case name == "plugin" && arg != "":
				plugins = append(plugins, arg)
			case name == "config" && arg != "":
				extends = append(extends, arg)
			}
			i += end
		case "custom-variant":
			if strings.HasPrefix(strings.TrimSpace(rest), "dark") {
				tree["darkMode"] = "selector"
			}
		}
	}

	c.finish()
	if len(theme) > 0 {
		// @theme declarations add to the defaults the way extend does.
		tree["theme"] = tw.Tree{"extend": theme}
	}
	if len(plugins) > 0 {
		tree["plugins"] = plugins
	}
	if len(extends) > 0 {
		tree["extends"] = extends
	}
	return tree
}

type cssThemeCollector struct {
	theme       tw.Tree
	lineHeights map[string]string
}

func (c *cssThemeCollector) read(body string) {
	for _, decl := range strings.Split(body, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name, value = strings.TrimSpace(name), strings.TrimSpace(value)
		// "--color-*: initial" clears a namespace; the defaults stay
		// available here.
		if !strings.HasPrefix(name, "--") || value == "" || value == "initial" {
			continue
		}
		c.declare(name, value)
	}
}

func (c *cssThemeCollector) declare(name, value string) {
	for _, ns := range themeNamespaces {
		key, ok := strings.CutPrefix(name, ns.prefix)
		if !ok || key == "" {
			continue
		}
		switch ns.key {
		case "colors":
			c.color(key, value)
		case "fontSize":
			if size, ok := strings.CutSuffix(key, "--line-height"); ok {
				if c.lineHeights == nil {
					c.lineHeights = make(map[string]string)
				}
				c.lineHeights[size] = value
				return
			}
			if strings.Contains(key, "--") {
				return
			}
			c.section(ns.key)[key] = value
		default:
			if strings.Contains(key, "--") {
				return
			}
			c.section(ns.key)[key] = value
		}
		return
	}
}

func (c *cssThemeCollector) section(key string) tw.Tree {
	if m, ok := c.theme[key].(tw.Tree); ok {
		return m
	}
	m := tw.Tree{}
	c.theme[key] = m
	return m
}

// color files "--color-brand-500" under brand/500 and "--color-brand"
// under brand/DEFAULT once the family has shades.
func (c *cssThemeCollector) color(key, value string) {
	colors := c.section("colors")
	family, shade := key, "DEFAULT"
	if i := strings.LastIndexByte(key, '-'); i > 0 && isShade(key[i+1:]) {
		family, shade = key[:i], key[i+1:]
	}

	switch cur := colors[family].(type) {
	case tw.Tree:
		cur[shade] = value
	case string:
		if shade == "DEFAULT" {
			colors[family] = value
			return
		}
		colors[family] = tw.Tree{"DEFAULT": cur, shade: value}
	default:
		if shade == "DEFAULT" {
			colors[family] = value
			return
		}
		colors[family] = tw.Tree{shade: value}
	}
}

func isShade(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// finish pairs collected line heights with their font sizes.
func (c *cssThemeCollector) finish() {
	sizes, ok := c.theme["fontSize"].(tw.Tree)
	if !ok {
		return
	}
	for name, lh := range c.lineHeights {
		if size, ok := sizes[name].(string); ok {
			sizes[name] = []any{size, tw.Tree{"lineHeight": lh}}
		}
	}
}

func stripComments(s string) string {
	var b strings.Builder
	for {
		i := strings.Index(s, "/*")
		if i < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:i])
		j := strings.Index(s[i+2:], "*/")
		if j < 0 {
			return b.String()
		}
		s = s[i+2+j+2:]
	}
}

func atRuleName(s string) string {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '-') {
			return s[:i]
		}
	}
	return s
}

// block returns the contents of the brace block s starts with and the
// number of bytes consumed, closing brace included. An unterminated block
// runs to the end of s.
func block(s string) (string, int) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[1:i], i + 1
			}
		}
	}
	return s[1:], len(s)
}

// quoted returns the first quoted string in s, or s trimmed when there is
// none.
func quoted(s string) string {
	s = strings.TrimSpace(s)
	for _, q := range []byte{'"', '\''} {
		i := strings.IndexByte(s, q)
		if i < 0 {
			continue
		}
		if j := strings.IndexByte(s[i+1:], q); j >= 0 {
			return s[i+1 : i+1+j]
		}
	}
	return s
}
