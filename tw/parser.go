package tw

import (
	"strconv"
	"strings"
)

// splitTopLevel splits on ':' outside of [] and () so arbitrary values and
// selectors like "[&:hover]" or "bg-[url(http://x)]" stay whole.
func splitTopLevel(raw string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				parts = append(parts, raw[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, raw[start:])
}

// splitVariants peels recognised variants off the front of raw. Scanning
// stops at the first segment that is not a known variant; it and everything
// after it form the base token, so unknown "word:" prefixes are kept.
func (r *variantRegistry) splitVariants(raw string) ([]Variant, string) {
	parts := splitTopLevel(raw)
	var variants []Variant
	i := 0
	for ; i < len(parts)-1; i++ {
		v, ok := r.match(parts[i])
		if !ok {
			break
		}
		variants = append(variants, v)
	}
	return variants, strings.Join(parts[i:], ":")
}

// token is a lexed base token with its markers stripped.
type token struct {
	important bool
	negative  bool
	arbitrary bool
	// unprefixed is set when a theme prefix is configured but the token
	// does not carry it.
	unprefixed bool
	// body is the base token without "!", theme prefix or "-".
	body string
	// Set for arbitrary values only; for scale values the prefix split
	// depends on the binding table.
	prefix   string
	value    string
	modifier string
}

// lexBase strips the important marker (leading in v3, trailing in v4), the
// configured theme prefix and a leading "-", then detects "prefix-[value]"
// and the v4 "prefix-(--var)" shorthand.
func lexBase(base, themePrefix string) token {
	var t token
	s := base
	if len(s) > 1 && s[0] == '!' {
		t.important, s = true, s[1:]
	} else if len(s) > 1 && s[len(s)-1] == '!' {
		t.important, s = true, s[:len(s)-1]
	}
	if themePrefix != "" {
		if strings.HasPrefix(s, "-"+themePrefix) && len(s) > len(themePrefix)+1 {
			t.negative, s = true, s[len(themePrefix)+1:]
		} else if strings.HasPrefix(s, themePrefix) && len(s) > len(themePrefix) {
			s = s[len(themePrefix):]
		} else {
			t.unprefixed = true
		}
	}
	if len(s) > 1 && s[0] == '-' {
		t.negative, s = true, s[1:]
	}
	t.body = s

	if prefix, value, mod, ok := cutArbitrary(s, '[', ']'); ok {
		t.arbitrary, t.prefix, t.value, t.modifier = true, prefix, value, mod
		return t
	}
	if prefix, value, mod, ok := cutArbitrary(s, '(', ')'); ok && prefix != "" {
		hint, name, hinted := strings.Cut(value, ":")
		if !hinted {
			hint, name = "", value
		}
		if strings.HasPrefix(name, "--") {
			value = "var(" + name + ")"
			if hinted {
				value = hint + ":" + value
			}
			t.arbitrary, t.prefix, t.value, t.modifier = true, prefix, value, mod
		}
	}
	return t
}

// cutArbitrary finds "prefix-<open>value<close>" with an optional trailing
// "/modifier". The opening bracket must start the token or follow a dash.
func cutArbitrary(s string, open, close byte) (prefix, value, mod string, ok bool) {
	i := strings.IndexByte(s, open)
	if i < 0 || (i > 0 && s[i-1] != '-') {
		return "", "", "", false
	}
	depth := 0
	j := -1
	for k := i; k < len(s); k++ {
		switch s[k] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				j = k
			}
		}
		if j >= 0 {
			break
		}
	}
	if j < 0 || j == i+1 {
		return "", "", "", false
	}
	switch {
	case j == len(s)-1:
	case s[j+1] == '/' && j+2 < len(s):
		mod = s[j+2:]
	default:
		return "", "", "", false
	}
	return strings.TrimSuffix(s[:i], "-"), s[i+1 : j], mod, true
}

type valueKind int

const (
	kindOther valueKind = iota
	kindColor
	kindImage
	kindNumber
	kindAny
)

// typeHints are the "hint:" prefixes an arbitrary value may carry to force
// its interpretation, as in "text-[length:var(--size)]".
var typeHints = map[string]valueKind{
	"color":         kindColor,
	"url":           kindImage,
	"image":         kindImage,
	"number":        kindNumber,
	"length":        kindOther,
	"size":          kindOther,
	"percentage":    kindOther,
	"position":      kindOther,
	"line-width":    kindOther,
	"absolute-size": kindOther,
	"relative-size": kindOther,
	"family-name":   kindOther,
	"shadow":        kindOther,
	"any":           kindAny,
}

// classifyArbitrary strips an optional type hint and reports what kind of
// value the remainder is.
func classifyArbitrary(value string) (string, valueKind) {
	if hint, rest, ok := strings.Cut(value, ":"); ok {
		if k, known := typeHints[hint]; known {
			return rest, k
		}
	}
	v := strings.TrimSpace(value)
	switch {
	case isColorValue(v):
		return value, kindColor
	case strings.HasPrefix(v, "url(") || strings.Contains(v, "gradient("):
		return value, kindImage
	case strings.HasPrefix(v, "var(") || strings.HasPrefix(v, "--"):
		return value, kindAny
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return value, kindNumber
	}
	return value, kindOther
}
