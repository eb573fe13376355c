package tw

import "strings"

// cssBody renders the declaration block of a resolved base class, or ""
// when the class produces no declarations.
func cssBody(pc ParsedClass) string {
	if len(pc.Declarations) == 0 {
		return ""
	}
	var b strings.Builder
	for _, d := range pc.Declarations {
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value)
		if pc.Important {
			b.WriteString(" !important")
		}
		b.WriteString(";\n")
	}
	return b.String()
}

// renderRule wraps a declaration block in the selector and at-rules the
// variant chain calls for. At-rules nest outermost-first in written order.
func renderRule(raw string, variants []Variant, body string) string {
	sel := "." + EscapeClass(raw)
	var pseudoElements []Variant
	var atRules []string
	for _, v := range variants {
		if v.AtRule != "" {
			atRules = append(atRules, v.AtRule)
		}
		if v.Kind == VariantPseudoElement {
			pseudoElements = append(pseudoElements, v)
			continue
		}
		sel = applySelector(v.Selector, sel)
	}
	// Pseudo-elements must end the selector.
	for _, v := range pseudoElements {
		sel = applySelector(v.Selector, sel)
	}

	var b strings.Builder
	for i, rule := range atRules {
		indent(&b, i)
		b.WriteString(rule)
		b.WriteString(" {\n")
	}
	depth := len(atRules)
	indent(&b, depth)
	b.WriteString(sel)
	b.WriteString(" {\n")
	for _, line := range strings.Split(strings.TrimSuffix(body, "\n"), "\n") {
		indent(&b, depth+1)
		b.WriteString(line)
		b.WriteString("\n")
	}
	indent(&b, depth)
	b.WriteString("}\n")
	for i := depth - 1; i >= 0; i-- {
		indent(&b, i)
		b.WriteString("}\n")
	}
	return b.String()
}

func applySelector(tmpl, sel string) string {
	if tmpl == "" || tmpl == "&" {
		return sel
	}
	return strings.ReplaceAll(tmpl, "&", sel)
}

func indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}

// EscapeClass escapes a class name for use in a CSS selector:
// "md:w-1/2" becomes `md\:w-1\/2`.
func EscapeClass(class string) string {
	var b strings.Builder
	for i := 0; i < len(class); i++ {
		c := class[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '-', c == '_', c >= 0x80:
			b.WriteByte(c)
		case c >= '0' && c <= '9':
			if i == 0 {
				b.WriteString(`\3`)
				b.WriteByte(c)
				b.WriteByte(' ')
				continue
			}
			b.WriteByte(c)
		default:
			b.WriteByte('\\')
			b.WriteByte(c)
		}
	}
	return b.String()
}
