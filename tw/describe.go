package tw

import (
	"strconv"
	"strings"
)

// describe renders the one-line, human-readable summary shown next to a
// completion item.
func describe(pc ParsedClass, known bool) string {
	var b strings.Builder
	switch {
	case !known || len(pc.Properties) == 0:
		b.WriteString("Unknown utility ")
		b.WriteString(strconv.Quote(pc.Base))
		b.WriteString(".")
	case len(pc.Declarations) == 0:
		b.WriteString("Sets ")
		b.WriteString(joinWords(pc.Properties))
		if pc.Value != "" {
			b.WriteString("; ")
			b.WriteString(strconv.Quote(pc.Value))
			b.WriteString(" is not a value of this utility")
		}
		b.WriteString(".")
	default:
		parts := make([]string, 0, len(pc.Declarations))
		for _, d := range pc.Declarations {
			v := annotate(d.Value)
			if !pc.Arbitrary && pc.Value != "" && isColorValue(d.Value) && d.Value != pc.Value {
				v += " (" + pc.Value + ")"
			}
			parts = append(parts, d.Property+" to "+v)
		}
		b.WriteString("Sets ")
		b.WriteString(joinWords(parts))
		b.WriteString(".")
	}
	if pc.Important {
		b.WriteString(" Marked !important.")
	}
	return b.String()
}

// annotate appends the pixel size to rem lengths: "1rem" -> "1rem (16px)".
func annotate(v string) string {
	if !strings.HasSuffix(v, "rem") {
		return v
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(v, "rem"), 64)
	if err != nil {
		return v
	}
	return v + " (" + strconv.FormatFloat(f*16, 'f', -1, 64) + "px)"
}

func joinWords(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}

// variantClause describes the conditions a variant chain adds.
func variantClause(variants []Variant) string {
	if len(variants) == 0 {
		return ""
	}
	parts := make([]string, 0, len(variants))
	for _, v := range variants {
		switch v.Kind {
		case VariantScreen, VariantContainer, VariantMedia, VariantSupports:
			parts = append(parts, v.Name+" ("+strings.TrimPrefix(strings.TrimPrefix(v.AtRule, "@media "), "@")+")")
		default:
			parts = append(parts, v.Name)
		}
	}
	return " Applies with " + joinWords(parts) + "."
}
