package twclass

import (
	"strings"

	"github.com/agiangrant/twclass/tw"
)

// ClassList is the interpretation of a whole class attribute.
type ClassList struct {
	Classes []tw.ParsedClass
	// Unknown holds the tokens that produced no declarations, in order.
	Unknown []string
}

// ResolveClasses interprets a space separated class attribute such as
// "flex md:hover:bg-red-500 p-4". Duplicate tokens are resolved once.
// When record is set every token counts as one use in the usage ledger.
func (p *Project) ResolveClasses(classes string, record bool) ClassList {
	return resolveClassList(p.model, classes, record)
}

func resolveClassList(m *tw.Model, classes string, record bool) ClassList {
	var out ClassList
	seen := make(map[string]bool)
	for _, raw := range strings.Fields(classes) {
		if seen[raw] {
			continue
		}
		seen[raw] = true
		if record {
			m.RecordUsage(raw)
		}
		pc := m.Resolve(raw)
		out.Classes = append(out.Classes, pc)
		if len(pc.Declarations) == 0 {
			out.Unknown = append(out.Unknown, raw)
		}
	}
	return out
}

// CSS renders every class of the attribute in order, skipping those that
// generate nothing.
func (p *Project) CSS(classes string) string {
	var b strings.Builder
	seen := make(map[string]bool)
	for _, raw := range strings.Fields(classes) {
		if seen[raw] {
			continue
		}
		seen[raw] = true
		b.WriteString(p.model.CSS(raw))
	}
	return b.String()
}
