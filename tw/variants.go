package tw

import "strings"

// VariantKind groups variants by how they change the generated rule.
type VariantKind string

const (
	VariantState         VariantKind = "state"
	VariantPseudoElement VariantKind = "pseudo-element"
	VariantMedia         VariantKind = "media"
	VariantScreen        VariantKind = "screen"
	VariantContainer     VariantKind = "container"
	VariantDark          VariantKind = "dark"
	VariantGroup         VariantKind = "group"
	VariantPeer          VariantKind = "peer"
	VariantAttribute     VariantKind = "attribute"
	VariantSupports      VariantKind = "supports"
	VariantArbitrary     VariantKind = "arbitrary"
)

// Variant is a recognised variant segment. Selector is a template where
// "&" stands for the class selector; AtRule, when set, wraps the rule.
type Variant struct {
	Name     string
	Kind     VariantKind
	Selector string
	AtRule   string
}

type variantDef struct {
	kind     VariantKind
	selector string
	atRule   string
	since    Version
}

func state(sel string) variantDef { return variantDef{kind: VariantState, selector: "&" + sel} }
func stateSince(sel string, v Version) variantDef {
	d := state(sel)
	d.since = v
	return d
}
func pseudo(sel string, v Version) variantDef {
	return variantDef{kind: VariantPseudoElement, selector: "&" + sel, since: v}
}
func media(rule string, v Version) variantDef {
	return variantDef{kind: VariantMedia, selector: "&", atRule: rule, since: v}
}

// staticVariants are the fixed-name variants; pattern variants (screens,
// group-*, aria-*, data-*, ...) are matched in variantRegistry.match.
var staticVariants = map[string]variantDef{
	"hover":             state(":hover"),
	"focus":             state(":focus"),
	"focus-within":      state(":focus-within"),
	"focus-visible":     state(":focus-visible"),
	"active":            state(":active"),
	"visited":           state(":visited"),
	"target":            state(":target"),
	"disabled":          state(":disabled"),
	"enabled":           state(":enabled"),
	"checked":           state(":checked"),
	"indeterminate":     state(":indeterminate"),
	"default":           state(":default"),
	"required":          state(":required"),
	"valid":             state(":valid"),
	"invalid":           state(":invalid"),
	"in-range":          state(":in-range"),
	"out-of-range":      state(":out-of-range"),
	"placeholder-shown": state(":placeholder-shown"),
	"autofill":          state(":autofill"),
	"read-only":         state(":read-only"),
	"first":             state(":first-child"),
	"last":              state(":last-child"),
	"only":              state(":only-child"),
	"odd":               state(":nth-child(odd)"),
	"even":              state(":nth-child(even)"),
	"first-of-type":     state(":first-of-type"),
	"last-of-type":      state(":last-of-type"),
	"only-of-type":      state(":only-of-type"),
	"empty":             state(":empty"),
	"open":              stateSince("[open]", V3),
	"inert":             stateSince(":is([inert], [inert] *)", V4),
	"user-valid":        stateSince(":user-valid", V4),
	"user-invalid":      stateSince(":user-invalid", V4),
	"before":            pseudo("::before", VersionUnknown),
	"after":             pseudo("::after", VersionUnknown),
	"placeholder":       pseudo("::placeholder", VersionUnknown),
	"first-line":        pseudo("::first-line", VersionUnknown),
	"first-letter":      pseudo("::first-letter", VersionUnknown),
	"file":              pseudo("::file-selector-button", V3),
	"marker":            pseudo("::marker", V3),
	"selection":         pseudo("::selection", V3),
	"backdrop":          pseudo("::backdrop", V3),
	"print":             media("@media print", VersionUnknown),
	"motion-safe":       media("@media (prefers-reduced-motion: no-preference)", VersionUnknown),
	"motion-reduce":     media("@media (prefers-reduced-motion: reduce)", VersionUnknown),
	"contrast-more":     media("@media (prefers-contrast: more)", V3),
	"contrast-less":     media("@media (prefers-contrast: less)", V3),
	"portrait":          media("@media (orientation: portrait)", V3),
	"landscape":         media("@media (orientation: landscape)", V3),
	"forced-colors":     media("@media (forced-colors: active)", V3),
	"starting":          media("@starting-style", V4),
	"ltr":               {kind: VariantAttribute, selector: `:where([dir="ltr"], [dir="ltr"] *) &`, since: V3},
	"rtl":               {kind: VariantAttribute, selector: `:where([dir="rtl"], [dir="rtl"] *) &`, since: V3},
	"*":                 {kind: VariantState, selector: ":is(& > *)", since: V3},
	"**":                {kind: VariantState, selector: ":is(& *)", since: V4},
}

var ariaStates = map[string]bool{
	"busy": true, "checked": true, "disabled": true, "expanded": true, "hidden": true,
	"pressed": true, "readonly": true, "required": true, "selected": true,
}

// variantRegistry recognises variant segments for one theme and version.
type variantRegistry struct {
	version    Version
	darkMode   string
	screens    []Screen
	containers bool
}

func newVariantRegistry(theme *Theme, v Version, screens []Screen) *variantRegistry {
	r := &variantRegistry{version: v, darkMode: "media", screens: screens, containers: v >= V4}
	if theme != nil {
		r.darkMode = theme.DarkMode
		for _, p := range theme.Plugins {
			if def, ok := lookupPlugin(p.ID); ok && def.match == "container-queries" {
				r.containers = true
			}
		}
	}
	return r
}

// match interprets one variant segment. Unknown segments report false.
func (r *variantRegistry) match(seg string) (Variant, bool) {
	if seg == "" {
		return Variant{}, false
	}
	if d, ok := staticVariants[seg]; ok {
		if d.since != VersionUnknown && r.version < d.since {
			return Variant{}, false
		}
		return Variant{Name: seg, Kind: d.kind, Selector: d.selector, AtRule: d.atRule}, true
	}
	if seg == "dark" {
		if r.darkMode == "class" || r.darkMode == "selector" {
			return Variant{Name: seg, Kind: VariantDark, Selector: ".dark &"}, true
		}
		return Variant{Name: seg, Kind: VariantDark, Selector: "&", AtRule: "@media (prefers-color-scheme: dark)"}, true
	}
	if s, ok := screenByName(r.screens, seg); ok {
		return Variant{Name: seg, Kind: VariantScreen, Selector: "&", AtRule: "@media " + s.MediaQuery()}, true
	}
	if isBracketed(seg) {
		return arbitraryVariant(seg)
	}
	if strings.HasPrefix(seg, "@") {
		if !r.containers {
			return Variant{}, false
		}
		return r.container(seg)
	}

	name, arg, hasArg := strings.Cut(seg, "-")
	if !hasArg {
		return Variant{}, false
	}
	switch name {
	case "max", "min":
		if r.version < V3 {
			return Variant{}, false
		}
		width := ""
		if isBracketed(arg) {
			width = unbracket(arg)
		} else if s, ok := screenByName(r.screens, arg); ok && s.Min != "" {
			width = s.Min
		}
		if width == "" {
			return Variant{}, false
		}
		rule := "@media (min-width: " + width + ")"
		if name == "max" {
			rule = "@media not all and (min-width: " + width + ")"
		}
		return Variant{Name: seg, Kind: VariantScreen, Selector: "&", AtRule: rule}, true
	case "group", "peer":
		return r.relational(seg, name, arg)
	case "aria":
		if r.version < V3 {
			return Variant{}, false
		}
		if isBracketed(arg) {
			return Variant{Name: seg, Kind: VariantAttribute, Selector: "&[aria-" + unbracket(arg) + "]"}, true
		}
		if ariaStates[arg] {
			return Variant{Name: seg, Kind: VariantAttribute, Selector: `&[aria-` + arg + `="true"]`}, true
		}
	case "data":
		if r.version < V3 {
			return Variant{}, false
		}
		if isBracketed(arg) {
			return Variant{Name: seg, Kind: VariantAttribute, Selector: "&[data-" + unbracket(arg) + "]"}, true
		}
		if r.version >= V4 && isIdent(arg) {
			return Variant{Name: seg, Kind: VariantAttribute, Selector: "&[data-" + arg + "]"}, true
		}
	case "supports":
		if r.version < V3 {
			return Variant{}, false
		}
		cond := arg
		if isBracketed(arg) {
			cond = unbracket(arg)
		} else if !isIdent(arg) {
			return Variant{}, false
		} else {
			cond = arg + ": var(--tw)"
		}
		return Variant{Name: seg, Kind: VariantSupports, Selector: "&", AtRule: "@supports (" + underscoresToSpaces(cond) + ")"}, true
	case "has":
		if r.version < V3 {
			return Variant{}, false
		}
		if inner, ok := r.innerSelector(arg); ok {
			return Variant{Name: seg, Kind: VariantState, Selector: "&:has(" + inner + ")"}, true
		}
	case "not":
		if r.version < V4 {
			return Variant{}, false
		}
		if inner, ok := r.innerSelector(arg); ok {
			return Variant{Name: seg, Kind: VariantState, Selector: "&:not(" + inner + ")"}, true
		}
	case "in":
		if r.version < V4 {
			return Variant{}, false
		}
		if inner, ok := r.innerSelector(arg); ok {
			return Variant{Name: seg, Kind: VariantGroup, Selector: ":where(*" + inner + ") &"}, true
		}
	case "nth":
		if r.version < V4 {
			return Variant{}, false
		}
		if isBracketed(arg) {
			return Variant{Name: seg, Kind: VariantState, Selector: "&:nth-child(" + underscoresToSpaces(unbracket(arg)) + ")"}, true
		}
		if isDigits(arg) {
			return Variant{Name: seg, Kind: VariantState, Selector: "&:nth-child(" + arg + ")"}, true
		}
	}
	return Variant{}, false
}

// innerSelector turns "checked" or "[:checked]" into ":checked".
func (r *variantRegistry) innerSelector(arg string) (string, bool) {
	if isBracketed(arg) {
		return underscoresToSpaces(unbracket(arg)), true
	}
	if d, ok := staticVariants[arg]; ok && d.kind == VariantState && strings.HasPrefix(d.selector, "&") {
		return strings.TrimPrefix(d.selector, "&"), true
	}
	return "", false
}

// relational handles group-* and peer-*, including named groups
// ("group-hover/item").
func (r *variantRegistry) relational(seg, name, arg string) (Variant, bool) {
	marker := "." + name
	if i := strings.LastIndexByte(arg, '/'); i > 0 && !strings.Contains(arg[i:], "]") {
		marker += `\/` + arg[i+1:]
		arg = arg[:i]
	}
	var inner string
	switch {
	case isBracketed(arg):
		inner = strings.ReplaceAll(underscoresToSpaces(unbracket(arg)), "&", "")
	case strings.HasPrefix(arg, "aria-") || strings.HasPrefix(arg, "data-"):
		v, ok := r.match(arg)
		if !ok {
			return Variant{}, false
		}
		inner = strings.TrimPrefix(v.Selector, "&")
	default:
		d, ok := staticVariants[arg]
		if !ok || d.kind != VariantState || !strings.HasPrefix(d.selector, "&") {
			return Variant{}, false
		}
		inner = strings.TrimPrefix(d.selector, "&")
	}
	kind, combinator := VariantGroup, " "
	if name == "peer" {
		kind, combinator = VariantPeer, " ~ "
	}
	return Variant{Name: seg, Kind: kind, Selector: marker + inner + combinator + "&"}, true
}

func (r *variantRegistry) container(seg string) (Variant, bool) {
	arg := strings.TrimPrefix(seg, "@")
	below := false
	if strings.HasPrefix(arg, "max-") {
		below, arg = true, strings.TrimPrefix(arg, "max-")
	}
	if i := strings.LastIndexByte(arg, '/'); i > 0 {
		arg = arg[:i]
	}
	width := ""
	if isBracketed(arg) {
		width = unbracket(arg)
	} else if w, ok := columnWidths[arg]; ok {
		width = w
	}
	if width == "" {
		return Variant{}, false
	}
	rule := "@container (min-width: " + width + ")"
	if below {
		rule = "@container (width < " + width + ")"
	}
	return Variant{Name: seg, Kind: VariantContainer, Selector: "&", AtRule: rule}, true
}

// arbitraryVariant handles "[&>*]" selectors and "[@media(...)]" at-rules.
func arbitraryVariant(seg string) (Variant, bool) {
	inner := underscoresToSpaces(unbracket(seg))
	if inner == "" {
		return Variant{}, false
	}
	if strings.HasPrefix(inner, "@") {
		return Variant{Name: seg, Kind: VariantArbitrary, Selector: "&", AtRule: inner}, true
	}
	if !strings.Contains(inner, "&") {
		inner = "& " + inner
	}
	return Variant{Name: seg, Kind: VariantArbitrary, Selector: inner}, true
}

func isBracketed(s string) bool {
	return len(s) >= 2 && s[0] == '[' && s[len(s)-1] == ']'
}

func unbracket(s string) string {
	return s[1 : len(s)-1]
}

func underscoresToSpaces(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r == '-' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
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
