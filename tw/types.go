package tw

import (
	"strconv"
	"strings"
)

// Version is the Tailwind major version the tables and bindings are keyed by.
type Version int

const (
	VersionUnknown Version = 0
	V2             Version = 2
	V3             Version = 3
	V4             Version = 4
)

// DefaultVersion is used whenever a version cannot be determined.
const DefaultVersion = V3

func (v Version) String() string {
	switch v {
	case V2, V3, V4:
		return "v" + strconv.Itoa(int(v))
	}
	return "unknown"
}

// orDefault maps anything outside the supported set to DefaultVersion.
func (v Version) orDefault() Version {
	switch v {
	case V2, V3, V4:
		return v
	}
	return DefaultVersion
}

// ParseVersion accepts "3", "v3", "3.4.1", "v4.0.0-beta.1" and similar.
func ParseVersion(s string) (Version, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	if i := strings.IndexAny(s, ".-+"); i >= 0 {
		s = s[:i]
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return VersionUnknown, false
	}
	switch v := Version(n); v {
	case V2, V3, V4:
		return v, true
	}
	return VersionUnknown, false
}

// Category is the coarse grouping a utility class belongs to.
type Category string

const (
	CategoryLayout        Category = "layout"
	CategoryFlexbox       Category = "flexbox"
	CategoryGrid          Category = "grid"
	CategorySpacing       Category = "spacing"
	CategorySizing        Category = "sizing"
	CategoryTypography    Category = "typography"
	CategoryColor         Category = "color"
	CategoryBackground    Category = "background"
	CategoryBorder        Category = "border"
	CategoryEffect        Category = "effect"
	CategoryFilter        Category = "filter"
	CategoryTransform     Category = "transform"
	CategoryTransition    Category = "transition"
	CategoryInteractivity Category = "interactivity"
	CategorySVG           Category = "svg"
	CategoryTable         Category = "table"
	CategoryAccessibility Category = "accessibility"
	CategoryUtility       Category = "utility"
)

// Axis is the side selector a binding writes to.
type Axis string

const (
	AxisNone Axis = ""
	AxisX    Axis = "x"
	AxisY    Axis = "y"
	AxisXY   Axis = "xy"
)

// Declaration is one CSS property/value pair produced by a class.
type Declaration struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// ParsedClass is the structured interpretation of a single class token.
// Raw can always be rebuilt as strings.Join(append(Variants, Base), ":").
type ParsedClass struct {
	Raw      string   `json:"raw"`
	Variants []string `json:"variants,omitempty"`
	Base     string   `json:"base"`

	Arbitrary bool `json:"arbitrary,omitempty"`
	Negative  bool `json:"negative,omitempty"`
	Important bool `json:"important,omitempty"`

	// Prefix is the binding prefix the base token was split on ("p", "bg",
	// "grid-cols"), Value the remainder as written ("4", "slate-500", or the
	// bracket contents of an arbitrary value).
	Prefix   string `json:"prefix"`
	Value    string `json:"value"`
	Modifier string `json:"modifier,omitempty"`

	Properties []string `json:"properties"`
	// ResolvedValue is nil when the value token has no entry in the active scale.
	ResolvedValue *string       `json:"resolvedValue"`
	Declarations  []Declaration `json:"declarations,omitempty"`

	Category    Category `json:"category"`
	Description string   `json:"description"`
	Relevance   float64  `json:"relevance"`
}

// Resolved reports whether the class produced a concrete CSS value.
func (p ParsedClass) Resolved() bool {
	return p.ResolvedValue != nil
}

// Val returns the resolved value or "" when unresolved.
func (p ParsedClass) Val() string {
	if p.ResolvedValue == nil {
		return ""
	}
	return *p.ResolvedValue
}

// Diagnostic describes a recoverable problem found while merging or loading
// configuration. Processing continues after a diagnostic is reported.
type Diagnostic struct {
	Source  string
	Message string
	Err     error
}

func (d Diagnostic) String() string {
	var b strings.Builder
	if d.Source != "" {
		b.WriteString(d.Source)
		b.WriteString(": ")
	}
	b.WriteString(d.Message)
	if d.Err != nil {
		b.WriteString(": ")
		b.WriteString(d.Err.Error())
	}
	return b.String()
}

func strPtr(s string) *string {
	return &s
}
