package tw

import (
	"sort"
	"strconv"
	"strings"
)

// Screen is a named responsive breakpoint. Tailwind is mobile-first, so a
// screen with only Min applies at that width and above.
type Screen struct {
	Name string
	Min  string
	Max  string
	// Raw is a full media condition, used instead of Min/Max when set.
	Raw string
}

// MediaQuery renders the @media condition for the screen.
func (s Screen) MediaQuery() string {
	switch {
	case s.Raw != "":
		return s.Raw
	case s.Min != "" && s.Max != "":
		return "(min-width: " + s.Min + ") and (max-width: " + s.Max + ")"
	case s.Max != "":
		return "(max-width: " + s.Max + ")"
	}
	return "(min-width: " + s.Min + ")"
}

// DefaultScreens returns the standard breakpoints: 640/768/1024/1280/1536px.
// v4 expresses the same widths in rem.
func DefaultScreens(v Version) []Screen {
	if v == V4 {
		return []Screen{
			{Name: "sm", Min: "40rem"},
			{Name: "md", Min: "48rem"},
			{Name: "lg", Min: "64rem"},
			{Name: "xl", Min: "80rem"},
			{Name: "2xl", Min: "96rem"},
		}
	}
	return []Screen{
		{Name: "sm", Min: "640px"},
		{Name: "md", Min: "768px"},
		{Name: "lg", Min: "1024px"},
		{Name: "xl", Min: "1280px"},
		{Name: "2xl", Min: "1536px"},
	}
}

// containerSizes are the v4 @container breakpoints.
var containerSizes = []string{"3xs", "2xs", "xs", "sm", "md", "lg", "xl", "2xl", "3xl", "4xl", "5xl", "6xl", "7xl"}

// ActiveScreens overlays the theme's screens on the version defaults, or
// uses them alone when the theme replaces screens, and orders the result
// by width, smallest first.
func (t *Theme) ActiveScreens(v Version) []Screen {
	byName := make(map[string]Screen)
	if !t.Replaces("screens") {
		for _, s := range DefaultScreens(v) {
			byName[s.Name] = s
		}
	}
	if t != nil {
		for name, s := range t.Screens {
			s.Name = name
			byName[name] = s
		}
	}
	out := make([]Screen, 0, len(byName))
	for _, name := range sortedKeys(byName) {
		out = append(out, byName[name])
	}
	sort.SliceStable(out, func(i, j int) bool {
		wi, oki := cssPixels(out[i].Min)
		wj, okj := cssPixels(out[j].Min)
		if oki != okj {
			return oki
		}
		return wi < wj
	})
	return out
}

// cssPixels converts px, rem and em lengths to pixels at a 16px root.
func cssPixels(v string) (float64, bool) {
	v = strings.TrimSpace(v)
	unit := 1.0
	switch {
	case strings.HasSuffix(v, "px"):
		v = strings.TrimSuffix(v, "px")
	case strings.HasSuffix(v, "rem"):
		v, unit = strings.TrimSuffix(v, "rem"), 16
	case strings.HasSuffix(v, "em"):
		v, unit = strings.TrimSuffix(v, "em"), 16
	case v == "0":
	default:
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f * unit, true
}

func screenByName(screens []Screen, name string) (Screen, bool) {
	for _, s := range screens {
		if s.Name == name {
			return s, true
		}
	}
	return Screen{}, false
}
