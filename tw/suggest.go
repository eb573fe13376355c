package tw

import (
	"sort"

	"github.com/agext/levenshtein"
)

// MaxSuggestDistance is the largest edit distance Suggest reports.
const MaxSuggestDistance = 3

// Suggestion is a vocabulary class close to a mistyped one.
type Suggestion struct {
	Class    string
	Distance int
}

// Suggest returns up to limit vocabulary classes within MaxSuggestDistance
// edits of class, closest first and then by name. A class that is already
// in the vocabulary has no suggestions.
func (v *Vocabulary) Suggest(class string, limit int) []Suggestion {
	if v == nil || class == "" || limit <= 0 || v.Contains(class) {
		return nil
	}
	var out []Suggestion
	for _, c := range v.classes {
		if d := len(c) - len(class); d > MaxSuggestDistance || d < -MaxSuggestDistance {
			continue
		}
		if d := levenshtein.Distance(class, c, nil); d <= MaxSuggestDistance {
			out = append(out, Suggestion{Class: c, Distance: d})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Class < out[j].Class
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
