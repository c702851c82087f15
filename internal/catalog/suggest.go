package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggestion is a catalog iName close to a queried name.
type Suggestion struct {
	IName    string
	Distance int
}

// Suggest returns up to n iNames closest to name, nearest first.
// Comparison is case-insensitive; names further away than the length-based limit are skipped.
func (c *Catalog) Suggest(name string, n int) []Suggestion {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" || n <= 0 {
		return nil
	}

	var out []Suggestion
	for _, cand := range c.names {
		lower := strings.ToLower(cand)
		dist := levenshtein.ComputeDistance(query, lower)
		if dist > suggestLimit(len(lower)) {
			continue
		}
		out = append(out, Suggestion{IName: cand, Distance: dist})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Distance == out[j].Distance {
			return out[i].IName < out[j].IName
		}
		return out[i].Distance < out[j].Distance
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
