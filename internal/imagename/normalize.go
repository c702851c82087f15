// Package imagename derives image file candidates for catalog iNames.
package imagename

import (
	"strings"
)

// rule rewrites names matching a predicate to one shared asset name.
// Exactly one of target and derive is set.
type rule struct {
	match  func(name string) bool
	target string
	derive func(name string) string
}

func prefix(p string) func(string) bool {
	return func(name string) bool { return strings.HasPrefix(name, p) }
}

// rules are evaluated in order, first match wins.
var rules = []rule{
	{match: prefix("PltMoney"), target: "PltMoney"},
	{match: prefix("PltCedar"), target: "PltConifer"},
	{match: prefix("PltOak"), target: "PltOak"},
	{match: prefix("PltPalm"), target: "PltPalm"},
	{match: prefix("PltBamboo"), target: "PltBamboo"},
	{match: prefix("PltApple"), target: "PltApple"},
	{match: func(name string) bool { return name == "PltOrange0" }, target: "PltApple"},
	{match: prefix("PltOrange"), target: "PltOrange"},
	{match: prefix("PltPear"), target: "PltPear"},
	{match: prefix("PltPeach"), target: "PltPeach"},
	{match: prefix("PltCherry"), target: "PltPeach"},
	{
		match:  func(name string) bool { return strings.HasPrefix(name, "PltCosmos") && endsWithDigit(name) },
		derive: StripTrailingDigits,
	},
	{match: prefix("PltSquashYellow"), target: "PltSquashYellow"},
	{match: prefix("PltSquashGreen"), target: "PltSquashGreen"},
	{match: prefix("PltSquashWhite"), target: "PltSquashWhite"},
	{
		match: func(name string) bool {
			return strings.HasPrefix(name, "PltSquash") && !strings.HasPrefix(name, "PltSquashOrange")
		},
		target: "PltSquashOrange",
	},
}

// Normalize maps generated plant names to the asset name they share.
// Names matching no rule are returned unchanged.
func Normalize(name string) string {
	if name == "" {
		return ""
	}
	for _, r := range rules {
		if !r.match(name) {
			continue
		}
		if r.derive != nil {
			return r.derive(name)
		}
		return r.target
	}
	return name
}

// StripTrailingDigits removes the ASCII digits at the end of name.
func StripTrailingDigits(name string) string {
	return strings.TrimRight(name, "0123456789")
}

func endsWithDigit(name string) bool {
	if name == "" {
		return false
	}
	c := name[len(name)-1]
	return c >= '0' && c <= '9'
}
