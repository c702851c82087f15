package viewer

import (
	"regexp"
	"strings"
)

// DefaultPageTitle names the implicit first page.
const DefaultPageTitle = "第1页"

// pageHeaderRe matches a "[title]" line that starts a new page.
var pageHeaderRe = regexp.MustCompile(`^\[(.+)]$`)

// Page is one titled section of the input text.
type Page struct {
	Title string
	Text  string
}

// SplitPages splits text at "[title]" lines. Text before the first header belongs to
// DefaultPageTitle. Pages without any non-blank content are dropped; when nothing is
// left a single empty default page is returned.
func SplitPages(text string) []Page {
	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")

	var pages []Page
	title := DefaultPageTitle
	var current []string

	flush := func() {
		if strings.TrimSpace(strings.Join(current, "")) != "" {
			pages = append(pages, Page{Title: title, Text: strings.Join(current, "\n")})
		}
	}

	for _, line := range lines {
		if m := pageHeaderRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			flush()
			title = m[1]
			current = nil
			continue
		}
		current = append(current, line)
	}
	flush()

	if len(pages) == 0 {
		pages = append(pages, Page{Title: DefaultPageTitle})
	}
	return pages
}
