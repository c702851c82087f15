// Package viewer ties decoding, image resolution and page selection into one parse pass.
package viewer

import (
	"fmt"
	"log/slog"
	"strconv"

	"golang.org/x/crypto/blake2b"

	"github.com/udisondev/slotview/internal/decoder"
	"github.com/udisondev/slotview/internal/imagename"
)

// ImageResolver picks the first available image among candidates.
type ImageResolver interface {
	Resolve(candidates []string) string
}

// Cell is one rendered grid position.
type Cell struct {
	Entry *decoder.Entry // nil for an empty slot

	// Candidates is the ordered image list for progressive loading.
	Candidates []string
	// Image is the resolved image, or the first candidate without a resolver.
	Image string
	// Badge is an overlay icon, set for DIY cards.
	Badge string
}

// View is the result of one parse pass.
type View struct {
	Pages  []Page
	Page   int // index of the decoded page
	Result decoder.Result
	Cells  []Cell
	Stats  string
}

// Session remembers the last parsed input so unchanged input is not decoded twice.
// Not safe for concurrent use.
type Session struct {
	decoder  *decoder.Decoder
	images   ImageResolver
	lang     string
	warning  string
	lastSig  [blake2b.Size256]byte
	hasParse bool
}

// NewSession creates a Session. images may be nil. warning is the load warning to
// append to every stats line, "" for none.
func NewSession(dec *decoder.Decoder, images ImageResolver, lang, warning string) *Session {
	return &Session{
		decoder: dec,
		images:  images,
		lang:    lang,
		warning: warning,
	}
}

// Language returns the display-language column.
func (s *Session) Language() string { return s.lang }

// SetLanguage changes the display-language column. The next Parse decodes again.
func (s *Session) SetLanguage(lang string) { s.lang = lang }

// Parse splits text into pages and decodes the requested one (clamped to the valid range).
// The second return is false when language, page and page text equal the previous call;
// the View then carries only Pages and Page.
func (s *Session) Parse(text string, page int) (View, bool) {
	pages := SplitPages(text)
	page = max(0, min(page, len(pages)-1))
	pageText := pages[page].Text

	sig := blake2b.Sum256([]byte(s.lang + "::" + strconv.Itoa(page) + "::" + pageText))
	if s.hasParse && sig == s.lastSig {
		return View{Pages: pages, Page: page}, false
	}
	s.lastSig = sig
	s.hasParse = true

	res := s.decoder.Decode(pageText, s.lang)
	cells := make([]Cell, len(res.Slots))
	for i, e := range res.Slots {
		cells[i] = s.cell(e)
	}

	v := View{
		Pages:  pages,
		Page:   page,
		Result: res,
		Cells:  cells,
		Stats:  s.stats(res, page, len(pages)),
	}

	slog.Debug("parsed page", "page", page, "pages", len(pages), "matched", res.Matched)
	return v, true
}

func (s *Session) cell(e *decoder.Entry) Cell {
	if e == nil {
		return Cell{}
	}

	v := imagename.NoVariant
	if e.HasVariant {
		v = imagename.Variant(e.Variant)
	}
	c := Cell{
		Entry:      e,
		Candidates: imagename.Candidates(e.CanonicalName, v),
	}
	if s.images != nil {
		c.Image = s.images.Resolve(c.Candidates)
	} else {
		c.Image = c.Candidates[0]
	}
	if e.IsDIY() {
		c.Badge = imagename.DIYBadge
	}
	return c
}

func (s *Session) stats(res decoder.Result, page, pages int) string {
	msg := fmt.Sprintf("识别 %d 条代码，填充 %d 个格子，未识别 %d 条。", res.Matched, res.Filled(), res.Unmatched)
	if pages > 1 {
		msg += fmt.Sprintf(" 当前页 %d/%d。", page+1, pages)
	}
	if s.warning != "" {
		msg += " " + s.warning
	}
	return msg
}
