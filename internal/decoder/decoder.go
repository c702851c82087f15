// Package decoder turns memory-patch code text into inventory slots.
package decoder

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/udisondev/slotview/internal/catalog"
	"github.com/udisondev/slotview/internal/constants"
	"github.com/udisondev/slotview/internal/layout"
)

// wordSep is any run of whitespace between code words, including the Unicode
// spaces pasted codes carry (NBSP, ideographic space, line separators, BOM).
const wordSep = `[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]+`

// quadRe matches one code: opcode, address, third word, fourth word.
var quadRe = regexp.MustCompile(`([0-9A-Fa-f]{8})` + wordSep + `([0-9A-Fa-f]{8})` + wordSep +
	`([0-9A-Fa-f]{8})` + wordSep + `([0-9A-Fa-f]{8})`)

// Result is the outcome of one decode pass.
type Result struct {
	// Slots has one element per grid position; nil means empty.
	Slots []*Entry

	// Matched counts codes whose address resolved, clears included.
	Matched int
	// Unmatched counts codes whose address is not a slot.
	Unmatched int
}

// Filled returns the number of non-empty slots.
func (r Result) Filled() int {
	n := 0
	for _, e := range r.Slots {
		if e != nil {
			n++
		}
	}
	return n
}

// Decoder resolves codes against an address table and a reference catalog.
// Both are read-only, so Decode is safe for concurrent use.
type Decoder struct {
	table   *layout.Table
	catalog *catalog.Catalog
}

// New creates a Decoder.
func New(table *layout.Table, cat *catalog.Catalog) *Decoder {
	return &Decoder{table: table, catalog: cat}
}

// Decode scans text left to right for non-overlapping quadruples and places each one
// into its slot. Later codes for the same slot overwrite earlier ones. Text that is
// not a quadruple is ignored; codes for unknown addresses are only counted.
func (d *Decoder) Decode(text, lang string) Result {
	res := Result{Slots: make([]*Entry, d.table.SlotCount())}

	for _, m := range quadRe.FindAllStringSubmatch(text, -1) {
		addr := parseWord(m[2])
		slot, ok := d.table.Lookup(addr)
		if !ok {
			res.Unmatched++
			continue
		}

		third := parseWord(m[3])
		fourth := parseWord(m[4])
		if constants.IsEmptyItem(fourth) {
			res.Slots[slot.Index] = nil
			res.Matched++
			continue
		}

		res.Slots[slot.Index] = d.buildEntry(third, fourth, m, slot, lang)
		res.Matched++
	}

	slog.Debug("decoded codes",
		"matched", res.Matched,
		"unmatched", res.Unmatched,
		"filled", res.Filled())

	return res
}

func (d *Decoder) buildEntry(third, fourth uint32, m []string, slot layout.Slot, lang string) *Entry {
	e := &Entry{
		Third:  third,
		Fourth: fourth,
		Raw: RawHex{
			Op:     strings.ToUpper(m[1]),
			Addr:   strings.ToUpper(m[2]),
			Third:  strings.ToUpper(m[3]),
			Fourth: strings.ToUpper(m[4]),
		},
		Slot: slot,
	}

	switch {
	case constants.IsDIY(fourth):
		e.Kind = KindDIY
		e.Record = d.catalog.Recipe(uint32(uint16(third)))
	case constants.HasFlowerGene(third) && d.catalog.HasFlower(fourth):
		e.Kind = KindFlower
		e.Record = d.catalog.Flower(fourth)
	default:
		e.Kind = KindItem
		e.Record = d.catalog.Item(fourth)
	}

	if e.Record != nil {
		e.CanonicalName = e.Record.IName()
		e.DisplayName = e.Record.DisplayName(lang)
	}
	if e.DisplayName == "" {
		e.DisplayName = constants.UnknownItemName
	}

	if e.Kind == KindItem && !d.catalog.HasVariants(e.CanonicalName) && constants.IsStackCount(third) {
		e.Quantity = int(third) + 1
	}

	if e.Kind != KindDIY {
		e.Variant = third
		e.HasVariant = true
	}

	return e
}

// parseWord parses an 8-digit hex word already validated by quadRe.
func parseWord(s string) uint32 {
	v, _ := strconv.ParseUint(s, 16, 32)
	return uint32(v)
}
