package decoder

import (
	"fmt"

	"github.com/udisondev/slotview/internal/catalog"
	"github.com/udisondev/slotview/internal/constants"
	"github.com/udisondev/slotview/internal/layout"
)

// Kind is the payload classification of a decoded slot.
type Kind int

const (
	KindItem Kind = iota
	KindDIY
	KindFlower
)

func (k Kind) String() string {
	switch k {
	case KindItem:
		return "item"
	case KindDIY:
		return "diy"
	case KindFlower:
		return "flower"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// RawHex keeps the four words of the source quadruple, upper-cased.
type RawHex struct {
	Op     string
	Addr   string
	Third  string
	Fourth string
}

// Entry is one occupied slot produced by a decode pass. Never mutated after construction.
type Entry struct {
	Kind   Kind
	Record *catalog.Record // nil when the id is not in the catalog

	CanonicalName string // iName, "" when unresolved
	DisplayName   string

	// Quantity is the stack size of a plain item, 0 when not a stack count.
	Quantity int

	// Variant is the color/pattern selector; meaningful only if HasVariant.
	Variant    uint32
	HasVariant bool

	Third  uint32
	Fourth uint32
	Raw    RawHex

	Slot layout.Slot
}

// IsDIY returns true for recipe cards.
func (e *Entry) IsDIY() bool { return e.Kind == KindDIY }

// IsFlower returns true for flowers with a gene value.
func (e *Entry) IsFlower() bool { return e.Kind == KindFlower }

// HasQuantity returns true if the third word was read as a stack count.
func (e *Entry) HasQuantity() bool { return e.Quantity > 0 }

// Unknown returns true if no display name resolved.
func (e *Entry) Unknown() bool { return e.DisplayName == constants.UnknownItemName }

// IDLine describes the identity word: "DIY 0x16A2" or "ID 0xABCD".
func (e *Entry) IDLine() string {
	if e.IsDIY() {
		return fmt.Sprintf("DIY 0x%04X", e.Third)
	}
	return fmt.Sprintf("ID 0x%04X", e.Fourth)
}

// ValueLine describes the third word. Empty for DIY cards.
func (e *Entry) ValueLine() string {
	switch {
	case e.IsDIY():
		return ""
	case e.IsFlower():
		return fmt.Sprintf("基因 0x%08X", e.Third)
	case e.HasQuantity():
		return fmt.Sprintf("数量 %d (0x%08X)", e.Quantity, e.Third)
	default:
		return fmt.Sprintf("值 0x%08X", e.Third)
	}
}
