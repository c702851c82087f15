package constants

// Memory-Patch Code Constants
//
// Values recovered from the inventory layout of the save-patch codes. The fourth word of a
// quadruple carries either an item id or one of the sentinels below.

// Payload Sentinels
const (
	// EmptyItem in the fourth word clears the slot
	EmptyItem uint32 = 0x0000FFFE

	// DIYMarker in the fourth word means the third word holds a recipe id
	DIYMarker uint32 = 0x000016A2
)

// Third Word Encodings
const (
	// FlowerGeneFlag marks the third word as a flower gene value.
	// Kept as an opaque bit: the meaning comes from reverse engineering.
	FlowerGeneFlag uint32 = 0x00800000

	// MaxStackEncoding is the largest third word still read as a stack count (count-1 encoded)
	MaxStackEncoding uint32 = 0x63
)

// Default Inventory Layout
const (
	LayoutBaseTop      uint32 = 0xB27BB758
	LayoutBaseBottom   uint32 = 0xB27BB6A0
	LayoutRowStride    uint32 = 0x50
	LayoutColStride    uint32 = 0x8
	LayoutPlayerStride uint32 = 0x131F70
	LayoutRows                = 4
	LayoutCols                = 10
	LayoutMaxPlayers          = 8
)

// Display Names
const (
	// UnknownItemName is shown when no catalog record resolves
	UnknownItemName = "未知物品"

	// LangSimplifiedChinese is the first display-language fallback column
	LangSimplifiedChinese = "schi"

	// LangEnglish is the second display-language fallback column
	LangEnglish = "eng"
)
