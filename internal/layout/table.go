package layout

import (
	"fmt"

	"github.com/udisondev/slotview/internal/config"
)

// Slot locates one inventory position.
// Row and Col are 0-based, Player is 1-based.
type Slot struct {
	Index  int // Row*Cols + Col, position in the per-player grid
	Row    int
	Col    int
	Player int
}

// String formats the slot the way it is shown under a grid cell: "P1 R1C1".
func (s Slot) String() string {
	return fmt.Sprintf("P%d R%dC%d", s.Player, s.Row+1, s.Col+1)
}

// Table maps a memory address to the slot it patches.
// Built once from a Layout, read-only afterwards; safe for concurrent reads.
type Table struct {
	layout config.Layout
	slots  map[uint32]Slot
	addrs  []uint32 // [player-1][row][col] flattened, inverse of slots
}

// Build computes every slot address of the layout.
//
// For player p, row r and column c:
//
//	base = (r < rows/2 ? BaseTop : BaseBottom) + (r%2)*RowStride + p*PlayerStride
//	addr = base + c*ColStride
//
// Overlapping strides make later players overwrite earlier ones in the address map;
// Address still reports the computed value for every triple.
func Build(l config.Layout) *Table {
	perPlayer := l.Rows * l.Cols
	t := &Table{
		layout: l,
		slots:  make(map[uint32]Slot, l.MaxPlayers*perPlayer),
		addrs:  make([]uint32, 0, l.MaxPlayers*perPlayer),
	}

	for p := 0; p < l.MaxPlayers; p++ {
		playerOffset := uint32(p) * l.PlayerStride
		for r := 0; r < l.Rows; r++ {
			base := l.BaseBottom
			if r < l.Rows/2 {
				base = l.BaseTop
			}
			base += uint32(r%2)*l.RowStride + playerOffset

			for c := 0; c < l.Cols; c++ {
				addr := base + uint32(c)*l.ColStride
				t.slots[addr] = Slot{
					Index:  r*l.Cols + c,
					Row:    r,
					Col:    c,
					Player: p + 1,
				}
				t.addrs = append(t.addrs, addr)
			}
		}
	}

	return t
}

// Lookup returns the slot patched by addr.
func (t *Table) Lookup(addr uint32) (Slot, bool) {
	s, ok := t.slots[addr]
	return s, ok
}

// Address returns the address of (player, row, col). Player is 1-based.
func (t *Table) Address(player, row, col int) (uint32, bool) {
	l := t.layout
	if player < 1 || player > l.MaxPlayers || row < 0 || row >= l.Rows || col < 0 || col >= l.Cols {
		return 0, false
	}
	return t.addrs[(player-1)*l.Rows*l.Cols+row*l.Cols+col], true
}

// SlotCount returns the size of the per-player grid.
func (t *Table) SlotCount() int {
	return t.layout.SlotCount()
}

// Len returns the number of distinct addresses in the table.
func (t *Table) Len() int {
	return len(t.slots)
}

// Layout returns the configuration the table was built from.
func (t *Table) Layout() config.Layout {
	return t.layout
}
