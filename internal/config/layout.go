package config

import (
	"errors"
	"fmt"

	"github.com/udisondev/slotview/internal/constants"
)

// ErrInvalidLayout is returned by Layout.Validate.
var ErrInvalidLayout = errors.New("invalid inventory layout")

// Layout describes how inventory slots are laid out in memory.
// Rows are split in two halves: the top half starts at BaseTop, the bottom half at BaseBottom.
// Within a half, odd rows are shifted by RowStride.
type Layout struct {
	BaseTop      uint32 `yaml:"base_top"`
	BaseBottom   uint32 `yaml:"base_bottom"`
	RowStride    uint32 `yaml:"row_stride"`
	ColStride    uint32 `yaml:"col_stride"`
	PlayerStride uint32 `yaml:"player_stride"`
	Rows         int    `yaml:"rows"`
	Cols         int    `yaml:"cols"`
	MaxPlayers   int    `yaml:"max_players"`
}

// DefaultLayout returns the 8 players × 4 rows × 10 columns pocket layout.
func DefaultLayout() Layout {
	return Layout{
		BaseTop:      constants.LayoutBaseTop,
		BaseBottom:   constants.LayoutBaseBottom,
		RowStride:    constants.LayoutRowStride,
		ColStride:    constants.LayoutColStride,
		PlayerStride: constants.LayoutPlayerStride,
		Rows:         constants.LayoutRows,
		Cols:         constants.LayoutCols,
		MaxPlayers:   constants.LayoutMaxPlayers,
	}
}

// SlotCount returns the number of slots shown per player.
func (l Layout) SlotCount() int {
	return l.Rows * l.Cols
}

// Validate checks dimensions. Single-row layouts are allowed; otherwise rows must be even.
func (l Layout) Validate() error {
	if l.Rows <= 0 || l.Cols <= 0 || l.MaxPlayers <= 0 {
		return fmt.Errorf("%w: rows=%d cols=%d players=%d", ErrInvalidLayout, l.Rows, l.Cols, l.MaxPlayers)
	}
	if l.Rows > 1 && l.Rows%2 != 0 {
		return fmt.Errorf("%w: rows must be even, got %d", ErrInvalidLayout, l.Rows)
	}
	return nil
}
