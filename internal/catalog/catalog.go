// Package catalog holds the reference tables used to name decoded slots.
package catalog

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/udisondev/slotview/internal/table"
)

// Catalog holds item, recipe and flower records plus the set of iNames that have
// color/pattern variants. Built once by Load, read-only afterwards.
type Catalog struct {
	items    map[uint16]*Record
	recipes  map[uint16]*Record
	flowers  map[uint16]*Record
	variants mapset.Set[string]

	// names is every distinct non-empty iName, for Suggest
	names []string
}

// Sizes reports how many records each table holds.
type Sizes struct {
	Items    int
	Recipes  int
	Flowers  int
	Variants int
}

// Load builds a catalog from already parsed rows. Any argument may be nil.
// Rows without a parseable hex id are dropped, as are later rows repeating an id.
func Load(items, recipes, flowers, variants []table.Row) *Catalog {
	c := &Catalog{
		items:    buildIndex(items),
		recipes:  buildIndex(recipes),
		flowers:  buildIndex(flowers),
		variants: mapset.New[string](),
	}

	for _, row := range variants {
		if name := row["iName"]; name != "" {
			c.variants.Put(name)
		}
	}

	seen := make(map[string]struct{}, len(c.items)+len(c.recipes)+len(c.flowers))
	for _, idx := range [...]map[uint16]*Record{c.items, c.recipes, c.flowers} {
		for _, rec := range idx {
			name := rec.IName()
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			c.names = append(c.names, name)
		}
	}

	s := c.Sizes()
	slog.Info("loaded reference catalog",
		"items", s.Items,
		"recipes", s.Recipes,
		"flowers", s.Flowers,
		"variants", s.Variants)

	return c
}

func buildIndex(rows []table.Row) map[uint16]*Record {
	idx := make(map[uint16]*Record, len(rows))
	dropped := 0
	for _, row := range rows {
		id, ok := ParseID(row["id"])
		if !ok {
			dropped++
			continue
		}
		// первая строка побеждает, повторные id отбрасываются
		if _, dup := idx[id]; dup {
			dropped++
			continue
		}
		idx[id] = &Record{id: id, fields: row}
	}
	if dropped > 0 {
		slog.Debug("dropped reference rows", "count", dropped)
	}
	return idx
}

// ParseID parses a hex id with an optional 0x prefix.
func ParseID(s string) (uint16, bool) {
	clean := strings.TrimSpace(s)
	if len(clean) >= 2 && clean[0] == '0' && (clean[1] == 'x' || clean[1] == 'X') {
		clean = clean[2:]
	}
	if clean == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(clean, 16, 16)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}

func lookup(idx map[uint16]*Record, id uint32) *Record {
	if id > 0xFFFF {
		return nil
	}
	return idx[uint16(id)]
}

// Item returns the item record for id, nil if absent.
func (c *Catalog) Item(id uint32) *Record { return lookup(c.items, id) }

// Recipe returns the DIY recipe record for id, nil if absent.
func (c *Catalog) Recipe(id uint32) *Record { return lookup(c.recipes, id) }

// Flower returns the flower record for id, nil if absent.
func (c *Catalog) Flower(id uint32) *Record { return lookup(c.flowers, id) }

// HasFlower returns true if id is a known flower.
func (c *Catalog) HasFlower(id uint32) bool { return c.Flower(id) != nil }

// HasVariants returns true if iName has color/pattern variants.
func (c *Catalog) HasVariants(iName string) bool {
	return c.variants.Has(iName)
}

// Sizes returns the number of records per table.
func (c *Catalog) Sizes() Sizes {
	return Sizes{
		Items:    len(c.items),
		Recipes:  len(c.recipes),
		Flowers:  len(c.flowers),
		Variants: c.variants.Size(),
	}
}

// Empty returns true if no item, recipe or flower record is loaded.
// The variation set alone does not make a catalog usable.
func (c *Catalog) Empty() bool {
	return len(c.items) == 0 && len(c.recipes) == 0 && len(c.flowers) == 0
}
