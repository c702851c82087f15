package testutil

import (
	"fmt"

	"github.com/udisondev/slotview/internal/config"
	"github.com/udisondev/slotview/internal/table"
)

// Fixtures содержит общие тестовые данные справочников,
// чтобы не дублировать строки таблиц в каждом пакете.
var Fixtures = struct {
	Items      []table.Row
	Recipes    []table.Row
	Flowers    []table.Row
	Variations []table.Row

	// Те же таблицы в формате CSV с разделителем ';'
	ItemsCSV      string
	RecipesCSV    string
	FlowersCSV    string
	VariationsCSV string
}{
	Items: []table.Row{
		{"id": "0xABCD", "iName": "Foo", "schi": "福", "eng": "Foo"},
		{"id": "0x0001", "iName": "FtrChair", "schi": "椅子", "eng": "Chair"},
		{"id": "0x0002", "iName": "PltCedar3", "schi": "雪松", "eng": "Cedar"},
		{"id": "0x0003", "iName": "Nameless"},
		{"id": "0x0A1B", "iName": "PltTulipRed", "schi": "红色郁金香", "eng": "Red tulips"},
	},
	Recipes: []table.Row{
		{"id": "0x0123", "iName": "FtrChair", "schi": "椅子DIY", "eng": "Chair DIY"},
	},
	Flowers: []table.Row{
		{"id": "0x0A1B", "iName": "PltTulipRed", "schi": "红色郁金香", "eng": "Red tulips"},
	},
	Variations: []table.Row{
		{"iName": "FtrChair"},
	},

	ItemsCSV: "id;iName;schi;eng\n" +
		"0xABCD;Foo;福;Foo\n" +
		"0x0001;FtrChair;椅子;Chair\n" +
		"0x0002;PltCedar3;雪松;Cedar\n" +
		"0x0003;Nameless;;\n" +
		"0x0A1B;PltTulipRed;红色郁金香;Red tulips\n",
	RecipesCSV:    "id;iName;schi;eng\n0x0123;FtrChair;椅子DIY;Chair DIY\n",
	FlowersCSV:    "id;iName;schi;eng\n0x0A1B;PltTulipRed;红色郁金香;Red tulips\n",
	VariationsCSV: "iName\nFtrChair\n",
}

// OneSlotLayout returns a layout with a single player, row and column at base.
func OneSlotLayout(base uint32) config.Layout {
	return config.Layout{
		BaseTop:    base,
		BaseBottom: base,
		ColStride:  8,
		Rows:       1,
		Cols:       1,
		MaxPlayers: 1,
	}
}

// Quad formats one memory-patch code line.
func Quad(op, addr, third, fourth uint32) string {
	return fmt.Sprintf("%08X %08X %08X %08X", op, addr, third, fourth)
}
