package decoder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/slotview/internal/catalog"
	"github.com/udisondev/slotview/internal/config"
	"github.com/udisondev/slotview/internal/constants"
	"github.com/udisondev/slotview/internal/layout"
	"github.com/udisondev/slotview/internal/testutil"
)

const op = 0xAAAAAAAA

func newTestDecoder(t *testing.T) (*Decoder, *layout.Table) {
	t.Helper()
	f := testutil.Fixtures
	table := layout.Build(config.DefaultLayout())
	cat := catalog.Load(f.Items, f.Recipes, f.Flowers, f.Variations)
	return New(table, cat), table
}

func addrOf(t *testing.T, table *layout.Table, player, row, col int) uint32 {
	t.Helper()
	addr, ok := table.Address(player, row, col)
	require.True(t, ok)
	return addr
}

func TestDecode_SingleSlotExample(t *testing.T) {
	t.Parallel()

	table := layout.Build(testutil.OneSlotLayout(0x10000000))
	cat := catalog.Load(testutil.Fixtures.Items, nil, nil, nil)
	d := New(table, cat)

	addr := addrOf(t, table, 1, 0, 0)
	res := d.Decode(testutil.Quad(op, addr, 0x00000005, 0x0000ABCD), "eng")

	require.Len(t, res.Slots, 1)
	e := res.Slots[0]
	require.NotNil(t, e)
	assert.Equal(t, KindItem, e.Kind)
	assert.Equal(t, 6, e.Quantity)
	assert.Equal(t, "Foo", e.CanonicalName)
	assert.Equal(t, "Foo", e.DisplayName)
	assert.Equal(t, 1, res.Matched)
	assert.Equal(t, 0, res.Unmatched)
}

func TestDecode_EveryAddressResolvesToItsSlot(t *testing.T) {
	t.Parallel()

	d, table := newTestDecoder(t)
	l := table.Layout()

	for p := 1; p <= l.MaxPlayers; p++ {
		for r := 0; r < l.Rows; r++ {
			for c := 0; c < l.Cols; c++ {
				res := d.Decode(testutil.Quad(op, addrOf(t, table, p, r, c), 0, 0xABCD), "eng")
				idx := r*l.Cols + c
				require.NotNil(t, res.Slots[idx])
				assert.Equal(t, layout.Slot{Index: idx, Row: r, Col: c, Player: p}, res.Slots[idx].Slot)
				assert.Equal(t, 1, res.Filled())
			}
		}
	}
}

func TestDecode_EmptySentinelClearsSlot(t *testing.T) {
	t.Parallel()

	d, table := newTestDecoder(t)
	addr := addrOf(t, table, 1, 0, 3)

	for _, third := range []uint32{0, 0x63, 0x00800000, 0xFFFFFFFF} {
		text := testutil.Quad(op, addr, 0, 0xABCD) + "\n" + testutil.Quad(op, addr, third, constants.EmptyItem)
		res := d.Decode(text, "eng")

		assert.Nil(t, res.Slots[3], "third=0x%08X", third)
		assert.Equal(t, 2, res.Matched)
		assert.Equal(t, 0, res.Filled())
	}
}

func TestDecode_DIY(t *testing.T) {
	t.Parallel()

	d, table := newTestDecoder(t)
	addr := addrOf(t, table, 1, 1, 0)

	res := d.Decode(testutil.Quad(op, addr, 0x00000123, constants.DIYMarker), "eng")

	e := res.Slots[10]
	require.NotNil(t, e)
	assert.Equal(t, KindDIY, e.Kind)
	assert.True(t, e.IsDIY())
	assert.False(t, e.IsFlower())
	assert.Equal(t, "FtrChair", e.CanonicalName)
	assert.Equal(t, "Chair DIY", e.DisplayName)
	assert.False(t, e.HasQuantity())
	assert.False(t, e.HasVariant)
	assert.Equal(t, "DIY 0x0123", e.IDLine())
	assert.Equal(t, "", e.ValueLine())
}

func TestDecode_DIYUsesLow16Bits(t *testing.T) {
	t.Parallel()

	d, table := newTestDecoder(t)

	res := d.Decode(testutil.Quad(op, addrOf(t, table, 1, 0, 0), 0x00010123, constants.DIYMarker), "eng")

	require.NotNil(t, res.Slots[0])
	assert.Equal(t, KindDIY, res.Slots[0].Kind)
	assert.Equal(t, "FtrChair", res.Slots[0].CanonicalName)
}

func TestDecode_UnknownDIY(t *testing.T) {
	t.Parallel()

	d, table := newTestDecoder(t)

	res := d.Decode(testutil.Quad(op, addrOf(t, table, 1, 0, 0), 0x0999, constants.DIYMarker), "eng")

	e := res.Slots[0]
	require.NotNil(t, e)
	assert.Equal(t, KindDIY, e.Kind)
	assert.Nil(t, e.Record)
	assert.True(t, e.Unknown())
	assert.Equal(t, constants.UnknownItemName, e.DisplayName)
}

func TestDecode_Flower(t *testing.T) {
	t.Parallel()

	d, table := newTestDecoder(t)
	addr := addrOf(t, table, 1, 0, 0)

	res := d.Decode(testutil.Quad(op, addr, 0x00800003, 0x0A1B), "schi")
	e := res.Slots[0]
	require.NotNil(t, e)
	assert.Equal(t, KindFlower, e.Kind)
	assert.True(t, e.IsFlower())
	assert.Equal(t, "红色郁金香", e.DisplayName)
	assert.False(t, e.HasQuantity())
	assert.True(t, e.HasVariant)
	assert.Equal(t, uint32(0x00800003), e.Variant)
	assert.Equal(t, "基因 0x00800003", e.ValueLine())

	// Без бита гена тот же id — обычный предмет
	res = d.Decode(testutil.Quad(op, addr, 0x00000003, 0x0A1B), "schi")
	e = res.Slots[0]
	require.NotNil(t, e)
	assert.Equal(t, KindItem, e.Kind)
	assert.Equal(t, 4, e.Quantity)
}

func TestDecode_GeneBitWithoutFlowerRecordIsItem(t *testing.T) {
	t.Parallel()

	d, table := newTestDecoder(t)

	res := d.Decode(testutil.Quad(op, addrOf(t, table, 1, 0, 0), 0x00800000, 0xABCD), "eng")

	e := res.Slots[0]
	require.NotNil(t, e)
	assert.Equal(t, KindItem, e.Kind)
	assert.Equal(t, "Foo", e.CanonicalName)
	assert.False(t, e.HasQuantity())
	assert.Equal(t, "值 0x00800000", e.ValueLine())
}

func TestDecode_QuantityBoundary(t *testing.T) {
	t.Parallel()

	d, table := newTestDecoder(t)
	addr := addrOf(t, table, 1, 0, 0)

	tests := []struct {
		third uint32
		want  int
	}{
		{0x00, 1},
		{0x05, 6},
		{0x63, 100},
		{0x64, 0},
		{0xFFFFFFFF, 0},
	}

	for _, tt := range tests {
		res := d.Decode(testutil.Quad(op, addr, tt.third, 0xABCD), "eng")
		require.NotNil(t, res.Slots[0])
		assert.Equal(t, tt.want, res.Slots[0].Quantity, "third=0x%X", tt.third)
		assert.Equal(t, tt.third, res.Slots[0].Variant)
	}
}

func TestDecode_VariantItemsNeverGetQuantity(t *testing.T) {
	t.Parallel()

	d, table := newTestDecoder(t)
	addr := addrOf(t, table, 1, 0, 0)

	for _, third := range []uint32{0, 1, 0x63} {
		res := d.Decode(testutil.Quad(op, addr, third, 0x0001), "eng")
		e := res.Slots[0]
		require.NotNil(t, e)
		assert.Equal(t, "FtrChair", e.CanonicalName)
		assert.False(t, e.HasQuantity(), "third=0x%X", third)
		assert.True(t, e.HasVariant)
		assert.Equal(t, third, e.Variant)
	}
}

func TestDecode_UnknownItem(t *testing.T) {
	t.Parallel()

	d, table := newTestDecoder(t)

	res := d.Decode(testutil.Quad(op, addrOf(t, table, 1, 0, 0), 2, 0x7777), "eng")

	e := res.Slots[0]
	require.NotNil(t, e)
	assert.Nil(t, e.Record)
	assert.Equal(t, "", e.CanonicalName)
	assert.Equal(t, constants.UnknownItemName, e.DisplayName)
	assert.True(t, e.Unknown())
	// Неизвестный предмет всё равно считается стеком
	assert.Equal(t, 3, e.Quantity)
	assert.Equal(t, "ID 0x7777", e.IDLine())
	assert.Equal(t, "数量 3 (0x00000002)", e.ValueLine())
}

func TestDecode_RecordWithoutNames(t *testing.T) {
	t.Parallel()

	d, table := newTestDecoder(t)

	res := d.Decode(testutil.Quad(op, addrOf(t, table, 1, 0, 0), 0, 0x0003), "eng")

	e := res.Slots[0]
	require.NotNil(t, e)
	assert.NotNil(t, e.Record)
	assert.Equal(t, "Nameless", e.CanonicalName)
	assert.True(t, e.Unknown())
}

func TestDecode_LanguageFallback(t *testing.T) {
	t.Parallel()

	d, table := newTestDecoder(t)
	text := testutil.Quad(op, addrOf(t, table, 1, 0, 0), 0, 0xABCD)

	assert.Equal(t, "Foo", d.Decode(text, "eng").Slots[0].DisplayName)
	assert.Equal(t, "福", d.Decode(text, "schi").Slots[0].DisplayName)
	assert.Equal(t, "福", d.Decode(text, "jpja").Slots[0].DisplayName)
}

func TestDecode_Counters(t *testing.T) {
	t.Parallel()

	d, table := newTestDecoder(t)

	lines := []string{
		"[page]",
		testutil.Quad(op, addrOf(t, table, 1, 0, 0), 0, 0xABCD),
		testutil.Quad(op, addrOf(t, table, 1, 3, 9), 0, 0x0001),
		testutil.Quad(op, 0x12345678, 0, 0xABCD),
		testutil.Quad(op, addrOf(t, table, 2, 1, 1), 0, 0xABCD),
		testutil.Quad(op, 0xDEADBEEF, 0, 0xABCD),
		"garbage 1234 5678",
		"0000000G 00000000 00000000 00000000",
	}

	res := d.Decode(strings.Join(lines, "\n"), "eng")

	assert.Equal(t, 3, res.Matched)
	assert.Equal(t, 2, res.Unmatched)
	assert.Equal(t, 3, res.Filled())
	assert.NotNil(t, res.Slots[0])
	assert.NotNil(t, res.Slots[39])
	assert.NotNil(t, res.Slots[11])
	assert.Len(t, res.Slots, 40)
}

func TestDecode_LaterCodeOverwritesSlot(t *testing.T) {
	t.Parallel()

	d, table := newTestDecoder(t)
	addr := addrOf(t, table, 1, 0, 0)

	res := d.Decode(testutil.Quad(op, addr, 0, 0xABCD)+" "+testutil.Quad(op, addr, 0, 0x0002), "eng")

	require.NotNil(t, res.Slots[0])
	assert.Equal(t, "PltCedar3", res.Slots[0].CanonicalName)
	assert.Equal(t, 2, res.Matched)
}

func TestDecode_ScannerConsumesLeftToRight(t *testing.T) {
	t.Parallel()

	d, table := newTestDecoder(t)
	addr := addrOf(t, table, 1, 0, 0)

	// Пять слов: первая четвёрка поглощает четыре слова, пятое остаётся без пары
	text := strings.Join([]string{"AAAAAAAA", "BBBBBBBB", "CCCCCCCC", "DDDDDDDD", testutil.Quad(op, addr, 0, 0xABCD)[:8]}, " ")
	res := d.Decode(text, "eng")
	assert.Equal(t, 0, res.Matched)
	assert.Equal(t, 1, res.Unmatched)

	// Девятизначный токен: совпадение начинается со второго символа
	text = "1" + testutil.Quad(op, addr, 0, 0xABCD)
	res = d.Decode(text, "eng")
	assert.Equal(t, 1, res.Matched)
}

func TestDecode_UnicodeSeparators(t *testing.T) {
	t.Parallel()

	d, table := newTestDecoder(t)
	addr := addrOf(t, table, 1, 0, 0)

	seps := map[string]string{
		"nbsp":         "\u00A0",
		"ideographic":  "\u3000",
		"vertical tab": "\v",
		"line sep":     "\u2028",
		"bom":          "\uFEFF",
		"mixed":        " \u3000\t",
	}
	for name, sep := range seps {
		t.Run(name, func(t *testing.T) {
			words := strings.Fields(testutil.Quad(op, addr, 5, 0xABCD))
			res := d.Decode(strings.Join(words, sep), "eng")

			assert.Equal(t, 1, res.Matched)
			assert.Equal(t, 0, res.Unmatched)
			require.NotNil(t, res.Slots[0])
			assert.Equal(t, "Foo", res.Slots[0].CanonicalName)
			assert.Equal(t, "0000ABCD", res.Slots[0].Raw.Fourth)
		})
	}
}

func TestDecode_RawIsUpperCased(t *testing.T) {
	t.Parallel()

	d, table := newTestDecoder(t)
	text := strings.ToLower(testutil.Quad(0xabcdef01, addrOf(t, table, 1, 0, 0), 0x0a, 0xabcd))

	res := d.Decode(text, "eng")

	require.NotNil(t, res.Slots[0])
	assert.Equal(t, RawHex{Op: "ABCDEF01", Addr: "B27BB758", Third: "0000000A", Fourth: "0000ABCD"}, res.Slots[0].Raw)
}

func TestDecode_EmptyText(t *testing.T) {
	t.Parallel()

	d, _ := newTestDecoder(t)

	res := d.Decode("", "eng")

	assert.Len(t, res.Slots, 40)
	assert.Equal(t, 0, res.Matched)
	assert.Equal(t, 0, res.Unmatched)
	assert.Equal(t, 0, res.Filled())
}

func TestDecode_EmptyCatalog(t *testing.T) {
	t.Parallel()

	table := layout.Build(config.DefaultLayout())
	d := New(table, catalog.Load(nil, nil, nil, nil))

	res := d.Decode(testutil.Quad(op, addrOf(t, table, 1, 0, 0), 0x00800001, 0x0A1B), "eng")

	e := res.Slots[0]
	require.NotNil(t, e)
	assert.Equal(t, KindItem, e.Kind)
	assert.True(t, e.Unknown())
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "item", KindItem.String())
	assert.Equal(t, "diy", KindDIY.String())
	assert.Equal(t, "flower", KindFlower.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
