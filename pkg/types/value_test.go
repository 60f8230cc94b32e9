package types

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiString(t *testing.T) {
	items := []string{"a", "", "c"}
	m := NewMultiString(items)
	items[0] = "mutated"

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []string{"a", "", "c"}, m.Strings())
	assert.Equal(t, "c", m.At(2))
	assert.True(t, m.Equal([]string{"a", "", "c"}))
	assert.False(t, m.Equal([]string{"a", "c"}))

	out := m.Strings()
	out[0] = "changed"
	assert.Equal(t, "a", m.At(0), "Strings returns a copy")

	empty := NewMultiString(nil)
	assert.Equal(t, 0, empty.Len())
	assert.NotNil(t, empty.Strings())
	assert.Empty(t, empty.Strings())
	assert.NotEqual(t, empty, NewMultiString([]string{""}), "[] and [\"\"] differ")
}

func TestMultiString_EmbeddedNULKeepsBoundaries(t *testing.T) {
	a := NewMultiString([]string{"a\x00b", "c"})
	b := NewMultiString([]string{"a", "b\x00c"})

	assert.NotEqual(t, a, b)
	assert.False(t, a.Equal([]string{"a", "b\x00c"}))
	assert.Equal(t, []string{"a\x00b", "c"}, a.Strings())
	assert.Equal(t, []string{"a", "b\x00c"}, b.Strings())
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, "c", a.At(1))

	va := NewValue("m", []string{"a\x00b", "c"}, REG_MULTI_SZ)
	vb := NewValue("m", []string{"a", "b\x00c"}, REG_MULTI_SZ)
	assert.False(t, va == vb)
	assert.Len(t, map[Value]struct{}{va: {}, vb: {}}, 2)
}

func TestValue_Accessors(t *testing.T) {
	v := NewValue("Path", `C:\bin`, REG_SZ)
	assert.Equal(t, "Path", v.Name())
	assert.Equal(t, REG_SZ, v.Type())
	assert.Equal(t, "REG_SZ", v.TypeName())
	assert.Equal(t, `C:\bin`, v.Data())
	assert.Equal(t, `'Path': C:\bin (Type: REG_SZ)`, v.String())
}

func TestValue_BinaryIsCopied(t *testing.T) {
	raw := []byte{1, 2, 3}
	v := NewValue("bin", raw, REG_BINARY)
	raw[0] = 9

	got := v.Data().([]byte)
	assert.Equal(t, []byte{1, 2, 3}, got)
	got[1] = 9
	assert.Equal(t, []byte{1, 2, 3}, v.Data())
}

func TestValue_HashEquality(t *testing.T) {
	a := NewValue("n", []string{"x", "y"}, REG_MULTI_SZ)
	b := NewValue("n", []string{"x", "y"}, REG_MULTI_SZ)
	c := NewValue("n", []string{"x"}, REG_MULTI_SZ)

	require.True(t, a.Hashable())
	assert.True(t, a == b)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	set := map[Value]struct{}{a: {}, b: {}, c: {}}
	assert.Len(t, set, 2)

	bin1 := NewValue("b", []byte{0xde, 0xad}, REG_BINARY)
	bin2 := NewValue("b", []byte{0xde, 0xad}, REG_BINARY)
	assert.True(t, bin1 == bin2)

	d1 := NewValue("d", uint32(7), REG_DWORD)
	d2 := NewValue("d", uint32(7), REG_DWORD)
	assert.Equal(t, d1, d2)
	assert.False(t, d1.Equal(NewValue("d", uint32(7), REG_DWORD_BIG_ENDIAN)), "type participates")
	assert.False(t, d1.Equal(NewValue("e", uint32(7), REG_DWORD)), "name participates")

	none := NewValue("", nil, REG_NONE)
	assert.True(t, none.Hashable())
}

func TestValue_UnhashableData(t *testing.T) {
	v := NewValue("odd", []string{"a"}, REG_SZ)
	assert.False(t, v.Hashable())
	assert.True(t, v.Equal(NewValue("odd", []string{"a"}, REG_SZ)))
	assert.Panics(t, func() {
		m := map[Value]int{}
		m[v] = 1
	})
}

func TestValue_Matches(t *testing.T) {
	multi := NewValue("m", []string{"a", "b"}, REG_MULTI_SZ)
	assert.True(t, multi.Matches("m", []string{"a", "b"}, REG_MULTI_SZ))
	assert.True(t, multi.Matches("m", NewMultiString([]string{"a", "b"}), REG_MULTI_SZ))
	assert.False(t, multi.Matches("m", []string{"a"}, REG_MULTI_SZ))

	bin := NewValue("b", []byte{1}, REG_BINARY)
	assert.True(t, bin.Matches("b", []byte{1}, REG_BINARY))
	assert.False(t, bin.Matches("b", []byte{2}, REG_BINARY))
}

func TestValue_IntegersCompareByValue(t *testing.T) {
	read := NewValue("Count", uint32(5), REG_DWORD)
	assert.True(t, read.Matches("Count", 5, REG_DWORD))
	assert.True(t, read.Matches("Count", int64(5), REG_DWORD))
	assert.True(t, read.Matches("Count", uint8(5), REG_DWORD))
	assert.True(t, read.Matches("Count", big.NewInt(5), REG_DWORD))
	assert.False(t, read.Matches("Count", 6, REG_DWORD))

	assert.True(t, NewValue("Count", 5, REG_DWORD) == NewValue("Count", uint32(5), REG_DWORD))
	assert.Equal(t, uint32(5), NewValue("Count", 5, REG_DWORD).Data())
	assert.Len(t, map[Value]struct{}{
		NewValue("Count", 5, REG_DWORD):         {},
		NewValue("Count", uint32(5), REG_DWORD): {},
		NewValue("Count", int16(5), REG_DWORD):  {},
	}, 1)

	all := NewValue("Mask", uint32(0xFFFFFFFF), REG_DWORD)
	assert.True(t, all.Matches("Mask", -1, REG_DWORD))
	assert.True(t, NewValue("Mask", -1, REG_DWORD_BIG_ENDIAN).Matches("Mask", uint32(0xFFFFFFFF), REG_DWORD_BIG_ENDIAN))

	q := NewValue("Q", uint64(0xFFFFFFFFFFFFFFFF), REG_QWORD)
	assert.True(t, q.Matches("Q", int64(-1), REG_QWORD))
	assert.Equal(t, uint64(7), NewValue("Q", 7, REG_QWORD).Data())
}

func TestValue_IntegersOutOfRangeKept(t *testing.T) {
	tooBig := int64(1) << 32
	assert.Equal(t, tooBig, NewValue("d", tooBig, REG_DWORD).Data())
	tooSmall := int64(-1) << 40
	assert.Equal(t, tooSmall, NewValue("d", tooSmall, REG_DWORD).Data())

	huge := new(big.Int).Lsh(big.NewInt(1), 64)
	assert.Same(t, huge, NewValue("q", huge, REG_QWORD).Data())

	// Other tags keep integers untouched.
	assert.Equal(t, 5, NewValue("s", 5, REG_SZ).Data())
	assert.Equal(t, 5, NewValue("b", 5, REG_BINARY).Data())
}

func TestValue_ExpandedData(t *testing.T) {
	upper := func(s string) (string, error) { return s + "!", nil }

	out, ok, err := NewValue("e", "%X%", REG_EXPAND_SZ).ExpandedDataWith(upper)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "%X%!", out)

	_, ok, err = NewValue("s", "%X%", REG_SZ).ExpandedDataWith(upper)
	require.NoError(t, err)
	assert.False(t, ok, "only REG_EXPAND_SZ expands")

	_, ok, err = NewValue("e", uint32(1), REG_EXPAND_SZ).ExpandedDataWith(upper)
	require.NoError(t, err)
	assert.False(t, ok, "non-string data does not expand")
}

func TestValue_ExpandedDataUsesEnvironment(t *testing.T) {
	t.Setenv("REGKIT_VALUE_TEST", "here")

	out, ok, err := NewValue("e", `%REGKIT_VALUE_TEST%\x`, REG_EXPAND_SZ).ExpandedData()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `here\x`, out)
}

func TestValue_ExpandedDataFailure(t *testing.T) {
	cause := errors.New("expansion broke")
	fail := func(string) (string, error) { return "", cause }

	_, ok, err := NewValue("e", "%X%", REG_EXPAND_SZ).ExpandedDataWith(fail)
	require.Error(t, err)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrExpansionFailed)
	assert.ErrorIs(t, err, cause)
}

func TestKeyStat_Empty(t *testing.T) {
	assert.True(t, KeyStat{}.Empty())
	assert.False(t, KeyStat{SubkeyN: 1}.Empty())
	assert.False(t, KeyStat{ValueN: 1}.Empty())
}
