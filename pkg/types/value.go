package types

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/joshuapare/regkit/internal/envexpand"
	"github.com/joshuapare/regkit/internal/logger"
)

// MultiString is an immutable ordered sequence of strings, the in-memory
// form of REG_MULTI_SZ data. It is comparable, so values holding it can be
// compared with == and used as map keys.
type MultiString struct {
	joined string
	lens   string // element lengths, each followed by ','
	n      int
}

// NewMultiString copies items into an immutable sequence. Elements may hold
// any bytes, NUL included; the codec rejects NUL on write.
func NewMultiString(items []string) MultiString {
	var joined strings.Builder
	lens := make([]byte, 0, 2*len(items))
	for _, it := range items {
		joined.WriteString(it)
		lens = strconv.AppendInt(lens, int64(len(it)), 10)
		lens = append(lens, ',')
	}
	return MultiString{joined: joined.String(), lens: string(lens), n: len(items)}
}

// Len returns the number of elements.
func (m MultiString) Len() int { return m.n }

// Strings returns a fresh copy of the elements. An empty sequence yields an
// empty, non-nil slice.
func (m MultiString) Strings() []string {
	out := make([]string, 0, m.n)
	rest, off := m.lens, 0
	for rest != "" {
		field, tail, _ := strings.Cut(rest, ",")
		size, _ := strconv.Atoi(field)
		out = append(out, m.joined[off:off+size])
		off += size
		rest = tail
	}
	return out
}

// At returns element i. It panics if i is out of range, like slice indexing.
func (m MultiString) At(i int) string {
	return m.Strings()[i]
}

// Equal reports whether m holds the same elements as items.
func (m MultiString) Equal(items []string) bool {
	return m == NewMultiString(items)
}

func (m MultiString) String() string {
	return fmt.Sprintf("%q", m.Strings())
}

// binaryData keeps byte payloads immutable inside a Value.
type binaryData string

// Expander resolves %NAME% references in REG_EXPAND_SZ data.
type Expander func(string) (string, error)

// Value is one named datum under a key: its name ("" for the default
// value), its data and its type tag. Values are immutable once built.
//
// Data is one of string, uint32, uint64, []byte, MultiString or nil.
type Value struct {
	name string
	data any
	typ  RegType
}

// NewValue builds a Value. For REG_MULTI_SZ a []string is converted to a
// MultiString; byte slices are copied. Integers under REG_DWORD,
// REG_DWORD_BIG_ENDIAN and REG_QWORD are stored as uint32 or uint64, with
// negatives mapped by two's complement, so equal numbers compare equal
// whatever their Go kind. Out-of-range integers are kept as given.
func NewValue(name string, data any, typ RegType) Value {
	switch d := data.(type) {
	case []byte:
		data = binaryData(d)
	case []string:
		if typ == REG_MULTI_SZ {
			data = NewMultiString(d)
		}
	default:
		data = canonicalInt(data, typ)
	}
	return Value{name: name, data: data, typ: typ}
}

func canonicalInt(data any, typ RegType) any {
	var bits uint
	switch typ {
	case REG_DWORD, REG_DWORD_BIG_ENDIAN:
		bits = 32
	case REG_QWORD:
		bits = 64
	default:
		return data
	}

	var n *big.Int
	switch d := data.(type) {
	case int:
		n = big.NewInt(int64(d))
	case int8:
		n = big.NewInt(int64(d))
	case int16:
		n = big.NewInt(int64(d))
	case int32:
		n = big.NewInt(int64(d))
	case int64:
		n = big.NewInt(d)
	case uint:
		n = new(big.Int).SetUint64(uint64(d))
	case uint8:
		n = new(big.Int).SetUint64(uint64(d))
	case uint16:
		n = new(big.Int).SetUint64(uint64(d))
	case uint32:
		n = new(big.Int).SetUint64(uint64(d))
	case uint64:
		n = new(big.Int).SetUint64(d)
	case uintptr:
		n = new(big.Int).SetUint64(uint64(d))
	case *big.Int:
		if d == nil {
			return data
		}
		n = d
	default:
		return data
	}

	modulus := new(big.Int).Lsh(big.NewInt(1), bits)
	lo := new(big.Int).Neg(new(big.Int).Rsh(modulus, 1))
	hi := new(big.Int).Sub(modulus, big.NewInt(1))
	if n.Cmp(lo) < 0 || n.Cmp(hi) > 0 {
		return data
	}
	u := new(big.Int).Set(n)
	if u.Sign() < 0 {
		u.Add(u, modulus)
	}
	if bits == 32 {
		return uint32(u.Uint64())
	}
	return u.Uint64()
}

// Name returns the value name; "" is the key's default value.
func (v Value) Name() string { return v.name }

// Type returns the registry type tag.
func (v Value) Type() RegType { return v.typ }

// TypeName returns the tag's canonical name, e.g. "REG_SZ".
func (v Value) TypeName() string { return v.typ.String() }

// Data returns the stored data. Byte payloads are returned as a fresh slice.
func (v Value) Data() any {
	if b, ok := v.data.(binaryData); ok {
		return []byte(b)
	}
	return v.data
}

// Hashable reports whether v can be compared with == and used as a map key.
// Values built by NewValue from registry reads always are; data of another
// mutable shape (e.g. []string under REG_SZ) is not, and using such a value
// as a map key panics.
func (v Value) Hashable() bool {
	if v.data == nil {
		return true
	}
	return reflect.TypeOf(v.data).Comparable()
}

// Equal reports whether v and o have the same name, data and type.
func (v Value) Equal(o Value) bool {
	if v.Hashable() && o.Hashable() {
		return v == o
	}
	return v.name == o.name && v.typ == o.typ && reflect.DeepEqual(v.data, o.data)
}

// Matches compares v with a bare (name, data, type) triple. A []string or
// []byte on the right-hand side is compared by content.
func (v Value) Matches(name string, data any, typ RegType) bool {
	return v.Equal(NewValue(name, data, typ))
}

// ExpandedData returns the data with environment references resolved.
// ok is false unless the type is REG_EXPAND_SZ and the data is a string.
// The result is recomputed on every call.
func (v Value) ExpandedData() (expanded string, ok bool, err error) {
	return v.ExpandedDataWith(envexpand.Expand)
}

// ExpandedDataWith is ExpandedData with an explicit expander.
func (v Value) ExpandedDataWith(expand Expander) (string, bool, error) {
	s, isString := v.data.(string)
	if v.typ != REG_EXPAND_SZ || !isString {
		return "", false, nil
	}
	out, err := expand(s)
	if err != nil {
		logger.Error("failed to expand REG_EXPAND_SZ value",
			"name", v.name, "data", s, "error", err)
		return "", false, &Error{
			Kind: ErrKindExpansion,
			Msg:  fmt.Sprintf("failed to expand REG_EXPAND_SZ value '%s' data %q: %v", v.name, s, err),
			Err:  err,
		}
	}
	return out, true, nil
}

func (v Value) String() string {
	return fmt.Sprintf("'%s': %v (Type: %s)", v.name, v.Data(), v.typ)
}
