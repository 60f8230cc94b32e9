// Package regcodec converts between typed registry data and the raw byte
// layout the OS stores for each value type.
//
// Typed shapes: REG_SZ, REG_EXPAND_SZ and REG_LINK carry string;
// REG_DWORD and REG_DWORD_BIG_ENDIAN carry uint32; REG_QWORD carries uint64;
// REG_MULTI_SZ carries []string; REG_NONE carries nil (or raw bytes); every
// other tag carries []byte unchanged.
package regcodec

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/regkit/internal/buf"
	"github.com/joshuapare/regkit/internal/format"
	"github.com/joshuapare/regkit/pkg/types"
)

var (
	// ErrDataShape indicates data whose Go type does not fit the value type.
	ErrDataShape = errors.New("regcodec: data does not match value type")
	// ErrEmbeddedNUL indicates a REG_MULTI_SZ element containing NUL.
	ErrEmbeddedNUL = errors.New("regcodec: multi-string element contains NUL")
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Encode produces the raw bytes for data stored as typ.
func Encode(typ types.RegType, data any) ([]byte, error) {
	switch typ {
	case types.REG_SZ, types.REG_EXPAND_SZ, types.REG_LINK:
		s, ok := data.(string)
		if !ok {
			return nil, shapeErr(typ, data)
		}
		// REG_LINK targets are stored without a terminator.
		return encodeUTF16(s, typ != types.REG_LINK)

	case types.REG_DWORD, types.REG_DWORD_BIG_ENDIAN:
		v, ok := data.(uint32)
		if !ok {
			return nil, shapeErr(typ, data)
		}
		out := make([]byte, 4)
		if typ == types.REG_DWORD_BIG_ENDIAN {
			format.PutU32BE(out, 0, v)
		} else {
			format.PutU32(out, 0, v)
		}
		return out, nil

	case types.REG_QWORD:
		v, ok := data.(uint64)
		if !ok {
			return nil, shapeErr(typ, data)
		}
		out := make([]byte, 8)
		format.PutU64(out, 0, v)
		return out, nil

	case types.REG_MULTI_SZ:
		var items []string
		switch d := data.(type) {
		case []string:
			items = d
		case types.MultiString:
			items = d.Strings()
		default:
			return nil, shapeErr(typ, data)
		}
		return encodeMulti(items)

	case types.REG_NONE:
		if data == nil {
			return []byte{}, nil
		}
	}

	b, ok := data.([]byte)
	if !ok {
		return nil, shapeErr(typ, data)
	}
	return append([]byte{}, b...), nil
}

// Decode interprets raw bytes read back as typ.
func Decode(typ types.RegType, raw []byte) (any, error) {
	switch typ {
	case types.REG_SZ, types.REG_EXPAND_SZ, types.REG_LINK:
		return decodeUTF16(raw)

	case types.REG_DWORD:
		return buf.U32LE(buf.Fixed(raw, 4)), nil

	case types.REG_DWORD_BIG_ENDIAN:
		return buf.U32BE(buf.Fixed(raw, 4)), nil

	case types.REG_QWORD:
		return buf.U64LE(buf.Fixed(raw, 8)), nil

	case types.REG_MULTI_SZ:
		return decodeMulti(raw)

	case types.REG_NONE:
		if len(raw) == 0 {
			return nil, nil
		}
	}
	return append([]byte{}, raw...), nil
}

func shapeErr(typ types.RegType, data any) error {
	return fmt.Errorf("%w: %s cannot hold %T", ErrDataShape, typ, data)
}

func encodeUTF16(s string, terminate bool) ([]byte, error) {
	out, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("regcodec: failed to encode UTF-16 string: %w", err)
	}
	if terminate {
		out = append(out, 0, 0)
	}
	return out, nil
}

// decodeUTF16 stops at the first NUL unit; anything after it is ignored.
func decodeUTF16(raw []byte) (string, error) {
	if cut := buf.IndexU16(raw, 0); cut >= 0 {
		raw = raw[:cut]
	}
	raw = raw[:len(raw)&^1]
	if len(raw) == 0 {
		return "", nil
	}
	if s, ok := asciiFast(raw); ok {
		return s, nil
	}
	out, err := utf16le.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("regcodec: failed to decode UTF-16 string: %w", err)
	}
	return string(out), nil
}

// asciiFast handles the common all-ASCII case without the decoder.
func asciiFast(raw []byte) (string, bool) {
	var b strings.Builder
	b.Grow(len(raw) / 2)
	for i := 0; i+1 < len(raw); i += 2 {
		if raw[i+1] != 0 || raw[i] >= 0x80 {
			return "", false
		}
		b.WriteByte(raw[i])
	}
	return b.String(), true
}

func encodeMulti(items []string) ([]byte, error) {
	var out []byte
	for _, item := range items {
		if strings.ContainsRune(item, 0) {
			return nil, fmt.Errorf("%w: %q", ErrEmbeddedNUL, item)
		}
		enc, err := encodeUTF16(item, true)
		if err != nil {
			return nil, err
		}
		out = append(out, enc...)
	}
	return append(out, 0, 0), nil
}

// decodeMulti splits on NUL units and stops at the first empty element, so
// a list whose first element is "" reads back as empty.
func decodeMulti(raw []byte) ([]string, error) {
	items := []string{}
	rest := raw[:len(raw)&^1]
	for len(rest) > 0 {
		cut := buf.IndexU16(rest, 0)
		chunk := rest
		if cut >= 0 {
			chunk = rest[:cut]
		}
		if len(chunk) == 0 {
			break
		}
		s, err := decodeUTF16(chunk)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
		if cut < 0 {
			break
		}
		rest = rest[cut+2:]
	}
	return items, nil
}
