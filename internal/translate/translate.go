// Package translate maps Go values onto registry (type, data) pairs.
//
// Inference is narrow: it only picks REG_SZ, REG_DWORD, REG_BINARY or
// REG_MULTI_SZ and never widens an integer to REG_QWORD. Validation against
// an explicit type is permissive up to the hard range limits of that type.
// Integer data leaves both paths canonicalized to uint32 or uint64, with
// negative inputs stored as their two's complement.
package translate

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/joshuapare/regkit/internal/logger"
	"github.com/joshuapare/regkit/pkg/types"
)

var (
	// ErrUnknownType indicates an integer that is not a registry type tag.
	ErrUnknownType = errors.New("translate: unrecognized registry type")
	// ErrUnknownTypeName indicates a string that is not a registry type name.
	ErrUnknownTypeName = errors.New("translate: unrecognized registry type name")
	// ErrTypeMismatch indicates an input of the wrong Go type.
	ErrTypeMismatch = errors.New("translate: type mismatch")
	// ErrOutOfRange indicates an integer outside the range of its type.
	ErrOutOfRange = errors.New("translate: integer out of range")
	// ErrUnsupportedData indicates data whose registry type cannot be inferred.
	ErrUnsupportedData = errors.New("translate: cannot infer registry type")
	// ErrUnsupportedType indicates a target type the translator does not handle.
	ErrUnsupportedType = errors.New("translate: unsupported target registry type")
)

var (
	minDWORD = big.NewInt(math.MinInt32)
	maxDWORD = new(big.Int).SetUint64(math.MaxUint32)
	minQWORD = big.NewInt(math.MinInt64)
	maxQWORD = new(big.Int).SetUint64(math.MaxUint64)

	twoTo32 = new(big.Int).Lsh(big.NewInt(1), 32)
	twoTo64 = new(big.Int).Lsh(big.NewInt(1), 64)
)

// NormalizeType resolves a type given as a types.RegType, any Go integer,
// or a case-insensitive name such as "reg_dword". Alias tags and names
// resolve to their base tag.
func NormalizeType(input any) (types.RegType, error) {
	logger.Debug("normalizing registry type input", "input", input, "go_type", fmt.Sprintf("%T", input))

	switch v := input.(type) {
	case types.RegType:
		return knownTag(v, input)
	case string:
		t, ok := types.LookupRegType(v)
		if !ok {
			return 0, fmt.Errorf("%w: %q (e.g. REG_SZ, REG_DWORD)", ErrUnknownTypeName, v)
		}
		logger.Debug("registry type name resolved", "name", v, "type", t)
		return t, nil
	}

	n, ok := toBig(input)
	if !ok {
		return 0, fmt.Errorf("%w: registry type must be an integer or a name, got %T", ErrTypeMismatch, input)
	}
	if n.Sign() < 0 || !n.IsUint64() || n.Uint64() > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %s", ErrUnknownType, n)
	}
	return knownTag(types.RegType(n.Uint64()), input)
}

func knownTag(t types.RegType, input any) (types.RegType, error) {
	if !t.Known() {
		return 0, fmt.Errorf("%w: %v does not correspond to a known registry type", ErrUnknownType, input)
	}
	return t, nil
}

// InferType picks the registry type for data written without an explicit
// type and returns the data in the shape the registry layer stores.
func InferType(data any) (any, types.RegType, error) {
	logger.Debug("inferring registry type", "go_type", fmt.Sprintf("%T", data))

	switch d := data.(type) {
	case string:
		return d, types.REG_SZ, nil
	case []byte:
		return d, types.REG_BINARY, nil
	case []string, types.MultiString, []any:
		items, err := toStrings(d)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w; only string sequences are inferred as %s",
				ErrUnsupportedData, err, types.REG_MULTI_SZ)
		}
		return items, types.REG_MULTI_SZ, nil
	}

	if n, ok := toBig(data); ok {
		if !inRange(n, minDWORD, maxDWORD) {
			return nil, 0, fmt.Errorf("%w: %s is outside the default %s range [-2^31, 2^32-1]; specify %s for a 64-bit integer",
				ErrOutOfRange, n, types.REG_DWORD, types.REG_QWORD)
		}
		return uint32(twosComplement(n, twoTo32)), types.REG_DWORD, nil
	}

	return nil, 0, fmt.Errorf("%w: Go type %T; specify the registry type explicitly", ErrUnsupportedData, data)
}

// ValidateAndConvert checks data against an explicit type and returns it in
// the shape the registry layer stores.
func ValidateAndConvert(data any, typ types.RegType) (any, error) {
	logger.Debug("validating data for registry type", "go_type", fmt.Sprintf("%T", data), "type", typ)

	switch typ {
	case types.REG_SZ, types.REG_EXPAND_SZ, types.REG_LINK:
		s, ok := data.(string)
		if !ok {
			return nil, mismatch(typ, "a string", data)
		}
		return s, nil

	case types.REG_DWORD, types.REG_DWORD_BIG_ENDIAN:
		n, ok := toBig(data)
		if !ok {
			return nil, mismatch(typ, "an integer", data)
		}
		if !inRange(n, minDWORD, maxDWORD) {
			return nil, fmt.Errorf("%w: %s for 32-bit type %s", ErrOutOfRange, n, typ)
		}
		return uint32(twosComplement(n, twoTo32)), nil

	case types.REG_QWORD:
		n, ok := toBig(data)
		if !ok {
			return nil, mismatch(typ, "an integer", data)
		}
		if !inRange(n, minQWORD, maxQWORD) {
			return nil, fmt.Errorf("%w: %s for 64-bit type %s", ErrOutOfRange, n, typ)
		}
		return twosComplement(n, twoTo64), nil

	case types.REG_BINARY, types.REG_RESOURCE_LIST, types.REG_FULL_RESOURCE_DESCRIPTOR,
		types.REG_RESOURCE_REQUIREMENTS_LIST:
		b, ok := data.([]byte)
		if !ok {
			return nil, mismatch(typ, "bytes", data)
		}
		return b, nil

	case types.REG_MULTI_SZ:
		items, err := toStrings(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s needs a sequence of strings: %w", ErrTypeMismatch, typ, err)
		}
		return items, nil

	case types.REG_NONE:
		if !isEmpty(data) {
			logger.Warn("data provided for REG_NONE will be ignored by the registry",
				"go_type", fmt.Sprintf("%T", data))
		}
		return nil, nil
	}

	return nil, fmt.Errorf("%w: %s (%d)", ErrUnsupportedType, typ, uint32(typ))
}

func mismatch(typ types.RegType, want string, data any) error {
	return fmt.Errorf("%w: data must be %s for registry type %s, got %T", ErrTypeMismatch, want, typ, data)
}

// toBig widens any Go integer kind. bool is not an integer.
func toBig(v any) (*big.Int, bool) {
	switch n := v.(type) {
	case int:
		return big.NewInt(int64(n)), true
	case int8:
		return big.NewInt(int64(n)), true
	case int16:
		return big.NewInt(int64(n)), true
	case int32:
		return big.NewInt(int64(n)), true
	case int64:
		return big.NewInt(n), true
	case uint:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint8:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint64:
		return new(big.Int).SetUint64(n), true
	case uintptr:
		return new(big.Int).SetUint64(uint64(n)), true
	case *big.Int:
		if n == nil {
			return nil, false
		}
		return new(big.Int).Set(n), true
	}
	return nil, false
}

func inRange(n, lo, hi *big.Int) bool {
	return n.Cmp(lo) >= 0 && n.Cmp(hi) <= 0
}

// twosComplement maps n (already range-checked) into [0, modulus).
func twosComplement(n, modulus *big.Int) uint64 {
	if n.Sign() >= 0 {
		return n.Uint64()
	}
	return new(big.Int).Add(n, modulus).Uint64()
}

func toStrings(data any) ([]string, error) {
	switch d := data.(type) {
	case []string:
		return checkElements(d)
	case types.MultiString:
		return d.Strings(), nil
	case []any:
		out := make([]string, len(d))
		for i, item := range d {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d is %T, not a string", i, item)
			}
			out[i] = s
		}
		return checkElements(out)
	}
	return nil, fmt.Errorf("got %T", data)
}

func checkElements(items []string) ([]string, error) {
	for i, s := range items {
		if strings.ContainsRune(s, 0) {
			return nil, fmt.Errorf("element %d contains NUL", i)
		}
	}
	return items, nil
}

func isEmpty(data any) bool {
	if data == nil {
		return true
	}
	b, ok := data.([]byte)
	return ok && len(b) == 0
}
