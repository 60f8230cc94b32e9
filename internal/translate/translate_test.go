package translate

import (
	"bytes"
	"log/slog"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/regkit/internal/logger"
	"github.com/joshuapare/regkit/pkg/types"
)

func TestNormalizeType(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  types.RegType
	}{
		{"regtype", types.REG_SZ, types.REG_SZ},
		{"int", 4, types.REG_DWORD},
		{"uint8", uint8(11), types.REG_QWORD},
		{"dword little endian alias", types.REG_DWORD_LITTLE_ENDIAN, types.REG_DWORD},
		{"qword little endian alias", types.REG_QWORD_LITTLE_ENDIAN, types.REG_QWORD},
		{"name", "REG_EXPAND_SZ", types.REG_EXPAND_SZ},
		{"lower-case name", "reg_multi_sz", types.REG_MULTI_SZ},
		{"alias name", "REG_DWORD_LITTLE_ENDIAN", types.REG_DWORD},
		{"qword alias name", "reg_qword_little_endian", types.REG_QWORD},
		{"big endian name", "REG_DWORD_BIG_ENDIAN", types.REG_DWORD_BIG_ENDIAN},
		{"big.Int", big.NewInt(7), types.REG_MULTI_SZ},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeType(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeType_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  error
	}{
		{"unknown int", 12, ErrUnknownType},
		{"negative int", -1, ErrUnknownType},
		{"huge int", uint64(1) << 40, ErrUnknownType},
		{"unknown regtype", types.RegType(99), ErrUnknownType},
		{"unknown name", "REG_FOO", ErrUnknownTypeName},
		{"float", 4.0, ErrTypeMismatch},
		{"bool", true, ErrTypeMismatch},
		{"nil", nil, ErrTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeType(tt.input)
			assert.ErrorIs(t, err, tt.want)
			_, isRegistry := types.KindOf(err)
			assert.False(t, isRegistry, "translator errors are usage errors")
		})
	}
}

func TestInferType(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		wantData any
		wantType types.RegType
	}{
		{"string", "hello", "hello", types.REG_SZ},
		{"empty string", "", "", types.REG_SZ},
		{"small int", 42, uint32(42), types.REG_DWORD},
		{"lower bound", int64(math.MinInt32), uint32(0x80000000), types.REG_DWORD},
		{"upper bound", int64(math.MaxUint32), uint32(math.MaxUint32), types.REG_DWORD},
		{"negative one", -1, uint32(0xFFFFFFFF), types.REG_DWORD},
		{"bytes", []byte{1, 2}, []byte{1, 2}, types.REG_BINARY},
		{"string slice", []string{"a", "b"}, []string{"a", "b"}, types.REG_MULTI_SZ},
		{"empty string slice", []string{}, []string{}, types.REG_MULTI_SZ},
		{"any slice of strings", []any{"x"}, []string{"x"}, types.REG_MULTI_SZ},
		{"empty any slice", []any{}, []string{}, types.REG_MULTI_SZ},
		{"multistring", types.NewMultiString([]string{"m"}), []string{"m"}, types.REG_MULTI_SZ},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, typ, err := InferType(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, typ)
			assert.Equal(t, tt.wantData, data)
		})
	}
}

func TestInferType_Errors(t *testing.T) {
	tests := []struct {
		name string
		data any
		want error
	}{
		{"below dword", int64(math.MinInt32) - 1, ErrOutOfRange},
		{"above dword", int64(math.MaxUint32) + 1, ErrOutOfRange},
		{"mixed sequence", []any{"a", 1}, ErrUnsupportedData},
		{"float", 1.5, ErrUnsupportedData},
		{"map", map[string]string{}, ErrUnsupportedData},
		{"nil", nil, ErrUnsupportedData},
		{"bool", false, ErrUnsupportedData},
		{"int slice", []int{1}, ErrUnsupportedData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := InferType(tt.data)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, _, err := InferType(int64(1) << 40)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REG_QWORD", "out-of-range error points at REG_QWORD")

	_, _, err = InferType(3.14)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "float64")
}

func TestValidateAndConvert(t *testing.T) {
	maxU64 := new(big.Int).SetUint64(math.MaxUint64)

	tests := []struct {
		name string
		data any
		typ  types.RegType
		want any
	}{
		{"sz", "s", types.REG_SZ, "s"},
		{"expand sz", "%PATH%", types.REG_EXPAND_SZ, "%PATH%"},
		{"link", `\Registry\Machine`, types.REG_LINK, `\Registry\Machine`},
		{"dword", 7, types.REG_DWORD, uint32(7)},
		{"dword negative", int32(-2), types.REG_DWORD, uint32(0xFFFFFFFE)},
		{"dword max", uint32(math.MaxUint32), types.REG_DWORD, uint32(math.MaxUint32)},
		{"dword be", 1, types.REG_DWORD_BIG_ENDIAN, uint32(1)},
		{"qword", int64(1) << 40, types.REG_QWORD, uint64(1) << 40},
		{"qword min", int64(math.MinInt64), types.REG_QWORD, uint64(1) << 63},
		{"qword max big", maxU64, types.REG_QWORD, uint64(math.MaxUint64)},
		{"qword negative one", -1, types.REG_QWORD, uint64(math.MaxUint64)},
		{"binary", []byte{9}, types.REG_BINARY, []byte{9}},
		{"resource list", []byte{1}, types.REG_RESOURCE_LIST, []byte{1}},
		{"full resource descriptor", []byte{2}, types.REG_FULL_RESOURCE_DESCRIPTOR, []byte{2}},
		{"requirements list", []byte{3}, types.REG_RESOURCE_REQUIREMENTS_LIST, []byte{3}},
		{"multi", []string{"a"}, types.REG_MULTI_SZ, []string{"a"}},
		{"multi empty", []string{}, types.REG_MULTI_SZ, []string{}},
		{"none nil", nil, types.REG_NONE, nil},
		{"none data discarded", "ignored", types.REG_NONE, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateAndConvert(tt.data, tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateAndConvert_Boundaries(t *testing.T) {
	below32 := big.NewInt(math.MinInt32 - 1)
	above32 := new(big.Int).Add(new(big.Int).SetUint64(math.MaxUint32), big.NewInt(1))
	below64 := new(big.Int).Sub(big.NewInt(math.MinInt64), big.NewInt(1))
	above64 := new(big.Int).Add(new(big.Int).SetUint64(math.MaxUint64), big.NewInt(1))

	for _, typ := range []types.RegType{types.REG_DWORD, types.REG_DWORD_BIG_ENDIAN} {
		_, err := ValidateAndConvert(below32, typ)
		assert.ErrorIs(t, err, ErrOutOfRange, typ.String())
		_, err = ValidateAndConvert(above32, typ)
		assert.ErrorIs(t, err, ErrOutOfRange, typ.String())
		_, err = ValidateAndConvert(int64(math.MinInt32), typ)
		assert.NoError(t, err)
	}

	_, err := ValidateAndConvert(below64, types.REG_QWORD)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = ValidateAndConvert(above64, types.REG_QWORD)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestValidateAndConvert_Errors(t *testing.T) {
	tests := []struct {
		name string
		data any
		typ  types.RegType
		want error
	}{
		{"sz needs string", 1, types.REG_SZ, ErrTypeMismatch},
		{"dword needs integer", "1", types.REG_DWORD, ErrTypeMismatch},
		{"dword rejects bool", true, types.REG_DWORD, ErrTypeMismatch},
		{"qword needs integer", 1.0, types.REG_QWORD, ErrTypeMismatch},
		{"binary needs bytes", "x", types.REG_BINARY, ErrTypeMismatch},
		{"resource needs bytes", []string{}, types.REG_RESOURCE_LIST, ErrTypeMismatch},
		{"multi needs strings", []any{"a", 2}, types.REG_MULTI_SZ, ErrTypeMismatch},
		{"multi rejects string", "a", types.REG_MULTI_SZ, ErrTypeMismatch},
		{"multi rejects NUL", []string{"a\x00b"}, types.REG_MULTI_SZ, ErrTypeMismatch},
		{"unknown target", []byte{}, types.RegType(42), ErrUnsupportedType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndConvert(tt.data, tt.typ)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := ValidateAndConvert([]byte{}, types.RegType(42))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNKNOWN_TYPE_42")
}

func TestValidateAndConvert_NoneWarns(t *testing.T) {
	var out bytes.Buffer
	logger.Init(logger.Options{Enabled: true, Output: &out, Level: slog.LevelWarn})
	t.Cleanup(func() { logger.Init(logger.Options{}) })

	_, err := ValidateAndConvert([]byte{}, types.REG_NONE)
	require.NoError(t, err)
	assert.Empty(t, out.String(), "empty data is not worth a warning")

	_, err = ValidateAndConvert([]byte{1}, types.REG_NONE)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "REG_NONE")
	assert.Contains(t, out.String(), "level=WARN")
}
