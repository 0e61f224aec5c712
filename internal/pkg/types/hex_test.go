package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexFromString(t *testing.T) {
	t.Run("valid lowercase prefix", func(t *testing.T) {
		h, err := HexFromString("0x2a")

		require.NoError(t, err)
		assert.Equal(t, Hex("0x2a"), h)
	})

	t.Run("valid uppercase prefix", func(t *testing.T) {
		h, err := HexFromString("0X1f")

		require.NoError(t, err)
		assert.Equal(t, Hex("0X1f"), h)
	})

	t.Run("missing prefix", func(t *testing.T) {
		_, err := HexFromString("2a")

		assert.Error(t, err)
	})

	t.Run("non hexadecimal digits", func(t *testing.T) {
		_, err := HexFromString("0xzz")

		assert.Error(t, err)
	})
}

func TestHexFromUint64(t *testing.T) {
	assert.Equal(t, Hex("0x0"), HexFromUint64(0))
	assert.Equal(t, Hex("0x2a"), HexFromUint64(42))
	assert.Equal(t, Hex("0xffffffffffffffff"), HexFromUint64(^uint64(0)))
}

func TestHex_Uint64(t *testing.T) {
	t.Run("decodes valid value", func(t *testing.T) {
		assert.Equal(t, uint64(42), Hex("0x2a").Uint64())
	})

	t.Run("unset value decodes to zero", func(t *testing.T) {
		assert.Equal(t, uint64(0), Hex("").Uint64())
	})

	t.Run("value shorter than the prefix decodes to zero", func(t *testing.T) {
		assert.NotPanics(t, func() {
			assert.Equal(t, uint64(0), Hex("1").Uint64())
		})
	})

	t.Run("value without the prefix decodes to zero", func(t *testing.T) {
		assert.Equal(t, uint64(0), Hex("banana").Uint64())
	})
}

func TestHex_IsEmpty(t *testing.T) {
	assert.True(t, Hex("").IsEmpty())
	assert.False(t, Hex("0x0").IsEmpty())
}

func TestHex_UnmarshalJSON(t *testing.T) {
	t.Run("valid json string", func(t *testing.T) {
		var h Hex
		err := json.Unmarshal([]byte(`"0x10"`), &h)

		require.NoError(t, err)
		assert.Equal(t, Hex("0x10"), h)
	})

	t.Run("not a json string", func(t *testing.T) {
		var h Hex
		err := json.Unmarshal([]byte(`42`), &h)

		assert.Error(t, err)
	})

	t.Run("invalid hex payload", func(t *testing.T) {
		var h Hex
		err := json.Unmarshal([]byte(`"banana"`), &h)

		assert.Error(t, err)
	})
}

func TestHex_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Hex("0x2a"))

	require.NoError(t, err)
	assert.JSONEq(t, `"0x2a"`, string(data))
}
