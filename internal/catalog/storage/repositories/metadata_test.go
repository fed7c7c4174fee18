package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalMetadata(t *testing.T) {
	t.Parallel()

	t.Run("nil map stays the empty object", func(t *testing.T) {
		t.Parallel()

		got, err := marshalMetadata(nil)
		require.NoError(t, err)
		assert.Equal(t, "{}", got)
	})

	t.Run("empty map stays the empty object", func(t *testing.T) {
		t.Parallel()

		got, err := marshalMetadata(map[string]string{})
		require.NoError(t, err)
		assert.Equal(t, "{}", got)
	})

	t.Run("entries are serialized", func(t *testing.T) {
		t.Parallel()

		got, err := marshalMetadata(map[string]string{"tier": "pro"})
		require.NoError(t, err)
		assert.Equal(t, `{"tier":"pro"}`, got)
	})
}
