package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKV(t *testing.T) {
	ctx := context.Background()
	kv := NewKV()

	_, found, err := kv.Get(ctx, "token")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, kv.Set(ctx, "token", "abc"))
	v, found, err := kv.Get(ctx, "token")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "abc", v)
	assert.Equal(t, 1, kv.Len())

	require.NoError(t, kv.Remove(ctx, "token"))
	require.NoError(t, kv.Remove(ctx, "token"))
	assert.Equal(t, 0, kv.Len())
}
