package uuid

import (
	"testing"

	goUUID "github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewIDUniqueAndOrdered(t *testing.T) {
	t.Parallel()

	gen := New()

	first, err := gen.NewID()
	require.NoError(t, err)
	second, err := gen.NewID()
	require.NoError(t, err)

	require.NotEqual(t, first, second)

	for _, id := range []string{first, second} {
		parsed, err := goUUID.Parse(id)
		require.NoError(t, err)
		require.Equal(t, goUUID.Version(7), parsed.Version())
	}

	// V7 run IDs sort by creation time.
	require.Less(t, first, second)
}
