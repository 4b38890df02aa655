package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	for _, development := range []bool{true, false} {
		logger, err := New(development)
		require.NoError(t, err)
		require.NotNil(t, logger)
		logger.Info("logger ready")
		_ = logger.Sync()
	}
}

func TestNewProductionKeepsEveryLine(t *testing.T) {
	t.Parallel()

	logger, err := New(false)
	require.NoError(t, err)
	// Sampling is off; repeated identical lines must not panic or drop.
	for i := 0; i < 5; i++ {
		logger.Info("repeated line")
	}
	_ = logger.Sync()
}
