package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNopLoggerBeforeInitialize(t *testing.T) {
	// The package-level logger must be usable before Initialize is called.
	require.NotNil(t, Logger)
	assert.NotPanics(t, func() {
		Infow("message before initialize", "key", "value")
		Errorw("error before initialize")
	})
}

func TestInitializeConsole(t *testing.T) {
	err := Initialize(false, VerbosityInfo)
	require.NoError(t, err)
	require.NotNil(t, Logger)
	assert.False(t, JSONOutput)

	assert.NotPanics(t, func() {
		Debugw("suppressed at info level")
	})
}

func TestInitializeJSON(t *testing.T) {
	err := Initialize(true, VerbosityDebug)
	require.NoError(t, err)
	assert.True(t, JSONOutput)
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		want      zapcore.Level
	}{
		{"no flags", 0, zapcore.WarnLevel},
		{"-v", 1, zapcore.InfoLevel},
		{"-vv", 2, zapcore.DebugLevel},
		{"beyond -vv", 5, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerbosityToLevel(tt.verbosity))
		})
	}
}
