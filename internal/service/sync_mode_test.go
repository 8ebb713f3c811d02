package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncMode_String(t *testing.T) {
	assert.Equal(t, "uninitialized", ModeUninitialized.String())
	assert.Equal(t, "connecting", ModeConnecting.String())
	assert.Equal(t, "polling", ModePolling.String())
	assert.Equal(t, "live", ModeLive.String())
	assert.Equal(t, "tearing-down", ModeTearingDown.String())
	assert.Equal(t, "unknown", SyncMode(42).String())
}

func TestSyncMode_TransitionTable(t *testing.T) {
	all := []SyncMode{ModeUninitialized, ModeConnecting, ModePolling, ModeLive, ModeTearingDown}
	allowed := map[SyncMode]map[SyncMode]bool{
		ModeUninitialized: {ModeConnecting: true, ModePolling: true, ModeTearingDown: true},
		ModeConnecting:    {ModeLive: true, ModePolling: true, ModeTearingDown: true},
		ModeLive:          {ModePolling: true, ModeTearingDown: true},
		ModePolling:       {ModeTearingDown: true},
		ModeTearingDown:   {},
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[from][to]
			got, err := from.Transition(to)
			if want {
				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, got)
			} else {
				assert.ErrorIs(t, err, ErrInvalidModeTransition, "%s -> %s", from, to)
				assert.Equal(t, from, got, "state must be unchanged on rejected transition")
			}
			assert.Equal(t, want, from.CanTransitionTo(to))
		}
	}
}

func TestSyncMode_NoReconnectAfterPolling(t *testing.T) {
	assert.False(t, ModePolling.CanTransitionTo(ModeConnecting))
	assert.False(t, ModePolling.CanTransitionTo(ModeLive))
}
