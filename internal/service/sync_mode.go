package service

import "fmt"

// SyncMode is the transport state of a run sync session.
type SyncMode int

const (
	ModeUninitialized SyncMode = iota // No session started yet
	ModeConnecting                    // Push channel handshake in progress
	ModePolling                       // Interval re-fetch is driving updates
	ModeLive                          // Push channel is open and delivering updates
	ModeTearingDown                   // Session is being (or has been) closed
)

func (m SyncMode) String() string {
	switch m {
	case ModeUninitialized:
		return "uninitialized"
	case ModeConnecting:
		return "connecting"
	case ModePolling:
		return "polling"
	case ModeLive:
		return "live"
	case ModeTearingDown:
		return "tearing-down"
	default:
		return "unknown"
	}
}

var modeTransitions = map[SyncMode][]SyncMode{
	ModeUninitialized: {ModeConnecting, ModePolling, ModeTearingDown},
	ModeConnecting:    {ModeLive, ModePolling, ModeTearingDown},
	ModeLive:          {ModePolling, ModeTearingDown},
	ModePolling:       {ModeTearingDown},
}

// CanTransitionTo reports whether the state machine allows moving from m to
// next. Polling is final until teardown: there is no in-band reconnection.
func (m SyncMode) CanTransitionTo(next SyncMode) bool {
	for _, allowed := range modeTransitions[m] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transition returns next if the move is allowed, or m together with a
// wrapped [ErrInvalidModeTransition].
func (m SyncMode) Transition(next SyncMode) (SyncMode, error) {
	if !m.CanTransitionTo(next) {
		return m, fmt.Errorf("%w: %s -> %s", ErrInvalidModeTransition, m, next)
	}
	return next, nil
}
