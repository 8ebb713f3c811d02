package tui

import "github.com/MKhiriev/go-run-watch/internal/service"

type snapshotMsg struct {
	snap service.RunSnapshot
}

// updatesClosedMsg is sent once the sync client has been closed.
type updatesClosedMsg struct{}

type refreshDoneMsg struct {
	err error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
