package tui

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-run-watch/internal/service"
)

// fakeRunSyncClient — ручной фейк RunSyncClient: снимок задаётся тестом,
// вызовы Refresh и Start считаются.
type fakeRunSyncClient struct {
	mu         sync.Mutex
	snap       service.RunSnapshot
	updates    chan struct{}
	started    []int64
	startErr   error
	refreshes  int
	refreshErr error
}

func newFakeRunSyncClient(snap service.RunSnapshot) *fakeRunSyncClient {
	return &fakeRunSyncClient{snap: snap, updates: make(chan struct{}, 1)}
}

func (f *fakeRunSyncClient) Start(_ context.Context, runID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = append(f.started, runID)
	return f.startErr
}

func (f *fakeRunSyncClient) Refresh(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshes++
	return f.refreshErr
}

func (f *fakeRunSyncClient) Snapshot() service.RunSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snap
}

func (f *fakeRunSyncClient) Subscribe() chan struct{} { return f.updates }

func (f *fakeRunSyncClient) Unsubscribe(chan struct{}) {}

func (f *fakeRunSyncClient) Close() {}

func (f *fakeRunSyncClient) publish(snap service.RunSnapshot) {
	f.mu.Lock()
	f.snap = snap
	f.mu.Unlock()
	f.updates <- struct{}{}
}
