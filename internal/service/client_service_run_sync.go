package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-run-watch/internal/adapter"
	"github.com/MKhiriev/go-run-watch/internal/logger"
	"github.com/MKhiriev/go-run-watch/internal/notifier"
	"github.com/MKhiriev/go-run-watch/models"
)

const sessionEventBuffer = 16

type runSyncClient struct {
	adapter      adapter.RunAdapter
	dialer       adapter.PushDialer
	credentials  CredentialProvider
	pollInterval time.Duration
	logger       *logger.Logger

	notifier *notifier.Notifier

	mu       sync.RWMutex
	snapshot RunSnapshot

	// lifecycle serializes Start and Close.
	lifecycle sync.Mutex
	session   *runSession
	closed    bool
}

// NewRunSyncClient returns a [RunSyncClient] fetching through runAdapter and
// receiving pushes through dialer. A nil dialer or credentials provider
// restricts the client to polling. A non-positive pollInterval falls back to
// [DefaultPollInterval].
func NewRunSyncClient(
	runAdapter adapter.RunAdapter,
	dialer adapter.PushDialer,
	credentials CredentialProvider,
	pollInterval time.Duration,
	logger *logger.Logger,
) RunSyncClient {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	return &runSyncClient{
		adapter:      runAdapter,
		dialer:       dialer,
		credentials:  credentials,
		pollInterval: pollInterval,
		logger:       logger,
		notifier:     notifier.New(),
		snapshot:     RunSnapshot{Steps: []models.Step{}},
	}
}

// Start implements [RunSyncClient]. The session outlives ctx: it ends only
// with Close or the next Start. ctx is used to resolve the credential.
func (c *runSyncClient) Start(ctx context.Context, runID int64) error {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()

	if c.closed {
		return ErrClientClosed
	}

	if c.session != nil {
		c.session.stop()
		c.session = nil
	}

	if runID <= 0 {
		c.logger.Warn().Int64("run_id", runID).Msg("run id is invalid, run marked unavailable")
		c.publish(RunSnapshot{
			RunID:       runID,
			Steps:       []models.Step{},
			Unavailable: true,
			Mode:        ModeUninitialized,
		})
		return fmt.Errorf("%w: %d", ErrInvalidRunID, runID)
	}

	var (
		token    string
		hasToken bool
	)
	if c.credentials != nil {
		token, hasToken = c.credentials.Credential(ctx)
	}
	c.adapter.SetToken(token)

	c.session = newRunSession(context.WithoutCancel(ctx), c, runID, token, hasToken && c.dialer != nil)
	c.session.start()

	return nil
}

// Refresh implements [RunSyncClient].
func (c *runSyncClient) Refresh(ctx context.Context) error {
	c.lifecycle.Lock()
	s, closed := c.session, c.closed
	c.lifecycle.Unlock()

	if closed {
		return ErrClientClosed
	}
	if s == nil {
		return ErrNotStarted
	}

	select {
	case s.events <- refreshEvent{}:
		return nil
	case <-s.ctx.Done():
		return ErrNotStarted
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot implements [RunSyncClient].
func (c *runSyncClient) Snapshot() RunSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

// Subscribe implements [RunSyncClient].
func (c *runSyncClient) Subscribe() chan struct{} {
	return c.notifier.Subscribe()
}

// Unsubscribe implements [RunSyncClient].
func (c *runSyncClient) Unsubscribe(ch chan struct{}) {
	c.notifier.Unsubscribe(ch)
}

// Close implements [RunSyncClient].
func (c *runSyncClient) Close() {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()

	if c.closed {
		return
	}
	c.closed = true

	if c.session != nil {
		c.session.stop()
		c.session = nil
	} else {
		snap := c.Snapshot()
		snap.Mode = ModeTearingDown
		c.publish(snap)
	}

	c.notifier.Close()
}

func (c *runSyncClient) publish(snap RunSnapshot) {
	c.mu.Lock()
	c.snapshot = snap
	c.mu.Unlock()

	c.notifier.Broadcast()
}

// ── session ─────────────────────────────────────────────────────────────────

// Events delivered to the session loop. Each runs to completion before the
// next one is read.
type (
	fetchDoneEvent struct {
		run   *models.Run
		steps []models.Step
		err   error
	}
	pollTickEvent      struct{}
	retryFetchEvent    struct{}
	refreshEvent       struct{}
	channelOpenedEvent struct {
		channel adapter.PushChannel
	}
	channelFailedEvent struct {
		channel adapter.PushChannel // nil when the dial itself failed
		err     error
	}
	pushMessageEvent struct {
		channel adapter.PushChannel
		frame   []byte
	}
)

// runSession follows one run id. All fields below events are owned by the
// loop goroutine.
type runSession struct {
	client   *runSyncClient
	runID    int64
	token    string
	canDial  bool
	log      *logger.Logger
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	poll     ClientPollJob
	events   chan any
	stopOnce sync.Once

	mode     SyncMode
	run      *models.Run
	steps    []models.Step
	fetchErr error
	loading  bool
	fetching bool
	retrying bool
	channel  adapter.PushChannel
}

func newRunSession(parent context.Context, client *runSyncClient, runID int64, token string, canDial bool) *runSession {
	ctx, cancel := context.WithCancel(parent)

	s := &runSession{
		client:  client,
		runID:   runID,
		token:   token,
		canDial: canDial,
		log:     client.logger.WithRunID(runID),
		ctx:     ctx,
		cancel:  cancel,
		events:  make(chan any, sessionEventBuffer),
		mode:    ModeUninitialized,
		steps:   []models.Step{},
		loading: true,
	}
	s.poll = NewClientPollJob(func(jobCtx context.Context) {
		s.post(jobCtx, pollTickEvent{})
	})

	return s
}

func (s *runSession) start() {
	s.wg.Add(1)
	go s.loop()
}

// stop cancels the session, waits for every session goroutine and releases
// push channels that were delivered but never consumed.
func (s *runSession) stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		s.wg.Wait()

		for {
			select {
			case ev := <-s.events:
				discardEvent(ev)
			default:
				return
			}
		}
	})
}

func discardEvent(ev any) {
	switch e := ev.(type) {
	case channelOpenedEvent:
		_ = e.channel.Close()
	case pushMessageEvent:
		_ = e.channel.Close()
	}
}

// post delivers ev to the loop unless ctx or the session is done first.
func (s *runSession) post(ctx context.Context, ev any) bool {
	if ctx.Err() != nil || s.ctx.Err() != nil {
		return false
	}

	select {
	case s.events <- ev:
		return true
	case <-ctx.Done():
		return false
	case <-s.ctx.Done():
		return false
	}
}

func (s *runSession) loop() {
	defer s.wg.Done()

	s.publish()
	s.beginFetch()
	s.selectChannel()

	for {
		select {
		case <-s.ctx.Done():
			s.teardown()
			return
		case ev := <-s.events:
			if s.ctx.Err() != nil {
				discardEvent(ev)
				continue
			}
			s.handle(ev)
		}
	}
}

func (s *runSession) handle(ev any) {
	switch e := ev.(type) {
	case fetchDoneEvent:
		s.onFetchDone(e)
	case pollTickEvent:
		if s.mode == ModePolling {
			s.fetchUnlessBusy("poll")
		}
	case retryFetchEvent:
		s.retrying = false
		if s.mode == ModeLive && s.fetchErr != nil {
			s.fetchUnlessBusy("retry")
		}
	case refreshEvent:
		s.fetchUnlessBusy("refresh")
	case channelOpenedEvent:
		s.onChannelOpened(e.channel)
	case channelFailedEvent:
		s.onChannelFailed(e)
	case pushMessageEvent:
		s.onPushMessage(e)
	}
}

func (s *runSession) teardown() {
	_ = s.setMode(ModeTearingDown)
	s.poll.Stop()
	s.closeChannel()
	s.publish()
	s.log.Debug().Msg("sync session torn down")
}

func (s *runSession) setMode(next SyncMode) error {
	mode, err := s.mode.Transition(next)
	if err != nil {
		s.log.Warn().Err(err).Msg("sync mode transition rejected")
		return err
	}

	s.log.Debug().Stringer("from", s.mode).Stringer("to", mode).Msg("sync mode changed")
	s.mode = mode
	return nil
}

func (s *runSession) publish() {
	snap := RunSnapshot{
		RunID:   s.runID,
		Steps:   s.steps,
		Err:     s.fetchErr,
		Loading: s.loading,
		Mode:    s.mode,
	}
	if s.run != nil {
		run := *s.run
		snap.Run = &run
	}

	s.client.publish(snap)
}

// ── fetch ───────────────────────────────────────────────────────────────────

func (s *runSession) fetchUnlessBusy(trigger string) {
	if s.fetching {
		s.log.Debug().Str("trigger", trigger).Msg("fetch in flight, skipped")
		return
	}
	s.beginFetch()
}

func (s *runSession) beginFetch() {
	s.fetching = true

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.post(s.ctx, s.fetch(s.ctx))
	}()
}

// fetch loads the run and its steps concurrently; both must succeed.
func (s *runSession) fetch(ctx context.Context) fetchDoneEvent {
	var (
		run   models.Run
		steps []models.Step
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if run, err = s.client.adapter.GetRun(gctx, s.runID); err != nil {
			return fmt.Errorf("fetch run: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if steps, err = s.client.adapter.GetRunSteps(gctx, s.runID); err != nil {
			return fmt.Errorf("fetch run steps: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fetchDoneEvent{err: err}
	}
	return fetchDoneEvent{run: &run, steps: steps}
}

// Run and steps are applied together or not at all: a run without its steps
// would render as a run with no progress.
func (s *runSession) onFetchDone(e fetchDoneEvent) {
	s.fetching = false
	s.loading = false

	if e.err != nil {
		s.fetchErr = e.err
		s.log.Warn().Err(e.err).Msg("run fetch failed")
		s.scheduleRetry()
		s.publish()
		return
	}

	s.fetchErr = nil
	if e.run != nil {
		s.applyRun(*e.run)
	}
	for _, step := range e.steps {
		s.applyStep(step)
	}
	s.publish()
}

// scheduleRetry repeats a failed fetch after one poll interval while the push
// channel is live. Polling mode retries on its own ticks.
func (s *runSession) scheduleRetry() {
	if s.retrying || s.mode != ModeLive || s.fetchErr == nil {
		return
	}
	s.retrying = true

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		timer := time.NewTimer(s.client.pollInterval)
		defer timer.Stop()

		select {
		case <-timer.C:
			s.post(s.ctx, retryFetchEvent{})
		case <-s.ctx.Done():
		}
	}()
}

// applyRun replaces the run unless it belongs to another run or is older
// than the current one.
func (s *runSession) applyRun(run models.Run) bool {
	if run.ID != 0 && run.ID != s.runID {
		s.log.Debug().Int64("other_run_id", run.ID).Msg("update for another run ignored")
		return false
	}
	if s.run != nil && run.IsOlderThan(*s.run) {
		s.log.Debug().Msg("stale run update ignored")
		return false
	}

	if run.ID == 0 {
		run.ID = s.runID
	}
	s.run = &run
	return true
}

func (s *runSession) applyStep(step models.Step) bool {
	if step.RunID != nil && *step.RunID != s.runID {
		s.log.Debug().Int64("other_run_id", *step.RunID).Msg("step for another run ignored")
		return false
	}

	next, changed := UpsertStep(s.steps, step)
	if changed {
		s.steps = next
	}
	return changed
}

// ── channel ─────────────────────────────────────────────────────────────────

func (s *runSession) selectChannel() {
	if !s.canDial {
		s.log.Debug().Msg("no credential, polling")
		s.startPolling()
		return
	}

	if err := s.setMode(ModeConnecting); err != nil {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		channel, err := s.client.dialer.Dial(s.ctx, s.runID, s.token)
		if err != nil {
			s.post(s.ctx, channelFailedEvent{err: err})
			return
		}
		if !s.post(s.ctx, channelOpenedEvent{channel: channel}) {
			_ = channel.Close()
		}
	}()
}

func (s *runSession) startPolling() {
	if err := s.setMode(ModePolling); err != nil {
		return
	}
	s.poll.Start(s.ctx, s.client.pollInterval)
	s.publish()
}

func (s *runSession) onChannelOpened(channel adapter.PushChannel) {
	if s.mode != ModeConnecting {
		_ = channel.Close()
		return
	}
	if err := s.setMode(ModeLive); err != nil {
		_ = channel.Close()
		return
	}

	s.poll.Stop()
	s.channel = channel
	s.log.Info().Msg("push channel live")

	s.wg.Add(1)
	go s.read(channel)

	s.scheduleRetry()
	s.publish()
}

func (s *runSession) read(channel adapter.PushChannel) {
	defer s.wg.Done()

	for {
		frame, err := channel.Receive()
		if err != nil {
			s.post(s.ctx, channelFailedEvent{channel: channel, err: err})
			return
		}
		if !s.post(s.ctx, pushMessageEvent{channel: channel, frame: frame}) {
			return
		}
	}
}

func (s *runSession) onChannelFailed(e channelFailedEvent) {
	if e.channel != nil && e.channel != s.channel {
		// reader of a channel already replaced
		return
	}
	s.fallback(e.err)
}

func (s *runSession) onPushMessage(e pushMessageEvent) {
	if e.channel != s.channel || s.mode != ModeLive {
		return
	}

	var msg models.RunUpdateMessage
	if err := json.Unmarshal(e.frame, &msg); err != nil {
		s.fallback(fmt.Errorf("malformed push frame: %w", err))
		return
	}

	changed := false
	if run := msg.PayloadRun(); run != nil {
		changed = s.applyRun(*run) || changed
	}
	if step := msg.PayloadStep(); step != nil {
		changed = s.applyStep(*step) || changed
	}
	if changed {
		s.publish()
	}
}

// fallback replaces the push channel by polling for the rest of the session.
// Leaving live mode also issues an immediate re-fetch.
func (s *runSession) fallback(reason error) {
	if s.mode != ModeConnecting && s.mode != ModeLive {
		return
	}
	wasLive := s.mode == ModeLive

	s.log.Warn().Err(reason).Stringer("mode", s.mode).Msg("push channel unavailable, falling back to polling")
	s.closeChannel()
	s.startPolling()

	if wasLive {
		s.fetchUnlessBusy("fallback")
	}
}

func (s *runSession) closeChannel() {
	if s.channel == nil {
		return
	}
	if err := s.channel.Close(); err != nil {
		s.log.Debug().Err(err).Msg("push channel close")
	}
	s.channel = nil
}
