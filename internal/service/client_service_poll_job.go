package service

import (
	"context"
	"sync"
	"time"
)

// DefaultPollInterval is the re-fetch period used when none is configured.
const DefaultPollInterval = 5 * time.Second

type clientPollJob struct {
	onTick func(ctx context.Context)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientPollJob creates a clientPollJob that calls onTick on a ticker.
// The job is idle until Start is called. onTick receives the job context,
// which is cancelled by Stop; it must return promptly once it is.
func NewClientPollJob(onTick func(ctx context.Context)) ClientPollJob {
	return &clientPollJob{onTick: onTick}
}

// Start implements ClientPollJob. It stops any previously running job, then
// launches a background goroutine that calls onTick every interval. If interval
// is zero or negative it defaults to [DefaultPollInterval]. The goroutine exits
// when ctx is cancelled or Stop is called.
func (j *clientPollJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.onTick(jobCtx)
			}
		}
	}()
}

// Stop implements ClientPollJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *clientPollJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Running implements ClientPollJob.
func (j *clientPollJob) Running() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.cancel != nil
}
