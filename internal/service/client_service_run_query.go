package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-run-watch/internal/adapter"
	"github.com/MKhiriev/go-run-watch/models"
)

type clientRunQueryService struct {
	adapter     adapter.RunAdapter
	credentials CredentialProvider
}

func NewClientRunQueryService(runAdapter adapter.RunAdapter, credentials CredentialProvider) RunQueryService {
	return &clientRunQueryService{adapter: runAdapter, credentials: credentials}
}

func (q *clientRunQueryService) authorize(ctx context.Context) {
	if q.credentials == nil {
		return
	}
	token, _ := q.credentials.Credential(ctx)
	q.adapter.SetToken(token)
}

func (q *clientRunQueryService) Details(ctx context.Context, runID int64) (RunSnapshot, error) {
	if runID <= 0 {
		return RunSnapshot{RunID: runID, Steps: []models.Step{}, Unavailable: true}, fmt.Errorf("%w: %d", ErrInvalidRunID, runID)
	}

	q.authorize(ctx)

	var (
		run   models.Run
		steps []models.Step
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if run, err = q.adapter.GetRun(gctx, runID); err != nil {
			return fmt.Errorf("fetch run: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if steps, err = q.adapter.GetRunSteps(gctx, runID); err != nil {
			return fmt.Errorf("fetch run steps: %w", err)
		}
		return nil
	})

	snap := RunSnapshot{RunID: runID, Steps: []models.Step{}}
	if err := g.Wait(); err != nil {
		snap.Err = err
		return snap, err
	}

	snap.Run = &run
	snap.Steps = MergeSteps(nil, steps)
	return snap, nil
}

func (q *clientRunQueryService) List(ctx context.Context, limit int) ([]models.Run, error) {
	q.authorize(ctx)

	runs, err := q.adapter.ListRuns(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}
