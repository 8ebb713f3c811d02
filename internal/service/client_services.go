package service

import (
	"time"

	"github.com/MKhiriev/go-run-watch/internal/adapter"
	"github.com/MKhiriev/go-run-watch/internal/logger"
	"github.com/MKhiriev/go-run-watch/internal/store"
)

// ClientServices bundles the client-side services built from one set of
// storages and transports.
type ClientServices struct {
	Credentials CredentialProvider
	Runs        RunQueryService

	runAdapter   adapter.RunAdapter
	dialer       adapter.PushDialer
	pollInterval time.Duration
	logger       *logger.Logger
}

// NewClientServices wires the services. storages may be nil, in which case
// only the default token is available as a credential.
func NewClientServices(
	storages *store.ClientStorages,
	runAdapter adapter.RunAdapter,
	dialer adapter.PushDialer,
	defaultToken string,
	pollInterval time.Duration,
	logger *logger.Logger,
) *ClientServices {
	var repo store.LocalCredentialRepository
	if storages != nil {
		repo = storages.CredentialRepository
	}
	credentials := NewClientCredentialService(repo, defaultToken, logger)

	return &ClientServices{
		Credentials:  credentials,
		Runs:         NewClientRunQueryService(runAdapter, credentials),
		runAdapter:   runAdapter,
		dialer:       dialer,
		pollInterval: pollInterval,
		logger:       logger,
	}
}

// NewRunSyncClient returns a fresh [RunSyncClient]; the caller owns it and
// must Close it.
func (s *ClientServices) NewRunSyncClient() RunSyncClient {
	return NewRunSyncClient(s.runAdapter, s.dialer, s.Credentials, s.pollInterval, s.logger)
}
