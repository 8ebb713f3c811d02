package store

import (
	"context"

	"github.com/MKhiriev/go-run-watch/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalCredentialRepository persists the bearer credential on the client
// device. Rows are keyed by [models.Credential.Name].
type LocalCredentialRepository interface {
	// SaveCredential inserts or replaces the credential with the same name.
	SaveCredential(ctx context.Context, credential models.Credential) error
	// GetCredential returns [ErrCredentialNotFound] when no row exists.
	GetCredential(ctx context.Context, name string) (models.Credential, error)
	// DeleteCredential removes the credential; deleting a missing one is
	// not an error.
	DeleteCredential(ctx context.Context, name string) error
}
