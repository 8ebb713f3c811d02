package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-run-watch/internal/logger"
	"github.com/MKhiriev/go-run-watch/models"
)

type localCredentialRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalCredentialRepository(db *DB, logger *logger.Logger) LocalCredentialRepository {
	return &localCredentialRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localCredentialRepository) SaveCredential(ctx context.Context, credential models.Credential) error {
	query, args, err := buildUpsertCredentialQuery(credential)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		l.logger.Err(err).
			Str("func", "localCredentialRepository.SaveCredential").
			Str("name", credential.Name).
			Msg("failed to upsert credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localCredentialRepository) GetCredential(ctx context.Context, name string) (models.Credential, error) {
	query, args, err := buildSelectCredentialQuery(name)
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var credential models.Credential
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(
		&credential.Name,
		&credential.Token,
		&credential.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Credential{}, ErrCredentialNotFound
	}
	if err != nil {
		l.logger.Err(err).
			Str("func", "localCredentialRepository.GetCredential").
			Str("name", name).
			Msg("failed to read credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return credential, nil
}

func (l *localCredentialRepository) DeleteCredential(ctx context.Context, name string) error {
	query, args, err := buildDeleteCredentialQuery(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		l.logger.Err(err).
			Str("func", "localCredentialRepository.DeleteCredential").
			Str("name", name).
			Msg("failed to delete credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
