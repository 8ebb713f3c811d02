package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-run-watch/internal/logger"
	"github.com/MKhiriev/go-run-watch/internal/store"
	"github.com/MKhiriev/go-run-watch/internal/utils"
	"github.com/MKhiriev/go-run-watch/models"
)

// DefaultCredentialName is the key of the single stored credential row.
const DefaultCredentialName = "default"

type clientCredentialService struct {
	repo         store.LocalCredentialRepository
	defaultToken string
	now          func() time.Time
	logger       *logger.Logger
}

// NewClientCredentialService returns a [CredentialProvider] reading repo first
// and defaultToken second. repo may be nil when no local store is available;
// Save and Clear then fail.
func NewClientCredentialService(repo store.LocalCredentialRepository, defaultToken string, logger *logger.Logger) CredentialProvider {
	return &clientCredentialService{
		repo:         repo,
		defaultToken: strings.TrimSpace(defaultToken),
		now:          time.Now,
		logger:       logger,
	}
}

func (c *clientCredentialService) Credential(ctx context.Context) (string, bool) {
	token, source := c.resolve(ctx)
	return token, source != models.CredentialSourceNone
}

func (c *clientCredentialService) resolve(ctx context.Context) (string, models.CredentialSource) {
	if c.repo != nil {
		credential, err := c.repo.GetCredential(ctx, DefaultCredentialName)
		switch {
		case err == nil && strings.TrimSpace(credential.Token) != "":
			return strings.TrimSpace(credential.Token), models.CredentialSourceStore
		case err != nil && !errors.Is(err, store.ErrCredentialNotFound):
			c.logger.Warn().Err(err).
				Str("func", "clientCredentialService.resolve").
				Msg("failed to read stored credential, treating as not stored")
		}
	}

	if c.defaultToken != "" {
		return c.defaultToken, models.CredentialSourceDefault
	}
	return "", models.CredentialSourceNone
}

func (c *clientCredentialService) Save(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}
	if c.repo == nil {
		return fmt.Errorf("save credential: no local store")
	}

	err := c.repo.SaveCredential(ctx, models.Credential{
		Name:      DefaultCredentialName,
		Token:     token,
		UpdatedAt: c.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}

func (c *clientCredentialService) Clear(ctx context.Context) error {
	if c.repo == nil {
		return fmt.Errorf("clear credential: no local store")
	}
	if err := c.repo.DeleteCredential(ctx, DefaultCredentialName); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}

func (c *clientCredentialService) Describe(ctx context.Context) (models.CredentialInfo, error) {
	token, source := c.resolve(ctx)
	info := models.CredentialInfo{Source: source}
	if source == models.CredentialSourceNone {
		return info, nil
	}

	claims, err := utils.InspectJWT(token)
	if errors.Is(err, utils.ErrNotJWT) {
		// opaque token
		return info, nil
	}
	if err != nil {
		return info, fmt.Errorf("inspect %s token: %w", source, err)
	}

	info.Subject = claims.Subject
	info.Issuer = claims.Issuer
	info.ExpiresAt = claims.ExpiresAt
	if claims.ExpiresAt != nil {
		info.Expired = claims.ExpiresAt.Before(c.now())
	}
	return info, nil
}
