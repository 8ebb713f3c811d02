package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-run-watch/internal/logger"
	"github.com/MKhiriev/go-run-watch/internal/mock"
	"github.com/MKhiriev/go-run-watch/internal/store"
	"github.com/MKhiriev/go-run-watch/internal/utils"
	"github.com/MKhiriev/go-run-watch/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestCredentialSvc(t *testing.T, defaultToken string) (*clientCredentialService, *mock.MockLocalCredentialRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockLocalCredentialRepository(ctrl)

	svc := NewClientCredentialService(repo, defaultToken, logger.Nop()).(*clientCredentialService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func signedToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

// ── Credential ───────────────────────────────────────────────────────────────

func TestCredential_StoredTokenWins(t *testing.T) {
	svc, repo := newTestCredentialSvc(t, "fallback")
	ctx := context.Background()

	repo.EXPECT().GetCredential(ctx, DefaultCredentialName).
		Return(models.Credential{Name: DefaultCredentialName, Token: " stored "}, nil)

	token, ok := svc.Credential(ctx)
	assert.True(t, ok)
	assert.Equal(t, "stored", token)
}

func TestCredential_FallsBackToDefault(t *testing.T) {
	svc, repo := newTestCredentialSvc(t, "fallback")
	ctx := context.Background()

	repo.EXPECT().GetCredential(ctx, DefaultCredentialName).Return(models.Credential{}, store.ErrCredentialNotFound)

	token, ok := svc.Credential(ctx)
	assert.True(t, ok)
	assert.Equal(t, "fallback", token)
}

func TestCredential_StoreErrorTreatedAsNotStored(t *testing.T) {
	svc, repo := newTestCredentialSvc(t, "")
	ctx := context.Background()

	repo.EXPECT().GetCredential(ctx, DefaultCredentialName).
		Return(models.Credential{}, fmt.Errorf("%w: disk", store.ErrScanningRow))

	token, ok := svc.Credential(ctx)
	assert.False(t, ok)
	assert.Empty(t, token)
}

func TestCredential_NoRepository(t *testing.T) {
	svc := NewClientCredentialService(nil, "  ", logger.Nop())

	_, ok := svc.Credential(context.Background())
	assert.False(t, ok, "blank default is absent")
}

// ── Save / Clear ─────────────────────────────────────────────────────────────

func TestSave_PersistsTrimmedToken(t *testing.T) {
	svc, repo := newTestCredentialSvc(t, "")
	ctx := context.Background()

	repo.EXPECT().SaveCredential(ctx, models.Credential{
		Name:      DefaultCredentialName,
		Token:     "abc",
		UpdatedAt: fixedNow,
	}).Return(nil)

	require.NoError(t, svc.Save(ctx, "  abc\n"))
}

func TestSave_EmptyToken(t *testing.T) {
	svc, _ := newTestCredentialSvc(t, "")
	assert.ErrorIs(t, svc.Save(context.Background(), "   "), ErrEmptyToken)
}

func TestSave_RepositoryError(t *testing.T) {
	svc, repo := newTestCredentialSvc(t, "")
	ctx := context.Background()

	repo.EXPECT().SaveCredential(ctx, gomock.Any()).Return(store.ErrExecutingStatement)

	err := svc.Save(ctx, "abc")
	assert.ErrorIs(t, err, store.ErrExecutingStatement)
}

func TestClear(t *testing.T) {
	svc, repo := newTestCredentialSvc(t, "")
	ctx := context.Background()

	repo.EXPECT().DeleteCredential(ctx, DefaultCredentialName).Return(nil)
	require.NoError(t, svc.Clear(ctx))

	repo.EXPECT().DeleteCredential(ctx, DefaultCredentialName).Return(errors.New("readonly"))
	assert.Error(t, svc.Clear(ctx))
}

func TestSaveClear_NoRepository(t *testing.T) {
	svc := NewClientCredentialService(nil, "", logger.Nop())
	assert.Error(t, svc.Save(context.Background(), "abc"))
	assert.Error(t, svc.Clear(context.Background()))
}

// ── Describe ─────────────────────────────────────────────────────────────────

func TestDescribe_NoCredential(t *testing.T) {
	svc, repo := newTestCredentialSvc(t, "")
	repo.EXPECT().GetCredential(gomock.Any(), DefaultCredentialName).Return(models.Credential{}, store.ErrCredentialNotFound)

	info, err := svc.Describe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.CredentialSourceNone, info.Source)
}

func TestDescribe_OpaqueDefaultToken(t *testing.T) {
	svc, repo := newTestCredentialSvc(t, "not-a-jwt")
	repo.EXPECT().GetCredential(gomock.Any(), DefaultCredentialName).Return(models.Credential{}, store.ErrCredentialNotFound)

	info, err := svc.Describe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.CredentialSourceDefault, info.Source)
	assert.Empty(t, info.Subject)
	assert.Nil(t, info.ExpiresAt)
}

func TestDescribe_ExpiredJWT(t *testing.T) {
	svc, repo := newTestCredentialSvc(t, "")
	token := signedToken(t, jwt.RegisteredClaims{
		Subject:   "alice",
		Issuer:    "compliance-api",
		ExpiresAt: jwt.NewNumericDate(fixedNow.Add(-time.Hour)),
	})
	repo.EXPECT().GetCredential(gomock.Any(), DefaultCredentialName).Return(models.Credential{Token: token}, nil)

	info, err := svc.Describe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.CredentialSourceStore, info.Source)
	assert.Equal(t, "alice", info.Subject)
	assert.Equal(t, "compliance-api", info.Issuer)
	require.NotNil(t, info.ExpiresAt)
	assert.True(t, info.Expired)
}

func TestDescribe_MalformedJWT(t *testing.T) {
	svc, repo := newTestCredentialSvc(t, "")
	repo.EXPECT().GetCredential(gomock.Any(), DefaultCredentialName).Return(models.Credential{Token: "abc.not-base64!.sig"}, nil)

	info, err := svc.Describe(context.Background())
	require.ErrorIs(t, err, utils.ErrMalformedJWT)
	assert.Equal(t, models.CredentialSourceStore, info.Source)
	assert.Empty(t, info.Subject)
}

func TestDescribe_ValidJWT(t *testing.T) {
	svc, repo := newTestCredentialSvc(t, "")
	token := signedToken(t, jwt.RegisteredClaims{
		Subject:   "bob",
		ExpiresAt: jwt.NewNumericDate(fixedNow.Add(time.Hour)),
	})
	repo.EXPECT().GetCredential(gomock.Any(), DefaultCredentialName).Return(models.Credential{Token: token}, nil)

	info, err := svc.Describe(context.Background())
	require.NoError(t, err)
	assert.False(t, info.Expired)
}
