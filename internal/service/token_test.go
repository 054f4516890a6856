package service

import (
	"testing"
	"time"

	"github.com/pribylovaa/go-crm-service/internal/config"
	"github.com/pribylovaa/go-crm-service/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	return &models.User{
		ID:    uuid.New(),
		Name:  "Alice",
		Email: "alice@example.com",
	}
}

func TestIssueVerifyToken_Roundtrip(t *testing.T) {
	t.Parallel()

	svc := New(nil, testCfg())
	user := testUser()
	now := time.Now().UTC()

	token, err := svc.issueToken(user, now)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, user.Email, claims.Email)
	require.Equal(t, user.Name, claims.Name)
	require.WithinDuration(t, now, claims.IssuedAt, time.Second)
	require.WithinDuration(t, now.Add(svc.cfg.AccessTokenTTL), claims.ExpiresAt, time.Second)
}

func TestVerifyToken_Expired(t *testing.T) {
	t.Parallel()

	svc := New(nil, testCfg())

	// Выпускаем токен "в прошлом": exp уже позади.
	issuedAt := time.Now().UTC().Add(-svc.cfg.AccessTokenTTL - time.Minute)
	token, err := svc.issueToken(testUser(), issuedAt)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyToken_ExpiredExactlyAtBoundary(t *testing.T) {
	t.Parallel()

	svc := New(nil, testCfg())

	// exp совпадает с текущим моментом: leeway нет, токен уже просрочен.
	issuedAt := time.Now().UTC().Add(-svc.cfg.AccessTokenTTL)
	token, err := svc.issueToken(testUser(), issuedAt)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyToken_EmptyString(t *testing.T) {
	t.Parallel()

	svc := New(nil, testCfg())

	_, err := svc.VerifyToken("")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_UnsignedToken(t *testing.T) {
	t.Parallel()

	svc := New(nil, testCfg())

	// Синтаксически корректный, но неподписанный токен (alg=none).
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"uid": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.VerifyToken(unsigned)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_ForeignSecret(t *testing.T) {
	t.Parallel()

	svc := New(nil, testCfg())

	other := New(nil, config.AuthConfig{
		JWTSecret:      "another-secret",
		AccessTokenTTL: time.Hour,
	})

	token, err := other.issueToken(testUser(), time.Now().UTC())
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Truncated(t *testing.T) {
	t.Parallel()

	svc := New(nil, testCfg())

	token, err := svc.issueToken(testUser(), time.Now().UTC())
	require.NoError(t, err)

	_, err = svc.VerifyToken(token[:len(token)-1])
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_MissingUserIDClaim(t *testing.T) {
	t.Parallel()

	svc := New(nil, testCfg())

	// Подпись верная, но uid не парсится как UUID.
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": "not-a-uuid",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testCfg().JWTSecret))
	require.NoError(t, err)

	_, err = svc.VerifyToken(raw)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)
}
