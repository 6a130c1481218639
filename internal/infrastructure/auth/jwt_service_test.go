package auth

import (
	"testing"
	"time"

	"github.com/Bhavuk-Devex/AVO/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(now time.Time) *JWTServiceImpl {
	svc := NewJWTService("test-secret", "avo", 24*time.Hour, 168*time.Hour).(*JWTServiceImpl)
	svc.now = func() time.Time { return now }
	return svc
}

func TestIssueAndValidateSignInToken(t *testing.T) {
	now := time.Now()
	svc := newTestJWTService(now)

	token, err := svc.IssueSignInToken(7, domain.RoleUser, nil)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, domain.RoleUser, claims.Role)
	assert.Nil(t, claims.BusinessID)
	assert.NotEmpty(t, claims.TokenID)
	assert.Equal(t, now.Add(24*time.Hour).Unix(), claims.ExpiresAt)
}

func TestElevationTokenCarriesBusiness(t *testing.T) {
	now := time.Now()
	svc := newTestJWTService(now)
	businessID := uint(3)

	token, err := svc.IssueElevationToken(7, domain.RoleBusinessAdmin, &businessID)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleBusinessAdmin, claims.Role)
	require.NotNil(t, claims.BusinessID)
	assert.Equal(t, uint(3), *claims.BusinessID)
	assert.Equal(t, now.Add(168*time.Hour).Unix(), claims.ExpiresAt)
}

func TestTokensAreUnique(t *testing.T) {
	svc := newTestJWTService(time.Now())

	a, err := svc.IssueSignInToken(1, domain.RoleUser, nil)
	require.NoError(t, err)
	b, err := svc.IssueSignInToken(1, domain.RoleUser, nil)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestValidateTokenErrors(t *testing.T) {
	issuedAt := time.Now()
	issuer := newTestJWTService(issuedAt)
	valid, err := issuer.IssueSignInToken(1, domain.RoleUser, nil)
	require.NoError(t, err)

	otherKey := NewJWTService("other-secret", "avo", time.Hour, time.Hour)
	foreign, err := otherKey.IssueSignInToken(1, domain.RoleUser, nil)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id": 1, "role": "user", "iss": "avo", "exp": issuedAt.Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "user", "iss": "avo", "exp": issuedAt.Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		svc     *JWTServiceImpl
		token   string
		wantErr error
	}{
		{"expired", newTestJWTService(issuedAt.Add(25 * time.Hour)), valid, domain.ErrTokenExpired},
		{"garbage", issuer, "not.a.jwt", domain.ErrTokenMalformed},
		{"empty", issuer, "", domain.ErrTokenMalformed},
		{"wrong key", issuer, foreign, domain.ErrTokenInvalid},
		{"alg none", issuer, noneToken, domain.ErrTokenInvalid},
		{"missing id claim", issuer, noID, domain.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tt.svc.ValidateToken(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
		})
	}
}
