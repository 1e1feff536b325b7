package jwt

import (
	"testing"
	"time"
	"wine-diary/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("secret", "WINE-DIARY", time.Hour)

	token, err := svc.GenerateTokenUser("user-1", domain.RoleUser)
	require.NoError(t, err)

	userID, role, err := svc.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, domain.RoleUser, role)
}

func TestExpiredToken(t *testing.T) {
	svc := NewJWTService("secret", "WINE-DIARY", time.Hour).(*jwtService)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.GenerateTokenUser("user-1", domain.RoleUser)
	require.NoError(t, err)

	_, _, err = svc.GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestRejectedTokens(t *testing.T) {
	issued, err := NewJWTService("secret", "WINE-DIARY", time.Hour).GenerateTokenUser("user-1", domain.RoleUser)
	require.NoError(t, err)

	tests := []struct {
		name  string
		svc   JWTService
		token string
	}{
		{name: "other secret", svc: NewJWTService("another", "WINE-DIARY", time.Hour), token: issued},
		{name: "other issuer", svc: NewJWTService("secret", "SOMEONE-ELSE", time.Hour), token: issued},
		{name: "garbage", svc: NewJWTService("secret", "WINE-DIARY", time.Hour), token: "not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.svc.GetUserIDByToken(tt.token)
			assert.ErrorIs(t, err, domain.ErrTokenInvalid)
		})
	}
}
