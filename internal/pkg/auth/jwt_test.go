package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Epik-Whale463/CollegeConnect/internal/pkg/apperrors"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    exp,
		TokenIssuer: "collegeconnect.test",
	})
}

func TestGenerateToken_SevenDayExpiry(t *testing.T) {
	svc := newTestService(168 * time.Hour)

	token, expiresIn, err := svc.GenerateToken(42)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(168*3600), expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "collegeconnect.test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, (168 * time.Hour).Seconds(), remaining.Seconds(), 60)
}

func TestGenerateToken_UniqueTokenIDs(t *testing.T) {
	svc := newTestService(time.Hour)

	first, _, err := svc.GenerateToken(1)
	require.NoError(t, err)
	second, _, err := svc.GenerateToken(1)
	require.NoError(t, err)

	firstClaims, err := svc.ValidateToken(first)
	require.NoError(t, err)
	secondClaims, err := svc.ValidateToken(second)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, _, err := svc.GenerateToken(7)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := newTestService(time.Hour)
	verifier := NewJWTService(JWTConfig{
		SecretKey:   "a-different-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "collegeconnect.test",
	})

	token, _, err := issuer.GenerateToken(7)
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestValidateToken_Malformed(t *testing.T) {
	svc := newTestService(time.Hour)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"empty", "", apperrors.ErrTokenMissing},
		{"whitespace only", "   ", apperrors.ErrTokenMissing},
		{"garbage", "not.a.token", apperrors.ErrTokenInvalid},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9", apperrors.ErrTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"bearer scheme", "Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"raw token", "abc.def.ghi", "abc.def.ghi", nil},
		{"empty header", "", "", apperrors.ErrTokenMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
