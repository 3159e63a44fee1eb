//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"github.com/Nathan-Yinka/vendy-stores/internal/domain/auth"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)

	t.Run("発行したトークンを検証できる", func(t *testing.T) {
		buyer := uuid.New()
		token, err := svc.GenerateToken(buyer, auth.RoleUser)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)

		require.NoError(t, err)
		id, err := claims.BuyerID()
		require.NoError(t, err)
		assert.Equal(t, buyer, id)
		assert.Equal(t, "USER", claims.Role)
	})

	t.Run("期限切れはErrExpiredToken", func(t *testing.T) {
		expired := jwt.NewService("secret", -time.Minute)
		token, err := expired.GenerateToken(uuid.New(), auth.RoleUser)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)

		require.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("改ざんされたトークンはErrInvalidToken", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), auth.RoleUser)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token + "x")

		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expのないトークンは拒否", func(t *testing.T) {
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{
			RegisteredClaims: gojwt.RegisteredClaims{Subject: uuid.NewString()},
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)

		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("HMAC以外のアルゴリズムは拒否", func(t *testing.T) {
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, jwt.Claims{Role: "ADMIN"}).
			SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)

		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
