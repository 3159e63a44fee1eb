//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"github.com/Nathan-Yinka/vendy-stores/internal/domain/auth"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/config"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, buyerID uuid.UUID, role auth.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(buyerID, role)
	require.NoError(t, err)
	return token
}

// NewBuyer returns a fresh buyer id with a USER token.
func (h *JWTHelper) NewBuyer(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	return id, h.GenerateToken(t, id, auth.RoleUser)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, buyerID uuid.UUID, role auth.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(buyerID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
