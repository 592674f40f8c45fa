package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"privstore/internal/domain/pricing"
	"privstore/internal/domain/purchase"
	"privstore/internal/domain/user"
	"privstore/internal/infrastructure/database/testdb"
	"privstore/internal/shared/logger"
)

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	db         *gorm.DB
	users      *UserRepositoryImpl
	requests   *PurchaseRequestRepositoryImpl
	privileges *PrivilegeRepositoryImpl
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.Open(t)
	log := logger.NewLogger()
	return &fixture{
		db:         db,
		users:      NewUserRepository(db, log),
		requests:   NewPurchaseRequestRepository(db, log),
		privileges: NewPrivilegeRepository(db, log),
	}
}

func (f *fixture) createUser(t *testing.T, steamID user.SteamID, name string, at time.Time) *user.User {
	t.Helper()
	u, err := user.NewUser(steamID, name, "", at)
	require.NoError(t, err)
	stored, err := f.users.Upsert(context.Background(), u)
	require.NoError(t, err)
	return stored
}

func (f *fixture) createRequest(t *testing.T, userID uint, tier pricing.Tier, duration pricing.Duration, at time.Time) *purchase.Request {
	t.Helper()
	req, err := purchase.NewRequest(userID, tier, duration, "proof", at)
	require.NoError(t, err)
	require.NoError(t, f.requests.Create(context.Background(), req))
	return req
}

func (f *fixture) makeAdmin(t *testing.T, id uint) {
	t.Helper()
	require.NoError(t, f.db.Exec("UPDATE users SET is_admin = ? WHERE id = ?", true, id).Error)
}
