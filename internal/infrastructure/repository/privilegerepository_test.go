package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"privstore/internal/domain/pricing"
	"privstore/internal/domain/privilege"
	"privstore/internal/infrastructure/persistence/models"
)

func TestPrivilegeRepository_Upsert(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.createUser(t, "7001", "holder", baseTime)

	timed, err := privilege.Activate(u.ID(), pricing.TierLow, pricing.DurationTwoWeeks, 20, baseTime)
	require.NoError(t, err)
	require.NoError(t, f.privileges.Upsert(ctx, timed))

	// switch the row off to prove the overwrite re-activates it
	require.NoError(t, f.db.Exec("UPDATE privileges SET is_active = ?, payment_confirmed = ? WHERE user_id = ?", false, false, u.ID()).Error)

	later := baseTime.Add(9 * 24 * time.Hour)
	forever, err := privilege.Activate(u.ID(), pricing.TierLow, pricing.DurationForever, 100, later)
	require.NoError(t, err)
	require.NoError(t, f.privileges.Upsert(ctx, forever))

	var rows []models.PrivilegeModel
	require.NoError(t, f.db.Where("user_id = ?", u.ID()).Find(&rows).Error)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, string(pricing.TierLow), row.PrivilegeType)
	assert.Equal(t, string(pricing.DurationForever), row.DurationType)
	assert.Equal(t, 100, row.Price)
	assert.Nil(t, row.ExpiresAt)
	assert.True(t, row.IsActive)
	assert.True(t, row.PaymentConfirmed)
	assert.True(t, later.Equal(row.ActivatedAt))
}

func TestPrivilegeRepository_UpsertKeepsTiersSeparate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.createUser(t, "7002", "collector", baseTime)

	for _, tier := range []pricing.Tier{pricing.TierLow, pricing.TierNice, pricing.TierEscape} {
		p, err := privilege.Activate(u.ID(), tier, pricing.DurationForever, 1, baseTime)
		require.NoError(t, err)
		require.NoError(t, f.privileges.Upsert(ctx, p))
	}

	active, err := f.privileges.ListActiveByUser(ctx, u.ID(), baseTime)
	require.NoError(t, err)
	assert.Len(t, active, 3)
}

func TestPrivilegeRepository_ListActiveByUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.createUser(t, "7003", "mixed", baseTime)
	other := f.createUser(t, "7004", "other", baseTime)

	running, err := privilege.Activate(u.ID(), pricing.TierNice, pricing.DurationOneMonth, 100, baseTime)
	require.NoError(t, err)
	require.NoError(t, f.privileges.Upsert(ctx, running))

	expired, err := privilege.Activate(u.ID(), pricing.TierLow, pricing.DurationTwoWeeks, 20, baseTime.AddDate(0, 0, -20))
	require.NoError(t, err)
	require.NoError(t, f.privileges.Upsert(ctx, expired))

	othersPriv, err := privilege.Activate(other.ID(), pricing.TierEscape, pricing.DurationForever, 550, baseTime)
	require.NoError(t, err)
	require.NoError(t, f.privileges.Upsert(ctx, othersPriv))

	active, err := f.privileges.ListActiveByUser(ctx, u.ID(), baseTime)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, pricing.TierNice, active[0].Tier())
	require.NotNil(t, active[0].ExpiresAt())
	assert.True(t, baseTime.AddDate(0, 0, 30).Equal(*active[0].ExpiresAt()))

	// a month later nothing is left
	active, err = f.privileges.ListActiveByUser(ctx, u.ID(), baseTime.AddDate(0, 0, 31))
	require.NoError(t, err)
	assert.Empty(t, active)
}
