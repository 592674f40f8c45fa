package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"privstore/internal/domain/pricing"
	"privstore/internal/domain/purchase"
)

func TestPurchaseRequestRepository_CreateAndGet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.createUser(t, "4001", "buyer", baseTime)

	req := f.createRequest(t, u.ID(), pricing.TierNice, pricing.DurationOneMonth, baseTime)
	assert.NotZero(t, req.ID())

	got, err := f.requests.GetByID(ctx, req.ID())
	require.NoError(t, err)
	assert.Equal(t, u.ID(), got.UserID())
	assert.Equal(t, pricing.TierNice, got.Tier())
	assert.Equal(t, pricing.DurationOneMonth, got.Duration())
	assert.Equal(t, 100, got.Price())
	assert.Equal(t, "proof", got.PaymentProof())
	assert.Equal(t, purchase.StatusPending, got.Status())
	assert.Nil(t, got.ProcessedAt())

	_, err = f.requests.GetByID(ctx, 424242)
	assert.ErrorIs(t, err, purchase.ErrRequestNotFound)
}

func TestPurchaseRequestRepository_ListByStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.createUser(t, "5001", "lister", baseTime)

	first := f.createRequest(t, u.ID(), pricing.TierLow, pricing.DurationTwoWeeks, baseTime)
	second := f.createRequest(t, u.ID(), pricing.TierNice, pricing.DurationForever, baseTime.Add(time.Minute))
	third := f.createRequest(t, u.ID(), pricing.TierEscape, pricing.DurationForever, baseTime.Add(2*time.Minute))

	n, err := f.requests.CompareAndSetStatus(ctx, second.ID(), purchase.StatusPending, purchase.StatusRejected, baseTime.Add(time.Hour))
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	pending, err := f.requests.ListByStatus(ctx, purchase.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, third.ID(), pending[0].ID())
	assert.Equal(t, first.ID(), pending[1].ID())
	for _, r := range pending {
		assert.Equal(t, purchase.StatusPending, r.Status())
		require.NotNil(t, r.Requester())
		assert.Equal(t, "lister", r.Requester().DisplayName())
	}

	rejected, err := f.requests.ListByStatus(ctx, purchase.StatusRejected)
	require.NoError(t, err)
	require.Len(t, rejected, 1)
	assert.Equal(t, second.ID(), rejected[0].ID())
}

func TestPurchaseRequestRepository_CompareAndSetStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.createUser(t, "6001", "cas", baseTime)
	req := f.createRequest(t, u.ID(), pricing.TierLow, pricing.DurationForever, baseTime)
	processedAt := baseTime.Add(time.Hour)

	t.Run("first transition wins", func(t *testing.T) {
		n, err := f.requests.CompareAndSetStatus(ctx, req.ID(), purchase.StatusPending, purchase.StatusApproved, processedAt)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		got, err := f.requests.GetByID(ctx, req.ID())
		require.NoError(t, err)
		assert.Equal(t, purchase.StatusApproved, got.Status())
		require.NotNil(t, got.ProcessedAt())
		assert.True(t, processedAt.Equal(*got.ProcessedAt()))
	})

	t.Run("second transition changes nothing", func(t *testing.T) {
		n, err := f.requests.CompareAndSetStatus(ctx, req.ID(), purchase.StatusPending, purchase.StatusRejected, processedAt.Add(time.Hour))
		require.NoError(t, err)
		assert.Zero(t, n)

		got, err := f.requests.GetByID(ctx, req.ID())
		require.NoError(t, err)
		assert.Equal(t, purchase.StatusApproved, got.Status())
		assert.True(t, processedAt.Equal(*got.ProcessedAt()))
	})

	t.Run("unknown id changes nothing", func(t *testing.T) {
		n, err := f.requests.CompareAndSetStatus(ctx, 99999, purchase.StatusPending, purchase.StatusApproved, processedAt)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("forbidden transition is refused before touching storage", func(t *testing.T) {
		_, err := f.requests.CompareAndSetStatus(ctx, req.ID(), purchase.StatusApproved, purchase.StatusPending, processedAt)
		assert.Error(t, err)
	})
}
