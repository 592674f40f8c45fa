package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"privstore/internal/domain/pricing"
	"privstore/internal/domain/privilege"
	"privstore/internal/domain/purchase"
	apperrors "privstore/internal/shared/errors"
)

func pendingRequest(t *testing.T, id uint, tier pricing.Tier, duration pricing.Duration) *purchase.Request {
	t.Helper()
	price, err := pricing.ResolvePrice(tier, duration)
	require.NoError(t, err)
	// created long before approval, expiry must not depend on it
	req, err := purchase.ReconstructRequest(id, 3, tier, duration, price, "proof", purchase.StatusPending, fixedNow.Add(-72*time.Hour), nil)
	require.NoError(t, err)
	return req
}

func TestApproveRequestUseCase_Execute_Success(t *testing.T) {
	twoWeeks := fixedNow.Add(14 * 24 * time.Hour)
	oneMonth := fixedNow.Add(30 * 24 * time.Hour)

	tests := []struct {
		name        string
		tier        pricing.Tier
		duration    pricing.Duration
		wantExpires *time.Time
		wantPrice   int
	}{
		{"low two weeks", pricing.TierLow, pricing.DurationTwoWeeks, &twoWeeks, 20},
		{"nice one month", pricing.TierNice, pricing.DurationOneMonth, &oneMonth, 100},
		{"escape forever", pricing.TierEscape, pricing.DurationForever, nil, 550},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var casArgs []purchase.Status
			var casAt time.Time
			requests := &mockRequestRepository{
				CompareAndSetStatusFunc: func(ctx context.Context, id uint, expected, next purchase.Status, processedAt time.Time) (int64, error) {
					casArgs = []purchase.Status{expected, next}
					casAt = processedAt
					return 1, nil
				},
				GetByIDFunc: func(ctx context.Context, id uint) (*purchase.Request, error) {
					return pendingRequest(t, id, tt.tier, tt.duration), nil
				},
			}
			var upserted *privilege.Privilege
			privileges := &mockPrivilegeRepository{
				UpsertFunc: func(ctx context.Context, p *privilege.Privilege) error {
					upserted = p
					return nil
				},
			}
			tx := &mockTxRunner{}

			uc := NewApproveRequestUseCase(requests, privileges, tx, fixedClock, &mockLogger{})
			result, err := uc.Execute(context.Background(), 8)
			require.NoError(t, err)

			assert.Equal(t, 1, tx.calls)
			assert.Equal(t, []purchase.Status{purchase.StatusPending, purchase.StatusApproved}, casArgs)
			assert.Equal(t, fixedNow, casAt)

			require.NotNil(t, upserted)
			assert.Equal(t, uint(3), upserted.UserID())
			assert.Equal(t, tt.tier, upserted.Tier())
			assert.Equal(t, tt.wantPrice, upserted.Price())
			assert.Equal(t, tt.wantExpires, upserted.ExpiresAt())
			assert.True(t, upserted.IsActive())
			assert.True(t, upserted.PaymentConfirmed())
			assert.Equal(t, fixedNow, upserted.ActivatedAt())

			assert.Equal(t, uint(8), result.RequestID)
			assert.Equal(t, tt.tier.String(), result.Privilege.Type)
		})
	}
}

func TestApproveRequestUseCase_Execute_NotPending(t *testing.T) {
	requests := &mockRequestRepository{
		CompareAndSetStatusFunc: func(ctx context.Context, id uint, expected, next purchase.Status, processedAt time.Time) (int64, error) {
			return 0, nil
		},
	}
	privileges := &mockPrivilegeRepository{
		UpsertFunc: func(ctx context.Context, p *privilege.Privilege) error {
			t.Fatal("privilege must not be written")
			return nil
		},
	}
	tx := &mockTxRunner{}

	uc := NewApproveRequestUseCase(requests, privileges, tx, fixedClock, &mockLogger{})
	_, err := uc.Execute(context.Background(), 8)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
	assert.ErrorIs(t, err, purchase.ErrRequestNotFound)
	assert.True(t, tx.rolledBack)
}

func TestApproveRequestUseCase_Execute_UpsertFailureRollsBack(t *testing.T) {
	requests := &mockRequestRepository{
		CompareAndSetStatusFunc: func(ctx context.Context, id uint, expected, next purchase.Status, processedAt time.Time) (int64, error) {
			return 1, nil
		},
		GetByIDFunc: func(ctx context.Context, id uint) (*purchase.Request, error) {
			return pendingRequest(t, id, pricing.TierNice, pricing.DurationForever), nil
		},
	}
	privileges := &mockPrivilegeRepository{
		UpsertFunc: func(ctx context.Context, p *privilege.Privilege) error {
			return errors.New("connection reset by peer")
		},
	}
	tx := &mockTxRunner{}

	uc := NewApproveRequestUseCase(requests, privileges, tx, fixedClock, &mockLogger{})
	_, err := uc.Execute(context.Background(), 8)
	require.Error(t, err)
	assert.True(t, apperrors.IsStorageError(err))
	assert.True(t, tx.rolledBack)
	assert.NotContains(t, apperrors.GetAppError(err).Message, "connection reset")
}
