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
	"privstore/internal/domain/user"
	apperrors "privstore/internal/shared/errors"
)

func TestUpsertUserUseCase_Execute(t *testing.T) {
	t.Run("returns stored user with active privileges", func(t *testing.T) {
		var upserted *user.User
		userRepo := &mockUserRepository{
			UpsertFunc: func(ctx context.Context, u *user.User) (*user.User, error) {
				upserted = u
				// the stored row keeps its id and admin flag
				return storedUser(7, u.SteamID().String(), u.DisplayName(), true), nil
			},
		}
		expires := fixedNow.Add(10 * 24 * time.Hour)
		held, err := privilege.ReconstructPrivilege(3, 7, pricing.TierLow, pricing.DurationTwoWeeks, 20, &expires, true, true, fixedNow.Add(-4*24*time.Hour))
		require.NoError(t, err)

		var listedAt time.Time
		privRepo := &mockPrivilegeRepository{
			ListActiveByUserFunc: func(ctx context.Context, userID uint, now time.Time) ([]*privilege.Privilege, error) {
				assert.Equal(t, uint(7), userID)
				listedAt = now
				return []*privilege.Privilege{held}, nil
			},
		}

		uc := NewUpsertUserUseCase(userRepo, privRepo, fixedClock, &mockLogger{})
		result, err := uc.Execute(context.Background(), UpsertUserCommand{
			SteamID:     "76561197960287930",
			DisplayName: "<b>Gordon</b>",
			AvatarURL:   "https://avatars.example/g.jpg",
		})
		require.NoError(t, err)

		require.NotNil(t, upserted)
		assert.Equal(t, "Gordon", upserted.DisplayName())
		assert.Equal(t, fixedNow, upserted.LastLoginAt())
		assert.Equal(t, fixedNow, listedAt)

		assert.Equal(t, uint(7), result.User.ID)
		assert.True(t, result.User.IsAdmin)
		require.Len(t, result.Privileges, 1)
		assert.Equal(t, "Low", result.Privileges[0].Type)
		assert.Equal(t, &expires, result.Privileges[0].ExpiresAt)
	})

	t.Run("empty name falls back to default", func(t *testing.T) {
		var upserted *user.User
		userRepo := &mockUserRepository{
			UpsertFunc: func(ctx context.Context, u *user.User) (*user.User, error) {
				upserted = u
				return storedUser(1, u.SteamID().String(), u.DisplayName(), false), nil
			},
		}

		uc := NewUpsertUserUseCase(userRepo, &mockPrivilegeRepository{}, fixedClock, &mockLogger{})
		result, err := uc.Execute(context.Background(), UpsertUserCommand{SteamID: "76561197960287930"})
		require.NoError(t, err)
		assert.Equal(t, "Player_7930", upserted.DisplayName())
		assert.NotNil(t, result.Privileges)
		assert.Empty(t, result.Privileges)
	})

	t.Run("invalid steam id is a validation error", func(t *testing.T) {
		userRepo := &mockUserRepository{
			UpsertFunc: func(ctx context.Context, u *user.User) (*user.User, error) {
				t.Fatal("upsert must not be called")
				return nil, nil
			},
		}

		uc := NewUpsertUserUseCase(userRepo, &mockPrivilegeRepository{}, fixedClock, &mockLogger{})
		_, err := uc.Execute(context.Background(), UpsertUserCommand{SteamID: "not-a-steam-id"})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("storage failure is opaque", func(t *testing.T) {
		userRepo := &mockUserRepository{
			UpsertFunc: func(ctx context.Context, u *user.User) (*user.User, error) {
				return nil, errors.New("deadlock detected")
			},
		}

		uc := NewUpsertUserUseCase(userRepo, &mockPrivilegeRepository{}, fixedClock, &mockLogger{})
		_, err := uc.Execute(context.Background(), UpsertUserCommand{SteamID: "76561197960287930"})
		require.Error(t, err)
		assert.True(t, apperrors.IsStorageError(err))
		assert.NotContains(t, apperrors.GetAppError(err).Message, "deadlock")
	})
}
