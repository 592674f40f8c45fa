package usecases

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"privstore/internal/domain/user"
	apperrors "privstore/internal/shared/errors"
)

func newLoginUseCase(steam SteamAuthenticator, userRepo *mockUserRepository, tokens TokenIssuer) *SteamLoginUseCase {
	upsert := NewUpsertUserUseCase(userRepo, &mockPrivilegeRepository{}, fixedClock, &mockLogger{})
	return NewSteamLoginUseCase(steam, upsert, tokens, &mockLogger{})
}

func TestSteamLoginUseCase_CompleteLogin(t *testing.T) {
	params := url.Values{"openid.claimed_id": {"https://steamcommunity.com/openid/id/76561197960287930"}}

	t.Run("verified identity issues a token", func(t *testing.T) {
		steam := &mockSteamAuthenticator{
			VerifyFunc: func(ctx context.Context, p url.Values) (*SteamIdentity, error) {
				return &SteamIdentity{SteamID: "76561197960287930", PersonaName: "Gordon", AvatarURL: "https://a/g.jpg"}, nil
			},
		}
		userRepo := &mockUserRepository{
			UpsertFunc: func(ctx context.Context, u *user.User) (*user.User, error) {
				return storedUser(5, u.SteamID().String(), u.DisplayName(), false), nil
			},
		}
		var issuedFor uint
		tokens := &mockTokenIssuer{
			IssueFunc: func(userID uint, steamID string) (string, time.Time, error) {
				issuedFor = userID
				assert.Equal(t, "76561197960287930", steamID)
				return "jwt", fixedNow.Add(time.Hour), nil
			},
		}

		result, err := newLoginUseCase(steam, userRepo, tokens).CompleteLogin(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, uint(5), issuedFor)
		assert.Equal(t, "jwt", result.Token)
		assert.Equal(t, fixedNow.Add(time.Hour), result.ExpiresAt)
		assert.Equal(t, "Gordon", result.User.SteamName)
	})

	t.Run("rejected assertion is unauthorized", func(t *testing.T) {
		steam := &mockSteamAuthenticator{
			VerifyFunc: func(ctx context.Context, p url.Values) (*SteamIdentity, error) {
				return nil, errors.New("is_valid:false")
			},
		}
		_, err := newLoginUseCase(steam, &mockUserRepository{}, &mockTokenIssuer{}).CompleteLogin(context.Background(), params)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
	})

	t.Run("token failure is internal", func(t *testing.T) {
		steam := &mockSteamAuthenticator{
			VerifyFunc: func(ctx context.Context, p url.Values) (*SteamIdentity, error) {
				return &SteamIdentity{SteamID: "76561197960287930"}, nil
			},
		}
		userRepo := &mockUserRepository{
			UpsertFunc: func(ctx context.Context, u *user.User) (*user.User, error) {
				return storedUser(5, u.SteamID().String(), u.DisplayName(), false), nil
			},
		}
		tokens := &mockTokenIssuer{
			IssueFunc: func(userID uint, steamID string) (string, time.Time, error) {
				return "", time.Time{}, errors.New("key too short")
			},
		}
		_, err := newLoginUseCase(steam, userRepo, tokens).CompleteLogin(context.Background(), params)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
	})
}

func TestSteamLoginUseCase_BeginLogin(t *testing.T) {
	uc := newLoginUseCase(&mockSteamAuthenticator{}, &mockUserRepository{}, &mockTokenIssuer{})
	authURL, err := uc.BeginLogin()
	require.NoError(t, err)
	assert.Equal(t, "https://steamcommunity.com/openid/login", authURL)

	failing := newLoginUseCase(&mockSteamAuthenticator{
		AuthURLFunc: func() (string, error) { return "", errors.New("bad callback") },
	}, &mockUserRepository{}, &mockTokenIssuer{})
	_, err = failing.BeginLogin()
	assert.Error(t, err)
}
