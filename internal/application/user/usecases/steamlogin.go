package usecases

import (
	"context"
	"net/url"
	"time"

	"privstore/internal/application/user/dto"
	"privstore/internal/shared/errors"
	"privstore/internal/shared/logger"
)

// SteamIdentity is a SteamID verified by Steam, with the persona details
// when they could be fetched.
type SteamIdentity struct {
	SteamID     string
	PersonaName string
	AvatarURL   string
}

type SteamAuthenticator interface {
	AuthURL() (string, error)
	Verify(ctx context.Context, params url.Values) (*SteamIdentity, error)
}

type TokenIssuer interface {
	Issue(userID uint, steamID string) (token string, expiresAt time.Time, err error)
}

type upsertUserExecutor interface {
	Execute(ctx context.Context, cmd UpsertUserCommand) (*dto.UserWithPrivilegesDTO, error)
}

// SteamLoginUseCase drives the OpenID round trip and turns a verified
// identity into a session token.
type SteamLoginUseCase struct {
	steam  SteamAuthenticator
	upsert upsertUserExecutor
	tokens TokenIssuer
	logger logger.Interface
}

func NewSteamLoginUseCase(
	steam SteamAuthenticator,
	upsert upsertUserExecutor,
	tokens TokenIssuer,
	logger logger.Interface,
) *SteamLoginUseCase {
	return &SteamLoginUseCase{
		steam:  steam,
		upsert: upsert,
		tokens: tokens,
		logger: logger,
	}
}

// BeginLogin returns the Steam URL the client is redirected to.
func (uc *SteamLoginUseCase) BeginLogin() (string, error) {
	authURL, err := uc.steam.AuthURL()
	if err != nil {
		uc.logger.Errorw("failed to build steam auth url", "error", err)
		return "", errors.NewInternalError("steam login unavailable")
	}
	return authURL, nil
}

// CompleteLogin verifies the OpenID callback parameters and signs the user in.
func (uc *SteamLoginUseCase) CompleteLogin(ctx context.Context, params url.Values) (*dto.LoginResultDTO, error) {
	identity, err := uc.steam.Verify(ctx, params)
	if err != nil {
		uc.logger.Warnw("steam assertion rejected", "error", err)
		return nil, errors.NewUnauthorizedError("steam authentication failed").WithCause(err)
	}

	profile, err := uc.upsert.Execute(ctx, UpsertUserCommand{
		SteamID:     identity.SteamID,
		DisplayName: identity.PersonaName,
		AvatarURL:   identity.AvatarURL,
	})
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := uc.tokens.Issue(profile.User.ID, profile.User.SteamID)
	if err != nil {
		uc.logger.Errorw("failed to issue session token", "user_id", profile.User.ID, "error", err)
		return nil, errors.NewInternalError("failed to issue session token").WithCause(err)
	}

	uc.logger.Infow("steam login completed", "user_id", profile.User.ID, "steam_id", profile.User.SteamID)
	return &dto.LoginResultDTO{
		Token:                 token,
		ExpiresAt:             expiresAt,
		UserWithPrivilegesDTO: *profile,
	}, nil
}
