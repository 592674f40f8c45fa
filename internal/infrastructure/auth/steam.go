package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/markbates/goth/providers/steam"

	"privstore/internal/application/user/usecases"
	"privstore/internal/domain/user"
	"privstore/internal/shared/config"
	"privstore/internal/shared/logger"
)

// SteamAuthenticator implements Steam OpenID 2.0 login on top of goth. The
// flow is stateless: every callback is checked against Steam directly.
type SteamAuthenticator struct {
	provider *steam.Provider
	apiKey   string
	logger   logger.Interface
}

func NewSteamAuthenticator(cfg config.SteamConfig, log logger.Interface) *SteamAuthenticator {
	provider := steam.New(cfg.APIKey, cfg.CallbackURL)
	provider.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	return &SteamAuthenticator{
		provider: provider,
		apiKey:   cfg.APIKey,
		logger:   log,
	}
}

// AuthURL returns the Steam login page the browser is sent to.
func (a *SteamAuthenticator) AuthURL() (string, error) {
	session, err := a.provider.BeginAuth("")
	if err != nil {
		return "", fmt.Errorf("failed to begin steam auth: %w", err)
	}
	return session.GetAuthURL()
}

// Verify checks the callback assertion with Steam and resolves the persona
// when a Web API key is configured.
func (a *SteamAuthenticator) Verify(ctx context.Context, params url.Values) (*usecases.SteamIdentity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	gs, err := a.provider.BeginAuth("")
	if err != nil {
		return nil, fmt.Errorf("failed to begin steam auth: %w", err)
	}
	session, ok := gs.(*steam.Session)
	if !ok {
		return nil, fmt.Errorf("unexpected steam session type %T", gs)
	}

	if _, err := session.Authorize(a.provider, params); err != nil {
		return nil, fmt.Errorf("steam rejected the assertion: %w", err)
	}

	steamID, err := user.ParseClaimedID(params.Get("openid.claimed_id"))
	if err != nil {
		return nil, err
	}

	identity := &usecases.SteamIdentity{SteamID: steamID.String()}
	if a.apiKey == "" {
		return identity, nil
	}

	profile, err := a.provider.FetchUser(session)
	if err != nil {
		// the login itself is valid; fall back to the default name
		a.logger.Warnw("failed to fetch steam persona", "steam_id", steamID, "error", err)
		return identity, nil
	}
	identity.PersonaName = profile.NickName
	identity.AvatarURL = profile.AvatarURL
	return identity, nil
}
