package usecases

import (
	"context"
	"net/url"
	"time"

	"privstore/internal/domain/privilege"
	"privstore/internal/domain/user"
	"privstore/internal/shared/logger"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type mockUserRepository struct {
	GetByIDFunc               func(ctx context.Context, id uint) (*user.User, error)
	GetBySteamIDFunc          func(ctx context.Context, steamID user.SteamID) (*user.User, error)
	UpsertFunc                func(ctx context.Context, u *user.User) (*user.User, error)
	ListNonAdminSummariesFunc func(ctx context.Context, limit int, now time.Time) ([]*user.Summary, error)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepository) GetBySteamID(ctx context.Context, steamID user.SteamID) (*user.User, error) {
	if m.GetBySteamIDFunc != nil {
		return m.GetBySteamIDFunc(ctx, steamID)
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepository) Upsert(ctx context.Context, u *user.User) (*user.User, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, u)
	}
	return u, nil
}

func (m *mockUserRepository) ListNonAdminSummaries(ctx context.Context, limit int, now time.Time) ([]*user.Summary, error) {
	if m.ListNonAdminSummariesFunc != nil {
		return m.ListNonAdminSummariesFunc(ctx, limit, now)
	}
	return nil, nil
}

type mockPrivilegeRepository struct {
	UpsertFunc           func(ctx context.Context, p *privilege.Privilege) error
	ListActiveByUserFunc func(ctx context.Context, userID uint, now time.Time) ([]*privilege.Privilege, error)
}

func (m *mockPrivilegeRepository) Upsert(ctx context.Context, p *privilege.Privilege) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, p)
	}
	return nil
}

func (m *mockPrivilegeRepository) ListActiveByUser(ctx context.Context, userID uint, now time.Time) ([]*privilege.Privilege, error) {
	if m.ListActiveByUserFunc != nil {
		return m.ListActiveByUserFunc(ctx, userID, now)
	}
	return nil, nil
}

type mockSteamAuthenticator struct {
	AuthURLFunc func() (string, error)
	VerifyFunc  func(ctx context.Context, params url.Values) (*SteamIdentity, error)
}

func (m *mockSteamAuthenticator) AuthURL() (string, error) {
	if m.AuthURLFunc != nil {
		return m.AuthURLFunc()
	}
	return "https://steamcommunity.com/openid/login", nil
}

func (m *mockSteamAuthenticator) Verify(ctx context.Context, params url.Values) (*SteamIdentity, error) {
	return m.VerifyFunc(ctx, params)
}

type mockTokenIssuer struct {
	IssueFunc func(userID uint, steamID string) (string, time.Time, error)
}

func (m *mockTokenIssuer) Issue(userID uint, steamID string) (string, time.Time, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID, steamID)
	}
	return "signed-token", fixedNow.Add(24 * time.Hour), nil
}

type mockLogger struct{}

func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}
func (m *mockLogger) With(keysAndValues ...any) logger.Interface {
	return m
}
func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func storedUser(id uint, steamID, name string, isAdmin bool) *user.User {
	u, err := user.ReconstructUser(id, user.SteamID(steamID), name, "https://avatars.example/"+steamID+".jpg",
		isAdmin, fixedNow.Add(-48*time.Hour), fixedNow)
	if err != nil {
		panic(err)
	}
	return u
}
