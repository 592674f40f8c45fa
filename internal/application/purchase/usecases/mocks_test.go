package usecases

import (
	"context"
	"sync"
	"time"

	"privstore/internal/domain/privilege"
	"privstore/internal/domain/purchase"
	"privstore/internal/domain/user"
	"privstore/internal/shared/logger"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type mockRequestRepository struct {
	CreateFunc              func(ctx context.Context, r *purchase.Request) error
	GetByIDFunc             func(ctx context.Context, id uint) (*purchase.Request, error)
	ListByStatusFunc        func(ctx context.Context, status purchase.Status) ([]*purchase.Request, error)
	CompareAndSetStatusFunc func(ctx context.Context, id uint, expected, next purchase.Status, processedAt time.Time) (int64, error)
}

func (m *mockRequestRepository) Create(ctx context.Context, r *purchase.Request) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return nil
}

func (m *mockRequestRepository) GetByID(ctx context.Context, id uint) (*purchase.Request, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, purchase.ErrRequestNotFound
}

func (m *mockRequestRepository) ListByStatus(ctx context.Context, status purchase.Status) ([]*purchase.Request, error) {
	if m.ListByStatusFunc != nil {
		return m.ListByStatusFunc(ctx, status)
	}
	return nil, nil
}

func (m *mockRequestRepository) CompareAndSetStatus(ctx context.Context, id uint, expected, next purchase.Status, processedAt time.Time) (int64, error) {
	if m.CompareAndSetStatusFunc != nil {
		return m.CompareAndSetStatusFunc(ctx, id, expected, next, processedAt)
	}
	return 0, nil
}

type mockUserRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepository) GetBySteamID(ctx context.Context, steamID user.SteamID) (*user.User, error) {
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepository) Upsert(ctx context.Context, u *user.User) (*user.User, error) {
	return u, nil
}

func (m *mockUserRepository) ListNonAdminSummaries(ctx context.Context, limit int, now time.Time) ([]*user.Summary, error) {
	return nil, nil
}

type mockPrivilegeRepository struct {
	UpsertFunc func(ctx context.Context, p *privilege.Privilege) error
}

func (m *mockPrivilegeRepository) Upsert(ctx context.Context, p *privilege.Privilege) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, p)
	}
	return nil
}

func (m *mockPrivilegeRepository) ListActiveByUser(ctx context.Context, userID uint, now time.Time) ([]*privilege.Privilege, error) {
	return nil, nil
}

// mockTxRunner runs fn directly and records whether the unit of work failed.
type mockTxRunner struct {
	calls      int
	rolledBack bool
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	err := fn(ctx)
	m.rolledBack = err != nil
	return err
}

type mockNotifier struct {
	mu   sync.Mutex
	sent []PurchaseNotification
	err  error
}

func (m *mockNotifier) NotifyPurchaseRequested(ctx context.Context, n PurchaseNotification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, n)
	return m.err
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

func requester(id uint) *user.User {
	u, err := user.ReconstructUser(id, "76561197960287930", "Gordon", "", false, fixedNow, fixedNow)
	if err != nil {
		panic(err)
	}
	return u
}
