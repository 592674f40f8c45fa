package usecases

import (
	"context"
	"time"
)

// TransactionRunner runs fn inside one database transaction; repositories
// called with the ctx handed to fn join it.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PurchaseNotification is what administrators are told about a new request.
type PurchaseNotification struct {
	RequestID    uint
	SteamID      string
	DisplayName  string
	Tier         string
	Duration     string
	Price        int
	PaymentProof string
	CreatedAt    time.Time
}

// AdminNotifier delivers best-effort notices to administrators.
type AdminNotifier interface {
	NotifyPurchaseRequested(ctx context.Context, n PurchaseNotification) error
}
