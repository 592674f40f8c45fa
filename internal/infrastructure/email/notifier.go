// Package email delivers administrator notifications.
package email

import (
	"context"

	"privstore/internal/application/purchase/usecases"
	"privstore/internal/shared/config"
	"privstore/internal/shared/logger"
)

// NopNotifier is used when SMTP is not configured.
type NopNotifier struct{}

func (NopNotifier) NotifyPurchaseRequested(context.Context, usecases.PurchaseNotification) error {
	return nil
}

// NewAdminNotifier returns the SMTP notifier when notify is configured and
// NopNotifier otherwise.
func NewAdminNotifier(cfg config.NotifyConfig, baseURL string, log logger.Interface) usecases.AdminNotifier {
	if !cfg.Enabled() {
		log.Infow("admin notifications disabled")
		return NopNotifier{}
	}
	return NewSMTPAdminNotifier(cfg, baseURL, log)
}
