package email

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"privstore/internal/application/purchase/usecases"
	"privstore/internal/shared/config"
	"privstore/internal/shared/goroutine"
	"privstore/internal/shared/logger"
	"privstore/internal/shared/utils"
)

const maxProofRunes = 500

type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPAdminNotifier mails every configured administrator when a purchase
// request is submitted. Delivery happens in the background.
type SMTPAdminNotifier struct {
	from    string
	to      []string
	baseURL string
	sender  mailSender
	logger  logger.Interface
}

func NewSMTPAdminNotifier(cfg config.NotifyConfig, baseURL string, log logger.Interface) *SMTPAdminNotifier {
	return &SMTPAdminNotifier{
		from:    cfg.FromAddress,
		to:      cfg.AdminEmails,
		baseURL: strings.TrimRight(baseURL, "/"),
		sender:  gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		logger:  log,
	}
}

func (s *SMTPAdminNotifier) NotifyPurchaseRequested(ctx context.Context, n usecases.PurchaseNotification) error {
	if len(s.to) == 0 {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.to...)
	m.SetHeader("Subject", fmt.Sprintf("New purchase request #%d: %s (%s)", n.RequestID, n.Tier, n.Duration))
	m.SetBody("text/plain", s.renderBody(n))

	goroutine.SafeGo(s.logger, "admin-purchase-mail", func() {
		if err := s.sender.DialAndSend(m); err != nil {
			s.logger.Warnw("failed to send admin notification", "request_id", n.RequestID, "error", err)
			return
		}
		s.logger.Debugw("admin notification sent", "request_id", n.RequestID, "recipients", len(s.to))
	})
	return nil
}

func (s *SMTPAdminNotifier) renderBody(n usecases.PurchaseNotification) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A new purchase request is waiting for review.\n\n")
	fmt.Fprintf(&b, "Request:  #%d\n", n.RequestID)
	fmt.Fprintf(&b, "Player:   %s (%s)\n", utils.SanitizeText(n.DisplayName, 64), n.SteamID)
	fmt.Fprintf(&b, "Tier:     %s, %s\n", n.Tier, n.Duration)
	fmt.Fprintf(&b, "Price:    %d\n", n.Price)
	fmt.Fprintf(&b, "Created:  %s\n", n.CreatedAt.Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(&b, "\nPayment proof:\n%s\n", utils.SanitizeText(n.PaymentProof, maxProofRunes))
	if s.baseURL != "" {
		fmt.Fprintf(&b, "\nReview pending requests: %s/api/admin/requests\n", s.baseURL)
	}
	return b.String()
}
