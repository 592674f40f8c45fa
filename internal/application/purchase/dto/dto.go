package dto

import (
	"time"

	userdto "privstore/internal/application/user/dto"
	"privstore/internal/domain/privilege"
	"privstore/internal/domain/purchase"
)

// PurchaseRequestDTO is a request as shown to administrators.
type PurchaseRequestDTO struct {
	ID            uint             `json:"id"`
	PrivilegeType string           `json:"privilege_type"`
	DurationType  string           `json:"duration_type"`
	Price         int              `json:"price"`
	PaymentProof  string           `json:"payment_proof"`
	Status        string           `json:"status"`
	CreatedAt     time.Time        `json:"created_at"`
	ProcessedAt   *time.Time       `json:"processed_at,omitempty"`
	User          *userdto.UserDTO `json:"user,omitempty"`
}

type SubmitResultDTO struct {
	RequestID uint      `json:"request_id"`
	Price     int       `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// ApprovalResultDTO describes the privilege granted by an approval.
type ApprovalResultDTO struct {
	RequestID uint                 `json:"request_id"`
	UserID    uint                 `json:"user_id"`
	Privilege userdto.PrivilegeDTO `json:"privilege"`
}

func ToPurchaseRequestDTO(r *purchase.Request) PurchaseRequestDTO {
	out := PurchaseRequestDTO{
		ID:            r.ID(),
		PrivilegeType: r.Tier().String(),
		DurationType:  r.Duration().String(),
		Price:         r.Price(),
		PaymentProof:  r.PaymentProof(),
		Status:        r.Status().String(),
		CreatedAt:     r.CreatedAt(),
		ProcessedAt:   r.ProcessedAt(),
	}
	if requester := r.Requester(); requester != nil {
		u := userdto.ToUserDTO(requester)
		out.User = &u
	}
	return out
}

func ToApprovalResultDTO(requestID uint, p *privilege.Privilege) *ApprovalResultDTO {
	return &ApprovalResultDTO{
		RequestID: requestID,
		UserID:    p.UserID(),
		Privilege: userdto.ToPrivilegeDTO(p),
	}
}
