package dto

import (
	"time"

	"privstore/internal/domain/privilege"
	"privstore/internal/domain/user"
	"privstore/internal/shared/mapper"
)

// UserDTO is the public view of a user.
type UserDTO struct {
	ID          uint      `json:"id"`
	SteamID     string    `json:"steam_id"`
	SteamName   string    `json:"steam_name"`
	SteamAvatar string    `json:"steam_avatar"`
	IsAdmin     bool      `json:"is_admin"`
	CreatedAt   time.Time `json:"created_at"`
	LastLoginAt time.Time `json:"last_login"`
}

// PrivilegeDTO is an entitlement currently held by a user.
type PrivilegeDTO struct {
	Type             string     `json:"type"`
	Duration         string     `json:"duration"`
	Price            int        `json:"price"`
	ExpiresAt        *time.Time `json:"expires_at"`
	ActivatedAt      time.Time  `json:"activated_at"`
	PaymentConfirmed bool       `json:"payment_confirmed"`
}

type UserWithPrivilegesDTO struct {
	User       UserDTO        `json:"user"`
	Privileges []PrivilegeDTO `json:"privileges"`
}

// UserSummaryDTO is a row of the admin user listing.
type UserSummaryDTO struct {
	UserDTO
	PrivilegeCount int `json:"privilege_count"`
}

// LoginResultDTO is returned after a successful Steam login.
type LoginResultDTO struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserWithPrivilegesDTO
}

func ToUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:          u.ID(),
		SteamID:     u.SteamID().String(),
		SteamName:   u.DisplayName(),
		SteamAvatar: u.AvatarURL(),
		IsAdmin:     u.IsAdmin(),
		CreatedAt:   u.CreatedAt(),
		LastLoginAt: u.LastLoginAt(),
	}
}

func ToPrivilegeDTO(p *privilege.Privilege) PrivilegeDTO {
	return PrivilegeDTO{
		Type:             p.Tier().String(),
		Duration:         p.Duration().String(),
		Price:            p.Price(),
		ExpiresAt:        p.ExpiresAt(),
		ActivatedAt:      p.ActivatedAt(),
		PaymentConfirmed: p.PaymentConfirmed(),
	}
}

func ToUserWithPrivilegesDTO(u *user.User, privileges []*privilege.Privilege) *UserWithPrivilegesDTO {
	return &UserWithPrivilegesDTO{
		User:       ToUserDTO(u),
		Privileges: mapper.NonNil(mapper.MapSlice(privileges, ToPrivilegeDTO)),
	}
}

func ToUserSummaryDTO(s *user.Summary) UserSummaryDTO {
	return UserSummaryDTO{
		UserDTO:        ToUserDTO(s.User),
		PrivilegeCount: s.ActivePrivileges,
	}
}
