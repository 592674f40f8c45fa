package mappers

import (
	"fmt"

	"privstore/internal/domain/pricing"
	"privstore/internal/domain/privilege"
	"privstore/internal/infrastructure/persistence/models"
)

// PrivilegeMapper converts between privileges and their persistence model
type PrivilegeMapper interface {
	ToEntity(model *models.PrivilegeModel) (*privilege.Privilege, error)
	ToModel(entity *privilege.Privilege) *models.PrivilegeModel
}

type privilegeMapper struct{}

func NewPrivilegeMapper() PrivilegeMapper {
	return &privilegeMapper{}
}

func (m *privilegeMapper) ToEntity(model *models.PrivilegeModel) (*privilege.Privilege, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := privilege.ReconstructPrivilege(
		model.ID,
		model.UserID,
		pricing.Tier(model.PrivilegeType),
		pricing.Duration(model.DurationType),
		model.Price,
		model.ExpiresAt,
		model.PaymentConfirmed,
		model.IsActive,
		model.ActivatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct privilege entity: %w", err)
	}
	return entity, nil
}

func (m *privilegeMapper) ToModel(entity *privilege.Privilege) *models.PrivilegeModel {
	if entity == nil {
		return nil
	}
	return &models.PrivilegeModel{
		ID:               entity.ID(),
		UserID:           entity.UserID(),
		PrivilegeType:    entity.Tier().String(),
		DurationType:     entity.Duration().String(),
		Price:            entity.Price(),
		ExpiresAt:        entity.ExpiresAt(),
		PaymentConfirmed: entity.PaymentConfirmed(),
		IsActive:         entity.IsActive(),
		ActivatedAt:      entity.ActivatedAt(),
	}
}
