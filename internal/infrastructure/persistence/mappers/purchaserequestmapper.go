package mappers

import (
	"fmt"

	"privstore/internal/domain/pricing"
	"privstore/internal/domain/purchase"
	"privstore/internal/infrastructure/persistence/models"
	"privstore/internal/shared/mapper"
)

// PurchaseRequestMapper converts between purchase requests and their persistence model
type PurchaseRequestMapper interface {
	ToEntity(model *models.PurchaseRequestModel) (*purchase.Request, error)
	ToEntities(models []models.PurchaseRequestModel) ([]*purchase.Request, error)
	ToModel(entity *purchase.Request) *models.PurchaseRequestModel
}

type purchaseRequestMapper struct {
	users UserMapper
}

func NewPurchaseRequestMapper(users UserMapper) PurchaseRequestMapper {
	return &purchaseRequestMapper{users: users}
}

// ToEntity also attaches the requester when the model was loaded with its user.
func (m *purchaseRequestMapper) ToEntity(model *models.PurchaseRequestModel) (*purchase.Request, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := purchase.ReconstructRequest(
		model.ID,
		model.UserID,
		pricing.Tier(model.PrivilegeType),
		pricing.Duration(model.DurationType),
		model.Price,
		model.PaymentProof,
		purchase.Status(model.Status),
		model.CreatedAt,
		model.ProcessedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct purchase request %d: %w", model.ID, err)
	}

	if model.User != nil {
		requester, err := m.users.ToEntity(model.User)
		if err != nil {
			return nil, err
		}
		entity.AttachRequester(requester)
	}
	return entity, nil
}

func (m *purchaseRequestMapper) ToEntities(rows []models.PurchaseRequestModel) ([]*purchase.Request, error) {
	return mapper.MapSliceWithError(rows, func(row models.PurchaseRequestModel) (*purchase.Request, error) {
		return m.ToEntity(&row)
	})
}

func (m *purchaseRequestMapper) ToModel(entity *purchase.Request) *models.PurchaseRequestModel {
	if entity == nil {
		return nil
	}
	return &models.PurchaseRequestModel{
		ID:            entity.ID(),
		UserID:        entity.UserID(),
		PrivilegeType: entity.Tier().String(),
		DurationType:  entity.Duration().String(),
		Price:         entity.Price(),
		PaymentProof:  entity.PaymentProof(),
		Status:        entity.Status().String(),
		CreatedAt:     entity.CreatedAt(),
		ProcessedAt:   entity.ProcessedAt(),
	}
}
