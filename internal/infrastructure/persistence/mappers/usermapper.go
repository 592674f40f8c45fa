package mappers

import (
	"fmt"

	"privstore/internal/domain/user"
	"privstore/internal/infrastructure/persistence/models"
)

// UserMapper converts between the user aggregate and its persistence model
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
}

type userMapper struct{}

func NewUserMapper() UserMapper {
	return &userMapper{}
}

func (m *userMapper) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := user.ReconstructUser(
		model.ID,
		user.SteamID(model.SteamID),
		model.DisplayName,
		model.AvatarURL,
		model.IsAdmin,
		model.CreatedAt,
		model.LastLoginAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}
	return entity, nil
}

func (m *userMapper) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}
	return &models.UserModel{
		ID:          entity.ID(),
		SteamID:     entity.SteamID().String(),
		DisplayName: entity.DisplayName(),
		AvatarURL:   entity.AvatarURL(),
		IsAdmin:     entity.IsAdmin(),
		CreatedAt:   entity.CreatedAt(),
		LastLoginAt: entity.LastLoginAt(),
	}
}
