// Package common holds helpers shared by the application use cases.
package common

import (
	"errors"

	"privstore/internal/domain/pricing"
	"privstore/internal/domain/purchase"
	"privstore/internal/domain/user"
	apperrors "privstore/internal/shared/errors"
)

// MapError converts domain sentinels into AppErrors for the transport layer.
// Errors that are already AppErrors pass through; anything else is treated
// as a storage failure whose cause never reaches the caller.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, pricing.ErrInvalidTier):
		return apperrors.NewValidationError("invalid privilege tier", "allowed: Low, Nice, Escape").WithCause(err)
	case errors.Is(err, pricing.ErrInvalidDuration):
		return apperrors.NewValidationError("invalid duration", "allowed: 2weeks, 1month, forever").WithCause(err)
	case errors.Is(err, pricing.ErrInvalidPriceCombination):
		return apperrors.NewValidationError("invalid price combination").WithCause(err)
	case errors.Is(err, user.ErrInvalidSteamID):
		return apperrors.NewValidationError("invalid steam id").WithCause(err)
	case errors.Is(err, user.ErrUserNotFound):
		return apperrors.NewNotFoundError("user not found").WithCause(err)
	case errors.Is(err, purchase.ErrRequestNotFound):
		return apperrors.NewNotFoundError("request not found or already processed").WithCause(err)
	case apperrors.IsAppError(err):
		return err
	default:
		return apperrors.NewStorageError("storage failure", err)
	}
}
