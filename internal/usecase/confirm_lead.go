package usecase

import (
	"context"
	"errors"

	"github.com/kmufreight/leads-api/internal/entity"
)

type ConfirmLeadOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ConfirmLeadUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewConfirmLeadUseCase(repo entity.LeadRepositoryInterface) *ConfirmLeadUseCase {
	return &ConfirmLeadUseCase{Repo: repo}
}

// Execute drives the pending → confirmed transition. An unknown or consumed
// token is a normal negative outcome; only a store failure is an error.
func (uc *ConfirmLeadUseCase) Execute(ctx context.Context, confirmToken string) (*ConfirmLeadOutput, error) {
	if confirmToken == "" {
		return nil, &DomainError{
			Code:    "TOKEN_REQUIRED",
			Message: "token is required",
		}
	}

	_, err := uc.Repo.Confirm(ctx, confirmToken)
	if errors.Is(err, entity.ErrTokenNotFound) {
		return &ConfirmLeadOutput{
			Success: false,
			Message: "Token ungültig oder bereits verwendet",
		}, nil
	}
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to confirm lead: " + err.Error(),
		}
	}

	return &ConfirmLeadOutput{
		Success: true,
		Message: "Anmeldung bestätigt",
	}, nil
}
