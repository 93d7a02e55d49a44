package usecase

import (
	"context"
	"log"

	"github.com/kmufreight/leads-api/internal/entity"
	"github.com/kmufreight/leads-api/internal/infra/queue"
	"github.com/kmufreight/leads-api/internal/token"
)

type SubmitLeadInput struct {
	Name     string `json:"name"`
	Company  string `json:"company"`
	Email    string `json:"email"`
	Interest string `json:"interest"`
	Purpose  string `json:"purpose"`
	Consent  bool   `json:"consent"`
	Message  string `json:"message,omitempty"`
}

type SubmitLeadOutput struct {
	Success     bool   `json:"success"`
	ID          string `json:"id"`
	DoubleOptIn bool   `json:"double_opt_in"`
}

type SubmitLeadUseCase struct {
	Repo       entity.LeadRepositoryInterface
	Dispatcher NotificationDispatcherInterface

	// TokenFn defaults to token.New, overridable in tests.
	TokenFn func() (string, error)
}

func NewSubmitLeadUseCase(repo entity.LeadRepositoryInterface, dispatcher NotificationDispatcherInterface) *SubmitLeadUseCase {
	return &SubmitLeadUseCase{
		Repo:       repo,
		Dispatcher: dispatcher,
		TokenFn:    token.New,
	}
}

func (uc *SubmitLeadUseCase) Execute(ctx context.Context, input SubmitLeadInput) (*SubmitLeadOutput, error) {
	validationErrors := ValidateSubmitLeadInput(input)
	if len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: errMsg,
		}
	}

	confirmToken, err := uc.TokenFn()
	if err != nil {
		return nil, &TechnicalError{
			Code:    "TOKEN_ERROR",
			Message: "failed to issue confirm token: " + err.Error(),
		}
	}

	lead := entity.NewLead(
		input.Name,
		input.Company,
		input.Email,
		input.Interest,
		input.Purpose,
		input.Message,
		input.Consent,
		confirmToken,
	)

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist lead: " + err.Error(),
		}
	}

	// Both notifications run after the response contract is satisfied. A
	// dead broker or SMTP outage must never reach the submitter.
	adminJob := queue.NotificationJob{Kind: queue.KindAdminAlert, Lead: *lead}
	optInJob := queue.NotificationJob{Kind: queue.KindOptIn, Token: confirmToken, Lead: *lead}

	if err := uc.Dispatcher.Dispatch(ctx, adminJob); err != nil {
		log.Printf("⚠️ Failed to dispatch admin notification for lead %s: %v", lead.ID, err)
	}
	if err := uc.Dispatcher.Dispatch(ctx, optInJob); err != nil {
		log.Printf("⚠️ Failed to dispatch opt-in notification for lead %s: %v", lead.ID, err)
	}

	return &SubmitLeadOutput{
		Success:     true,
		ID:          lead.ID,
		DoubleOptIn: true,
	}, nil
}
