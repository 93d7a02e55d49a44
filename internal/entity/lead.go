package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
)

var (
	// ErrTokenNotFound means no pending lead carries the given confirm token:
	// the token is unknown, malformed or already consumed.
	ErrTokenNotFound = errors.New("no pending lead for token")

	ErrLeadNotFound = errors.New("lead not found")
)

// Lead represents one prospective customer on the waitlist, from submission
// (pending, holding a single-use confirm token) until double opt-in (confirmed).
type Lead struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Company  string `json:"company"`
	Email    string `json:"email"`
	Interest string `json:"interest"`
	Purpose  string `json:"purpose"`
	Consent  bool   `json:"consent"`
	Message  string `json:"message,omitempty"`

	Status       string     `json:"status"` // pending, confirmed
	ConfirmToken string     `json:"-"`
	ConfirmedAt  *time.Time `json:"confirmed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Factory
func NewLead(name, company, email, interest, purpose, message string, consent bool, confirmToken string) *Lead {
	now := time.Now()
	return &Lead{
		ID:       uuid.New().String(),
		Name:     name,
		Company:  company,
		Email:    email,
		Interest: interest,
		Purpose:  purpose,
		Consent:  consent,
		Message:  message,

		Status:       StatusPending,
		ConfirmToken: confirmToken,

		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (l *Lead) IsConfirmed() bool {
	return l.Status == StatusConfirmed
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error

	FindByID(ctx context.Context, id string) (*Lead, error)

	// Confirm atomically flips the lead holding token from pending to
	// confirmed, stamps confirmed_at and clears the token. Returns
	// ErrTokenNotFound when no pending lead matches; any other error is a
	// store failure.
	Confirm(ctx context.Context, token string) (*Lead, error)
}
