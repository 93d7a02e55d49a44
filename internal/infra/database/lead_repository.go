package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kmufreight/leads-api/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (
			id, name, company, email, interest, purpose, consent, message,
			status, confirm_token, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10, $11, $12)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		lead.Company,
		lead.Email,
		lead.Interest,
		lead.Purpose,
		lead.Consent,
		lead.Message,
		lead.Status,
		lead.ConfirmToken,
		lead.CreatedAt,
		lead.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}

	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `
		SELECT
			id, name, company, email, interest, purpose, consent,
			COALESCE(message, ''),
			status,
			COALESCE(confirm_token, ''),
			confirmed_at,
			created_at,
			updated_at
		FROM leads
		WHERE id = $1
	`

	var lead entity.Lead

	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&lead.ID,
		&lead.Name,
		&lead.Company,
		&lead.Email,
		&lead.Interest,
		&lead.Purpose,
		&lead.Consent,
		&lead.Message,
		&lead.Status,
		&lead.ConfirmToken,
		&lead.ConfirmedAt,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load lead: %w", err)
	}

	return &lead, nil
}

// Confirm is the compare-and-set behind the double opt-in transition. The
// WHERE clause only matches a pending lead still holding the token, so under
// concurrent calls with the same token exactly one UPDATE applies; the rest
// see zero rows. The database serializes this, not the process, so multiple
// API instances stay safe.
func (r *LeadRepository) Confirm(ctx context.Context, token string) (*entity.Lead, error) {
	query := `
		UPDATE leads
		SET
			status = $1,
			confirmed_at = NOW(),
			confirm_token = NULL,
			updated_at = NOW()
		WHERE confirm_token = $2 AND status = $3
		RETURNING
			id, name, company, email, interest, purpose, consent,
			COALESCE(message, ''), status, confirmed_at, created_at, updated_at
	`

	var lead entity.Lead

	err := r.DB.QueryRowContext(ctx, query, entity.StatusConfirmed, token, entity.StatusPending).Scan(
		&lead.ID,
		&lead.Name,
		&lead.Company,
		&lead.Email,
		&lead.Interest,
		&lead.Purpose,
		&lead.Consent,
		&lead.Message,
		&lead.Status,
		&lead.ConfirmedAt,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		// Unknown, malformed or already consumed token. Not a store failure.
		return nil, entity.ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to confirm lead: %w", err)
	}

	return &lead, nil
}
