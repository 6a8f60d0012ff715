package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/catherinekimani/Hummingbirds/internal/auth/domain"
	"github.com/catherinekimani/Hummingbirds/pkg/constant"
)

func (r *PostgresRepository) CreateDonation(ctx context.Context, d *domain.Donation) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO donations (id, user_id, phone_number, amount, reference, status,
			points_awarded, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, d.ID, d.UserID, d.PhoneNumber, d.Amount, d.Reference, d.Status,
		d.PointsAwarded, d.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create donation: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Settle(ctx context.Context, reference string, points int, reason string) (*domain.Donation, bool, error) {
	var donation *domain.Donation
	credited := false

	err := r.inTx(ctx, func(tx pgx.Tx) error {
		// The row lock serializes concurrent deliveries of the same
		// event; points_awarded is the at-most-once guard.
		row := tx.QueryRow(ctx, `
			SELECT id, user_id, phone_number, amount, reference, status, points_awarded, created_at
			FROM donations
			WHERE reference = $1
			FOR UPDATE
		`, reference)

		var d domain.Donation
		err := row.Scan(&d.ID, &d.UserID, &d.PhoneNumber, &d.Amount, &d.Reference,
			&d.Status, &d.PointsAwarded, &d.CreatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("failed to lock donation: %w", err)
		}

		donation = &d
		if d.PointsAwarded {
			return nil
		}

		now := time.Now()
		_, err = tx.Exec(ctx, `
			UPDATE donations
			SET status = $2, points_awarded = TRUE
			WHERE id = $1
		`, d.ID, constant.DonationStatusSuccess)
		if err != nil {
			return fmt.Errorf("failed to mark donation settled: %w", err)
		}

		if d.UserID != nil {
			_, err = tx.Exec(ctx, `
				INSERT INTO point_transactions (id, user_id, points, source_type, source_id, reason, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`, uuid.NewString(), *d.UserID, points, constant.SourceTypeDonation, d.ID, reason, now)
			if err != nil {
				return fmt.Errorf("failed to credit donation points: %w", err)
			}
		}

		d.Status = constant.DonationStatusSuccess
		d.PointsAwarded = true
		credited = true

		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return donation, credited, nil
}

func (r *PostgresRepository) MarkFailed(ctx context.Context, reference string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE donations
		SET status = $2
		WHERE reference = $1 AND status = $3
	`, reference, constant.DonationStatusFailed, constant.DonationStatusInitialized)
	if err != nil {
		return fmt.Errorf("failed to mark donation failed: %w", err)
	}

	return nil
}
