package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/catherinekimani/Hummingbirds/internal/auth/domain"
)

func (r *PostgresRepository) InvalidateAndCreate(ctx context.Context, otp *domain.OTPCode) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		// Consuming prior active challenges in the same transaction as
		// the insert keeps at most one challenge active per
		// (identity, purpose) at any instant.
		_, err := tx.Exec(ctx, `
			UPDATE otp_codes
			SET consumed_at = $3
			WHERE login_identity_id = $1 AND purpose = $2
				AND consumed_at IS NULL AND expires_at > $3
		`, otp.LoginIdentityID, otp.Purpose, otp.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to invalidate active otp codes: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO otp_codes (id, login_identity_id, code_hash, purpose, attempts,
				max_attempts, expires_at, consumed_at, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, otp.ID, otp.LoginIdentityID, otp.CodeHash, otp.Purpose, otp.Attempts,
			otp.MaxAttempts, otp.ExpiresAt, otp.ConsumedAt, otp.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert otp code: %w", err)
		}

		return nil
	})
}

func (r *PostgresRepository) GetActiveByIdentityID(ctx context.Context, identityID string, now time.Time) (*domain.OTPCode, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, login_identity_id, code_hash, purpose, attempts, max_attempts,
			expires_at, consumed_at, created_at
		FROM otp_codes
		WHERE login_identity_id = $1 AND consumed_at IS NULL AND expires_at > $2
		ORDER BY created_at DESC
		LIMIT 1
	`, identityID, now)

	var otp domain.OTPCode
	err := row.Scan(&otp.ID, &otp.LoginIdentityID, &otp.CodeHash, &otp.Purpose,
		&otp.Attempts, &otp.MaxAttempts, &otp.ExpiresAt, &otp.ConsumedAt, &otp.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active otp code: %w", err)
	}

	return &otp, nil
}

func (r *PostgresRepository) IncrementAttempts(ctx context.Context, id string) (int, bool, error) {
	// Single conditional statement so concurrent verification attempts
	// cannot under-count or push attempts past max_attempts.
	row := r.db.QueryRow(ctx, `
		UPDATE otp_codes
		SET attempts = attempts + 1
		WHERE id = $1 AND consumed_at IS NULL AND attempts < max_attempts
		RETURNING attempts
	`, id)

	var attempts int
	if err := row.Scan(&attempts); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to increment otp attempts: %w", err)
	}

	return attempts, true, nil
}

func (r *PostgresRepository) Consume(ctx context.Context, id string, at time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE otp_codes
		SET consumed_at = $2
		WHERE id = $1 AND consumed_at IS NULL
	`, id, at)
	if err != nil {
		return false, fmt.Errorf("failed to consume otp code: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}
