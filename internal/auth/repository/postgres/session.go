package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/catherinekimani/Hummingbirds/internal/auth/domain"
)

func (r *PostgresRepository) Store(ctx context.Context, rt *domain.RefreshToken) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, revoked_at,
			user_agent, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, rt.ID, rt.UserID, rt.TokenHash, rt.ExpiresAt, rt.RevokedAt,
		rt.UserAgent, rt.IPAddress, rt.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetActiveByHash(ctx context.Context, tokenHash, userID string, now time.Time) (*domain.RefreshToken, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, token_hash, expires_at, revoked_at, user_agent, ip_address, created_at
		FROM refresh_tokens
		WHERE token_hash = $1 AND user_id = $2 AND revoked_at IS NULL AND expires_at > $3
		LIMIT 1
	`, tokenHash, userID, now)

	var rt domain.RefreshToken
	err := row.Scan(&rt.ID, &rt.UserID, &rt.TokenHash, &rt.ExpiresAt, &rt.RevokedAt,
		&rt.UserAgent, &rt.IPAddress, &rt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return &rt, nil
}

func (r *PostgresRepository) Rotate(ctx context.Context, oldID string, replacement *domain.RefreshToken, at time.Time) (bool, error) {
	rotated := false
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		// Conditional revoke: if a concurrent logout-all got here first,
		// the rotation loses and no replacement is created.
		tag, err := tx.Exec(ctx, `
			UPDATE refresh_tokens
			SET revoked_at = $2
			WHERE id = $1 AND revoked_at IS NULL
		`, oldID, at)
		if err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}
		if tag.RowsAffected() != 1 {
			return nil
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, revoked_at,
				user_agent, ip_address, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, replacement.ID, replacement.UserID, replacement.TokenHash, replacement.ExpiresAt,
			replacement.RevokedAt, replacement.UserAgent, replacement.IPAddress, replacement.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to store rotated refresh token: %w", err)
		}

		rotated = true

		return nil
	})

	return rotated, err
}

func (r *PostgresRepository) RevokeByHash(ctx context.Context, tokenHash, userID string, at time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE refresh_tokens
		SET revoked_at = $3
		WHERE token_hash = $1 AND user_id = $2 AND revoked_at IS NULL
	`, tokenHash, userID, at)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

func (r *PostgresRepository) RevokeAllByUserID(ctx context.Context, userID string, at time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE refresh_tokens
		SET revoked_at = $2
		WHERE user_id = $1 AND revoked_at IS NULL
	`, userID, at)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}

	return nil
}
