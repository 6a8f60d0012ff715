package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/catherinekimani/Hummingbirds/internal/auth/domain"
	autherror "github.com/catherinekimani/Hummingbirds/internal/errors"
)

const uniqueViolationCode = "23505"

// DB is the subset of pgxpool.Pool the repositories use. pgxmock pools
// satisfy it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// inTx runs fn inside a transaction, rolling back on error.
func (r *PostgresRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) CreateUserWithIdentity(ctx context.Context, user *domain.User, identity *domain.LoginIdentity) error {
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO users (id, full_name, display_name, date_of_birth, can_self_manage,
				created_by_user_id, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, user.ID, user.FullName, user.DisplayName, user.DateOfBirth, user.CanSelfManage,
			user.CreatedByUserID, user.IsActive, user.CreatedAt, user.UpdatedAt)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO login_identities (id, user_id, type, value, is_primary, is_verified, verified_at, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, identity.ID, identity.UserID, identity.Type, identity.Value,
			identity.IsPrimary, identity.IsVerified, identity.VerifiedAt, identity.CreatedAt)

		return err
	})
	if err != nil {
		// The unique (type, value) index arbitrates concurrent
		// registrations of the same identity.
		if isUniqueViolation(err) {
			return autherror.ErrIdentityInUse
		}
		return fmt.Errorf("failed to create user with identity: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, full_name, display_name, date_of_birth, can_self_manage, created_by_user_id,
			first_login_at, last_login_at, is_active, created_at, updated_at
		FROM users
		WHERE id = $1
		LIMIT 1
	`, id)

	var user domain.User
	err := row.Scan(&user.ID, &user.FullName, &user.DisplayName, &user.DateOfBirth,
		&user.CanSelfManage, &user.CreatedByUserID, &user.FirstLoginAt, &user.LastLoginAt,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &user, nil
}

func (r *PostgresRepository) GetIdentityByValue(ctx context.Context, identityType, value string) (*domain.LoginIdentity, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, type, value, is_primary, is_verified, verified_at, created_at
		FROM login_identities
		WHERE type = $1 AND value = $2
		LIMIT 1
	`, identityType, value)

	return scanIdentity(row)
}

func (r *PostgresRepository) GetIdentityByID(ctx context.Context, id string) (*domain.LoginIdentity, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, type, value, is_primary, is_verified, verified_at, created_at
		FROM login_identities
		WHERE id = $1
		LIMIT 1
	`, id)

	return scanIdentity(row)
}

func (r *PostgresRepository) ListIdentitiesByUserID(ctx context.Context, userID string) ([]domain.LoginIdentity, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, type, value, is_primary, is_verified, verified_at, created_at
		FROM login_identities
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list identities: %w", err)
	}
	defer rows.Close()

	var identities []domain.LoginIdentity
	for rows.Next() {
		var identity domain.LoginIdentity
		err := rows.Scan(&identity.ID, &identity.UserID, &identity.Type, &identity.Value,
			&identity.IsPrimary, &identity.IsVerified, &identity.VerifiedAt, &identity.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan identity: %w", err)
		}
		identities = append(identities, identity)
	}

	return identities, rows.Err()
}

func (r *PostgresRepository) MarkIdentityVerified(ctx context.Context, identityID string, at time.Time) error {
	// Verification flips once and is never reversed.
	_, err := r.db.Exec(ctx, `
		UPDATE login_identities
		SET is_verified = TRUE, verified_at = $2
		WHERE id = $1 AND is_verified = FALSE
	`, identityID, at)

	return err
}

func (r *PostgresRepository) RecordLogin(ctx context.Context, userID string, at time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET first_login_at = COALESCE(first_login_at, $2), last_login_at = $2, updated_at = $2
		WHERE id = $1
	`, userID, at)

	return err
}

func scanIdentity(row pgx.Row) (*domain.LoginIdentity, error) {
	var identity domain.LoginIdentity
	err := row.Scan(&identity.ID, &identity.UserID, &identity.Type, &identity.Value,
		&identity.IsPrimary, &identity.IsVerified, &identity.VerifiedAt, &identity.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get login identity: %w", err)
	}

	return &identity, nil
}
