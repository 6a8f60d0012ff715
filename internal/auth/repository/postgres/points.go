package postgres

import (
	"context"
	"fmt"

	"github.com/catherinekimani/Hummingbirds/internal/auth/domain"
)

func (r *PostgresRepository) Insert(ctx context.Context, tx *domain.PointTransaction) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO point_transactions (id, user_id, points, source_type, source_id, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, tx.ID, tx.UserID, tx.Points, tx.SourceType, tx.SourceID, tx.Reason, tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert point transaction: %w", err)
	}

	return nil
}

func (r *PostgresRepository) SumByUserID(ctx context.Context, userID string) (int, error) {
	row := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(points), 0)
		FROM point_transactions
		WHERE user_id = $1
	`, userID)

	var total int
	if err := row.Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum points: %w", err)
	}

	return total, nil
}

func (r *PostgresRepository) SumBySourceType(ctx context.Context, userID string) ([]domain.SourceTotal, error) {
	rows, err := r.db.Query(ctx, `
		SELECT source_type, COALESCE(SUM(points), 0)
		FROM point_transactions
		WHERE user_id = $1
		GROUP BY source_type
		ORDER BY source_type
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum points by source: %w", err)
	}
	defer rows.Close()

	var totals []domain.SourceTotal
	for rows.Next() {
		var st domain.SourceTotal
		if err := rows.Scan(&st.SourceType, &st.Total); err != nil {
			return nil, fmt.Errorf("failed to scan source total: %w", err)
		}
		totals = append(totals, st)
	}

	return totals, rows.Err()
}
