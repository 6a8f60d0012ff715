package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/catherinekimani/Hummingbirds/internal/auth/domain"
	autherror "github.com/catherinekimani/Hummingbirds/internal/errors"
)

// PointsService maintains the append-only points ledger. Transactions
// are immutable; a revocation is a new negative entry, never an edit.
type PointsService struct {
	points domain.PointsRepository
}

func NewPointsService(points domain.PointsRepository) *PointsService {
	return &PointsService{points: points}
}

func (s *PointsService) Award(ctx context.Context, userID string, points int, sourceType string, sourceID *string, reason string) (*domain.PointTransaction, error) {
	sourceType = strings.TrimSpace(sourceType)
	if sourceType == "" {
		return nil, fmt.Errorf("%w: source_type is required", autherror.ErrInvalidInput)
	}
	if points == 0 {
		return nil, fmt.Errorf("%w: points must be non-zero", autherror.ErrInvalidInput)
	}

	tx := &domain.PointTransaction{
		ID:         uuid.NewString(),
		UserID:     userID,
		Points:     points,
		SourceType: sourceType,
		SourceID:   sourceID,
		Reason:     reason,
		CreatedAt:  time.Now(),
	}
	if err := s.points.Insert(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *PointsService) Revoke(ctx context.Context, userID string, points int, sourceType string, sourceID *string, reason string) (*domain.PointTransaction, error) {
	if points < 0 {
		points = -points
	}
	if reason == "" {
		reason = "revoke"
	}

	return s.Award(ctx, userID, -points, sourceType, sourceID, reason)
}

func (s *PointsService) Balance(ctx context.Context, userID string) (int, error) {
	return s.points.SumByUserID(ctx, userID)
}

func (s *PointsService) Breakdown(ctx context.Context, userID string) ([]domain.SourceTotal, error) {
	return s.points.SumBySourceType(ctx, userID)
}
