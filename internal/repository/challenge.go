package repository

import (
	"context"
	"time"

	"github.com/rateshelf/backend/internal/entity"
	"github.com/rateshelf/backend/pkg/xcontext"
)

type ChallengeRepository interface {
	Create(ctx context.Context, challenge *entity.Challenge) error
	GetActive(ctx context.Context, now time.Time) ([]entity.Challenge, error)
}

type challengeRepository struct{}

func NewChallengeRepository() ChallengeRepository {
	return &challengeRepository{}
}

func (r *challengeRepository) Create(ctx context.Context, challenge *entity.Challenge) error {
	return xcontext.DB(ctx).Create(challenge).Error
}

func (r *challengeRepository) GetActive(ctx context.Context, now time.Time) ([]entity.Challenge, error) {
	var result []entity.Challenge
	err := xcontext.DB(ctx).
		Where("start_at <= ? AND end_at > ?", now, now).
		Order("end_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
