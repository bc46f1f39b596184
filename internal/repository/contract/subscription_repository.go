package contract

import (
	"context"
	"time"

	"sea-catering-be/internal/entity"
	"sea-catering-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *entity.Subscription) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// Lifecycle mutations. Each is a single conditional UPDATE scoped to
	// id + owner with RETURNING, so ownership check and write cannot race.
	// A nil result with nil error means no row matched.
	SetPauseWindow(ctx context.Context, id, userId uuid.UUID, from, to time.Time) (*entity.Subscription, error)
	ClearPauseWindow(ctx context.Context, id, userId uuid.UUID) (*entity.Subscription, error)
	SoftDelete(ctx context.Context, id, userId uuid.UUID, at time.Time) (int64, error)

	// Dashboard aggregates
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	SumRevenueBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountReactivationsBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountActive(ctx context.Context, now time.Time) (int64, error)
	GetMonthlyGrowth(ctx context.Context, from, to time.Time) ([]*entity.SubscriptionGrowthPoint, error)
}
