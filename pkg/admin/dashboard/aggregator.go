package dashboard

import (
	"context"
	"time"

	"sea-catering-be/internal/dto"
	"sea-catering-be/internal/pkg/logger"
	"sea-catering-be/internal/repository/unitofwork"
)

// Aggregator computes admin dashboard statistics straight from the database.
type Aggregator struct {
	logger logger.ILogger
}

// NewAggregator creates a new dashboard aggregator
func NewAggregator(logger logger.ILogger) *Aggregator {
	return &Aggregator{
		logger: logger,
	}
}

// GetMetrics computes the subscription metrics for the [from, to] range.
// Active subscriptions are counted as of now, independent of the range.
func (a *Aggregator) GetMetrics(ctx context.Context, uow unitofwork.UnitOfWork, from, to time.Time) (*dto.AdminMetrics, error) {
	repo := uow.SubscriptionRepository()

	newSubs, err := repo.CountCreatedBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	revenue, err := repo.SumRevenueBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	reactivations, err := repo.CountReactivationsBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	active, err := repo.CountActive(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	return &dto.AdminMetrics{
		NewSubscriptions:    newSubs,
		MonthlyRevenue:      revenue,
		Reactivations:       reactivations,
		ActiveSubscriptions: active,
	}, nil
}

// GetSubscriptionGrowth retrieves per-month signup counts over the trailing
// twelve months.
func (a *Aggregator) GetSubscriptionGrowth(ctx context.Context, uow unitofwork.UnitOfWork) ([]dto.SubscriptionGrowthPoint, error) {
	now := time.Now()
	to := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
	from := to.AddDate(-1, 0, 0)

	points, err := uow.SubscriptionRepository().GetMonthlyGrowth(ctx, from, to)
	if err != nil {
		return nil, err
	}

	res := make([]dto.SubscriptionGrowthPoint, 0, len(points))
	for _, p := range points {
		res = append(res, dto.SubscriptionGrowthPoint{
			Month: p.Month,
			Count: p.Count,
		})
	}
	return res, nil
}
