package integration

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"sea-catering-be/internal/dto"
	"sea-catering-be/internal/pkg/logger"
	"sea-catering-be/internal/service"
	"sea-catering-be/pkg/admin/dashboard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminMetricsAggregates(t *testing.T) {
	uowFactory, subService, _, userId := setupSubscriptionTest(t)
	ctx := context.Background()

	// Two live subscriptions and one cancelled
	first, err := subService.Subscribe(ctx, userId, &dto.SubscribeRequest{
		FullName:     "Metrics Test User",
		Phone:        "08123456789",
		SelectedPlan: 1,
		MealTypes:    []int{1},
		DeliveryDays: []int{1},
	})
	require.NoError(t, err)

	_, err = subService.Subscribe(ctx, userId, &dto.SubscribeRequest{
		FullName:     "Metrics Test User",
		Phone:        "08123456789",
		SelectedPlan: 2,
		MealTypes:    []int{1, 2},
		DeliveryDays: []int{1, 3},
	})
	require.NoError(t, err)

	require.NoError(t, subService.Cancel(ctx, userId, first.Id))

	sysLogger := logger.NewZapLogger(filepath.Join(t.TempDir(), "test.log"), false)
	aggregator := dashboard.NewAggregator(sysLogger)
	adminService := service.NewAdminService(uowFactory, sysLogger, aggregator, nil)

	from := time.Now().Add(-time.Hour)
	to := time.Now().Add(time.Hour)

	metrics, err := adminService.GetMetrics(ctx, from, to)
	require.NoError(t, err)

	// Other test data may exist, so assert lower bounds only
	assert.GreaterOrEqual(t, metrics.NewSubscriptions, int64(2))
	assert.GreaterOrEqual(t, metrics.ActiveSubscriptions, int64(1))
	// 129000 + 1032000 from the two subscriptions above
	assert.GreaterOrEqual(t, metrics.MonthlyRevenue, int64(1161000))

	growth, err := adminService.GetSubscriptionGrowth(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, growth.SubscriptionGrowth)

	var thisMonth bool
	currentLabel := time.Now().Format("January 2006")
	for _, p := range growth.SubscriptionGrowth {
		if p.Month == currentLabel {
			thisMonth = true
			assert.GreaterOrEqual(t, p.Count, 2)
		}
	}
	assert.True(t, thisMonth, "current month should appear in growth series")
}
