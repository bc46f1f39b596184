package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"sea-catering-be/internal/dto"
	"sea-catering-be/internal/entity"
	"sea-catering-be/internal/repository/unitofwork"
	"sea-catering-be/internal/service"
	"sea-catering-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSubscriptionTest(t *testing.T) (unitofwork.RepositoryFactory, service.ISubscriptionService, service.ITestimonialService, uuid.UUID) {
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err, "Failed to connect to DB")

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	subService := service.NewSubscriptionService(uowFactory, nil, nil)
	testiService := service.NewTestimonialService(uowFactory)

	// Each run gets its own user so parallel CI runs don't collide
	userId := uuid.New()
	uow := uowFactory.NewUnitOfWork(context.Background())
	user := &entity.User{
		Id:        userId,
		Email:     "test-integration-" + uuid.New().String() + "@example.com",
		FullName:  "Integration Test User",
		Role:      entity.UserRoleUser,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, uow.UserRepository().Create(context.Background(), user))

	return uowFactory, subService, testiService, userId
}

func TestSubscriptionFlow(t *testing.T) {
	_, subService, testiService, userId := setupSubscriptionTest(t)
	ctx := context.Background()

	var subscriptionId uuid.UUID

	t.Run("Subscribe computes monthly price", func(t *testing.T) {
		res, err := subService.Subscribe(ctx, userId, &dto.SubscribeRequest{
			FullName:     "Integration Test User",
			Phone:        "08123456789",
			SelectedPlan: 2,
			MealTypes:    []int{1, 2},
			DeliveryDays: []int{1, 3, 5},
		})
		require.NoError(t, err)
		require.NotNil(t, res)

		// 40000 * 2 meals * 3 days * 4.3 weeks
		assert.Equal(t, 1032000, res.TotalPrice)
		assert.False(t, res.IsPaused)
		subscriptionId = res.Id
	})

	t.Run("Subscribe rejects unknown plan", func(t *testing.T) {
		_, err := subService.Subscribe(ctx, userId, &dto.SubscribeRequest{
			FullName:     "Integration Test User",
			Phone:        "08123456789",
			SelectedPlan: 99,
			MealTypes:    []int{1},
			DeliveryDays: []int{1},
		})
		require.Error(t, err)
		assert.Equal(t, "invalid meal plan selected", err.Error())
	})

	t.Run("Subscribe rejects bad phone", func(t *testing.T) {
		_, err := subService.Subscribe(ctx, userId, &dto.SubscribeRequest{
			FullName:     "Integration Test User",
			Phone:        "not-a-phone",
			SelectedPlan: 1,
			MealTypes:    []int{1},
			DeliveryDays: []int{1},
		})
		require.Error(t, err)
	})

	t.Run("Pause and resume roundtrip", func(t *testing.T) {
		from := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
		to := time.Now().AddDate(0, 0, 3).Format("2006-01-02")

		paused, err := subService.Pause(ctx, userId, subscriptionId, &dto.PauseSubscriptionRequest{
			PausedFrom: from,
			PausedTo:   to,
		})
		require.NoError(t, err)
		assert.True(t, paused.IsPaused)
		assert.NotNil(t, paused.PausedFrom)
		assert.NotNil(t, paused.PausedTo)

		resumed, err := subService.Resume(ctx, userId, subscriptionId)
		require.NoError(t, err)
		assert.False(t, resumed.IsPaused)
		assert.Nil(t, resumed.PausedFrom)
		assert.Nil(t, resumed.PausedTo)
	})

	t.Run("Pause rejects inverted window", func(t *testing.T) {
		_, err := subService.Pause(ctx, userId, subscriptionId, &dto.PauseSubscriptionRequest{
			PausedFrom: "2025-07-10",
			PausedTo:   "2025-07-01",
		})
		require.Error(t, err)
		assert.Equal(t, "paused_to must not be before paused_from", err.Error())
	})

	t.Run("Another user's pause reports not found", func(t *testing.T) {
		stranger := uuid.New()
		_, err := subService.Pause(ctx, stranger, subscriptionId, &dto.PauseSubscriptionRequest{
			PausedFrom: "2025-07-01",
			PausedTo:   "2025-07-10",
		})
		require.Error(t, err)
		assert.Equal(t, "subscription not found", err.Error())
	})

	t.Run("Testimonial references subscription", func(t *testing.T) {
		res, err := testiService.Create(ctx, userId, &dto.CreateTestimonialRequest{
			Content:        "Sangat puas dengan makanannya!",
			Stars:          5,
			SubscriptionId: subscriptionId.String(),
		})
		require.NoError(t, err)
		assert.Equal(t, 5, res.Rating)
	})

	t.Run("Testimonial rejects unknown subscription", func(t *testing.T) {
		_, err := testiService.Create(ctx, userId, &dto.CreateTestimonialRequest{
			Content:        "Ghost review",
			Stars:          1,
			SubscriptionId: uuid.New().String(),
		})
		require.Error(t, err)
		assert.Equal(t, "subscription not found", err.Error())
	})

	t.Run("History annotates testimonials", func(t *testing.T) {
		history, err := subService.GetHistorical(ctx, userId)
		require.NoError(t, err)
		require.NotEmpty(t, history)

		var found bool
		for _, item := range history {
			if item.Id == subscriptionId {
				found = true
				require.NotNil(t, item.Testimonial)
				assert.Equal(t, 5, item.Testimonial.Stars)
			}
		}
		assert.True(t, found, "subscribed plan should appear in history")
	})

	t.Run("Cancel is idempotent and hides current", func(t *testing.T) {
		require.NoError(t, subService.Cancel(ctx, userId, subscriptionId))
		// Second cancel still succeeds
		require.NoError(t, subService.Cancel(ctx, userId, subscriptionId))

		current, err := subService.GetCurrent(ctx, userId)
		require.NoError(t, err)
		assert.Nil(t, current, "cancelled subscription must not be current")

		// But it stays visible in history
		history, err := subService.GetHistorical(ctx, userId)
		require.NoError(t, err)
		var found bool
		for _, item := range history {
			if item.Id == subscriptionId {
				found = true
				assert.NotNil(t, item.DeletedAt)
			}
		}
		assert.True(t, found)
	})

	t.Run("Cancel by stranger reports not found", func(t *testing.T) {
		err := subService.Cancel(ctx, uuid.New(), subscriptionId)
		require.Error(t, err)
		assert.Equal(t, "subscription not found", err.Error())
	})
}

func TestCurrentPrefersLatest(t *testing.T) {
	_, subService, _, userId := setupSubscriptionTest(t)
	ctx := context.Background()

	first, err := subService.Subscribe(ctx, userId, &dto.SubscribeRequest{
		FullName:     "Integration Test User",
		Phone:        "08123456789",
		SelectedPlan: 1,
		MealTypes:    []int{1},
		DeliveryDays: []int{2},
	})
	require.NoError(t, err)

	// created_at has second precision in some setups
	time.Sleep(1100 * time.Millisecond)

	second, err := subService.Subscribe(ctx, userId, &dto.SubscribeRequest{
		FullName:     "Integration Test User",
		Phone:        "08123456789",
		SelectedPlan: 3,
		MealTypes:    []int{1, 2, 3},
		DeliveryDays: []int{1, 2, 3},
	})
	require.NoError(t, err)

	current, err := subService.GetCurrent(ctx, userId)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, second.Id, current.Id)
	assert.NotEqual(t, first.Id, current.Id)
}
