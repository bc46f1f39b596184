package bootstrap

import (
	"context"
	"log"
	"time"

	"sea-catering-be/internal/config"
	"sea-catering-be/internal/controller"
	"sea-catering-be/internal/pkg/logger"
	"sea-catering-be/internal/pkg/mailer"
	"sea-catering-be/internal/repository/memory"
	"sea-catering-be/internal/repository/unitofwork"
	"sea-catering-be/internal/service"
	"sea-catering-be/pkg/admin/dashboard"

	pktNats "sea-catering-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const subscriptionCreatedTopic = "subscription.created"

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	PlanController         controller.IPlanController
	SubscriptionController controller.ISubscriptionController
	TestimonialController  controller.ITestimonialController
	AdminController        controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	var rdb *redis.Client
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb = redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v (metrics caching disabled)", err)
		rdb = nil
	}

	// In-memory refresh token store
	tokenRepo := memory.NewTokenRepository(time.Duration(cfg.Auth.RefreshTokenDays) * 24 * time.Hour)

	// 3. Services
	publisherService := service.NewPublisherService(subscriptionCreatedTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		subscriptionCreatedTopic,
		uowFactory,
		emailService,
	)

	authService := service.NewAuthService(
		uowFactory,
		tokenRepo,
		natsPub,
		time.Duration(cfg.Auth.AccessTokenMinutes)*time.Minute,
	)
	subscriptionService := service.NewSubscriptionService(uowFactory, natsPub, publisherService)
	testimonialService := service.NewTestimonialService(uowFactory)

	dashboardAggregator := dashboard.NewAggregator(sysLogger)
	adminService := service.NewAdminService(uowFactory, sysLogger, dashboardAggregator, rdb)

	// 4. Controllers
	return &Container{
		AuthController:         controller.NewAuthController(authService),
		PlanController:         controller.NewPlanController(),
		SubscriptionController: controller.NewSubscriptionController(subscriptionService),
		TestimonialController:  controller.NewTestimonialController(testimonialService),
		AdminController:        controller.NewAdminController(adminService),

		ConsumerService: consumerService,
	}
}
