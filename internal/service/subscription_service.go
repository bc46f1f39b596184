package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"sea-catering-be/internal/constant"
	"sea-catering-be/internal/dto"
	"sea-catering-be/internal/entity"
	"sea-catering-be/internal/repository/specification"
	"sea-catering-be/internal/repository/unitofwork"

	"sea-catering-be/pkg/events"
	pktNats "sea-catering-be/pkg/nats"

	"github.com/google/uuid"
)

type ISubscriptionService interface {
	Subscribe(ctx context.Context, userId uuid.UUID, req *dto.SubscribeRequest) (*dto.SubscriptionResponse, error)
	GetCurrent(ctx context.Context, userId uuid.UUID) (*dto.SubscriptionResponse, error)
	GetHistorical(ctx context.Context, userId uuid.UUID) ([]dto.HistoricalSubscriptionResponse, error)
	Pause(ctx context.Context, userId, subscriptionId uuid.UUID, req *dto.PauseSubscriptionRequest) (*dto.SubscriptionResponse, error)
	Resume(ctx context.Context, userId, subscriptionId uuid.UUID) (*dto.SubscriptionResponse, error)
	Cancel(ctx context.Context, userId, subscriptionId uuid.UUID) error
}

type subscriptionService struct {
	uowFactory       unitofwork.RepositoryFactory
	eventPublisher   *pktNats.Publisher
	createdPublisher IPublisherService
}

func NewSubscriptionService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	createdPublisher IPublisherService,
) ISubscriptionService {
	return &subscriptionService{
		uowFactory:       uowFactory,
		eventPublisher:   eventPublisher,
		createdPublisher: createdPublisher,
	}
}

var phonePattern = regexp.MustCompile(`^\d{10,15}$`)

func validateDayIndices(days []int) bool {
	for _, d := range days {
		if d < 0 || d > 6 {
			return false
		}
	}
	return true
}

// parsePauseDate accepts a plain date or a full RFC3339 timestamp.
func parsePauseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func toSubscriptionResponse(sub *entity.Subscription, now time.Time) *dto.SubscriptionResponse {
	res := &dto.SubscriptionResponse{
		Id:                  sub.Id,
		FullName:            sub.FullName,
		Phone:               sub.Phone,
		Plan:                sub.Plan,
		MealTypes:           sub.MealTypes,
		DeliveryDays:        sub.DeliveryDays,
		TotalPrice:          sub.TotalPrice,
		Allergies:           sub.Allergies,
		DietaryRestrictions: sub.DietaryRestrictions,
		PausedFrom:          sub.PausedFrom,
		PausedTo:            sub.PausedTo,
		CreatedAt:           sub.CreatedAt,
		DeletedAt:           sub.DeletedAt,
		IsPaused:            sub.IsPaused(now),
	}
	if next, ok := sub.NextDeliveryDate(now); ok {
		res.NextDeliveryDate = &next
	}
	return res
}

func (s *subscriptionService) publishEvent(event events.Event) {
	if s.eventPublisher == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.eventPublisher.Publish(ctx, event)
	}()
}

func (s *subscriptionService) Subscribe(ctx context.Context, userId uuid.UUID, req *dto.SubscribeRequest) (*dto.SubscriptionResponse, error) {
	if !phonePattern.MatchString(req.Phone) {
		return nil, errors.New("phone number must be 10 to 15 digits")
	}

	plan := constant.FindPricingPlan(req.SelectedPlan)
	if plan == nil {
		return nil, errors.New("invalid meal plan selected")
	}

	if !validateDayIndices(req.DeliveryDays) {
		return nil, errors.New("delivery days must be between 0 (Sunday) and 6 (Saturday)")
	}

	totalPrice := constant.CalculateTotalPrice(plan.Price, len(req.MealTypes), len(req.DeliveryDays))

	sub := &entity.Subscription{
		Id:                  uuid.New(),
		FullName:            req.FullName,
		Phone:               req.Phone,
		Plan:                req.SelectedPlan,
		MealTypes:           req.MealTypes,
		DeliveryDays:        req.DeliveryDays,
		TotalPrice:          totalPrice,
		UserId:              userId,
		Allergies:           req.Allergies,
		DietaryRestrictions: req.DietaryRestrictions,
		CreatedAt:           time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SubscriptionRepository().Create(ctx, sub); err != nil {
		return nil, errors.New("failed to create subscription")
	}

	s.publishEvent(events.NewSubscriptionCreated(sub.Id.String(), userId.String(), sub.Plan, sub.TotalPrice))
	if s.createdPublisher != nil {
		_ = s.createdPublisher.PublishSubscriptionCreated(sub)
	}

	return toSubscriptionResponse(sub, time.Now()), nil
}

func (s *subscriptionService) GetCurrent(ctx context.Context, userId uuid.UUID) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := uow.SubscriptionRepository().FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.NotDeleted{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, nil
	}

	return toSubscriptionResponse(sub, time.Now()), nil
}

func (s *subscriptionService) GetHistorical(ctx context.Context, userId uuid.UUID) ([]dto.HistoricalSubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subs, err := uow.SubscriptionRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(subs))
	for _, sub := range subs {
		ids = append(ids, sub.Id)
	}

	// Annotate each subscription with the caller's most recent testimonial,
	// if any. Reviews written by other users are not surfaced here.
	testimonialsBySub := make(map[uuid.UUID]*entity.Testimonial)
	if len(ids) > 0 {
		testimonials, err := uow.TestimonialRepository().FindAll(ctx,
			specification.BySubscriptionIDs{IDs: ids},
			specification.OwnedBy{UserID: userId},
			specification.OrderBy{Field: "created_at", Desc: true},
		)
		if err != nil {
			return nil, err
		}
		for _, t := range testimonials {
			if _, exists := testimonialsBySub[t.SubscriptionId]; !exists {
				testimonialsBySub[t.SubscriptionId] = t
			}
		}
	}

	now := time.Now()
	result := make([]dto.HistoricalSubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		item := dto.HistoricalSubscriptionResponse{
			SubscriptionResponse: *toSubscriptionResponse(sub, now),
		}
		if t, exists := testimonialsBySub[sub.Id]; exists {
			item.Testimonial = &dto.TestimonialSummary{
				Stars:   t.Rating,
				Content: t.Content,
			}
		}
		result = append(result, item)
	}

	return result, nil
}

func (s *subscriptionService) Pause(ctx context.Context, userId, subscriptionId uuid.UUID, req *dto.PauseSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	pausedFrom, err := parsePauseDate(req.PausedFrom)
	if err != nil {
		return nil, errors.New("paused_from must be a valid date")
	}
	pausedTo, err := parsePauseDate(req.PausedTo)
	if err != nil {
		return nil, errors.New("paused_to must be a valid date")
	}
	if pausedTo.Before(pausedFrom) {
		return nil, errors.New("paused_to must not be before paused_from")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := uow.SubscriptionRepository().SetPauseWindow(ctx, subscriptionId, userId, pausedFrom, pausedTo)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, errors.New("subscription not found")
	}

	s.publishEvent(events.NewSubscriptionPaused(sub.Id.String(), userId.String(), pausedFrom, pausedTo))

	return toSubscriptionResponse(sub, time.Now()), nil
}

func (s *subscriptionService) Resume(ctx context.Context, userId, subscriptionId uuid.UUID) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := uow.SubscriptionRepository().ClearPauseWindow(ctx, subscriptionId, userId)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, errors.New("subscription not found")
	}

	s.publishEvent(events.NewSubscriptionResumed(sub.Id.String(), userId.String()))

	return toSubscriptionResponse(sub, time.Now()), nil
}

func (s *subscriptionService) Cancel(ctx context.Context, userId, subscriptionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	affected, err := uow.SubscriptionRepository().SoftDelete(ctx, subscriptionId, userId, time.Now())
	if err != nil {
		return err
	}
	if affected == 0 {
		// Unknown id and someone else's subscription look the same to the caller.
		return errors.New("subscription not found")
	}

	s.publishEvent(events.NewSubscriptionCancelled(subscriptionId.String(), userId.String()))
	return nil
}
