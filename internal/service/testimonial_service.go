package service

import (
	"context"
	"errors"
	"time"

	"sea-catering-be/internal/dto"
	"sea-catering-be/internal/entity"
	"sea-catering-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITestimonialService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTestimonialRequest) (*dto.TestimonialResponse, error)
	GetAll(ctx context.Context) ([]dto.TestimonialResponse, error)
}

type testimonialService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTestimonialService(uowFactory unitofwork.RepositoryFactory) ITestimonialService {
	return &testimonialService{
		uowFactory: uowFactory,
	}
}

func (s *testimonialService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTestimonialRequest) (*dto.TestimonialResponse, error) {
	subscriptionId, err := uuid.Parse(req.SubscriptionId)
	if err != nil {
		return nil, errors.New("invalid subscription id")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Any existing subscription qualifies, including cancelled ones.
	exists, err := uow.SubscriptionRepository().Exists(ctx, subscriptionId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.New("subscription not found")
	}

	testimonial := &entity.Testimonial{
		Id:             uuid.New(),
		Content:        req.Content,
		Rating:         req.Stars,
		SubscriptionId: subscriptionId,
		UserId:         userId,
		CreatedAt:      time.Now(),
	}

	if err := uow.TestimonialRepository().Create(ctx, testimonial); err != nil {
		return nil, errors.New("failed to create testimonial")
	}

	return &dto.TestimonialResponse{
		Id:        testimonial.Id,
		Content:   testimonial.Content,
		Rating:    testimonial.Rating,
		CreatedAt: testimonial.CreatedAt,
	}, nil
}

func (s *testimonialService) GetAll(ctx context.Context) ([]dto.TestimonialResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	testimonials, err := uow.TestimonialRepository().FindAllWithAuthor(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]dto.TestimonialResponse, 0, len(testimonials))
	for _, t := range testimonials {
		res = append(res, dto.TestimonialResponse{
			Id:         t.Id,
			Content:    t.Content,
			Rating:     t.Rating,
			AuthorName: t.AuthorName,
			CreatedAt:  t.CreatedAt,
		})
	}
	return res, nil
}
