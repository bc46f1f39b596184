package mapper

import (
	"sea-catering-be/internal/entity"
	"sea-catering-be/internal/model"
)

type TestimonialMapper struct{}

func NewTestimonialMapper() *TestimonialMapper {
	return &TestimonialMapper{}
}

func (m *TestimonialMapper) ToEntity(t *model.Testimonial) *entity.Testimonial {
	if t == nil {
		return nil
	}
	return &entity.Testimonial{
		Id:             t.Id,
		Content:        t.Content,
		Rating:         t.Rating,
		SubscriptionId: t.SubscriptionId,
		UserId:         t.UserId,
		CreatedAt:      t.CreatedAt,
	}
}

func (m *TestimonialMapper) ToModel(t *entity.Testimonial) *model.Testimonial {
	if t == nil {
		return nil
	}
	return &model.Testimonial{
		Id:             t.Id,
		Content:        t.Content,
		Rating:         t.Rating,
		SubscriptionId: t.SubscriptionId,
		UserId:         t.UserId,
		CreatedAt:      t.CreatedAt,
	}
}
