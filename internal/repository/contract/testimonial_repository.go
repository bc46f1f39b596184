package contract

import (
	"context"

	"sea-catering-be/internal/entity"
	"sea-catering-be/internal/repository/specification"
)

type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *entity.Testimonial) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Testimonial, error)

	// FindAllWithAuthor returns the public feed joined with user names,
	// newest first.
	FindAllWithAuthor(ctx context.Context) ([]*entity.TestimonialWithAuthor, error)
}
