package implementation

import (
	"context"

	"sea-catering-be/internal/entity"
	"sea-catering-be/internal/mapper"
	"sea-catering-be/internal/model"
	"sea-catering-be/internal/repository/contract"
	"sea-catering-be/internal/repository/specification"

	"gorm.io/gorm"
)

type TestimonialRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TestimonialMapper
}

func NewTestimonialRepository(db *gorm.DB) contract.TestimonialRepository {
	return &TestimonialRepositoryImpl{
		db:     db,
		mapper: mapper.NewTestimonialMapper(),
	}
}

func (r *TestimonialRepositoryImpl) Create(ctx context.Context, testimonial *entity.Testimonial) error {
	m := r.mapper.ToModel(testimonial)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*testimonial = *r.mapper.ToEntity(m)
	return nil
}

func (r *TestimonialRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Testimonial, error) {
	var models []*model.Testimonial
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Testimonial, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *TestimonialRepositoryImpl) FindAllWithAuthor(ctx context.Context) ([]*entity.TestimonialWithAuthor, error) {
	var results []*entity.TestimonialWithAuthor
	err := r.db.WithContext(ctx).Table("testimonials").
		Select(`
			testimonials.id,
			testimonials.content,
			testimonials.rating,
			testimonials.user_id,
			users.full_name AS author_name,
			testimonials.created_at
		`).
		Joins("JOIN users ON testimonials.user_id = users.id").
		Order("testimonials.created_at DESC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
