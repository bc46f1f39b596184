package mapper

import (
	"sea-catering-be/internal/entity"
	"sea-catering-be/internal/model"

	"gorm.io/datatypes"
)

type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func (m *SubscriptionMapper) ToEntity(s *model.Subscription) *entity.Subscription {
	if s == nil {
		return nil
	}
	return &entity.Subscription{
		Id:                  s.Id,
		UserId:              s.UserId,
		FullName:            s.FullName,
		Phone:               s.Phone,
		Plan:                s.Plan,
		MealTypes:           []int(s.MealTypes),
		DeliveryDays:        []int(s.DeliveryDays),
		TotalPrice:          s.TotalPrice,
		Allergies:           []string(s.Allergies),
		DietaryRestrictions: []int(s.DietaryRestrictions),
		PausedFrom:          s.PausedFrom,
		PausedTo:            s.PausedTo,
		CreatedAt:           s.CreatedAt,
		DeletedAt:           s.DeletedAt,
	}
}

func (m *SubscriptionMapper) ToModel(s *entity.Subscription) *model.Subscription {
	if s == nil {
		return nil
	}
	return &model.Subscription{
		Id:                  s.Id,
		UserId:              s.UserId,
		FullName:            s.FullName,
		Phone:               s.Phone,
		Plan:                s.Plan,
		MealTypes:           datatypes.JSONSlice[int](s.MealTypes),
		DeliveryDays:        datatypes.JSONSlice[int](s.DeliveryDays),
		TotalPrice:          s.TotalPrice,
		Allergies:           datatypes.JSONSlice[string](s.Allergies),
		DietaryRestrictions: datatypes.JSONSlice[int](s.DietaryRestrictions),
		PausedFrom:          s.PausedFrom,
		PausedTo:            s.PausedTo,
		CreatedAt:           s.CreatedAt,
		DeletedAt:           s.DeletedAt,
	}
}
