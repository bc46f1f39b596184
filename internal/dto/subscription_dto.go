package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubscribeRequest struct {
	FullName            string   `json:"full_name" validate:"required"`
	Phone               string   `json:"phone" validate:"required"`
	SelectedPlan        int      `json:"selected_plan" validate:"required,min=1"`
	MealTypes           []int    `json:"meal_types" validate:"required,min=1"`
	DeliveryDays        []int    `json:"delivery_days" validate:"required,min=1"`
	Allergies           []string `json:"allergies,omitempty"`
	DietaryRestrictions []int    `json:"dietary_restrictions,omitempty"`
}

type PauseSubscriptionRequest struct {
	PausedFrom string `json:"paused_from" validate:"required"`
	PausedTo   string `json:"paused_to" validate:"required"`
}

type SubscriptionResponse struct {
	Id                  uuid.UUID  `json:"id"`
	FullName            string     `json:"full_name"`
	Phone               string     `json:"phone"`
	Plan                int        `json:"plan"`
	MealTypes           []int      `json:"meal_types"`
	DeliveryDays        []int      `json:"delivery_days"`
	TotalPrice          int        `json:"total_price"`
	Allergies           []string   `json:"allergies,omitempty"`
	DietaryRestrictions []int      `json:"dietary_restrictions,omitempty"`
	PausedFrom          *time.Time `json:"paused_from"`
	PausedTo            *time.Time `json:"paused_to"`
	CreatedAt           time.Time  `json:"created_at"`
	DeletedAt           *time.Time `json:"deleted_at,omitempty"`
	IsPaused            bool       `json:"is_paused"`
	NextDeliveryDate    *time.Time `json:"next_delivery_date,omitempty"`
}

// TestimonialSummary is the per-subscription annotation on the history view.
type TestimonialSummary struct {
	Stars   int    `json:"stars"`
	Content string `json:"content"`
}

type HistoricalSubscriptionResponse struct {
	SubscriptionResponse
	Testimonial *TestimonialSummary `json:"testimonial"`
}
