package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTestimonialRequest struct {
	Content        string `json:"content" validate:"required,min=1,max=500"`
	Stars          int    `json:"stars" validate:"required,min=1,max=5"`
	SubscriptionId string `json:"subscription_id" validate:"required,uuid4"`
}

type TestimonialResponse struct {
	Id         uuid.UUID `json:"id"`
	Content    string    `json:"content"`
	Rating     int       `json:"rating"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}
