package entity

import (
	"time"

	"github.com/google/uuid"
)

type Testimonial struct {
	Id             uuid.UUID
	Content        string
	Rating         int
	SubscriptionId uuid.UUID
	UserId         uuid.UUID
	CreatedAt      time.Time
}

// TestimonialWithAuthor is the public feed view joined with the author name.
type TestimonialWithAuthor struct {
	Id         uuid.UUID
	Content    string
	Rating     int
	UserId     uuid.UUID
	AuthorName string
	CreatedAt  time.Time
}
