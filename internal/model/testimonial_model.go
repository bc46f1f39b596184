package model

import (
	"time"

	"github.com/google/uuid"
)

type Testimonial struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Content        string    `gorm:"type:text;not null"`
	Rating         int       `gorm:"not null"`
	SubscriptionId uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId         uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index"`

	Subscription *Subscription `gorm:"foreignKey:SubscriptionId;constraint:OnDelete:CASCADE"`
	User         *User         `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}
