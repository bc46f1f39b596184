package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Subscription struct {
	Id                  uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName            string                      `gorm:"type:varchar(255);not null"`
	Phone               string                      `gorm:"type:varchar(20);not null"`
	Plan                int                         `gorm:"not null"`
	MealTypes           datatypes.JSONSlice[int]    `gorm:"type:jsonb;not null"`
	DeliveryDays        datatypes.JSONSlice[int]    `gorm:"type:jsonb;not null"`
	TotalPrice          int                         `gorm:"not null"`
	UserId              uuid.UUID                   `gorm:"type:uuid;not null;index"`
	PausedFrom          *time.Time
	PausedTo            *time.Time
	Allergies           datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	DietaryRestrictions datatypes.JSONSlice[int]    `gorm:"type:jsonb"`
	CreatedAt           time.Time                   `gorm:"autoCreateTime;index"`
	// Soft delete marker. Kept as a plain timestamp (not gorm.DeletedAt) so
	// history reads can include cancelled rows without Unscoped gymnastics.
	DeletedAt *time.Time `gorm:"index"`

	User *User `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
