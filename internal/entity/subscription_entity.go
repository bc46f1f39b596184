package entity

import (
	"time"

	"github.com/google/uuid"
)

type Subscription struct {
	Id                  uuid.UUID
	UserId              uuid.UUID
	FullName            string
	Phone               string
	Plan                int
	MealTypes           []int
	DeliveryDays        []int
	TotalPrice          int
	Allergies           []string
	DietaryRestrictions []int
	PausedFrom          *time.Time
	PausedTo            *time.Time
	CreatedAt           time.Time
	DeletedAt           *time.Time
}

// IsPaused reports whether now falls inside the pause window. A window is
// only effective when both ends are set.
func (s *Subscription) IsPaused(now time.Time) bool {
	if s.PausedFrom == nil || s.PausedTo == nil {
		return false
	}
	return !now.Before(*s.PausedFrom) && !now.After(*s.PausedTo)
}

func (s *Subscription) IsCancelled() bool {
	return s.DeletedAt != nil
}

// NextDeliveryDate returns the date of the next delivery strictly after now.
// Delivery days are weekday indices (0 = Sunday). When no selected day
// remains in the current week, the earliest day of the following week wins,
// so the result is always defined for a non-empty day set.
func (s *Subscription) NextDeliveryDate(now time.Time) (time.Time, bool) {
	if len(s.DeliveryDays) == 0 {
		return time.Time{}, false
	}

	today := int(now.Weekday())
	best := -1
	earliest := -1
	for _, day := range s.DeliveryDays {
		if day < 0 || day > 6 {
			continue
		}
		if earliest == -1 || day < earliest {
			earliest = day
		}
		if day > today && (best == -1 || day < best) {
			best = day
		}
	}
	if earliest == -1 {
		return time.Time{}, false
	}

	var offset int
	if best != -1 {
		offset = best - today
	} else {
		offset = 7 - today + earliest
	}

	next := now.AddDate(0, 0, offset)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, next.Location()), true
}

// SubscriptionGrowthPoint is one month bucket of created subscriptions.
type SubscriptionGrowthPoint struct {
	Month string
	Count int
}
