package entity

import (
	"testing"
	"time"
)

func datePtr(t time.Time) *time.Time {
	return &t
}

func TestIsPaused(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	before := now.AddDate(0, 0, -3)
	after := now.AddDate(0, 0, 3)

	tests := []struct {
		name string
		from *time.Time
		to   *time.Time
		want bool
	}{
		{name: "no window", from: nil, to: nil, want: false},
		{name: "only from set", from: datePtr(before), to: nil, want: false},
		{name: "only to set", from: nil, to: datePtr(after), want: false},
		{name: "inside window", from: datePtr(before), to: datePtr(after), want: true},
		{name: "window in the past", from: datePtr(now.AddDate(0, 0, -10)), to: datePtr(before), want: false},
		{name: "window in the future", from: datePtr(after), to: datePtr(now.AddDate(0, 0, 10)), want: false},
		{name: "boundary start", from: datePtr(now), to: datePtr(after), want: true},
		{name: "boundary end", from: datePtr(before), to: datePtr(now), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := &Subscription{PausedFrom: tt.from, PausedTo: tt.to}
			if got := sub.IsPaused(now); got != tt.want {
				t.Errorf("IsPaused() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextDeliveryDate(t *testing.T) {
	// Sunday June 15, 2025
	sunday := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name         string
		now          time.Time
		deliveryDays []int
		wantOffset   int
		wantOk       bool
	}{
		{
			name:         "later this week",
			now:          sunday,
			deliveryDays: []int{1, 3}, // Monday, Wednesday
			wantOffset:   1,
			wantOk:       true,
		},
		{
			name:         "same weekday wraps to next week",
			now:          sunday,
			deliveryDays: []int{0}, // Sunday only, today's delivery already counted
			wantOffset:   7,
			wantOk:       true,
		},
		{
			name:         "past weekday wraps to next week",
			now:          sunday.AddDate(0, 0, 5), // Friday
			deliveryDays: []int{1},                // Monday
			wantOffset:   3,
			wantOk:       true,
		},
		{
			name:         "picks earliest among candidates",
			now:          sunday.AddDate(0, 0, 2), // Tuesday
			deliveryDays: []int{5, 4},             // Friday, Thursday
			wantOffset:   2,
			wantOk:       true,
		},
		{
			name:         "empty set",
			now:          sunday,
			deliveryDays: []int{},
			wantOk:       false,
		},
		{
			name:         "all indices out of range",
			now:          sunday,
			deliveryDays: []int{7, -1},
			wantOk:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := &Subscription{DeliveryDays: tt.deliveryDays}
			got, ok := sub.NextDeliveryDate(tt.now)
			if ok != tt.wantOk {
				t.Fatalf("NextDeliveryDate() ok = %v, want %v", ok, tt.wantOk)
			}
			if !ok {
				return
			}

			want := time.Date(tt.now.Year(), tt.now.Month(), tt.now.Day(), 0, 0, 0, 0, tt.now.Location()).
				AddDate(0, 0, tt.wantOffset)
			if !got.Equal(want) {
				t.Errorf("NextDeliveryDate() = %v, want %v", got, want)
			}
			if got.Hour() != 0 || got.Minute() != 0 {
				t.Errorf("NextDeliveryDate() should be midnight, got %v", got)
			}
		})
	}
}

func TestIsCancelled(t *testing.T) {
	sub := &Subscription{}
	if sub.IsCancelled() {
		t.Error("fresh subscription should not be cancelled")
	}

	now := time.Now()
	sub.DeletedAt = &now
	if !sub.IsCancelled() {
		t.Error("subscription with deleted_at should be cancelled")
	}
}
