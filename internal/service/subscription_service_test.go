package service

import (
	"testing"
	"time"

	"sea-catering-be/internal/entity"

	"github.com/google/uuid"
)

func TestPhonePattern(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"08123456789", true},
		{"0812345678901234", false}, // 16 digits
		{"081234567", false},        // 9 digits
		{"+628123456789", false},    // plus sign not allowed
		{"0812-3456-789", false},
		{"", false},
		{"628123456789012", true}, // 15 digits
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			if got := phonePattern.MatchString(tt.phone); got != tt.want {
				t.Errorf("phonePattern.MatchString(%q) = %v, want %v", tt.phone, got, tt.want)
			}
		})
	}
}

func TestValidateDayIndices(t *testing.T) {
	tests := []struct {
		name string
		days []int
		want bool
	}{
		{name: "valid week", days: []int{0, 1, 2, 3, 4, 5, 6}, want: true},
		{name: "single day", days: []int{3}, want: true},
		{name: "negative index", days: []int{-1}, want: false},
		{name: "out of range", days: []int{7}, want: false},
		{name: "mixed", days: []int{1, 8}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validateDayIndices(tt.days); got != tt.want {
				t.Errorf("validateDayIndices(%v) = %v, want %v", tt.days, got, tt.want)
			}
		})
	}
}

func TestParsePauseDate(t *testing.T) {
	t.Run("plain date", func(t *testing.T) {
		got, err := parsePauseDate("2025-07-01")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("parsePauseDate = %v, want %v", got, want)
		}
	})

	t.Run("rfc3339 timestamp", func(t *testing.T) {
		got, err := parsePauseDate("2025-07-01T08:00:00Z")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Hour() != 8 {
			t.Errorf("parsePauseDate hour = %d, want 8", got.Hour())
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := parsePauseDate("next tuesday"); err == nil {
			t.Error("expected error for invalid date")
		}
	})
}

func TestToSubscriptionResponse(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) // Sunday
	from := now.AddDate(0, 0, -1)
	to := now.AddDate(0, 0, 1)

	sub := &entity.Subscription{
		Id:           uuid.New(),
		UserId:       uuid.New(),
		FullName:     "Budi Santoso",
		Phone:        "08123456789",
		Plan:         2,
		MealTypes:    []int{1, 2},
		DeliveryDays: []int{1, 3},
		TotalPrice:   1032000,
		PausedFrom:   &from,
		PausedTo:     &to,
		CreatedAt:    now.AddDate(0, -1, 0),
	}

	res := toSubscriptionResponse(sub, now)

	if !res.IsPaused {
		t.Error("expected IsPaused = true inside the window")
	}
	if res.NextDeliveryDate == nil {
		t.Fatal("expected a next delivery date")
	}
	// Monday follows Sunday regardless of pause state
	wantNext := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	if !res.NextDeliveryDate.Equal(wantNext) {
		t.Errorf("NextDeliveryDate = %v, want %v", res.NextDeliveryDate, wantNext)
	}
	if res.TotalPrice != 1032000 {
		t.Errorf("TotalPrice = %d, want 1032000", res.TotalPrice)
	}
}
