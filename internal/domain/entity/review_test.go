package entity_test

import (
	"testing"

	"gamepulse/internal/domain/entity"
)

func TestReviewStars(t *testing.T) {
	cases := []struct {
		rating int
		want   float64
	}{
		{0, 0},
		{95, 5},   // 4.75 rounds up to the next half star
		{90, 4.5},
		{87, 4.5}, // 4.35 rounds to the nearest half star
		{78, 4},   // 3.9 rounds up
		{100, 5},
		{50, 2.5},
		{10, 0.5},
	}
	for _, tc := range cases {
		got := entity.Review{Rating: tc.rating}.Stars()
		if got != tc.want {
			t.Errorf("Stars(rating=%d) = %v, want %v", tc.rating, got, tc.want)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@x.com", "reader+news@example.org"}
	for _, addr := range valid {
		if err := entity.ValidateEmail(addr); err != nil {
			t.Errorf("ValidateEmail(%q) = %v, want nil", addr, err)
		}
	}

	invalid := []string{"", "   ", "not-an-email", "Name <a@x.com>", "a@"}
	for _, addr := range invalid {
		if err := entity.ValidateEmail(addr); err == nil {
			t.Errorf("ValidateEmail(%q) = nil, want error", addr)
		}
	}
}

func TestValidateRating(t *testing.T) {
	if err := entity.ValidateRating(100); err != nil {
		t.Fatalf("ValidateRating(100) = %v", err)
	}
	if err := entity.ValidateRating(101); err == nil {
		t.Fatal("ValidateRating(101) = nil, want error")
	}
	if err := entity.ValidateRating(-1); err == nil {
		t.Fatal("ValidateRating(-1) = nil, want error")
	}
}
