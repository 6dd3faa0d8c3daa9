package stay

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewRange_OK(t *testing.T) {
	r, err := NewRange(date(2024, 1, 1), date(2024, 1, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.CheckIn.Equal(date(2024, 1, 1)) || !r.CheckOut.Equal(date(2024, 1, 3)) {
		t.Fatalf("unexpected range: %v", r)
	}
}

func TestNewRange_NormalizesTimeOfDay(t *testing.T) {
	r, err := NewRange(
		time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.CheckIn.Equal(date(2024, 1, 1)) {
		t.Fatalf("check-in not normalized: %v", r.CheckIn)
	}
	if r.Nights() != 2 {
		t.Fatalf("expected 2 nights, got %d", r.Nights())
	}
}

func TestNewRange_Invalid(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
	}{
		{"zero check-in", time.Time{}, date(2024, 1, 3)},
		{"zero check-out", date(2024, 1, 1), time.Time{}},
		{"equal dates", date(2024, 1, 1), date(2024, 1, 1)},
		{"check-out before check-in", date(2024, 1, 3), date(2024, 1, 1)},
		{"same day different hours", date(2024, 1, 1), time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewRange(tc.checkIn, tc.checkOut); !errors.Is(err, ErrInvalidRange) {
				t.Fatalf("expected ErrInvalidRange, got %v", err)
			}
		})
	}
}

func TestNights(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"one night", date(2024, 1, 1), date(2024, 1, 2), 1},
		{"two nights", date(2024, 1, 1), date(2024, 1, 3), 2},
		{"across month boundary", date(2024, 1, 30), date(2024, 2, 2), 3},
		{"across DST-free UTC year", date(2023, 12, 30), date(2024, 1, 2), 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := NewRange(tc.checkIn, tc.checkOut)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := r.Nights(); got != tc.want {
				t.Fatalf("expected %d nights, got %d", tc.want, got)
			}
		})
	}
}

func TestTotalPrice(t *testing.T) {
	// 100 за ночь, [2024-01-01, 2024-01-03) — две ночи.
	r, err := NewRange(date(2024, 1, 1), date(2024, 1, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.TotalPrice(100); got != 200 {
		t.Fatalf("expected total 200, got %v", got)
	}
	if got := r.TotalPrice(0); got != 0 {
		t.Fatalf("expected total 0, got %v", got)
	}
}

func TestOverlaps(t *testing.T) {
	mustRange := func(in, out time.Time) Range {
		r, err := NewRange(in, out)
		if err != nil {
			t.Fatalf("bad range: %v", err)
		}
		return r
	}

	cases := []struct {
		name string
		a, b Range
		want bool
	}{
		{
			"partial overlap",
			mustRange(date(2024, 1, 1), date(2024, 1, 5)),
			mustRange(date(2024, 1, 3), date(2024, 1, 7)),
			true,
		},
		{
			"containment",
			mustRange(date(2024, 1, 1), date(2024, 1, 10)),
			mustRange(date(2024, 1, 3), date(2024, 1, 5)),
			true,
		},
		{
			"identical",
			mustRange(date(2024, 1, 1), date(2024, 1, 5)),
			mustRange(date(2024, 1, 1), date(2024, 1, 5)),
			true,
		},
		{
			"back-to-back is not an overlap",
			mustRange(date(2024, 1, 1), date(2024, 1, 5)),
			mustRange(date(2024, 1, 5), date(2024, 1, 9)),
			false,
		},
		{
			"disjoint",
			mustRange(date(2024, 1, 1), date(2024, 1, 3)),
			mustRange(date(2024, 1, 10), date(2024, 1, 12)),
			false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b); got != tc.want {
				t.Fatalf("Overlaps(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
			// Пересечение симметрично.
			if got := Overlaps(tc.b, tc.a); got != tc.want {
				t.Fatalf("Overlaps(%v, %v) = %v, want %v", tc.b, tc.a, got, tc.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	r, err := NewRange(date(2024, 1, 1), date(2024, 1, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !r.Contains(date(2024, 1, 1)) {
		t.Fatalf("check-in day must be contained")
	}
	if !r.Contains(time.Date(2024, 1, 2, 18, 0, 0, 0, time.UTC)) {
		t.Fatalf("middle day must be contained")
	}
	if r.Contains(date(2024, 1, 3)) {
		t.Fatalf("check-out day must not be contained (half-open)")
	}
	if r.Contains(date(2023, 12, 31)) {
		t.Fatalf("day before check-in must not be contained")
	}
}
