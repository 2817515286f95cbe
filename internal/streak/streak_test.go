package streak

import (
	"testing"
	"time"
)

// Fixed reference day so scenarios are deterministic: today is
// 2024-06-15, yesterday 2024-06-14.
var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)

func TestCalculate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{
			name:  "three consecutive days ending today",
			dates: []string{"2024-06-15", "2024-06-14", "2024-06-13"},
			want:  3,
		},
		{
			name:  "gap before today starts a fresh streak",
			dates: []string{"2024-06-15", "2024-06-12"},
			want:  1,
		},
		{
			name:  "done yesterday but not yet today is pending, not broken",
			dates: []string{"2024-06-14", "2024-06-13"},
			want:  2,
		},
		{
			name:  "missed today and yesterday expires the streak",
			dates: []string{"2024-06-13", "2024-06-12"},
			want:  0,
		},
		{
			name:  "empty set",
			dates: []string{},
			want:  0,
		},
		{
			name:  "nil set",
			dates: nil,
			want:  0,
		},
		{
			name:  "unordered input is sorted before walking",
			dates: []string{"2024-06-14", "2024-06-15", "2024-06-13"},
			want:  3,
		},
		{
			name:  "duplicates do not double-count",
			dates: []string{"2024-06-15", "2024-06-15", "2024-06-14", "2024-06-14"},
			want:  2,
		},
		{
			name:  "single completion today",
			dates: []string{"2024-06-15"},
			want:  1,
		},
		{
			name:  "single completion yesterday",
			dates: []string{"2024-06-14"},
			want:  1,
		},
		{
			name:  "long run with an old gap stops at the gap",
			dates: []string{"2024-06-15", "2024-06-14", "2024-06-13", "2024-06-11", "2024-06-10"},
			want:  3,
		},
		{
			name:  "streak spanning a month boundary",
			dates: []string{"2024-06-15", "2024-06-14", "2024-06-13", "2024-06-12", "2024-06-11", "2024-06-10", "2024-06-09", "2024-06-08", "2024-06-07", "2024-06-06", "2024-06-05", "2024-06-04", "2024-06-03", "2024-06-02", "2024-06-01", "2024-05-31", "2024-05-30"},
			want:  17,
		},
		{
			name:  "expired multi-day run still returns zero",
			dates: []string{"2024-06-13", "2024-06-12", "2024-06-11"},
			want:  0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Calculate(tt.dates, testNow); got != tt.want {
				t.Errorf("Calculate(%v) = %d, want %d", tt.dates, got, tt.want)
			}
		})
	}
}

func TestCalculate_NonNegative(t *testing.T) {
	t.Parallel()

	inputs := [][]string{
		nil,
		{},
		{"2020-01-01"},
		{"not-a-date"},
		{"2024-06-15"},
	}
	for _, dates := range inputs {
		if got := Calculate(dates, testNow); got < 0 {
			t.Errorf("Calculate(%v) = %d, want >= 0", dates, got)
		}
	}
}

func TestCalculate_OrderAndDuplicateInvariance(t *testing.T) {
	t.Parallel()

	base := []string{"2024-06-15", "2024-06-14", "2024-06-13"}
	shuffled := []string{"2024-06-13", "2024-06-15", "2024-06-14"}
	duplicated := []string{"2024-06-14", "2024-06-14", "2024-06-15", "2024-06-13", "2024-06-13"}

	want := Calculate(base, testNow)
	if got := Calculate(shuffled, testNow); got != want {
		t.Errorf("shuffled input changed result: %d != %d", got, want)
	}
	if got := Calculate(duplicated, testNow); got != want {
		t.Errorf("duplicated input changed result: %d != %d", got, want)
	}
}

func TestCrossed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		prev int
		next int
		want int
	}{
		{name: "six to seven hits first milestone", prev: 6, next: 7, want: 7},
		{name: "29 to 30", prev: 29, next: 30, want: 30},
		{name: "59 to 60", prev: 59, next: 60, want: 60},
		{name: "99 to 100", prev: 99, next: 100, want: 100},
		{name: "no threshold crossed", prev: 7, next: 8, want: 0},
		{name: "decrement never triggers", prev: 7, next: 6, want: 0},
		{name: "no change", prev: 30, next: 30, want: 0},
		{name: "jump over a threshold reports it", prev: 5, next: 9, want: 7},
		{name: "beyond the ladder", prev: 150, next: 151, want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Crossed(tt.prev, tt.next); got != tt.want {
				t.Errorf("Crossed(%d, %d) = %d, want %d", tt.prev, tt.next, got, tt.want)
			}
		})
	}
}
