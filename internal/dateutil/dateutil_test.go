package dateutil

import (
	"testing"
	"time"
)

func TestDay_ZeroPadded(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{
			name: "single digit month and day",
			t:    time.Date(2024, 6, 5, 12, 0, 0, 0, time.Local),
			want: "2024-06-05",
		},
		{
			name: "double digit month and day",
			t:    time.Date(2024, 12, 31, 0, 0, 0, 0, time.Local),
			want: "2024-12-31",
		},
		{
			name: "first of january",
			t:    time.Date(2025, 1, 1, 23, 59, 59, 0, time.Local),
			want: "2025-01-01",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Day(tt.t); got != tt.want {
				t.Errorf("Day() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDay_UsesLocalCalendarDay(t *testing.T) {
	t.Parallel()

	// Late evening local time must stay on the local day even when the
	// UTC day has already rolled over.
	lateEvening := time.Date(2024, 6, 15, 23, 30, 0, 0, time.Local)
	if got := Day(lateEvening); got != "2024-06-15" {
		t.Errorf("Day(23:30 local) = %q, want 2024-06-15", got)
	}
}

func TestYesterday(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{
			name: "mid month",
			now:  time.Date(2024, 6, 15, 10, 0, 0, 0, time.Local),
			want: "2024-06-14",
		},
		{
			name: "first of month",
			now:  time.Date(2024, 7, 1, 10, 0, 0, 0, time.Local),
			want: "2024-06-30",
		},
		{
			name: "first of year",
			now:  time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local),
			want: "2023-12-31",
		},
		{
			name: "day after leap day",
			now:  time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local),
			want: "2024-02-29",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Yesterday(tt.now); got != tt.want {
				t.Errorf("Yesterday() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		key     string
		n       int
		want    string
		wantErr bool
	}{
		{name: "back one day", key: "2024-06-15", n: -1, want: "2024-06-14"},
		{name: "forward across month", key: "2024-06-30", n: 1, want: "2024-07-01"},
		{name: "back across leap day", key: "2024-03-01", n: -1, want: "2024-02-29"},
		{name: "zero", key: "2024-06-15", n: 0, want: "2024-06-15"},
		{name: "malformed key", key: "June 15 2024", n: 1, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := AddDays(tt.key, tt.n)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("AddDays() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("AddDays() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsFuture(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)

	tests := []struct {
		key  string
		want bool
	}{
		{"2024-06-16", true},
		{"2024-06-15", false},
		{"2024-06-14", false},
		{"2025-01-01", true},
		{"2023-12-31", false},
	}

	for _, tt := range tests {
		if got := IsFuture(tt.key, now); got != tt.want {
			t.Errorf("IsFuture(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
