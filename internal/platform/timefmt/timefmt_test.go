package timefmt_test

import (
	"testing"
	"time"

	"lectrack/internal/platform/timefmt"
)

func TestElapsed(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"zero", 0, "0:00:00"},
		{"seconds", 42 * time.Second, "0:00:42"},
		{"hours", 1*time.Hour + 30*time.Minute + 5*time.Second, "1:30:05"},
		{"double digit hours", 13*time.Hour + 2*time.Minute, "13:02:00"},
		{"one day", 25 * time.Hour, "1 day, 1:00:00"},
		{"days", 50*time.Hour + 1*time.Second, "2 days, 2:00:01"},
		{"negative seconds", -10 * time.Second, "-1 day, 23:59:50"},
		{"negative days", -49 * time.Hour, "-3 days, 23:00:00"},
		{"fraction floored", 1500 * time.Millisecond, "0:00:01"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := timefmt.Elapsed(tc.in); got != tc.want {
				t.Fatalf("Elapsed(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestStampRoundTrip(t *testing.T) {
	t.Parallel()
	in := time.Date(2026, 3, 2, 9, 15, 7, 0, time.Local)
	stamp := timefmt.Stamp(in)
	if stamp != "2026-03-02 09:15:07" {
		t.Fatalf("unexpected stamp %q", stamp)
	}
	out, err := timefmt.Parse(stamp)
	if err != nil {
		t.Fatalf("parse stamp: %v", err)
	}
	if !out.Equal(in) {
		t.Fatalf("round trip mismatch: %v vs %v", out, in)
	}
}
