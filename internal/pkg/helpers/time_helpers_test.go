package helpers

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 7, 9, 15, 4, 5, 0, time.UTC)
	if got := FormatDate(d); got != "2024-07-09" {
		t.Errorf("FormatDate = %q, want %q", got, "2024-07-09")
	}
}

func TestFormatNullableDate(t *testing.T) {
	if got := FormatNullableDate(nil); got != nil {
		t.Errorf("FormatNullableDate(nil) = %v, want nil", *got)
	}

	d := time.Date(2010, 1, 2, 0, 0, 0, 0, time.UTC)
	got := FormatNullableDate(&d)
	if got == nil || *got != "2010-01-02" {
		t.Errorf("FormatNullableDate = %v, want %q", got, "2010-01-02")
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-12-31")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got.Year() != 2025 || got.Month() != time.December || got.Day() != 31 {
		t.Errorf("ParseDate = %v, want 2025-12-31", got)
	}

	for _, bad := range []string{"", "31-12-2025", "2025/12/31", "yesterday"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) succeeded, want error", bad)
		}
	}
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("90m", time.Hour); got != 90*time.Minute {
		t.Errorf("ParseDuration(90m) = %v, want 90m", got)
	}
	if got := ParseDuration("", time.Hour); got != time.Hour {
		t.Errorf("ParseDuration(empty) = %v, want fallback", got)
	}
	if got := ParseDuration("not-a-duration", 2*time.Hour); got != 2*time.Hour {
		t.Errorf("ParseDuration(invalid) = %v, want fallback", got)
	}
}
