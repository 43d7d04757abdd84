package config

import "testing"

func TestAcademicYearLabel(t *testing.T) {
	if got := academicYearLabel(2025); got != "2025-2026" {
		t.Fatalf("expected 2025-2026, got %s", got)
	}
	if got := academicYearLabel(1999); got != "1999-2000" {
		t.Fatalf("expected 1999-2000, got %s", got)
	}
}
