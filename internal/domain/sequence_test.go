package domain

import "testing"

func TestNextProblemID(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"p5_600_001", "p5_600_002"},
		{"p7_800_099", "p7_800_100"},
		{"p6_700_010", "p6_700_011"},
		{"P5x_1_998", "P5x_1_999"},
	}
	for _, tc := range cases {
		got, ok := NextProblemID(tc.in)
		if !ok {
			t.Fatalf("expected next id for %q", tc.in)
		}
		if got != tc.want {
			t.Fatalf("NextProblemID(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNextProblemIDTerminal(t *testing.T) {
	for _, id := range []string{
		"p5_600_999",
		"abc",
		"p5_600_1",
		"p5-600-001",
		"p5_600_0001",
		"p5_6a0_001",
		"_600_001",
		"",
	} {
		if got, ok := NextProblemID(id); ok {
			t.Fatalf("expected no next id for %q, got %q", id, got)
		}
	}
}

func TestValidProblemID(t *testing.T) {
	if !ValidProblemID("p5_600_001") {
		t.Fatalf("expected p5_600_001 to be valid")
	}
	if ValidProblemID("p5_600_01") {
		t.Fatalf("expected two-digit counter to be rejected")
	}
}
