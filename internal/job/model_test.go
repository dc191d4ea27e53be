package job

import "testing"

func TestParseCommitment(t *testing.T) {
	valid := []string{"< 5 hrs/week", "5-10 hrs/week", "10-20 hrs/week", "20-40 hrs/week"}
	for _, s := range valid {
		got, err := ParseCommitment(s)
		if err != nil {
			t.Errorf("ParseCommitment(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseCommitment(%q) = %q, want %q", s, got, s)
		}
	}

	for _, s := range []string{"", "full-time", "5 hrs/week", "40+ hrs/week"} {
		if _, err := ParseCommitment(s); err == nil {
			t.Errorf("ParseCommitment(%q) expected error, got nil", s)
		}
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"active", "inactive"} {
		got, err := ParseStatus(s)
		if err != nil {
			t.Errorf("ParseStatus(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseStatus(%q) = %q, want %q", s, got, s)
		}
	}
	if _, err := ParseStatus("archived"); err == nil {
		t.Error("ParseStatus(\"archived\") expected error, got nil")
	}
}
