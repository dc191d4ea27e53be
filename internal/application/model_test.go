package application

import "testing"

func TestParseAction(t *testing.T) {
	for _, s := range []string{"accept", "reject"} {
		got, err := ParseAction(s)
		if err != nil {
			t.Errorf("ParseAction(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseAction(%q) = %q, want %q", s, got, s)
		}
	}

	for _, s := range []string{"", "Accept", "approve", "pending"} {
		if _, err := ParseAction(s); err == nil {
			t.Errorf("ParseAction(%q) expected error, got nil", s)
		}
	}
}

func TestActionDecided(t *testing.T) {
	if ActionAccept.Decided() != StatusAccepted {
		t.Error("accept should decide to accepted")
	}
	if ActionReject.Decided() != StatusRejected {
		t.Error("reject should decide to rejected")
	}
}
