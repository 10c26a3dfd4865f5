package player

import "testing"

func TestPlayerDisplayName(t *testing.T) {
	t.Parallel()

	p := Player{Title: "Jos Buttler", ShortName: "J Buttler"}
	if got := p.DisplayName(); got != "J Buttler" {
		t.Fatalf("unexpected display name: %s", got)
	}

	p.ShortName = " "
	if got := p.DisplayName(); got != "Jos Buttler" {
		t.Fatalf("expected title fallback, got %s", got)
	}
}

func TestPlayerValidate(t *testing.T) {
	t.Parallel()

	if err := (Player{PID: 10, Title: "Hardik Pandya"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Player{Title: "Hardik Pandya"}).Validate(); err == nil {
		t.Fatalf("expected error for missing pid")
	}
}
