package team

import "testing"

func TestTeamValidate(t *testing.T) {
	t.Parallel()

	if err := (Team{TID: 1105, Title: "Gujarat Titans"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Team{Title: "Gujarat Titans"}).Validate(); err == nil {
		t.Fatalf("expected error for missing tid")
	}
	if err := (Team{TID: 1105, Title: "  "}).Validate(); err == nil {
		t.Fatalf("expected error for blank title")
	}
}
