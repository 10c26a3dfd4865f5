package scorecard

import "testing"

func TestParseScore(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		runs    int
		wickets int
	}{
		{in: "192/5", runs: 192, wickets: 5},
		{in: "68", runs: 68},
		{in: "157/10 (19.4)", runs: 157, wickets: 10},
		{in: "", runs: 0},
		{in: "yet to bat/", runs: 0},
	}
	for _, tc := range cases {
		runs, wickets := ParseScore(tc.in)
		if runs != tc.runs || wickets != tc.wickets {
			t.Fatalf("ParseScore(%q)=%d/%d want %d/%d", tc.in, runs, wickets, tc.runs, tc.wickets)
		}
	}
}
