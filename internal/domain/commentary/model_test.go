package commentary

import "testing"

func TestParseFlags(t *testing.T) {
	t.Parallel()

	flags := ParseFlags(" Wicket,six,boundary,six,")
	if len(flags) != 2 || flags[0] != FlagWicket || flags[1] != FlagSix {
		t.Fatalf("unexpected flags: %+v", flags)
	}
	if got := ParseFlags(""); len(got) != 0 {
		t.Fatalf("expected no flags, got %+v", got)
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	h := Summarize([]Event{
		{Run: 4, IsFour: true},
		{Run: 6, IsSix: true},
		{Run: 0, IsWicket: true},
		{Run: 1},
	})
	if h.Fours != 1 || h.Sixes != 1 || h.Wickets != 1 || h.TotalRuns != 11 {
		t.Fatalf("unexpected highlights: %+v", h)
	}
}
