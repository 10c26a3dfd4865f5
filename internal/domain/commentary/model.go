package commentary

import "strings"

// Event is one ball-by-ball commentary entry. BatsmanID and BowlerID are provider pids.
type Event struct {
	ID         int64
	EventID    string
	MatchID    int64
	InningsID  int64
	Event      string
	BatsmanID  *int64
	BowlerID   *int64
	Over       int
	Ball       int
	Commentary string
	Run        int
	IsWide     bool
	IsNoBall   bool
	IsSix      bool
	IsFour     bool
	IsWicket   bool
}

const (
	EventBall   = "ball"
	EventWicket = "wicket"
)

// Flag selects highlight events.
type Flag string

const (
	FlagWicket Flag = "wicket"
	FlagSix    Flag = "six"
	FlagFour   Flag = "four"
)

// ParseFlags reads a comma separated events list, ignoring unknown names.
func ParseFlags(raw string) []Flag {
	out := make([]Flag, 0, 3)
	seen := make(map[Flag]struct{}, 3)
	for _, part := range strings.Split(raw, ",") {
		flag := Flag(strings.ToLower(strings.TrimSpace(part)))
		switch flag {
		case FlagWicket, FlagSix, FlagFour:
		default:
			continue
		}
		if _, ok := seen[flag]; ok {
			continue
		}
		seen[flag] = struct{}{}
		out = append(out, flag)
	}
	return out
}

// Filter narrows a match's commentary. Flags are OR'd together.
type Filter struct {
	MatchID   int64
	InningsID int64
	Over      *int
	Flags     []Flag
	Offset    int
	Limit     int
}

// Highlights summarises a page of commentary.
type Highlights struct {
	Wickets   int
	Sixes     int
	Fours     int
	TotalRuns int
}

func Summarize(events []Event) Highlights {
	var h Highlights
	for _, e := range events {
		if e.IsWicket {
			h.Wickets++
		}
		if e.IsSix {
			h.Sixes++
		}
		if e.IsFour {
			h.Fours++
		}
		h.TotalRuns += e.Run
	}
	return h
}
