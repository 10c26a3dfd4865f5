package scorecard

import (
	"strconv"
	"strings"
)

// Innings is one batting innings of a match. IID is the provider id.
type Innings struct {
	ID             int64
	IID            int64
	MatchID        int64
	Number         int
	Name           string
	Status         int
	IsSuperOver    bool
	Result         int
	BattingTeamID  int64
	FieldingTeamID int64
	Scores         string
	ScoresFull     string
	Runs           int
	Wickets        int
	Overs          float64
}

// BattingLine is a batsman's row on the scorecard. BowlerID is the provider pid of the dismissing bowler.
type BattingLine struct {
	ID         int64
	InningsID  int64
	PlayerID   int64
	Name       string
	Position   int
	Runs       int
	BallsFaced int
	Fours      int
	Sixes      int
	StrikeRate float64
	HowOut     string
	Dismissal  string
	BowlerID   *int64
	IsBatting  bool
}

type BowlingLine struct {
	ID           int64
	InningsID    int64
	PlayerID     int64
	Name         string
	Overs        float64
	RunsConceded int
	Wickets      int
	Maidens      int
	NoBalls      int
	Wides        int
	Economy      float64
	DotBalls     *int
}

type FallOfWicket struct {
	ID        int64
	InningsID int64
	Name      string
	Runs      int
	Overs     float64
	Score     string
}

// Totals are tournament-wide innings sums.
type Totals struct {
	Runs    int64
	Wickets int64
}

// SixHitter is the player with the most sixes across all batting lines.
type SixHitter struct {
	PlayerID int64
	Sixes    int64
}

// ParseScore splits a "runs/wickets" score. Missing or malformed parts become zero.
func ParseScore(score string) (runs, wickets int) {
	parts := strings.SplitN(score, "/", 2)
	runs = leadingInt(parts[0])
	if len(parts) == 2 {
		wickets = leadingInt(parts[1])
	}
	return runs, wickets
}

func leadingInt(raw string) int {
	raw = strings.TrimSpace(raw)
	end := 0
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	v, err := strconv.Atoi(raw[:end])
	if err != nil {
		return 0
	}
	return v
}
