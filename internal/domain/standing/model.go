package standing

// Standing is a team's points-table row after a given round.
type Standing struct {
	ID              int64
	CompetitionID   int64
	TeamID          int64
	RoundID         int64
	RoundName       string
	Played          int
	Win             int
	Loss            int
	Draw            int
	NR              int
	OverFor         *float64
	RunFor          *int
	OverAgainst     *float64
	RunAgainst      *int
	NetRunRate      *float64
	Points          int
	LastFiveMatches string
	LastFiveResults string
	Qualified       bool
}

// WinPercentage is wins over played, rounded to one decimal place. Zero when nothing was played.
func (s Standing) WinPercentage() float64 {
	if s.Played <= 0 {
		return 0
	}
	pct := float64(s.Win) / float64(s.Played) * 100
	return float64(int64(pct*10+0.5)) / 10
}

type Round struct {
	ID   int64
	Name string
}
