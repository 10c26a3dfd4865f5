package match

import "time"

// StatusCompleted is the provider status code of a finished match.
const StatusCompleted = 2

// Match is one fixture of the tournament. MatchID is the provider id.
type Match struct {
	ID                 int64
	MatchID            int64
	CompetitionID      int64
	VenueID            int64
	Title              string
	ShortTitle         string
	Subtitle           string
	MatchNumber        string
	Format             int
	FormatStr          string
	Status             int
	StatusStr          string
	StatusNote         string
	DateStart          time.Time
	DateEnd            time.Time
	DateStartIST       time.Time
	DateEndIST         time.Time
	TimestampStart     int64
	TimestampEnd       int64
	TeamAID            int64
	TeamAScoresFull    string
	TeamAScores        string
	TeamAOvers         string
	TeamBID            int64
	TeamBScoresFull    string
	TeamBScores        string
	TeamBOvers         string
	Result             string
	ResultType         int
	WinMargin          string
	WinningTeamID      *int64
	TossText           string
	TossWinnerID       *int64
	TossDecision       int
	Umpires            string
	Referee            string
	HasCommentary      bool
	HasWagon           bool
	LatestInningNumber int
}

func (m Match) IsCompleted() bool {
	return m.Status == StatusCompleted
}

// TeamIDs lists every team referenced by the match, including winner and toss winner.
func (m Match) TeamIDs() []int64 {
	ids := []int64{m.TeamAID, m.TeamBID}
	if m.WinningTeamID != nil {
		ids = append(ids, *m.WinningTeamID)
	}
	if m.TossWinnerID != nil {
		ids = append(ids, *m.TossWinnerID)
	}
	return ids
}

// ListFilter narrows match listings. Zero values mean no filter; Status is nil when unset.
type ListFilter struct {
	TeamID  int64
	VenueID int64
	Status  *int
	Offset  int
	Limit   int
}
