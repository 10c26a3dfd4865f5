package httpapi

import (
	"time"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/aggregate"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/competition"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/player"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/scorecard"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/standing"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/team"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/venue"
	"github.com/sugerdarco/IPL-Data-Platform/internal/usecase"
)

type paginationDTO struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type teamDTO struct {
	ID       int64  `json:"id"`
	TID      int64  `json:"tid"`
	Title    string `json:"title"`
	Abbr     string `json:"abbr"`
	AltName  string `json:"altName"`
	Type     string `json:"type"`
	ThumbURL string `json:"thumbUrl"`
	LogoURL  string `json:"logoUrl"`
	Country  string `json:"country"`
	Sex      string `json:"sex"`
}

type teamStatsDTO struct {
	TotalRuns               int     `json:"totalRuns"`
	TotalWickets            int     `json:"totalWickets"`
	TotalCenturies          int     `json:"totalCenturies"`
	TotalFifties            int     `json:"totalFifties"`
	MatchesWon              int     `json:"matchesWon"`
	ExtraRunsConceded       int     `json:"extraRunsConceded"`
	HighestScore            *string `json:"highestScore"`
	LowestScore             *string `json:"lowestScore"`
	HighestWinMarginRuns    *int    `json:"highestWinMarginRuns"`
	LowestWinMarginRuns     *int    `json:"lowestWinMarginRuns"`
	HighestWinMarginWickets *int    `json:"highestWinMarginWickets"`
	LowestWinMarginWickets  *int    `json:"lowestWinMarginWickets"`
}

type standingDTO struct {
	ID              int64    `json:"id"`
	CompetitionID   int64    `json:"competitionId"`
	TeamID          int64    `json:"teamId"`
	RoundID         int64    `json:"roundId"`
	RoundName       string   `json:"roundName"`
	Played          int      `json:"played"`
	Win             int      `json:"win"`
	Loss            int      `json:"loss"`
	Draw            int      `json:"draw"`
	NR              int      `json:"nr"`
	OverFor         *float64 `json:"overFor"`
	RunFor          *int     `json:"runFor"`
	OverAgainst     *float64 `json:"overAgainst"`
	RunAgainst      *int     `json:"runAgainst"`
	NetRunRate      *float64 `json:"netRunRate"`
	Points          int      `json:"points"`
	LastFiveMatches string   `json:"lastFiveMatches"`
	LastFiveResults string   `json:"lastFiveResults"`
	Qualified       bool     `json:"qualified"`
}

type competitionDTO struct {
	ID           int64  `json:"id"`
	CID          int64  `json:"cid"`
	Title        string `json:"title"`
	Abbr         string `json:"abbr"`
	Season       string `json:"season"`
	TotalMatches int    `json:"totalMatches"`
	TotalTeams   int    `json:"totalTeams"`
}

type venueDTO struct {
	ID       int64  `json:"id"`
	VenueID  string `json:"venueId"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Country  string `json:"country"`
	Timezone string `json:"timezone"`
}

type playerDTO struct {
	ID               int64   `json:"id"`
	PID              int64   `json:"pid"`
	Title            string  `json:"title"`
	ShortName        string  `json:"shortName"`
	FirstName        string  `json:"firstName"`
	LastName         string  `json:"lastName"`
	Birthdate        string  `json:"birthdate"`
	Birthplace       string  `json:"birthplace"`
	Country          string  `json:"country"`
	PlayingRole      string  `json:"playingRole"`
	BattingStyle     string  `json:"battingStyle"`
	BowlingStyle     string  `json:"bowlingStyle"`
	Nationality      string  `json:"nationality"`
	TwitterProfile   string  `json:"twitterProfile"`
	InstagramProfile string  `json:"instagramProfile"`
	FantasyRating    float64 `json:"fantasyRating"`
}

type battingAggregateDTO struct {
	ID         int64    `json:"id"`
	PlayerID   int64    `json:"playerId"`
	TeamID     int64    `json:"teamId"`
	StatType   string   `json:"statType"`
	Matches    int      `json:"matches"`
	Innings    int      `json:"innings"`
	Runs       int      `json:"runs"`
	Balls      int      `json:"balls"`
	NotOut     int      `json:"notOut"`
	Highest    *int     `json:"highest"`
	Centuries  int      `json:"centuries"`
	Fifties    int      `json:"fifties"`
	Fours      int      `json:"fours"`
	Sixes      int      `json:"sixes"`
	Catches    int      `json:"catches"`
	Stumpings  int      `json:"stumpings"`
	Average    *float64 `json:"average"`
	StrikeRate *float64 `json:"strikeRate"`
}

type bowlingAggregateDTO struct {
	ID         int64    `json:"id"`
	PlayerID   int64    `json:"playerId"`
	TeamID     int64    `json:"teamId"`
	StatType   string   `json:"statType"`
	Matches    int      `json:"matches"`
	Overs      float64  `json:"overs"`
	Runs       int      `json:"runs"`
	Wickets    int      `json:"wickets"`
	Maidens    int      `json:"maidens"`
	Average    *float64 `json:"average"`
	Economy    *float64 `json:"economy"`
	StrikeRate *float64 `json:"strikeRate"`
	BestInning string   `json:"bestInning"`
	BestMatch  string   `json:"bestMatch"`
	Wicket4i   int      `json:"wicket4i"`
	Wicket5i   int      `json:"wicket5i"`
}

type matchDTO struct {
	ID                 int64      `json:"id"`
	MatchID            int64      `json:"matchId"`
	CompetitionID      int64      `json:"competitionId"`
	Title              string     `json:"title"`
	ShortTitle         string     `json:"shortTitle"`
	Subtitle           string     `json:"subtitle"`
	MatchNumber        string     `json:"matchNumber"`
	Format             int        `json:"format"`
	FormatStr          string     `json:"formatStr"`
	Status             int        `json:"status"`
	StatusStr          string     `json:"statusStr"`
	StatusNote         string     `json:"statusNote"`
	DateStart          *time.Time `json:"dateStart"`
	DateEnd            *time.Time `json:"dateEnd"`
	DateStartIST       *time.Time `json:"dateStartIst"`
	DateEndIST         *time.Time `json:"dateEndIst"`
	TimestampStart     int64      `json:"timestampStart"`
	TimestampEnd       int64      `json:"timestampEnd"`
	TeamAScoresFull    string     `json:"teamAScoresFull"`
	TeamAScores        string     `json:"teamAScores"`
	TeamAOvers         string     `json:"teamAOvers"`
	TeamBScoresFull    string     `json:"teamBScoresFull"`
	TeamBScores        string     `json:"teamBScores"`
	TeamBOvers         string     `json:"teamBOvers"`
	Result             string     `json:"result"`
	ResultType         int        `json:"resultType"`
	WinMargin          string     `json:"winMargin"`
	TossText           string     `json:"tossText"`
	TossDecision       int        `json:"tossDecision"`
	Umpires            string     `json:"umpires"`
	Referee            string     `json:"referee"`
	HasCommentary      bool       `json:"hasCommentary"`
	HasWagon           bool       `json:"hasWagon"`
	LatestInningNumber int        `json:"latestInningNumber"`
	TeamA              teamDTO    `json:"teamA"`
	TeamB              teamDTO    `json:"teamB"`
	WinningTeam        *teamDTO   `json:"winningTeam"`
	TossWinner         *teamDTO   `json:"tossWinner"`
	Venue              *venueDTO  `json:"venue"`
}

type inningsDTO struct {
	ID             int64   `json:"id"`
	IID            int64   `json:"iid"`
	MatchID        int64   `json:"matchId"`
	InningsNumber  int     `json:"inningsNumber"`
	Name           string  `json:"name"`
	Status         int     `json:"status"`
	IsSuperOver    bool    `json:"isSuperOver"`
	Result         int     `json:"result"`
	BattingTeamID  int64   `json:"battingTeamId"`
	FieldingTeamID int64   `json:"fieldingTeamId"`
	Scores         string  `json:"scores"`
	ScoresFull     string  `json:"scoresFull"`
	Runs           int     `json:"runs"`
	Wickets        int     `json:"wickets"`
	Overs          float64 `json:"overs"`
}

type battingLineDTO struct {
	ID         int64   `json:"id"`
	InningsID  int64   `json:"inningsId"`
	PlayerID   int64   `json:"playerId"`
	Name       string  `json:"name"`
	Position   int     `json:"position"`
	Runs       int     `json:"runs"`
	BallsFaced int     `json:"ballsFaced"`
	Fours      int     `json:"fours"`
	Sixes      int     `json:"sixes"`
	StrikeRate float64 `json:"strikeRate"`
	HowOut     string  `json:"howOut"`
	Dismissal  string  `json:"dismissal"`
	BowlerID   *int64  `json:"bowlerId"`
	IsBatting  bool    `json:"isBatting"`
}

type bowlingLineDTO struct {
	ID           int64   `json:"id"`
	InningsID    int64   `json:"inningsId"`
	PlayerID     int64   `json:"playerId"`
	Name         string  `json:"name"`
	Overs        float64 `json:"overs"`
	RunsConceded int     `json:"runsConceded"`
	Wickets      int     `json:"wickets"`
	Maidens      int     `json:"maidens"`
	NoBalls      int     `json:"noBalls"`
	Wides        int     `json:"wides"`
	Economy      float64 `json:"economy"`
	DotBalls     *int    `json:"dotBalls"`
}

type fallOfWicketDTO struct {
	ID        int64   `json:"id"`
	InningsID int64   `json:"inningsId"`
	Name      string  `json:"name"`
	Runs      int     `json:"runs"`
	Overs     float64 `json:"overs"`
	Score     string  `json:"score"`
}

func paginationToDTO(v usecase.Pagination) paginationDTO {
	return paginationDTO{
		Page:       v.Page,
		Limit:      v.Limit,
		Total:      v.Total,
		TotalPages: v.TotalPages,
	}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:       v.ID,
		TID:      v.TID,
		Title:    v.Title,
		Abbr:     v.Abbr,
		AltName:  v.AltName,
		Type:     v.Type,
		ThumbURL: v.ThumbURL,
		LogoURL:  v.LogoURL,
		Country:  v.Country,
		Sex:      v.Sex,
	}
}

func teamPtrToDTO(v *team.Team) *teamDTO {
	if v == nil {
		return nil
	}
	out := teamToDTO(*v)
	return &out
}

func teamStatsToDTO(v *team.Stats) *teamStatsDTO {
	if v == nil {
		return nil
	}
	return &teamStatsDTO{
		TotalRuns:               v.TotalRuns,
		TotalWickets:            v.TotalWickets,
		TotalCenturies:          v.TotalCenturies,
		TotalFifties:            v.TotalFifties,
		MatchesWon:              v.MatchesWon,
		ExtraRunsConceded:       v.ExtraRunsConceded,
		HighestScore:            v.HighestScore,
		LowestScore:             v.LowestScore,
		HighestWinMarginRuns:    v.HighestWinMarginRuns,
		LowestWinMarginRuns:     v.LowestWinMarginRuns,
		HighestWinMarginWickets: v.HighestWinMarginWickets,
		LowestWinMarginWickets:  v.LowestWinMarginWickets,
	}
}

func standingToDTO(v standing.Standing) standingDTO {
	return standingDTO{
		ID:              v.ID,
		CompetitionID:   v.CompetitionID,
		TeamID:          v.TeamID,
		RoundID:         v.RoundID,
		RoundName:       v.RoundName,
		Played:          v.Played,
		Win:             v.Win,
		Loss:            v.Loss,
		Draw:            v.Draw,
		NR:              v.NR,
		OverFor:         v.OverFor,
		RunFor:          v.RunFor,
		OverAgainst:     v.OverAgainst,
		RunAgainst:      v.RunAgainst,
		NetRunRate:      v.NetRunRate,
		Points:          v.Points,
		LastFiveMatches: v.LastFiveMatches,
		LastFiveResults: v.LastFiveResults,
		Qualified:       v.Qualified,
	}
}

func standingPtrToDTO(v *standing.Standing) *standingDTO {
	if v == nil {
		return nil
	}
	out := standingToDTO(*v)
	return &out
}

func competitionToDTO(v *competition.Competition) *competitionDTO {
	if v == nil {
		return nil
	}
	return &competitionDTO{
		ID:           v.ID,
		CID:          v.CID,
		Title:        v.Title,
		Abbr:         v.Abbr,
		Season:       v.Season,
		TotalMatches: v.TotalMatches,
		TotalTeams:   v.TotalTeams,
	}
}

func venueToDTO(v venue.Venue) venueDTO {
	return venueDTO{
		ID:       v.ID,
		VenueID:  v.VenueID,
		Name:     v.Name,
		Location: v.Location,
		Country:  v.Country,
		Timezone: v.Timezone,
	}
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:               v.ID,
		PID:              v.PID,
		Title:            v.Title,
		ShortName:        v.ShortName,
		FirstName:        v.FirstName,
		LastName:         v.LastName,
		Birthdate:        v.Birthdate,
		Birthplace:       v.Birthplace,
		Country:          v.Country,
		PlayingRole:      v.PlayingRole,
		BattingStyle:     v.BattingStyle,
		BowlingStyle:     v.BowlingStyle,
		Nationality:      v.Nationality,
		TwitterProfile:   v.TwitterProfile,
		InstagramProfile: v.InstagramProfile,
		FantasyRating:    v.FantasyRating,
	}
}

func playerPtrToDTO(v *player.Player) *playerDTO {
	if v == nil {
		return nil
	}
	out := playerToDTO(*v)
	return &out
}

func battingAggregateToDTO(v aggregate.Batting) battingAggregateDTO {
	return battingAggregateDTO{
		ID:         v.ID,
		PlayerID:   v.PlayerID,
		TeamID:     v.TeamID,
		StatType:   v.StatType,
		Matches:    v.Matches,
		Innings:    v.Innings,
		Runs:       v.Runs,
		Balls:      v.Balls,
		NotOut:     v.NotOut,
		Highest:    v.Highest,
		Centuries:  v.Centuries,
		Fifties:    v.Fifties,
		Fours:      v.Fours,
		Sixes:      v.Sixes,
		Catches:    v.Catches,
		Stumpings:  v.Stumpings,
		Average:    v.Average,
		StrikeRate: v.StrikeRate,
	}
}

func battingAggregatePtrToDTO(v *aggregate.Batting) *battingAggregateDTO {
	if v == nil {
		return nil
	}
	out := battingAggregateToDTO(*v)
	return &out
}

func bowlingAggregateToDTO(v aggregate.Bowling) bowlingAggregateDTO {
	return bowlingAggregateDTO{
		ID:         v.ID,
		PlayerID:   v.PlayerID,
		TeamID:     v.TeamID,
		StatType:   v.StatType,
		Matches:    v.Matches,
		Overs:      v.Overs,
		Runs:       v.Runs,
		Wickets:    v.Wickets,
		Maidens:    v.Maidens,
		Average:    v.Average,
		Economy:    v.Economy,
		StrikeRate: v.StrikeRate,
		BestInning: v.BestInning,
		BestMatch:  v.BestMatch,
		Wicket4i:   v.Wicket4i,
		Wicket5i:   v.Wicket5i,
	}
}

func bowlingAggregatePtrToDTO(v *aggregate.Bowling) *bowlingAggregateDTO {
	if v == nil {
		return nil
	}
	out := bowlingAggregateToDTO(*v)
	return &out
}

func matchToDTO(v usecase.MatchSummary) matchDTO {
	m := v.Match
	out := matchDTO{
		ID:                 m.ID,
		MatchID:            m.MatchID,
		CompetitionID:      m.CompetitionID,
		Title:              m.Title,
		ShortTitle:         m.ShortTitle,
		Subtitle:           m.Subtitle,
		MatchNumber:        m.MatchNumber,
		Format:             m.Format,
		FormatStr:          m.FormatStr,
		Status:             m.Status,
		StatusStr:          m.StatusStr,
		StatusNote:         m.StatusNote,
		DateStart:          optionalTime(m.DateStart),
		DateEnd:            optionalTime(m.DateEnd),
		DateStartIST:       optionalTime(m.DateStartIST),
		DateEndIST:         optionalTime(m.DateEndIST),
		TimestampStart:     m.TimestampStart,
		TimestampEnd:       m.TimestampEnd,
		TeamAScoresFull:    m.TeamAScoresFull,
		TeamAScores:        m.TeamAScores,
		TeamAOvers:         m.TeamAOvers,
		TeamBScoresFull:    m.TeamBScoresFull,
		TeamBScores:        m.TeamBScores,
		TeamBOvers:         m.TeamBOvers,
		Result:             m.Result,
		ResultType:         m.ResultType,
		WinMargin:          m.WinMargin,
		TossText:           m.TossText,
		TossDecision:       m.TossDecision,
		Umpires:            m.Umpires,
		Referee:            m.Referee,
		HasCommentary:      m.HasCommentary,
		HasWagon:           m.HasWagon,
		LatestInningNumber: m.LatestInningNumber,
		TeamA:              teamToDTO(v.TeamA),
		TeamB:              teamToDTO(v.TeamB),
		WinningTeam:        teamPtrToDTO(v.Winner),
		TossWinner:         teamPtrToDTO(v.TossWinner),
	}
	if v.Venue != nil {
		ground := venueToDTO(*v.Venue)
		out.Venue = &ground
	}
	return out
}

func matchesToDTO(items []usecase.MatchSummary) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchToDTO(item))
	}
	return out
}

func inningsToDTO(v scorecard.Innings) inningsDTO {
	return inningsDTO{
		ID:             v.ID,
		IID:            v.IID,
		MatchID:        v.MatchID,
		InningsNumber:  v.Number,
		Name:           v.Name,
		Status:         v.Status,
		IsSuperOver:    v.IsSuperOver,
		Result:         v.Result,
		BattingTeamID:  v.BattingTeamID,
		FieldingTeamID: v.FieldingTeamID,
		Scores:         v.Scores,
		ScoresFull:     v.ScoresFull,
		Runs:           v.Runs,
		Wickets:        v.Wickets,
		Overs:          v.Overs,
	}
}

func battingLineToDTO(v scorecard.BattingLine) battingLineDTO {
	return battingLineDTO{
		ID:         v.ID,
		InningsID:  v.InningsID,
		PlayerID:   v.PlayerID,
		Name:       v.Name,
		Position:   v.Position,
		Runs:       v.Runs,
		BallsFaced: v.BallsFaced,
		Fours:      v.Fours,
		Sixes:      v.Sixes,
		StrikeRate: v.StrikeRate,
		HowOut:     v.HowOut,
		Dismissal:  v.Dismissal,
		BowlerID:   v.BowlerID,
		IsBatting:  v.IsBatting,
	}
}

func bowlingLineToDTO(v scorecard.BowlingLine) bowlingLineDTO {
	return bowlingLineDTO{
		ID:           v.ID,
		InningsID:    v.InningsID,
		PlayerID:     v.PlayerID,
		Name:         v.Name,
		Overs:        v.Overs,
		RunsConceded: v.RunsConceded,
		Wickets:      v.Wickets,
		Maidens:      v.Maidens,
		NoBalls:      v.NoBalls,
		Wides:        v.Wides,
		Economy:      v.Economy,
		DotBalls:     v.DotBalls,
	}
}

func fallOfWicketToDTO(v scorecard.FallOfWicket) fallOfWicketDTO {
	return fallOfWicketDTO{
		ID:        v.ID,
		InningsID: v.InningsID,
		Name:      v.Name,
		Runs:      v.Runs,
		Overs:     v.Overs,
		Score:     v.Score,
	}
}

func optionalTime(v time.Time) *time.Time {
	if v.IsZero() {
		return nil
	}
	return &v
}

func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
