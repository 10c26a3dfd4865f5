package iplapi

import (
	"encoding/json"
	"time"
)

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// Page is one page of a paginated listing.
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}

type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Uptime    float64   `json:"uptime"`
	Database  string    `json:"database"`
	Error     string    `json:"error,omitempty"`
}

type Team struct {
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

type TeamStats struct {
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

type Standing struct {
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

type Competition struct {
	ID           int64  `json:"id"`
	CID          int64  `json:"cid"`
	Title        string `json:"title"`
	Abbr         string `json:"abbr"`
	Season       string `json:"season"`
	TotalMatches int    `json:"totalMatches"`
	TotalTeams   int    `json:"totalTeams"`
}

type Venue struct {
	ID       int64  `json:"id"`
	VenueID  string `json:"venueId"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Country  string `json:"country"`
	Timezone string `json:"timezone"`
}

type VenueUsage struct {
	Venue
	MatchCount int64 `json:"matchCount"`
}

type Player struct {
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

type BattingAggregate struct {
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

type BowlingAggregate struct {
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

type Match struct {
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
	TeamA              Team       `json:"teamA"`
	TeamB              Team       `json:"teamB"`
	WinningTeam        *Team      `json:"winningTeam"`
	TossWinner         *Team      `json:"tossWinner"`
	Venue              *Venue     `json:"venue"`
}

type Innings struct {
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

type BattingLine struct {
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

type BowlingLine struct {
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

type FallOfWicket struct {
	ID        int64   `json:"id"`
	InningsID int64   `json:"inningsId"`
	Name      string  `json:"name"`
	Runs      int     `json:"runs"`
	Overs     float64 `json:"overs"`
	Score     string  `json:"score"`
}

type TeamSummary struct {
	Team
	Standing *Standing  `json:"standing"`
	Stats    *TeamStats `json:"stats"`
}

type SquadMember struct {
	ID     int64  `json:"id"`
	Season string `json:"season"`
	Player Player `json:"player"`
}

type TeamDetail struct {
	Team
	Standing *Standing     `json:"standing"`
	Stats    *TeamStats    `json:"stats"`
	Squad    []SquadMember `json:"squad"`
}

type TeamPlayer struct {
	Player
	BattingStats *BattingAggregate `json:"battingStats"`
	BowlingStats *BowlingAggregate `json:"bowlingStats"`
}

type PlayerSummary struct {
	Player
	Teams        []Team            `json:"teams"`
	BattingStats *BattingAggregate `json:"battingStats"`
	BowlingStats *BowlingAggregate `json:"bowlingStats"`
}

type PlayerSquad struct {
	ID     int64  `json:"id"`
	Season string `json:"season"`
	Team   Team   `json:"team"`
}

// CareerStats carries the provider's career blobs undecoded.
type CareerStats struct {
	Batting json.RawMessage `json:"batting"`
	Bowling json.RawMessage `json:"bowling"`
}

type PlayerDetail struct {
	Player
	Squads       []PlayerSquad      `json:"squads"`
	CareerStats  *CareerStats       `json:"careerStats"`
	BattingStats []BattingAggregate `json:"battingStats"`
	BowlingStats []BowlingAggregate `json:"bowlingStats"`
}

type PlayerBattingInnings struct {
	BattingLine
	Innings     Innings `json:"innings"`
	Match       Match   `json:"match"`
	BattingTeam Team    `json:"battingTeam"`
}

type PlayerBowlingInnings struct {
	BowlingLine
	Innings      Innings `json:"innings"`
	Match        Match   `json:"match"`
	FieldingTeam Team    `json:"fieldingTeam"`
}

type BattingRanking struct {
	BattingAggregate
	Player Player `json:"player"`
	Team   Team   `json:"team"`
}

type BowlingRanking struct {
	BowlingAggregate
	Player Player `json:"player"`
	Team   Team   `json:"team"`
}

type BattingEntry struct {
	BattingLine
	Player *Player `json:"player"`
}

type BowlingEntry struct {
	BowlingLine
	Player *Player `json:"player"`
}

type InningsCard struct {
	Innings
	BattingTeam   Team           `json:"battingTeam"`
	FieldingTeam  Team           `json:"fieldingTeam"`
	Batsmen       []BattingEntry `json:"batsmen"`
	Bowlers       []BowlingEntry `json:"bowlers"`
	FallOfWickets []FallOfWicket `json:"fallOfWickets"`
}

type MatchDetail struct {
	Match
	Innings []InningsCard `json:"innings"`
}

type WagonBatsman struct {
	PlayerID int64  `json:"playerId"`
	PID      *int64 `json:"pid"`
	Name     string `json:"name"`
	Runs     int    `json:"runs"`
	Balls    int    `json:"balls"`
	Fours    int    `json:"fours"`
	Sixes    int    `json:"sixes"`
}

type Shot struct {
	ID         int64   `json:"id"`
	InningsID  int64   `json:"inningsId"`
	Sequence   int     `json:"sequence"`
	BatsmanID  int64   `json:"batsmanId"`
	BowlerID   int64   `json:"bowlerId"`
	Over       float64 `json:"over"`
	BatRun     int     `json:"batRun"`
	TeamRun    int     `json:"teamRun"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	ZoneID     int     `json:"zoneId"`
	ZoneName   string  `json:"zoneName"`
	EventName  string  `json:"eventName"`
	UniqueOver float64 `json:"uniqueOver"`
}

type WagonInnings struct {
	InningsNumber int            `json:"inningsNumber"`
	InningsName   string         `json:"inningsName"`
	BattingTeam   Team           `json:"battingTeam"`
	Batsmen       []WagonBatsman `json:"batsmen"`
	WagonData     []Shot         `json:"wagonData"`
}

type ZoneStat struct {
	Runs  int `json:"runs"`
	Balls int `json:"balls"`
	Fours int `json:"fours"`
	Sixes int `json:"sixes"`
}

type WagonWheel struct {
	MatchID    int64               `json:"matchId"`
	TotalBalls int                 `json:"totalBalls"`
	Innings    []WagonInnings      `json:"innings"`
	ZoneStats  map[string]ZoneStat `json:"zoneStats"`
	ZoneNames  []string            `json:"zoneNames"`
}

type CommentaryEvent struct {
	ID         int64  `json:"id"`
	EventID    string `json:"eventId"`
	InningsID  int64  `json:"inningsId"`
	Event      string `json:"event"`
	BatsmanID  *int64 `json:"batsmanId"`
	BowlerID   *int64 `json:"bowlerId"`
	Over       int    `json:"over"`
	Ball       int    `json:"ball"`
	Commentary string `json:"commentary"`
	Run        int    `json:"run"`
	IsWide     bool   `json:"isWide"`
	IsNoBall   bool   `json:"isNoBall"`
	IsSix      bool   `json:"isSix"`
	IsFour     bool   `json:"isFour"`
	IsWicket   bool   `json:"isWicket"`
}

type InningsTeams struct {
	Innings
	BattingTeam  Team `json:"battingTeam"`
	FieldingTeam Team `json:"fieldingTeam"`
}

type CommentaryGroup struct {
	InningsNumber int                          `json:"inningsNumber"`
	InningsName   string                       `json:"inningsName"`
	BattingTeam   *Team                        `json:"battingTeam"`
	Overs         map[string][]CommentaryEvent `json:"overs"`
}

type CommentaryHighlights struct {
	Wickets   int `json:"wickets"`
	Sixes     int `json:"sixes"`
	Fours     int `json:"fours"`
	TotalRuns int `json:"totalRuns"`
}

type MatchCommentary struct {
	MatchID          int64                `json:"matchId"`
	Innings          []InningsTeams       `json:"innings"`
	Commentaries     []CommentaryEvent    `json:"commentaries"`
	GroupedByInnings []CommentaryGroup    `json:"groupedByInnings"`
	Highlights       CommentaryHighlights `json:"highlights"`
	Pagination       Pagination           `json:"-"`
}

type HighlightSummary struct {
	TotalWickets int `json:"totalWickets"`
	TotalSixes   int `json:"totalSixes"`
	TotalFours   int `json:"totalFours"`
}

type MatchHighlights struct {
	MatchID int64             `json:"matchId"`
	Innings []InningsTeams    `json:"innings"`
	Wickets []CommentaryEvent `json:"wickets"`
	Sixes   []CommentaryEvent `json:"sixes"`
	Fours   []CommentaryEvent `json:"fours"`
	Summary HighlightSummary  `json:"summary"`
}

type StandingRow struct {
	Standing
	Team        Team         `json:"team"`
	Competition *Competition `json:"competition"`
}

type Round struct {
	RoundID   int64  `json:"roundId"`
	RoundName string `json:"roundName"`
}

type HighestScore struct {
	Runs   int    `json:"runs"`
	Balls  int    `json:"balls"`
	Player string `json:"player"`
	Match  string `json:"match"`
}

type BestBowling struct {
	Wickets int     `json:"wickets"`
	Runs    int     `json:"runs"`
	Overs   float64 `json:"overs"`
	Player  string  `json:"player"`
	Match   string  `json:"match"`
}

type TopSixHitter struct {
	Player string `json:"player"`
	Sixes  int64  `json:"sixes"`
}

type StatsOverview struct {
	Tournament   *Competition  `json:"tournament"`
	TotalMatches int64         `json:"totalMatches"`
	TotalTeams   int64         `json:"totalTeams"`
	TotalPlayers int64         `json:"totalPlayers"`
	TotalRuns    int64         `json:"totalRuns"`
	TotalWickets int64         `json:"totalWickets"`
	HighestScore *HighestScore `json:"highestScore"`
	BestBowling  *BestBowling  `json:"bestBowling"`
	TopSixHitter *TopSixHitter `json:"topSixHitter"`
}

type TeamPerformance struct {
	Team          Team     `json:"team"`
	Played        int      `json:"played"`
	Win           int      `json:"win"`
	Loss          int      `json:"loss"`
	Points        int      `json:"points"`
	NetRunRate    *float64 `json:"netRunRate"`
	Qualified     bool     `json:"qualified"`
	WinPercentage float64  `json:"winPercentage"`
}

type MatchRuns struct {
	MatchNumber int       `json:"matchNumber"`
	ShortTitle  string    `json:"shortTitle"`
	Date        time.Time `json:"date"`
	TotalRuns   int       `json:"totalRuns"`
	TeamA       string    `json:"teamA"`
	TeamB       string    `json:"teamB"`
}

type TopScorer struct {
	Name       string   `json:"name"`
	Runs       int      `json:"runs"`
	Average    *float64 `json:"average"`
	StrikeRate *float64 `json:"strikeRate"`
}

type TeamTopScorer struct {
	Team      string    `json:"team"`
	TeamName  string    `json:"teamName"`
	LogoURL   string    `json:"logoUrl"`
	TopScorer TopScorer `json:"topScorer"`
}

type BettingTeam struct {
	Abbr                string   `json:"abbr"`
	Name                string   `json:"name"`
	WinRate             float64  `json:"winRate"`
	ChasingWinRate      float64  `json:"chasingWinRate"`
	BattingFirstWinRate float64  `json:"battingFirstWinRate"`
	AvgScore            float64  `json:"avgScore"`
	Recommendation      string   `json:"recommendation"`
	Strategy            string   `json:"strategy"`
	RiskLevel           int      `json:"riskLevel"`
	Tips                []string `json:"tips"`
}

type BettingTip struct {
	Type        string  `json:"type"`
	Probability float64 `json:"probability"`
	Risk        string  `json:"risk"`
	Stars       int     `json:"stars"`
}

type BettingPlayer struct {
	ID            int          `json:"id"`
	Name          string       `json:"name"`
	Team          string       `json:"team"`
	Role          string       `json:"role"`
	Runs          int          `json:"runs"`
	Average       float64      `json:"average"`
	StrikeRate    float64      `json:"strikeRate"`
	Centuries     int          `json:"centuries"`
	Fifties       int          `json:"fifties"`
	Sixes         int          `json:"sixes"`
	Fours         int          `json:"fours"`
	BigScoreRate  *float64     `json:"bigScoreRate,omitempty"`
	SixesPerMatch *float64     `json:"sixesPerMatch,omitempty"`
	FoursPerMatch *float64     `json:"foursPerMatch,omitempty"`
	NotOuts       *int         `json:"notOuts,omitempty"`
	BettingTips   []BettingTip `json:"bettingTips"`
	Verdict       string       `json:"verdict"`
}

type Scenario struct {
	Scenario       string `json:"scenario"`
	WinProbability *int   `json:"winProbability,omitempty"`
	ExpectedTotal  string `json:"expectedTotal,omitempty"`
	Probability    *int   `json:"probability,omitempty"`
	Recommendation string `json:"recommendation"`
	Confidence     string `json:"confidence"`
	Reasoning      string `json:"reasoning"`
}

type Bet struct {
	Bet         string  `json:"bet"`
	Probability float64 `json:"probability"`
	Team        string  `json:"team,omitempty"`
	Stars       int     `json:"stars,omitempty"`
	Reason      string  `json:"reason,omitempty"`
}

type RiskAssessment struct {
	SafeBets  []Bet `json:"safeBets"`
	ValueBets []Bet `json:"valueBets"`
	AvoidBets []Bet `json:"avoidBets"`
}

type Insight struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Value       string `json:"value"`
	Probability string `json:"probability"`
}

type TournamentStats struct {
	TotalMatches   int    `json:"totalMatches"`
	TotalCenturies int    `json:"totalCenturies"`
	CenturyRate    string `json:"centuryRate"`
	AvgMatchScore  int    `json:"avgMatchScore"`
	HighestScore   string `json:"highestScore"`
	LowestScore    string `json:"lowestScore"`
}

type BettingOverview struct {
	TopBets         []Bet           `json:"topBets"`
	ValueBets       []Bet           `json:"valueBets"`
	AvoidBets       []Bet           `json:"avoidBets"`
	KeyInsights     []Insight       `json:"keyInsights"`
	TournamentStats TournamentStats `json:"tournamentStats"`
}

type Prediction struct {
	TeamA               BettingTeam `json:"teamA"`
	TeamAWinProbability int         `json:"teamAWinProbability"`
	TeamB               BettingTeam `json:"teamB"`
	TeamBWinProbability int         `json:"teamBWinProbability"`
	Favorite            string      `json:"favorite"`
	FavoriteWinProb     int         `json:"favoriteWinProb"`
	Underdog            string      `json:"underdog"`
	UpsetPotential      string      `json:"upsetPotential"`
	Recommendation      string      `json:"recommendation"`
	Reasoning           string      `json:"reasoning"`
	BettingTips         []string    `json:"bettingTips"`
}
