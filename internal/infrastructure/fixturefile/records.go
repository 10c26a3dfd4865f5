package fixturefile

import "encoding/json"

// Fixture layout relative to the data directory.
const (
	TeamsFile          = "teams/teams.json"
	SquadsFile         = "squads/squads.json"
	MatchesFile        = "matches/matches.json"
	StandingsFile      = "standings/standings.json"
	CareerStatsDir     = "player_career_stats"
	ScorecardsDir      = "scorecards"
	BattingStatsDir    = "batting_stats"
	BowlingStatsDir    = "bowling_stats"
	TeamStatsDir       = "team_stats"
	WagonWheelDir      = "match_wagon_wheel"
	CommentaryDir      = "match_innings_commentary"
	BattingStatsPrefix = "batting_"
	BowlingStatsPrefix = "bowling_"
)

// Team stats files, one ranking per file.
const (
	TeamTotalRunsFile            = "team_total_runs.json"
	TeamMatchWinFile             = "team_match_win.json"
	TeamExtraRunConcededFile     = "team_extra_run_conceded.json"
	TeamHighestScoreFile         = "team_highest_score.json"
	TeamLowestScoreFile          = "team_lowest_score.json"
	TeamHighestWinMarginRunsFile = "team_highest_win_margin_runs.json"
	TeamLowestWinMarginRunsFile  = "team_lowest_win_margin_runs.json"
	TeamHighestWinMarginWktsFile = "team_highest_win_margin_wickets.json"
	TeamLowestWinMarginWktsFile  = "team_lowest_win_margin_wickets.json"
)

type TeamRecord struct {
	TID      Int  `json:"tid" validate:"required"`
	Title    Text `json:"title" validate:"required"`
	Abbr     Text `json:"abbr"`
	AltName  Text `json:"alt_name"`
	Type     Text `json:"type"`
	ThumbURL Text `json:"thumb_url"`
	LogoURL  Text `json:"logo_url"`
	Country  Text `json:"country"`
	Sex      Text `json:"sex"`
}

type SquadRecord struct {
	TeamID  Int            `json:"team_id"`
	Players []PlayerRecord `json:"players"`
}

type PlayerRecord struct {
	PID                 Int   `json:"pid" validate:"required"`
	Title               Text  `json:"title" validate:"required"`
	ShortName           Text  `json:"short_name"`
	FirstName           Text  `json:"first_name"`
	LastName            Text  `json:"last_name"`
	Birthdate           Text  `json:"birthdate"`
	Birthplace          Text  `json:"birthplace"`
	Country             Text  `json:"country"`
	PlayingRole         Text  `json:"playing_role"`
	BattingStyle        Text  `json:"batting_style"`
	BowlingStyle        Text  `json:"bowling_style"`
	FantasyPlayerRating Float `json:"fantasy_player_rating"`
	Nationality         Text  `json:"nationality"`
	TwitterProfile      Text  `json:"twitter_profile"`
	InstagramProfile    Text  `json:"instagram_profile"`
}

type PlayerRef struct {
	PID Int `json:"pid"`
}

type TeamRef struct {
	TID Int `json:"tid"`
}

// CareerStatsFile holds one player's career breakdown. Sections are kept as raw JSON.
type CareerStatsFile struct {
	Player  *PlayerRef      `json:"player"`
	Batting json.RawMessage `json:"batting"`
	Bowling json.RawMessage `json:"bowling"`
}

type MatchRecord struct {
	MatchID            Int                `json:"match_id" validate:"required"`
	Title              Text               `json:"title"`
	ShortTitle         Text               `json:"short_title"`
	Subtitle           Text               `json:"subtitle"`
	MatchNumber        Text               `json:"match_number"`
	Format             Int                `json:"format"`
	FormatStr          Text               `json:"format_str"`
	Status             Int                `json:"status"`
	StatusStr          Text               `json:"status_str"`
	StatusNote         Text               `json:"status_note"`
	DateStart          Text               `json:"date_start"`
	DateEnd            Text               `json:"date_end"`
	DateStartIST       Text               `json:"date_start_ist"`
	DateEndIST         Text               `json:"date_end_ist"`
	TimestampStart     Int                `json:"timestamp_start"`
	TimestampEnd       Int                `json:"timestamp_end"`
	Competition        *CompetitionRecord `json:"competition"`
	Venue              *VenueRecord       `json:"venue"`
	TeamA              MatchTeamRecord    `json:"teama"`
	TeamB              MatchTeamRecord    `json:"teamb"`
	Result             Text               `json:"result"`
	ResultType         Int                `json:"result_type"`
	WinMargin          Text               `json:"win_margin"`
	WinningTeamID      Int                `json:"winning_team_id"`
	Toss               *TossRecord        `json:"toss"`
	Umpires            Text               `json:"umpires"`
	Referee            Text               `json:"referee"`
	LatestInningNumber Int                `json:"latest_inning_number"`
	Commentary         Flag               `json:"commentary"`
	Wagon              Flag               `json:"wagon"`
}

type CompetitionRecord struct {
	CID          Int  `json:"cid" validate:"required"`
	Title        Text `json:"title"`
	Abbr         Text `json:"abbr"`
	Season       Text `json:"season"`
	TotalMatches Int  `json:"total_matches"`
	TotalTeams   Int  `json:"total_teams"`
}

type VenueRecord struct {
	VenueID  Text `json:"venue_id" validate:"required"`
	Name     Text `json:"name"`
	Location Text `json:"location"`
	Country  Text `json:"country"`
	Timezone Text `json:"timezone"`
}

type MatchTeamRecord struct {
	TeamID     Int  `json:"team_id"`
	ScoresFull Text `json:"scores_full"`
	Scores     Text `json:"scores"`
	Overs      Text `json:"overs"`
}

type TossRecord struct {
	Text     Text `json:"text"`
	Winner   Int  `json:"winner"`
	Decision Int  `json:"decision"`
}

type ScorecardFile struct {
	MatchID Int             `json:"match_id"`
	Innings []InningsRecord `json:"innings"`
}

type InningsRecord struct {
	IID            Int             `json:"iid" validate:"required"`
	Number         Int             `json:"number"`
	Name           Text            `json:"name"`
	Status         Int             `json:"status"`
	IsSuperOver    Flag            `json:"issuperover"`
	Result         Int             `json:"result"`
	BattingTeamID  Int             `json:"batting_team_id"`
	FieldingTeamID Int             `json:"fielding_team_id"`
	Scores         Text            `json:"scores"`
	ScoresFull     Text            `json:"scores_full"`
	Overs          Float           `json:"overs"`
	Batsmen        []BatsmanRecord `json:"batsmen"`
	Bowlers        []BowlerRecord  `json:"bowlers"`
	Fows           []FowRecord     `json:"fows"`
}

type BatsmanRecord struct {
	BatsmanID  Int   `json:"batsman_id"`
	Name       Text  `json:"name"`
	Runs       Int   `json:"runs"`
	BallsFaced Int   `json:"balls_faced"`
	Fours      Int   `json:"fours"`
	Sixes      Int   `json:"sixes"`
	StrikeRate Float `json:"strike_rate"`
	HowOut     Text  `json:"how_out"`
	Dismissal  Text  `json:"dismissal"`
	BowlerID   Int   `json:"bowler_id"`
	Batting    Flag  `json:"batting"`
}

type BowlerRecord struct {
	BowlerID     Int   `json:"bowler_id"`
	Name         Text  `json:"name"`
	Overs        Float `json:"overs"`
	RunsConceded Int   `json:"runs_conceded"`
	Wickets      Int   `json:"wickets"`
	Maidens      Int   `json:"maidens"`
	NoBalls      Int   `json:"noballs"`
	Wides        Int   `json:"wides"`
	Econ         Float `json:"econ"`
	DotBalls     Int   `json:"dotballs"`
}

type FowRecord struct {
	Name             Text  `json:"name"`
	Number           Text  `json:"number"`
	Runs             Int   `json:"runs"`
	ScoreAtDismissal Text  `json:"score_at_dismissal"`
	OversAtDismissal Float `json:"overs_at_dismissal"`
}

type StandingsFile struct {
	Standings []RoundStandings `json:"standings"`
}

type RoundStandings struct {
	Round     RoundRecord      `json:"round"`
	Standings []StandingRecord `json:"standings"`
}

type RoundRecord struct {
	RID  Int  `json:"rid"`
	Name Text `json:"name"`
}

type StandingRecord struct {
	TeamID              Int   `json:"team_id"`
	Played              Int   `json:"played"`
	Win                 Int   `json:"win"`
	Loss                Int   `json:"loss"`
	Draw                Int   `json:"draw"`
	NR                  Int   `json:"nr"`
	OverFor             Float `json:"overfor"`
	RunFor              Int   `json:"runfor"`
	OverAgainst         Float `json:"overagainst"`
	RunAgainst          Int   `json:"runagainst"`
	NetRR               Float `json:"netrr"`
	Points              Int   `json:"points"`
	LastFiveMatch       Text  `json:"lastfivematch"`
	LastFiveMatchResult Text  `json:"lastfivematchresult"`
	Quality             Flag  `json:"quality"`
}

// StatsFile is the ranking envelope shared by batting, bowling and team stats.
type StatsFile struct {
	Response *StatsResponse `json:"response"`
}

type StatsResponse struct {
	Stats []StatRecord `json:"stats"`
}

// Rows returns the ranking rows, or nil when the envelope is incomplete.
func (f StatsFile) Rows() []StatRecord {
	if f.Response == nil {
		return nil
	}
	return f.Response.Stats
}

// StatRecord carries the union of batting, bowling and team ranking columns.
type StatRecord struct {
	Player     *PlayerRef `json:"player"`
	Team       *TeamRef   `json:"team"`
	Matches    Int        `json:"matches"`
	Innings    Int        `json:"innings"`
	Runs       Int        `json:"runs"`
	Balls      Int        `json:"balls"`
	NotOut     Int        `json:"notout"`
	Highest    Int        `json:"highest"`
	Run100     Int        `json:"run100"`
	Run50      Int        `json:"run50"`
	Run4       Int        `json:"run4"`
	Run6       Int        `json:"run6"`
	Catches    Int        `json:"catches"`
	Stumpings  Int        `json:"stumpings"`
	Average    Float      `json:"average"`
	Strike     Float      `json:"strike"`
	Overs      Float      `json:"overs"`
	Wickets    Int        `json:"wickets"`
	Maidens    Int        `json:"maidens"`
	Econ       Float      `json:"econ"`
	BestInning Text       `json:"bestinning"`
	BestMatch  Text       `json:"bestmatch"`
	Wicket4i   Int        `json:"wicket4i"`
	Wicket5i   Int        `json:"wicket5i"`
	Win        Int        `json:"win"`
	Extras     Int        `json:"extras"`
	Score      Text       `json:"score"`
	Margin     Int        `json:"margin"`
}

// PlayerPID is zero when the row carries no player.
func (r StatRecord) PlayerPID() int64 {
	if r.Player == nil {
		return 0
	}
	return r.Player.PID.Int64()
}

// TeamTID is zero when the row carries no team.
func (r StatRecord) TeamTID() int64 {
	if r.Team == nil {
		return 0
	}
	return r.Team.TID.Int64()
}

type WagonWheelFile struct {
	Innings []WagonInnings `json:"innings"`
}

// WagonInnings holds one innings of shots. Each wagon row is
// [batsman_id, bowler_id, over, bat_run, team_run, x, y, zone_id, event_name, unique_over].
type WagonInnings struct {
	InningID Int      `json:"inning_id"`
	Wagons   [][]Cell `json:"wagons"`
}

type CommentaryFile struct {
	Inning       *InningRef         `json:"inning"`
	Commentaries []CommentaryRecord `json:"commentaries"`
}

type InningRef struct {
	IID Int `json:"iid"`
}

type CommentaryRecord struct {
	EventID    Text   `json:"event_id"`
	Event      Text   `json:"event"`
	BatsmanID  Int    `json:"batsman_id"`
	BowlerID   Int    `json:"bowler_id"`
	Over       Int    `json:"over"`
	Ball       Int    `json:"ball"`
	Commentary Text   `json:"commentary"`
	Run        Int    `json:"run"`
	WideBall   Strict `json:"wideball"`
	NoBall     Strict `json:"noball"`
	Six        Strict `json:"six"`
	Four       Strict `json:"four"`
}
