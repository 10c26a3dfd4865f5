package importer

// Table names a storage table the import writes to.
type Table string

const (
	TableTeams             Table = "teams"
	TablePlayers           Table = "players"
	TableSquads            Table = "team_squads"
	TableCareerStats       Table = "player_career_stats"
	TableCompetitions      Table = "competitions"
	TableVenues            Table = "venues"
	TableMatches           Table = "matches"
	TableInnings           Table = "innings"
	TableBatsmen           Table = "batsmen"
	TableBowlers           Table = "bowlers"
	TableFallOfWickets     Table = "fall_of_wickets"
	TableStandings         Table = "standings"
	TableBattingAggregates Table = "batting_aggregates"
	TableBowlingAggregates Table = "bowling_aggregates"
	TableTeamStats         Table = "team_stats"
	TableWagonWheels       Table = "wagon_wheels"
	TableCommentaries      Table = "commentaries"
)

// AllTables lists every import table in foreign-key order.
var AllTables = []Table{
	TableTeams,
	TablePlayers,
	TableSquads,
	TableCareerStats,
	TableCompetitions,
	TableVenues,
	TableMatches,
	TableInnings,
	TableBatsmen,
	TableBowlers,
	TableFallOfWickets,
	TableStandings,
	TableBattingAggregates,
	TableBowlingAggregates,
	TableTeamStats,
	TableWagonWheels,
	TableCommentaries,
}

// Stage is one step of the import. A stage is skipped when every gate table already holds rows.
type Stage struct {
	Name  string
	Gates []Table
}

var (
	StageTeams             = Stage{Name: "teams", Gates: []Table{TableTeams}}
	StagePlayers           = Stage{Name: "players", Gates: []Table{TablePlayers}}
	StageCareerStats       = Stage{Name: "career_stats", Gates: []Table{TableCareerStats}}
	StageCompetitionVenues = Stage{Name: "competition_venues", Gates: []Table{TableVenues, TableCompetitions}}
	StageMatches           = Stage{Name: "matches", Gates: []Table{TableMatches}}
	StageScorecards        = Stage{Name: "scorecards", Gates: []Table{TableInnings}}
	StageStandings         = Stage{Name: "standings", Gates: []Table{TableStandings}}
	StageBattingAggregates = Stage{Name: "batting_aggregates", Gates: []Table{TableBattingAggregates}}
	StageBowlingAggregates = Stage{Name: "bowling_aggregates", Gates: []Table{TableBowlingAggregates}}
	StageTeamStats         = Stage{Name: "team_stats", Gates: []Table{TableTeamStats}}
	StageWagonWheels       = Stage{Name: "wagon_wheels", Gates: []Table{TableWagonWheels}}
	StageCommentary        = Stage{Name: "commentary", Gates: []Table{TableCommentaries}}
)

// Stages is the fixed import order. Later stages resolve foreign keys written by earlier ones.
var Stages = []Stage{
	StageTeams,
	StagePlayers,
	StageCareerStats,
	StageCompetitionVenues,
	StageMatches,
	StageScorecards,
	StageStandings,
	StageBattingAggregates,
	StageBowlingAggregates,
	StageTeamStats,
	StageWagonWheels,
	StageCommentary,
}

// Counts holds row counts per table.
type Counts map[Table]int64

// InningsRef resolves a provider innings id to storage ids.
type InningsRef struct {
	ID      int64
	MatchID int64
}
