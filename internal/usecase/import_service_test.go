package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/importer"
	"github.com/sugerdarco/IPL-Data-Platform/internal/infrastructure/fixturefile"
	"github.com/sugerdarco/IPL-Data-Platform/internal/infrastructure/repository/memory"
	"github.com/sugerdarco/IPL-Data-Platform/internal/platform/logging"
)

var importFixtures = map[string]string{
	"teams/teams.json": `[
		{"tid": 1, "title": "Chennai Super Kings", "abbr": "CSK"},
		{"tid": 2, "title": "Kolkata Knight Riders", "abbr": "KKR"},
		{"tid": 0, "title": "No id"}
	]`,
	"squads/squads.json": `[
		{"team_id": 1, "players": [{"pid": 101, "title": "MS Dhoni", "short_name": "MS Dhoni", "playing_role": "wk"}]},
		{"team_id": "2", "players": [{"pid": 201, "title": "Umesh Yadav", "playing_role": "bowl"}]},
		{"team_id": 99, "players": [{"pid": 999, "title": "Ghost"}]}
	]`,
	"player_career_stats/101.json": `{"player": {"pid": 101}, "batting": {"t20": {"runs": "4978"}}}`,
	"player_career_stats/555.json": `{"player": {"pid": 555}}`,
	"matches/matches.json": `[{
		"match_id": 5001,
		"title": "Chennai Super Kings vs Kolkata Knight Riders",
		"short_title": "CSK vs KKR",
		"status": 2,
		"date_start": "2022-03-26 14:00:00",
		"competition": {"cid": 128, "title": "Indian Premier League", "season": "2022", "total_matches": "74", "total_teams": "10"},
		"venue": {"venue_id": 56, "name": "Wankhede Stadium", "location": "Mumbai"},
		"teama": {"team_id": 1, "scores": "131/5"},
		"teamb": {"team_id": 2, "scores": "133/4"},
		"winning_team_id": 2,
		"toss": {"text": "KKR elected to field", "winner": 2, "decision": 2},
		"commentary": 1,
		"wagon": "1"
	}]`,
	"scorecards/5001.json": `{
		"match_id": 5001,
		"innings": [{
			"iid": 9001, "number": 1, "name": "CSK inning",
			"batting_team_id": 1, "fielding_team_id": 2,
			"scores": "131/5", "overs": "20",
			"batsmen": [{"batsman_id": 101, "name": "MS Dhoni", "runs": "50", "balls_faced": 38, "bowler_id": 0, "batting": "true"}],
			"bowlers": [{"bowler_id": 201, "name": "Umesh Yadav", "overs": 4, "runs_conceded": 20, "wickets": 2, "dotballs": "0"}],
			"fows": [{"name": "Ruturaj Gaikwad", "number": "1", "runs": 0, "score_at_dismissal": "2", "overs_at_dismissal": "0.2"}]
		}]
	}`,
	"standings/standings.json": `{"standings": [{"round": {"rid": 70, "name": "Regular"}, "standings": [
		{"team_id": 1, "played": 14, "win": 4, "loss": 10, "points": 8, "netrr": "-0.203", "quality": "false"},
		{"team_id": 2, "played": 14, "win": 6, "loss": 8, "points": 12, "netrr": "0", "quality": "true"}
	]}]}`,
	"batting_stats/batting_most_runs.json": `{"response": {"stats": [
		{"player": {"pid": 101}, "team": {"tid": 1}, "runs": 232, "average": "33.14", "highest": "50"},
		{"player": {"pid": 4040}, "team": {"tid": 1}, "runs": 10}
	]}}`,
	"bowling_stats/bowling_top_wicket_takers.json": `{"response": {"stats": [
		{"player": {"pid": 201}, "team": {"tid": 2}, "wickets": 16, "econ": "7.06"}
	]}}`,
	"team_stats/team_total_runs.json":              `{"response": {"stats": [{"team": {"tid": 1}, "runs": 2100, "wickets": 80}]}}`,
	"team_stats/team_match_win.json":               `{"response": {"stats": [{"team": {"tid": 1}, "win": 4}, {"team": {"tid": 2}, "win": 6}]}}`,
	"team_stats/team_highest_win_margin_runs.json": `{"response": {"stats": [{"team": {"tid": 1}, "margin": "23 runs"}]}}`,
	"match_wagon_wheel/5001.json": `{"innings": [
		{"inning_id": 9001, "wagons": [
			[101, 201, "0.1", 4, 4, "120.5", "80.1", 0, "four", "0.1"],
			[101, 201, "0.2", 1, 1, 10, 20, 12, "run", "0.2"]
		]},
		{"inning_id": 1234, "wagons": [[1, 2, 3, 4, 5, 6, 7, 0, "x", 1]]}
	]}`,
	"match_innings_commentary/9001.json": `{"inning": {"iid": 9001}, "commentaries": [
		{"event": "ball", "batsman_id": 101, "bowler_id": 201, "over": 0, "ball": 1, "run": 4, "four": true},
		{"event": "wicket", "batsman_id": "0", "over": 0, "ball": 2, "commentary": "Gone!", "six": "true"}
	]}`,
}

func writeImportFixtures(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for rel, body := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("create fixture dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write fixture %s: %v", rel, err)
		}
	}
	return root
}

func newImportServiceForTest(t *testing.T, store importer.Store, files map[string]string, cfg ImportConfig) *ImportService {
	t.Helper()

	root := writeImportFixtures(t, files)
	if cfg.SquadSeason == "" {
		cfg.SquadSeason = "2022"
	}
	return NewImportService(store, fixturefile.NewReader(root, logging.NewNop()), cfg, logging.NewNop())
}

func TestImportService_Run_ImportsEveryStage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.NewImportStore()
	service := newImportServiceForTest(t, store, importFixtures, ImportConfig{})

	report, err := service.Run(ctx)
	if err != nil {
		t.Fatalf("run import: %v", err)
	}
	if len(report.Stages) != len(importer.Stages) {
		t.Fatalf("unexpected stage results: %d", len(report.Stages))
	}

	want := importer.Counts{
		importer.TableTeams:             2,
		importer.TablePlayers:           2,
		importer.TableSquads:            2,
		importer.TableCareerStats:       1,
		importer.TableCompetitions:      1,
		importer.TableVenues:            1,
		importer.TableMatches:           1,
		importer.TableInnings:           1,
		importer.TableBatsmen:           1,
		importer.TableBowlers:           1,
		importer.TableFallOfWickets:     1,
		importer.TableStandings:         2,
		importer.TableBattingAggregates: 1,
		importer.TableBowlingAggregates: 1,
		importer.TableTeamStats:         1,
		importer.TableWagonWheels:       2,
		importer.TableCommentaries:      2,
	}
	for table, n := range want {
		if report.Counts[table] != n {
			t.Fatalf("unexpected %s count: got=%d want=%d", table, report.Counts[table], n)
		}
	}

	matches := store.Matches()
	if matches[0].WinningTeamID == nil || matches[0].TossWinnerID == nil {
		t.Fatalf("expected winner and toss winner to resolve")
	}
	if !matches[0].HasCommentary || !matches[0].HasWagon {
		t.Fatalf("expected commentary and wagon flags")
	}
	if !matches[0].DateStart.Equal(time.Date(2022, 3, 26, 14, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date start: %v", matches[0].DateStart)
	}

	innings := store.Innings()
	if innings[0].Runs != 131 || innings[0].Wickets != 5 {
		t.Fatalf("unexpected innings score: %d/%d", innings[0].Runs, innings[0].Wickets)
	}
	lines := store.BattingLines()
	if lines[0].Position != 1 || lines[0].BowlerID != nil || !lines[0].IsBatting {
		t.Fatalf("unexpected batting line: %+v", lines[0])
	}
	if fows := store.FallOfWickets(); fows[0].Score != "2/1" {
		t.Fatalf("unexpected fall of wicket score: %q", fows[0].Score)
	}

	for _, st := range store.Standings() {
		if st.Points == 12 && (st.NetRunRate != nil || !st.Qualified) {
			t.Fatalf("expected zero net run rate as NULL and qualified flag: %+v", st)
		}
	}

	stats := store.TeamStats()
	if stats[0].MatchesWon != 4 || stats[0].HighestWinMarginRuns == nil || *stats[0].HighestWinMarginRuns != 23 {
		t.Fatalf("unexpected team stats: %+v", stats[0])
	}
	if stats[0].LowestWinMarginRuns != nil {
		t.Fatalf("expected missing margin file to leave NULL")
	}

	career := store.CareerStats()
	if string(career[0].Bowling) != "{}" {
		t.Fatalf("expected missing bowling section to default to {}, got %s", career[0].Bowling)
	}

	shots := store.WagonWheels()
	if shots[0].ZoneName == nil || *shots[0].ZoneName != "Fine Leg" || shots[1].ZoneName != nil {
		t.Fatalf("unexpected zone names: %v %v", shots[0].ZoneName, shots[1].ZoneName)
	}

	events := store.Commentary()
	if events[0].EventID != "9001_0" || events[1].EventID != "9001_1" {
		t.Fatalf("unexpected synthesized event ids: %s %s", events[0].EventID, events[1].EventID)
	}
	if !events[1].IsWicket || events[1].BatsmanID != nil || events[1].IsSix {
		t.Fatalf("unexpected wicket event: %+v", events[1])
	}
	if !events[0].IsFour || events[0].IsWicket {
		t.Fatalf("unexpected four event: %+v", events[0])
	}
}

func TestImportService_Run_Idempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.NewImportStore()
	service := newImportServiceForTest(t, store, importFixtures, ImportConfig{})

	first, err := service.Run(ctx)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := service.Run(ctx)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	for _, table := range importer.AllTables {
		if first.Counts[table] != second.Counts[table] {
			t.Fatalf("count of %s changed: %d -> %d", table, first.Counts[table], second.Counts[table])
		}
	}
	for _, stage := range second.Stages {
		if !stage.Skipped {
			t.Fatalf("expected stage %s to be skipped on second run", stage.Stage)
		}
	}
}

func TestImportService_Run_ScorecardsWithoutMatches(t *testing.T) {
	t.Parallel()

	files := make(map[string]string, len(importFixtures))
	for rel, body := range importFixtures {
		if rel == "matches/matches.json" {
			continue
		}
		files[rel] = body
	}

	store := memory.NewImportStore()
	service := newImportServiceForTest(t, store, files, ImportConfig{})

	report, err := service.Run(context.Background())
	if err != nil {
		t.Fatalf("run import: %v", err)
	}
	if report.Counts[importer.TableInnings] != 0 {
		t.Fatalf("expected no innings without matches, got %d", report.Counts[importer.TableInnings])
	}
	if report.Counts[importer.TableWagonWheels] != 0 || report.Counts[importer.TableCommentaries] != 0 {
		t.Fatalf("expected no innings-scoped rows without innings")
	}
}

func TestImportService_Run_BulkFallback(t *testing.T) {
	t.Parallel()

	store := memory.NewImportStore()
	store.MaxBulkRows = 1
	service := newImportServiceForTest(t, store, importFixtures, ImportConfig{WagonChunkSize: 1, CommentaryChunkSize: 1})

	report, err := service.Run(context.Background())
	if err != nil {
		t.Fatalf("run import: %v", err)
	}
	if report.Counts[importer.TableWagonWheels] != 2 {
		t.Fatalf("expected chunked wagon wheel load, got %d", report.Counts[importer.TableWagonWheels])
	}
	if report.Counts[importer.TableCommentaries] != 2 {
		t.Fatalf("expected chunked commentary load, got %d", report.Counts[importer.TableCommentaries])
	}
}

type failingImportStore struct {
	*memory.ImportStore
	failOn int
	calls  int
}

func (s *failingImportStore) RunInTx(ctx context.Context, fn func(ctx context.Context, w importer.Writer) error) error {
	s.calls++
	if s.calls == s.failOn {
		return s.ImportStore.RunInTx(ctx, func(ctx context.Context, w importer.Writer) error {
			if err := fn(ctx, w); err != nil {
				return err
			}
			return errors.New("connection reset")
		})
	}
	return s.ImportStore.RunInTx(ctx, fn)
}

func TestImportService_Run_FailedStageRollsBackAndReruns(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	base := memory.NewImportStore()
	store := &failingImportStore{ImportStore: base, failOn: 5}
	root := writeImportFixtures(t, importFixtures)
	reader := fixturefile.NewReader(root, logging.NewNop())

	service := NewImportService(store, reader, ImportConfig{SquadSeason: "2022"}, logging.NewNop())
	report, err := service.Run(ctx)
	if err == nil {
		t.Fatalf("expected aborted run")
	}
	if len(report.Stages) != 5 || report.Stages[4].Stage != importer.StageMatches.Name {
		t.Fatalf("expected run to stop at matches stage, got %+v", report.Stages)
	}
	if n, _ := base.Count(ctx, importer.TableMatches); n != 0 {
		t.Fatalf("expected failed stage rolled back, got %d matches", n)
	}

	rerun := NewImportService(base, reader, ImportConfig{SquadSeason: "2022"}, logging.NewNop())
	report, err = rerun.Run(ctx)
	if err != nil {
		t.Fatalf("rerun import: %v", err)
	}
	if report.Stages[4].Skipped || report.Counts[importer.TableMatches] != 1 {
		t.Fatalf("expected matches stage to run again, got %+v", report.Stages[4])
	}
	if !report.Stages[0].Skipped {
		t.Fatalf("expected committed teams stage to be skipped")
	}
}
