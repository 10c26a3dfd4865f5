package fixturefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sugerdarco/IPL-Data-Platform/internal/platform/logging"
)

func writeFixture(t *testing.T, root, rel, body string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}

func TestReaderReadJSONLenientScalars(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFixture(t, root, TeamsFile, `[
		{"tid": "17", "title": "Chennai Super Kings", "abbr": "CSK"},
		{"tid": 25.0, "title": 123, "sex": null}
	]`)

	reader := NewReader(root, logging.NewNop())
	var teams []TeamRecord
	if !reader.ReadJSON(TeamsFile, &teams) {
		t.Fatalf("expected teams file to decode")
	}
	if len(teams) != 2 {
		t.Fatalf("unexpected team count: %d", len(teams))
	}
	if teams[0].TID != 17 || teams[0].Abbr != "CSK" {
		t.Fatalf("unexpected first team: %+v", teams[0])
	}
	if teams[1].TID != 25 || teams[1].Title != "123" || teams[1].Sex != "" {
		t.Fatalf("unexpected second team: %+v", teams[1])
	}
}

func TestReaderReadJSONMissingAndMalformed(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFixture(t, root, SquadsFile, `{not json`)

	reader := NewReader(root, logging.NewNop())
	var squads []SquadRecord
	if reader.ReadJSON(SquadsFile, &squads) {
		t.Fatalf("expected malformed file to fail")
	}
	var matches []MatchRecord
	if reader.ReadJSON(MatchesFile, &matches) {
		t.Fatalf("expected missing file to fail")
	}
}

func TestReaderListSortsJSONFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFixture(t, root, "scorecards/b.json", `{}`)
	writeFixture(t, root, "scorecards/a.json", `{}`)
	writeFixture(t, root, "scorecards/notes.txt", `x`)

	reader := NewReader(root, logging.NewNop())
	files := reader.List(ScorecardsDir)
	if len(files) != 2 || files[0] != "a.json" || files[1] != "b.json" {
		t.Fatalf("unexpected files: %v", files)
	}
	if got := reader.List(CommentaryDir); len(got) != 0 {
		t.Fatalf("expected empty listing for missing dir, got %v", got)
	}
}

func TestReaderValid(t *testing.T) {
	t.Parallel()

	reader := NewReader(t.TempDir(), logging.NewNop())
	if err := reader.Valid(TeamRecord{TID: 1, Title: "Gujarat Titans"}); err != nil {
		t.Fatalf("expected valid team, got %v", err)
	}
	if err := reader.Valid(TeamRecord{Title: "No Id"}); err == nil {
		t.Fatalf("expected missing tid to be rejected")
	}
}

func TestScorecardDecoding(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFixture(t, root, "scorecards/1.json", `{
		"match_id": 5001,
		"innings": [{
			"iid": 9001, "number": 1, "issuperover": "false", "scores": "189/5", "overs": "20",
			"batting_team_id": 1, "fielding_team_id": "2",
			"batsmen": [{"batsman_id": "77", "runs": "45", "strike_rate": "150.00", "batting": "true", "bowler_id": ""}],
			"bowlers": [{"bowler_id": 88, "overs": 4, "econ": "7.25", "dotballs": null}],
			"fows": [{"name": "A", "number": 1, "score_at_dismissal": 34, "overs_at_dismissal": "4.3"}]
		}]
	}`)

	var file ScorecardFile
	if !NewReader(root, logging.NewNop()).ReadJSON("scorecards/1.json", &file) {
		t.Fatalf("expected scorecard to decode")
	}
	inn := file.Innings[0]
	if inn.IsSuperOver || inn.FieldingTeamID != 2 || inn.Overs != 20 {
		t.Fatalf("unexpected innings: %+v", inn)
	}
	bat := inn.Batsmen[0]
	if bat.BatsmanID != 77 || bat.Runs != 45 || bat.StrikeRate != 150 || !bat.Batting || bat.BowlerID != 0 {
		t.Fatalf("unexpected batsman: %+v", bat)
	}
	if inn.Bowlers[0].Econ != 7.25 || inn.Bowlers[0].DotBalls != 0 {
		t.Fatalf("unexpected bowler: %+v", inn.Bowlers[0])
	}
	fow := inn.Fows[0]
	if fow.ScoreAtDismissal != "34" || fow.Number != "1" || fow.OversAtDismissal != 4.3 {
		t.Fatalf("unexpected fow: %+v", fow)
	}
}

func TestWagonAndCommentaryDecoding(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFixture(t, root, "match_wagon_wheel/1.json", `{"innings":[{"inning_id":9001,"wagons":[["77","88","0.3",4,4,120.5,80,5,"four","0.3"]]}]}`)
	writeFixture(t, root, "match_innings_commentary/1.json", `{"inning":{"iid":"9001"},"commentaries":[{"event":"wicket","over":"3","ball":2,"six":"true","four":true}]}`)

	reader := NewReader(root, logging.NewNop())
	var wagons WagonWheelFile
	if !reader.ReadJSON("match_wagon_wheel/1.json", &wagons) {
		t.Fatalf("expected wagon file to decode")
	}
	row := wagons.Innings[0].Wagons[0]
	if row[0].Int() != 77 || row[2].Float() != 0.3 || row[5].Float() != 120.5 || row[8].Text() != "four" {
		t.Fatalf("unexpected wagon row cells")
	}

	var comm CommentaryFile
	if !reader.ReadJSON("match_innings_commentary/1.json", &comm) {
		t.Fatalf("expected commentary file to decode")
	}
	if comm.Inning == nil || comm.Inning.IID != 9001 {
		t.Fatalf("unexpected inning ref: %+v", comm.Inning)
	}
	rec := comm.Commentaries[0]
	if rec.Over != 3 || rec.Six || !rec.Four {
		t.Fatalf("strict flags must only accept literal true: %+v", rec)
	}
}
