package querybuilder

import (
	"strings"
	"testing"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "title").
		From("teams").
		Where(Eq("sex", "male"), Or(ILike("title", "kings"), ILike("abbr", "kings"))).
		OrderBy("title ASC").
		Limit(10).
		Offset(20).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, title FROM teams WHERE sex = $1 AND (title ILIKE $2 OR abbr ILIKE $3) ORDER BY title ASC LIMIT 10 OFFSET 20"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "male" || args[1] != "%kings%" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderJoinNumbersArgsBeforeWhere(t *testing.T) {
	query, args, err := Select("p.id").
		From("players p").
		Join("team_squads s ON s.player_id = p.id AND s.season = ?", "2022").
		Where(Eq("s.team_id", int64(7))).
		ToSQL()
	if err != nil {
		t.Fatalf("build join query: %v", err)
	}

	wantQuery := "SELECT p.id FROM players p JOIN team_squads s ON s.player_id = p.id AND s.season = $1 WHERE s.team_id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "2022" || args[1] != int64(7) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderDistinctOn(t *testing.T) {
	query, _, err := Select("*").
		DistinctOn("team_id").
		From("standings").
		OrderBy("team_id", "round_id DESC").
		ToSQL()
	if err != nil {
		t.Fatalf("build distinct query: %v", err)
	}

	wantQuery := "SELECT DISTINCT ON (team_id) * FROM standings ORDER BY team_id, round_id DESC"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
}

func TestSelectBuilderCountDropsPaging(t *testing.T) {
	builder := Select("id").
		From("matches").
		Where(Or(Eq("team_a_id", int64(3)), Eq("team_b_id", int64(3)))).
		OrderBy("date_start DESC").
		Limit(10).
		Offset(10)

	query, args, err := builder.Count()
	if err != nil {
		t.Fatalf("build count query: %v", err)
	}

	wantQuery := "SELECT COUNT(*) FROM matches WHERE (team_a_id = $1 OR team_b_id = $2)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInInt64Empty(t *testing.T) {
	query, args, err := Select("id").From("innings").Where(InInt64("match_id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build in query: %v", err)
	}
	if query != "SELECT id FROM innings WHERE 1=0" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestILikeEscapesWildcards(t *testing.T) {
	_, args, err := Select("id").From("players").Where(ILike("title", "50%_x")).ToSQL()
	if err != nil {
		t.Fatalf("build ilike query: %v", err)
	}
	if args[0] != `%50\%\_x%` {
		t.Fatalf("unexpected pattern: %v", args[0])
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("teams").
		Columns("tid", "title").
		Values(int64(1), "Mumbai").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO teams (tid, title) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != int64(1) || args[1] != "Mumbai" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilderRejectsTooManyParams(t *testing.T) {
	builder := InsertInto("commentaries").Columns("a", "b")
	for i := 0; i < MaxBindParams/2+1; i++ {
		builder.Values(i, i)
	}
	if _, _, err := builder.ToSQL(); err == nil {
		t.Fatalf("expected bind parameter limit error")
	}
}

type testShot struct {
	ID        int64  `db:"id,readonly"`
	InningsID int64  `db:"innings_id"`
	Sequence  int    `db:"sequence"`
	Zone      string `db:"zone_name"`
	Ignored   string `db:"-"`
}

func TestInsertModelsSkipsReadonlyColumns(t *testing.T) {
	rows := []testShot{
		{ID: 9, InningsID: 1, Sequence: 0, Zone: "Cover"},
		{ID: 10, InningsID: 1, Sequence: 1, Zone: "Point"},
	}

	query, args, err := InsertModels("wagon_wheels", rows, "ON CONFLICT DO NOTHING")
	if err != nil {
		t.Fatalf("build insert models: %v", err)
	}

	wantQuery := "INSERT INTO wagon_wheels (innings_id, sequence, zone_name) VALUES ($1, $2, $3), ($4, $5, $6) ON CONFLICT DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 6 || args[5] != "Point" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModelsRequiresRows(t *testing.T) {
	_, _, err := InsertModels("wagon_wheels", []testShot{}, "")
	if err == nil || !strings.Contains(err.Error(), "required") {
		t.Fatalf("expected required error, got %v", err)
	}
}

func TestColumns(t *testing.T) {
	cols, err := Columns(testShot{})
	if err != nil {
		t.Fatalf("columns: %v", err)
	}
	if strings.Join(cols, ",") != "innings_id,sequence,zone_name" {
		t.Fatalf("unexpected columns: %v", cols)
	}
}
