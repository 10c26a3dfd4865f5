package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sort"
	"sync"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/aggregate"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/commentary"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/competition"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/importer"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/match"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/player"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/scorecard"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/standing"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/team"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/venue"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/wagonwheel"
)

// ImportStore keeps imported rows in process memory. A transaction works on a copy
// of the state and swaps it in on success, so a failed stage leaves nothing behind.
type ImportStore struct {
	mu    sync.Mutex
	state *importState

	// MaxBulkRows rejects wagon wheel and commentary batches larger than this. Zero disables the limit.
	MaxBulkRows int
}

func NewImportStore() *ImportStore {
	return &ImportStore{state: newImportState()}
}

type lineKey struct {
	inningsID int64
	playerID  int64
}

type shotKey struct {
	inningsID int64
	sequence  int
}

type squadKey struct {
	teamID   int64
	playerID int64
	season   string
}

type standingKey struct {
	competitionID int64
	teamID        int64
	roundID       int64
}

type aggregateKey struct {
	playerID int64
	statType string
}

type importState struct {
	nextID       int64
	teams        map[int64]team.Team
	teamStats    map[int64]team.Stats
	players      map[int64]player.Player
	squads       map[squadKey]player.Squad
	careerStats  map[int64]player.CareerStats
	competitions map[int64]competition.Competition
	venues       map[string]venue.Venue
	matches      map[int64]match.Match
	innings      map[int64]scorecard.Innings
	batting      map[lineKey]scorecard.BattingLine
	bowling      map[lineKey]scorecard.BowlingLine
	fows         []scorecard.FallOfWicket
	standings    map[standingKey]standing.Standing
	battingAggs  map[aggregateKey]aggregate.Batting
	bowlingAggs  map[aggregateKey]aggregate.Bowling
	shots        map[shotKey]wagonwheel.Shot
	events       map[string]commentary.Event
}

func newImportState() *importState {
	return &importState{
		teams:        map[int64]team.Team{},
		teamStats:    map[int64]team.Stats{},
		players:      map[int64]player.Player{},
		squads:       map[squadKey]player.Squad{},
		careerStats:  map[int64]player.CareerStats{},
		competitions: map[int64]competition.Competition{},
		venues:       map[string]venue.Venue{},
		matches:      map[int64]match.Match{},
		innings:      map[int64]scorecard.Innings{},
		batting:      map[lineKey]scorecard.BattingLine{},
		bowling:      map[lineKey]scorecard.BowlingLine{},
		standings:    map[standingKey]standing.Standing{},
		battingAggs:  map[aggregateKey]aggregate.Batting{},
		bowlingAggs:  map[aggregateKey]aggregate.Bowling{},
		shots:        map[shotKey]wagonwheel.Shot{},
		events:       map[string]commentary.Event{},
	}
}

func (s *importState) clone() *importState {
	return &importState{
		nextID:       s.nextID,
		teams:        maps.Clone(s.teams),
		teamStats:    maps.Clone(s.teamStats),
		players:      maps.Clone(s.players),
		squads:       maps.Clone(s.squads),
		careerStats:  maps.Clone(s.careerStats),
		competitions: maps.Clone(s.competitions),
		venues:       maps.Clone(s.venues),
		matches:      maps.Clone(s.matches),
		innings:      maps.Clone(s.innings),
		batting:      maps.Clone(s.batting),
		bowling:      maps.Clone(s.bowling),
		fows:         slices.Clone(s.fows),
		standings:    maps.Clone(s.standings),
		battingAggs:  maps.Clone(s.battingAggs),
		bowlingAggs:  maps.Clone(s.bowlingAggs),
		shots:        maps.Clone(s.shots),
		events:       maps.Clone(s.events),
	}
}

func (s *importState) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *importState) count(table importer.Table) (int64, bool) {
	switch table {
	case importer.TableTeams:
		return int64(len(s.teams)), true
	case importer.TablePlayers:
		return int64(len(s.players)), true
	case importer.TableSquads:
		return int64(len(s.squads)), true
	case importer.TableCareerStats:
		return int64(len(s.careerStats)), true
	case importer.TableCompetitions:
		return int64(len(s.competitions)), true
	case importer.TableVenues:
		return int64(len(s.venues)), true
	case importer.TableMatches:
		return int64(len(s.matches)), true
	case importer.TableInnings:
		return int64(len(s.innings)), true
	case importer.TableBatsmen:
		return int64(len(s.batting)), true
	case importer.TableBowlers:
		return int64(len(s.bowling)), true
	case importer.TableFallOfWickets:
		return int64(len(s.fows)), true
	case importer.TableStandings:
		return int64(len(s.standings)), true
	case importer.TableBattingAggregates:
		return int64(len(s.battingAggs)), true
	case importer.TableBowlingAggregates:
		return int64(len(s.bowlingAggs)), true
	case importer.TableTeamStats:
		return int64(len(s.teamStats)), true
	case importer.TableWagonWheels:
		return int64(len(s.shots)), true
	case importer.TableCommentaries:
		return int64(len(s.events)), true
	default:
		return 0, false
	}
}

func (s *ImportStore) Count(_ context.Context, table importer.Table) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total, ok := s.state.count(table)
	if !ok {
		return 0, fmt.Errorf("unknown import table %q", table)
	}
	return total, nil
}

func (s *ImportStore) Counts(_ context.Context) (importer.Counts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(importer.Counts, len(importer.AllTables))
	for _, table := range importer.AllTables {
		out[table], _ = s.state.count(table)
	}
	return out, nil
}

func (s *ImportStore) RunInTx(ctx context.Context, fn func(ctx context.Context, w importer.Writer) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.state.clone()
	if err := fn(ctx, &importWriter{state: working, maxBulkRows: s.MaxBulkRows}); err != nil {
		return err
	}
	s.state = working
	return nil
}

// Teams returns the committed teams ordered by id.
func (s *ImportStore) Teams() []team.Team {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedByID(s.state.teams, func(t team.Team) int64 { return t.ID })
}

func (s *ImportStore) Matches() []match.Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedByID(s.state.matches, func(m match.Match) int64 { return m.ID })
}

func (s *ImportStore) Innings() []scorecard.Innings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedByID(s.state.innings, func(inn scorecard.Innings) int64 { return inn.ID })
}

func (s *ImportStore) BattingLines() []scorecard.BattingLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedByID(s.state.batting, func(l scorecard.BattingLine) int64 { return l.ID })
}

func (s *ImportStore) FallOfWickets() []scorecard.FallOfWicket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.fows)
}

func (s *ImportStore) Standings() []standing.Standing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedByID(s.state.standings, func(st standing.Standing) int64 { return st.ID })
}

func (s *ImportStore) TeamStats() []team.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedByID(s.state.teamStats, func(st team.Stats) int64 { return st.TeamID })
}

func (s *ImportStore) CareerStats() []player.CareerStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedByID(s.state.careerStats, func(c player.CareerStats) int64 { return c.PlayerID })
}

func (s *ImportStore) WagonWheels() []wagonwheel.Shot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedByID(s.state.shots, func(shot wagonwheel.Shot) int64 { return shot.ID })
}

func (s *ImportStore) Commentary() []commentary.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedByID(s.state.events, func(e commentary.Event) int64 { return e.ID })
}

func sortedByID[K comparable, V any](items map[K]V, id func(V) int64) []V {
	out := make([]V, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return id(out[i]) < id(out[j]) })
	return out
}

type importWriter struct {
	state       *importState
	maxBulkRows int
}

func (w *importWriter) UpsertTeam(_ context.Context, t team.Team) (int64, error) {
	if existing, ok := w.state.teams[t.TID]; ok {
		t.ID = existing.ID
	} else {
		t.ID = w.state.id()
	}
	w.state.teams[t.TID] = t
	return t.ID, nil
}

func (w *importWriter) TeamIDByTID(_ context.Context, tid int64) (int64, bool, error) {
	t, ok := w.state.teams[tid]
	return t.ID, ok, nil
}

func (w *importWriter) UpsertTeamStats(_ context.Context, stats team.Stats) error {
	w.state.teamStats[stats.TeamID] = stats
	return nil
}

func (w *importWriter) UpsertPlayer(_ context.Context, p player.Player) (int64, error) {
	if existing, ok := w.state.players[p.PID]; ok {
		p.ID = existing.ID
	} else {
		p.ID = w.state.id()
	}
	w.state.players[p.PID] = p
	return p.ID, nil
}

func (w *importWriter) PlayerIDByPID(_ context.Context, pid int64) (int64, bool, error) {
	p, ok := w.state.players[pid]
	return p.ID, ok, nil
}

func (w *importWriter) UpsertSquad(_ context.Context, squad player.Squad) error {
	key := squadKey{teamID: squad.TeamID, playerID: squad.PlayerID, season: squad.Season}
	if _, ok := w.state.squads[key]; ok {
		return nil
	}
	squad.ID = w.state.id()
	w.state.squads[key] = squad
	return nil
}

func (w *importWriter) UpsertCareerStats(_ context.Context, stats player.CareerStats) error {
	w.state.careerStats[stats.PlayerID] = stats
	return nil
}

func (w *importWriter) UpsertCompetition(_ context.Context, c competition.Competition) (int64, error) {
	if existing, ok := w.state.competitions[c.CID]; ok {
		c.ID = existing.ID
	} else {
		c.ID = w.state.id()
	}
	w.state.competitions[c.CID] = c
	return c.ID, nil
}

func (w *importWriter) CompetitionIDByCID(_ context.Context, cid int64) (int64, bool, error) {
	c, ok := w.state.competitions[cid]
	return c.ID, ok, nil
}

func (w *importWriter) FirstCompetitionID(_ context.Context) (int64, bool, error) {
	var first int64
	for _, c := range w.state.competitions {
		if first == 0 || c.ID < first {
			first = c.ID
		}
	}
	return first, first != 0, nil
}

func (w *importWriter) UpsertVenue(_ context.Context, v venue.Venue) (int64, error) {
	if existing, ok := w.state.venues[v.VenueID]; ok {
		v.ID = existing.ID
	} else {
		v.ID = w.state.id()
	}
	w.state.venues[v.VenueID] = v
	return v.ID, nil
}

func (w *importWriter) VenueIDByVenueID(_ context.Context, venueID string) (int64, bool, error) {
	v, ok := w.state.venues[venueID]
	return v.ID, ok, nil
}

func (w *importWriter) UpsertMatch(_ context.Context, m match.Match) (int64, error) {
	if existing, ok := w.state.matches[m.MatchID]; ok {
		m.ID = existing.ID
	} else {
		m.ID = w.state.id()
	}
	w.state.matches[m.MatchID] = m
	return m.ID, nil
}

func (w *importWriter) MatchIDByMatchID(_ context.Context, matchID int64) (int64, bool, error) {
	m, ok := w.state.matches[matchID]
	return m.ID, ok, nil
}

func (w *importWriter) UpsertInnings(_ context.Context, inn scorecard.Innings) (int64, error) {
	if existing, ok := w.state.innings[inn.IID]; ok {
		inn.ID = existing.ID
	} else {
		inn.ID = w.state.id()
	}
	w.state.innings[inn.IID] = inn
	return inn.ID, nil
}

func (w *importWriter) UpsertBattingLine(_ context.Context, line scorecard.BattingLine) error {
	key := lineKey{inningsID: line.InningsID, playerID: line.PlayerID}
	if existing, ok := w.state.batting[key]; ok {
		line.ID = existing.ID
	} else {
		line.ID = w.state.id()
	}
	w.state.batting[key] = line
	return nil
}

func (w *importWriter) UpsertBowlingLine(_ context.Context, line scorecard.BowlingLine) error {
	key := lineKey{inningsID: line.InningsID, playerID: line.PlayerID}
	if existing, ok := w.state.bowling[key]; ok {
		line.ID = existing.ID
	} else {
		line.ID = w.state.id()
	}
	w.state.bowling[key] = line
	return nil
}

func (w *importWriter) InsertFallOfWicket(_ context.Context, fow scorecard.FallOfWicket) error {
	fow.ID = w.state.id()
	w.state.fows = append(w.state.fows, fow)
	return nil
}

func (w *importWriter) InningsRefs(_ context.Context) (map[int64]importer.InningsRef, error) {
	out := make(map[int64]importer.InningsRef, len(w.state.innings))
	for iid, inn := range w.state.innings {
		out[iid] = importer.InningsRef{ID: inn.ID, MatchID: inn.MatchID}
	}
	return out, nil
}

func (w *importWriter) UpsertStanding(_ context.Context, s standing.Standing) error {
	key := standingKey{competitionID: s.CompetitionID, teamID: s.TeamID, roundID: s.RoundID}
	if existing, ok := w.state.standings[key]; ok {
		s.ID = existing.ID
	} else {
		s.ID = w.state.id()
	}
	w.state.standings[key] = s
	return nil
}

func (w *importWriter) UpsertBattingAggregate(_ context.Context, a aggregate.Batting) error {
	key := aggregateKey{playerID: a.PlayerID, statType: a.StatType}
	if existing, ok := w.state.battingAggs[key]; ok {
		a.ID = existing.ID
	} else {
		a.ID = w.state.id()
	}
	w.state.battingAggs[key] = a
	return nil
}

func (w *importWriter) UpsertBowlingAggregate(_ context.Context, a aggregate.Bowling) error {
	key := aggregateKey{playerID: a.PlayerID, statType: a.StatType}
	if existing, ok := w.state.bowlingAggs[key]; ok {
		a.ID = existing.ID
	} else {
		a.ID = w.state.id()
	}
	w.state.bowlingAggs[key] = a
	return nil
}

func (w *importWriter) InsertWagonWheels(_ context.Context, shots []wagonwheel.Shot) (int64, error) {
	if w.maxBulkRows > 0 && len(shots) > w.maxBulkRows {
		return 0, fmt.Errorf("wagon wheel batch of %d rows exceeds %d", len(shots), w.maxBulkRows)
	}

	var written int64
	for _, shot := range shots {
		key := shotKey{inningsID: shot.InningsID, sequence: shot.Sequence}
		if _, ok := w.state.shots[key]; ok {
			continue
		}
		shot.ID = w.state.id()
		w.state.shots[key] = shot
		written++
	}
	return written, nil
}

func (w *importWriter) InsertCommentary(_ context.Context, events []commentary.Event) (int64, error) {
	if w.maxBulkRows > 0 && len(events) > w.maxBulkRows {
		return 0, fmt.Errorf("commentary batch of %d rows exceeds %d", len(events), w.maxBulkRows)
	}

	var written int64
	for _, event := range events {
		if _, ok := w.state.events[event.EventID]; ok {
			continue
		}
		event.ID = w.state.id()
		w.state.events[event.EventID] = event
		written++
	}
	return written, nil
}
