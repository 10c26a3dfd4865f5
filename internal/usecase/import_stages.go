package usecase

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

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
	"github.com/sugerdarco/IPL-Data-Platform/internal/infrastructure/fixturefile"
)

const fixtureDateLayout = "2006-01-02 15:04:05"

var emptyJSONObject = []byte("{}")

func (s *ImportService) stages() []importStage {
	return []importStage{
		{stage: importer.StageTeams, load: s.loadTeams},
		{stage: importer.StagePlayers, load: s.loadPlayers},
		{stage: importer.StageCareerStats, load: s.loadCareerStats},
		{stage: importer.StageCompetitionVenues, load: s.loadCompetitionVenues},
		{stage: importer.StageMatches, load: s.loadMatches},
		{stage: importer.StageScorecards, load: s.loadScorecards},
		{stage: importer.StageStandings, load: s.loadStandings},
		{stage: importer.StageBattingAggregates, load: s.loadBattingAggregates},
		{stage: importer.StageBowlingAggregates, load: s.loadBowlingAggregates},
		{stage: importer.StageTeamStats, load: s.loadTeamStats},
		{stage: importer.StageWagonWheels, load: s.loadWagonWheels},
		{stage: importer.StageCommentary, load: s.loadCommentary},
	}
}

func (s *ImportService) loadTeams(ctx context.Context, w importer.Writer, result *StageResult) error {
	var records []fixturefile.TeamRecord
	if !s.source.ReadJSON(fixturefile.TeamsFile, &records) {
		return nil
	}

	for _, rec := range records {
		if err := s.source.Valid(rec); err != nil {
			s.logger.WarnContext(ctx, "skip team record", "tid", rec.TID.Int64(), "error", err)
			result.Dropped++
			continue
		}
		_, err := w.UpsertTeam(ctx, team.Team{
			TID:      rec.TID.Int64(),
			Title:    rec.Title.String(),
			Abbr:     rec.Abbr.String(),
			AltName:  rec.AltName.String(),
			Type:     rec.Type.String(),
			ThumbURL: rec.ThumbURL.String(),
			LogoURL:  rec.LogoURL.String(),
			Country:  rec.Country.String(),
			Sex:      rec.Sex.String(),
		})
		if err != nil {
			return errors.Wrapf(err, "upsert team tid=%d", rec.TID.Int64())
		}
		result.Written++
	}
	return nil
}

func (s *ImportService) loadPlayers(ctx context.Context, w importer.Writer, result *StageResult) error {
	var squads []fixturefile.SquadRecord
	if !s.source.ReadJSON(fixturefile.SquadsFile, &squads) {
		return nil
	}

	for _, squad := range squads {
		teamID, ok, err := w.TeamIDByTID(ctx, squad.TeamID.Int64())
		if err != nil {
			return errors.Wrapf(err, "resolve squad team tid=%d", squad.TeamID.Int64())
		}
		if !ok {
			s.logger.WarnContext(ctx, "skip squad, team not found", "tid", squad.TeamID.Int64())
			result.Dropped += int64(len(squad.Players))
			continue
		}

		for _, rec := range squad.Players {
			if err := s.source.Valid(rec); err != nil {
				s.logger.WarnContext(ctx, "skip player record", "pid", rec.PID.Int64(), "error", err)
				result.Dropped++
				continue
			}
			playerID, err := w.UpsertPlayer(ctx, player.Player{
				PID:              rec.PID.Int64(),
				Title:            rec.Title.String(),
				ShortName:        rec.ShortName.String(),
				FirstName:        rec.FirstName.String(),
				LastName:         rec.LastName.String(),
				Birthdate:        rec.Birthdate.String(),
				Birthplace:       rec.Birthplace.String(),
				Country:          rec.Country.String(),
				PlayingRole:      rec.PlayingRole.String(),
				BattingStyle:     rec.BattingStyle.String(),
				BowlingStyle:     rec.BowlingStyle.String(),
				Nationality:      rec.Nationality.String(),
				TwitterProfile:   rec.TwitterProfile.String(),
				InstagramProfile: rec.InstagramProfile.String(),
				FantasyRating:    rec.FantasyPlayerRating.Float64(),
			})
			if err != nil {
				return errors.Wrapf(err, "upsert player pid=%d", rec.PID.Int64())
			}
			if err := w.UpsertSquad(ctx, player.Squad{
				TeamID:   teamID,
				PlayerID: playerID,
				Season:   s.cfg.SquadSeason,
			}); err != nil {
				return errors.Wrapf(err, "upsert squad pid=%d", rec.PID.Int64())
			}
			result.Written++
		}
	}
	return nil
}

func (s *ImportService) loadCareerStats(ctx context.Context, w importer.Writer, result *StageResult) error {
	for _, name := range s.source.List(fixturefile.CareerStatsDir) {
		var file fixturefile.CareerStatsFile
		if !s.source.ReadJSON(path.Join(fixturefile.CareerStatsDir, name), &file) {
			result.Dropped++
			continue
		}
		if file.Player == nil || file.Player.PID.Int64() <= 0 {
			s.logger.WarnContext(ctx, "skip career stats without player", "file", name)
			result.Dropped++
			continue
		}

		pid := file.Player.PID.Int64()
		playerID, ok, err := w.PlayerIDByPID(ctx, pid)
		if err != nil {
			return errors.Wrapf(err, "resolve career stats player pid=%d", pid)
		}
		if !ok {
			s.logger.WarnContext(ctx, "skip career stats, player not found", "pid", pid)
			result.Dropped++
			continue
		}

		if err := w.UpsertCareerStats(ctx, player.CareerStats{
			PlayerID: playerID,
			Batting:  jsonObjectOrEmpty(file.Batting),
			Bowling:  jsonObjectOrEmpty(file.Bowling),
		}); err != nil {
			return errors.Wrapf(err, "upsert career stats pid=%d", pid)
		}
		result.Written++
	}
	return nil
}

func (s *ImportService) loadCompetitionVenues(ctx context.Context, w importer.Writer, result *StageResult) error {
	var matches []fixturefile.MatchRecord
	if !s.source.ReadJSON(fixturefile.MatchesFile, &matches) {
		return nil
	}

	for _, rec := range matches {
		if rec.Competition == nil {
			continue
		}
		c := rec.Competition
		if err := s.source.Valid(c); err != nil {
			s.logger.WarnContext(ctx, "skip competition record", "match_id", rec.MatchID.Int64(), "error", err)
			break
		}
		if _, err := w.UpsertCompetition(ctx, competition.Competition{
			CID:          c.CID.Int64(),
			Title:        c.Title.String(),
			Abbr:         c.Abbr.String(),
			Season:       c.Season.String(),
			TotalMatches: c.TotalMatches.Int(),
			TotalTeams:   c.TotalTeams.Int(),
		}); err != nil {
			return errors.Wrapf(err, "upsert competition cid=%d", c.CID.Int64())
		}
		result.Written++
		break
	}

	seen := make(map[string]struct{}, 16)
	for _, rec := range matches {
		if rec.Venue == nil {
			continue
		}
		v := rec.Venue
		if err := s.source.Valid(v); err != nil {
			s.logger.WarnContext(ctx, "skip venue record", "match_id", rec.MatchID.Int64(), "error", err)
			result.Dropped++
			continue
		}
		venueID := v.VenueID.String()
		if _, ok := seen[venueID]; ok {
			continue
		}
		seen[venueID] = struct{}{}

		if _, err := w.UpsertVenue(ctx, venue.Venue{
			VenueID:  venueID,
			Name:     v.Name.String(),
			Location: v.Location.String(),
			Country:  v.Country.String(),
			Timezone: v.Timezone.String(),
		}); err != nil {
			return errors.Wrapf(err, "upsert venue venue_id=%s", venueID)
		}
		result.Written++
	}
	return nil
}

func (s *ImportService) loadMatches(ctx context.Context, w importer.Writer, result *StageResult) error {
	var matches []fixturefile.MatchRecord
	if !s.source.ReadJSON(fixturefile.MatchesFile, &matches) {
		return nil
	}

	for _, rec := range matches {
		matchID := rec.MatchID.Int64()
		if err := s.source.Valid(rec); err != nil {
			s.logger.WarnContext(ctx, "skip match record", "match_id", matchID, "error", err)
			result.Dropped++
			continue
		}
		if rec.Venue == nil || rec.Competition == nil {
			s.logger.WarnContext(ctx, "skip match without venue or competition", "match_id", matchID)
			result.Dropped++
			continue
		}

		venueID, okVenue, err := w.VenueIDByVenueID(ctx, rec.Venue.VenueID.String())
		if err != nil {
			return errors.Wrapf(err, "resolve venue for match_id=%d", matchID)
		}
		teamAID, okA, err := w.TeamIDByTID(ctx, rec.TeamA.TeamID.Int64())
		if err != nil {
			return errors.Wrapf(err, "resolve team a for match_id=%d", matchID)
		}
		teamBID, okB, err := w.TeamIDByTID(ctx, rec.TeamB.TeamID.Int64())
		if err != nil {
			return errors.Wrapf(err, "resolve team b for match_id=%d", matchID)
		}
		competitionID, okComp, err := w.CompetitionIDByCID(ctx, rec.Competition.CID.Int64())
		if err != nil {
			return errors.Wrapf(err, "resolve competition for match_id=%d", matchID)
		}
		if !okVenue || !okA || !okB || !okComp {
			s.logger.WarnContext(ctx, "skip match, missing venue, team or competition",
				"match_id", matchID,
				"venue", okVenue,
				"team_a", okA,
				"team_b", okB,
				"competition", okComp,
			)
			result.Dropped++
			continue
		}

		winnerID, err := s.optionalTeam(ctx, w, rec.WinningTeamID.Int64())
		if err != nil {
			return errors.Wrapf(err, "resolve winner for match_id=%d", matchID)
		}

		m := match.Match{
			MatchID:            matchID,
			CompetitionID:      competitionID,
			VenueID:            venueID,
			Title:              rec.Title.String(),
			ShortTitle:         rec.ShortTitle.String(),
			Subtitle:           rec.Subtitle.String(),
			MatchNumber:        rec.MatchNumber.String(),
			Format:             rec.Format.Int(),
			FormatStr:          rec.FormatStr.String(),
			Status:             rec.Status.Int(),
			StatusStr:          rec.StatusStr.String(),
			StatusNote:         rec.StatusNote.String(),
			DateStart:          s.parseFixtureTime(rec.DateStart.String()),
			DateEnd:            s.parseFixtureTime(rec.DateEnd.String()),
			DateStartIST:       s.parseFixtureTime(rec.DateStartIST.String()),
			DateEndIST:         s.parseFixtureTime(rec.DateEndIST.String()),
			TimestampStart:     rec.TimestampStart.Int64(),
			TimestampEnd:       rec.TimestampEnd.Int64(),
			TeamAID:            teamAID,
			TeamAScoresFull:    rec.TeamA.ScoresFull.String(),
			TeamAScores:        rec.TeamA.Scores.String(),
			TeamAOvers:         rec.TeamA.Overs.String(),
			TeamBID:            teamBID,
			TeamBScoresFull:    rec.TeamB.ScoresFull.String(),
			TeamBScores:        rec.TeamB.Scores.String(),
			TeamBOvers:         rec.TeamB.Overs.String(),
			Result:             rec.Result.String(),
			ResultType:         rec.ResultType.Int(),
			WinMargin:          rec.WinMargin.String(),
			WinningTeamID:      winnerID,
			Umpires:            rec.Umpires.String(),
			Referee:            rec.Referee.String(),
			HasCommentary:      rec.Commentary.Bool(),
			HasWagon:           rec.Wagon.Bool(),
			LatestInningNumber: rec.LatestInningNumber.Int(),
		}
		if rec.Toss != nil {
			m.TossText = rec.Toss.Text.String()
			m.TossDecision = rec.Toss.Decision.Int()
			if m.TossWinnerID, err = s.optionalTeam(ctx, w, rec.Toss.Winner.Int64()); err != nil {
				return errors.Wrapf(err, "resolve toss winner for match_id=%d", matchID)
			}
		}

		if _, err := w.UpsertMatch(ctx, m); err != nil {
			return errors.Wrapf(err, "upsert match match_id=%d", matchID)
		}
		result.Written++
	}
	return nil
}

func (s *ImportService) loadScorecards(ctx context.Context, w importer.Writer, result *StageResult) error {
	for _, name := range s.source.List(fixturefile.ScorecardsDir) {
		var file fixturefile.ScorecardFile
		if !s.source.ReadJSON(path.Join(fixturefile.ScorecardsDir, name), &file) {
			result.Dropped++
			continue
		}

		matchID, ok, err := w.MatchIDByMatchID(ctx, file.MatchID.Int64())
		if err != nil {
			return errors.Wrapf(err, "resolve scorecard match_id=%d", file.MatchID.Int64())
		}
		if !ok {
			s.logger.WarnContext(ctx, "skip scorecard, match not found", "file", name, "match_id", file.MatchID.Int64())
			result.Dropped++
			continue
		}

		for _, rec := range file.Innings {
			written, err := s.loadInnings(ctx, w, matchID, rec)
			if err != nil {
				return err
			}
			if !written {
				result.Dropped++
				continue
			}
			result.Written++
		}
	}
	return nil
}

func (s *ImportService) loadInnings(ctx context.Context, w importer.Writer, matchID int64, rec fixturefile.InningsRecord) (bool, error) {
	iid := rec.IID.Int64()
	if err := s.source.Valid(rec); err != nil {
		s.logger.WarnContext(ctx, "skip innings record", "match_id", matchID, "error", err)
		return false, nil
	}

	battingID, okBat, err := w.TeamIDByTID(ctx, rec.BattingTeamID.Int64())
	if err != nil {
		return false, errors.Wrapf(err, "resolve batting team for iid=%d", iid)
	}
	fieldingID, okField, err := w.TeamIDByTID(ctx, rec.FieldingTeamID.Int64())
	if err != nil {
		return false, errors.Wrapf(err, "resolve fielding team for iid=%d", iid)
	}
	if !okBat || !okField {
		s.logger.WarnContext(ctx, "skip innings, team not found", "iid", iid)
		return false, nil
	}

	runs, wickets := scorecard.ParseScore(rec.Scores.String())
	inningsID, err := w.UpsertInnings(ctx, scorecard.Innings{
		IID:            iid,
		MatchID:        matchID,
		Number:         rec.Number.Int(),
		Name:           rec.Name.String(),
		Status:         rec.Status.Int(),
		IsSuperOver:    rec.IsSuperOver.Bool(),
		Result:         rec.Result.Int(),
		BattingTeamID:  battingID,
		FieldingTeamID: fieldingID,
		Scores:         rec.Scores.String(),
		ScoresFull:     rec.ScoresFull.String(),
		Runs:           runs,
		Wickets:        wickets,
		Overs:          rec.Overs.Float64(),
	})
	if err != nil {
		return false, errors.Wrapf(err, "upsert innings iid=%d", iid)
	}

	for i, b := range rec.Batsmen {
		playerID, ok, err := w.PlayerIDByPID(ctx, b.BatsmanID.Int64())
		if err != nil {
			return false, errors.Wrapf(err, "resolve batsman pid=%d", b.BatsmanID.Int64())
		}
		if !ok {
			s.logger.WarnContext(ctx, "skip batting line, player not found", "iid", iid, "pid", b.BatsmanID.Int64())
			continue
		}
		if err := w.UpsertBattingLine(ctx, scorecard.BattingLine{
			InningsID:  inningsID,
			PlayerID:   playerID,
			Name:       b.Name.String(),
			Position:   i + 1,
			Runs:       b.Runs.Int(),
			BallsFaced: b.BallsFaced.Int(),
			Fours:      b.Fours.Int(),
			Sixes:      b.Sixes.Int(),
			StrikeRate: b.StrikeRate.Float64(),
			HowOut:     b.HowOut.String(),
			Dismissal:  b.Dismissal.String(),
			BowlerID:   int64OrNil(b.BowlerID.Int64()),
			IsBatting:  b.Batting.Bool(),
		}); err != nil {
			return false, errors.Wrapf(err, "upsert batting line iid=%d pid=%d", iid, b.BatsmanID.Int64())
		}
	}

	for _, b := range rec.Bowlers {
		playerID, ok, err := w.PlayerIDByPID(ctx, b.BowlerID.Int64())
		if err != nil {
			return false, errors.Wrapf(err, "resolve bowler pid=%d", b.BowlerID.Int64())
		}
		if !ok {
			s.logger.WarnContext(ctx, "skip bowling line, player not found", "iid", iid, "pid", b.BowlerID.Int64())
			continue
		}
		if err := w.UpsertBowlingLine(ctx, scorecard.BowlingLine{
			InningsID:    inningsID,
			PlayerID:     playerID,
			Name:         b.Name.String(),
			Overs:        b.Overs.Float64(),
			RunsConceded: b.RunsConceded.Int(),
			Wickets:      b.Wickets.Int(),
			Maidens:      b.Maidens.Int(),
			NoBalls:      b.NoBalls.Int(),
			Wides:        b.Wides.Int(),
			Economy:      b.Econ.Float64(),
			DotBalls:     intOrNil(b.DotBalls.Int()),
		}); err != nil {
			return false, errors.Wrapf(err, "upsert bowling line iid=%d pid=%d", iid, b.BowlerID.Int64())
		}
	}

	for _, f := range rec.Fows {
		if err := w.InsertFallOfWicket(ctx, scorecard.FallOfWicket{
			InningsID: inningsID,
			Name:      f.Name.String(),
			Runs:      f.Runs.Int(),
			Overs:     f.OversAtDismissal.Float64(),
			Score:     fmt.Sprintf("%s/%s", f.ScoreAtDismissal.String(), f.Number.String()),
		}); err != nil {
			return false, errors.Wrapf(err, "insert fall of wicket iid=%d", iid)
		}
	}

	return true, nil
}

func (s *ImportService) loadStandings(ctx context.Context, w importer.Writer, result *StageResult) error {
	var file fixturefile.StandingsFile
	if !s.source.ReadJSON(fixturefile.StandingsFile, &file) {
		return nil
	}

	competitionID, ok, err := w.FirstCompetitionID(ctx)
	if err != nil {
		return errors.Wrap(err, "resolve standings competition")
	}
	if !ok {
		s.logger.WarnContext(ctx, "skip standings, no competition imported")
		return nil
	}

	for _, round := range file.Standings {
		for _, rec := range round.Standings {
			teamID, ok, err := w.TeamIDByTID(ctx, rec.TeamID.Int64())
			if err != nil {
				return errors.Wrapf(err, "resolve standing team tid=%d", rec.TeamID.Int64())
			}
			if !ok {
				s.logger.WarnContext(ctx, "skip standing, team not found", "tid", rec.TeamID.Int64(), "round_id", round.Round.RID.Int64())
				result.Dropped++
				continue
			}

			if err := w.UpsertStanding(ctx, standing.Standing{
				CompetitionID:   competitionID,
				TeamID:          teamID,
				RoundID:         round.Round.RID.Int64(),
				RoundName:       round.Round.Name.String(),
				Played:          rec.Played.Int(),
				Win:             rec.Win.Int(),
				Loss:            rec.Loss.Int(),
				Draw:            rec.Draw.Int(),
				NR:              rec.NR.Int(),
				OverFor:         floatOrNil(rec.OverFor.Float64()),
				RunFor:          intOrNil(rec.RunFor.Int()),
				OverAgainst:     floatOrNil(rec.OverAgainst.Float64()),
				RunAgainst:      intOrNil(rec.RunAgainst.Int()),
				NetRunRate:      floatOrNil(rec.NetRR.Float64()),
				Points:          rec.Points.Int(),
				LastFiveMatches: rec.LastFiveMatch.String(),
				LastFiveResults: rec.LastFiveMatchResult.String(),
				Qualified:       rec.Quality.Bool(),
			}); err != nil {
				return errors.Wrapf(err, "upsert standing tid=%d round_id=%d", rec.TeamID.Int64(), round.Round.RID.Int64())
			}
			result.Written++
		}
	}
	return nil
}

func (s *ImportService) loadBattingAggregates(ctx context.Context, w importer.Writer, result *StageResult) error {
	return s.eachStatRow(ctx, w, result, fixturefile.BattingStatsDir, fixturefile.BattingStatsPrefix,
		func(statType string, playerID, teamID int64, rec fixturefile.StatRecord) error {
			return w.UpsertBattingAggregate(ctx, aggregate.Batting{
				PlayerID:   playerID,
				TeamID:     teamID,
				StatType:   statType,
				Matches:    rec.Matches.Int(),
				Innings:    rec.Innings.Int(),
				Runs:       rec.Runs.Int(),
				Balls:      rec.Balls.Int(),
				NotOut:     rec.NotOut.Int(),
				Highest:    intOrNil(rec.Highest.Int()),
				Centuries:  rec.Run100.Int(),
				Fifties:    rec.Run50.Int(),
				Fours:      rec.Run4.Int(),
				Sixes:      rec.Run6.Int(),
				Catches:    rec.Catches.Int(),
				Stumpings:  rec.Stumpings.Int(),
				Average:    floatOrNil(rec.Average.Float64()),
				StrikeRate: floatOrNil(rec.Strike.Float64()),
			})
		})
}

func (s *ImportService) loadBowlingAggregates(ctx context.Context, w importer.Writer, result *StageResult) error {
	return s.eachStatRow(ctx, w, result, fixturefile.BowlingStatsDir, fixturefile.BowlingStatsPrefix,
		func(statType string, playerID, teamID int64, rec fixturefile.StatRecord) error {
			return w.UpsertBowlingAggregate(ctx, aggregate.Bowling{
				PlayerID:   playerID,
				TeamID:     teamID,
				StatType:   statType,
				Matches:    rec.Matches.Int(),
				Overs:      rec.Overs.Float64(),
				Runs:       rec.Runs.Int(),
				Wickets:    rec.Wickets.Int(),
				Maidens:    rec.Maidens.Int(),
				Average:    floatOrNil(rec.Average.Float64()),
				Economy:    floatOrNil(rec.Econ.Float64()),
				StrikeRate: floatOrNil(rec.Strike.Float64()),
				BestInning: rec.BestInning.String(),
				BestMatch:  rec.BestMatch.String(),
				Wicket4i:   rec.Wicket4i.Int(),
				Wicket5i:   rec.Wicket5i.Int(),
			})
		})
}

// eachStatRow walks every ranking file of dir and hands rows with a known player and team to upsert.
func (s *ImportService) eachStatRow(
	ctx context.Context,
	w importer.Writer,
	result *StageResult,
	dir, prefix string,
	upsert func(statType string, playerID, teamID int64, rec fixturefile.StatRecord) error,
) error {
	for _, name := range s.source.List(dir) {
		var file fixturefile.StatsFile
		if !s.source.ReadJSON(path.Join(dir, name), &file) {
			result.Dropped++
			continue
		}

		statType := aggregate.StatTypeFromFile(name, prefix)
		for _, rec := range file.Rows() {
			pid, tid := rec.PlayerPID(), rec.TeamTID()
			playerID, okPlayer, err := w.PlayerIDByPID(ctx, pid)
			if err != nil {
				return errors.Wrapf(err, "resolve %s player pid=%d", statType, pid)
			}
			teamID, okTeam, err := w.TeamIDByTID(ctx, tid)
			if err != nil {
				return errors.Wrapf(err, "resolve %s team tid=%d", statType, tid)
			}
			if !okPlayer || !okTeam {
				s.logger.WarnContext(ctx, "skip stat row, player or team not found",
					"stat_type", statType,
					"pid", pid,
					"tid", tid,
				)
				result.Dropped++
				continue
			}

			if err := upsert(statType, playerID, teamID, rec); err != nil {
				return errors.Wrapf(err, "upsert %s pid=%d", statType, pid)
			}
			result.Written++
		}
	}
	return nil
}

func (s *ImportService) loadTeamStats(ctx context.Context, w importer.Writer, result *StageResult) error {
	var totals fixturefile.StatsFile
	if !s.source.ReadJSON(path.Join(fixturefile.TeamStatsDir, fixturefile.TeamTotalRunsFile), &totals) {
		return nil
	}

	stats := make(map[int64]*team.Stats)
	order := make([]int64, 0, len(totals.Rows()))
	for _, rec := range totals.Rows() {
		teamID, ok, err := w.TeamIDByTID(ctx, rec.TeamTID())
		if err != nil {
			return errors.Wrapf(err, "resolve team stats tid=%d", rec.TeamTID())
		}
		if !ok {
			s.logger.WarnContext(ctx, "skip team stats, team not found", "tid", rec.TeamTID())
			result.Dropped++
			continue
		}
		if _, seen := stats[rec.TeamTID()]; !seen {
			order = append(order, rec.TeamTID())
		}
		stats[rec.TeamTID()] = &team.Stats{
			TeamID:         teamID,
			TotalRuns:      rec.Runs.Int(),
			TotalWickets:   rec.Wickets.Int(),
			TotalCenturies: rec.Run100.Int(),
			TotalFifties:   rec.Run50.Int(),
		}
	}

	updates := []struct {
		file  string
		apply func(st *team.Stats, rec fixturefile.StatRecord)
	}{
		{fixturefile.TeamMatchWinFile, func(st *team.Stats, rec fixturefile.StatRecord) { st.MatchesWon = rec.Win.Int() }},
		{fixturefile.TeamExtraRunConcededFile, func(st *team.Stats, rec fixturefile.StatRecord) { st.ExtraRunsConceded = rec.Extras.Int() }},
		{fixturefile.TeamHighestScoreFile, func(st *team.Stats, rec fixturefile.StatRecord) { st.HighestScore = textOrNil(rec.Score.String()) }},
		{fixturefile.TeamLowestScoreFile, func(st *team.Stats, rec fixturefile.StatRecord) { st.LowestScore = textOrNil(rec.Score.String()) }},
		{fixturefile.TeamHighestWinMarginRunsFile, func(st *team.Stats, rec fixturefile.StatRecord) { st.HighestWinMarginRuns = intOrNil(rec.Margin.Int()) }},
		{fixturefile.TeamLowestWinMarginRunsFile, func(st *team.Stats, rec fixturefile.StatRecord) { st.LowestWinMarginRuns = intOrNil(rec.Margin.Int()) }},
		{fixturefile.TeamHighestWinMarginWktsFile, func(st *team.Stats, rec fixturefile.StatRecord) { st.HighestWinMarginWickets = intOrNil(rec.Margin.Int()) }},
		{fixturefile.TeamLowestWinMarginWktsFile, func(st *team.Stats, rec fixturefile.StatRecord) { st.LowestWinMarginWickets = intOrNil(rec.Margin.Int()) }},
	}
	for _, u := range updates {
		var file fixturefile.StatsFile
		if !s.source.ReadJSON(path.Join(fixturefile.TeamStatsDir, u.file), &file) {
			continue
		}
		for _, rec := range file.Rows() {
			if st, ok := stats[rec.TeamTID()]; ok {
				u.apply(st, rec)
			}
		}
	}

	for _, tid := range order {
		if err := w.UpsertTeamStats(ctx, *stats[tid]); err != nil {
			return errors.Wrapf(err, "upsert team stats tid=%d", tid)
		}
		result.Written++
	}
	return nil
}

func (s *ImportService) loadWagonWheels(ctx context.Context, w importer.Writer, result *StageResult) error {
	refs, err := w.InningsRefs(ctx)
	if err != nil {
		return errors.Wrap(err, "load innings refs")
	}

	shots := make([]wagonwheel.Shot, 0, 1024)
	for _, name := range s.source.List(fixturefile.WagonWheelDir) {
		var file fixturefile.WagonWheelFile
		if !s.source.ReadJSON(path.Join(fixturefile.WagonWheelDir, name), &file) {
			result.Dropped++
			continue
		}

		for _, inn := range file.Innings {
			ref, ok := refs[inn.InningID.Int64()]
			if !ok {
				s.logger.WarnContext(ctx, "skip wagon wheel innings, innings not found", "file", name, "iid", inn.InningID.Int64())
				result.Dropped += int64(len(inn.Wagons))
				continue
			}
			for seq, row := range inn.Wagons {
				zoneID := int(wagonCell(row, 7).Int())
				shots = append(shots, wagonwheel.Shot{
					MatchID:    ref.MatchID,
					InningsID:  ref.ID,
					Sequence:   seq,
					BatsmanID:  wagonCell(row, 0).Int(),
					BowlerID:   wagonCell(row, 1).Int(),
					Over:       wagonCell(row, 2).Float(),
					BatRun:     int(wagonCell(row, 3).Int()),
					TeamRun:    int(wagonCell(row, 4).Int()),
					X:          wagonCell(row, 5).Float(),
					Y:          wagonCell(row, 6).Float(),
					ZoneID:     zoneID,
					ZoneName:   wagonwheel.ZoneName(zoneID),
					EventName:  wagonCell(row, 8).Text(),
					UniqueOver: wagonCell(row, 9).Float(),
				})
			}
		}
	}

	written, err := bulkLoad(ctx, s.logger, string(importer.TableWagonWheels), shots, s.cfg.WagonChunkSize, w.InsertWagonWheels)
	if err != nil {
		return err
	}
	result.Written = written
	return nil
}

func (s *ImportService) loadCommentary(ctx context.Context, w importer.Writer, result *StageResult) error {
	refs, err := w.InningsRefs(ctx)
	if err != nil {
		return errors.Wrap(err, "load innings refs")
	}

	events := make([]commentary.Event, 0, 1024)
	for _, name := range s.source.List(fixturefile.CommentaryDir) {
		var file fixturefile.CommentaryFile
		if !s.source.ReadJSON(path.Join(fixturefile.CommentaryDir, name), &file) {
			result.Dropped++
			continue
		}
		if file.Inning == nil {
			s.logger.WarnContext(ctx, "skip commentary without innings", "file", name)
			result.Dropped += int64(len(file.Commentaries))
			continue
		}

		iid := file.Inning.IID.Int64()
		ref, ok := refs[iid]
		if !ok {
			s.logger.WarnContext(ctx, "skip commentary, innings not found", "file", name, "iid", iid)
			result.Dropped += int64(len(file.Commentaries))
			continue
		}

		for idx, rec := range file.Commentaries {
			eventID := rec.EventID.String()
			if eventID == "" {
				eventID = fmt.Sprintf("%d_%d", iid, idx)
			}
			event := rec.Event.String()
			if event == "" {
				event = commentary.EventBall
			}
			events = append(events, commentary.Event{
				EventID:    eventID,
				MatchID:    ref.MatchID,
				InningsID:  ref.ID,
				Event:      event,
				BatsmanID:  int64OrNil(rec.BatsmanID.Int64()),
				BowlerID:   int64OrNil(rec.BowlerID.Int64()),
				Over:       rec.Over.Int(),
				Ball:       rec.Ball.Int(),
				Commentary: rec.Commentary.String(),
				Run:        rec.Run.Int(),
				IsWide:     rec.WideBall.Bool(),
				IsNoBall:   rec.NoBall.Bool(),
				IsSix:      rec.Six.Bool(),
				IsFour:     rec.Four.Bool(),
				IsWicket:   event == commentary.EventWicket,
			})
		}
	}

	written, err := bulkLoad(ctx, s.logger, string(importer.TableCommentaries), events, s.cfg.CommentaryChunkSize, w.InsertCommentary)
	if err != nil {
		return err
	}
	result.Written = written
	return nil
}

func (s *ImportService) optionalTeam(ctx context.Context, w importer.Writer, tid int64) (*int64, error) {
	if tid <= 0 {
		return nil, nil
	}
	id, ok, err := w.TeamIDByTID(ctx, tid)
	if err != nil || !ok {
		return nil, err
	}
	return &id, nil
}

// parseFixtureTime accepts RFC3339 or the feed's "2006-01-02 15:04:05" and falls back to now.
func (s *ImportService) parseFixtureTime(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse(fixtureDateLayout, raw); err == nil {
		return t
	}
	return s.now().UTC()
}

func wagonCell(row []fixturefile.Cell, i int) fixturefile.Cell {
	if i >= len(row) {
		return fixturefile.Cell{}
	}
	return row[i]
}

func jsonObjectOrEmpty(raw []byte) []byte {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return emptyJSONObject
	}
	return raw
}

func intOrNil(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}

func int64OrNil(v int64) *int64 {
	if v == 0 {
		return nil
	}
	return &v
}

func floatOrNil(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}

func textOrNil(v string) *string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}
