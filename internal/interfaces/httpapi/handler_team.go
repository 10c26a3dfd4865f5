package httpapi

import (
	"net/http"
	"strings"

	"github.com/sugerdarco/IPL-Data-Platform/internal/usecase"
)

type listTeamsQuery struct {
	Search string `validate:"max=100"`
	Page   int
	Limit  int
}

type teamSummaryDTO struct {
	teamDTO
	Standing *standingDTO  `json:"standing"`
	Stats    *teamStatsDTO `json:"stats"`
}

type squadMemberDTO struct {
	ID     int64     `json:"id"`
	Season string    `json:"season"`
	Player playerDTO `json:"player"`
}

type teamDetailDTO struct {
	teamDTO
	Standing *standingDTO     `json:"standing"`
	Stats    *teamStatsDTO    `json:"stats"`
	Squad    []squadMemberDTO `json:"squad"`
}

type teamPlayerDTO struct {
	playerDTO
	BattingStats *battingAggregateDTO `json:"battingStats"`
	BowlingStats *bowlingAggregateDTO `json:"bowlingStats"`
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	q := r.URL.Query()
	query := listTeamsQuery{
		Search: strings.TrimSpace(q.Get("search")),
		Page:   queryInt(q, "page"),
		Limit:  queryInt(q, "limit"),
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	page, err := h.teamService.List(ctx, usecase.TeamListInput{
		Search: query.Search,
		Page:   query.Page,
		Limit:  query.Limit,
	})
	if err != nil {
		h.fail(ctx, w, "list teams failed", err)
		return
	}

	items := mapSlice(page.Items, func(v usecase.TeamSummary) teamSummaryDTO {
		return teamSummaryDTO{
			teamDTO:  teamToDTO(v.Team),
			Standing: standingPtrToDTO(v.Standing),
			Stats:    teamStatsToDTO(v.Stats),
		}
	})
	writePage(ctx, w, items, page.Pagination)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.teamService.Get(ctx, teamID)
	if err != nil {
		h.fail(ctx, w, "get team failed", err, "team_id", teamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamDetailDTO{
		teamDTO:  teamToDTO(detail.Team),
		Standing: standingPtrToDTO(detail.Standing),
		Stats:    teamStatsToDTO(detail.Stats),
		Squad: mapSlice(detail.Squad, func(v usecase.SquadMember) squadMemberDTO {
			return squadMemberDTO{
				ID:     v.Squad.ID,
				Season: v.Squad.Season,
				Player: playerToDTO(v.Player),
			}
		}),
	})
}

func (h *Handler) ListTeamPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamPlayers")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.teamService.Players(ctx, teamID)
	if err != nil {
		h.fail(ctx, w, "list team players failed", err, "team_id", teamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(players, func(v usecase.TeamPlayer) teamPlayerDTO {
		return teamPlayerDTO{
			playerDTO:    playerToDTO(v.Player),
			BattingStats: battingAggregatePtrToDTO(v.Batting),
			BowlingStats: bowlingAggregatePtrToDTO(v.Bowling),
		}
	}))
}

func (h *Handler) ListTeamMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamMatches")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	q := r.URL.Query()
	page, err := h.teamService.Matches(ctx, teamID, queryInt(q, "page"), queryInt(q, "limit"))
	if err != nil {
		h.fail(ctx, w, "list team matches failed", err, "team_id", teamID)
		return
	}

	writePage(ctx, w, matchesToDTO(page.Items), page.Pagination)
}
