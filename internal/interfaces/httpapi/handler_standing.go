package httpapi

import (
	"net/http"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/standing"
	"github.com/sugerdarco/IPL-Data-Platform/internal/usecase"
)

type standingRowDTO struct {
	standingDTO
	Team        teamDTO         `json:"team"`
	Competition *competitionDTO `json:"competition"`
}

type roundDTO struct {
	RoundID   int64  `json:"roundId"`
	RoundName string `json:"roundName"`
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	roundID, err := queryID(r.URL.Query(), "roundId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.standingService.ListByRound(ctx, roundID)
	if err != nil {
		h.fail(ctx, w, "list standings failed", err, "round_id", roundID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(rows, standingRowToDTO))
}

func (h *Handler) ListRounds(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRounds")
	defer span.End()

	rounds, err := h.standingService.ListRounds(ctx)
	if err != nil {
		h.fail(ctx, w, "list rounds failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(rounds, func(v standing.Round) roundDTO {
		return roundDTO{RoundID: v.ID, RoundName: v.Name}
	}))
}

func (h *Handler) GetTeamStanding(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStanding")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	row, err := h.standingService.GetByTeam(ctx, teamID)
	if err != nil {
		h.fail(ctx, w, "get team standing failed", err, "team_id", teamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingRowToDTO(row))
}

func standingRowToDTO(v usecase.StandingRow) standingRowDTO {
	return standingRowDTO{
		standingDTO: standingToDTO(v.Standing),
		Team:        teamToDTO(v.Team),
		Competition: competitionToDTO(v.Competition),
	}
}
