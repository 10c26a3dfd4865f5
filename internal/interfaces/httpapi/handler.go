package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sugerdarco/IPL-Data-Platform/internal/platform/logging"
	"github.com/sugerdarco/IPL-Data-Platform/internal/usecase"
)

type Handler struct {
	teamService     *usecase.TeamService
	playerService   *usecase.PlayerService
	matchService    *usecase.MatchService
	standingService *usecase.StandingService
	statsService    *usecase.StatsService
	bettingService  *usecase.BettingService
	healthService   *usecase.HealthService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	matchService *usecase.MatchService,
	standingService *usecase.StandingService,
	statsService *usecase.StatsService,
	bettingService *usecase.BettingService,
	healthService *usecase.HealthService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:     teamService,
		playerService:   playerService,
		matchService:    matchService,
		standingService: standingService,
		statsService:    statsService,
		bettingService:  bettingService,
		healthService:   healthService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// fail logs err at a level matching its mapped status and writes the error envelope.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(ctx, err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
	} else {
		h.logger.WarnContext(ctx, msg, args...)
	}
	writeError(ctx, w, err)
}

// pathID parses a numeric path segment. Anything but a positive integer is invalid input.
func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return v, nil
}

// queryInt reads a lenient integer. Missing or malformed values fall back to zero so the
// usecase applies its defaults.
func queryInt(q url.Values, key string) int {
	v, err := strconv.Atoi(strings.TrimSpace(q.Get(key)))
	if err != nil {
		return 0
	}
	return v
}

// queryID reads an optional id filter. Present values must be positive integers.
func queryID(q url.Values, key string) (int64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, key)
	}
	return v, nil
}

// queryOptionalInt reads an optional non-negative integer; nil means unset.
func queryOptionalInt(q url.Values, key string) (*int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return nil, fmt.Errorf("%w: %s must be a non-negative integer", usecase.ErrInvalidInput, key)
	}
	return &v, nil
}
