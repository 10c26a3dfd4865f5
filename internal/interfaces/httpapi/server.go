package httpapi

import (
	"net/http"
	"time"

	"github.com/sugerdarco/IPL-Data-Platform/internal/platform/id"
	"github.com/sugerdarco/IPL-Data-Platform/internal/platform/logging"
)

type RouterConfig struct {
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
	RateLimitEnabled   bool
	RateLimitRequests  int
	RateLimitWindow    time.Duration
}

func NewRouter(handler *Handler, logger *logging.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, cfg.SwaggerEnabled)
	registerTeamRoutes(mux, handler)
	registerPlayerRoutes(mux, handler)
	registerMatchRoutes(mux, handler)
	registerStandingRoutes(mux, handler)
	registerStatsRoutes(mux, handler)
	registerBettingRoutes(mux, handler)

	var inner http.Handler = recoverPanic(logger, mux)
	if cfg.RateLimitEnabled {
		inner = RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow, inner)
	}

	return RequestTracing(RequestLogging(logger, RequestID(id.NewRandomGenerator(), CORS(cfg.CORSAllowedOrigins, inner))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered",
					"panic", rec,
					"path", r.URL.Path,
					"request_id", requestIDFromContext(ctx),
				)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
