package httpapi

import (
	"net/http"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/logging"
)

// Metrics is the request observer that can also expose its registry over HTTP.
type Metrics interface {
	RequestObserver
	Handler() http.Handler
}

// NewRouter wires routes and the middleware chain. metrics may be nil to disable /metrics.
func NewRouter(
	handler *Handler,
	logger *logging.Logger,
	corsAllowedOrigins []string,
	metrics Metrics,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("http")

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, metrics)
	registerAuthRoutes(mux, handler)
	registerLeagueRoutes(mux, handler)
	registerTeamRoutes(mux, handler)
	registerPlayerRoutes(mux, handler)
	registerMatchRoutes(mux, handler)
	registerScorecardRoutes(mux, handler)

	var observer RequestObserver
	if metrics != nil {
		observer = metrics
	}

	return RequestTracing(RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, RequestMetrics(observer, mux)))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
