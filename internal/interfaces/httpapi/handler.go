package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/failure"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/logging"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/usecase"
)

// HealthChecker reports whether the backing store answers.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	authService      *usecase.AuthService
	leagueService    *usecase.LeagueService
	teamService      *usecase.TeamService
	playerService    *usecase.PlayerService
	matchService     *usecase.MatchService
	scorecardService *usecase.ScorecardService
	health           HealthChecker
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	authService *usecase.AuthService,
	leagueService *usecase.LeagueService,
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	matchService *usecase.MatchService,
	scorecardService *usecase.ScorecardService,
	health HealthChecker,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		authService:      authService,
		leagueService:    leagueService,
		teamService:      teamService,
		playerService:    playerService,
		matchService:     matchService,
		scorecardService: scorecardService,
		health:           health,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "Healthz")
	defer span.End()

	if h.health != nil {
		if err := h.health.Ping(ctx); err != nil {
			h.logger.WarnContext(ctx, "health check failed", "error", err)
			writeError(ctx, w, err)
			return
		}
	}

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeJSON rejects unknown fields and trailing garbage.
func decodeJSON(r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if err == io.EOF {
			return failure.Validation("Request body is required")
		}
		return failure.Wrap(err, failure.ErrValidation, "Invalid JSON payload")
	}
	return nil
}

// validateRequest runs the struct tags; msg is what the caller sees on failure.
func (h *Handler) validateRequest(ctx context.Context, payload any, msg string) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return failure.Wrap(err, failure.ErrValidation, msg)
	}

	return nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseTimestamp accepts RFC 3339 as well as the bare date and datetime-local forms browsers send.
// Values without a zone are read as UTC.
func parseTimestamp(field, raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, failure.Newf(failure.ErrValidation, "Invalid %s: %q", field, raw)
}

func logFailure(ctx context.Context, logger *logging.Logger, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if failure.KindOf(err) == nil {
		logger.ErrorContext(ctx, msg, args...)
		return
	}
	logger.WarnContext(ctx, msg, args...)
}

func pathID(r *http.Request, name string) string {
	return strings.TrimSpace(r.PathValue(name))
}

func requireBodyID(pathValue, bodyValue string) error {
	bodyValue = strings.TrimSpace(bodyValue)
	if bodyValue != "" && bodyValue != pathValue {
		return failure.Validation(fmt.Sprintf("Body id %s does not match path id %s", bodyValue, pathValue))
	}
	return nil
}
