package app

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/config"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/infrastructure/repository/sqlstore"
	idgen "github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/id"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/logging"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		HTTPAddr:           ":0",
		DBDriver:           config.DBDriverSQLite,
		IDMaxAttempts:      3,
		SeedAdminUser:      true,
		MetricsEnabled:     true,
		CORSAllowedOrigins: []string{"*"},
		ReadTimeout:        time.Second,
		WriteTimeout:       time.Second,
	}
}

func newTestApp(t *testing.T, cfg config.Config) http.Handler {
	t.Helper()

	ctx := context.Background()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	store, err := sqlstore.Open(ctx, sqlstore.Options{Driver: sqlstore.DriverSQLite, DSN: dsn}, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	app, err := build(ctx, cfg, store, idgen.NewUUIDGenerator(), time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), logging.NewNop())
	require.NoError(t, err)
	return app.Server.Handler
}

func call(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeObject(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []any {
	t.Helper()
	var out []any
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func requireError(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	require.Equal(t, message, decodeObject(t, rec)["error"])
}

func createID(t *testing.T, h http.Handler, path, body string) string {
	t.Helper()
	rec := call(t, h, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id, _ := decodeObject(t, rec)["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestAPI_RosterScenario(t *testing.T) {
	t.Parallel()
	h := newTestApp(t, testConfig())

	rec := call(t, h, http.MethodPost, "/api/leagues", `{"name":"L1","startDate":"2024-01-01","endDate":"2024-02-01"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeObject(t, rec)
	leagueID := created["id"].(string)
	require.Equal(t, []any{}, created["teams"])
	require.Nil(t, created["location"])
	require.Equal(t, "2024-01-01T00:00:00Z", created["startDate"])

	teamID := createID(t, h, "/api/teams", fmt.Sprintf(`{"name":"Tigers","leagueId":%q}`, leagueID))
	playerID := createID(t, h, "/api/players", `{"firstName":"A","lastName":"B"}`)

	rec = call(t, h, http.MethodPut, "/api/players/"+playerID,
		fmt.Sprintf(`{"id":%q,"firstName":"A","lastName":"B","teamIds":[%q]}`, playerID, teamID))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, []any{teamID}, decodeObject(t, rec)["teamIds"])

	rec = call(t, h, http.MethodGet, "/api/players?teamId="+teamID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	players := decodeList(t, rec)
	require.Len(t, players, 1)
	got := players[0].(map[string]any)
	require.Equal(t, playerID, got["id"])
	require.Equal(t, []any{teamID}, got["teamIds"])

	rec = call(t, h, http.MethodGet, "/api/teams/"+teamID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []any{playerID}, decodeObject(t, rec)["playerIds"])

	rec = call(t, h, http.MethodGet, "/api/leagues/"+leagueID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	teams := decodeObject(t, rec)["teams"].([]any)
	require.Len(t, teams, 1)
	require.Equal(t, "Tigers", teams[0].(map[string]any)["name"])
}

func TestAPI_ConflictsAndValidation(t *testing.T) {
	t.Parallel()
	h := newTestApp(t, testConfig())

	leagueID := createID(t, h, "/api/leagues", `{"name":"L1","startDate":"2024-01-01","endDate":"2024-02-01"}`)
	requireError(t, call(t, h, http.MethodPost, "/api/leagues", `{"name":"L1","startDate":"2024-01-01","endDate":"2024-02-01"}`),
		http.StatusConflict, "League name already exists.")

	createID(t, h, "/api/teams", fmt.Sprintf(`{"name":"X","leagueId":%q}`, leagueID))
	requireError(t, call(t, h, http.MethodPost, "/api/teams", fmt.Sprintf(`{"name":"X","leagueId":%q}`, leagueID)),
		http.StatusConflict, "Team name already exists in this league.")

	rec := call(t, h, http.MethodGet, "/api/teams?leagueId="+leagueID, "")
	require.Len(t, decodeList(t, rec), 1)

	requireError(t, call(t, h, http.MethodPost, "/api/leagues", `{"name":"L2"}`),
		http.StatusBadRequest, "Missing required fields: name, startDate, endDate")
	requireError(t, call(t, h, http.MethodPost, "/api/players", `{"firstName":"A"}`),
		http.StatusBadRequest, "First and last name are required")
	requireError(t, call(t, h, http.MethodPost, "/api/teams", `{"name":"Y","leagueId":"ghost"}`),
		http.StatusBadRequest, "League or captain does not exist.")

	rec = call(t, h, http.MethodPost, "/api/leagues", `{"name":"L3","startDate":"2024-01-01","endDate":"2024-02-01","unknown":1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid JSON payload", decodeObject(t, rec)["error"])
}

func TestAPI_MatchLifecycleAndScorecard(t *testing.T) {
	t.Parallel()
	h := newTestApp(t, testConfig())

	leagueID := createID(t, h, "/api/leagues", `{"name":"L1","startDate":"2024-01-01","endDate":"2024-02-01"}`)
	teamA := createID(t, h, "/api/teams", fmt.Sprintf(`{"name":"A","leagueId":%q}`, leagueID))
	teamB := createID(t, h, "/api/teams", fmt.Sprintf(`{"name":"B","leagueId":%q}`, leagueID))

	requireError(t, call(t, h, http.MethodPost, "/api/matches", fmt.Sprintf(
		`{"leagueId":%q,"teamAId":%q,"teamBId":%q,"dateTime":"2024-01-10T14:00:00Z","venue":"Oval","overs":20}`, leagueID, teamA, teamA)),
		http.StatusBadRequest, "Team A and Team B cannot be the same.")
	requireError(t, call(t, h, http.MethodPost, "/api/matches", fmt.Sprintf(
		`{"leagueId":%q,"teamAId":%q,"teamBId":%q,"dateTime":"2024-01-10T14:00:00Z","venue":"Oval"}`, leagueID, teamA, teamB)),
		http.StatusBadRequest, "Missing required fields for match")

	rec := call(t, h, http.MethodPost, "/api/matches", fmt.Sprintf(
		`{"leagueId":%q,"teamAId":%q,"teamBId":%q,"dateTime":"2024-01-10T14:00","venue":"Oval","overs":20}`, leagueID, teamA, teamB))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	m := decodeObject(t, rec)
	matchID := m["id"].(string)
	require.Equal(t, "Scheduled", m["status"])
	require.Nil(t, m["scorecardId"])

	requireError(t, call(t, h, http.MethodPut, "/api/matches/"+matchID, `{}`), http.StatusBadRequest, "No update fields provided")

	rec = call(t, h, http.MethodPut, "/api/matches/"+matchID, `{"umpire1":"Dar","status":"Completed","choseTo":"Bat"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	m = decodeObject(t, rec)
	require.Equal(t, "Dar", m["umpire1"])
	require.Equal(t, "Completed", m["status"])
	require.Equal(t, "Oval", m["venue"])

	rec = call(t, h, http.MethodPut, "/api/matches/"+matchID, `{"umpire1":"","choseTo":"","status":"Scheduled"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	m = decodeObject(t, rec)
	require.Nil(t, m["umpire1"])
	require.Nil(t, m["choseTo"])
	require.Equal(t, "Scheduled", m["status"])

	requireError(t, call(t, h, http.MethodPut, "/api/matches/ghost", `{"venue":"Lords"}`), http.StatusNotFound, "Match not found")

	rec = call(t, h, http.MethodGet, "/api/scorecards/"+matchID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "null", strings.TrimSpace(rec.Body.String()))

	body := fmt.Sprintf(`{"matchId":%q,"innings1":{"score":180,"balls":[{"over":0,"ballInOver":1,"runsScored":4,"extras":{}}]},"innings2":null}`, matchID)
	rec = call(t, h, http.MethodPut, "/api/scorecards/sc1", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	sc := decodeObject(t, rec)
	require.Equal(t, "sc1", sc["id"])
	require.Nil(t, sc["innings2"])
	require.Equal(t, float64(180), sc["innings1"].(map[string]any)["score"])

	rec = call(t, h, http.MethodGet, "/api/matches/"+matchID, "")
	require.Equal(t, "sc1", decodeObject(t, rec)["scorecardId"])

	rec = call(t, h, http.MethodPut, "/api/scorecards/sc1", fmt.Sprintf(`{"matchId":%q,"innings1":{"score":181}}`, matchID))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = call(t, h, http.MethodGet, "/api/scorecards/"+matchID, "")
	require.Equal(t, float64(181), decodeObject(t, rec)["innings1"].(map[string]any)["score"])

	requireError(t, call(t, h, http.MethodPut, "/api/scorecards/sc2", `{"matchId":"ghost"}`),
		http.StatusBadRequest, "Match with ID ghost does not exist.")
	requireError(t, call(t, h, http.MethodPut, "/api/scorecards/sc3", `{}`),
		http.StatusBadRequest, "Match ID is required for scorecard")
}

func TestAPI_DeleteCascadesAndNotFound(t *testing.T) {
	t.Parallel()
	h := newTestApp(t, testConfig())

	leagueID := createID(t, h, "/api/leagues", `{"name":"L1","startDate":"2024-01-01","endDate":"2024-02-01"}`)
	teamA := createID(t, h, "/api/teams", fmt.Sprintf(`{"name":"A","leagueId":%q}`, leagueID))
	teamB := createID(t, h, "/api/teams", fmt.Sprintf(`{"name":"B","leagueId":%q}`, leagueID))
	createID(t, h, "/api/matches", fmt.Sprintf(
		`{"leagueId":%q,"teamAId":%q,"teamBId":%q,"dateTime":"2024-01-10T14:00:00Z","venue":"Oval","overs":20}`, leagueID, teamA, teamB))

	rec := call(t, h, http.MethodDelete, "/api/leagues/"+leagueID, "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())

	require.Empty(t, decodeList(t, call(t, h, http.MethodGet, "/api/teams", "")))
	require.Empty(t, decodeList(t, call(t, h, http.MethodGet, "/api/matches", "")))

	requireError(t, call(t, h, http.MethodDelete, "/api/leagues/"+leagueID, ""), http.StatusNotFound, "League not found")
	requireError(t, call(t, h, http.MethodDelete, "/api/players/ghost", ""), http.StatusNotFound, "Player not found")
	requireError(t, call(t, h, http.MethodGet, "/api/leagues/ghost", ""), http.StatusNotFound, "League not found")
}

func TestAPI_LoginWithSeededAdmin(t *testing.T) {
	t.Parallel()
	h := newTestApp(t, testConfig())

	rec := call(t, h, http.MethodPost, "/api/login", `{"username":"admin","password":"password"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	u := decodeObject(t, rec)
	require.Equal(t, "ADMIN", u["role"])
	require.Equal(t, "admin@example.com", u["email"])
	_, hasPassword := u["password"]
	require.False(t, hasPassword)

	rec = call(t, h, http.MethodGet, "/api/users/"+u["id"].(string), "")
	require.Equal(t, http.StatusOK, rec.Code)

	requireError(t, call(t, h, http.MethodPost, "/api/login", `{"username":"admin","password":"nope"}`),
		http.StatusUnauthorized, "Invalid credentials")
	requireError(t, call(t, h, http.MethodGet, "/api/users/ghost", ""), http.StatusNotFound, "User not found")
}

func TestAPI_SampleDataAndSystemRoutes(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	cfg.SeedSampleData = true
	h := newTestApp(t, cfg)

	rec := call(t, h, http.MethodGet, "/api/leagues", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeList(t, rec), 2)

	rec = call(t, h, http.MethodGet, "/api/scorecards/m_sample_1", "")
	require.Equal(t, "sc_m_sample_1", decodeObject(t, rec)["id"])

	rec = call(t, h, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = call(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "cricket_http_requests_total")
}
