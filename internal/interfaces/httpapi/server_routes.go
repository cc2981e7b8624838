package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metrics Metrics) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metrics == nil {
		return
	}

	mux.Handle("GET /metrics", metrics.Handler())
}

func registerAuthRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /api/login", handler.Login)
	mux.HandleFunc("GET /api/users/{id}", handler.GetUser)
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /api/leagues/{id}", handler.GetLeague)
	mux.HandleFunc("POST /api/leagues", handler.CreateLeague)
	mux.HandleFunc("PUT /api/leagues/{id}", handler.UpdateLeague)
	mux.HandleFunc("DELETE /api/leagues/{id}", handler.DeleteLeague)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/teams", handler.ListTeams)
	mux.HandleFunc("GET /api/teams/{id}", handler.GetTeam)
	mux.HandleFunc("POST /api/teams", handler.CreateTeam)
	mux.HandleFunc("PUT /api/teams/{id}", handler.UpdateTeam)
	mux.HandleFunc("DELETE /api/teams/{id}", handler.DeleteTeam)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/players", handler.ListPlayers)
	mux.HandleFunc("GET /api/players/{id}", handler.GetPlayer)
	mux.HandleFunc("POST /api/players", handler.CreatePlayer)
	// Replaces the player's whole roster with the teamIds in the body.
	mux.HandleFunc("PUT /api/players/{id}", handler.UpdatePlayer)
	mux.HandleFunc("DELETE /api/players/{id}", handler.DeletePlayer)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/matches", handler.ListMatches)
	mux.HandleFunc("GET /api/matches/{id}", handler.GetMatch)
	mux.HandleFunc("POST /api/matches", handler.CreateMatch)
	mux.HandleFunc("PUT /api/matches/{id}", handler.UpdateMatch)
	mux.HandleFunc("DELETE /api/matches/{id}", handler.DeleteMatch)
}

func registerScorecardRoutes(mux *http.ServeMux, handler *Handler) {
	// GET is keyed by match id, PUT by scorecard id.
	mux.HandleFunc("GET /api/scorecards/{matchId}", handler.GetScorecardByMatch)
	mux.HandleFunc("PUT /api/scorecards/{id}", handler.UpsertScorecard)
}
