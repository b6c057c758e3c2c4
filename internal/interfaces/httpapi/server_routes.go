package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}", handler.GetLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams", handler.ListTeamsByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/players", handler.ListPlayersByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/calendar", handler.GetLeagueCalendar)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/draft", handler.GetDraftState)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/draft/board", handler.GetDraftBoard)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams/{teamID}/lineup", handler.GetLineup)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/matchups", handler.ListMatchups)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/standings", handler.ListStandings)
	mux.HandleFunc("POST /v1/scoring/points", handler.CalculatePoints)
}

func registerAuthorizedDraftRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/leagues/{leagueID}/draft/picks", RequireAuth(verifier, http.HandlerFunc(handler.SubmitPick)))
	mux.Handle("DELETE /v1/leagues/{leagueID}/draft/picks/last", RequireAuth(verifier, http.HandlerFunc(handler.UndoLastPick)))
	mux.Handle("PUT /v1/leagues/{leagueID}/draft/order", RequireAuth(verifier, http.HandlerFunc(handler.SetDraftOrder)))
	mux.Handle("POST /v1/leagues/{leagueID}/draft/{action}", RequireAuth(verifier, http.HandlerFunc(handler.TransitionDraft)))
}

func registerAuthorizedQueueRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/leagues/{leagueID}/queue", RequireAuth(verifier, http.HandlerFunc(handler.ListQueue)))
	mux.Handle("POST /v1/leagues/{leagueID}/queue", RequireAuth(verifier, http.HandlerFunc(handler.Enqueue)))
	mux.Handle("DELETE /v1/leagues/{leagueID}/queue/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.Dequeue)))
	mux.Handle("PUT /v1/leagues/{leagueID}/queue/{playerID}/position", RequireAuth(verifier, http.HandlerFunc(handler.ReorderQueue)))
	mux.Handle("GET /v1/leagues/{leagueID}/queue/next", RequireAuth(verifier, http.HandlerFunc(handler.NextQueued)))
	mux.Handle("POST /v1/leagues/{leagueID}/queue/draft-next", RequireAuth(verifier, http.HandlerFunc(handler.DraftNextQueued)))
	mux.Handle("POST /v1/leagues/{leagueID}/queue/purge", RequireAuth(verifier, http.HandlerFunc(handler.PurgeQueue)))
}

func registerAuthorizedLeagueRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("PUT /v1/leagues/{leagueID}/scoring-weights", RequireAuth(verifier, http.HandlerFunc(handler.UpdateScoringWeights)))
	mux.Handle("PUT /v1/leagues/{leagueID}/teams/{teamID}/lineup", RequireAuth(verifier, http.HandlerFunc(handler.SaveLineup)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/matchups", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.CreateMatchups)))
	mux.Handle("POST /v1/internal/jobs/matchup-scoring", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunMatchupScoringJob)))
	mux.Handle("GET /v1/internal/jobs/matchup-scoring/last-run", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.GetMatchupScoringLastRun)))
}
