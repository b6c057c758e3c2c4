package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/user"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/infrastructure/repository/memory"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/id"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/logging"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/usecase"
)

const testJobToken = "job-token"

// stubVerifier accepts tokens of the form "token-<userID>".
type stubVerifier struct{}

func (stubVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	userID, ok := strings.CutPrefix(token, "token-")
	if !ok || userID == "" {
		return user.Principal{}, fmt.Errorf("%w: unknown token", usecase.ErrUnauthorized)
	}
	return user.Principal{UserID: userID}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	leagues := memory.NewLeagueRepository(memory.SeedLeagues())
	teams := memory.NewTeamRepository(memory.SeedTeams())
	players := memory.NewPlayerRepository(memory.SeedPlayers())
	draftRepo := memory.NewDraftRepository(leagues)
	queueRepo := memory.NewQueueRepository()
	rosterRepo := memory.NewRosterRepository()
	games := memory.NewGameRepository(nil)
	stats := memory.NewPlayerStatsRepository()
	matchups := memory.NewMatchupRepository(nil)
	runs := memory.NewJobRunRepository()

	draftService := usecase.NewDraftService(leagues, teams, draftRepo, players, id.NewSequence("pick"), logger)
	services := Services{
		League:  usecase.NewLeagueService(leagues, teams, matchups, id.NewSequence("matchup"), time.UTC),
		Player:  usecase.NewPlayerService(leagues, players, draftRepo),
		Draft:   draftService,
		Queue:   usecase.NewQueueService(leagues, players, draftRepo, queueRepo, draftService, logger),
		Roster:  usecase.NewRosterService(leagues, teams, draftRepo, players, rosterRepo, games, time.UTC),
		Matchup: usecase.NewMatchupService(leagues, teams, matchups),
		Scoring: usecase.NewScoringService(leagues),
		Job: usecase.NewMatchupScoringJob(usecase.MatchupScoringRepositories{
			Leagues:  leagues,
			Teams:    teams,
			Draft:    draftRepo,
			Players:  players,
			Games:    games,
			Stats:    stats,
			Roster:   rosterRepo,
			Matchups: matchups,
			Runs:     runs,
		}, id.NewSequence("run"), usecase.MatchupScoringJobConfig{Workers: 2}, logger),
	}

	return NewRouter(NewHandler(services, logger), stubVerifier{}, logger, nil, testJobToken)
}

type apiResponse struct {
	APIVersion string           `json:"apiVersion"`
	Data       map[string]any   `json:"data"`
	Error      *googleErrorBody `json:"error"`
}

func doRequest(t *testing.T, router http.Handler, method, path, userID, body string) (int, apiResponse) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequestWithContext(t.Context(), method, path, reader)
	if userID != "" {
		req.Header.Set("Authorization", "Bearer token-"+userID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var out apiResponse
	if rec.Body.Len() > 0 {
		if err := sonic.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode %s %s response: %v body=%s", method, path, err, rec.Body.String())
		}
	}
	return rec.Code, out
}

func errorReason(resp apiResponse) string {
	if resp.Error == nil || len(resp.Error.Errors) == 0 {
		return ""
	}
	return resp.Error.Errors[0].Reason
}

func TestRouter_Healthz(t *testing.T) {
	t.Parallel()

	code, resp := doRequest(t, newTestRouter(t), http.MethodGet, "/healthz", "", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if resp.Data["status"] != "ok" {
		t.Fatalf("unexpected health payload: %+v", resp.Data)
	}
}

func TestRouter_DraftFlow(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	base := "/v1/leagues/" + memory.LeagueIDDemo + "/draft"

	if code, resp := doRequest(t, router, http.MethodPost, base+"/lobby", memory.DemoCommissionerUser, ""); code != http.StatusOK {
		t.Fatalf("open lobby: status=%d error=%+v", code, resp.Error)
	}
	if code, resp := doRequest(t, router, http.MethodPost, base+"/start", memory.DemoCommissionerUser, ""); code != http.StatusOK {
		t.Fatalf("start draft: status=%d error=%+v", code, resp.Error)
	}

	code, resp := doRequest(t, router, http.MethodPost, base+"/picks", "user-2", `{"player_id":"nhl-c-01"}`)
	if code != http.StatusConflict || errorReason(resp) != "wrongTurn" {
		t.Fatalf("expected 409 wrongTurn, got %d %q", code, errorReason(resp))
	}

	code, resp = doRequest(t, router, http.MethodPost, base+"/picks", "user-1", `{"player_id":"nhl-c-01"}`)
	if code != http.StatusCreated {
		t.Fatalf("expected 201, got %d error=%+v", code, resp.Error)
	}
	next, _ := resp.Data["next_turn"].(map[string]any)
	if next["team_id"] != "team-2" {
		t.Fatalf("expected team-2 on the clock, got %+v", resp.Data["next_turn"])
	}

	code, resp = doRequest(t, router, http.MethodPost, base+"/picks", "user-2", `{"player_id":"nhl-c-01"}`)
	if code != http.StatusConflict || errorReason(resp) != "playerAlreadyDrafted" {
		t.Fatalf("expected 409 playerAlreadyDrafted, got %d %q", code, errorReason(resp))
	}

	code, resp = doRequest(t, router, http.MethodGet, base, "", "")
	if code != http.StatusOK {
		t.Fatalf("get draft state: %d", code)
	}
	if resp.Data["status"] != "active" || resp.Data["pick_count"] != float64(1) {
		t.Fatalf("unexpected draft state: %+v", resp.Data)
	}
}

func TestRouter_DraftPickRequiresAuth(t *testing.T) {
	t.Parallel()

	code, resp := doRequest(t, newTestRouter(t), http.MethodPost,
		"/v1/leagues/"+memory.LeagueIDDemo+"/draft/picks", "", `{"player_id":"nhl-c-01"}`)
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if resp.Error == nil || resp.Error.Status != "UNAUTHENTICATED" {
		t.Fatalf("unexpected error body: %+v", resp.Error)
	}
}

func TestRouter_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	code, resp := doRequest(t, newTestRouter(t), http.MethodPost,
		"/v1/leagues/"+memory.LeagueIDDemo+"/draft/picks", "user-1", `{"player_id":"nhl-c-01","extra":true}`)
	if code != http.StatusBadRequest || errorReason(resp) != "invalidInput" {
		t.Fatalf("expected 400 invalidInput, got %d %q", code, errorReason(resp))
	}
}

func TestRouter_SaveLineupRejectsPastDate(t *testing.T) {
	t.Parallel()

	code, resp := doRequest(t, newTestRouter(t), http.MethodPut,
		"/v1/leagues/"+memory.LeagueIDDemo+"/teams/team-1/lineup", "user-1",
		`{"date":"2020-01-06","active":["nhl-c-01"],"bench":[]}`)
	if code != http.StatusBadRequest || errorReason(resp) != "pastDate" {
		t.Fatalf("expected 400 pastDate, got %d %q", code, errorReason(resp))
	}
}

func TestRouter_SaveLineupForbidsOtherOwners(t *testing.T) {
	t.Parallel()

	date := time.Now().UTC().AddDate(0, 0, 2).Format(time.DateOnly)
	code, _ := doRequest(t, newTestRouter(t), http.MethodPut,
		"/v1/leagues/"+memory.LeagueIDDemo+"/teams/team-1/lineup", "user-2",
		`{"date":"`+date+`","active":["nhl-c-01"],"bench":[]}`)
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}

func TestRouter_CalculatePointsWithDefaultWeights(t *testing.T) {
	t.Parallel()

	code, resp := doRequest(t, newTestRouter(t), http.MethodPost, "/v1/scoring/points", "",
		`{"stats":{"goals":2,"assists":1}}`)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d error=%+v", code, resp.Error)
	}
	if resp.Data["total"] != float64(8) {
		t.Fatalf("expected 8 points, got %+v", resp.Data)
	}
}

func TestRouter_CalendarBeforeDraftCompletes(t *testing.T) {
	t.Parallel()

	code, _ := doRequest(t, newTestRouter(t), http.MethodGet,
		"/v1/leagues/"+memory.LeagueIDDemo+"/calendar", "", "")
	if code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", code)
	}
}

func TestRouter_InternalJobRequiresToken(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	req := httptest.NewRequestWithContext(t.Context(), http.MethodPost, "/v1/internal/jobs/matchup-scoring", nil)
	req.Header.Set("X-Internal-Job-Token", "wrong")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRouter_MatchupScoringJobRecordsLastRun(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	call := func(method, path string) (int, apiResponse) {
		req := httptest.NewRequestWithContext(t.Context(), method, path, nil)
		req.Header.Set("X-Internal-Job-Token", testJobToken)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		var out apiResponse
		if err := sonic.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		return rec.Code, out
	}

	if code, _ := call(http.MethodGet, "/v1/internal/jobs/matchup-scoring/last-run"); code != http.StatusNotFound {
		t.Fatalf("expected 404 before the first run, got %d", code)
	}

	code, resp := call(http.MethodPost, "/v1/internal/jobs/matchup-scoring")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d error=%+v", code, resp.Error)
	}
	if resp.Data["status"] != "succeeded" || resp.Data["leagues"] != float64(0) {
		t.Fatalf("unexpected run: %+v", resp.Data)
	}
	runID := resp.Data["run_id"]

	code, resp = call(http.MethodGet, "/v1/internal/jobs/matchup-scoring/last-run")
	if code != http.StatusOK || resp.Data["run_id"] != runID {
		t.Fatalf("expected last run %v, got %d %+v", runID, code, resp.Data)
	}
}
