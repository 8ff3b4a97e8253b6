package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/werewolf-arena/internal/api"
	"github.com/mcoot/werewolf-arena/internal/api/response"
	"github.com/mcoot/werewolf-arena/internal/dependencies/mocks"
	"github.com/mcoot/werewolf-arena/internal/gateway"
	"github.com/mcoot/werewolf-arena/internal/model"
	"github.com/mcoot/werewolf-arena/internal/services/eval"
	"github.com/mcoot/werewolf-arena/internal/services/scoring"
	"github.com/mcoot/werewolf-arena/internal/storage/memory"
	"github.com/mcoot/werewolf-arena/internal/testutil"
)

// scriptedGateway plays every game to a one-round finish: it remembers
// the killer's id from the kill prompt and votes it out.
type scriptedGateway struct {
	wolfID model.ParticipantID
}

func (g *scriptedGateway) Ask(ctx context.Context, p *model.Participant, prompt string) (gateway.Fields, error) {
	switch {
	case strings.Contains(prompt, "YOU ARE THE WEREWOLF"):
		g.wolfID = p.ID
		return gateway.Fields{"player_id": firstCandidate(prompt)}, nil
	case strings.Contains(prompt, "YOU ARE THE SEER"):
		return gateway.Fields{"player_id": firstCandidate(prompt)}, nil
	case strings.Contains(prompt, "bid for speaking priority"):
		return gateway.Fields{"bid_amount": float64(1)}, nil
	case strings.Contains(prompt, "your turn to speak"):
		return gateway.Fields{"message": "something feels off"}, nil
	default:
		return gateway.Fields{"player_id": string(g.wolfID)}, nil
	}
}

func (g *scriptedGateway) AskRaw(ctx context.Context, p *model.Participant, prompt string) error {
	return nil
}

func firstCandidate(prompt string) string {
	for _, line := range strings.Split(prompt, "\n") {
		if rest, ok := strings.CutPrefix(line, "- "); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	storage *memory.Storage
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := testutil.NopLogger()
	store := memory.New()

	evalService := eval.New(
		&scriptedGateway{},
		scoring.New(),
		store,
		mocks.NewMockClock(time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)),
		mocks.NewMockRandom(),
		eval.DefaultConfig(),
		logger,
	)

	router := api.NewRouter(api.RouterConfig{
		Logger:      logger,
		EvalService: evalService,
		Storage:     store,
	})

	return &testServer{
		handler: router,
		storage: store,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func evaluateBody(gamesPerRole int, role string) map[string]any {
	return map[string]any{
		"participants": map[string]string{"agent": "http://agent:9000"},
		"config": map[string]any{
			"role":           role,
			"games_per_role": gamesPerRole,
		},
	}
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestEvaluateRunsBatch(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/evaluations", evaluateBody(1, ""))
	require.Equal(t, http.StatusCreated, rr.Code)

	var result response.Evaluation
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "complete", result.Status)
	require.NotNil(t, result.Result)
	assert.Equal(t, 3, result.Result.TotalGames)
}

func TestEvaluatePinnedRole(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/evaluations", evaluateBody(2, "seer"))
	require.Equal(t, http.StatusCreated, rr.Code)

	var result response.Evaluation
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, "seer", result.Role)
	assert.Equal(t, 2, result.Result.TotalGames)
}

func TestEvaluateRejectsMissingParticipants(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/evaluations", map[string]any{"config": map[string]any{}})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_REQUEST")
}

func TestEvaluateRejectsUnknownRole(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/evaluations", evaluateBody(1, "vampire"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_ROLE")
}

func TestEvaluateRejectsInvalidBody(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/evaluations", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetEvaluation(t *testing.T) {
	ts := newTestServer(t)

	created := ts.request(http.MethodPost, "/api/v1/evaluations", evaluateBody(1, "villager"))
	require.Equal(t, http.StatusCreated, created.Code)

	var evaluation response.Evaluation
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &evaluation))

	rr := ts.request(http.MethodGet, "/api/v1/evaluations/"+evaluation.ID, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var fetched response.Evaluation
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &fetched))
	assert.Equal(t, evaluation.ID, fetched.ID)
	assert.NotNil(t, fetched.Result)
}

func TestGetEvaluationNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/evaluations/nope", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "EVALUATION_NOT_FOUND")
}

func TestListEvaluations(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/evaluations", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var list response.EvaluationListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Empty(t, list.Evaluations)

	created := ts.request(http.MethodPost, "/api/v1/evaluations", evaluateBody(1, "villager"))
	require.Equal(t, http.StatusCreated, created.Code)

	rr = ts.request(http.MethodGet, "/api/v1/evaluations", nil)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Len(t, list.Evaluations, 1)
}

func TestDeleteEvaluation(t *testing.T) {
	ts := newTestServer(t)

	created := ts.request(http.MethodPost, "/api/v1/evaluations", evaluateBody(1, "villager"))
	require.Equal(t, http.StatusCreated, created.Code)

	var evaluation response.Evaluation
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &evaluation))

	rr := ts.request(http.MethodDelete, "/api/v1/evaluations/"+evaluation.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/evaluations/"+evaluation.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteEvaluationNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodDelete, "/api/v1/evaluations/nope", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
