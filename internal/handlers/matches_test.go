package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TENNIS-TRACKER_BACK-END/internal/apperr"
	"TENNIS-TRACKER_BACK-END/internal/dto"
	"TENNIS-TRACKER_BACK-END/internal/models"
	"TENNIS-TRACKER_BACK-END/internal/utils"
)

func authedRequest(method, target string, body string, userID int64) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return req.WithContext(utils.WithUserID(req.Context(), userID))
}

func sampleMatch() *models.Match {
	return &models.Match{
		ID:           5,
		UserID:       1,
		MatchDate:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		OpponentName: "Alex",
		Result:       "W",
		CreatedAt:    time.Date(2025, 3, 10, 12, 30, 0, 0, time.UTC),
	}
}

func TestMatchesHandler_CreateMatch(t *testing.T) {
	t.Run("returns the created match", func(t *testing.T) {
		repo := &fakeMatchRepo{match: sampleMatch()}
		h := NewMatchesHandler(repo)

		req := authedRequest(http.MethodPost, "/matches",
			`{"match_date":"2025-03-10","opponent_name":"Alex","result":"W"}`, 1)
		rec := httptest.NewRecorder()
		h.Matches(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, int64(1), repo.lastUserID)
		assert.Equal(t, "Alex", repo.lastInput.OpponentName)

		var body dto.MatchEnvelope
		decodeBody(t, rec, &body)
		assert.Equal(t, int64(5), body.Match.ID)
		assert.Equal(t, "2025-03-10", body.Match.MatchDate)
		assert.Equal(t, "2025-03-10T12:30:00Z", body.Match.CreatedAt)
	})

	t.Run("renders validation errors as 400", func(t *testing.T) {
		repo := &fakeMatchRepo{err: apperr.NewValidation("result", "result must be 'W' or 'L'")}
		h := NewMatchesHandler(repo)

		req := authedRequest(http.MethodPost, "/matches",
			`{"match_date":"2025-03-10","opponent_name":"Alex","result":"X"}`, 1)
		rec := httptest.NewRecorder()
		h.Matches(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body dto.ErrorResponse
		decodeBody(t, rec, &body)
		assert.Equal(t, "result must be 'W' or 'L'", body.Error)
	})

	t.Run("rejects requests without auth context", func(t *testing.T) {
		repo := &fakeMatchRepo{}
		h := NewMatchesHandler(repo)

		req := httptest.NewRequest(http.MethodPost, "/matches",
			strings.NewReader(`{"match_date":"2025-03-10","opponent_name":"Alex","result":"W"}`))
		rec := httptest.NewRecorder()
		h.Matches(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Zero(t, repo.calls)
	})
}

func TestMatchesHandler_ListMatches(t *testing.T) {
	t.Run("passes filters through and wraps the result", func(t *testing.T) {
		repo := &fakeMatchRepo{matches: []models.Match{*sampleMatch()}}
		h := NewMatchesHandler(repo)

		req := authedRequest(http.MethodGet,
			"/matches?opponent=Alex&result=W&from=2025-01-01&to=2025-03-31", "", 1)
		rec := httptest.NewRecorder()
		h.Matches(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Alex", repo.lastFilter.Opponent)
		assert.Equal(t, "W", repo.lastFilter.Result)
		assert.Equal(t, "2025-01-01", repo.lastFilter.From)
		assert.Equal(t, "2025-03-31", repo.lastFilter.To)

		var body dto.MatchListResponse
		decodeBody(t, rec, &body)
		require.Len(t, body.Matches, 1)
		assert.Equal(t, "2025-03-10", body.Matches[0].MatchDate)
	})

	t.Run("empty result is an empty array", func(t *testing.T) {
		repo := &fakeMatchRepo{matches: []models.Match{}}
		h := NewMatchesHandler(repo)

		rec := httptest.NewRecorder()
		h.Matches(rec, authedRequest(http.MethodGet, "/matches", "", 1))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"matches":[]}`, rec.Body.String())
	})
}

func TestMatchesHandler_MatchDetail(t *testing.T) {
	t.Run("returns the match", func(t *testing.T) {
		repo := &fakeMatchRepo{match: sampleMatch()}
		h := NewMatchesHandler(repo)

		rec := httptest.NewRecorder()
		h.Matches(rec, authedRequest(http.MethodGet, "/matches/5", "", 1))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(5), repo.lastID)
		assert.Equal(t, int64(1), repo.lastUserID)
	})

	t.Run("non-integer id never reaches the repository", func(t *testing.T) {
		repo := &fakeMatchRepo{}
		h := NewMatchesHandler(repo)

		for _, target := range []string{"/matches/abc", "/matches/1.5", "/matches/-2"} {
			rec := httptest.NewRecorder()
			h.Matches(rec, authedRequest(http.MethodGet, target, "", 1))

			assert.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)

			var body dto.ErrorResponse
			decodeBody(t, rec, &body)
			assert.Equal(t, "Match id must be an integer", body.Error)
		}
		assert.Zero(t, repo.calls)
	})

	t.Run("not found and not owned look the same", func(t *testing.T) {
		repo := &fakeMatchRepo{err: apperr.ErrNotFound}
		h := NewMatchesHandler(repo)

		rec := httptest.NewRecorder()
		h.Matches(rec, authedRequest(http.MethodGet, "/matches/5", "", 2))

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var body dto.ErrorResponse
		decodeBody(t, rec, &body)
		assert.Equal(t, "Match not found", body.Error)
	})
}

func TestMatchesHandler_UpdateMatch(t *testing.T) {
	t.Run("replaces and returns the match", func(t *testing.T) {
		updated := sampleMatch()
		updated.Result = "L"
		repo := &fakeMatchRepo{match: updated}
		h := NewMatchesHandler(repo)

		req := authedRequest(http.MethodPut, "/matches/5",
			`{"match_date":"2025-03-10","opponent_name":"Alex","result":"L"}`, 1)
		rec := httptest.NewRecorder()
		h.Matches(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(5), repo.lastID)
		assert.Equal(t, "L", repo.lastInput.Result)

		var body dto.MatchEnvelope
		decodeBody(t, rec, &body)
		assert.Equal(t, "L", body.Match.Result)
	})

	t.Run("update of missing match is 404", func(t *testing.T) {
		repo := &fakeMatchRepo{err: apperr.ErrNotFound}
		h := NewMatchesHandler(repo)

		req := authedRequest(http.MethodPut, "/matches/99",
			`{"match_date":"2025-03-10","opponent_name":"Alex","result":"L"}`, 1)
		rec := httptest.NewRecorder()
		h.Matches(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMatchesHandler_DeleteMatch(t *testing.T) {
	t.Run("confirms deletion with the id", func(t *testing.T) {
		repo := &fakeMatchRepo{deletedID: 5}
		h := NewMatchesHandler(repo)

		rec := httptest.NewRecorder()
		h.Matches(rec, authedRequest(http.MethodDelete, "/matches/5", "", 1))

		assert.Equal(t, http.StatusOK, rec.Code)

		var body dto.DeleteMatchResponse
		decodeBody(t, rec, &body)
		assert.Equal(t, "Match deleted", body.Message)
		assert.Equal(t, int64(5), body.ID)
	})

	t.Run("deleting a missing match is 404", func(t *testing.T) {
		repo := &fakeMatchRepo{err: apperr.ErrNotFound}
		h := NewMatchesHandler(repo)

		rec := httptest.NewRecorder()
		h.Matches(rec, authedRequest(http.MethodDelete, "/matches/5", "", 1))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestOpponentsHandler_Summary(t *testing.T) {
	t.Run("returns the aggregate rows in order", func(t *testing.T) {
		repo := &fakeMatchRepo{summaries: []models.OpponentSummary{
			{OpponentName: "Alex", Matches: 3, Wins: 2, Losses: 1},
			{OpponentName: "Sam", Matches: 1, Wins: 1, Losses: 0},
		}}
		h := NewOpponentsHandler(repo)

		rec := httptest.NewRecorder()
		h.Summary(rec, authedRequest(http.MethodGet, "/opponents/summary", "", 1))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"opponents":[
			{"opponent_name":"Alex","matches":3,"wins":2,"losses":1},
			{"opponent_name":"Sam","matches":1,"wins":1,"losses":0}
		]}`, rec.Body.String())
	})

	t.Run("requires auth context", func(t *testing.T) {
		h := NewOpponentsHandler(&fakeMatchRepo{})

		rec := httptest.NewRecorder()
		h.Summary(rec, httptest.NewRequest(http.MethodGet, "/opponents/summary", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
