package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edivaldojuniordev/matrizcognis/internal/types"
	"github.com/edivaldojuniordev/matrizcognis/internal/voting"
)

func doRequest(t *testing.T, srv *Server, method, path string, body any, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestSubmitVote(t *testing.T) {
	srv, store := newTestServer(nil)

	rec := doRequest(t, srv, http.MethodPost, "/api/votes", types.VoteRequest{
		ProposalID: "ewaste", Criterion: 1, Score: 4,
	}, bearerFor(srv, "Cynthia Borelli", types.RoleMember))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	score, ok := store.votes.Get("cynthia", "ewaste", 1)
	require.True(t, ok)
	assert.Equal(t, types.Score(4), score)

	var resp struct {
		MemberID string `json:"memberId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "cynthia", resp.MemberID)
}

func TestSubmitVote_VisitorAttribution(t *testing.T) {
	srv, store := newTestServer(nil)

	rec := doRequest(t, srv, http.MethodPost, "/api/votes", types.VoteRequest{
		ProposalID: "ewaste", Criterion: 0, Score: 5,
	}, bearerFor(srv, "Lucas Pereira Desconhecido", types.RoleMember))

	require.Equal(t, http.StatusOK, rec.Code)
	_, ok := store.votes.Get(voting.VisitorID, "ewaste", 0)
	assert.True(t, ok)
}

func TestSubmitVote_RequiresAuth(t *testing.T) {
	srv, _ := newTestServer(nil)

	rec := doRequest(t, srv, http.MethodPost, "/api/votes", types.VoteRequest{
		ProposalID: "ewaste", Criterion: 0, Score: 3,
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSubmitVote_RejectsBadRequests(t *testing.T) {
	srv, store := newTestServer(nil)
	bearer := bearerFor(srv, "cynthia", types.RoleMember)

	for name, body := range map[string]types.VoteRequest{
		"zero score":        {ProposalID: "ewaste", Criterion: 0, Score: 0},
		"score too high":    {ProposalID: "ewaste", Criterion: 0, Score: 6},
		"missing proposal":  {Criterion: 0, Score: 3},
		"unknown proposal":  {ProposalID: "ghost", Criterion: 0, Score: 3},
		"criterion too big": {ProposalID: "ewaste", Criterion: 4, Score: 3},
	} {
		rec := doRequest(t, srv, http.MethodPost, "/api/votes", body, bearer)
		assert.Equal(t, http.StatusBadRequest, rec.Code, name)
	}
	assert.Empty(t, store.votes)
}

func TestSubmitVote_PersistFailureSurfaces(t *testing.T) {
	srv, store := newTestServer(nil)
	store.saveVotesErr = errors.New("connection reset")

	rec := doRequest(t, srv, http.MethodPost, "/api/votes", types.VoteRequest{
		ProposalID: "ewaste", Criterion: 0, Score: 3,
	}, bearerFor(srv, "cynthia", types.RoleMember))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), MsgVoteNotSaved)
}

func TestClearVote(t *testing.T) {
	srv, store := newTestServer(nil)
	store.votes.Set("cynthia", "ewaste", 0, 3)
	store.votes.Set("cynthia", "ewaste", 1, 4)

	rec := doRequest(t, srv, http.MethodDelete, "/api/votes", types.ClearVoteRequest{
		ProposalID: "ewaste", Criterion: 0,
	}, bearerFor(srv, "Cynthia Borelli", types.RoleMember))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	_, ok := store.votes.Get("cynthia", "ewaste", 0)
	assert.False(t, ok)
	score, ok := store.votes.Get("cynthia", "ewaste", 1)
	require.True(t, ok)
	assert.Equal(t, types.Score(4), score)
}

func TestClearVote_UnknownProposal(t *testing.T) {
	srv, store := newTestServer(nil)
	store.votes.Set("cynthia", "ewaste", 0, 3)

	rec := doRequest(t, srv, http.MethodDelete, "/api/votes", types.ClearVoteRequest{
		ProposalID: "ghost", Criterion: 0,
	}, bearerFor(srv, "Cynthia Borelli", types.RoleMember))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	score, ok := store.votes.Get("cynthia", "ewaste", 0)
	require.True(t, ok)
	assert.Equal(t, types.Score(3), score)
}

func TestSubmitVote_PreservesOtherVoters(t *testing.T) {
	srv, store := newTestServer(nil)
	store.votes.Set("gabriel", "ewaste", 0, 5)

	rec := doRequest(t, srv, http.MethodPost, "/api/votes", types.VoteRequest{
		ProposalID: "ewaste", Criterion: 0, Score: 2,
	}, bearerFor(srv, "Cynthia Borelli", types.RoleMember))

	require.Equal(t, http.StatusOK, rec.Code)
	score, ok := store.votes.Get("gabriel", "ewaste", 0)
	require.True(t, ok)
	assert.Equal(t, types.Score(5), score)
}
