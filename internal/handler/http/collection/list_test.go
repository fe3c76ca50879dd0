package collection

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nft-stats/internal/common/keyset"
	collUC "nft-stats/internal/usecase/collection"
)

type stubService struct {
	lastList collUC.ListInput
	listOut  *collUC.ListResult
	listErr  error

	lastGetID  string
	lastTopBid bool
	getOut     *collUC.Collection
	getErr     error
}

func (s *stubService) List(_ context.Context, in collUC.ListInput) (*collUC.ListResult, error) {
	s.lastList = in
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.listOut, nil
}

func (s *stubService) Get(_ context.Context, id string, includeTopBid bool) (*collUC.Collection, error) {
	s.lastGetID = id
	s.lastTopBid = includeTopBid
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.getOut, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestListHandler_ParsesQuery(t *testing.T) {
	svc := &stubService{listOut: &collUC.ListResult{Collections: []collUC.Collection{}}}
	handler := ListHandler{Svc: svc, Logger: discardLogger()}

	req := httptest.NewRequest(http.MethodGet,
		"/collections?community=pfp&collectionsSetId=blue-chips&contract=0xED5AF388653567Af2F388E6224dC7C4b3241C544&name=azu&slug=azuki&sortBy=7DayVolume&includeTopBid=true&limit=5&continuation=MzA", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, collUC.ListInput{
		Community:        "pfp",
		CollectionsSetID: "blue-chips",
		Contract:         "0xed5af388653567af2f388e6224dc7c4b3241c544",
		Name:             "azu",
		Slug:             "azuki",
		SortBy:           "7DayVolume",
		IncludeTopBid:    true,
		Limit:            5,
		Continuation:     "MzA",
	}, svc.lastList)
}

func TestListHandler_ResponseEnvelope(t *testing.T) {
	cont := "MzA"
	svc := &stubService{listOut: &collUC.ListResult{
		Collections:  []collUC.Collection{{ID: "c1", Slug: "azuki", Name: "Azuki"}},
		Continuation: &cont,
	}}
	handler := ListHandler{Svc: svc, Logger: discardLogger()}

	req := httptest.NewRequest(http.MethodGet, "/collections?community=pfp", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Collections  []map[string]any `json:"collections"`
		Continuation *string          `json:"continuation"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Collections, 1)
	assert.Equal(t, "azuki", body.Collections[0]["slug"])
	require.NotNil(t, body.Continuation)
	assert.Equal(t, "MzA", *body.Continuation)
}

func TestListHandler_LastPageHasNullContinuation(t *testing.T) {
	svc := &stubService{listOut: &collUC.ListResult{
		Collections: []collUC.Collection{{ID: "c1"}},
	}}
	handler := ListHandler{Svc: svc, Logger: discardLogger()}

	req := httptest.NewRequest(http.MethodGet, "/collections?community=pfp", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "null", string(body["continuation"]))
}

func TestListHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"missing discriminating filter", collUC.ErrInvalidRequest, http.StatusBadRequest},
		{"malformed continuation", keyset.ErrInvalidCursor, http.StatusBadRequest},
		{"store failure", errors.New("pq: connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{listErr: tt.err}
			handler := ListHandler{Svc: svc, Logger: discardLogger()}

			req := httptest.NewRequest(http.MethodGet, "/collections?community=pfp", nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestListHandler_RejectsBadParams(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"non-boolean includeTopBid", "/collections?community=pfp&includeTopBid=maybe"},
		{"non-numeric limit", "/collections?community=pfp&limit=abc"},
		{"negative limit", "/collections?community=pfp&limit=-1"},
		{"non-hex contract", "/collections?contract=not-hex"},
		{"short contract", "/collections?contract=0xabc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{listOut: &collUC.ListResult{}}
			handler := ListHandler{Svc: svc, Logger: discardLogger()}

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
