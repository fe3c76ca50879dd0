package collection

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	collUC "nft-stats/internal/usecase/collection"
)

func TestGetHandler(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &stubService{getOut: &collUC.Collection{ID: "c1", Slug: "azuki", Name: "Azuki"}}
		handler := GetHandler{Svc: svc}

		req := httptest.NewRequest(http.MethodGet, "/collections/c1?includeTopBid=true", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "c1", svc.lastGetID)
		assert.True(t, svc.lastTopBid)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "azuki", body["slug"])
	})

	t.Run("not found", func(t *testing.T) {
		svc := &stubService{getErr: collUC.ErrCollectionNotFound}
		handler := GetHandler{Svc: svc}

		req := httptest.NewRequest(http.MethodGet, "/collections/missing", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		svc := &stubService{getErr: errors.New("pq: connection refused")}
		handler := GetHandler{Svc: svc}

		req := httptest.NewRequest(http.MethodGet, "/collections/c1", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("empty id", func(t *testing.T) {
		svc := &stubService{}
		handler := GetHandler{Svc: svc}

		req := httptest.NewRequest(http.MethodGet, "/collections/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad includeTopBid", func(t *testing.T) {
		svc := &stubService{}
		handler := GetHandler{Svc: svc}

		req := httptest.NewRequest(http.MethodGet, "/collections/c1?includeTopBid=maybe", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
