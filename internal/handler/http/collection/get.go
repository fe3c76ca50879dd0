package collection

import (
	"errors"
	"net/http"
	"strconv"

	"nft-stats/internal/handler/http/pathutil"
	"nft-stats/internal/handler/http/respond"
	collUC "nft-stats/internal/usecase/collection"
)

type GetHandler struct{ Svc Service }

// ServeHTTP retrieves a single collection by its identifier.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/collections/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	includeTopBid := false
	if raw := r.URL.Query().Get("includeTopBid"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			respond.SafeError(w, http.StatusBadRequest, errors.New("includeTopBid must be a boolean"))
			return
		}
		includeTopBid = v
	}

	out, err := h.Svc.Get(r.Context(), id, includeTopBid)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, collUC.ErrCollectionNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, out)
}
