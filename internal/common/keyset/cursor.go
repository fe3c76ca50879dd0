package keyset

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"nft-stats/internal/domain/entity"
)

// ErrInvalidCursor indicates that a continuation token could not be decoded
// as the numeric type expected by the active sort dimension. It is surfaced
// to the caller rather than silently ignored: resetting to page one would
// produce silent incorrect pagination.
var ErrInvalidCursor = errors.New("invalid continuation token")

// EncodeCursor encodes the sort-key value of the last row of a page into an
// opaque continuation token.
func EncodeCursor(v decimal.Decimal) string {
	return base64.StdEncoding.EncodeToString([]byte(v.String()))
}

// DecodeCursor decodes a continuation token back into the numeric resume
// value. Re-issuing the same query with "value strictly less than cursor"
// appended yields exactly the rows that sort after the previous page's last
// item, as of the data snapshot at query time.
func DecodeCursor(token string) (decimal.Decimal, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: not base64", ErrInvalidCursor)
	}
	v, err := decimal.NewFromString(string(raw))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: not numeric", ErrInvalidCursor)
	}
	return v, nil
}

// NextCursor derives the continuation token for the page ending at last,
// ordered by the given dimension. Returns nil when the sort value is null:
// with nulls ordered last a "less than" resume predicate can never match a
// null row, so the null region marks end-of-results.
func NextCursor(d SortDimension, last *entity.Collection) *string {
	v := d.CursorValue(last)
	if !v.Valid {
		return nil
	}
	token := EncodeCursor(v.Decimal)
	return &token
}
