package keyset_test

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"nft-stats/internal/common/keyset"
	"nft-stats/internal/domain/entity"
)

func TestCursorRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
	}{
		{"integer", "30"},
		{"zero", "0"},
		{"fractional", "12.345"},
		{"wei scale", "1234567890123456789012345678"},
		{"negative change", "-3.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := decimal.RequireFromString(tt.value)
			token := keyset.EncodeCursor(v)

			got, err := keyset.DecodeCursor(token)
			if err != nil {
				t.Fatalf("DecodeCursor err=%v", err)
			}
			if !got.Equal(v) {
				t.Fatalf("round trip = %s, want %s", got, v)
			}
		})
	}
}

func TestDecodeCursor_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
	}{
		{"not base64", "not-a-number!!!"},
		{"base64 but not numeric", base64.StdEncoding.EncodeToString([]byte("not-a-number"))},
		{"empty payload", base64.StdEncoding.EncodeToString(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := keyset.DecodeCursor(tt.token)
			if !errors.Is(err, keyset.ErrInvalidCursor) {
				t.Fatalf("DecodeCursor(%q) err=%v, want ErrInvalidCursor", tt.token, err)
			}
		})
	}
}

func TestNextCursor(t *testing.T) {
	t.Parallel()

	last := &entity.Collection{
		Day7: entity.WindowStats{Volume: nullDecimal("30")},
	}
	token := keyset.NextCursor(keyset.Sort7DayVolume, last)
	if token == nil {
		t.Fatal("NextCursor returned nil for a non-null sort value")
	}
	v, err := keyset.DecodeCursor(*token)
	if err != nil || v.String() != "30" {
		t.Fatalf("decoded next cursor = %s err=%v, want 30", v, err)
	}
}

// A full page ending on a null sort value cannot be resumed: with nulls
// ordered last, "field < cursor" never matches a null row. The engine must
// signal end-of-results instead of emitting a dead cursor.
func TestNextCursor_NullSortValue(t *testing.T) {
	t.Parallel()

	last := &entity.Collection{}
	if token := keyset.NextCursor(keyset.Sort7DayVolume, last); token != nil {
		t.Fatalf("NextCursor = %q, want nil", *token)
	}
}
