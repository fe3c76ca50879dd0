package keyset_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"nft-stats/internal/common/keyset"
	"nft-stats/internal/domain/entity"
)

func TestParseSortDimension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		selector string
		want     keyset.SortDimension
	}{
		{
			name:     "all time volume",
			selector: "allTimeVolume",
			want:     keyset.SortAllTimeVolume,
		},
		{
			name:     "1 day volume",
			selector: "1DayVolume",
			want:     keyset.Sort1DayVolume,
		},
		{
			name:     "7 day volume",
			selector: "7DayVolume",
			want:     keyset.Sort7DayVolume,
		},
		{
			name:     "30 day volume",
			selector: "30DayVolume",
			want:     keyset.Sort30DayVolume,
		},
		{
			name:     "empty selector falls back to default",
			selector: "",
			want:     keyset.SortAllTimeVolume,
		},
		{
			name:     "unknown selector falls back to default",
			selector: "floorPrice",
			want:     keyset.SortAllTimeVolume,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := keyset.ParseSortDimension(tt.selector); got != tt.want {
				t.Fatalf("ParseSortDimension(%q) = %v, want %v", tt.selector, got, tt.want)
			}
		})
	}
}

func TestSortDimension_Column(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dim  keyset.SortDimension
		want string
	}{
		{keyset.SortAllTimeVolume, "all_time_volume"},
		{keyset.Sort1DayVolume, "day1_volume"},
		{keyset.Sort7DayVolume, "day7_volume"},
		{keyset.Sort30DayVolume, "day30_volume"},
	}

	for _, tt := range tests {
		if got := tt.dim.Column(); got != tt.want {
			t.Errorf("%v.Column() = %q, want %q", tt.dim, got, tt.want)
		}
	}
}

func TestSortDimension_OrderClause(t *testing.T) {
	t.Parallel()

	if got := keyset.Sort7DayVolume.OrderClause("c"); got != "c.day7_volume DESC NULLS LAST" {
		t.Fatalf("OrderClause with alias = %q", got)
	}
	if got := keyset.SortAllTimeVolume.OrderClause(""); got != "all_time_volume DESC NULLS LAST" {
		t.Fatalf("OrderClause without alias = %q", got)
	}
}

func TestSortDimension_IsDefault(t *testing.T) {
	t.Parallel()

	if !keyset.SortAllTimeVolume.IsDefault() {
		t.Fatal("all-time volume should be the default dimension")
	}
	if keyset.Sort7DayVolume.IsDefault() {
		t.Fatal("7 day volume should not be the default dimension")
	}
}

// CursorValue must read the same field the order clause sorts on, for every
// dimension, so a page boundary derived from the last row resumes correctly.
func TestSortDimension_CursorValue(t *testing.T) {
	t.Parallel()

	c := &entity.Collection{
		Day1:    entity.WindowStats{Volume: nullDecimal("1")},
		Day7:    entity.WindowStats{Volume: nullDecimal("7")},
		Day30:   entity.WindowStats{Volume: nullDecimal("30")},
		AllTime: entity.WindowStats{Volume: nullDecimal("999")},
	}

	tests := []struct {
		dim  keyset.SortDimension
		want string
	}{
		{keyset.Sort1DayVolume, "1"},
		{keyset.Sort7DayVolume, "7"},
		{keyset.Sort30DayVolume, "30"},
		{keyset.SortAllTimeVolume, "999"},
	}

	for _, tt := range tests {
		v := tt.dim.CursorValue(c)
		if !v.Valid || v.Decimal.String() != tt.want {
			t.Errorf("%v.CursorValue() = %v, want %s", tt.dim, v, tt.want)
		}
	}
}

func nullDecimal(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}
