package money_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"nft-stats/internal/pkg/money"
)

func TestFromWei(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		wei  string
		want string
	}{
		{"one ether", "1000000000000000000", "1"},
		{"fractional", "1500000000000000000", "1.5"},
		{"one wei", "1", "0.000000000000000001"},
		{"zero", "0", "0"},
		{"large volume", "123456789000000000000000", "123456.789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := money.FromWei(decimal.RequireFromString(tt.wei))
			if got.String() != tt.want {
				t.Fatalf("FromWei(%s) = %s, want %s", tt.wei, got, tt.want)
			}
		})
	}
}

func TestFromFixed(t *testing.T) {
	t.Parallel()

	got := money.FromFixed(decimal.RequireFromString("123450"), 4)
	if got.String() != "12.345" {
		t.Fatalf("FromFixed = %s, want 12.345", got)
	}
}

func TestFromWeiNull(t *testing.T) {
	t.Parallel()

	if got := money.FromWeiNull(decimal.NullDecimal{}); got != nil {
		t.Fatalf("FromWeiNull(null) = %s, want nil", got)
	}

	v := decimal.NullDecimal{Decimal: decimal.RequireFromString("2000000000000000000"), Valid: true}
	got := money.FromWeiNull(v)
	if got == nil || got.String() != "2" {
		t.Fatalf("FromWeiNull = %v, want 2", got)
	}
}
