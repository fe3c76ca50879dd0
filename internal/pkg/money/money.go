// Package money converts fixed-point on-chain amounts into display decimals.
// All conversions are pure and deterministic: shifting the decimal point is
// exact, so no value is ever rounded away beyond the currency's smallest unit.
package money

import "github.com/shopspring/decimal"

// EtherDecimals is the fixed-point scale of wei-denominated amounts.
const EtherDecimals int32 = 18

// FromFixed converts a fixed-point integer amount with the given scale into
// its display decimal value.
func FromFixed(amount decimal.Decimal, decimals int32) decimal.Decimal {
	return amount.Shift(-decimals)
}

// FromWei converts a wei-denominated amount into ether.
func FromWei(amount decimal.Decimal) decimal.Decimal {
	return FromFixed(amount, EtherDecimals)
}

// FromWeiNull converts a nullable wei amount, preserving null as nil.
func FromWeiNull(amount decimal.NullDecimal) *decimal.Decimal {
	if !amount.Valid {
		return nil
	}
	v := FromWei(amount.Decimal)
	return &v
}
