// Package keyset implements keyset pagination over collection statistics:
// sort dimension selection, order clause derivation and the opaque
// continuation cursor codec. Pages resume from the last seen sort-key value
// rather than a row offset, which keeps pagination stable under insertions
// and deletions before the current position.
package keyset

import (
	"github.com/shopspring/decimal"

	"nft-stats/internal/domain/entity"
)

// SortDimension selects which precomputed volume field drives the ordering
// of a collection listing.
type SortDimension int

const (
	// SortAllTimeVolume is the default sort dimension.
	SortAllTimeVolume SortDimension = iota
	Sort1DayVolume
	Sort7DayVolume
	Sort30DayVolume
)

// binding ties everything derived from a sort dimension in a single place:
// the backing column, the external selector name and the accessor used to
// seed the continuation cursor. Keeping these together guarantees the order
// clause and the cursor derivation cannot drift apart.
type binding struct {
	name   string
	column string
	value  func(c *entity.Collection) decimal.NullDecimal
}

var bindings = map[SortDimension]binding{
	SortAllTimeVolume: {
		name:   "allTimeVolume",
		column: "all_time_volume",
		value:  func(c *entity.Collection) decimal.NullDecimal { return c.AllTime.Volume },
	},
	Sort1DayVolume: {
		name:   "1DayVolume",
		column: "day1_volume",
		value:  func(c *entity.Collection) decimal.NullDecimal { return c.Day1.Volume },
	},
	Sort7DayVolume: {
		name:   "7DayVolume",
		column: "day7_volume",
		value:  func(c *entity.Collection) decimal.NullDecimal { return c.Day7.Volume },
	},
	Sort30DayVolume: {
		name:   "30DayVolume",
		column: "day30_volume",
		value:  func(c *entity.Collection) decimal.NullDecimal { return c.Day30.Volume },
	},
}

// ParseSortDimension maps an external selector to a sort dimension.
// Unknown selectors fail closed to the all-time default rather than
// erroring, mirroring the permissive filter behavior.
func ParseSortDimension(s string) SortDimension {
	for dim, b := range bindings {
		if b.name == s {
			return dim
		}
	}
	return SortAllTimeVolume
}

// String returns the external selector name of the dimension.
func (d SortDimension) String() string {
	return bindings[d].name
}

// IsDefault reports whether the dimension is the all-time default.
func (d SortDimension) IsDefault() bool {
	return d == SortAllTimeVolume
}

// Column returns the store column backing the dimension.
func (d SortDimension) Column() string {
	return bindings[d].column
}

// OrderClause returns the ORDER BY expression for the dimension.
// Descending with nulls last, single key.
func (d SortDimension) OrderClause(tableAlias string) string {
	col := bindings[d].column
	if tableAlias != "" {
		col = tableAlias + "." + col
	}
	return col + " DESC NULLS LAST"
}

// CursorValue returns the value of the dimension's backing field on the
// given row, used to seed the next continuation cursor.
func (d SortDimension) CursorValue(c *entity.Collection) decimal.NullDecimal {
	return bindings[d].value(c)
}
