// Package entity defines the core domain entities of the collection service.
package entity

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// WindowStats holds the precomputed market statistics for one time window
// (1 day, 7 days, 30 days or all time). Every field is nullable: absence of
// data is distinct from a zero value.
type WindowStats struct {
	Volume       decimal.NullDecimal
	VolumeChange decimal.NullDecimal
	Rank         sql.NullInt64
	FloorSale    decimal.NullDecimal
}

// Collection is a read-only aggregate describing a set of tokens and their
// market statistics. Instances are immutable snapshots read from the store
// for the duration of one request; nothing in this service mutates them.
type Collection struct {
	ID              string
	Slug            string
	Name            string
	Description     sql.NullString
	Image           sql.NullString
	Banner          sql.NullString
	DiscordURL      sql.NullString
	ExternalURL     sql.NullString
	TwitterUsername sql.NullString
	Community       sql.NullString

	// Contract is the primary contract address in canonical 0x-prefixed
	// lower-case hex form.
	Contract   string
	TokenSetID sql.NullString
	TokenCount sql.NullInt64

	// FloorPrice is the current floor in the chain's smallest unit (wei).
	FloorPrice decimal.NullDecimal

	Day1    WindowStats
	Day7    WindowStats
	Day30   WindowStats
	AllTime WindowStats
}

// TopBid is the best currently-open buy order for a collection's token set.
// Attached to a collection row only when explicitly requested.
type TopBid struct {
	Value decimal.NullDecimal
	Maker sql.NullString
}
