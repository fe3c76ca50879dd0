package collection

import (
	"database/sql"

	"github.com/shopspring/decimal"

	"nft-stats/internal/pkg/money"
	"nft-stats/internal/repository"
)

// Collection is the outward projection of one collection row. Monetary
// fields are display decimals (ether), not the store's fixed-point wei.
type Collection struct {
	ID              string  `json:"id"`
	Slug            string  `json:"slug"`
	Name            string  `json:"name"`
	Description     *string `json:"description"`
	Image           *string `json:"image"`
	Banner          *string `json:"banner"`
	DiscordURL      *string `json:"discordUrl"`
	ExternalURL     *string `json:"externalUrl"`
	TwitterUsername *string `json:"twitterUsername"`
	Community       *string `json:"community"`

	PrimaryContract string  `json:"primaryContract"`
	TokenSetID      *string `json:"tokenSetId"`
	TokenCount      *int64  `json:"tokenCount"`

	FloorPrice *decimal.Decimal `json:"floorPrice"`
	TopBid     *TopBid          `json:"topBid,omitempty"`

	Volume       Windows `json:"volume"`
	VolumeChange Windows `json:"volumeChange"`
	FloorSale    Windows `json:"floorSale"`
	Rank         Ranks   `json:"rank"`
}

// TopBid is the optional best-bid enrichment.
type TopBid struct {
	Value *decimal.Decimal `json:"value"`
	Maker *string          `json:"maker"`
}

// Windows groups one numeric statistic across the four time windows.
type Windows struct {
	Day1    *decimal.Decimal `json:"1day"`
	Day7    *decimal.Decimal `json:"7day"`
	Day30   *decimal.Decimal `json:"30day"`
	AllTime *decimal.Decimal `json:"allTime"`
}

// Ranks groups the rank statistic across the four time windows.
type Ranks struct {
	Day1    *int64 `json:"1day"`
	Day7    *int64 `json:"7day"`
	Day30   *int64 `json:"30day"`
	AllTime *int64 `json:"allTime"`
}

// Project maps a raw store row into the Collection projection. The
// conversion is pure: missing data degrades to null fields, never to an
// error. If the primary image is absent the first sampled token image is
// substituted; if none exist the field stays null.
func Project(row repository.CollectionRow) Collection {
	c := row.Collection

	out := Collection{
		ID:              c.ID,
		Slug:            c.Slug,
		Name:            c.Name,
		Description:     nullStr(c.Description),
		Image:           nullStr(c.Image),
		Banner:          nullStr(c.Banner),
		DiscordURL:      nullStr(c.DiscordURL),
		ExternalURL:     nullStr(c.ExternalURL),
		TwitterUsername: nullStr(c.TwitterUsername),
		Community:       nullStr(c.Community),
		PrimaryContract: c.Contract,
		TokenSetID:      nullStr(c.TokenSetID),
		TokenCount:      nullInt(c.TokenCount),
		FloorPrice:      money.FromWeiNull(c.FloorPrice),
		Volume: Windows{
			Day1:    money.FromWeiNull(c.Day1.Volume),
			Day7:    money.FromWeiNull(c.Day7.Volume),
			Day30:   money.FromWeiNull(c.Day30.Volume),
			AllTime: money.FromWeiNull(c.AllTime.Volume),
		},
		VolumeChange: Windows{
			Day1:    nullDec(c.Day1.VolumeChange),
			Day7:    nullDec(c.Day7.VolumeChange),
			Day30:   nullDec(c.Day30.VolumeChange),
			AllTime: nullDec(c.AllTime.VolumeChange),
		},
		FloorSale: Windows{
			Day1:    money.FromWeiNull(c.Day1.FloorSale),
			Day7:    money.FromWeiNull(c.Day7.FloorSale),
			Day30:   money.FromWeiNull(c.Day30.FloorSale),
			AllTime: money.FromWeiNull(c.AllTime.FloorSale),
		},
		Rank: Ranks{
			Day1:    nullInt(c.Day1.Rank),
			Day7:    nullInt(c.Day7.Rank),
			Day30:   nullInt(c.Day30.Rank),
			AllTime: nullInt(c.AllTime.Rank),
		},
	}

	if out.Image == nil && len(row.SampleImages) > 0 {
		img := row.SampleImages[0]
		out.Image = &img
	}

	if row.TopBid != nil {
		out.TopBid = &TopBid{
			Value: money.FromWeiNull(row.TopBid.Value),
			Maker: nullStr(row.TopBid.Maker),
		}
	}

	return out
}

func nullStr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullInt(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

// nullDec passes a nullable decimal through unchanged; used for
// non-monetary values such as volume-change percentages.
func nullDec(v decimal.NullDecimal) *decimal.Decimal {
	if !v.Valid {
		return nil
	}
	return &v.Decimal
}
