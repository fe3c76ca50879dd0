package postgres

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"

	"github.com/lib/pq"

	"nft-stats/internal/domain/entity"
	"nft-stats/internal/pkg/search"
	"nft-stats/internal/repository"
	"nft-stats/internal/resilience/circuitbreaker"
)

// collectionColumns lists every projected column of the collections table,
// aliased to "c". The scan order in scanCollectionRow must match.
const collectionColumns = `c.id, c.slug, c.name, c.description, c.image, c.banner,
       c.discord_url, c.external_url, c.twitter_username, c.community,
       c.contract, c.token_set_id, c.token_count, c.floor_price,
       c.day1_volume, c.day1_volume_change, c.day1_rank, c.day1_floor_sale,
       c.day7_volume, c.day7_volume_change, c.day7_rank, c.day7_floor_sale,
       c.day30_volume, c.day30_volume_change, c.day30_rank, c.day30_floor_sale,
       c.all_time_volume, c.all_time_volume_change, c.all_time_rank, c.all_time_floor_sale`

// sampleImages pulls up to four token images per collection in the same
// query, avoiding an N+1 lookup for the image fallback.
const sampleImagesSelect = `(SELECT COALESCE(array_agg(t.image), '{}')
          FROM (SELECT image FROM tokens
                 WHERE collection_id = c.id AND image IS NOT NULL
                 LIMIT 4) t) AS sample_images`

// topBidJoin attaches the best open buy order per row at query time rather
// than post-processing, again to avoid N+1 external calls.
const topBidJoin = `
LEFT JOIN LATERAL (
    SELECT o.value AS top_bid_value, o.maker AS top_bid_maker
    FROM orders o
    WHERE o.token_set_id = c.token_set_id
      AND o.side = 'buy'
      AND o.status = 'active'
    ORDER BY o.value DESC
    LIMIT 1
) tb ON TRUE`

type CollectionRepo struct {
	db           *circuitbreaker.DBCircuitBreaker
	queryBuilder *CollectionQueryBuilder
}

// NewCollectionRepo wraps the connection with a circuit breaker so a dead
// database sheds load fast instead of queueing every listing request.
func NewCollectionRepo(db *sql.DB) repository.CollectionRepository {
	return &CollectionRepo{
		db:           circuitbreaker.NewDBCircuitBreaker(db),
		queryBuilder: NewCollectionQueryBuilder(),
	}
}

// List executes one page read. The WHERE clause is assembled by the query
// builder (filters plus optional keyset resume predicate); the order clause
// comes from the same sort-dimension mapping that later seeds the cursor.
func (repo *CollectionRepo) List(ctx context.Context, q repository.CollectionListQuery) ([]repository.CollectionRow, error) {
	whereClause, args, err := repo.queryBuilder.BuildWhereClause(q.Filters, q.Sort, q.Resume, "c")
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, search.DefaultSearchTimeout)
	defer cancel()

	bidSelect, bidJoin := "", ""
	if q.IncludeTopBid {
		bidSelect = ",\n       tb.top_bid_value, tb.top_bid_maker"
		bidJoin = topBidJoin
	}

	paramIndex := len(args) + 1
	args = append(args, q.Limit)

	query := fmt.Sprintf(`
SELECT %s,
       %s%s
FROM collections c%s
%s
ORDER BY %s
LIMIT $%d`, collectionColumns, sampleImagesSelect, bidSelect, bidJoin, whereClause, q.Sort.OrderClause("c"), paramIndex)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.CollectionRow, 0, q.Limit)
	for rows.Next() {
		row, err := scanCollectionRow(rows.Scan, q.IncludeTopBid)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// Get retrieves a single collection by its identifier.
// Returns (nil, nil) if the collection does not exist.
func (repo *CollectionRepo) Get(ctx context.Context, id string, includeTopBid bool) (*repository.CollectionRow, error) {
	bidSelect, bidJoin := "", ""
	if includeTopBid {
		bidSelect = ",\n       tb.top_bid_value, tb.top_bid_maker"
		bidJoin = topBidJoin
	}

	query := fmt.Sprintf(`
SELECT %s,
       %s%s
FROM collections c%s
WHERE c.id = $1
LIMIT 1`, collectionColumns, sampleImagesSelect, bidSelect, bidJoin)

	row, err := scanCollectionRow(func(dest ...interface{}) error {
		return repo.db.QueryRowContext(ctx, query, id).Scan(dest...)
	}, includeTopBid)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &row, nil
}

// scanCollectionRow scans one result row. The destination order matches
// collectionColumns, then sample_images, then the optional top-bid pair.
func scanCollectionRow(scan func(dest ...interface{}) error, includeTopBid bool) (repository.CollectionRow, error) {
	var c entity.Collection
	var contract []byte
	var images pq.StringArray

	dest := []interface{}{
		&c.ID, &c.Slug, &c.Name, &c.Description, &c.Image, &c.Banner,
		&c.DiscordURL, &c.ExternalURL, &c.TwitterUsername, &c.Community,
		&contract, &c.TokenSetID, &c.TokenCount, &c.FloorPrice,
		&c.Day1.Volume, &c.Day1.VolumeChange, &c.Day1.Rank, &c.Day1.FloorSale,
		&c.Day7.Volume, &c.Day7.VolumeChange, &c.Day7.Rank, &c.Day7.FloorSale,
		&c.Day30.Volume, &c.Day30.VolumeChange, &c.Day30.Rank, &c.Day30.FloorSale,
		&c.AllTime.Volume, &c.AllTime.VolumeChange, &c.AllTime.Rank, &c.AllTime.FloorSale,
		&images,
	}

	var bid entity.TopBid
	if includeTopBid {
		dest = append(dest, &bid.Value, &bid.Maker)
	}

	if err := scan(dest...); err != nil {
		return repository.CollectionRow{}, err
	}

	if len(contract) > 0 {
		c.Contract = "0x" + hex.EncodeToString(contract)
	}

	row := repository.CollectionRow{
		Collection:   &c,
		SampleImages: []string(images),
	}
	if includeTopBid {
		row.TopBid = &bid
	}
	return row, nil
}
