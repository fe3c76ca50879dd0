package db

import (
	"database/sql"
)

// MigrateUp creates the listing schema: collections with their pre-aggregated
// window statistics, tokens for the image fallback sample, and orders for the
// top-bid join. Monetary columns are NUMERIC(78,0) so full wei values fit
// without loss.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS collections (
    id                     TEXT PRIMARY KEY,
    slug                   TEXT NOT NULL UNIQUE,
    name                   TEXT NOT NULL,
    description            TEXT,
    image                  TEXT,
    banner                 TEXT,
    discord_url            TEXT,
    external_url           TEXT,
    twitter_username       TEXT,
    community              TEXT,
    contract               BYTEA NOT NULL,
    token_set_id           TEXT,
    token_count            BIGINT,
    floor_price            NUMERIC(78,0),
    day1_volume            NUMERIC(78,0),
    day1_volume_change     NUMERIC,
    day1_rank              BIGINT,
    day1_floor_sale        NUMERIC(78,0),
    day7_volume            NUMERIC(78,0),
    day7_volume_change     NUMERIC,
    day7_rank              BIGINT,
    day7_floor_sale        NUMERIC(78,0),
    day30_volume           NUMERIC(78,0),
    day30_volume_change    NUMERIC,
    day30_rank             BIGINT,
    day30_floor_sale       NUMERIC(78,0),
    all_time_volume        NUMERIC(78,0),
    all_time_volume_change NUMERIC,
    all_time_rank          BIGINT,
    all_time_floor_sale    NUMERIC(78,0),
    created_at             TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at             TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS tokens (
    id            BIGSERIAL PRIMARY KEY,
    collection_id TEXT NOT NULL REFERENCES collections(id) ON DELETE CASCADE,
    token_id      NUMERIC(78,0) NOT NULL,
    image         TEXT,
    UNIQUE (collection_id, token_id)
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS orders (
    id           TEXT PRIMARY KEY,
    token_set_id TEXT NOT NULL,
    side         VARCHAR(4) NOT NULL,
    status       VARCHAR(20) NOT NULL,
    value        NUMERIC(78,0) NOT NULL,
    maker        TEXT NOT NULL,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	// Each sort dimension pages with "column < $n ... ORDER BY column DESC
	// NULLS LAST", so the index direction has to match.
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_collections_day1_volume ON collections(day1_volume DESC NULLS LAST)`,
		`CREATE INDEX IF NOT EXISTS idx_collections_day7_volume ON collections(day7_volume DESC NULLS LAST)`,
		`CREATE INDEX IF NOT EXISTS idx_collections_day30_volume ON collections(day30_volume DESC NULLS LAST)`,
		`CREATE INDEX IF NOT EXISTS idx_collections_all_time_volume ON collections(all_time_volume DESC NULLS LAST)`,
		`CREATE INDEX IF NOT EXISTS idx_collections_community ON collections(LOWER(community))`,
		`CREATE INDEX IF NOT EXISTS idx_collections_slug_lower ON collections(LOWER(slug))`,
		`CREATE INDEX IF NOT EXISTS idx_collections_contract ON collections(contract)`,
		`CREATE INDEX IF NOT EXISTS idx_tokens_collection_image ON tokens(collection_id) WHERE image IS NOT NULL`,
		`CREATE INDEX IF NOT EXISTS idx_orders_token_set ON orders(token_set_id, value DESC) WHERE side = 'buy' AND status = 'active'`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	// ILIKE name search acceleration. Ignore errors: the extension needs
	// superuser on some installs and the query works without the index.
	_, _ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`)
	_, _ = db.Exec(`CREATE INDEX IF NOT EXISTS idx_collections_name_gin ON collections USING gin(name gin_trgm_ops)`)

	return nil
}
