// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"nft-stats/internal/common/keyset"
	"nft-stats/internal/domain/entity"
	"nft-stats/internal/pkg/search"
	"nft-stats/internal/repository"
)

// CollectionQueryBuilder builds WHERE clauses for collection listing in PostgreSQL.
// Each filter contributes one self-contained predicate; predicates are joined
// with AND and are order-independent. User-controlled values are always bound
// as numbered placeholders, never interpolated into the SQL text.
type CollectionQueryBuilder struct{}

// NewCollectionQueryBuilder creates a new query builder instance.
func NewCollectionQueryBuilder() *CollectionQueryBuilder {
	return &CollectionQueryBuilder{}
}

// BuildWhereClause builds the WHERE clause and arguments for one page read:
// the filter predicates plus, when resume is non-nil, the keyset resume
// predicate "sort column < resume" (strict, so the boundary row is never
// re-emitted). Returns an empty clause if no conditions apply.
// PostgreSQL-specific: uses ILIKE, = ANY(array) and $N placeholders.
func (qb *CollectionQueryBuilder) BuildWhereClause(filters repository.CollectionFilters, sort keyset.SortDimension, resume *decimal.Decimal, tableAlias string) (clause string, args []interface{}, err error) {
	var conditions []string
	paramIndex := 1

	col := func(name string) string {
		if tableAlias != "" {
			return tableAlias + "." + name
		}
		return name
	}

	if filters.Community != nil {
		conditions = append(conditions, fmt.Sprintf("LOWER(%s) = LOWER($%d)", col("community"), paramIndex))
		args = append(args, *filters.Community)
		paramIndex++
	}

	// An empty resolved collection-set contributes no predicate: the set is
	// treated as "no constraint from this filter", not as an impossible one.
	if len(filters.CollectionIDs) > 0 {
		conditions = append(conditions, fmt.Sprintf("%s = ANY($%d)", col("id"), paramIndex))
		args = append(args, pq.Array(filters.CollectionIDs))
		paramIndex++
	}

	if filters.Contract != nil {
		contract, cerr := entity.ContractBytes(*filters.Contract)
		if cerr != nil {
			return "", nil, fmt.Errorf("BuildWhereClause: contract: %w", cerr)
		}
		conditions = append(conditions, fmt.Sprintf("%s = $%d", col("contract"), paramIndex))
		args = append(args, contract)
		paramIndex++
	}

	if filters.Name != nil {
		conditions = append(conditions, fmt.Sprintf("%s ILIKE $%d", col("name"), paramIndex))
		args = append(args, search.EscapeILIKE(*filters.Name))
		paramIndex++
	}

	if filters.Slug != nil {
		conditions = append(conditions, fmt.Sprintf("LOWER(%s) = LOWER($%d)", col("slug"), paramIndex))
		args = append(args, *filters.Slug)
		paramIndex++
	}

	if resume != nil {
		conditions = append(conditions, fmt.Sprintf("%s < $%d::numeric", col(sort.Column()), paramIndex))
		args = append(args, *resume)
	}

	if len(conditions) == 0 {
		return "", args, nil
	}

	return "WHERE " + strings.Join(conditions, " AND "), args, nil
}
