package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getGeoName = `-- name: GetGeoName :one
SELECT name FROM geos WHERE id = $1
`

func (q *Queries) GetGeoName(ctx context.Context, id int64) (string, error) {
	row := q.db.QueryRow(ctx, getGeoName, id)
	var name string
	err := row.Scan(&name)
	return name, err
}

const listAccounting = `-- name: ListAccounting :many
WITH page AS (
    SELECT u.id, u.offset_id, u.role, u.name, u.balance_id, u.geo_id
    FROM users u
    WHERE u.balance_id IS NOT NULL
      AND ($1::bigint = 0 OR u.offset_id < $1::bigint)
      AND ($2::text = '' OR u.role = $2::text)
      AND ($3::text = '' OR u.id = $3::text OR u.name = $3::text)
      AND ($4::bigint = 0 OR $2::text = 'agent' OR u.geo_id = $4::bigint)
    ORDER BY u.offset_id DESC
    LIMIT NULLIF($5::int, 0)
),
balances AS (
    SELECT c.balance_id, SUM(c.trust_balance + c.locked_balance) AS balance
    FROM user_balance_changes c
    WHERE c.balance_id IN (SELECT balance_id FROM page)
    GROUP BY c.balance_id
)
SELECT p.id, p.offset_id, p.role, p.name, g.name AS geo,
       COALESCE(b.balance, 0)::BIGINT AS balance,
       COALESCE(SUM(it.amount) FILTER (
           WHERE it.status IN ('pending', 'processing') AND it.direction = 'inbound'), 0)::BIGINT AS pending_deposit,
       COALESCE(SUM(it.amount) FILTER (
           WHERE it.status IN ('pending', 'processing') AND it.direction = 'outbound'), 0)::BIGINT AS pending_withdraw
FROM page p
LEFT JOIN geos g ON g.id = p.geo_id
LEFT JOIN balances b ON b.balance_id = p.balance_id
LEFT JOIN internal_transactions it ON it.user_id = p.id
GROUP BY p.id, p.offset_id, p.role, p.name, g.id, g.name, b.balance
ORDER BY g.id NULLS LAST, p.role, p.name, p.offset_id
`

type ListAccountingParams struct {
	LastOffsetID int64  `json:"last_offset_id"`
	Role         string `json:"role"`
	Search       string `json:"search"`
	GeoID        int64  `json:"geo_id"`
	Limit        int32  `json:"limit"`
}

type ListAccountingRow struct {
	ID              string      `json:"id"`
	OffsetID        int64       `json:"offset_id"`
	Role            string      `json:"role"`
	Name            string      `json:"name"`
	Geo             pgtype.Text `json:"geo"`
	Balance         int64       `json:"balance"`
	PendingDeposit  int64       `json:"pending_deposit"`
	PendingWithdraw int64       `json:"pending_withdraw"`
}

func (q *Queries) ListAccounting(ctx context.Context, arg ListAccountingParams) ([]ListAccountingRow, error) {
	rows, err := q.db.Query(ctx, listAccounting,
		arg.LastOffsetID,
		arg.Role,
		arg.Search,
		arg.GeoID,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListAccountingRow
	for rows.Next() {
		var i ListAccountingRow
		if err := rows.Scan(
			&i.ID,
			&i.OffsetID,
			&i.Role,
			&i.Name,
			&i.Geo,
			&i.Balance,
			&i.PendingDeposit,
			&i.PendingWithdraw,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
