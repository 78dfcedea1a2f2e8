package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const listBalanceChangesByWindow = `-- name: ListBalanceChangesByWindow :many
WITH tx AS (
    SELECT transaction_id, MAX(create_timestamp) AS effective_at
    FROM user_balance_changes
    WHERE balance_id = $1
    GROUP BY transaction_id
    HAVING MAX(create_timestamp) >= $2 AND MAX(create_timestamp) < $3
)
SELECT c.id, c.transaction_id, c.balance_id, c.user_id, c.trust_balance, c.locked_balance, c.profit_balance, c.create_timestamp
FROM user_balance_changes c
JOIN tx ON tx.transaction_id = c.transaction_id
WHERE c.balance_id = $1
ORDER BY tx.effective_at, c.transaction_id COLLATE "C", c.id
`

type ListBalanceChangesByWindowParams struct {
	BalanceID string             `json:"balance_id"`
	FromTs    pgtype.Timestamptz `json:"from_ts"`
	ToTs      pgtype.Timestamptz `json:"to_ts"`
}

func (q *Queries) ListBalanceChangesByWindow(ctx context.Context, arg ListBalanceChangesByWindowParams) ([]UserBalanceChange, error) {
	rows, err := q.db.Query(ctx, listBalanceChangesByWindow, arg.BalanceID, arg.FromTs, arg.ToTs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []UserBalanceChange
	for rows.Next() {
		var i UserBalanceChange
		if err := rows.Scan(
			&i.ID,
			&i.TransactionID,
			&i.BalanceID,
			&i.UserID,
			&i.TrustBalance,
			&i.LockedBalance,
			&i.ProfitBalance,
			&i.CreateTimestamp,
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

const listBalanceChangesPageBefore = `-- name: ListBalanceChangesPageBefore :many
WITH page AS (
    SELECT transaction_id, MAX(create_timestamp) AS effective_at
    FROM user_balance_changes
    WHERE balance_id = $1
    GROUP BY transaction_id
    HAVING MAX(create_timestamp) >= $2 AND MAX(create_timestamp) < $3
       AND ($4::timestamptz IS NULL
            OR (MAX(create_timestamp), transaction_id COLLATE "C") < ($4::timestamptz, $5::text COLLATE "C"))
    ORDER BY MAX(create_timestamp) DESC, transaction_id COLLATE "C" DESC
    LIMIT $6
)
SELECT c.id, c.transaction_id, c.balance_id, c.user_id, c.trust_balance, c.locked_balance, c.profit_balance, c.create_timestamp
FROM user_balance_changes c
JOIN page ON page.transaction_id = c.transaction_id
WHERE c.balance_id = $1
ORDER BY page.effective_at DESC, c.transaction_id COLLATE "C" DESC, c.id
`

type ListBalanceChangesPageBeforeParams struct {
	BalanceID string             `json:"balance_id"`
	FromTs    pgtype.Timestamptz `json:"from_ts"`
	ToTs      pgtype.Timestamptz `json:"to_ts"`
	CursorAt  pgtype.Timestamptz `json:"cursor_at"`
	CursorID  pgtype.Text        `json:"cursor_id"`
	Limit     int32              `json:"limit"`
}

func (q *Queries) ListBalanceChangesPageBefore(ctx context.Context, arg ListBalanceChangesPageBeforeParams) ([]UserBalanceChange, error) {
	rows, err := q.db.Query(ctx, listBalanceChangesPageBefore,
		arg.BalanceID,
		arg.FromTs,
		arg.ToTs,
		arg.CursorAt,
		arg.CursorID,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []UserBalanceChange
	for rows.Next() {
		var i UserBalanceChange
		if err := rows.Scan(
			&i.ID,
			&i.TransactionID,
			&i.BalanceID,
			&i.UserID,
			&i.TrustBalance,
			&i.LockedBalance,
			&i.ProfitBalance,
			&i.CreateTimestamp,
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

const trustBalanceBefore = `-- name: TrustBalanceBefore :one
SELECT COALESCE(SUM(t.trust), 0)::BIGINT AS balance
FROM (
    SELECT SUM(trust_balance) AS trust
    FROM user_balance_changes
    WHERE balance_id = $1
    GROUP BY transaction_id
    HAVING MAX(create_timestamp) < $2
) t
`

type TrustBalanceBeforeParams struct {
	BalanceID string             `json:"balance_id"`
	At        pgtype.Timestamptz `json:"at"`
}

func (q *Queries) TrustBalanceBefore(ctx context.Context, arg TrustBalanceBeforeParams) (int64, error) {
	row := q.db.QueryRow(ctx, trustBalanceBefore, arg.BalanceID, arg.At)
	var balance int64
	err := row.Scan(&balance)
	return balance, err
}
