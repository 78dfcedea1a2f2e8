package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getAccountProfile = `-- name: GetAccountProfile :one
SELECT u.id, u.name, u.role, u.balance_id,
       COALESCE((
           SELECT SUM(c.trust_balance + c.locked_balance)
           FROM user_balance_changes c
           WHERE c.balance_id = u.balance_id
       ), 0)::BIGINT AS balance
FROM users u
WHERE u.id = $1
`

type GetAccountProfileRow struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Role      string      `json:"role"`
	BalanceID pgtype.Text `json:"balance_id"`
	Balance   int64       `json:"balance"`
}

func (q *Queries) GetAccountProfile(ctx context.Context, id string) (GetAccountProfileRow, error) {
	row := q.db.QueryRow(ctx, getAccountProfile, id)
	var i GetAccountProfileRow
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Role,
		&i.BalanceID,
		&i.Balance,
	)
	return i, err
}
