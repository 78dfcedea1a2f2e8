package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getTransactionsByIDs = `-- name: GetTransactionsByIDs :many
SELECT t.id, t.merchant_transaction_id, t.merchant_payer_id, t.direction, t.status, t.amount, t.exchange_rate,
       t.bank_detail_number, t.team_id, team.name AS team_name, t.merchant_id, merchant.name AS merchant_name,
       t.create_timestamp, t.final_status_timestamp
FROM external_transactions t
LEFT JOIN users team ON team.id = t.team_id
LEFT JOIN users merchant ON merchant.id = t.merchant_id
WHERE t.id = ANY($1::text[])
`

type TransactionWithNamesRow struct {
	ID                    string             `json:"id"`
	MerchantTransactionID pgtype.Text        `json:"merchant_transaction_id"`
	MerchantPayerID       pgtype.Text        `json:"merchant_payer_id"`
	Direction             string             `json:"direction"`
	Status                string             `json:"status"`
	Amount                int64              `json:"amount"`
	ExchangeRate          int64              `json:"exchange_rate"`
	BankDetailNumber      pgtype.Text        `json:"bank_detail_number"`
	TeamID                pgtype.Text        `json:"team_id"`
	TeamName              pgtype.Text        `json:"team_name"`
	MerchantID            pgtype.Text        `json:"merchant_id"`
	MerchantName          pgtype.Text        `json:"merchant_name"`
	CreateTimestamp       pgtype.Timestamptz `json:"create_timestamp"`
	FinalStatusTimestamp  pgtype.Timestamptz `json:"final_status_timestamp"`
}

func (q *Queries) GetTransactionsByIDs(ctx context.Context, ids []string) ([]TransactionWithNamesRow, error) {
	rows, err := q.db.Query(ctx, getTransactionsByIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTransactionsWithNames(rows)
}

const listUnbookedClosed = `-- name: ListUnbookedClosed :many
SELECT t.id, t.merchant_transaction_id, t.merchant_payer_id, t.direction, t.status, t.amount, t.exchange_rate,
       t.bank_detail_number, t.team_id, team.name AS team_name, t.merchant_id, merchant.name AS merchant_name,
       t.create_timestamp, t.final_status_timestamp
FROM external_transactions t
LEFT JOIN users team ON team.id = t.team_id
LEFT JOIN users merchant ON merchant.id = t.merchant_id
WHERE t.status = 'close'
  AND t.final_status_timestamp >= $2 AND t.final_status_timestamp < $3
  AND (t.merchant_id IN (SELECT id FROM users WHERE balance_id = $1)
       OR t.team_id IN (SELECT id FROM users WHERE balance_id = $1))
  AND NOT EXISTS (
      SELECT 1 FROM user_balance_changes c
      WHERE c.balance_id = $1 AND c.transaction_id = t.id
  )
ORDER BY t.final_status_timestamp, t.id COLLATE "C"
`

type ListUnbookedClosedParams struct {
	BalanceID string             `json:"balance_id"`
	FromTs    pgtype.Timestamptz `json:"from_ts"`
	ToTs      pgtype.Timestamptz `json:"to_ts"`
}

func (q *Queries) ListUnbookedClosed(ctx context.Context, arg ListUnbookedClosedParams) ([]TransactionWithNamesRow, error) {
	rows, err := q.db.Query(ctx, listUnbookedClosed, arg.BalanceID, arg.FromTs, arg.ToTs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTransactionsWithNames(rows)
}

const listUnbookedClosedPageBefore = `-- name: ListUnbookedClosedPageBefore :many
SELECT t.id, t.merchant_transaction_id, t.merchant_payer_id, t.direction, t.status, t.amount, t.exchange_rate,
       t.bank_detail_number, t.team_id, team.name AS team_name, t.merchant_id, merchant.name AS merchant_name,
       t.create_timestamp, t.final_status_timestamp
FROM external_transactions t
LEFT JOIN users team ON team.id = t.team_id
LEFT JOIN users merchant ON merchant.id = t.merchant_id
WHERE t.status = 'close'
  AND t.final_status_timestamp >= $2 AND t.final_status_timestamp < $3
  AND (t.merchant_id IN (SELECT id FROM users WHERE balance_id = $1)
       OR t.team_id IN (SELECT id FROM users WHERE balance_id = $1))
  AND NOT EXISTS (
      SELECT 1 FROM user_balance_changes c
      WHERE c.balance_id = $1 AND c.transaction_id = t.id
  )
  AND ($4::timestamptz IS NULL
       OR (t.final_status_timestamp, t.id COLLATE "C") < ($4::timestamptz, $5::text COLLATE "C"))
ORDER BY t.final_status_timestamp DESC, t.id COLLATE "C" DESC
LIMIT $6
`

type ListUnbookedClosedPageBeforeParams struct {
	BalanceID string             `json:"balance_id"`
	FromTs    pgtype.Timestamptz `json:"from_ts"`
	ToTs      pgtype.Timestamptz `json:"to_ts"`
	CursorAt  pgtype.Timestamptz `json:"cursor_at"`
	CursorID  pgtype.Text        `json:"cursor_id"`
	Limit     int32              `json:"limit"`
}

func (q *Queries) ListUnbookedClosedPageBefore(ctx context.Context, arg ListUnbookedClosedPageBeforeParams) ([]TransactionWithNamesRow, error) {
	rows, err := q.db.Query(ctx, listUnbookedClosedPageBefore,
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
	return scanTransactionsWithNames(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanTransactionsWithNames(rows rowScanner) ([]TransactionWithNamesRow, error) {
	var items []TransactionWithNamesRow
	for rows.Next() {
		var i TransactionWithNamesRow
		if err := rows.Scan(
			&i.ID,
			&i.MerchantTransactionID,
			&i.MerchantPayerID,
			&i.Direction,
			&i.Status,
			&i.Amount,
			&i.ExchangeRate,
			&i.BankDetailNumber,
			&i.TeamID,
			&i.TeamName,
			&i.MerchantID,
			&i.MerchantName,
			&i.CreateTimestamp,
			&i.FinalStatusTimestamp,
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
