package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const listActivityPageBefore = `-- name: ListActivityPageBefore :many
SELECT e.id, e.merchant_transaction_id, e.direction, e.status, e.amount, e.exchange_rate,
       e.bank_detail_number, e.currency_id, e.create_timestamp,
       SUM(c.trust_balance)::BIGINT AS trust_delta
FROM external_transactions e
JOIN user_balance_changes c ON c.transaction_id = e.id AND c.user_id = $1
WHERE (($2::text = 'team' AND e.team_id = $1) OR ($2::text = 'merchant' AND e.merchant_id = $1))
  AND e.create_timestamp >= $3 AND e.create_timestamp < $4
  AND ($5::text = '' OR e.status = $5::text)
  AND ($6::text = '' OR e.direction = $6::text)
  AND ($7::bigint IS NULL OR e.amount >= $7::bigint)
  AND ($8::bigint IS NULL OR e.amount <= $8::bigint)
  AND ($9::text = '' OR e.currency_id = $9::text)
  AND ($10::timestamptz IS NULL
       OR (e.create_timestamp, e.id COLLATE "C") < ($10::timestamptz, $11::text COLLATE "C"))
GROUP BY e.id
ORDER BY e.create_timestamp DESC, e.id COLLATE "C" DESC
LIMIT $12
`

type ListActivityPageBeforeParams struct {
	UserID     string             `json:"user_id"`
	Role       string             `json:"role"`
	FromTs     pgtype.Timestamptz `json:"from_ts"`
	ToTs       pgtype.Timestamptz `json:"to_ts"`
	Status     string             `json:"status"`
	Direction  string             `json:"direction"`
	AmountFrom pgtype.Int8        `json:"amount_from"`
	AmountTo   pgtype.Int8        `json:"amount_to"`
	CurrencyID string             `json:"currency_id"`
	CursorAt   pgtype.Timestamptz `json:"cursor_at"`
	CursorID   pgtype.Text        `json:"cursor_id"`
	Limit      int32              `json:"limit"`
}

type ListActivityPageBeforeRow struct {
	ID                    string             `json:"id"`
	MerchantTransactionID pgtype.Text        `json:"merchant_transaction_id"`
	Direction             string             `json:"direction"`
	Status                string             `json:"status"`
	Amount                int64              `json:"amount"`
	ExchangeRate          int64              `json:"exchange_rate"`
	BankDetailNumber      pgtype.Text        `json:"bank_detail_number"`
	CurrencyID            pgtype.Text        `json:"currency_id"`
	CreateTimestamp       pgtype.Timestamptz `json:"create_timestamp"`
	TrustDelta            int64              `json:"trust_delta"`
}

func (q *Queries) ListActivityPageBefore(ctx context.Context, arg ListActivityPageBeforeParams) ([]ListActivityPageBeforeRow, error) {
	rows, err := q.db.Query(ctx, listActivityPageBefore,
		arg.UserID,
		arg.Role,
		arg.FromTs,
		arg.ToTs,
		arg.Status,
		arg.Direction,
		arg.AmountFrom,
		arg.AmountTo,
		arg.CurrencyID,
		arg.CursorAt,
		arg.CursorID,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListActivityPageBeforeRow
	for rows.Next() {
		var i ListActivityPageBeforeRow
		if err := rows.Scan(
			&i.ID,
			&i.MerchantTransactionID,
			&i.Direction,
			&i.Status,
			&i.Amount,
			&i.ExchangeRate,
			&i.BankDetailNumber,
			&i.CurrencyID,
			&i.CreateTimestamp,
			&i.TrustDelta,
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
