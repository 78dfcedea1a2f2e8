package generated

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type ExternalTransaction struct {
	ID                    string             `json:"id"`
	MerchantTransactionID pgtype.Text        `json:"merchant_transaction_id"`
	MerchantPayerID       pgtype.Text        `json:"merchant_payer_id"`
	Direction             string             `json:"direction"`
	Status                string             `json:"status"`
	Amount                int64              `json:"amount"`
	ExchangeRate          int64              `json:"exchange_rate"`
	BankDetailNumber      pgtype.Text        `json:"bank_detail_number"`
	CurrencyID            pgtype.Text        `json:"currency_id"`
	TeamID                pgtype.Text        `json:"team_id"`
	MerchantID            pgtype.Text        `json:"merchant_id"`
	CreateTimestamp       pgtype.Timestamptz `json:"create_timestamp"`
	FinalStatusTimestamp  pgtype.Timestamptz `json:"final_status_timestamp"`
}

type Geo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type InternalTransaction struct {
	ID              string             `json:"id"`
	UserID          string             `json:"user_id"`
	Direction       string             `json:"direction"`
	Status          string             `json:"status"`
	Amount          int64              `json:"amount"`
	CreateTimestamp pgtype.Timestamptz `json:"create_timestamp"`
}

type User struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Role      string             `json:"role"`
	BalanceID pgtype.Text        `json:"balance_id"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	OffsetID  int64              `json:"offset_id"`
	GeoID     pgtype.Int8        `json:"geo_id"`
}

type UserBalanceChange struct {
	ID              int64              `json:"id"`
	TransactionID   string             `json:"transaction_id"`
	BalanceID       string             `json:"balance_id"`
	UserID          string             `json:"user_id"`
	TrustBalance    int64              `json:"trust_balance"`
	LockedBalance   int64              `json:"locked_balance"`
	ProfitBalance   int64              `json:"profit_balance"`
	CreateTimestamp pgtype.Timestamptz `json:"create_timestamp"`
}
