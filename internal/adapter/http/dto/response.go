package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/ledgerexport/internal/domain"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// AccountResponse describes the account a statement belongs to.
type AccountResponse struct {
	UserID    string          `json:"user_id"`
	Name      string          `json:"name"`
	Role      domain.Role     `json:"role"`
	BalanceID string          `json:"balance_id"`
	Balance   decimal.Decimal `json:"balance"`
}

// AccountFromDomain converts a profile to its response.
func AccountFromDomain(p *domain.AccountProfile) AccountResponse {
	return AccountResponse{
		UserID:    p.UserID,
		Name:      p.Name,
		Role:      p.Role,
		BalanceID: p.BalanceID,
		Balance:   p.BalanceAmount(),
	}
}

// StatementRowResponse is one statement line. Columns hidden from the
// account's role are omitted.
type StatementRowResponse struct {
	TokenName             string           `json:"token_name,omitempty"`
	TeamName              string           `json:"team_name,omitempty"`
	TransactionID         string           `json:"transaction_id"`
	MerchantTransactionID string           `json:"merchant_transaction_id,omitempty"`
	MerchantPayerID       string           `json:"merchant_payer_id,omitempty"`
	CreateTimestamp       *time.Time       `json:"create_timestamp"`
	Direction             domain.Direction `json:"direction"`
	BankDetailNumber      string           `json:"bank_detail_number,omitempty"`
	TransactionAmount     *decimal.Decimal `json:"transaction_amount"`
	StatusLastUpdate      time.Time        `json:"status_last_update_timestamp"`
	Status                domain.Status    `json:"status,omitempty"`
	ExchangeRate          *decimal.Decimal `json:"exchange_rate"`
	DepositChange         decimal.Decimal  `json:"usdt_deposit_change"`
	Interest              decimal.Decimal  `json:"interest"`
	CumulativeBalance     decimal.Decimal  `json:"cumulative_trust_balance"`
}

// StatementRowFromDomain converts an export row as viewer sees it.
func StatementRowFromDomain(r *domain.ExportRow, viewer domain.Role) StatementRowResponse {
	resp := StatementRowResponse{
		TokenName:             r.TokenName,
		TeamName:              r.TeamName,
		TransactionID:         r.TransactionID,
		MerchantTransactionID: r.MerchantTransactionID,
		MerchantPayerID:       r.MerchantPayerID,
		CreateTimestamp:       r.CreatedAt,
		Direction:             r.Direction,
		BankDetailNumber:      r.BankDetailNumber,
		TransactionAmount:     r.TransactionAmount,
		StatusLastUpdate:      r.StatusUpdatedAt,
		Status:                r.Status,
		ExchangeRate:          r.ExchangeRate,
		DepositChange:         r.DepositChange,
		Interest:              r.Interest,
		CumulativeBalance:     r.CumulativeBalance,
	}

	for _, c := range domain.HiddenColumns(viewer) {
		switch c {
		case domain.ColumnTeamName:
			resp.TeamName = ""
		case domain.ColumnMerchantPayerID:
			resp.MerchantPayerID = ""
		}
	}

	return resp
}

// StatementResponse is a whole statement, most recent line first.
type StatementResponse struct {
	Account   AccountResponse        `json:"account"`
	From      time.Time              `json:"from"`
	To        time.Time              `json:"to"`
	Rows      []StatementRowResponse `json:"rows"`
	Truncated bool                   `json:"truncated"`
}

// NewStatementResponse keeps at most limit rows.
func NewStatementResponse(p *domain.AccountProfile, window domain.Window, rows []*domain.ExportRow, limit int) StatementResponse {
	resp := StatementResponse{
		Account: AccountFromDomain(p),
		From:    window.From,
		To:      window.To,
	}
	if len(rows) > limit {
		rows = rows[:limit]
		resp.Truncated = true
	}

	resp.Rows = make([]StatementRowResponse, len(rows))
	for i, r := range rows {
		resp.Rows[i] = StatementRowFromDomain(r, p.Role)
	}
	return resp
}

// AccountingEntryResponse is one account of the accounting overview.
type AccountingEntryResponse struct {
	ID              string          `json:"id"`
	OffsetID        int64           `json:"offset_id"`
	Role            domain.Role     `json:"role"`
	Name            string          `json:"name"`
	Geo             *string         `json:"geo"`
	Balance         decimal.Decimal `json:"balance"`
	PendingDeposit  decimal.Decimal `json:"pending_deposit"`
	PendingWithdraw decimal.Decimal `json:"pending_withdraw"`
}

// AccountingListResponse is one page of the accounting overview.
type AccountingListResponse struct {
	Items []AccountingEntryResponse `json:"items"`
	// NextOffsetID is the last_offset_id of the next page, omitted on the
	// last one.
	NextOffsetID int64 `json:"next_offset_id,omitempty"`
}

// AccountingListFromDomain converts an overview page.
func AccountingListFromDomain(page *domain.AccountingPage) AccountingListResponse {
	resp := AccountingListResponse{
		Items:        make([]AccountingEntryResponse, len(page.Items)),
		NextOffsetID: page.NextOffsetID,
	}
	for i, e := range page.Items {
		item := AccountingEntryResponse{
			ID:              e.UserID,
			OffsetID:        e.OffsetID,
			Role:            e.Role,
			Name:            e.Name,
			Balance:         domain.RoundedAmount(e.Balance),
			PendingDeposit:  domain.RoundedAmount(e.PendingDeposit),
			PendingWithdraw: domain.RoundedAmount(e.PendingWithdraw),
		}
		if e.Geo != "" {
			geo := e.Geo
			item.Geo = &geo
		}
		resp.Items[i] = item
	}
	return resp
}
