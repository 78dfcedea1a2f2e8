package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction is the money flow of a transaction.
type Direction string

const (
	DirectionInbound    Direction = "inbound"
	DirectionOutbound   Direction = "outbound"
	DirectionSettlement Direction = "settlement"
)

// IsValid reports whether d is a direction external transactions carry.
func (d Direction) IsValid() bool {
	return d == DirectionInbound || d == DirectionOutbound
}

// Status is the lifecycle state of a transaction.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusAccept     Status = "accept"
	StatusClose      Status = "close"
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusAccept, StatusClose:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions can happen.
func (s Status) IsTerminal() bool {
	return s == StatusAccept || s == StatusClose
}

// Transaction is a merchant-facing money movement as stored by the
// transaction store. Amounts are fixed point.
type Transaction struct {
	ID                    string
	MerchantTransactionID string
	MerchantPayerID       string
	Direction             Direction
	Status                Status
	Amount                int64
	ExchangeRate          int64
	BankDetailNumber      string
	TeamID                string
	TeamName              string
	MerchantID            string
	MerchantName          string
	CreatedAt             time.Time
	// FinalStatusAt is set once, when Status becomes terminal.
	FinalStatusAt *time.Time
}

// StatusUpdatedAt returns the final status time, or the creation time for
// transactions that never reached a terminal state.
func (t *Transaction) StatusUpdatedAt() time.Time {
	if t.FinalStatusAt != nil {
		return *t.FinalStatusAt
	}
	return t.CreatedAt
}

// AmountValue returns the display value of Amount.
func (t *Transaction) AmountValue() decimal.Decimal {
	return FromFixed(t.Amount)
}

// ExchangeRateValue returns the display value of ExchangeRate.
func (t *Transaction) ExchangeRateValue() decimal.Decimal {
	return FromFixed(t.ExchangeRate)
}

// Interest returns the fee percentage a trust delta represents for this
// transaction. Closed transactions carry no fee.
func (t *Transaction) Interest(delta int64, viewer Role) decimal.Decimal {
	if t.Status == StatusClose {
		return decimal.Zero
	}
	return interest(delta, t.Amount, t.ExchangeRate, viewer)
}
