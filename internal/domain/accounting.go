package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxAccountingPage is the largest page the accounting overview serves.
const MaxAccountingPage = 1000

// AccountingFilter narrows the accounting overview.
type AccountingFilter struct {
	// LastOffsetID resumes a listing below the page that ended at it. Zero
	// starts from the newest account.
	LastOffsetID int64
	// Limit caps the page size. Zero lists every matching account.
	Limit int
	Role  Role
	// GeoID keeps the accounts of one geo. Agents have no geo, so it is
	// ignored when Role is RoleAgent.
	GeoID int64
	// Search matches an account id or name exactly.
	Search string
}

// Validate checks the filter without touching the store.
func (f AccountingFilter) Validate() error {
	if f.LastOffsetID < 0 {
		return fmt.Errorf("%w: last_offset_id must be non-negative, got %d", ErrInvalidFilter, f.LastOffsetID)
	}
	if f.Limit < 0 || f.Limit > MaxAccountingPage {
		return fmt.Errorf("%w: limit must be within [0, %d], got %d", ErrInvalidFilter, MaxAccountingPage, f.Limit)
	}
	if f.Role != "" && !f.Role.IsValid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidFilter, f.Role)
	}
	if f.GeoID < 0 {
		return fmt.Errorf("%w: geo_id must be non-negative, got %d", ErrInvalidFilter, f.GeoID)
	}
	return nil
}

// AccountingEntry is one account of the accounting overview. Amounts are
// fixed point.
type AccountingEntry struct {
	UserID   string
	OffsetID int64
	Role     Role
	Name     string
	// Geo is empty for accounts without one.
	Geo string
	// Balance is trust plus locked.
	Balance         int64
	PendingDeposit  int64
	PendingWithdraw int64
}

// AccountingPage is one page of the accounting overview.
type AccountingPage struct {
	Items []*AccountingEntry
	// NextOffsetID continues the listing. Zero means there is nothing more.
	NextOffsetID int64
}

// NewAccountingPage wraps the accounts fetched for a page of size limit.
// A full page continues below its smallest offset id.
func NewAccountingPage(items []*AccountingEntry, limit int) *AccountingPage {
	page := &AccountingPage{Items: items}
	if limit <= 0 || len(items) < limit {
		return page
	}

	page.NextOffsetID = items[0].OffsetID
	for _, it := range items[1:] {
		page.NextOffsetID = min(page.NextOffsetID, it.OffsetID)
	}
	return page
}

// RoundedAmount returns the display value of a fixed point amount rounded
// to cents.
func RoundedAmount(v int64) decimal.Decimal {
	return FromFixed(v).Round(2)
}
