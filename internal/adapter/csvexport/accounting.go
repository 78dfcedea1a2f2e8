package csvexport

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/iho/ledgerexport/internal/domain"
)

const accountingDateLayout = "02-01-2006-15:04"

// AccountingColumns are the columns of the accounting overview download.
var AccountingColumns = []Column[*domain.AccountingEntry]{
	{Name: "id", Cell: func(e *domain.AccountingEntry) string { return e.UserID }},
	{Name: "offset_id", Cell: func(e *domain.AccountingEntry) string { return strconv.FormatInt(e.OffsetID, 10) }},
	{Name: "role", Cell: func(e *domain.AccountingEntry) string { return string(e.Role) }},
	{Name: "name", Cell: func(e *domain.AccountingEntry) string { return e.Name }},
	{Name: "geo", Cell: func(e *domain.AccountingEntry) string { return e.Geo }},
	{Name: "balance", Cell: func(e *domain.AccountingEntry) string { return domain.RoundedAmount(e.Balance).String() }},
	{Name: "pending_deposit", Cell: func(e *domain.AccountingEntry) string { return domain.RoundedAmount(e.PendingDeposit).String() }},
	{Name: "pending_withdraw", Cell: func(e *domain.AccountingEntry) string { return domain.RoundedAmount(e.PendingWithdraw).String() }},
}

// NewAccountingTable creates a Table for the accounting overview.
func NewAccountingTable(out io.Writer, opts ...Option) *Table[*domain.AccountingEntry] {
	return NewTable(out, AccountingColumns, opts...)
}

// AccountingFilename names an accounting overview download taken at now:
// [dd-mm-yyyy-HH:MM]Accounting<geo><Role|Users>.csv, or
// [dd-mm-yyyy-HH:MM]AccountingWithSearch.csv for a searched listing.
func AccountingFilename(now time.Time, role domain.Role, geo, search string) string {
	date := now.UTC().Format(accountingDateLayout)
	if search != "" {
		return fmt.Sprintf("[%s]AccountingWithSearch.csv", date)
	}

	who := "Users"
	if role != "" {
		r := string(role)
		who = strings.ToUpper(r[:1]) + r[1:]
	}
	return fmt.Sprintf("[%s]Accounting%s%s.csv", date, sanitize(geo), who)
}
