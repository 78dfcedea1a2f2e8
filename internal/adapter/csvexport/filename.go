package csvexport

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SelfServiceFilename is the attachment name of a caller's own history.
const SelfServiceFilename = "transactions.csv"

const filenameDateLayout = "02-01-2006"

// Filename names a named account download:
// <name>-[dd-mm-yyyy]-[dd-mm-yyyy]_<balance>USDT.csv, dates in UTC.
func Filename(name string, from, to time.Time, balance decimal.Decimal) string {
	return fmt.Sprintf("%s-[%s]-[%s]_%sUSDT.csv",
		sanitize(name),
		from.UTC().Format(filenameDateLayout),
		to.UTC().Format(filenameDateLayout),
		balance.String(),
	)
}

// ContentDisposition returns the Content-Disposition value of an attachment.
func ContentDisposition(filename string) string {
	return fmt.Sprintf("attachment; filename=%q", filename)
}

// sanitize drops characters that would break the header or a file path.
func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '"', '\\', '/', '\r', '\n':
			return '_'
		}
		return r
	}, name)
}
