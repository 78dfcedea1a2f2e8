package dto

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/ledgerexport/internal/domain"
)

// Query parameter and body field names of an export window.
const (
	ParamFrom  = "create_timestamp_from"
	ParamTo    = "create_timestamp_to"
	ParamLimit = "limit"
)

// ExportWindowRequest bounds an export. Both bounds are unix seconds and
// either may be omitted.
type ExportWindowRequest struct {
	CreateTimestampFrom *int64 `json:"create_timestamp_from,omitempty"`
	CreateTimestampTo   *int64 `json:"create_timestamp_to,omitempty"`
}

// ParseExportWindowQuery reads the window bounds from query parameters.
func ParseExportWindowQuery(q url.Values) (ExportWindowRequest, error) {
	var req ExportWindowRequest

	from, err := parseUnix(q, ParamFrom)
	if err != nil {
		return req, err
	}
	to, err := parseUnix(q, ParamTo)
	if err != nil {
		return req, err
	}

	req.CreateTimestampFrom = from
	req.CreateTimestampTo = to
	return req, nil
}

// ToWindow resolves omitted bounds against now.
func (r ExportWindowRequest) ToWindow(now time.Time, defaults domain.WindowDefaults) (domain.Window, error) {
	return domain.ResolveWindow(unixPtr(r.CreateTimestampFrom), unixPtr(r.CreateTimestampTo), now, defaults)
}

// ParseLimitQuery reads the statement row limit. A missing limit is 0.
func ParseLimitQuery(q url.Values) (int, error) {
	raw := q.Get(ParamLimit)
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ParamLimit, err)
	}
	return limit, nil
}

func parseUnix(q url.Values, key string) (*int64, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, domain.ErrInvalidWindow)
	}
	return &v, nil
}

func unixPtr(v *int64) *time.Time {
	if v == nil {
		return nil
	}
	t := time.Unix(*v, 0).UTC()
	return &t
}

// Query parameter names of the accounting overview.
const (
	ParamLastOffsetID = "last_offset_id"
	ParamRole         = "role"
	ParamGeoID        = "geo_id"
	ParamSearch       = "search"
)

// ParseAccountingQuery reads the accounting overview filter.
func ParseAccountingQuery(q url.Values) (domain.AccountingFilter, error) {
	var f domain.AccountingFilter

	lastOffsetID, err := parseInt(q, ParamLastOffsetID)
	if err != nil {
		return f, err
	}
	limit, err := parseInt(q, ParamLimit)
	if err != nil {
		return f, err
	}
	geoID, err := parseInt(q, ParamGeoID)
	if err != nil {
		return f, err
	}

	f.LastOffsetID = lastOffsetID
	f.Limit = int(limit)
	f.GeoID = geoID
	f.Role = domain.Role(q.Get(ParamRole))
	f.Search = q.Get(ParamSearch)
	return f, f.Validate()
}

// Query parameter names of the plain transaction export filters.
const (
	ParamStatus     = "status"
	ParamDirection  = "direction"
	ParamAmountFrom = "amount_from"
	ParamAmountTo   = "amount_to"
	ParamCurrencyID = "currency_id"
)

// ActivityRequest is the filter of the plain transaction export. The window
// and amount bounds stay raw until the caller resolves them.
type ActivityRequest struct {
	ExportWindowRequest
	Status     domain.Status
	Direction  domain.Direction
	AmountFrom *int64
	AmountTo   *int64
	CurrencyID string
}

// ParseActivityQuery reads the plain transaction export filter. Amounts are
// display values and are converted to fixed point.
func ParseActivityQuery(q url.Values) (ActivityRequest, error) {
	var req ActivityRequest

	window, err := ParseExportWindowQuery(q)
	if err != nil {
		return req, err
	}
	from, err := parseAmount(q, ParamAmountFrom)
	if err != nil {
		return req, err
	}
	to, err := parseAmount(q, ParamAmountTo)
	if err != nil {
		return req, err
	}

	req.ExportWindowRequest = window
	req.Status = domain.Status(q.Get(ParamStatus))
	req.Direction = domain.Direction(q.Get(ParamDirection))
	req.AmountFrom = from
	req.AmountTo = to
	req.CurrencyID = q.Get(ParamCurrencyID)
	return req, nil
}

// ToFilter resolves the request for one account.
func (r ActivityRequest) ToFilter(userID string, role domain.Role, now time.Time, defaults domain.WindowDefaults) (domain.ActivityFilter, error) {
	window, err := r.ToWindow(now, defaults)
	if err != nil {
		return domain.ActivityFilter{}, err
	}

	f := domain.ActivityFilter{
		UserID:     userID,
		Role:       role,
		Window:     window,
		Status:     r.Status,
		Direction:  r.Direction,
		AmountFrom: r.AmountFrom,
		AmountTo:   r.AmountTo,
		CurrencyID: r.CurrencyID,
	}
	return f, f.Validate()
}

func parseInt(q url.Values, key string) (int64, error) {
	raw := q.Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", domain.ErrInvalidFilter, key, err)
	}
	return v, nil
}

func parseAmount(q url.Values, key string) (*int64, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidFilter, key, err)
	}
	v := domain.ToFixed(d)
	return &v, nil
}
