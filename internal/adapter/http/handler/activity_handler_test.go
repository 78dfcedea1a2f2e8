package handler

import (
	"context"
	"errors"
	"iter"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/ledgerexport/internal/adapter/csvexport"
	"github.com/iho/ledgerexport/internal/domain"
	"github.com/iho/ledgerexport/internal/infrastructure/metrics"
)

type activityServiceStub struct {
	streamFn func(ctx context.Context, filter domain.ActivityFilter) (iter.Seq2[*domain.ActivityRow, error], error)
}

func (s *activityServiceStub) Stream(ctx context.Context, filter domain.ActivityFilter) (iter.Seq2[*domain.ActivityRow, error], error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.streamFn(ctx, filter)
}

func activityRow(id string) *domain.ActivityRow {
	return &domain.ActivityRow{
		TransactionID:     id,
		CreatedAt:         fixedNow.Add(-time.Hour),
		Direction:         domain.DirectionInbound,
		TransactionAmount: decimal.RequireFromString("100"),
		Status:            domain.StatusAccept,
		ExchangeRate:      decimal.RequireFromString("90"),
		DepositChange:     decimal.RequireFromString("-1.1"),
	}
}

func activitySeq(rows []*domain.ActivityRow, failErr error) iter.Seq2[*domain.ActivityRow, error] {
	return func(yield func(*domain.ActivityRow, error) bool) {
		for _, r := range rows {
			if !yield(r, nil) {
				return
			}
		}
		if failErr != nil {
			yield(nil, failErr)
		}
	}
}

func newTestActivityHandler(svc ActivityService, recorder ExportRecorder) *ActivityHandler {
	h := NewActivityHandler(svc, recorder, domain.WindowDefaults{Trailing: 24 * time.Hour, Lookback: 48 * time.Hour}, 2)
	h.now = func() time.Time { return fixedNow }
	return h
}

func TestActivityHandler_Transactions(t *testing.T) {
	var captured domain.ActivityFilter
	recorder := &recorderStub{}
	h := newTestActivityHandler(&activityServiceStub{
		streamFn: func(ctx context.Context, filter domain.ActivityFilter) (iter.Seq2[*domain.ActivityRow, error], error) {
			captured = filter
			return activitySeq([]*domain.ActivityRow{activityRow("b"), activityRow("a"), activityRow("z")}, nil), nil
		},
	}, recorder)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/export/transactions/?status=accept&amount_from=50&currency_id=RUB", nil)
	req = asUser(req, "merchant-1", domain.RoleMerchant)
	rec := httptest.NewRecorder()

	h.Transactions(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != csvexport.ContentDisposition(csvexport.SelfServiceFilename) {
		t.Fatalf("unexpected content disposition %q", cd)
	}
	if rec.Header().Get(ExportIDHeader) == "" {
		t.Fatal("expected export id header")
	}
	if captured.UserID != "merchant-1" || captured.Status != domain.StatusAccept || captured.CurrencyID != "RUB" {
		t.Fatalf("unexpected filter %+v", captured)
	}
	if captured.AmountFrom == nil || *captured.AmountFrom != 50_000_000 {
		t.Fatalf("unexpected amount_from %v", captured.AmountFrom)
	}
	if !captured.Window.To.Equal(fixedNow) || captured.Window.To.Sub(captured.Window.From) != 24*time.Hour {
		t.Fatalf("unexpected window %+v", captured.Window)
	}

	records := readCSV(t, rec.Body)
	if len(records) != 4 || records[1][0] != "b" || records[3][0] != "z" {
		t.Fatalf("unexpected csv %v", records)
	}
	if len(recorder.started) != 1 || recorder.started[0] != KindActivity || recorder.rows != 3 {
		t.Fatalf("unexpected recorder state %+v", recorder)
	}
}

func TestActivityHandler_Transactions_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		role     domain.Role
		query    string
		expected int
	}{
		{name: "agent", role: domain.RoleAgent, expected: http.StatusForbidden},
		{name: "unknown status", role: domain.RoleTeam, query: "?status=lost", expected: http.StatusBadRequest},
		{name: "amount bounds inverted", role: domain.RoleTeam, query: "?amount_from=10&amount_to=5", expected: http.StatusBadRequest},
		{name: "bad window", role: domain.RoleTeam, query: "?create_timestamp_to=later", expected: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestActivityHandler(&activityServiceStub{}, &recorderStub{})

			req := asUser(httptest.NewRequest(http.MethodGet, "/api/v1/export/transactions/"+tt.query, nil), "u-1", tt.role)
			rec := httptest.NewRecorder()

			h.Transactions(rec, req)

			if rec.Code != tt.expected {
				t.Fatalf("expected %d, got %d: %s", tt.expected, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestActivityHandler_Transactions_Unauthenticated(t *testing.T) {
	h := newTestActivityHandler(&activityServiceStub{}, &recorderStub{})

	rec := httptest.NewRecorder()
	h.Transactions(rec, httptest.NewRequest(http.MethodGet, "/api/v1/export/transactions/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestActivityHandler_Transactions_FailureAfterHeader(t *testing.T) {
	recorder := &recorderStub{}
	h := newTestActivityHandler(&activityServiceStub{
		streamFn: func(ctx context.Context, filter domain.ActivityFilter) (iter.Seq2[*domain.ActivityRow, error], error) {
			return activitySeq([]*domain.ActivityRow{activityRow("a")}, errors.New("connection reset")), nil
		},
	}, recorder)

	rec := httptest.NewRecorder()
	h.Transactions(rec, asUser(httptest.NewRequest(http.MethodGet, "/api/v1/export/transactions/", nil), "team-1", domain.RoleTeam))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected headers already sent, got %d", rec.Code)
	}
	if len(recorder.outcomes) != 1 || recorder.outcomes[0] != metrics.OutcomeTruncated || recorder.rows != 1 {
		t.Fatalf("unexpected recorder state %+v", recorder)
	}
}
