package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iho/ledgerexport/internal/adapter/csvexport"
	"github.com/iho/ledgerexport/internal/adapter/http/dto"
	"github.com/iho/ledgerexport/internal/domain"
	"github.com/iho/ledgerexport/internal/infrastructure/metrics"
)

type accountingServiceStub struct {
	listFn  func(ctx context.Context, filter domain.AccountingFilter) (*domain.AccountingPage, error)
	allFn   func(ctx context.Context, filter domain.AccountingFilter) ([]*domain.AccountingEntry, error)
	geos    map[int64]string
	geoErr  error
	geoHits int
}

func (s *accountingServiceStub) List(ctx context.Context, filter domain.AccountingFilter) (*domain.AccountingPage, error) {
	return s.listFn(ctx, filter)
}

func (s *accountingServiceStub) All(ctx context.Context, filter domain.AccountingFilter) ([]*domain.AccountingEntry, error) {
	return s.allFn(ctx, filter)
}

func (s *accountingServiceStub) GeoLabel(ctx context.Context, geoID int64) (string, error) {
	s.geoHits++
	if s.geoErr != nil {
		return "", s.geoErr
	}
	if geoID == 0 {
		return "All", nil
	}
	return s.geos[geoID], nil
}

var testEntries = []*domain.AccountingEntry{
	{UserID: "team-1", OffsetID: 12, Role: domain.RoleTeam, Name: "Team A", Geo: "EU", Balance: 7_000_000, PendingDeposit: 250_000},
	{UserID: "merchant-1", OffsetID: 11, Role: domain.RoleMerchant, Name: "Acme", Geo: "EU", Balance: 12_500_000},
}

func newTestAccountingHandler(svc AccountingService, recorder ExportRecorder) *AccountingHandler {
	h := NewAccountingHandler(svc, recorder)
	h.now = func() time.Time { return fixedNow }
	return h
}

func TestAccountingHandler_List(t *testing.T) {
	var captured domain.AccountingFilter
	h := newTestAccountingHandler(&accountingServiceStub{
		listFn: func(ctx context.Context, filter domain.AccountingFilter) (*domain.AccountingPage, error) {
			captured = filter
			return domain.NewAccountingPage(testEntries, filter.Limit), nil
		},
	}, &recorderStub{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/accounting/list?last_offset_id=20&limit=2&role=team&geo_id=4", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	want := domain.AccountingFilter{LastOffsetID: 20, Limit: 2, Role: domain.RoleTeam, GeoID: 4}
	if captured != want {
		t.Fatalf("unexpected filter %+v", captured)
	}

	var resp dto.AccountingListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Items) != 2 || resp.NextOffsetID != 11 {
		t.Fatalf("unexpected page: %+v", resp)
	}
	if resp.Items[0].ID != "team-1" || resp.Items[0].PendingDeposit.String() != "0.25" {
		t.Fatalf("unexpected first item: %+v", resp.Items[0])
	}
}

func TestAccountingHandler_List_InvalidFilter(t *testing.T) {
	h := newTestAccountingHandler(&accountingServiceStub{}, &recorderStub{})

	for _, query := range []string{"role=janitor", "limit=many", "limit=5000", "geo_id=-1"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/accounting/list?"+query, nil)
		rec := httptest.NewRecorder()

		h.List(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", query, rec.Code)
		}
	}
}

func TestAccountingHandler_Download(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantFilename string
		wantGeoHits  int
	}{
		{name: "all users", query: "", wantFilename: "[01-06-2024-12:00]AccountingAllUsers.csv", wantGeoHits: 1},
		{name: "geo and role", query: "?geo_id=4&role=merchant", wantFilename: "[01-06-2024-12:00]AccountingEUMerchant.csv", wantGeoHits: 1},
		{name: "search", query: "?search=acme&geo_id=4", wantFilename: "[01-06-2024-12:00]AccountingWithSearch.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &accountingServiceStub{
				geos: map[int64]string{4: "EU"},
				allFn: func(ctx context.Context, filter domain.AccountingFilter) ([]*domain.AccountingEntry, error) {
					return testEntries, nil
				},
			}
			recorder := &recorderStub{}
			h := newTestAccountingHandler(svc, recorder)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/accounting/download"+tt.query, nil)
			rec := httptest.NewRecorder()

			h.Download(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
			}
			if cd := rec.Header().Get("Content-Disposition"); cd != csvexport.ContentDisposition(tt.wantFilename) {
				t.Fatalf("unexpected content disposition %q", cd)
			}
			if ct := rec.Header().Get("Content-Type"); ct != csvexport.ContentType {
				t.Fatalf("unexpected content type %q", ct)
			}
			if svc.geoHits != tt.wantGeoHits {
				t.Fatalf("expected %d geo lookups, got %d", tt.wantGeoHits, svc.geoHits)
			}

			records := readCSV(t, rec.Body)
			if len(records) != 3 || records[0][0] != "id" || records[1][5] != "7" || records[2][0] != "merchant-1" {
				t.Fatalf("unexpected csv: %v", records)
			}
			if len(recorder.outcomes) != 1 || recorder.outcomes[0] != metrics.OutcomeComplete || recorder.rows != 2 {
				t.Fatalf("unexpected recorder state: %+v", recorder)
			}
		})
	}
}

func TestAccountingHandler_Download_Empty(t *testing.T) {
	h := newTestAccountingHandler(&accountingServiceStub{
		allFn: func(ctx context.Context, filter domain.AccountingFilter) ([]*domain.AccountingEntry, error) {
			return nil, nil
		},
	}, &recorderStub{})

	rec := httptest.NewRecorder()
	h.Download(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/accounting/download?role=agent", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	records := readCSV(t, rec.Body)
	if len(records) != 1 || len(records[0]) != len(csvexport.AccountingColumns) {
		t.Fatalf("expected header only, got %v", records)
	}
}

func TestAccountingHandler_Download_StoreFailure(t *testing.T) {
	recorder := &recorderStub{}
	h := newTestAccountingHandler(&accountingServiceStub{
		allFn: func(ctx context.Context, filter domain.AccountingFilter) ([]*domain.AccountingEntry, error) {
			return nil, errors.Join(errors.New("list accounting"), domain.ErrStoreTimeout)
		},
	}, recorder)

	rec := httptest.NewRecorder()
	h.Download(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/accounting/download", nil))

	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("expected 504, got %d", rec.Code)
	}
	if rec.Header().Get("Content-Disposition") != "" {
		t.Fatal("expected no attachment on failure")
	}
	if len(recorder.outcomes) != 1 || recorder.outcomes[0] != metrics.OutcomeRejected {
		t.Fatalf("unexpected outcomes %v", recorder.outcomes)
	}
}
