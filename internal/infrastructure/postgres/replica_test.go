package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
)

func newMockConn(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	pool, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create pgxmock pool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func TestRoundRobinCycles(t *testing.T) {
	var rr RoundRobin
	got := []int{rr.Pick(3), rr.Pick(3), rr.Pick(3), rr.Pick(3)}
	want := []int{0, 1, 2, 0}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestRandomStaysInRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		if n := (Random{}).Pick(4); n < 0 || n >= 4 {
			t.Fatalf("pick out of range: %d", n)
		}
	}
}

func TestNewReplicaSetRequiresConnection(t *testing.T) {
	if _, err := NewReplicaSet(Random{}); err == nil {
		t.Fatalf("expected error for empty replica set")
	}
}

func TestReplicaSetSpreadsQueries(t *testing.T) {
	first := newMockConn(t)
	second := newMockConn(t)

	first.ExpectQuery("SELECT 1").WillReturnRows(pgxmock.NewRows([]string{"n"}).AddRow(1))
	second.ExpectQuery("SELECT 1").WillReturnRows(pgxmock.NewRows([]string{"n"}).AddRow(2))

	set, err := NewReplicaSet(&RoundRobin{}, first, second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []int{1, 2} {
		var n int
		if err := set.QueryRow(context.Background(), "SELECT 1").Scan(&n); err != nil {
			t.Fatalf("query failed: %v", err)
		}
		if n != want {
			t.Fatalf("expected %d, got %d", want, n)
		}
	}

	for _, c := range []pgxmock.PgxPoolIface{first, second} {
		if err := c.ExpectationsWereMet(); err != nil {
			t.Fatalf("expectations were not met: %v", err)
		}
	}
}

func TestReplicaSetPingReportsEveryFailure(t *testing.T) {
	healthy := newMockConn(t)
	broken := newMockConn(t)

	healthy.ExpectPing()
	broken.ExpectPing().WillReturnError(errors.New("connection refused"))

	set, err := NewReplicaSet(Random{}, healthy, broken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = set.Ping(context.Background())
	if err == nil {
		t.Fatalf("expected ping error")
	}
	if set.Len() != 2 {
		t.Fatalf("expected 2 replicas, got %d", set.Len())
	}
}
