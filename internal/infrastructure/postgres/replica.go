package postgres

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync/atomic"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Conn is the part of a pool a ReplicaSet reads through. *pgxpool.Pool
// satisfies it.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Selector picks which of n replicas serves the next round trip.
type Selector interface {
	Pick(n int) int
}

// RoundRobin cycles through replicas in order.
type RoundRobin struct {
	next atomic.Uint64
}

// Pick returns the next replica index.
func (r *RoundRobin) Pick(n int) int {
	return int((r.next.Add(1) - 1) % uint64(n))
}

// Random picks a replica uniformly at random.
type Random struct{}

// Pick returns a random replica index.
func (Random) Pick(n int) int {
	return rand.IntN(n)
}

// ReplicaSet spreads read queries over read replicas. Every round trip picks
// a replica independently, so consecutive queries of one export may land on
// different replicas.
type ReplicaSet struct {
	conns    []Conn
	selector Selector
}

// NewReplicaSet creates a ReplicaSet over conns.
func NewReplicaSet(selector Selector, conns ...Conn) (*ReplicaSet, error) {
	if len(conns) == 0 {
		return nil, errors.New("replica set needs at least one connection")
	}
	if selector == nil {
		selector = Random{}
	}
	return &ReplicaSet{conns: conns, selector: selector}, nil
}

// ConnectReplicaSet opens one pool per URL.
func ConnectReplicaSet(ctx context.Context, selector Selector, urls []string, maxConns, minConns int) (*ReplicaSet, error) {
	conns := make([]Conn, 0, len(urls))
	for i, url := range urls {
		pool, err := NewPoolWithConfig(ctx, PoolConfig{DatabaseURL: url, MaxConns: maxConns, MinConns: minConns})
		if err != nil {
			for _, c := range conns {
				c.Close()
			}
			return nil, fmt.Errorf("replica %d: %w", i, err)
		}
		conns = append(conns, pool)
	}
	return NewReplicaSet(selector, conns...)
}

func (s *ReplicaSet) pick() Conn {
	return s.conns[s.selector.Pick(len(s.conns))]
}

// Exec runs sql on one replica.
func (s *ReplicaSet) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return s.pick().Exec(ctx, sql, args...)
}

// Query runs sql on one replica.
func (s *ReplicaSet) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return s.pick().Query(ctx, sql, args...)
}

// QueryRow runs sql on one replica.
func (s *ReplicaSet) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return s.pick().QueryRow(ctx, sql, args...)
}

// Ping checks every replica.
func (s *ReplicaSet) Ping(ctx context.Context) error {
	var errs []error
	for i, c := range s.conns {
		if err := c.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("replica %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Len returns the number of replicas.
func (s *ReplicaSet) Len() int {
	return len(s.conns)
}

// Close closes every replica.
func (s *ReplicaSet) Close() {
	for _, c := range s.conns {
		c.Close()
	}
}
