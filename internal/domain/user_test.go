package domain

import (
	"errors"
	"testing"
)

func TestRequireRole(t *testing.T) {
	if err := RequireRole(RoleTeam, HistoryRoles...); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := RequireRole(RoleAdmin, HistoryRoles...)
	if !errors.Is(err, ErrWrongRole) {
		t.Fatalf("expected ErrWrongRole, got %v", err)
	}

	var wrong *WrongRoleError
	if !errors.As(err, &wrong) {
		t.Fatalf("expected *WrongRoleError, got %T", err)
	}
	if wrong.Role != RoleAdmin {
		t.Errorf("expected role admin, got %s", wrong.Role)
	}
	if wrong.Error() != `role "admin" is not allowed, expected one of [team, merchant, agent]` {
		t.Errorf("unexpected message: %s", wrong.Error())
	}
}

func TestRole_Predicates(t *testing.T) {
	tests := []struct {
		role       Role
		valid      bool
		history    bool
		accounting bool
		paysFee    bool
	}{
		{RoleRoot, true, false, true, false},
		{RoleAdmin, true, false, true, false},
		{RoleSupport, true, false, true, false},
		{RoleAgent, true, true, false, false},
		{RoleTeam, true, true, false, true},
		{RoleMerchant, true, true, false, true},
		{Role("worker"), false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if got := tt.role.IsValid(); got != tt.valid {
				t.Errorf("IsValid: expected %v, got %v", tt.valid, got)
			}
			if got := tt.role.OwnsHistory(); got != tt.history {
				t.Errorf("OwnsHistory: expected %v, got %v", tt.history, got)
			}
			if got := tt.role.CanViewAccounting(); got != tt.accounting {
				t.Errorf("CanViewAccounting: expected %v, got %v", tt.accounting, got)
			}
			if got := tt.role.PaysFee(); got != tt.paysFee {
				t.Errorf("PaysFee: expected %v, got %v", tt.paysFee, got)
			}
		})
	}
}

func TestFixedPoint(t *testing.T) {
	if got := FromFixed(1_234_567).String(); got != "1.234567" {
		t.Errorf("expected 1.234567, got %s", got)
	}
	if got := ToFixed(FromFixed(-42)); got != -42 {
		t.Errorf("expected -42, got %d", got)
	}
	p := &AccountProfile{Balance: 2_500_000}
	if got := p.BalanceAmount().String(); got != "2.5" {
		t.Errorf("expected 2.5, got %s", got)
	}
}
