package domain

import (
	"errors"
	"slices"

	"github.com/shopspring/decimal"
)

// User is the authenticated caller of an export.
type User struct {
	ID   string
	Role Role
}

// Role represents a platform role.
type Role string

const (
	RoleRoot     Role = "root"
	RoleAdmin    Role = "admin"
	RoleSupport  Role = "support"
	RoleAgent    Role = "agent"
	RoleTeam     Role = "team"
	RoleMerchant Role = "merchant"
)

var (
	// HistoryRoles own a balance whose history can be exported.
	HistoryRoles = []Role{RoleTeam, RoleMerchant, RoleAgent}

	// AccountingRoles may download the history of any account.
	AccountingRoles = []Role{RoleRoot, RoleAdmin, RoleSupport}
)

var validRoles = map[Role]bool{
	RoleRoot:     true,
	RoleAdmin:    true,
	RoleSupport:  true,
	RoleAgent:    true,
	RoleTeam:     true,
	RoleMerchant: true,
}

// IsValid checks if the role is a known role.
func (r Role) IsValid() bool {
	return validRoles[r]
}

// OwnsHistory reports whether the role owns an exportable balance.
func (r Role) OwnsHistory() bool {
	return slices.Contains(HistoryRoles, r)
}

// CanViewAccounting reports whether the role may export other accounts.
func (r Role) CanViewAccounting() bool {
	return slices.Contains(AccountingRoles, r)
}

// PaysFee reports whether the interest column is expressed as a deviation
// from the full amount (team and merchant) rather than as a raw share (agent).
func (r Role) PaysFee() bool {
	return r == RoleTeam || r == RoleMerchant
}

// RequireRole returns a *WrongRoleError unless role is one of allowed.
func RequireRole(role Role, allowed ...Role) error {
	if slices.Contains(allowed, role) {
		return nil
	}
	return &WrongRoleError{Role: role, Allowed: allowed}
}

// AccountProfile is the accounting view of a user: who owns which balance
// and what it currently holds.
type AccountProfile struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Role      Role   `json:"role"`
	BalanceID string `json:"balance_id"`
	// Balance is trust plus locked, fixed point.
	Balance int64 `json:"balance"`
}

// BalanceAmount returns the display value of the profile balance.
func (p *AccountProfile) BalanceAmount() decimal.Decimal {
	return FromFixed(p.Balance)
}

// Authentication errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)
