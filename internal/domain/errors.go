package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Lookup errors
	ErrUserNotFound    = errors.New("user not found")
	ErrBalanceNotFound = errors.New("balance not found")
	ErrGeoNotFound     = errors.New("geo not found")

	// Export errors
	ErrWrongRole     = errors.New("role is not allowed for this export")
	ErrInvalidWindow = errors.New("invalid time window")
	ErrInvalidFilter = errors.New("invalid filter")
	ErrStoreTimeout  = errors.New("store did not respond in time")
)

// WrongRoleError reports a role that failed a role gate and the roles that
// would have passed it.
type WrongRoleError struct {
	Role    Role
	Allowed []Role
}

func (e *WrongRoleError) Error() string {
	allowed := make([]string, len(e.Allowed))
	for i, r := range e.Allowed {
		allowed[i] = string(r)
	}
	return fmt.Sprintf("role %q is not allowed, expected one of [%s]", e.Role, strings.Join(allowed, ", "))
}

// Is makes errors.Is(err, ErrWrongRole) match.
func (e *WrongRoleError) Is(target error) bool {
	return target == ErrWrongRole
}
