package kernel

import (
	"fmt"
	"strings"

	"parcels/internal/pkg/errs"
)

// Role determines which rows of the access policy apply to a caller.
// The numeric values are the ids of the seeded roles table.
type Role int

const (
	RoleUnknown Role = iota
	RoleAdmin
	RoleManager
	RoleClient
)

var roleNames = map[Role]string{
	RoleAdmin:   "Admin",
	RoleManager: "Manager",
	RoleClient:  "Client",
}

// Roles lists every valid role in id order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleClient}
}

func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "Unknown"
}

// IsStaff reports whether the role belongs to the delivery company rather than a customer.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleManager
}

// ParseRole accepts the canonical name in any letter case.
func ParseRole(s string) (Role, error) {
	for role, name := range roleNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", s))
}
