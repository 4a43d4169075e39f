package account

import (
	"fmt"

	"scribeassist/internal/pkg/errs"
)

// Role is the authorization role of a user. There are exactly two:
// customers own their orders, admins run the back office.
type Role int

const (
	RoleUnknown Role = iota

	Customer
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "unknown",
		Customer:    "customer",
		Admin:       "admin",
	}
}

// RoleFromString parses the wire representation of a role.
func RoleFromString(s string) (Role, error) {
	for r, str := range getRoleStrings() {
		if str == s && r != RoleUnknown {
			return r, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a known role", s),
	)
}

// String returns the wire name of the role.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Validate rejects RoleUnknown and out-of-range values.
func (r Role) Validate() error {
	if r <= RoleUnknown || r > Admin {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// IsAdmin reports whether the role carries back-office privilege.
func (r Role) IsAdmin() bool {
	return r == Admin
}
