package customer

import (
	"strings"

	"dashboard/internal/core/domain/model/kernel"
)

// Role is set for dashboard staff; plain customers have NoRole.
type Role int

const (
	NoRole Role = iota
	Admin
	Staff
)

var roleNames = map[Role]string{
	Admin: "admin",
	Staff: "staff",
}

// ParseRole maps the remote employee field. Anything else is a customer.
func ParseRole(s string) Role {
	for role, name := range roleNames {
		if name == s {
			return role
		}
	}
	return NoRole
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return ""
}

type Customer struct {
	ID           kernel.ID
	DisplayName  string
	MobileNumber string
	Email        string
	Address      string
	Role         Role
}

func (c Customer) IsEmployee() bool {
	return c.Role != NoRole
}

// Matches reports whether search occurs in the name, mobile number or email,
// ignoring case. An empty search matches everyone.
func (c Customer) Matches(search string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	for _, field := range []string{c.DisplayName, c.MobileNumber, c.Email} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// Filter keeps the customers matching search, in order.
func Filter(customers []Customer, search string) []Customer {
	matched := make([]Customer, 0, len(customers))
	for _, c := range customers {
		if c.Matches(search) {
			matched = append(matched, c)
		}
	}
	return matched
}
