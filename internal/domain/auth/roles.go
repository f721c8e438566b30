package auth

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleHR       Role = "HR"
	RoleEmployee Role = "Employee"
)

var Roles = []Role{RoleAdmin, RoleHR, RoleEmployee}

// detailRoles lists the roles allowed to open a record's detail view.
var detailRoles = map[Role]bool{
	RoleAdmin: true,
	RoleHR:    true,
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
	Email string `json:"email"`
}

func ParseRole(value string) (Role, error) {
	normalized := strings.TrimSpace(value)
	for _, role := range Roles {
		if strings.EqualFold(normalized, string(role)) {
			return role, nil
		}
	}
	return "", fmt.Errorf("auth: unknown role %q", value)
}

func CanViewDetails(role Role) bool {
	return detailRoles[role]
}

func (u User) CanViewDetails() bool {
	return CanViewDetails(u.Role)
}
