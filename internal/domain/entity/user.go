package entity

import "strings"

// Role represents a user role in the system
type Role string

const (
	RoleReception Role = "receptionist"
	RoleDoctor    Role = "doctor"
	RoleManager   Role = "manager"
)

// User is a staff account. Password is never included in responses or
// session claims; Clinic is meaningful only for doctors (0 = unassigned).
type User struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Role     Role   `json:"role"`
	Clinic   int    `json:"clinic,omitempty"`
}

// IsDoctor checks if the user is a doctor with an assigned clinic
func (u *User) IsDoctor() bool {
	return u.Role == RoleDoctor && u.Clinic != 0
}

// UsernameEquals compares usernames case-insensitively
func (u *User) UsernameEquals(username string) bool {
	return strings.EqualFold(u.Username, username)
}
