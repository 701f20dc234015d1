package dto

// CreateUserRequest represents a new staff account
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=4"`
	Role     string `json:"role" validate:"required,oneof=receptionist doctor manager"`
	Clinic   int    `json:"clinic,omitempty"`
}

// UpdatePasswordRequest represents a password change directive
type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=4"`
}

// UserResponse represents a staff account with the password stripped
type UserResponse struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Clinic   int    `json:"clinic,omitempty"`
}

// UserListResponse represents the user admin listing
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}
