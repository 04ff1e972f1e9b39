package dto

// CreateUserRequest creates a user (administrators only). The password
// is hashed before it reaches the store.
type CreateUserRequest struct {
	Username string `json:"username"  binding:"required,min=3,max=50"`
	Password string `json:"password"  binding:"required,min=8"`
	Email    string `json:"email"     binding:"required,email"`
	FullName string `json:"full_name" binding:"required,max=200"`
	Role     string `json:"role"      binding:"required"`
}

// UpdateUserRequest patches a user. Nil fields are left unchanged.
type UpdateUserRequest struct {
	Username *string `json:"username"  binding:"omitempty,min=3,max=50"`
	Password *string `json:"password"  binding:"omitempty,min=8"`
	Email    *string `json:"email"     binding:"omitempty,email"`
	FullName *string `json:"full_name" binding:"omitempty,max=200"`
	Role     *string `json:"role"      binding:"omitempty"`
}
