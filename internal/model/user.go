package model

import "time"

// Roles understood by the authorization policy. Any other value carries
// no permissions.
const (
	RoleAdmin            = "admin"
	RoleMarchesManager   = "marches_manager"
	RoleOrdonnateur      = "ordonnateur"
	RoleTechnicalService = "technical_service"
)

// ValidRole reports whether role is part of the fixed role enumeration.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleMarchesManager, RoleOrdonnateur, RoleTechnicalService:
		return true
	}
	return false
}

// User is a credential holder. The password column stores a bcrypt hash
// and is never serialized.
type User struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username  string    `gorm:"not null;uniqueIndex"                           json:"username"`
	Password  string    `gorm:"not null"                                       json:"-"`
	Email     string    `gorm:"not null;uniqueIndex"                           json:"email"`
	FullName  string    `gorm:"not null"                                       json:"full_name"`
	Role      string    `gorm:"not null;default:'ordonnateur'"                 json:"role"`
	CreatedAt time.Time `gorm:"not null;default:now()"                         json:"created_at"`
}

// TableName sets the table name.
func (User) TableName() string { return "users" }
