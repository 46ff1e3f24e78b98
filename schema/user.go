package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	UserCollection = "users"
)

type Role string

const (
	RoleAdmin       Role = "admin"
	RolePlanner     Role = "planner"
	RoleFieldWorker Role = "field_worker"
	RoleCitizen     Role = "citizen"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RolePlanner, RoleFieldWorker, RoleCitizen:
		return true
	}
	return false
}

// User - an account of the system
type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"password_hash"`
	Role         Role               `json:"role" bson:"role"`
	Department   string             `json:"department,omitempty" bson:"department,omitempty"`
	Active       bool               `json:"active" bson:"active"`
	LastLoginAt  *time.Time         `json:"last_login_at,omitempty" bson:"last_login_at,omitempty"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

// HasRole reports whether the user holds one of the roles
func (u *User) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

type UserFilter struct {
	Role   Role
	Active *bool
	Page
}

// UserUpdate carries optional fields. Nil means unchanged.
type UserUpdate struct {
	Name         *string
	Department   *string
	Role         *Role
	Active       *bool
	PasswordHash *string
}
