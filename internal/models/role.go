package models

import "gorm.io/gorm"

// Role names seeded at migration time.
const (
	RoleAdministrator = "Administrator"
	RoleHR            = "HR"
	RoleManager       = "Manager"
	RoleUser          = "User"
)

type Role struct {
	gorm.Model

	Name string `gorm:"uniqueIndex;not null"`

	Users []User `gorm:"foreignKey:RoleID"`
}

// IsAdministrative reports whether the role may supervise other employees.
func (r Role) IsAdministrative() bool {
	return r.Name == RoleAdministrator || r.Name == RoleHR || r.Name == RoleManager
}
