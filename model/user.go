package models

import "time"

// Roles a user can hold. STUDENT is the registration default.
const (
	RoleAdmin   = "ADMIN"
	RoleTeacher = "TEACHER"
	RoleStudent = "STUDENT"
	RoleParent  = "PARENT"
)

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Firstname string    `gorm:"not null" json:"firstname"`
	Lastname  string    `gorm:"not null" json:"lastname"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"default:STUDENT" json:"role"`
	CreatedAt time.Time `json:"createdAt"`

	// Class this user manages, if any. The unique index on
	// classes.manager_id keeps it one class per manager.
	ManagedClass *Class `gorm:"foreignKey:ManagerID" json:"managedClass,omitempty"`
}

// CanManageClass reports whether the role is allowed to be a class manager.
func (u *User) CanManageClass() bool {
	return u.Role == RoleTeacher || u.Role == RoleAdmin
}
