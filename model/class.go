package models

type Class struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	ManagerID uint   `gorm:"uniqueIndex;not null" json:"managerId"`

	Manager  *User     `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
	Students []Student `gorm:"foreignKey:ClassID" json:"students,omitempty"`
	Sessions []Session `gorm:"foreignKey:ClassID" json:"sessions,omitempty"`

	// Filled by handlers, not stored.
	StudentsCount int64 `gorm:"-" json:"studentsCount"`
	SessionsCount int64 `gorm:"-" json:"sessionsCount"`
}
