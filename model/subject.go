package models

type Subject struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"not null" json:"name"`

	Sessions []Session `gorm:"foreignKey:SubjectID" json:"sessions,omitempty"`
}
