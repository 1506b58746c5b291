package models

type Student struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Firstname string `gorm:"not null" json:"firstname"`
	ClassID   uint   `gorm:"index;not null" json:"classId"`

	Class       *Class       `gorm:"foreignKey:ClassID" json:"class,omitempty"`
	Attendances []Attendance `gorm:"foreignKey:StudentID" json:"attendances,omitempty"`
}
