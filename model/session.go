package models

import "time"

// Session is one teaching slot: a class meets a teacher for a subject
// at a given date.
type Session struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Date      time.Time `gorm:"not null" json:"date"`
	ClassID   uint      `gorm:"index;not null" json:"classId"`
	SubjectID uint      `gorm:"index;not null" json:"subjectId"`
	TeacherID uint      `gorm:"index;not null" json:"teacherId"`

	Class       *Class       `gorm:"foreignKey:ClassID" json:"class,omitempty"`
	Subject     *Subject     `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	Teacher     *User        `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
	Attendances []Attendance `gorm:"foreignKey:SessionID" json:"attendances,omitempty"`
}
