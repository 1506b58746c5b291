package models

// Attendance records a student's presence at one session.
type Attendance struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentID uint `gorm:"uniqueIndex:idx_attendance_student_session;not null" json:"studentId"`
	SessionID uint `gorm:"uniqueIndex:idx_attendance_student_session;not null" json:"sessionId"`
	Present   bool `json:"present"`

	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Session *Session `gorm:"foreignKey:SessionID" json:"session,omitempty"`
}
