package models

import "time"

const (
	RoleStudent = "student"
	RoleFaculty = "faculty"
)

type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	Email           string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash    string    `gorm:"size:255;not null" json:"-"`
	Role            string    `gorm:"size:10;not null;default:'student'" json:"role"`
	AdmissionNumber string    `gorm:"size:50" json:"admission_number,omitempty"`
	Branch          string    `gorm:"size:50" json:"branch,omitempty"`
	Section         string    `gorm:"size:10" json:"section,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
