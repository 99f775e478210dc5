package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type Quiz struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	FacultyID    uint       `gorm:"not null;index" json:"faculty_id"`
	Faculty      User       `gorm:"foreignKey:FacultyID;constraint:OnDelete:CASCADE" json:"-"`
	Title        string     `gorm:"size:255;not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	Course       string     `gorm:"size:100;index" json:"course"`
	Branch       string     `gorm:"size:50;index" json:"branch"`
	Section      string     `gorm:"size:10;index" json:"section"`
	Duration     int        `gorm:"not null" json:"duration"`
	TotalMarks   int        `gorm:"not null" json:"total_marks"`
	PassingMarks int        `gorm:"not null" json:"passing_marks"`
	StartDate    time.Time  `gorm:"not null;index" json:"start_date"`
	EndDate      time.Time  `gorm:"not null;index" json:"end_date"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	Code         string     `gorm:"size:6;not null;index" json:"code"`
	Questions    []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// OptionCount is fixed: every question carries exactly four options.
const OptionCount = 4

type Question struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	QuizID        uint           `gorm:"not null;index" json:"quiz_id"`
	OrderNum      int            `gorm:"not null" json:"order_num"`
	Text          string         `gorm:"type:text;not null" json:"text"`
	Options       datatypes.JSON `gorm:"not null" json:"options"`
	CorrectOption int            `gorm:"not null" json:"correct_option"`
	Marks         int            `gorm:"not null" json:"marks"`
}

// OptionList decodes the stored options column back into its four strings.
func (q *Question) OptionList() ([]string, error) {
	var opts []string
	if err := json.Unmarshal(q.Options, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}
