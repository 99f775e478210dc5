package models

import (
	"time"

	"gorm.io/datatypes"
)

type Roadmap struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	Topic     string         `gorm:"size:255;not null" json:"topic"`
	Months    int            `gorm:"not null" json:"months"`
	Phases    datatypes.JSON `gorm:"not null" json:"phases"`
	CreatedAt time.Time      `json:"created_at"`
}

// Phase is the typed shape every stored roadmap must decode to. Generated
// content is validated against it before persistence.
type Phase struct {
	Title       string     `json:"title"`
	Duration    string     `json:"duration"`
	Description string     `json:"description"`
	Topics      []string   `json:"topics"`
	Resources   []Resource `json:"resources"`
	Milestones  []string   `json:"milestones"`
}

type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
