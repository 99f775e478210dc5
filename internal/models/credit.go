package models

import "time"

const (
	CreditActionSignup  = "signup"
	CreditActionRoadmap = "roadmap"
	CreditActionRefund  = "refund"
	CreditActionTopUp   = "topup"
)

type CreditAccount struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	Total     int       `gorm:"not null;default:0" json:"total"`
	Used      int       `gorm:"not null;default:0" json:"used"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *CreditAccount) Remaining() int {
	return a.Total - a.Used
}

// CreditTransaction is an append-only ledger entry. Delta is positive for
// grants and negative for spends.
type CreditTransaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Delta     int       `gorm:"not null" json:"delta"`
	Action    string    `gorm:"size:50;not null" json:"action"`
	Reference string    `gorm:"size:36;not null" json:"reference"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
