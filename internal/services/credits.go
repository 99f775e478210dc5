package services

import (
	"errors"

	"github.com/Abhinav-Vishwakarma/CampusVerse-sub000/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreditService maintains per-user AI credit balances plus an append-only
// transaction history. The invariant remaining == total - used >= 0 is
// enforced by conditional updates, not by read-modify-write.
type CreditService struct {
	db *gorm.DB
}

func NewCreditService(db *gorm.DB) *CreditService {
	return &CreditService{db: db}
}

// GetAccount fetches a user's balance, creating an empty account on first
// touch. A concurrent first touch loses the insert race harmlessly and
// refetches.
func (s *CreditService) GetAccount(userID uint) (*models.CreditAccount, error) {
	var acc models.CreditAccount
	err := s.db.Where("user_id = ?", userID).First(&acc).Error
	if err == nil {
		return &acc, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	acc = models.CreditAccount{UserID: userID}
	if err := s.db.Create(&acc).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := s.db.Where("user_id = ?", userID).First(&acc).Error; err != nil {
				return nil, err
			}
			return &acc, nil
		}
		return nil, err
	}
	return &acc, nil
}

func (s *CreditService) Grant(userID uint, amount int, action string) (*models.CreditTransaction, error) {
	if amount <= 0 {
		return nil, errors.New("grant amount must be positive")
	}
	if _, err := s.GetAccount(userID); err != nil {
		return nil, err
	}

	result := s.db.Model(&models.CreditAccount{}).
		Where("user_id = ?", userID).
		Update("total", gorm.Expr("total + ?", amount))
	if result.Error != nil {
		return nil, result.Error
	}

	return s.record(userID, amount, action)
}

// Spend deducts credits in a single conditional update: the floor check is
// part of the WHERE clause, so two racing spends cannot drive the balance
// negative. RowsAffected == 0 means the floor would be crossed.
func (s *CreditService) Spend(userID uint, amount int, action string) (*models.CreditTransaction, error) {
	if amount <= 0 {
		return nil, errors.New("spend amount must be positive")
	}
	if _, err := s.GetAccount(userID); err != nil {
		return nil, err
	}

	result := s.db.Model(&models.CreditAccount{}).
		Where("user_id = ? AND used + ? <= total", userID, amount).
		Update("used", gorm.Expr("used + ?", amount))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrInsufficientCredits
	}

	return s.record(userID, -amount, action)
}

// History returns the ledger newest-first.
func (s *CreditService) History(userID uint) ([]models.CreditTransaction, error) {
	txs := []models.CreditTransaction{}
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return txs, nil
}

func (s *CreditService) record(userID uint, delta int, action string) (*models.CreditTransaction, error) {
	tx := models.CreditTransaction{
		UserID:    userID,
		Delta:     delta,
		Action:    action,
		Reference: uuid.NewString(),
	}
	if err := s.db.Create(&tx).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}
