package repository

import (
	"gorm.io/gorm"

	"assistpay/internal/models"
)

// CurrencyRepository resolves currency codes for the outbound payload.
type CurrencyRepository struct {
	db *gorm.DB
}

func NewCurrencyRepository(db *gorm.DB) *CurrencyRepository {
	return &CurrencyRepository{db: db}
}

// CodeByID returns the ISO code of a currency. A missing currency is a
// configuration error the caller must treat as fatal.
func (r *CurrencyRepository) CodeByID(id uint) (string, error) {
	var currency models.Currency
	if err := r.db.Where("id = ?", id).First(&currency).Error; err != nil {
		return "", err
	}
	return currency.Code, nil
}
