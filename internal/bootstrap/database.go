package bootstrap

import (
	"fmt"

	"gorm.io/gorm"

	"assistpay/internal/models"
	"assistpay/internal/repository"
)

// MigrateAndSeed creates the schema and installs the default gateway
// configuration on first run: test mode on, capture rather than
// authorize-only, zero additional fee. Mirrors a fresh install.
func MigrateAndSeed(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Order{},
		&models.Currency{},
		&models.PaySetting{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	var settingCount int64
	if err := db.Model(&models.PaySetting{}).Count(&settingCount).Error; err != nil {
		return fmt.Errorf("count settings: %w", err)
	}
	if settingCount == 0 {
		defaults := []models.PaySetting{
			{Name: repository.SettingEnabled, Value: "1"},
			{Name: repository.SettingMerchantID, Value: ""},
			{Name: repository.SettingLogin, Value: ""},
			{Name: repository.SettingPassword, Value: ""},
			{Name: repository.SettingGatewayURL, Value: ""},
			{Name: repository.SettingTestMode, Value: "1"},
			{Name: repository.SettingAuthorizeOnly, Value: "0"},
			{Name: repository.SettingAdditionalFee, Value: "0.00"},
			{Name: repository.SettingPrimaryCurrencyID, Value: "1"},
		}
		if err := db.Create(&defaults).Error; err != nil {
			return fmt.Errorf("seed settings: %w", err)
		}
	}

	var currencyCount int64
	if err := db.Model(&models.Currency{}).Count(&currencyCount).Error; err != nil {
		return fmt.Errorf("count currencies: %w", err)
	}
	if currencyCount == 0 {
		if err := db.Create(&models.Currency{ID: 1, Code: "RUB", Name: "Russian Ruble"}).Error; err != nil {
			return fmt.Errorf("seed currency: %w", err)
		}
	}

	return nil
}
